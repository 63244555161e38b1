// Package client contains the HTTP client the vineauth CLI uses.
//
// # Overview
//
//  1. A transport-agnostic contract (see the Client interface):
//     Register, Login, GetUser, ForgotPassword, Ping.
//  2. A concrete JSON-over-HTTP implementation (see APIClient) that keeps
//     the auth token in memory and sends it in the auth-token header.
//
// # Error Handling
//
// Transport failures are reported as ErrUnavailable, a rejected token as
// ErrUnauthorized, and every other non-success answer as *APIError, which
// carries the status code, the server's message and any field errors.
package client
