// Package cli provides the interactive vineauth command-line client.
//
// It wires configuration, the HTTP API client and an interactive REPL.
// A background watcher pings the server and shows online/offline status
// in the prompt.
//
// Key features:
//   - Register / Login / Logout
//   - Show the profile of the logged-in user
//   - Request a temporary password by mail (forgot)
//
// The session token is held only in memory and is gone when the program
// exits. The REPL is started via App.Run(ctx), which blocks until the user
// exits. See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
