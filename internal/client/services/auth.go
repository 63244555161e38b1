// Package services contains application services for the vineauth client.
// This file defines the authentication service the CLI drives: register,
// login, profile lookup, password reset and logout.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/vineauth/internal/client/client"
	"github.com/dmitrijs2005/vineauth/internal/client/models"
)

// ErrMissingInput is returned before any request is made when a required
// value is empty.
var ErrMissingInput = errors.New("missing input")

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create an account and start a session.
//   - Login: authenticate and start a session.
//   - Profile: fetch the profile of the session's user.
//   - ForgotPassword: ask the server to mail a temporary password.
//   - Logout: drop the session.
//   - Ping: check server liveness.
//   - CurrentUser: email of the session's user, "" when logged out.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, r models.Registration) error
	Login(ctx context.Context, email string, password []byte) error
	Profile(ctx context.Context) (*models.Profile, error)
	ForgotPassword(ctx context.Context, email string) error
	Logout()
	Ping(ctx context.Context) error
	CurrentUser() string
}

// authService is the concrete AuthService backed by a remote Client.
// The token lives only in the client's memory.
type authService struct {
	client client.Client
	email  string
}

func NewAuthService(c client.Client) AuthService {
	return &authService{client: c}
}

func (s *authService) Register(ctx context.Context, r models.Registration) error {
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" || r.Password == "" {
		return ErrMissingInput
	}
	if err := s.client.Register(ctx, r); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	s.email = r.Email
	return nil
}

func (s *authService) Login(ctx context.Context, email string, password []byte) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrMissingInput
	}
	user, err := s.client.Login(ctx, email, string(password))
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	s.email = email
	if user != nil && user.Email != "" {
		s.email = user.Email
	}
	return nil
}

func (s *authService) Profile(ctx context.Context) (*models.Profile, error) {
	p, err := s.client.GetUser(ctx)
	if errors.Is(err, client.ErrUnauthorized) {
		s.Logout()
	}
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	return p, nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrMissingInput
	}
	if err := s.client.ForgotPassword(ctx, email); err != nil {
		return fmt.Errorf("forgot password: %w", err)
	}
	return nil
}

func (s *authService) Logout() {
	s.client.Logout()
	s.email = ""
}

func (s *authService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func (s *authService) CurrentUser() string {
	if s.client.Token() == "" {
		return ""
	}
	return s.email
}
