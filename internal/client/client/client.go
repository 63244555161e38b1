package client

import (
	"context"

	"github.com/dmitrijs2005/vineauth/internal/client/models"
)

// Client is the contract the CLI uses to talk to the vineauth server.
// Register and Login keep the returned token for later GetUser calls.
type Client interface {
	Register(ctx context.Context, r models.Registration) error
	Login(ctx context.Context, email, password string) (*models.User, error)
	GetUser(ctx context.Context) (*models.Profile, error)
	ForgotPassword(ctx context.Context, email string) error
	Ping(ctx context.Context) error
	Token() string
	Logout()
}
