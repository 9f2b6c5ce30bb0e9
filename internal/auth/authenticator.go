package auth

import (
	"context"
	"errors"

	"github.com/mmynk/kleurenwiezen/internal/models"
)

// ErrUserNotFound is returned by Lookup for unknown or deleted accounts.
var ErrUserNotFound = errors.New("user not found")

// Authenticator is what the account service needs from an auth method.
// Accounts are optional: they only mark who owns a group.
type Authenticator interface {
	// Register creates a new account. The credential format depends on the
	// implementation.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate verifies the credentials and returns the account.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// Lookup returns the account with the given ID.
	Lookup(ctx context.Context, userID string) (*models.User, error)

	// ValidateCredential reports why a credential would be refused by
	// Register, or nil.
	ValidateCredential(credential string) error
}
