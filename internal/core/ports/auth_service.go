package ports

import (
	"context"

	"github.com/vovzone/designer-platform/internal/core/domain"
)

type AuthService interface {
	// Login verifies credentials and returns a signed bearer token.
	// Every failure mode (unknown email, unapproved account, wrong
	// password) is domain.ErrInvalidCredentials, indistinguishably.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	// Profile returns the current user row for email, with the designer
	// profile attached when the user is a designer.
	Profile(ctx context.Context, email string) (*domain.User, *domain.DesignerProfile, error)

	// Logout discards the session record for token. The token itself
	// remains valid until expiry.
	Logout(ctx context.Context, token string) error
}
