package ports

import (
	"context"

	"github.com/vovzone/designer-platform/internal/core/domain"
)

// AuthRepository defines the identity read/write surface used by
// authentication and account bootstrap.
type AuthRepository interface {
	// CreateUser persists a standalone user (no designer profile).
	// Returns domain.ErrEmailTaken when the email is already registered.
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)

	// FindByEmail returns domain.ErrUserNotFound when no user exists.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetDesignerProfile returns the profile and specialties owned by
	// userID, or domain.ErrUserNotFound when the user has none.
	GetDesignerProfile(ctx context.Context, userID string) (*domain.DesignerProfile, error)
}
