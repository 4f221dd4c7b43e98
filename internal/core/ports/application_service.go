package ports

import (
	"context"

	"github.com/vovzone/designer-platform/internal/core/domain"
)

// RegistrationInput carries a designer application as submitted through
// the public registration endpoint.
type RegistrationInput struct {
	Email       string
	Password    string
	Name        string
	Company     string
	Phone       string
	Website     string
	Bio         string
	Specialties []string
}

type ApplicationService interface {
	// Submit creates a pending designer application and returns the
	// application (user) id.
	Submit(ctx context.Context, input RegistrationInput) (string, error)

	// Approve moves a pending application to approved. Returns
	// domain.ErrApplicationNotFound when no pending application exists
	// for userID, including when a decision was already made.
	Approve(ctx context.Context, userID string) error

	// Reject moves a pending application to rejected. Same not-found
	// semantics as Approve.
	Reject(ctx context.Context, userID string) error

	// ListPending returns all open applications, most recent first.
	ListPending(ctx context.Context) ([]domain.Application, error)
}
