package ports

import (
	"context"
	"time"

	"github.com/vovzone/designer-platform/internal/core/domain"
)

// ApplicationRepository persists designer applications and their
// status transitions.
type ApplicationRepository interface {
	// CreateDesigner persists the user, its profile, and the profile's
	// specialties in one atomic unit: either all rows exist afterwards
	// or none do. Returns domain.ErrEmailTaken on a duplicate email.
	CreateDesigner(ctx context.Context, user *domain.User, profile *domain.DesignerProfile) (*domain.User, error)

	// UpdateStatus moves a pending designer to the given terminal
	// status and stamps the matching timestamp column. changed is false
	// when no row matched, i.e. the user is unknown, not a designer, or
	// no longer pending.
	UpdateStatus(ctx context.Context, userID string, status domain.Status, at time.Time) (changed bool, err error)

	// ListPending returns pending designer applications joined with
	// profile and specialties, most recent application first.
	ListPending(ctx context.Context) ([]domain.Application, error)
}
