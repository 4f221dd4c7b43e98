package ports

import (
	"context"
	"time"
)

// SessionStore records issued tokens for operational visibility.
// Records expire with the token; verification never consults them, so
// a store outage cannot lock users out.
type SessionStore interface {
	Record(ctx context.Context, token, userID string, ttl time.Duration) error
	Delete(ctx context.Context, token string) error
}
