package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vovzone/designer-platform/internal/core/domain"
	"github.com/vovzone/designer-platform/internal/core/service"
)

// schema is applied idempotently at startup. The UNIQUE index on email
// is the real safety net behind the registration pre-check; the CHECK
// constraints keep role and status a closed enumeration at the storage
// layer too.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id          TEXT PRIMARY KEY,
    email       TEXT UNIQUE NOT NULL,
    password    TEXT NOT NULL,
    name        TEXT NOT NULL,
    role        TEXT NOT NULL CHECK (role IN ('admin', 'designer', 'visitor')),
    status      TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved', 'rejected')),
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    applied_at  TIMESTAMPTZ,
    approved_at TIMESTAMPTZ,
    rejected_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS designers (
    id                 TEXT PRIMARY KEY,
    user_id            TEXT UNIQUE NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    company            TEXT,
    phone              TEXT,
    website            TEXT,
    address            TEXT,
    avatar             TEXT,
    bio                TEXT,
    experience         INTEGER NOT NULL DEFAULT 0 CHECK (experience >= 0),
    completed_projects INTEGER NOT NULL DEFAULT 0,
    rating             REAL NOT NULL DEFAULT 0.0,
    verified           BOOLEAN NOT NULL DEFAULT FALSE,
    portfolio_views    INTEGER NOT NULL DEFAULT 0,
    portfolio_likes    INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS designer_specialties (
    id          BIGSERIAL PRIMARY KEY,
    designer_id TEXT NOT NULL REFERENCES designers (id) ON DELETE CASCADE,
    specialty   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_users_pending_designers
    ON users (applied_at DESC) WHERE role = 'designer' AND status = 'pending';
`

// Migrate applies the schema. Safe to run on every startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// EnsureAdmin provisions the bootstrap admin identity exactly once.
// Returns true when the admin was created on this call. Idempotent
// across restarts: a concurrent insert losing the race on the email
// index is treated as already-provisioned.
func EnsureAdmin(ctx context.Context, repo *Repository, email, password, name string) (bool, error) {
	if _, err := repo.FindByEmail(ctx, email); err == nil {
		return false, nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return false, fmt.Errorf("check admin: %w", err)
	}

	hash, err := service.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}

	now := time.Now().UTC()
	admin := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         domain.RoleAdmin,
		Status:       domain.StatusApproved,
		CreatedAt:    now,
		UpdatedAt:    now,
		ApprovedAt:   &now,
	}
	if _, err := repo.CreateUser(ctx, admin); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return false, nil
		}
		return false, fmt.Errorf("seed admin: %w", err)
	}
	return true, nil
}
