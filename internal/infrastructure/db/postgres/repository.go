package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vovzone/designer-platform/internal/core/domain"
)

const userColumns = `id, email, password, name, role, status, created_at, updated_at, applied_at, approved_at, rejected_at`

// Repository implements both ports.AuthRepository and
// ports.ApplicationRepository over a single pgx pool.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Role, user.Status,
		user.CreatedAt, user.UpdatedAt, user.AppliedAt, user.ApprovedAt, user.RejectedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// CreateDesigner writes the user, profile, and specialty rows inside
// one transaction; the deferred rollback is a no-op after commit, so
// every exit path releases the transaction.
func (r *Repository) CreateDesigner(ctx context.Context, user *domain.User, profile *domain.DesignerProfile) (*domain.User, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Role, user.Status,
		user.CreatedAt, user.UpdatedAt, user.AppliedAt, user.ApprovedAt, user.RejectedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO designers (id, user_id, company, phone, website, address, avatar, bio, experience)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		profile.ID, user.ID, profile.Company, profile.Phone, profile.Website,
		profile.Address, profile.Avatar, profile.Bio, profile.ExperienceYears,
	)
	if err != nil {
		return nil, fmt.Errorf("insert designer: %w", err)
	}

	for _, specialty := range profile.Specialties {
		if _, err := tx.Exec(ctx,
			`INSERT INTO designer_specialties (designer_id, specialty) VALUES ($1, $2)`,
			profile.ID, specialty,
		); err != nil {
			return nil, fmt.Errorf("insert specialty: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return user, nil
}

func (r *Repository) GetDesignerProfile(ctx context.Context, userID string) (*domain.DesignerProfile, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, user_id, company, phone, website, address, avatar, bio,
		        experience, completed_projects, rating, verified, portfolio_views, portfolio_likes
		 FROM designers WHERE user_id = $1`, userID)

	var p domain.DesignerProfile
	err := row.Scan(&p.ID, &p.UserID, &p.Company, &p.Phone, &p.Website, &p.Address, &p.Avatar, &p.Bio,
		&p.ExperienceYears, &p.CompletedProjects, &p.Rating, &p.Verified, &p.PortfolioViews, &p.PortfolioLikes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find designer: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT specialty FROM designer_specialties WHERE designer_id = $1`, p.ID)
	if err != nil {
		return nil, fmt.Errorf("find specialties: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan specialty: %w", err)
		}
		p.Specialties = append(p.Specialties, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate specialties: %w", err)
	}
	return &p, nil
}

// UpdateStatus matches only designers still pending, so terminal
// statuses are immutable at the storage layer regardless of what
// callers attempt. Last write wins is never reachable here.
func (r *Repository) UpdateStatus(ctx context.Context, userID string, status domain.Status, at time.Time) (bool, error) {
	var column string
	switch status {
	case domain.StatusApproved:
		column = "approved_at"
	case domain.StatusRejected:
		column = "rejected_at"
	default:
		return false, domain.ErrInvalidTransition
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET status = $1, `+column+` = $2, updated_at = $2
		 WHERE id = $3 AND role = 'designer' AND status = 'pending'`,
		status, at, userID,
	)
	if err != nil {
		return false, fmt.Errorf("update status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) ListPending(ctx context.Context) ([]domain.Application, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT u.id, u.email, u.password, u.name, u.role, u.status,
		        u.created_at, u.updated_at, u.applied_at, u.approved_at, u.rejected_at,
		        d.id, d.company, d.phone, d.website, d.address, d.avatar, d.bio,
		        d.experience, d.completed_projects, d.rating, d.verified, d.portfolio_views, d.portfolio_likes
		 FROM users u
		 JOIN designers d ON d.user_id = u.id
		 WHERE u.role = 'designer' AND u.status = 'pending'
		 ORDER BY u.applied_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list pending: %w", err)
	}
	defer rows.Close()

	var apps []domain.Application
	byProfileID := make(map[string]int)
	for rows.Next() {
		var app domain.Application
		u := &app.User
		p := &app.Profile
		err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Status,
			&u.CreatedAt, &u.UpdatedAt, &u.AppliedAt, &u.ApprovedAt, &u.RejectedAt,
			&p.ID, &p.Company, &p.Phone, &p.Website, &p.Address, &p.Avatar, &p.Bio,
			&p.ExperienceYears, &p.CompletedProjects, &p.Rating, &p.Verified, &p.PortfolioViews, &p.PortfolioLikes)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		p.UserID = u.ID
		byProfileID[p.ID] = len(apps)
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applications: %w", err)
	}
	if len(apps) == 0 {
		return []domain.Application{}, nil
	}

	ids := make([]string, 0, len(byProfileID))
	for id := range byProfileID {
		ids = append(ids, id)
	}
	specRows, err := r.pool.Query(ctx,
		`SELECT designer_id, specialty FROM designer_specialties WHERE designer_id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("list specialties: %w", err)
	}
	defer specRows.Close()

	for specRows.Next() {
		var designerID, specialty string
		if err := specRows.Scan(&designerID, &specialty); err != nil {
			return nil, fmt.Errorf("scan specialty: %w", err)
		}
		if i, ok := byProfileID[designerID]; ok {
			apps[i].Profile.Specialties = append(apps[i].Profile.Specialties, specialty)
		}
	}
	if err := specRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate specialties: %w", err)
	}
	return apps, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Status,
		&u.CreatedAt, &u.UpdatedAt, &u.AppliedAt, &u.ApprovedAt, &u.RejectedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique
// constraint violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
