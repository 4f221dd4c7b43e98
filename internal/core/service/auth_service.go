package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/vovzone/designer-platform/internal/core/domain"
	"github.com/vovzone/designer-platform/internal/core/ports"
)

// bcryptCost matches the original platform's 10 hashing rounds.
const bcryptCost = 10

// AuthService implements login, profile lookup, and logout.
type AuthService struct {
	repo      ports.AuthRepository
	sessions  ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, sessions ports.SessionStore, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, sessions: sessions, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Login authenticates email+password and mints a bearer token. Only
// approved accounts may log in: a pending or rejected designer with the
// correct password fails exactly like a wrong password, and an unknown
// email fails the same way, so responses never reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if user.Status != domain.StatusApproved {
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	if s.sessions != nil {
		if err := s.sessions.Record(ctx, token, user.ID, s.tokenTTL); err != nil {
			// Session records are advisory; a store outage must not block login.
			s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("session record failed")
		}
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login succeeded")
	return token, user, nil
}

// Profile returns the freshest user row for email so that an approval
// made after token issuance is immediately visible.
func (s *AuthService) Profile(ctx context.Context, email string) (*domain.User, *domain.DesignerProfile, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	if user.Role != domain.RoleDesigner {
		return user, nil, nil
	}

	profile, err := s.repo.GetDesignerProfile(ctx, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return user, nil, nil
		}
		return nil, nil, err
	}
	return user, profile, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if s.sessions == nil {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// HashPassword hashes a plaintext password for storage. Exported for
// the registration flow and the bootstrap admin seed.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
