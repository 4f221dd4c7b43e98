package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vovzone/designer-platform/internal/core/domain"
	"github.com/vovzone/designer-platform/internal/core/ports"
)

const minPasswordLen = 8

// ApplicationService manages the designer application lifecycle:
// pending at submission, then approved or rejected exactly once.
type ApplicationService struct {
	repo   ports.ApplicationRepository
	users  ports.AuthRepository
	logger zerolog.Logger
}

func NewApplicationService(repo ports.ApplicationRepository, users ports.AuthRepository, logger zerolog.Logger) *ApplicationService {
	return &ApplicationService{repo: repo, users: users, logger: logger}
}

// Submit validates the registration, then creates the user, profile,
// and specialties in one transaction. The pre-check on email is a fast
// path only: the unique index catches the race and the repository maps
// the constraint violation back to domain.ErrEmailTaken.
func (s *ApplicationService) Submit(ctx context.Context, input ports.RegistrationInput) (string, error) {
	if err := validateRegistration(input); err != nil {
		return "", err
	}

	if existing, err := s.users.FindByEmail(ctx, input.Email); err == nil && existing != nil {
		return "", domain.ErrEmailTaken
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	applied := now
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: hash,
		Name:         input.Name,
		Role:         domain.RoleDesigner,
		Status:       domain.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
		AppliedAt:    &applied,
	}
	profile := &domain.DesignerProfile{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		Company:     input.Company,
		Phone:       input.Phone,
		Website:     input.Website,
		Bio:         input.Bio,
		Specialties: input.Specialties,
	}

	created, err := s.repo.CreateDesigner(ctx, user, profile)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("designer application submitted")
	return created.ID, nil
}

func (s *ApplicationService) Approve(ctx context.Context, userID string) error {
	return s.decide(ctx, userID, domain.StatusApproved)
}

func (s *ApplicationService) Reject(ctx context.Context, userID string) error {
	return s.decide(ctx, userID, domain.StatusRejected)
}

// decide applies a terminal decision. Only rows still pending match, so
// a repeated decision of either kind reports the application as gone.
func (s *ApplicationService) decide(ctx context.Context, userID string, status domain.Status) error {
	if !domain.StatusPending.CanTransitionTo(status) {
		return domain.ErrInvalidTransition
	}

	changed, err := s.repo.UpdateStatus(ctx, userID, status, time.Now().UTC())
	if err != nil {
		return err
	}
	if !changed {
		return domain.ErrApplicationNotFound
	}

	s.logger.Info().Str("user_id", userID).Str("decision", string(status)).Msg("application decided")
	return nil
}

func (s *ApplicationService) ListPending(ctx context.Context) ([]domain.Application, error) {
	return s.repo.ListPending(ctx)
}

func validateRegistration(input ports.RegistrationInput) error {
	switch {
	case strings.TrimSpace(input.Email) == "":
		return fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	case strings.TrimSpace(input.Name) == "":
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	case len(input.Password) < minPasswordLen:
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLen)
	}
	return nil
}
