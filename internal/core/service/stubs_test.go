package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vovzone/designer-platform/internal/core/domain"
)

// stubStore is an in-memory stand-in for the Postgres repository,
// implementing both repository ports with the same guarded-update
// semantics the SQL layer pins down.
type stubStore struct {
	mu       sync.Mutex
	users    map[string]*domain.User            // keyed by id
	profiles map[string]*domain.DesignerProfile // keyed by user id
}

func newStubStore() *stubStore {
	return &stubStore{
		users:    make(map[string]*domain.User),
		profiles: make(map[string]*domain.DesignerProfile),
	}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func cloneProfile(p *domain.DesignerProfile) *domain.DesignerProfile {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Specialties = append([]string(nil), p.Specialties...)
	return &clone
}

func (s *stubStore) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	s.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (s *stubStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubStore) GetDesignerProfile(_ context.Context, userID string) (*domain.DesignerProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneProfile(p), nil
}

func (s *stubStore) CreateDesigner(_ context.Context, user *domain.User, profile *domain.DesignerProfile) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	s.users[user.ID] = cloneUser(user)
	s.profiles[user.ID] = cloneProfile(profile)
	return cloneUser(user), nil
}

func (s *stubStore) UpdateStatus(_ context.Context, userID string, status domain.Status, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok || u.Role != domain.RoleDesigner || u.Status != domain.StatusPending {
		return false, nil
	}
	u.Status = status
	u.UpdatedAt = at
	switch status {
	case domain.StatusApproved:
		u.ApprovedAt = &at
	case domain.StatusRejected:
		u.RejectedAt = &at
	}
	return true, nil
}

func (s *stubStore) ListPending(_ context.Context) ([]domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var apps []domain.Application
	for id, u := range s.users {
		if u.Role != domain.RoleDesigner || u.Status != domain.StatusPending {
			continue
		}
		apps = append(apps, domain.Application{User: *cloneUser(u), Profile: *cloneProfile(s.profiles[id])})
	}
	sort.Slice(apps, func(i, j int) bool {
		return apps[i].User.AppliedAt.After(*apps[j].User.AppliedAt)
	})
	return apps, nil
}

// stubSessions records session activity for assertions.
type stubSessions struct {
	mu       sync.Mutex
	recorded map[string]string // token -> user id
	deleted  []string
	err      error
}

func newStubSessions() *stubSessions {
	return &stubSessions{recorded: make(map[string]string)}
}

func (s *stubSessions) Record(_ context.Context, token, userID string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.recorded[token] = userID
	return nil
}

func (s *stubSessions) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	delete(s.recorded, token)
	s.deleted = append(s.deleted, token)
	return nil
}
