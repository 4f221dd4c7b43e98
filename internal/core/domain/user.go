package domain

import (
	"errors"
	"time"
)

// Role is the closed set of actor roles on the platform.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleDesigner Role = "designer"
	RoleVisitor  Role = "visitor"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDesigner, RoleVisitor:
		return true
	}
	return false
}

// Status represents the lifecycle state of a designer application.
// Admins are provisioned directly in StatusApproved.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// validTransitions defines the allowed state machine transitions.
// Approved and rejected are terminal; re-application is not supported.
var validTransitions = map[Status][]Status{
	StatusPending: {StatusApproved, StatusRejected},
}

var ErrEmailTaken = errors.New("email already registered")
var ErrUserNotFound = errors.New("user not found")
var ErrApplicationNotFound = errors.New("designer application not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidInput = errors.New("invalid input")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrForbidden = errors.New("access forbidden")

// CanTransitionTo reports whether a transition from s to next is valid.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is defined from s.
func (s Status) Terminal() bool {
	return len(validTransitions[s]) == 0
}

// User models an authenticated actor in the system. The password hash
// never leaves the process: it is excluded from every JSON rendering.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name"`
	Role         Role       `json:"role"`
	Status       Status     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	AppliedAt    *time.Time `json:"applied_at,omitempty"`
	ApprovedAt   *time.Time `json:"approved_at,omitempty"`
	RejectedAt   *time.Time `json:"rejected_at,omitempty"`
}
