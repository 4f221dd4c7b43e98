package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vovzone/designer-platform/internal/core/domain"
	"github.com/vovzone/designer-platform/internal/core/ports"
)

type stubAuthService struct {
	loginFn   func(ctx context.Context, email, password string) (string, *domain.User, error)
	profileFn func(ctx context.Context, email string) (*domain.User, *domain.DesignerProfile, error)
	logoutFn  func(ctx context.Context, token string) error
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Profile(ctx context.Context, email string) (*domain.User, *domain.DesignerProfile, error) {
	return s.profileFn(ctx, email)
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	return s.logoutFn(ctx, token)
}

type stubApplicationService struct {
	submitFn      func(ctx context.Context, input ports.RegistrationInput) (string, error)
	approveFn     func(ctx context.Context, userID string) error
	rejectFn      func(ctx context.Context, userID string) error
	listPendingFn func(ctx context.Context) ([]domain.Application, error)
}

func (s *stubApplicationService) Submit(ctx context.Context, input ports.RegistrationInput) (string, error) {
	return s.submitFn(ctx, input)
}

func (s *stubApplicationService) Approve(ctx context.Context, userID string) error {
	return s.approveFn(ctx, userID)
}

func (s *stubApplicationService) Reject(ctx context.Context, userID string) error {
	return s.rejectFn(ctx, userID)
}

func (s *stubApplicationService) ListPending(ctx context.Context) ([]domain.Application, error) {
	return s.listPendingFn(ctx)
}

func newTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	auth := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			if email != "a@x.com" || password != "secret123" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "signed-token", &domain.User{ID: "u1", Email: email, Role: domain.RoleDesigner, Status: domain.StatusApproved, PasswordHash: "$2a$10$hash"}, nil
		},
	}
	h := NewAuthHandler(auth, &stubApplicationService{})

	c, rec := newTestContext(http.MethodPost, "/auth/login", `{"email":"a@x.com","password":"secret123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "signed-token" {
		t.Fatalf("token missing from response")
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["email"] != "a@x.com" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	// The hash must never serialize.
	if strings.Contains(rec.Body.String(), "$2a$10$hash") {
		t.Fatalf("password hash leaked in response")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	auth := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(auth, &stubApplicationService{})

	c, _ := newTestContext(http.MethodPost, "/auth/login", `{"email":"a@x.com","password":"wrongpass"}`)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubApplicationService{})

	c, _ := newTestContext(http.MethodPost, "/auth/login", `{"email":"not-an-email"}`)
	err := h.Login(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	apps := &stubApplicationService{
		submitFn: func(ctx context.Context, input ports.RegistrationInput) (string, error) {
			if input.Email != "ann@x.com" || input.Name != "Ann" {
				t.Fatalf("unexpected input: %+v", input)
			}
			if len(input.Specialties) != 1 || input.Specialties[0] != "Modern" {
				t.Fatalf("specialties not forwarded: %v", input.Specialties)
			}
			return "app_1", nil
		},
	}
	h := NewAuthHandler(&stubAuthService{}, apps)

	body := `{"email":"ann@x.com","password":"secret123","name":"Ann","company":"Studio","specialties":["Modern"]}`
	c, rec := newTestContext(http.MethodPost, "/auth/register", body)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["application_id"] != "app_1" {
		t.Fatalf("application id missing: %+v", resp)
	}
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubApplicationService{})

	c, _ := newTestContext(http.MethodPost, "/auth/register", `{"email":"a@x.com","password":"short","name":"Ann"}`)
	err := h.Register(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	apps := &stubApplicationService{
		submitFn: func(ctx context.Context, input ports.RegistrationInput) (string, error) {
			return "", domain.ErrEmailTaken
		},
	}
	h := NewAuthHandler(&stubAuthService{}, apps)

	c, _ := newTestContext(http.MethodPost, "/auth/register", `{"email":"a@x.com","password":"secret123","name":"Ann"}`)
	if err := h.Register(c); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthHandler_Profile(t *testing.T) {
	auth := &stubAuthService{
		profileFn: func(ctx context.Context, email string) (*domain.User, *domain.DesignerProfile, error) {
			return &domain.User{ID: "u1", Email: email, Role: domain.RoleDesigner},
				&domain.DesignerProfile{ID: "d1", UserID: "u1", Specialties: []string{"Modern"}}, nil
		},
	}
	h := NewAuthHandler(auth, &stubApplicationService{})

	c, rec := newTestContext(http.MethodGet, "/auth/profile", "")
	c.Set("user_id", "u1")
	c.Set("email", "ann@x.com")
	c.Set("role", "designer")

	if err := h.Profile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := resp["designer"]; !ok {
		t.Fatalf("designer profile missing: %+v", resp)
	}
}

func TestAuthHandler_Profile_NoClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubApplicationService{})

	c, _ := newTestContext(http.MethodGet, "/auth/profile", "")
	err := h.Profile(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	var deleted string
	auth := &stubAuthService{
		logoutFn: func(ctx context.Context, token string) error {
			deleted = token
			return nil
		},
	}
	h := NewAuthHandler(auth, &stubApplicationService{})

	c, rec := newTestContext(http.MethodPost, "/auth/logout", "")
	c.Set("user_id", "u1")
	c.Set("email", "ann@x.com")
	c.Set("role", "designer")
	c.Set("token", "raw-token")

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted != "raw-token" {
		t.Fatalf("session not dropped for token, got %q", deleted)
	}
}
