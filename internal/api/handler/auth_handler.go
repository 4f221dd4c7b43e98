package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vovzone/designer-platform/internal/api/metrics"
	"github.com/vovzone/designer-platform/internal/core/domain"
	"github.com/vovzone/designer-platform/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	appService  ports.ApplicationService
}

func NewAuthHandler(authService ports.AuthService, appService ports.ApplicationService) *AuthHandler {
	return &AuthHandler{authService: authService, appService: appService}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type registerRequest struct {
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=8"`
	Name        string   `json:"name" validate:"required"`
	Company     string   `json:"company"`
	Phone       string   `json:"phone"`
	Website     string   `json:"website"`
	Bio         string   `json:"bio"`
	Specialties []string `json:"specialties"`
}

type registerResponse struct {
	ApplicationID string `json:"application_id"`
	Message       string `json:"message"`
}

type profileResponse struct {
	User     *domain.User            `json:"user"`
	Designer *domain.DesignerProfile `json:"designer,omitempty"`
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}

// Register submits a designer application.
//
// @Summary      Submit a designer application
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Designer application"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.appService.Submit(c.Request().Context(), ports.RegistrationInput{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		Company:     req.Company,
		Phone:       req.Phone,
		Website:     req.Website,
		Bio:         req.Bio,
		Specialties: req.Specialties,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, registerResponse{
		ApplicationID: id,
		Message:       "Application submitted successfully. Our team will review it and get back to you.",
	})
}

// Profile returns the current user, freshly loaded from the store.
//
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	_, email, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, designer, err := h.authService.Profile(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profileResponse{User: user, Designer: designer})
}

// Logout acknowledges the client-side logout and drops the session record.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if _, _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	token, _ := c.Get("token").(string)
	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}
