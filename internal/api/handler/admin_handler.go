package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vovzone/designer-platform/internal/api/metrics"
	"github.com/vovzone/designer-platform/internal/core/domain"
	"github.com/vovzone/designer-platform/internal/core/ports"
)

// AdminHandler serves the application review endpoints. Role gating
// happens in the RBAC middleware; by the time these run the caller is
// a verified admin.
type AdminHandler struct {
	appService ports.ApplicationService
}

func NewAdminHandler(appService ports.ApplicationService) *AdminHandler {
	return &AdminHandler{appService: appService}
}

type applicationsResponse struct {
	Applications []domain.Application `json:"applications"`
}

// ListPending returns all open designer applications, newest first.
//
// @Summary      List pending designer applications
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  applicationsResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/applications/pending [get]
func (h *AdminHandler) ListPending(c echo.Context) error {
	apps, err := h.appService.ListPending(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, applicationsResponse{Applications: apps})
}

// Approve transitions a pending application to approved.
//
// @Summary      Approve a designer application
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "Applicant user id"
// @Success      200     {object}  map[string]string
// @Failure      403     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /admin/applications/{userId}/approve [post]
func (h *AdminHandler) Approve(c echo.Context) error {
	if err := h.appService.Approve(c.Request().Context(), c.Param("userId")); err != nil {
		return err
	}
	metrics.ApplicationDecisionsTotal.WithLabelValues("approved").Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "designer approved"})
}

// Reject transitions a pending application to rejected.
//
// @Summary      Reject a designer application
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "Applicant user id"
// @Success      200     {object}  map[string]string
// @Failure      403     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /admin/applications/{userId}/reject [post]
func (h *AdminHandler) Reject(c echo.Context) error {
	if err := h.appService.Reject(c.Request().Context(), c.Param("userId")); err != nil {
		return err
	}
	metrics.ApplicationDecisionsTotal.WithLabelValues("rejected").Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "designer application rejected"})
}
