package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vovzone/designer-platform/internal/core/ports"
)

// DesignerHandler serves the designer dashboard.
type DesignerHandler struct {
	authService ports.AuthService
}

func NewDesignerHandler(authService ports.AuthService) *DesignerHandler {
	return &DesignerHandler{authService: authService}
}

type dashboardResponse struct {
	CompletedProjects int     `json:"completed_projects"`
	PortfolioViews    int     `json:"portfolio_views"`
	PortfolioLikes    int     `json:"portfolio_likes"`
	Rating            float64 `json:"rating"`
	Verified          bool    `json:"verified"`
}

// Dashboard returns the portfolio counters from the caller's profile.
//
// @Summary      Designer dashboard stats
// @Tags         designer
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /designer/dashboard [get]
func (h *DesignerHandler) Dashboard(c echo.Context) error {
	_, email, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	_, profile, err := h.authService.Profile(c.Request().Context(), email)
	if err != nil {
		return err
	}

	resp := dashboardResponse{}
	if profile != nil {
		resp = dashboardResponse{
			CompletedProjects: profile.CompletedProjects,
			PortfolioViews:    profile.PortfolioViews,
			PortfolioLikes:    profile.PortfolioLikes,
			Rating:            profile.Rating,
			Verified:          profile.Verified,
		}
	}
	return c.JSON(http.StatusOK, resp)
}
