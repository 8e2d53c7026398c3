package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/locvowork/gestao_rh/internal/service"
	"github.com/locvowork/gestao_rh/internal/service/serviceutils"
)

type DashboardHandler struct {
	svc service.DashboardService
}

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// SummaryHandler handles GET /api/dashboard
func (h *DashboardHandler) SummaryHandler(c echo.Context) error {
	summary, err := h.svc.GetSummary(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, summary)
}
