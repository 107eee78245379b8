package handlers

import (
	"net/http"

	"bodegamart/internal/common"
	"bodegamart/internal/services"

	"github.com/labstack/echo/v4"
)

// AlertHandlers handles stock alert HTTP requests
type AlertHandlers struct {
	alertService services.AlertService
}

// NewAlertHandlers creates a new alert handlers instance
func NewAlertHandlers(alertService services.AlertService) *AlertHandlers {
	return &AlertHandlers{alertService: alertService}
}

// ListAlerts handles getting the profile's derived stock alerts
func (h *AlertHandlers) ListAlerts(c echo.Context) error {
	ctx := c.Request().Context()

	profileID, ok := common.GetProfileIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Profile not found")
	}

	alerts, err := h.alertService.Alerts(ctx, profileID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to compute stock alerts")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"alerts": alerts,
	})
}
