package handlers

import (
	"net/http"
	"strconv"
	"time"

	"bodegamart/internal/common"
	"bodegamart/internal/services"

	"github.com/labstack/echo/v4"
)

// ClosingHandlers handles day-end closing HTTP requests
type ClosingHandlers struct {
	closingService services.ClosingService
}

// NewClosingHandlers creates a new closing handlers instance
func NewClosingHandlers(closingService services.ClosingService) *ClosingHandlers {
	return &ClosingHandlers{closingService: closingService}
}

// RecordClosingRequest represents the day-end closing request payload. Totals
// of zero are computed from the day's recorded sales.
type RecordClosingRequest struct {
	Date       *string `json:"date"`
	TotalSales int     `json:"total_sales"`
	TotalValue float64 `json:"total_value"`
}

// RecordClosing handles recording a day-end closing
func (h *ClosingHandlers) RecordClosing(c echo.Context) error {
	ctx := c.Request().Context()

	var req RecordClosingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	var date time.Time
	if req.Date != nil {
		parsed, err := common.ValidateDateFormat(*req.Date, "date")
		if err != nil {
			return common.SendValidationError(c, "date", err.Error())
		}
		date = parsed
	}

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
	}
	profileID, ok := common.GetProfileIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Profile not found")
	}

	closing, err := h.closingService.Record(ctx, profileID, userID, date, req.TotalSales, req.TotalValue)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, closing)
}

// ListClosings handles getting the profile's closings with pagination
func (h *ClosingHandlers) ListClosings(c echo.Context) error {
	ctx := c.Request().Context()

	profileID, ok := common.GetProfileIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Profile not found")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	limit, offset = common.ValidatePaginationParams(limit, offset)

	closings, err := h.closingService.List(ctx, profileID, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list closings")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"closings": closings,
		"limit":    limit,
		"offset":   offset,
	})
}

// ExportClosing handles exporting a closing day's sales as a CSV in object
// storage and returns a presigned download URL
func (h *ClosingHandlers) ExportClosing(c echo.Context) error {
	ctx := c.Request().Context()

	closingID, err := common.ValidateUUID(c.Param("id"), "closing ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profileID, ok := common.GetProfileIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Profile not found")
	}

	url, err := h.closingService.Export(ctx, profileID, closingID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to export closing")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"download_url": url,
	})
}
