package handlers

import (
	"net/http"
	"strconv"
	"time"

	"bodegamart/internal/common"
	"bodegamart/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SaleHandlers handles sale recording and listing HTTP requests
type SaleHandlers struct {
	saleService services.SaleService
}

// NewSaleHandlers creates a new sale handlers instance
func NewSaleHandlers(saleService services.SaleService) *SaleHandlers {
	return &SaleHandlers{saleService: saleService}
}

// SaleItemRequest is one sale line in a record request
type SaleItemRequest struct {
	ProductID  uuid.UUID `json:"product_id" validate:"required"`
	Quantity   int       `json:"quantity" validate:"required"`
	TotalValue float64   `json:"total_value"`
	SaleDate   *string   `json:"sale_date"`
}

// RecordSalesRequest represents the sale recording request payload. A single
// sale and a batch share the same endpoint.
type RecordSalesRequest struct {
	Sales []SaleItemRequest `json:"sales" validate:"required"`
}

// RecordSales handles recording one or more sales. Items are processed in
// order; on failure the response carries whatever was recorded before it.
func (h *SaleHandlers) RecordSales(c echo.Context) error {
	ctx := c.Request().Context()

	var req RecordSalesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if len(req.Sales) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "At least one sale is required")
	}

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
	}
	profileID, ok := common.GetProfileIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Profile not found")
	}

	inputs := make([]services.SaleInput, 0, len(req.Sales))
	for _, item := range req.Sales {
		input := services.SaleInput{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			TotalValue: item.TotalValue,
		}
		if item.SaleDate != nil {
			date, err := time.Parse(time.RFC3339, *item.SaleDate)
			if err != nil {
				date, err = common.ValidateDateFormat(*item.SaleDate, "sale_date")
				if err != nil {
					return common.SendValidationError(c, "sale_date", err.Error())
				}
			}
			input.Date = date
		}
		inputs = append(inputs, input)
	}

	recorded, err := h.saleService.RecordSales(ctx, profileID, userID, inputs)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":    err.Error(),
			"recorded": recorded,
		})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"sales": recorded,
	})
}

// ListSales handles getting the profile's sales with pagination
func (h *SaleHandlers) ListSales(c echo.Context) error {
	ctx := c.Request().Context()

	profileID, ok := common.GetProfileIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Profile not found")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	limit, offset = common.ValidatePaginationParams(limit, offset)

	sales, err := h.saleService.List(ctx, profileID, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list sales")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"sales":  sales,
		"limit":  limit,
		"offset": offset,
	})
}
