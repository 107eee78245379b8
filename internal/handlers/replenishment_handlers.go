package handlers

import (
	"context"
	"errors"
	"net/http"

	"bodegamart/internal/common"
	"bodegamart/internal/models"
	"bodegamart/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ReplenishmentHandlers handles replenishment request HTTP endpoints
type ReplenishmentHandlers struct {
	replenishmentService services.ReplenishmentService
}

// NewReplenishmentHandlers creates a new replenishment handlers instance
func NewReplenishmentHandlers(replenishmentService services.ReplenishmentService) *ReplenishmentHandlers {
	return &ReplenishmentHandlers{replenishmentService: replenishmentService}
}

// CreateReplenishmentRequest represents the single-request creation payload
type CreateReplenishmentRequest struct {
	ProductID  uuid.UUID `json:"product_id" validate:"required"`
	SupplierID uuid.UUID `json:"supplier_id" validate:"required"`
	Quantity   int       `json:"quantity" validate:"required"`
}

// CreateReplenishment handles creating a single replenishment request
func (h *ReplenishmentHandlers) CreateReplenishment(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateReplenishmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.ProductID == uuid.Nil {
		return common.SendValidationError(c, "product_id", "product_id is required")
	}
	if req.SupplierID == uuid.Nil {
		return common.SendValidationError(c, "supplier_id", "supplier_id is required")
	}

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
	}
	profileID, ok := common.GetProfileIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Profile not found")
	}

	request, err := h.replenishmentService.Create(ctx, profileID, userID, req.ProductID, req.SupplierID, req.Quantity)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, request)
}

// BatchItemRequest is one product line in a batch creation request
type BatchItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity" validate:"required"`
}

// CreateBatchReplenishmentRequest represents the batch creation payload. All
// items go to one supplier.
type CreateBatchReplenishmentRequest struct {
	SupplierID uuid.UUID          `json:"supplier_id" validate:"required"`
	Items      []BatchItemRequest `json:"items" validate:"required"`
}

// CreateBatchReplenishment handles creating a batch of replenishment requests.
// Items are inserted one by one; a mid-batch failure leaves earlier items
// persisted and returns them alongside the error.
func (h *ReplenishmentHandlers) CreateBatchReplenishment(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateBatchReplenishmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.SupplierID == uuid.Nil {
		return common.SendValidationError(c, "supplier_id", "supplier_id is required")
	}
	if len(req.Items) == 0 {
		return common.SendValidationError(c, "items", "at least one item is required")
	}

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
	}
	profileID, ok := common.GetProfileIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Profile not found")
	}

	items := make([]models.ReplenishmentItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, models.ReplenishmentItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
		})
	}

	created, err := h.replenishmentService.CreateBatch(ctx, profileID, userID, req.SupplierID, items)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   err.Error(),
			"created": created,
		})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"requests": created,
	})
}

// ListReplenishments handles getting the profile's replenishment requests
func (h *ReplenishmentHandlers) ListReplenishments(c echo.Context) error {
	ctx := c.Request().Context()

	profileID, ok := common.GetProfileIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Profile not found")
	}

	requests, err := h.replenishmentService.List(ctx, profileID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list replenishment requests")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"requests": requests,
	})
}

// TransitionRequest carries optional reviewer notes for a status transition
type TransitionRequest struct {
	Notes *string `json:"notes"`
}

// ApproveReplenishment handles approving a pending request. Approval stocks
// the product and finalizes the request as completed in one step.
func (h *ReplenishmentHandlers) ApproveReplenishment(c echo.Context) error {
	return h.transition(c, h.replenishmentService.Approve)
}

// RejectReplenishment handles rejecting a pending request
func (h *ReplenishmentHandlers) RejectReplenishment(c echo.Context) error {
	return h.transition(c, h.replenishmentService.Reject)
}

// CompleteReplenishment handles marking a pending request completed without
// touching stock
func (h *ReplenishmentHandlers) CompleteReplenishment(c echo.Context) error {
	return h.transition(c, h.replenishmentService.Complete)
}

func (h *ReplenishmentHandlers) transition(c echo.Context, fn func(ctx context.Context, profileID, id uuid.UUID, notes *string) (*models.ReplenishmentRequest, error)) error {
	ctx := c.Request().Context()

	requestID, err := common.ValidateUUID(c.Param("id"), "request ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var req TransitionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	profileID, ok := common.GetProfileIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Profile not found")
	}

	request, err := fn(ctx, profileID, requestID, req.Notes)
	if err != nil {
		if errors.Is(err, services.ErrNotPending) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusNotFound, "Replenishment request not found")
	}

	return c.JSON(http.StatusOK, request)
}

// DeleteReplenishment handles deleting a request in any state
func (h *ReplenishmentHandlers) DeleteReplenishment(c echo.Context) error {
	ctx := c.Request().Context()

	requestID, err := common.ValidateUUID(c.Param("id"), "request ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profileID, ok := common.GetProfileIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Profile not found")
	}

	if err := h.replenishmentService.Delete(ctx, profileID, requestID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete replenishment request")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Replenishment request deleted successfully",
	})
}
