package handlers

import (
	"net/http"

	"bodegamart/internal/common"
	"bodegamart/internal/models"
	"bodegamart/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ProfileHandlers handles business profile HTTP requests
type ProfileHandlers struct {
	profileRepo repositories.ProfileRepository
}

// NewProfileHandlers creates a new profile handlers instance
func NewProfileHandlers(profileRepo repositories.ProfileRepository) *ProfileHandlers {
	return &ProfileHandlers{profileRepo: profileRepo}
}

// CreateProfileRequest represents the profile creation request payload
type CreateProfileRequest struct {
	Name    string  `json:"name" validate:"required"`
	Address *string `json:"address"`
}

// CreateProfile handles creating a new business profile for the account
func (h *ProfileHandlers) CreateProfile(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := common.ValidateRequiredString(req.Name, "name"); err != nil {
		return common.SendValidationError(c, "name", err.Error())
	}

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
	}

	profile := &models.Profile{
		ID:      uuid.New(),
		UserID:  userID,
		Name:    req.Name,
		Address: req.Address,
	}

	if err := h.profileRepo.Create(ctx, profile); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create profile")
	}

	return c.JSON(http.StatusCreated, profile)
}

// ListProfiles handles getting the account's profiles
func (h *ProfileHandlers) ListProfiles(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
	}

	profiles, err := h.profileRepo.List(ctx, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list profiles")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"profiles": profiles,
	})
}

// GetProfile handles getting profile details by ID
func (h *ProfileHandlers) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()

	profileID, err := common.ValidateUUID(c.Param("id"), "profile ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
	}

	profile, err := h.profileRepo.GetByID(ctx, userID, profileID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Profile not found")
	}

	return c.JSON(http.StatusOK, profile)
}

// DeleteProfile handles deleting a profile
func (h *ProfileHandlers) DeleteProfile(c echo.Context) error {
	ctx := c.Request().Context()

	profileID, err := common.ValidateUUID(c.Param("id"), "profile ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
	}

	if _, err := h.profileRepo.GetByID(ctx, userID, profileID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Profile not found")
	}

	if err := h.profileRepo.Delete(ctx, userID, profileID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete profile")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Profile deleted successfully",
	})
}
