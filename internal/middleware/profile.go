package middleware

import (
	"context"
	"net/http"

	"bodegamart/internal/common"
	"bodegamart/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ProfileHeader names the header carrying the active profile identifier.
const ProfileHeader = "X-Profile-ID"

// ProfileMiddleware resolves the active profile for scoped routes. The
// profile must belong to the authenticated user; everything downstream trusts
// the profile ID in the context.
type ProfileMiddleware struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileMiddleware(profileRepo repositories.ProfileRepository) *ProfileMiddleware {
	return &ProfileMiddleware{profileRepo: profileRepo}
}

func (m *ProfileMiddleware) Require() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := common.GetUserIDFromContext(c.Request().Context())
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
			}

			profileIDStr := c.Request().Header.Get(ProfileHeader)
			if profileIDStr == "" {
				return echo.NewHTTPError(http.StatusBadRequest, "Missing X-Profile-ID header")
			}

			profileID, err := uuid.Parse(profileIDStr)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "Invalid profile ID format")
			}

			if _, err := m.profileRepo.GetByID(c.Request().Context(), userID, profileID); err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "Profile does not belong to user")
			}

			ctx := context.WithValue(c.Request().Context(), common.ProfileIDKey, profileID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
