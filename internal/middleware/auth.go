package middleware

import (
	"context"
	"fmt"
	"net/http"

	"bodegamart/internal/common"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// NewTokenKeyfunc returns the key lookup used to validate incoming tokens.
// When a JWKS URL is configured the hosted auth platform's published keys are
// used (and refreshed in the background); otherwise the shared HMAC secret.
func NewTokenKeyfunc(jwtSecret, jwksURL string) (jwt.Keyfunc, error) {
	if jwksURL != "" {
		jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{})
		if err != nil {
			return nil, fmt.Errorf("failed to load JWKS from %s: %w", jwksURL, err)
		}
		return jwks.Keyfunc, nil
	}

	return func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	}, nil
}

// Identity extracts the authenticated user from the token validated by the
// JWT middleware and stores the user ID and contact claims in the request
// context. Tokens follow the hosted platform's shape: `sub` is the user ID,
// `email` and `user_metadata.{username,phone}` carry the contact details.
func Identity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing token")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid claims")
			}

			sub, ok := claims["sub"].(string)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing user_id in token")
			}

			userID, err := uuid.Parse(sub)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid user_id format")
			}

			contact := common.UserContact{}
			if email, ok := claims["email"].(string); ok {
				contact.Email = email
			}
			if metadata, ok := claims["user_metadata"].(map[string]interface{}); ok {
				if username, ok := metadata["username"].(string); ok {
					contact.Username = username
				}
				if phone, ok := metadata["phone"].(string); ok {
					contact.Phone = phone
				}
			}

			ctx := context.WithValue(c.Request().Context(), common.UserIDKey, userID)
			ctx = context.WithValue(ctx, common.UserContactKey, contact)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
