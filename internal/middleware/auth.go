package middleware

import (
	"net/http"
	"strings"

	"github.com/catalogico/storefront/pkg/jwtutil"
	"github.com/catalogico/storefront/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const ownerContextKey = "owner"

// JWTAuthMiddleware creates a middleware that validates owner JWT tokens
func JWTAuthMiddleware(jwtUtil *jwtutil.JWTUtil) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromEcho(c)

			// Extract the token from the Authorization header
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				log.Warn("Missing authorization header")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Missing authorization header"})
			}

			// Check if the header format is valid
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Warn("Invalid authorization header format")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid authorization header format"})
			}

			tokenString := parts[1]

			// Validate the token
			claims, err := jwtUtil.ValidateToken(tokenString)
			if err != nil {
				log.Warn("Invalid or expired token", zap.Error(err))
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid or expired token"})
			}

			// Store the claims in the context for later use
			c.Set(ownerContextKey, claims)
			log.Debug("JWT token validated successfully",
				zap.Uint("owner_id", claims.OwnerID),
				zap.String("email", claims.Email))

			return next(c)
		}
	}
}

// CurrentOwner returns the authenticated owner's claims, or nil
func CurrentOwner(c echo.Context) *jwtutil.OwnerClaims {
	claims, ok := c.Get(ownerContextKey).(*jwtutil.OwnerClaims)
	if !ok {
		return nil
	}
	return claims
}

// OwnerStoreID returns the store the authenticated owner manages. ok is false
// when the token carries no store (owner registered but store not created yet).
func OwnerStoreID(c echo.Context) (uint, bool) {
	claims := CurrentOwner(c)
	if claims == nil || claims.StoreID == nil {
		return 0, false
	}
	return *claims.StoreID, true
}
