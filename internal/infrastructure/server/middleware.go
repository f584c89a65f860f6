package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	httpHandlers "github.com/excelenergy/cms/internal/adapters/http"
	"github.com/excelenergy/cms/internal/application/services"
)

// adminMiddleware guards admin routes via the session cookie
func (s *Server) adminMiddleware(authService *services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(httpHandlers.AdminTokenCookie)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			claims, err := authService.ValidateToken(cookie.Value)
			if err != nil {
				s.logger.LogSecurityEvent("invalid_token", "", c.RealIP(), map[string]interface{}{
					"error": err.Error(),
				})
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			// Set admin claims in context
			c.Set("user", claims.UserID)
			c.Set("username", claims.Username)

			return next(c)
		}
	}
}

// adminFromContext returns the authenticated admin's user id.
func adminFromContext(c echo.Context) string {
	userID, ok := c.Get("user").(string)
	if !ok {
		return ""
	}
	return userID
}
