package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/excelenergy/cms/internal/application/services"
	"github.com/excelenergy/cms/internal/infrastructure/logger"
)

// AdminTokenCookie is the session cookie carrying the signed token.
const AdminTokenCookie = "admin_token"

// LoginRequest is the login payload; the username field also accepts
// the admin email.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	authService *services.AuthService
	secure      bool
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler. secure marks the session
// cookie Secure (production deployments behind TLS).
func NewAuthHandler(authService *services.AuthService, secure bool, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		secure:      secure,
		logger:      logger,
	}
}

// Login verifies the admin credentials and sets the session cookie
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Username and password are required")
	}

	token, err := h.authService.Authenticate(req.Username, req.Password)
	if err != nil {
		h.logger.LogSecurityEvent("login_failed", req.Username, c.RealIP(), nil)
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}

	c.SetCookie(&http.Cookie{
		Name:     AdminTokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.authService.TokenTTL().Seconds()),
	})

	return c.JSON(http.StatusOK, echo.Map{"success": true, "token": token})
}

// Verify reports whether the request carries a valid session cookie
func (h *AuthHandler) Verify(c echo.Context) error {
	cookie, err := c.Cookie(AdminTokenCookie)
	if err != nil || cookie.Value == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"authenticated": false})
	}

	claims, err := h.authService.ValidateToken(cookie.Value)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"authenticated": false})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"authenticated": true,
		"user": services.AdminUser{
			UserID:   claims.UserID,
			Username: claims.Username,
		},
	})
}

// Logout clears the session cookie. The token itself stays valid until
// expiry; verification is stateless.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     AdminTokenCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
