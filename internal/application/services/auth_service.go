package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/excelenergy/cms/internal/infrastructure/config"
	"github.com/excelenergy/cms/internal/infrastructure/logger"
)

// Claims represents the admin session token claims
type Claims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AdminUser is the token payload returned by verify.
type AdminUser struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// AuthService authenticates the single admin account and issues the
// signed session token. Verification is stateless: signature and
// expiry only, no revocation list.
type AuthService struct {
	adminConfig config.AdminConfig
	jwtConfig   config.JWTConfig
	logger      *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(adminConfig config.AdminConfig, jwtConfig config.JWTConfig, logger *logger.Logger) *AuthService {
	return &AuthService{
		adminConfig: adminConfig,
		jwtConfig:   jwtConfig,
		logger:      logger,
	}
}

// Authenticate verifies the credentials and returns a signed token.
// The login name matches either the admin username or email.
func (s *AuthService) Authenticate(username, password string) (string, error) {
	if username != s.adminConfig.Username && username != s.adminConfig.Email {
		s.logger.Warn("Login attempt with unknown username", "username", username)
		return "", fmt.Errorf("invalid credentials")
	}

	err := bcrypt.CompareHashAndPassword([]byte(s.adminConfig.PasswordHash), []byte(password))
	if err != nil {
		s.logger.Warn("Login attempt with invalid password", "username", username)
		return "", fmt.Errorf("invalid credentials")
	}

	token, err := s.generateToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("Admin logged in", "username", s.adminConfig.Username)
	return token, nil
}

// ValidateToken validates a session token and returns its claims
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.Secret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

// TokenTTL returns the configured session lifetime (cookie max-age).
func (s *AuthService) TokenTTL() time.Duration {
	return s.jwtConfig.ExpiresIn
}

func (s *AuthService) generateToken() (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   "1",
		Username: s.adminConfig.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtConfig.ExpiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.jwtConfig.Issuer,
			Subject:   s.adminConfig.Username,
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtConfig.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}
