package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/excelenergy/cms/internal/infrastructure/config"
	"github.com/excelenergy/cms/internal/infrastructure/logger"
)

func newTestAuthService(t *testing.T, expiresIn time.Duration) *AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	adminCfg := config.AdminConfig{
		Username:     "admin",
		Email:        "admin@excelenergy.in",
		PasswordHash: string(hash),
	}
	jwtCfg := config.JWTConfig{
		Secret:    "test-secret",
		ExpiresIn: expiresIn,
		Issuer:    "excelenergy-cms",
	}

	return NewAuthService(adminCfg, jwtCfg, logger.NewNop())
}

func TestAuthenticateWithUsername(t *testing.T) {
	svc := newTestAuthService(t, time.Hour)

	token, err := svc.Authenticate("admin", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestAuthenticateWithEmail(t *testing.T) {
	svc := newTestAuthService(t, time.Hour)

	token, err := svc.Authenticate("admin@excelenergy.in", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestAuthenticateRejectsWrongPassword(t *testing.T) {
	svc := newTestAuthService(t, time.Hour)

	_, err := svc.Authenticate("admin", "wrong")
	assert.Error(t, err)
}

func TestAuthenticateRejectsUnknownUser(t *testing.T) {
	svc := newTestAuthService(t, time.Hour)

	_, err := svc.Authenticate("someone", "admin123")
	assert.Error(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(t, time.Hour)

	token, err := svc.Authenticate("admin", "admin123")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "excelenergy-cms", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := newTestAuthService(t, -time.Minute)

	token, err := svc.Authenticate("admin", "admin123")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := newTestAuthService(t, time.Hour)

	token, err := svc.Authenticate("admin", "admin123")
	require.NoError(t, err)

	other := NewAuthService(config.AdminConfig{
		Username:     "admin",
		PasswordHash: "x",
	}, config.JWTConfig{
		Secret:    "different-secret",
		ExpiresIn: time.Hour,
	}, logger.NewNop())

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestAuthService(t, time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenTTL(t *testing.T) {
	svc := newTestAuthService(t, 168*time.Hour)
	assert.Equal(t, 168*time.Hour, svc.TokenTTL())
}
