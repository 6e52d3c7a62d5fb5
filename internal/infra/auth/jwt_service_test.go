package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testAccessSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidateAccessToken(t *testing.T) {
	jwtService := newTestJWTService(t)
	userID := uuid.New()
	roles := []string{"customer", "operator"}

	accessToken, err := jwtService.GenerateAccessToken(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	claims, err := jwtService.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService := newTestJWTService(t)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_Expired(t *testing.T) {
	jwtService := newTestJWTService(t)
	issued := time.Now().Add(-time.Hour)
	jwtService.now = func() time.Time { return issued }

	token, err := jwtService.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	jwtService.now = time.Now
	_, err = jwtService.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsForeignTokens(t *testing.T) {
	jwtService := newTestJWTService(t)
	now := time.Now()

	sign := func(t *testing.T, method jwt.SigningMethod, key any, claims *service.Claims) string {
		t.Helper()
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)

		return token
	}
	validClaims := func() *service.Claims {
		return &service.Claims{
			UserID: uuid.New(),
			Type:   "access",
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
			},
		}
	}

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "other secret",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte("another-secret"), validClaims())
			},
		},
		{
			name: "refresh token",
			token: func(t *testing.T) string {
				claims := validClaims()
				claims.Type = "refresh"

				return sign(t, jwt.SigningMethodHS256, []byte(testAccessSecret), claims)
			},
		},
		{
			name: "no expiry",
			token: func(t *testing.T) string {
				claims := validClaims()
				claims.ExpiresAt = nil

				return sign(t, jwt.SigningMethodHS256, []byte(testAccessSecret), claims)
			},
		},
		{
			name: "no user",
			token: func(t *testing.T) string {
				claims := validClaims()
				claims.UserID = uuid.Nil

				return sign(t, jwt.SigningMethodHS256, []byte(testAccessSecret), claims)
			},
		},
		{
			name: "unsigned",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, validClaims())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := jwtService.ValidateToken(tt.token(t))
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt access secret must be provided")
}
