package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"template-backend/pkg/jwt"
)

const testSecret = "jwt-test-secret"

func TestManager_RoundTrip(t *testing.T) {
	manager := jwt.NewManager(testSecret, time.Hour)

	userID := uuid.NewString()
	token, err := manager.GenerateAccessToken(userID, "user@test.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "user@test.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "access", claims.Type)
}

func TestManager_WrongSecret(t *testing.T) {
	issuer := jwt.NewManager("issuer-secret", time.Hour)
	verifier := jwt.NewManager("verifier-secret", time.Hour)

	token, err := issuer.GenerateAccessToken(uuid.NewString(), "user@test.com", "customer")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestManager_ExpiredToken(t *testing.T) {
	manager := jwt.NewManager(testSecret, -time.Minute)

	token, err := manager.GenerateAccessToken(uuid.NewString(), "user@test.com", "customer")
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.Error(t, err)
}

func TestManager_RejectsWrongTokenType(t *testing.T) {
	manager := jwt.NewManager(testSecret, time.Hour)

	// A token signed with the right secret but the wrong type claim
	claims := jwt.Claims{
		UserID: uuid.NewString(),
		Type:   "refresh",
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  gojwt.NewNumericDate(time.Now()),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	// The generic check passes, the access-token check does not
	_, err = manager.ValidateToken(token)
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(token)
	assert.ErrorContains(t, err, "invalid token type")
}

func TestManager_RejectsUnsignedToken(t *testing.T) {
	manager := jwt.NewManager(testSecret, time.Hour)

	claims := jwt.Claims{
		UserID: uuid.NewString(),
		Type:   "access",
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).
		SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.Error(t, err)
}
