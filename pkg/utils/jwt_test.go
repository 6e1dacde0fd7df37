package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims JWTClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func validClaims() JWTClaims {
	return JWTClaims{
		UserID:   uuid.New(),
		TenantID: uuid.New(),
		Roles:    []string{"manager"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestVerifyAccessToken(t *testing.T) {
	v := NewTokenVerifier(testSecret)
	want := validClaims()

	got, err := v.VerifyAccessToken(sign(t, jwt.SigningMethodHS256, []byte(testSecret), want))

	require.NoError(t, err)
	assert.Equal(t, want.TenantID, got.TenantID)
	assert.True(t, got.HasRole("owner", "manager"))
	assert.False(t, got.HasRole("owner"))
}

func TestVerifyAccessToken_Rejects(t *testing.T) {
	v := NewTokenVerifier(testSecret)

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noTenant := validClaims()
	noTenant.TenantID = uuid.Nil

	noExpiry := validClaims()
	noExpiry.ExpiresAt = nil

	tests := map[string]string{
		"wrong secret": sign(t, jwt.SigningMethodHS256, []byte("other"), validClaims()),
		"expired":      sign(t, jwt.SigningMethodHS256, []byte(testSecret), expired),
		"no tenant":    sign(t, jwt.SigningMethodHS256, []byte(testSecret), noTenant),
		"no expiry":    sign(t, jwt.SigningMethodHS256, []byte(testSecret), noExpiry),
		"garbage":      "not.a.token",
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := v.VerifyAccessToken(token)
			assert.Error(t, err)
		})
	}
}
