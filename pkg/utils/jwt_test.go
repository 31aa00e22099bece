package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, method jwt.SigningMethod, userID, role, secret string, ttl time.Duration) string {
	t.Helper()

	now := time.Now()
	token := jwt.NewWithClaims(method, Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestParseJWT(t *testing.T) {
	token := signToken(t, jwt.SigningMethodHS256, "42", "ADMIN", "secret", time.Hour)

	claims, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, "ADMIN", claims.Role)

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))
}

func TestParseJWT_Rejects(t *testing.T) {
	valid := signToken(t, jwt.SigningMethodHS256, "1", "customer", "secret", time.Hour)
	expired := signToken(t, jwt.SigningMethodHS256, "1", "customer", "secret", -time.Minute)
	hs512 := signToken(t, jwt.SigningMethodHS512, "1", "customer", "secret", time.Hour)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{name: "wrong secret", token: valid, secret: "other"},
		{name: "expired", token: expired, secret: "secret"},
		{name: "garbage", token: "not-a-token", secret: "secret"},
		{name: "missing secret", token: valid, secret: ""},
		{name: "other hmac algorithm", token: hs512, secret: "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJWT(tt.token, tt.secret)
			assert.Error(t, err)
		})
	}
}
