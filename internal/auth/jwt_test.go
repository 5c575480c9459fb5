package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jwtTestSecret = "testSecret"

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(jwtTestSecret))
	require.NoError(t, err)

	return signed
}

func TestJWTValidate(t *testing.T) {
	service := NewJWTAuthService(jwtTestSecret)

	t.Run("valid token", func(t *testing.T) {
		tokenStr := signedToken(t, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
			"iat": time.Now().Add(-time.Minute).Unix(),
		})

		valid, err := service.Validate(tokenStr)

		assert.True(t, valid)
		assert.NoError(t, err)
	})

	t.Run("empty token", func(t *testing.T) {
		valid, err := service.Validate("")

		assert.False(t, valid)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		tokenStr := signedToken(t, jwt.MapClaims{
			"exp": time.Now().Add(-time.Hour).Unix(),
		})

		valid, err := service.Validate(tokenStr)

		assert.False(t, valid)
		assert.Error(t, err)
	})

	t.Run("missing exp claim", func(t *testing.T) {
		tokenStr := signedToken(t, jwt.MapClaims{
			"iat": time.Now().Add(-time.Minute).Unix(),
		})

		valid, err := service.Validate(tokenStr)

		assert.False(t, valid)
		assert.EqualError(t, err, "missing exp claim")
	})

	t.Run("wrong secret", func(t *testing.T) {
		otherService := NewJWTAuthService("otherSecret")
		tokenStr := signedToken(t, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		valid, err := otherService.Validate(tokenStr)

		assert.False(t, valid)
		assert.Error(t, err)
	})
}
