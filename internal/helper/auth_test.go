package helper

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	auth := SetupAuth("test-secret")

	token, err := auth.GenerateToken(7, "admin@campuslancer.io")
	require.NoError(t, err)

	claims, err := auth.VerifyToken("Bearer " + token)
	require.NoError(t, err)

	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "admin@campuslancer.io", claims.Email)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := SetupAuth("secret-a").GenerateToken(1, "a@b.c")
	require.NoError(t, err)

	_, err = SetupAuth("secret-b").VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyToken_Missing(t *testing.T) {
	_, err := SetupAuth("s").VerifyToken("   ")
	assert.Error(t, err)
}

func TestVerifyToken_MalformedClaims(t *testing.T) {
	secret := "test-secret"
	auth := SetupAuth(secret)
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{name: "no user_id", claims: jwt.MapClaims{"email": "a@b.c", "exp": exp}},
		{name: "user_id is a string", claims: jwt.MapClaims{"user_id": "7", "email": "a@b.c", "exp": exp}},
		{name: "email is a number", claims: jwt.MapClaims{"user_id": 7, "email": 42, "exp": exp}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := jwt.NewWithClaims(jwt.SigningMethodHS256, tt.claims)
			signed, err := token.SignedString([]byte(secret))
			require.NoError(t, err)

			_, err = auth.VerifyToken(signed)
			assert.Error(t, err)
		})
	}
}

func TestGenerateToken_MissingInputs(t *testing.T) {
	auth := SetupAuth("s")

	_, err := auth.GenerateToken(0, "a@b.c")
	assert.Error(t, err)

	_, err = auth.GenerateToken(1, "")
	assert.Error(t, err)
}
