package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/customer-portal/pkg/jwt"
)

const secret = "test-secret"

func TestExpiry_TokenVigente(t *testing.T) {
	tok, err := jwt.Generate(secret, "u1", "admin", time.Hour)
	require.NoError(t, err)

	exp, err := jwt.Expiry(secret, tok, time.Now())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 2*time.Second)
}

func TestExpiry_SinSecretNoVerificaFirma(t *testing.T) {
	tok, err := jwt.Generate("otro-secreto", "u1", "user", time.Hour)
	require.NoError(t, err)

	_, err = jwt.Expiry("", tok, time.Now())
	assert.NoError(t, err)

	_, err = jwt.Expiry(secret, tok, time.Now())
	assert.Error(t, err)
}

func TestExpiry_Expirado(t *testing.T) {
	tok, err := jwt.Generate(secret, "u1", "user", time.Minute)
	require.NoError(t, err)

	_, err = jwt.Expiry(secret, tok, time.Now().Add(2*time.Minute))
	assert.ErrorIs(t, err, jwt.ErrExpired)
}

func TestExpiry_SinExp(t *testing.T) {
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{"sub": "u1"}).
		SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = jwt.Expiry(secret, tok, time.Now())
	assert.ErrorIs(t, err, jwt.ErrNoExpiry)
}

func TestParse_Role(t *testing.T) {
	tok, err := jwt.Generate(secret, "u9", "admin", time.Hour)
	require.NoError(t, err)

	claims, err := jwt.Parse("", tok)
	require.NoError(t, err)
	assert.Equal(t, "u9", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
}

func TestParse_Basura(t *testing.T) {
	_, err := jwt.Parse("", "no.es.jwt")
	assert.Error(t, err)
}
