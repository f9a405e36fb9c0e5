package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenServiceRoundTrip(t *testing.T) {
	tokens := NewTokenService("test-secret")

	signed, err := tokens.Generate(42, "demo@vhm.org")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "demo@vhm.org", claims.Email)
	assert.Equal(t, "anma.link", claims.Issuer)
}

func TestTokenServiceRejectsTamperedToken(t *testing.T) {
	tokens := NewTokenService("test-secret")

	signed, err := tokens.Generate(1, "demo@vhm.org")
	require.NoError(t, err)

	tampered := signed[:len(signed)-2] + "xx"
	_, err = tokens.Verify(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenServiceRejectsWrongSecret(t *testing.T) {
	tokens := NewTokenService("secret-a")
	other := NewTokenService("secret-b")

	signed, err := tokens.Generate(1, "demo@vhm.org")
	require.NoError(t, err)

	_, err = other.Verify(signed)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenServiceRejectsExpiredToken(t *testing.T) {
	expired := &TokenService{
		secret: []byte("test-secret"),
		issuer: "anma.link",
		ttl:    -time.Minute,
	}

	signed, err := expired.Generate(1, "demo@vhm.org")
	require.NoError(t, err)

	_, err = expired.Verify(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenServiceRejectsGarbage(t *testing.T) {
	tokens := NewTokenService("test-secret")

	_, err := tokens.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
