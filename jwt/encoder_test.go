package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecoder(t *testing.T) {
	ed := NewEncodeDecoder([]byte("test key"), 0)

	token, err := ed.Encode(42, "pizza")
	require.NoError(t, err, "encoding should not fail")

	claims, err := ed.Decode(token)
	require.NoError(t, err, "decoding should not fail")
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "pizza", claims.Username)
	assert.Equal(t, "noteshare", claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(DefaultTTL), claims.ExpiresAt.Time, 5*time.Second)
}

func TestEncodeDecoder_WrongKey(t *testing.T) {
	ed := NewEncodeDecoder([]byte("test key"), 0)
	other := NewEncodeDecoder([]byte("other key"), 0)

	token, err := ed.Encode(42, "pizza")
	require.NoError(t, err, "encoding should not fail")

	_, err = other.Decode(token)
	assert.Equal(t, ErrInvalidSignature, err)
}

func TestEncodeDecoder_Expired(t *testing.T) {
	key := []byte("test key")
	claims := Claims{
		UserID:   42,
		Username: "pizza",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			Issuer:    "noteshare",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err, "signing should not fail")

	_, err = NewEncodeDecoder(key, 0).Decode(token)
	assert.Equal(t, ErrExpired, err)
}

func TestClaims_ExpiryBoundary(t *testing.T) {
	issued := time.Now()
	claims := Claims{
		UserID:   42,
		Username: "pizza",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(86400 * time.Second)),
		},
	}

	assert.True(t, claims.VerifyExpiresAt(issued.Add(86399*time.Second), true), "token should still be valid 1s before expiry")
	assert.False(t, claims.VerifyExpiresAt(issued.Add(86401*time.Second), true), "token should be rejected 1s after expiry")
}

func TestEncodeDecoder_TTL(t *testing.T) {
	ed := NewEncodeDecoder([]byte("test key"), time.Hour)

	token, err := ed.Encode(42, "pizza")
	require.NoError(t, err, "encoding should not fail")

	claims, err := ed.Decode(token)
	require.NoError(t, err, "decoding should not fail")
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}
