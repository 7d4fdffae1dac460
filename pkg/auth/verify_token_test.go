package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyTokenRoundTrip(t *testing.T) {
	svc := NewVerifyTokenService("test-signing-key", 5*time.Minute)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token, userID)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
}

func TestVerifyTokenExpired(t *testing.T) {
	svc := NewVerifyTokenService("test-signing-key", -1*time.Minute)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token, userID)
	assert.ErrorContains(t, err, "expired")
}

func TestVerifyTokenWrongUser(t *testing.T) {
	svc := NewVerifyTokenService("test-signing-key", 5*time.Minute)

	token, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token, uuid.New())
	assert.Error(t, err)
}

func TestVerifyTokenTampered(t *testing.T) {
	svc := NewVerifyTokenService("test-signing-key", 5*time.Minute)
	other := NewVerifyTokenService("another-key", 5*time.Minute)
	userID := uuid.New()

	token, err := other.GenerateToken(userID)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token, userID)
	assert.ErrorContains(t, err, "invalid signature")

	_, err = svc.ValidateToken("not-a-token", userID)
	assert.ErrorContains(t, err, "invalid token format")
}

func TestVerifyURLAndDecodeUID(t *testing.T) {
	svc := NewVerifyTokenService("test-signing-key", 5*time.Minute)
	userID := uuid.New()

	url, err := svc.VerifyURL("http://localhost:8080/", userID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/api/v1/verify/"))

	// the route is registered without a trailing slash; the emailed link must
	// hit it directly instead of bouncing through a redirect
	assert.False(t, strings.HasSuffix(url, "/"))

	// uid segment decodes back to the user id
	parts := strings.Split(url, "/")
	require.GreaterOrEqual(t, len(parts), 2)
	uid := parts[len(parts)-2]

	decoded, err := DecodeUID(uid)
	require.NoError(t, err)
	assert.Equal(t, userID, decoded)
}
