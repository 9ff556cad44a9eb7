package auth

import (
	"crypto/rand"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seenhub/seenhub-server/internal/domain"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := VerifyPassword(hash, "correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword(hash, "wrong password")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_RejectsEmpty(t *testing.T) {
	_, err := HashPassword("")
	require.Error(t, err)
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	h1, err := HashPassword("same password")
	require.NoError(t, err)
	h2, err := HashPassword("same password")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	ok, err := VerifyPassword("not-a-real-hash", "whatever")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadOrGenerateKey(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "auth.key")

	key1, err := LoadOrGenerateKey(keyPath)
	require.NoError(t, err)
	require.Len(t, key1, 32)

	// Second load returns the persisted key, not a fresh one.
	key2, err := LoadOrGenerateKey(keyPath)
	require.NoError(t, err)
	assert.Equal(t, key1, key2)
}

func newTestTokenService(t *testing.T, duration time.Duration) *TokenService {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	svc, err := NewTokenService(key, duration)
	require.NoError(t, err)
	return svc
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	user := &domain.User{ID: "user-V1StGXR8_Z5jdHi6B-myT", LoginName: "simon"}
	token, err := svc.GenerateSessionToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifySessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "simon", claims.LoginName)
	assert.Equal(t, user.ID, claims.Subject)
	assert.True(t, strings.HasPrefix(claims.TokenID, "token-"))
}

func TestTokenService_RejectsExpired(t *testing.T) {
	svc := newTestTokenService(t, -time.Minute)

	token, err := svc.GenerateSessionToken(&domain.User{ID: "user-x", LoginName: "simon"})
	require.NoError(t, err)

	_, err = svc.VerifySessionToken(token)
	require.Error(t, err)
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)
	_, err := svc.VerifySessionToken("v4.local.garbage")
	require.Error(t, err)
}

func TestTokenService_RejectsForeignKey(t *testing.T) {
	svcA := newTestTokenService(t, time.Hour)
	svcB := newTestTokenService(t, time.Hour)

	token, err := svcA.GenerateSessionToken(&domain.User{ID: "user-x", LoginName: "simon"})
	require.NoError(t, err)

	_, err = svcB.VerifySessionToken(token)
	require.Error(t, err)
}

func TestNewTokenService_RejectsShortKey(t *testing.T) {
	_, err := NewTokenService([]byte("too short"), time.Hour)
	require.Error(t, err)
}
