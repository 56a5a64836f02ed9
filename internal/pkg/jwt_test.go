package pkg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour, 24*time.Hour)

	pair, err := tm.GeneratePair(7, "me@test.com", "ROLE_USER")
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)

	claims, err := tm.ParseAccess(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UserID)
	assert.Equal(t, "me@test.com", claims.Email)
	assert.Equal(t, "ROLE_USER", claims.Role)

	claims, err = tm.ParseRefresh(pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UserID)
}

func TestTokenManager_ExpiredAccess(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute, 24*time.Hour)

	access, err := tm.MakeAccess(7, "me@test.com", "ROLE_USER")
	require.NoError(t, err)

	_, err = tm.ParseAccess(access)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_ExpiredRefresh(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour, -time.Minute)

	refresh, err := tm.MakeRefresh(7, "me@test.com", "ROLE_USER")
	require.NoError(t, err)

	_, err = tm.ParseRefresh(refresh)
	assert.ErrorIs(t, err, ErrRefreshExpired)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour, 24*time.Hour)
	other := NewTokenManager("other-secret", time.Hour, 24*time.Hour)

	access, err := tm.MakeAccess(7, "me@test.com", "ROLE_USER")
	require.NoError(t, err)

	_, err = other.ParseAccess(access)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_KindMismatch(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour, 24*time.Hour)

	pair, err := tm.GeneratePair(7, "me@test.com", "ROLE_USER")
	require.NoError(t, err)

	// refresh 有效期长，放进 access 头也不能通过校验
	_, err = tm.ParseAccess(pair.Refresh)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = tm.ParseRefresh(pair.Access)
	assert.ErrorIs(t, err, ErrRefreshInvalid)
}

func TestTokenManager_GarbageToken(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour, 24*time.Hour)

	_, err := tm.ParseAccess("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = tm.ParseRefresh("not-a-token")
	assert.ErrorIs(t, err, ErrRefreshInvalid)
}
