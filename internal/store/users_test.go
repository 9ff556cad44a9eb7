package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seenhub/seenhub-server/internal/domain"
)

func createTestUser(id, login string) *domain.User {
	return &domain.User{
		ID:           id,
		LoginName:    login,
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA",
		DisplayName:  "Test User",
		CreatedAt:    time.Now(),
	}
}

func TestCreateUser_AndGetByLogin(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser("user-001", "Simon")
	require.NoError(t, store.CreateUser(ctx, user))

	byID, err := store.GetUser(ctx, "user-001")
	require.NoError(t, err)
	assert.Equal(t, "Simon", byID.LoginName)

	// Login lookup is case-insensitive.
	byLogin, err := store.GetUserByLogin(ctx, "sImOn")
	require.NoError(t, err)
	assert.Equal(t, "user-001", byLogin.ID)
}

func TestCreateUser_DuplicateLogin(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, store.CreateUser(ctx, createTestUser("user-001", "simon")))

	err := store.CreateUser(ctx, createTestUser("user-002", "SIMON"))
	require.ErrorIs(t, err, ErrUserExists)
}

func TestGetUser_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.GetUser(context.Background(), "user-missing")
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = store.GetUserByLogin(context.Background(), "nobody")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUser(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser("user-001", "simon")
	require.NoError(t, store.CreateUser(ctx, user))

	user.DisplayName = "Simon R."
	require.NoError(t, store.UpdateUser(ctx, user))

	retrieved, err := store.GetUser(ctx, "user-001")
	require.NoError(t, err)
	assert.Equal(t, "Simon R.", retrieved.DisplayName)
}

func TestSoftDeleteUser(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, store.CreateUser(ctx, createTestUser("user-001", "simon")))

	require.NoError(t, store.SoftDeleteUser(ctx, "user-001"))
	require.NoError(t, store.SoftDeleteUser(ctx, "user-001"))

	retrieved, err := store.GetUser(ctx, "user-001")
	require.NoError(t, err)
	assert.True(t, retrieved.Deleted)

	// The login name stays reserved.
	err = store.CreateUser(ctx, createTestUser("user-002", "simon"))
	require.ErrorIs(t, err, ErrUserExists)
}

func TestCountUsers(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	count, err := store.CountUsers(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, store.CreateUser(ctx, createTestUser("user-001", "simon")))
	require.NoError(t, store.CreateUser(ctx, createTestUser("user-002", "ada")))

	count, err = store.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
