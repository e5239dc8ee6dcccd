package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perillat/noteshare/auth"
)

// TestUserRepository runs the repository contract against any
// implementation.
func TestUserRepository(t *testing.T, repo auth.UserRepository) {
	users := []*auth.User{
		{
			Username:     "pizza",
			PasswordHash: "$2a$10$0000000000000000000000",
		},
		{
			Username:     "yolo",
			PasswordHash: "$2a$10$1111111111111111111111",
		},
	}

	for _, user := range users {
		err := repo.Insert(user)
		require.NoError(t, err, "insert should not fail")
		assert.NotZero(t, user.ID, "insert should assign an id")
		assert.False(t, user.CreatedAt.IsZero(), "insert should assign a creation time")
	}
	assert.NotEqual(t, users[0].ID, users[1].ID, "ids should be unique")

	for _, user := range users {
		got, err := repo.Get(user.ID)
		require.NoError(t, err, "get should not fail")
		require.NotNil(t, got, "user should be found")
		assert.Equal(t, user.Username, got.Username)
		assert.Equal(t, user.PasswordHash, got.PasswordHash)
	}

	err := repo.Insert(&auth.User{
		Username:     "pizza",
		PasswordHash: "$2a$10$2222222222222222222222",
	})
	require.Error(t, err, "duplicate username should be rejected")
	assert.Equal(t, auth.ErrUsernameTaken, err)

	got, err := repo.Get(12312)
	require.NoError(t, err, "get on an unknown id should not fail")
	assert.Nil(t, got, "unknown id should yield nil")

	got, err = repo.GetByUsername("pizza")
	require.NoError(t, err, "get by username should not fail")
	require.NotNil(t, got, "user should be found by username")
	assert.Equal(t, users[0].ID, got.ID)

	got, err = repo.GetByUsername("nope")
	require.NoError(t, err, "get by unknown username should not fail")
	assert.Nil(t, got, "unknown username should yield nil")

	list, err := repo.List()
	require.NoError(t, err, "list should not fail")
	assert.Len(t, list, len(users))
}
