package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	// bcrypt.MinCost keeps the test fast
	first, err := HashPassword("hunter2", bcrypt.MinCost)
	require.NoError(t, err, "hashing should not fail")

	second, err := HashPassword("hunter2", bcrypt.MinCost)
	require.NoError(t, err, "hashing should not fail")

	assert.NotEqual(t, "hunter2", first, "digest should not be the plaintext")
	assert.NotEqual(t, first, second, "same password should yield different digests")
	assert.True(t, CheckPassword("hunter2", first))
	assert.True(t, CheckPassword("hunter2", second))
}

func TestCheckPassword(t *testing.T) {
	digest, err := HashPassword("hunter2", bcrypt.MinCost)
	require.NoError(t, err, "hashing should not fail")

	var tts = []struct {
		name   string
		plain  string
		digest string
		ok     bool
	}{
		{
			name:   "correct password",
			plain:  "hunter2",
			digest: digest,
			ok:     true,
		},
		{
			name:   "wrong password",
			plain:  "hunter3",
			digest: digest,
			ok:     false,
		},
		{
			name:   "empty password",
			plain:  "",
			digest: digest,
			ok:     false,
		},
		{
			name:   "garbage digest",
			plain:  "hunter2",
			digest: "not a digest",
			ok:     false,
		},
	}

	for _, tt := range tts {
		assert.Equal(t, tt.ok, CheckPassword(tt.plain, tt.digest), tt.name)
	}
}
