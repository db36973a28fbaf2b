package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndCheck(t *testing.T) {
	t.Parallel()

	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("Abc12345")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "Abc12345", hash)

	assert.True(t, hasher.Check("Abc12345", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestPasswordHasher_SaltedPerHash(t *testing.T) {
	t.Parallel()

	hasher := NewPasswordHasher(bcrypt.MinCost)

	first, err := hasher.Hash("Abc12345")
	assert.NoError(t, err)
	second, err := hasher.Hash("Abc12345")
	assert.NoError(t, err)

	// bcrypt salts per hash, so equal inputs must not collide.
	assert.NotEqual(t, first, second)
}

func TestNewPasswordHasher_ClampsInvalidCost(t *testing.T) {
	t.Parallel()

	hasher := NewPasswordHasher(999)
	hash, err := hasher.Hash("Abc12345")
	assert.NoError(t, err)
	assert.True(t, hasher.Check("Abc12345", hash))
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("long-enough-1"))
}
