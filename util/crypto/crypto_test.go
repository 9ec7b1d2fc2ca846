package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, CheckPasswordHash(hash, "secret1"))
	assert.False(t, CheckPasswordHash(hash, "secret2"))
}

func TestHashIsSalted(t *testing.T) {
	h1, err := HashPassword("same-password")
	assert.NoError(t, err)
	h2, err := HashPassword("same-password")
	assert.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPasswordHash(h1, "same-password"))
	assert.True(t, CheckPasswordHash(h2, "same-password"))
}

func TestCheckPasswordHashUnsetHash(t *testing.T) {
	// An account without a password must fail verification, not crash.
	assert.False(t, CheckPasswordHash("", "anything"))
	assert.False(t, CheckPasswordHash("", ""))
}

func TestCheckPasswordHashMalformedHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("not-a-bcrypt-hash", "anything"))
	assert.False(t, CheckPasswordHash("$2a$garbage", "anything"))
}
