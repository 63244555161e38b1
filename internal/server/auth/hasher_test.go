package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("pass1")
	require.NoError(t, err)
	assert.NotEqual(t, "pass1", hash)

	ok, err := h.Verify("pass1", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("pass2", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_SaltDiffersPerHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestBcryptHasher_ClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.MinCost, NewBcryptHasher(1).cost)
	assert.Equal(t, bcrypt.MaxCost, NewBcryptHasher(99).cost)
	assert.Equal(t, 10, NewBcryptHasher(10).cost)
}

func TestBcryptHasher_VerifyGarbageHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	ok, err := h.Verify("pass1", "not-a-bcrypt-hash")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_LongPasswords(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	for _, n := range []int{5, 72, 73, 200} {
		pw := strings.Repeat("p", n)

		hash, err := h.Hash(pw)
		require.NoError(t, err, "length %d", n)

		ok, err := h.Verify(pw, hash)
		require.NoError(t, err, "length %d", n)
		assert.True(t, ok, "length %d", n)

		ok, err = h.Verify(strings.Repeat("q", n), hash)
		require.NoError(t, err, "length %d", n)
		assert.False(t, ok, "length %d", n)
	}
}

func TestBcryptHasher_OnlyFirst72BytesCount(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	prefix := strings.Repeat("a", 72)
	hash, err := h.Hash(prefix + "tail-one")
	require.NoError(t, err)

	ok, err := h.Verify(prefix+"tail-two", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}
