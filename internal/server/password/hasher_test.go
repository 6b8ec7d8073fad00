package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	digest, err := h.Hash("Abc12345")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotContains(t, digest, "Abc12345")

	assert.True(t, h.Verify("Abc12345", digest))
	assert.False(t, h.Verify("wrong", digest))
	assert.False(t, h.Verify("Abc12345", "not-a-digest"))
}

func TestHasher_DigestsDifferButBothVerify(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	first, err := h.Hash("Abc12345")
	require.NoError(t, err)
	second, err := h.Hash("Abc12345")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "bcrypt digests are salted")
	assert.True(t, h.Verify("Abc12345", first))
	assert.True(t, h.Verify("Abc12345", second))
}

func TestNewHasher_CostOutOfRangeFallsBack(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultCost, NewHasher(0).cost)
	assert.Equal(t, DefaultCost, NewHasher(99).cost)
	assert.Equal(t, bcrypt.MinCost, NewHasher(bcrypt.MinCost).cost)
}

func TestHasher_EmptyPlaintext(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)
	digest, err := h.Hash("")
	require.NoError(t, err)
	assert.True(t, h.Verify("", digest))
	assert.False(t, h.Verify("x", digest))
}
