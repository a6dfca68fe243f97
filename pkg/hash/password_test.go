package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hashed, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.NotContains(t, hashed, "correct horse")

	ok, err := h.Compare(hashed, "correct horse")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Compare(hashed, "wrong horse")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewBcryptHasher_ClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(1).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(99).cost)
}
