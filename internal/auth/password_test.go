package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, ComparePassword(hash, "correct horse battery staple"))
	assert.Error(t, ComparePassword(hash, "correct horse battery stapler"))
	assert.Error(t, ComparePassword(hash, ""))
}

func TestHashPasswordDistinctSalts(t *testing.T) {
	first, err := HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)

	// Same plaintext, different salt, different digest; both verify.
	assert.NotEqual(t, first, second)
	assert.NoError(t, ComparePassword(first, "s3cret"))
	assert.NoError(t, ComparePassword(second, "s3cret"))
}

func TestComparePasswordMalformedDigest(t *testing.T) {
	assert.Error(t, ComparePassword("not-a-bcrypt-digest", "anything"))
	assert.Error(t, ComparePassword("", "anything"))
}
