package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter22hunter22")
	require.NoError(t, err)

	assert.NoError(t, CheckPassword(hash, "hunter22hunter22"))
	assert.Error(t, CheckPassword(hash, "wrong-password"))
}
