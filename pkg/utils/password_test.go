package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("s3cr3tpass")
	require.NoError(t, err)
	assert.NotEmpty(t, hashed)
	assert.NotEqual(t, "s3cr3tpass", hashed)
}

func TestCheckPasswordHash(t *testing.T) {
	hashed, err := HashPassword("s3cr3tpass")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("s3cr3tpass", hashed))
	assert.False(t, CheckPasswordHash("wrongpass", hashed))
}
