package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccountNumber(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		n, err := GenerateAccountNumber()
		require.NoError(t, err)
		assert.Regexp(t, `^\d{16}$`, n)
		seen[n] = true
	}
	assert.Greater(t, len(seen), 1, "numbers should not repeat")
}

func TestGenerateIBAN(t *testing.T) {
	assert.Equal(t, "PK01231234567890123456", GenerateIBAN("1234567890123456"))
}
