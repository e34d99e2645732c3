package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("DefaultLength", func(t *testing.T) {
		got, err := Generate(0)
		require.NoError(t, err)
		assert.Len(t, got, DefaultLength)
	})

	t.Run("CustomLength", func(t *testing.T) {
		got, err := Generate(20)
		require.NoError(t, err)
		assert.Len(t, got, 20)
	})

	t.Run("Alphabet", func(t *testing.T) {
		got, err := Generate(64)
		require.NoError(t, err)
		for _, r := range got {
			assert.True(t, strings.ContainsRune(alphabet, r), "unexpected rune %q", r)
		}
	})

	t.Run("Distinct", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			seen[MustGenerate(DefaultLength)] = true
		}
		assert.Len(t, seen, 100)
	})
}
