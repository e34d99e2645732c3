package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"VPN", "vpn"},
		{"  Printer ", "printer"},
		{"Wi-Fi", "wi-fi"},
		{"   ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Normalize(tt.input))
	}
}

func TestNormalizeAll_DropsEmptiesAndDuplicates(t *testing.T) {
	got := NormalizeAll([]string{"VPN", "vpn", " ", "Printer", "PRINTER", "email"})
	assert.Equal(t, []string{"vpn", "printer", "email"}, got)
}

func TestNewTag(t *testing.T) {
	tg, err := NewTag("  Network ")
	require.NoError(t, err)
	assert.Equal(t, "network", tg.Name())

	_, err = NewTag("   ")
	assert.Error(t, err)
}
