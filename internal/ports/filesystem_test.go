package ports

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input    string
		expected string
	}{
		{"~/.config/customtab/settings.ini", filepath.Join(home, ".config/customtab/settings.ini")},
		{"/absolute/intent.yaml", "/absolute/intent.yaml"},
		{"relative/intent.yaml", "relative/intent.yaml"},
		{"/path/with~tilde", "/path/with~tilde"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ExpandPath(tt.input), "ExpandPath(%q)", tt.input)
	}
}
