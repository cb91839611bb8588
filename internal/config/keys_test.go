package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyBindingsConfig_Validate(t *testing.T) {
	valid := []string{"back", "back_list", "confirm", "quit"}

	tests := []struct {
		name    string
		config  KeyBindingsConfig
		wantErr string
	}{
		{"nil", nil, ""},
		{"valid", KeyBindingsConfig{"back": {"esc"}, "quit": {"ctrl+c", "ctrl+q"}}, ""},
		{"empty list uses default", KeyBindingsConfig{"back": {}}, ""},
		{"unknown name", KeyBindingsConfig{"archive": {"a"}}, "unknown key binding 'archive'"},
		{"empty value", KeyBindingsConfig{"back": {""}}, "contains empty value"},
		{"duplicate", KeyBindingsConfig{"back": {"esc"}, "quit": {"esc"}}, "key 'esc' is assigned to both 'back' and 'quit'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate(valid)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestParseWindowPosition(t *testing.T) {
	for _, s := range []string{"", "top", "bottom", "centered"} {
		p, err := ParseWindowPosition(s)
		assert.NoError(t, err)
		assert.Equal(t, WindowPosition(s), p)
	}

	_, err := ParseWindowPosition("left")
	assert.Error(t, err)
}
