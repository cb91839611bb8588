package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spacerun/internal/domain"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const jsoncConfig = `{
	// launcher
	"font_size": 18,
	"position": "top",
	"commands": {
		"shortcut": "a",
		"name": "Root",
		"children": [
			{"shortcut": "b", "name": "Hello", "cmd": "echo hi"},
			{"shortcut": "C-g", "name": "Git", "children": [
				{"shortcut": "l", "name": "Log", "cmd": "git log -n {{count}}", "defaults": {"count": 5}},
			]},
		],
	},
}`

const yamlConfig = `
font_size: 12
position: bottom
shell: bash -lc
quote_variables: false
keys:
  back: ctrl+g
  quit: [ctrl+c, ctrl+q]
commands:
  name: Root
  children:
    - shortcut: b
      name: Hello
      cmd: echo hi
    - shortcut: 1
      name: One
      cmd: echo {{msg}}
      defaults:
        msg: one
`

const tomlConfig = `
close_on_focus_lost = false
shell = ["zsh", "-c"]

[commands]
name = "Root"

[[commands.children]]
shortcut = "b"
name = "Hello"
cmd = "echo hi"

[[commands.children]]
shortcut = "g"
name = "Git"
children = [
  { shortcut = "s", name = "Status", cmd = "git status" },
]
`

func TestLoad_JSONC(t *testing.T) {
	path := writeConfig(t, "config.jsonc", jsoncConfig)

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, settings.Path)
	assert.Equal(t, 18, settings.FontSize)
	assert.Equal(t, PositionTop, settings.Position)
	assert.Equal(t, []string{"/bin/sh", "-c"}, settings.Shell)
	assert.True(t, settings.QuoteVariables)
	assert.True(t, settings.CloseOnFocusLost)

	assert.Equal(t, "Root", settings.Commands.Name())
	git := domain.FindChildForShortcut(settings.Commands, domain.MustParseKeyChord("C-g"))
	require.NotNil(t, git)
	log, ok := domain.FindChildForShortcut(git, domain.NewKeyChord("l")).(*domain.Leaf)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"count": "5"}, log.Task().InitialValues())
}

func TestLoad_YAML(t *testing.T) {
	settings, err := Load(writeConfig(t, "config.yaml", yamlConfig))
	require.NoError(t, err)

	assert.Equal(t, 12, settings.FontSize)
	assert.Equal(t, PositionBottom, settings.Position)
	assert.Equal(t, []string{"bash", "-lc"}, settings.Shell)
	assert.False(t, settings.QuoteVariables)
	assert.Equal(t, KeyBindingsConfig{
		"back": {"ctrl+g"},
		"quit": {"ctrl+c", "ctrl+q"},
	}, settings.Keys)

	one := domain.FindChildForShortcut(settings.Commands, domain.NewKeyChord("1"))
	require.NotNil(t, one)
	assert.Equal(t, "One", one.Name())
}

func TestLoad_TOML(t *testing.T) {
	settings, err := Load(writeConfig(t, "config.toml", tomlConfig))
	require.NoError(t, err)

	assert.Equal(t, DefaultFontSize, settings.FontSize)
	assert.Equal(t, PositionUnset, settings.Position)
	assert.Equal(t, []string{"zsh", "-c"}, settings.Shell)
	assert.False(t, settings.CloseOnFocusLost)

	items := domain.DisplayableChildren(settings.Commands)
	require.Len(t, items, 2)
	assert.Equal(t, "Hello", items[0].Name)
	assert.Equal(t, "Git", items[1].Name)

	git := domain.FindChildForShortcut(settings.Commands, domain.NewKeyChord("g"))
	assert.NotNil(t, domain.FindChildForShortcut(git, domain.NewKeyChord("s")))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
		path   string
	}{
		{"malformed json", FormatJSON, `{"commands": `, ""},
		{"malformed yaml", FormatYAML, "commands: [", ""},
		{"malformed toml", FormatTOML, "commands = ", ""},
		{"missing commands", FormatJSON, `{"font_size": 10}`, "commands"},
		{"unknown top-level key", FormatJSON, `{"commands": {"children": []}, "colour": "red"}`, ""},
		{"zero font size", FormatJSON, `{"commands": {"children": []}, "font_size": 0}`, "font_size"},
		{"font size wrong type", FormatJSON, `{"commands": {"children": []}, "font_size": "big"}`, ""},
		{"bad position", FormatJSON, `{"commands": {"children": []}, "position": "left"}`, "position"},
		{"empty shell", FormatJSON, `{"commands": {"children": []}, "shell": ""}`, "shell"},
		{"shell wrong type", FormatJSON, `{"commands": {"children": []}, "shell": 3}`, "shell"},
		{"unbalanced shell quote", FormatJSON, `{"commands": {"children": []}, "shell": "sh -c '"}`, "shell"},
		{"bad tree", FormatJSON, `{"commands": {"children": [{"shortcut": "Z-a", "name": "A", "cmd": "ls"}]}}`, "commands.children[0].shortcut"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)

			var configErr *domain.ConfigError
			require.True(t, errors.As(err, &configErr))
			assert.Equal(t, tt.path, configErr.Path)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "config.json"))
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "config.ini", "x=1"))
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	path := writeConfig(t, "config.json", `{"commands": {"name": "Root"}}`)
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestNewSettings_Defaults(t *testing.T) {
	settings := NewSettings()

	assert.Equal(t, DefaultFontSize, settings.FontSize)
	assert.Equal(t, []string{"/bin/sh", "-c"}, settings.Shell)
	assert.True(t, settings.QuoteVariables)
	assert.True(t, settings.CloseOnFocusLost)
	assert.Nil(t, settings.Commands)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"config.json", FormatJSON},
		{"config.jsonc", FormatJSON},
		{"config.YAML", FormatYAML},
		{"config.yml", FormatYAML},
		{"config.toml", FormatTOML},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			format, err := FormatFromPath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}

	_, err := FormatFromPath("config")
	assert.Error(t, err)
}
