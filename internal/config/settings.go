package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/anmitsu/go-shlex"
	"github.com/mitchellh/mapstructure"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"spacerun/internal/domain"
)

// Defaults applied by NewSettings.
const (
	DefaultFontSize = 14
	DefaultShell    = "/bin/sh -c"
)

// Format is a configuration file syntax.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported config file extension %q", filepath.Ext(path))
	}
}

// Settings is the loaded configuration.
type Settings struct {
	Commands         domain.Command
	FontSize         int
	Position         WindowPosition
	Keys             KeyBindingsConfig
	Shell            []string
	QuoteVariables   bool
	CloseOnFocusLost bool
	// Path is the file the settings were read from, empty when parsed from memory.
	Path string
}

// NewSettings returns settings with every default applied and no commands.
func NewSettings() *Settings {
	shell, _ := shlex.Split(DefaultShell, true)
	return &Settings{
		FontSize:         DefaultFontSize,
		Keys:             KeyBindingsConfig{},
		Shell:            shell,
		QuoteVariables:   true,
		CloseOnFocusLost: true,
	}
}

// fileSettings mirrors the top-level document. Optional scalars are pointers so
// that absent keys keep their defaults.
type fileSettings struct {
	Commands         any               `mapstructure:"commands"`
	FontSize         *int              `mapstructure:"font_size"`
	Position         string            `mapstructure:"position"`
	Keys             KeyBindingsConfig `mapstructure:"keys"`
	Shell            any               `mapstructure:"shell"`
	QuoteVariables   *bool             `mapstructure:"quote_variables"`
	CloseOnFocusLost *bool             `mapstructure:"close_on_focus_lost"`
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Settings, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, &domain.ConfigError{Path: path, Reason: "cannot load", Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.ConfigError{Path: path, Reason: "cannot read", Err: err}
	}

	settings, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	settings.Path = path
	return settings, nil
}

// Parse decodes a configuration document of the given format.
func Parse(data []byte, format Format) (*Settings, error) {
	doc, err := decodeDocument(data, format)
	if err != nil {
		return nil, &domain.ConfigError{Reason: fmt.Sprintf("invalid %s", format), Err: err}
	}

	var raw fileSettings
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  keyBindingValueHook(),
		ErrorUnused: true,
		Result:      &raw,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(doc); err != nil {
		return nil, &domain.ConfigError{Reason: "invalid settings", Err: err}
	}

	return raw.toSettings()
}

func (raw fileSettings) toSettings() (*Settings, error) {
	settings := NewSettings()

	if raw.Commands == nil {
		return nil, &domain.ConfigError{Path: "commands", Reason: "missing command tree"}
	}
	commands, err := domain.DecodeCommandTree(raw.Commands, "commands")
	if err != nil {
		return nil, err
	}
	settings.Commands = commands

	if raw.FontSize != nil {
		if *raw.FontSize <= 0 {
			return nil, &domain.ConfigError{Path: "font_size", Reason: fmt.Sprintf("must be positive, got %d", *raw.FontSize)}
		}
		settings.FontSize = *raw.FontSize
	}

	position, err := ParseWindowPosition(raw.Position)
	if err != nil {
		return nil, &domain.ConfigError{Path: "position", Reason: "invalid value", Err: err}
	}
	settings.Position = position

	if raw.Keys != nil {
		settings.Keys = raw.Keys
	}

	if raw.Shell != nil {
		shell, err := decodeShell(raw.Shell)
		if err != nil {
			return nil, &domain.ConfigError{Path: "shell", Reason: "invalid value", Err: err}
		}
		settings.Shell = shell
	}

	if raw.QuoteVariables != nil {
		settings.QuoteVariables = *raw.QuoteVariables
	}
	if raw.CloseOnFocusLost != nil {
		settings.CloseOnFocusLost = *raw.CloseOnFocusLost
	}

	return settings, nil
}

func decodeDocument(data []byte, format Format) (map[string]any, error) {
	doc := map[string]any{}
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return doc, nil
}

// decodeShell accepts "bash -lc" or ["bash", "-lc"].
func decodeShell(value any) ([]string, error) {
	var shell []string
	switch v := value.(type) {
	case string:
		parts, err := shlex.Split(v, true)
		if err != nil {
			return nil, err
		}
		shell = parts
	case []any:
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d: expected a string, got %T", i, item)
			}
			shell = append(shell, s)
		}
	default:
		return nil, fmt.Errorf("expected a string or a list, got %T", value)
	}

	if len(shell) == 0 || shell[0] == "" {
		return nil, fmt.Errorf("empty shell")
	}
	return shell, nil
}
