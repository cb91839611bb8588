package config

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/mitchellh/mapstructure"
)

// KeyBindingValue supports "esc" or ["esc", "ctrl+g"] in the configuration file.
type KeyBindingValue []string

// KeyBindingsConfig holds control key overrides.
// Keys are binding names (e.g. "back", "confirm"), values are bubbletea key names.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for unknown names, empty values and keys bound twice.
// The validNames parameter should come from ui.ValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	names := make([]string, 0, len(k))
	for name := range k {
		names = append(names, name)
	}
	sort.Strings(names)

	keyToAction := make(map[string]string)
	for _, name := range names {
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}

		for _, key := range k[name] {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// keyBindingValueHook lifts a single string into a KeyBindingValue.
func keyBindingValueHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != reflect.TypeOf(KeyBindingValue{}) || from.Kind() != reflect.String {
			return data, nil
		}
		s := data.(string)
		if s == "" {
			return KeyBindingValue{}, nil
		}
		return KeyBindingValue{s}, nil
	}
}
