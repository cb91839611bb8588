package ui

import (
	"sort"
	"sync"
)

// KeyDefinition defines the metadata for a configurable control key.
// All control keys are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults []string
	Help     string
	MenuOnly bool // If true, the key is left to text inputs while a form is shown
	Name     string
}

// AllKeyDefinitions contains all configurable control keys.
var AllKeyDefinitions = []KeyDefinition{
	{Name: "back", Defaults: []string{"esc"}, Help: "back"},
	{Name: "back_list", Defaults: []string{"backspace"}, Help: "back", MenuOnly: true},
	{Name: "confirm", Defaults: []string{"enter"}, Help: "run"},
	{Name: "quit", Defaults: []string{"ctrl+c"}, Help: "quit"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// ValidKeyNames returns all valid key binding names in sorted order.
func ValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}
