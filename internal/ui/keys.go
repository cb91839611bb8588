package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"spacerun/internal/config"
	"spacerun/internal/domain"
)

// KeyMap holds the control bindings. Chords of the command tree are matched
// only when no control binding matches.
type KeyMap struct {
	Back     key.Binding
	BackList key.Binding
	Confirm  key.Binding
	Quit     key.Binding
}

// NewKeyMap creates the control bindings, applying customKeys over the defaults.
// Pass nil for customKeys to use default bindings.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Back:     buildBinding("back", defaults, customKeys),
		BackList: buildBinding("back_list", defaults, customKeys),
		Confirm:  buildBinding("confirm", defaults, customKeys),
		Quit:     buildBinding("quit", defaults, customKeys),
	}
}

// buildBinding creates a binding from the key definition, using custom keys if provided.
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), def.Help),
	)
}

// MenuHelp returns the bindings shown below the command list.
func (k KeyMap) MenuHelp() []key.Binding {
	return []key.Binding{k.Back, k.Quit}
}

// FormHelp returns the bindings shown below a form.
func (k KeyMap) FormHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Back, k.Quit}
}

// ControlChords maps every control key expressible as a chord to its binding name.
// Chords in this map can never be reached from a menu.
func (k KeyMap) ControlChords() map[domain.KeyChord]string {
	chords := make(map[domain.KeyChord]string)
	for _, b := range []struct {
		name    string
		binding key.Binding
	}{
		{"back", k.Back},
		{"back_list", k.BackList},
		{"confirm", k.Confirm},
		{"quit", k.Quit},
	} {
		for _, name := range b.binding.Keys() {
			if chord, ok := ChordFromKeyName(name); ok {
				chords[chord] = b.name
			}
		}
	}
	return chords
}
