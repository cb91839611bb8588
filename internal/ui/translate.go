package ui

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"spacerun/internal/domain"
)

var functionKeys = map[tea.KeyType]domain.Key{
	tea.KeyF1:  "f1",
	tea.KeyF2:  "f2",
	tea.KeyF3:  "f3",
	tea.KeyF4:  "f4",
	tea.KeyF5:  "f5",
	tea.KeyF6:  "f6",
	tea.KeyF7:  "f7",
	tea.KeyF8:  "f8",
	tea.KeyF9:  "f9",
	tea.KeyF10: "f10",
	tea.KeyF11: "f11",
	tea.KeyF12: "f12",
}

// ChordFromKeyMsg translates a terminal key press into a chord.
// Upper-case letters become shift chords. Terminals do not report the super key.
func ChordFromKeyMsg(msg tea.KeyMsg) (domain.KeyChord, bool) {
	var chord domain.KeyChord
	chord.Modifiers.Alt = msg.Alt

	switch {
	case msg.Type == tea.KeyRunes:
		if len(msg.Runes) != 1 || msg.Paste {
			return domain.KeyChord{}, false
		}
		r := msg.Runes[0]
		if r == ' ' {
			chord.Key = "space"
			break
		}
		if unicode.IsUpper(r) {
			chord.Modifiers.Shift = true
			r = unicode.ToLower(r)
		}
		chord.Key = domain.Key(string(r))
	case msg.Type == tea.KeySpace:
		chord.Key = "space"
	case msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ:
		chord.Modifiers.Ctrl = true
		chord.Key = domain.Key(string(rune('a' + int(msg.Type-tea.KeyCtrlA))))
	default:
		fk, ok := functionKeys[msg.Type]
		if !ok {
			return domain.KeyChord{}, false
		}
		chord.Key = fk
	}

	if !domain.IsValidKey(chord.Key) {
		return domain.KeyChord{}, false
	}
	return chord, true
}

// ChordFromKeyName translates a bubbles key name such as "ctrl+c", "alt+x" or
// "f1" into a chord.
func ChordFromKeyName(name string) (domain.KeyChord, bool) {
	var chord domain.KeyChord
	rest := name
	for {
		switch {
		case strings.HasPrefix(rest, "alt+"):
			chord.Modifiers.Alt = true
			rest = strings.TrimPrefix(rest, "alt+")
			continue
		case strings.HasPrefix(rest, "ctrl+"):
			chord.Modifiers.Ctrl = true
			rest = strings.TrimPrefix(rest, "ctrl+")
			continue
		case strings.HasPrefix(rest, "shift+"):
			chord.Modifiers.Shift = true
			rest = strings.TrimPrefix(rest, "shift+")
			continue
		}
		break
	}

	if rest == " " {
		rest = "space"
	}
	if r := []rune(rest); len(r) == 1 && unicode.IsUpper(r[0]) {
		chord.Modifiers.Shift = true
		rest = string(unicode.ToLower(r[0]))
	}

	chord.Key = domain.Key(rest)
	if !domain.IsValidKey(chord.Key) {
		return domain.KeyChord{}, false
	}
	return chord, true
}
