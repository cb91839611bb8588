package domain

import (
	"strconv"
	"strings"
)

// Key identifies the base key of a chord.
type Key string

// chordSeparator splits modifier tokens from the base key.
const chordSeparator = "-"

// Modifier tokens in canonical order
const (
	TokenCtrl  = "C"
	TokenAlt   = "M"
	TokenShift = "S"
	TokenSuper = "L"
)

// validKeys is the fixed table of base keys a chord may use.
var validKeys = func() map[Key]bool {
	keys := make(map[Key]bool)
	for r := 'a'; r <= 'z'; r++ {
		keys[Key(string(r))] = true
	}
	for r := '0'; r <= '9'; r++ {
		keys[Key(string(r))] = true
	}
	keys["space"] = true
	for i := 1; i <= 12; i++ {
		keys[Key("f"+strconv.Itoa(i))] = true
	}
	return keys
}()

// IsValidKey reports whether k is in the base key table.
func IsValidKey(k Key) bool {
	return validKeys[k]
}

// Modifiers is the set of modifier keys held with a chord.
type Modifiers struct {
	Ctrl  bool
	Alt   bool
	Shift bool
	Super bool
}

// KeyChord is a base key plus a modifier set. Two chords are equal when all fields are equal.
type KeyChord struct {
	Key       Key
	Modifiers Modifiers
}

// NewKeyChord returns a chord without modifiers.
func NewKeyChord(k Key) KeyChord {
	return KeyChord{Key: k}
}

// ParseKeyChord parses strings such as "a", "C-a" or "C-M-S-L-space".
// The last segment is the base key, every earlier segment must be a modifier token.
func ParseKeyChord(s string) (KeyChord, error) {
	if s == "" {
		return KeyChord{}, &ParseError{Input: s, Err: ErrEmptyChord}
	}

	segments := strings.Split(s, chordSeparator)
	base := Key(segments[len(segments)-1])
	if !IsValidKey(base) {
		return KeyChord{}, &ParseError{Input: s, Err: ErrUnknownKey}
	}

	chord := KeyChord{Key: base}
	for _, token := range segments[:len(segments)-1] {
		switch token {
		case TokenCtrl:
			chord.Modifiers.Ctrl = true
		case TokenAlt:
			chord.Modifiers.Alt = true
		case TokenShift:
			chord.Modifiers.Shift = true
		case TokenSuper:
			chord.Modifiers.Super = true
		default:
			return KeyChord{}, &ParseError{Input: s, Err: ErrUnknownModifier}
		}
	}

	return chord, nil
}

// MustParseKeyChord is like ParseKeyChord but panics on error.
func MustParseKeyChord(s string) KeyChord {
	chord, err := ParseKeyChord(s)
	if err != nil {
		panic(err)
	}
	return chord
}

// ParseKeyChordPath parses a whitespace separated sequence of chords, e.g. "g C-s".
func ParseKeyChordPath(s string) ([]KeyChord, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, &ParseError{Input: s, Err: ErrEmptyChord}
	}

	path := make([]KeyChord, 0, len(fields))
	for _, field := range fields {
		chord, err := ParseKeyChord(field)
		if err != nil {
			return nil, err
		}
		path = append(path, chord)
	}
	return path, nil
}

// String renders the canonical form: modifiers in ctrl, alt, shift, super order, base key last.
func (c KeyChord) String() string {
	var b strings.Builder
	for _, m := range []struct {
		on    bool
		token string
	}{
		{c.Modifiers.Ctrl, TokenCtrl},
		{c.Modifiers.Alt, TokenAlt},
		{c.Modifiers.Shift, TokenShift},
		{c.Modifiers.Super, TokenSuper},
	} {
		if m.on {
			b.WriteString(m.token)
			b.WriteString(chordSeparator)
		}
	}
	b.WriteString(string(c.Key))
	return b.String()
}

// Equal reports whether both chords have the same base key and modifiers.
func (c KeyChord) Equal(other KeyChord) bool {
	return c == other
}

// IsZero reports whether the chord is unset.
func (c KeyChord) IsZero() bool {
	return c == KeyChord{}
}

// FormatKeyChordPath renders chords separated by a single space.
func FormatKeyChordPath(path []KeyChord) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
