package config

import "fmt"

// WindowPosition is a rendering hint for the launcher window.
type WindowPosition string

const (
	PositionUnset    WindowPosition = ""
	PositionTop      WindowPosition = "top"
	PositionBottom   WindowPosition = "bottom"
	PositionCentered WindowPosition = "centered"
)

// ParseWindowPosition accepts "", "top", "bottom" and "centered".
func ParseWindowPosition(s string) (WindowPosition, error) {
	switch p := WindowPosition(s); p {
	case PositionUnset, PositionTop, PositionBottom, PositionCentered:
		return p, nil
	default:
		return PositionUnset, fmt.Errorf("unknown position %q (expected top, bottom or centered)", s)
	}
}
