package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - trail root, titles
	ColorSecondary Color = "86" // Cyan - sub-menus
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
)

// Accent colors
const (
	ColorChord     Color = "226" // Yellow - shortcut chords
	ColorSeparator Color = "240" // Dark gray - trail separators
)
