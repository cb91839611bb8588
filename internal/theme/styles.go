package theme

import "github.com/charmbracelet/lipgloss"

// Trail styles
var (
	TrailStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 0, 1, 0)

	TrailSeparatorStyle = lipgloss.NewStyle().
				Foreground(ColorSeparator)
)

// Menu styles
var (
	ChordStyle = lipgloss.NewStyle().
			Foreground(ColorChord).
			Bold(true)

	LeafNameStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	NodeNameStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	EmptyStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)

// Form styles
var (
	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	FocusedFieldLabelStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	TemplateStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0, 0, 0)
)

// Footer styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Padding(1, 0, 0, 0)

	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0, 0, 0)
)
