package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"spacerun/internal/config"
	"spacerun/internal/domain"
	"spacerun/internal/theme"
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	projection := domain.Project(m.nav)

	var b strings.Builder
	b.WriteString(renderTrail(projection.Trail))
	b.WriteString("\n")

	if projection.Mode == domain.ModeForm {
		b.WriteString(m.renderForm(projection))
	} else {
		b.WriteString(renderMenu(projection.Items))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(theme.ErrorStyle.Render("✗ " + m.err.Error()))
	}

	b.WriteString("\n")
	if projection.Mode == domain.ModeForm {
		b.WriteString(renderHelp(m.keys.FormHelp()))
	} else {
		b.WriteString(renderHelp(m.keys.MenuHelp()))
	}

	return m.place(b.String())
}

func renderTrail(trail []string) string {
	sep := theme.TrailSeparatorStyle.Render(domain.TrailSeparator)
	parts := make([]string, len(trail))
	for i, name := range trail {
		parts[i] = theme.TrailStyle.UnsetPadding().Render(name)
	}
	return theme.TrailStyle.Render(strings.Join(parts, sep))
}

func renderMenu(items []domain.DisplayItem) string {
	if len(items) == 0 {
		return theme.EmptyStyle.Render("no commands")
	}

	width := 0
	for _, item := range items {
		width = max(width, lipgloss.Width(item.Shortcut.String()))
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		chord := theme.ChordStyle.Width(width).Render(item.Shortcut.String())
		name := theme.LeafNameStyle.Render(item.Name)
		if item.IsNode {
			name = theme.NodeNameStyle.Render(item.Name + " +")
		}
		lines = append(lines, chord+"  "+name)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderForm(projection domain.Projection) string {
	width := 0
	for _, field := range projection.Fields {
		width = max(width, lipgloss.Width(field.Name))
	}

	lines := make([]string, 0, len(m.inputs)+1)
	for i, input := range m.inputs {
		style := theme.FieldLabelStyle
		if i == m.focus {
			style = theme.FocusedFieldLabelStyle
		}
		lines = append(lines, style.Width(width).Render(m.fieldNames[i])+"  "+input.View())
	}
	lines = append(lines, theme.TemplateStyle.Render(projection.Template))
	return strings.Join(lines, "\n")
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, theme.HelpShortcutStyle.Render(h.Key)+" "+theme.HelpLabelStyle.Render(h.Desc))
	}
	return theme.HelpStyle.Render(strings.Join(parts, "  •  "))
}

// place applies the position hint once the terminal size is known.
func (m *Model) place(view string) string {
	if m.width == 0 || m.height == 0 {
		return view
	}

	switch m.position {
	case config.PositionTop:
		return lipgloss.PlaceVertical(m.height, lipgloss.Top, view)
	case config.PositionBottom:
		return lipgloss.PlaceVertical(m.height, lipgloss.Bottom, view)
	case config.PositionCentered:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	default:
		return view
	}
}
