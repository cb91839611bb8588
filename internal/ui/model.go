package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"spacerun/internal/config"
	"spacerun/internal/domain"
	"spacerun/internal/logging"
	"spacerun/internal/services"
)

// Form focus keys are not configurable.
var (
	nextFieldKey = key.NewBinding(key.WithKeys("tab", "down"))
	prevFieldKey = key.NewBinding(key.WithKeys("shift+tab", "up"))
)

// Options carries the settings the UI needs.
type Options struct {
	CloseOnFocusLost bool
	Keys             config.KeyBindingsConfig
	Position         config.WindowPosition
}

// Model is the launcher's Bubble Tea model. It feeds key presses to the
// navigator and renders its projection.
type Model struct {
	closeOnFocusLost bool
	ctx              context.Context
	err              error
	executed         string
	fieldNames       []string
	focus            int
	height           int
	inputs           []textinput.Model
	keys             KeyMap
	launcher         *services.LauncherService
	nav              *domain.Navigator
	position         config.WindowPosition
	quitting         bool
	width            int
}

// NewModel creates the launcher model around nav.
func NewModel(ctx context.Context, nav *domain.Navigator, launcher *services.LauncherService, opts Options) *Model {
	m := &Model{
		closeOnFocusLost: opts.CloseOnFocusLost,
		ctx:              ctx,
		keys:             NewKeyMap(opts.Keys),
		launcher:         launcher,
		nav:              nav,
		position:         opts.Position,
	}
	m.syncInputs()
	return m
}

// Executed returns the command line started by the model, empty if none.
func (m *Model) Executed() string {
	return m.executed
}

// Err returns the last error shown to the user.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) Init() tea.Cmd {
	if len(m.inputs) > 0 {
		return textinput.Blink
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.BlurMsg:
		if !m.closeOnFocusLost {
			return m, nil
		}
		logging.Logger.Debug("Focus lost, closing")
		return m.apply(m.nav.Quit())

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m.apply(m.nav.Quit())
		}
		if m.nav.AtLeaf() {
			return m.updateForm(msg)
		}
		return m.updateMenu(msg)
	}

	if m.nav.AtLeaf() && len(m.inputs) > 0 {
		return m.updateFocusedInput(msg)
	}
	return m, nil
}

func (m *Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back, m.keys.BackList):
		return m.apply(m.nav.Back())
	case key.Matches(msg, m.keys.Confirm):
		return m.apply(m.nav.Confirm())
	}

	chord, ok := ChordFromKeyMsg(msg)
	if !ok {
		return m, nil
	}

	action := m.nav.Press(chord)
	if action.Kind == domain.ActionNone {
		logging.Logger.Debug("No command bound to chord", "chord", chord.String())
	}
	return m.apply(action)
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m.apply(m.nav.Back())
	case key.Matches(msg, m.keys.Confirm):
		return m.apply(m.nav.Confirm())
	case key.Matches(msg, nextFieldKey):
		return m, m.focusField(m.focus + 1)
	case key.Matches(msg, prevFieldKey):
		return m, m.focusField(m.focus - 1)
	}

	if len(m.inputs) == 0 {
		return m, nil
	}
	return m.updateFocusedInput(msg)
}

func (m *Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	name := m.fieldNames[m.focus]
	if err := m.nav.SetValue(name, m.inputs[m.focus].Value()); err != nil {
		logging.Logger.Error("Failed to set form value", "error", err, "variable", name)
	}
	return m, cmd
}

// apply carries out a navigator action.
func (m *Model) apply(action domain.Action) (tea.Model, tea.Cmd) {
	switch action.Kind {
	case domain.ActionNone:
		return m, nil

	case domain.ActionDescend, domain.ActionBacktrack:
		logging.Logger.Debug("Navigated",
			"action", action.Kind.String(),
			"path", domain.FormatKeyChordPath(m.nav.Path()))
		m.err = nil
		return m, m.syncInputs()

	case domain.ActionExecute:
		command, err := m.launcher.Execute(m.ctx, action)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.executed = command
		m.quitting = true
		return m, tea.Quit

	case domain.ActionClose:
		logging.Logger.Debug("Closing launcher")
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// syncInputs rebuilds the text inputs from the current form fields.
func (m *Model) syncInputs() tea.Cmd {
	m.inputs = nil
	m.fieldNames = nil
	m.focus = 0

	projection := domain.Project(m.nav)
	if projection.Mode != domain.ModeForm {
		return nil
	}

	for _, field := range projection.Fields {
		input := textinput.New()
		input.Prompt = ""
		input.Placeholder = field.Name
		input.SetValue(field.Value)
		m.inputs = append(m.inputs, input)
		m.fieldNames = append(m.fieldNames, field.Name)
	}
	return m.focusField(0)
}

func (m *Model) focusField(i int) tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}
	i = (i + len(m.inputs)) % len(m.inputs)

	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	m.focus = i
	return m.inputs[i].Focus()
}
