package ui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"spacerun/internal/config"
	"spacerun/internal/domain"
	portsmocks "spacerun/internal/ports/mocks"
	"spacerun/internal/services"
)

func testTree(t *testing.T) domain.Command {
	t.Helper()
	root, err := domain.DecodeCommandTree(map[string]any{
		"name": "Root",
		"children": []any{
			map[string]any{"shortcut": "b", "name": "Hello", "cmd": "echo hi"},
			map[string]any{
				"shortcut": "g",
				"name":     "Git",
				"children": []any{
					map[string]any{
						"shortcut": "c",
						"name":     "Commit",
						"cmd":      "git commit -m {{message}} --author {{author}}",
						"defaults": map[string]any{"author": "me"},
					},
				},
			},
		},
	}, "commands")
	require.NoError(t, err)
	return root
}

func newTestModel(t *testing.T, runner *portsmocks.MockCommandRunner, opts Options) *Model {
	t.Helper()
	launcher := services.NewLauncherService(runner, true)
	return NewModel(context.Background(), domain.NewNavigator(testTree(t)), launcher, opts)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_ExecutesLeafWithoutVariables(t *testing.T) {
	runner := portsmocks.NewMockCommandRunner(t)
	runner.EXPECT().Start(mock.Anything, "echo hi").Return(nil)
	m := newTestModel(t, runner, Options{})

	_, cmd := m.Update(runes("b"))

	assert.True(t, isQuit(t, cmd))
	assert.Equal(t, "echo hi", m.Executed())
	assert.Empty(t, m.View())
}

func TestModel_UnboundChordIsIgnored(t *testing.T) {
	m := newTestModel(t, portsmocks.NewMockCommandRunner(t), Options{})
	before := m.View()

	_, cmd := m.Update(runes("z"))

	assert.Nil(t, cmd)
	assert.Equal(t, before, m.View())
}

func TestModel_FormFlow(t *testing.T) {
	runner := portsmocks.NewMockCommandRunner(t)
	runner.EXPECT().Start(mock.Anything, "git commit -m 'fix it' --author me").Return(nil)
	m := newTestModel(t, runner, Options{})

	m.Update(runes("g"))
	m.Update(runes("c"))
	require.True(t, m.nav.AtLeaf())
	require.Len(t, m.inputs, 2)
	assert.Contains(t, m.View(), "git commit -m {{message}} --author {{author}}")

	for _, r := range "fix it" {
		m.Update(runes(string(r)))
	}
	assert.Equal(t, "fix it", m.nav.Value("message"))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, isQuit(t, cmd))
	assert.Equal(t, "git commit -m 'fix it' --author me", m.Executed())
}

func TestModel_FormFocusCycles(t *testing.T) {
	m := newTestModel(t, portsmocks.NewMockCommandRunner(t), Options{})
	m.Update(runes("g"))
	m.Update(runes("c"))

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.focus)
	m.Update(runes("!"))
	assert.Equal(t, "me!", m.nav.Value("author"))

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.focus)
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 1, m.focus)
}

func TestModel_BackNavigation(t *testing.T) {
	m := newTestModel(t, portsmocks.NewMockCommandRunner(t), Options{})
	start := m.View()

	m.Update(runes("g"))
	m.Update(runes("c"))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.Equal(t, "Git", m.nav.Current().Name())
	assert.Empty(t, m.inputs)

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, start, m.View())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, isQuit(t, cmd))
	assert.Empty(t, m.Executed())
}

func TestModel_BackspaceEditsFormInput(t *testing.T) {
	m := newTestModel(t, portsmocks.NewMockCommandRunner(t), Options{})
	m.Update(runes("g"))
	m.Update(runes("c"))
	m.Update(runes("a"))
	m.Update(runes("b"))

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	assert.True(t, m.nav.AtLeaf())
	assert.Equal(t, "a", m.nav.Value("message"))
}

func TestModel_EnterInMenuIsIgnored(t *testing.T) {
	m := newTestModel(t, portsmocks.NewMockCommandRunner(t), Options{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, "Root", m.nav.Current().Name())
}

func TestModel_QuitFromAnywhere(t *testing.T) {
	m := newTestModel(t, portsmocks.NewMockCommandRunner(t), Options{})
	m.Update(runes("g"))
	m.Update(runes("c"))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, isQuit(t, cmd))
	assert.Empty(t, m.Executed())
}

func TestModel_FocusLost(t *testing.T) {
	tests := []struct {
		name  string
		close bool
	}{
		{"closes when configured", true},
		{"stays open otherwise", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, portsmocks.NewMockCommandRunner(t), Options{CloseOnFocusLost: tt.close})

			_, cmd := m.Update(tea.BlurMsg{})

			assert.Equal(t, tt.close, isQuit(t, cmd))
		})
	}
}

func TestModel_StartFailureKeepsLauncherOpen(t *testing.T) {
	runner := portsmocks.NewMockCommandRunner(t)
	runner.EXPECT().Start(mock.Anything, "echo hi").Return(errors.New("boom"))
	m := newTestModel(t, runner, Options{})

	_, cmd := m.Update(runes("b"))

	assert.Nil(t, cmd)
	require.Error(t, m.Err())
	assert.Contains(t, m.View(), "boom")

	m.Update(runes("g"))
	assert.NoError(t, m.Err())
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t, portsmocks.NewMockCommandRunner(t), Options{Position: config.PositionCentered})

	view := m.View()
	assert.Contains(t, view, "Root")
	assert.Contains(t, view, "Hello")
	assert.Contains(t, view, "Git")

	m.Update(runes("g"))
	view = m.View()
	assert.Contains(t, view, "Root")
	assert.Contains(t, view, "Commit")
	assert.NotContains(t, view, "Hello")

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Contains(t, m.View(), "Commit")
}

func TestModel_EmptyNode(t *testing.T) {
	root := domain.NewNode(domain.KeyChord{}, "Root")
	launcher := services.NewLauncherService(portsmocks.NewMockCommandRunner(t), false)
	m := NewModel(context.Background(), domain.NewNavigator(root), launcher, Options{})

	assert.Contains(t, m.View(), "no commands")
}
