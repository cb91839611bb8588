package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spacerun/internal/domain"
	"spacerun/internal/logging"
	"spacerun/internal/services"
)

const testConfig = `
commands:
  name: Root
  children:
    - shortcut: b
      name: Hello
      cmd: echo hi
    - shortcut: g
      name: Git
      children:
        - shortcut: l
          name: Log
          cmd: git log -n {{count}}
          defaults:
            count: 5
        - shortcut: C-c
          name: Commit
          cmd: git commit -m {{message}}
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// run parses and runs args against a fresh CLI, returning what the command wrote to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(logging.EnvDebug, "")
	t.Setenv(logging.EnvDebugFile, "")

	var out bytes.Buffer
	cli := &CLI{Stdout: &out}
	parser, err := kong.New(cli,
		kong.Name("spacerun"),
		kong.Vars{"version": "test"},
		kong.Bind(cli),
		kong.Exit(func(int) { t.Fatal("unexpected exit") }),
	)
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	if err != nil {
		return out.String(), err
	}
	err = ctx.Run()
	return out.String(), err
}

func TestCheckCmd(t *testing.T) {
	config := writeConfig(t, testConfig)

	out, err := run(t, "--config", config, "check")
	require.NoError(t, err)

	assert.Contains(t, out, "Configuration OK: "+config)
	assert.Contains(t, out, "\nRoot\n")
	assert.Contains(t, out, "  b  Hello  echo hi\n")
	assert.Contains(t, out, "  g  Git/\n")
	assert.Contains(t, out, "    l  Log  git log -n {{count}}\n")
	assert.Contains(t, out, "warning: g C-c is unreachable, the quit key takes precedence")
}

func TestCheckCmd_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown key binding", testConfig + "keys:\n  launch: x\n"},
		{"sibling collision", "commands:\n  children:\n    - {shortcut: a, name: A, cmd: ls}\n    - {shortcut: a, name: B, cmd: ls}\n"},
		{"missing commands", "font_size: 12\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "--config", writeConfig(t, tt.content), "check")
			assert.Error(t, err)
		})
	}
}

func TestCheckCmd_MissingConfigFile(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "check")
	assert.Error(t, err)
}

func TestListCmd(t *testing.T) {
	config := writeConfig(t, testConfig)

	out, err := run(t, "--config", config, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "echo hi")
	assert.Contains(t, out, "Git/Log")
	assert.Contains(t, out, "g C-c")

	out, err = run(t, "--config", config, "list", "--match", "Git/*")
	require.NoError(t, err)
	assert.Contains(t, out, "Git/Commit")
	assert.NotContains(t, out, "Hello")

	_, err = run(t, "--config", config, "list", "--match", "[")
	assert.Error(t, err)
}

func TestExecCmd(t *testing.T) {
	config := writeConfig(t, testConfig)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"leaf without variables", []string{"b"}, "echo hi\n"},
		{"default value", []string{"g l"}, "git log -n 5\n"},
		{"override default", []string{"g l", "--set", "count=10"}, "git log -n 10\n"},
		{"value is quoted", []string{"g C-c", "--set", "message=fix it"}, "git commit -m 'fix it'\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--config", config, "exec", "--print"}, tt.args...)
			out, err := run(t, args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestExecCmd_Errors(t *testing.T) {
	config := writeConfig(t, testConfig)

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unbound path", []string{"g x"}, services.ErrPathNotFound},
		{"menu path", []string{"g"}, services.ErrNotExecutable},
		{"missing value", []string{"g C-c"}, domain.ErrMissingVariable},
		{"unknown variable", []string{"b", "--set", "x=1"}, domain.ErrUnknownVariable},
		{"invalid chord", []string{"Z-a"}, domain.ErrUnknownModifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--config", config, "exec", "--print"}, tt.args...)
			out, err := run(t, args...)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, out)
		})
	}
}

func TestRunCmd_ShortcutExecutesImmediately(t *testing.T) {
	config := writeConfig(t, testConfig)

	out, err := run(t, "--config", config, "--print", "--shortcut", "b")
	require.NoError(t, err)
	assert.Equal(t, "echo hi\n", out)
}

func TestRunCmd_InvalidShortcut(t *testing.T) {
	config := writeConfig(t, testConfig)

	_, err := run(t, "--config", config, "run", "--print", "-s", "Z-a")
	assert.ErrorIs(t, err, domain.ErrUnknownModifier)
}

func TestRunnerModeFor(t *testing.T) {
	assert.Equal(t, RunnerDetached, runnerModeFor(false, false))
	assert.Equal(t, RunnerAttached, runnerModeFor(false, true))
	assert.Equal(t, RunnerPrint, runnerModeFor(true, true))
}
