package cmd

import (
	"fmt"
	"io"
	"strings"

	"spacerun/internal/domain"
	"spacerun/internal/services"
	"spacerun/internal/ui"
)

// CheckCmd validates the configuration
type CheckCmd struct{}

// Run prints the command tree with canonical shortcuts, followed by any
// chords hidden behind control keys.
func (c *CheckCmd) Run(cli *CLI) error {
	settings := cli.Container.Settings
	out := cli.Container.stdout

	fmt.Fprintf(out, "Configuration OK: %s\n\n", settings.Path)
	printTree(out, settings.Commands, 0)

	keys := ui.NewKeyMap(settings.Keys)
	shadows := services.FindShadowed(settings.Commands, keys.ControlChords())
	if len(shadows) > 0 {
		fmt.Fprintln(out)
	}
	for _, s := range shadows {
		fmt.Fprintf(out, "warning: %s is unreachable, the %s key takes precedence\n", s.Chords, s.Binding)
	}
	return nil
}

func printTree(w io.Writer, cmd domain.Command, depth int) {
	indent := strings.Repeat("  ", depth)

	name := cmd.Name()
	if depth == 0 && name == "" {
		name = domain.DefaultRootName
	}

	switch c := cmd.(type) {
	case *domain.Node:
		if depth == 0 {
			fmt.Fprintln(w, name)
		} else {
			fmt.Fprintf(w, "%s%s  %s/\n", indent, c.Shortcut(), name)
		}
		for _, child := range c.Children() {
			printTree(w, child, depth+1)
		}
	case *domain.Leaf:
		if depth == 0 {
			fmt.Fprintf(w, "%s  %s\n", name, c.Task().Template)
			return
		}
		fmt.Fprintf(w, "%s%s  %s  %s\n", indent, c.Shortcut(), name, c.Task().Template)
	}
}
