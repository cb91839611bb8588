package cmd

import (
	"fmt"
	"text/tabwriter"

	"spacerun/internal/services"
)

// ListCmd lists runnable commands
type ListCmd struct {
	Match string `help:"Glob over the name path, e.g. 'Git/*' or '**Log'" short:"m"`
}

// Run executes the list command
func (l *ListCmd) Run(cli *CLI) error {
	entries, err := services.Catalog(cli.Container.Settings.Commands, l.Match)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cli.Container.stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Chords\tName\tCommand")
	fmt.Fprintln(w, "──────\t────\t───────")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Chords, e.NamePath, e.Template)
	}
	return w.Flush()
}
