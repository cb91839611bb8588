package services

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"spacerun/internal/domain"
)

// NamePathSeparator joins entry names in catalog paths, e.g. "Git/Log".
const NamePathSeparator = "/"

// CatalogEntry is one executable leaf of the command tree.
type CatalogEntry struct {
	Chords   string
	NamePath string
	Template string
}

// Catalog lists every leaf below root. A non-empty match is a glob over the
// name path where "*" stays within one level and "**" crosses levels.
func Catalog(root domain.Command, match string) ([]CatalogEntry, error) {
	var matcher glob.Glob
	if match != "" {
		g, err := glob.Compile(match, []rune(NamePathSeparator)[0])
		if err != nil {
			return nil, fmt.Errorf("invalid match pattern %q: %w", match, err)
		}
		matcher = g
	}

	var entries []CatalogEntry
	domain.WalkLeaves(root, func(e domain.LeafEntry) {
		namePath := strings.Join(e.Names, NamePathSeparator)
		if matcher != nil && !matcher.Match(namePath) {
			return
		}
		entries = append(entries, CatalogEntry{
			Chords:   domain.FormatKeyChordPath(e.Path),
			NamePath: namePath,
			Template: e.Leaf.Task().Template,
		})
	})
	return entries, nil
}

// Shadow reports a chord that can never be reached because a control key takes precedence.
type Shadow struct {
	Chords  string
	Binding string
}

// FindShadowed walks the tree and reports chords equal to one of controls.
// controls maps a chord to the name of the control binding using it.
func FindShadowed(root domain.Command, controls map[domain.KeyChord]string) []Shadow {
	var shadows []Shadow
	var walk func(cmd domain.Command, path []domain.KeyChord)
	walk = func(cmd domain.Command, path []domain.KeyChord) {
		node, ok := cmd.(*domain.Node)
		if !ok {
			return
		}
		for _, child := range node.Children() {
			childPath := append(append([]domain.KeyChord{}, path...), child.Shortcut())
			if binding, taken := controls[child.Shortcut()]; taken {
				shadows = append(shadows, Shadow{
					Chords:  domain.FormatKeyChordPath(childPath),
					Binding: binding,
				})
			}
			walk(child, childPath)
		}
	}
	walk(root, nil)
	return shadows
}
