package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spacerun/internal/domain"
)

func TestCatalog(t *testing.T) {
	entries, err := Catalog(testTree(t), "")
	require.NoError(t, err)

	assert.Equal(t, []CatalogEntry{
		{Chords: "b", NamePath: "Hello", Template: "echo hi"},
		{Chords: "g s", NamePath: "Git/Status", Template: "git status"},
		{Chords: "g c", NamePath: "Git/Commit", Template: "git commit -m {{message}} --author {{author}}"},
	}, entries)
}

func TestCatalog_Match(t *testing.T) {
	tests := []struct {
		match    string
		expected []string
	}{
		{"Git/*", []string{"Git/Status", "Git/Commit"}},
		{"*", []string{"Hello"}},
		{"**", []string{"Hello", "Git/Status", "Git/Commit"}},
		{"*/C*", []string{"Git/Commit"}},
		{"Nope", nil},
	}

	for _, tt := range tests {
		t.Run(tt.match, func(t *testing.T) {
			entries, err := Catalog(testTree(t), tt.match)
			require.NoError(t, err)

			var names []string
			for _, e := range entries {
				names = append(names, e.NamePath)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestCatalog_InvalidPattern(t *testing.T) {
	_, err := Catalog(testTree(t), "[")
	assert.Error(t, err)
}

func TestFindShadowed(t *testing.T) {
	root := domain.NewNode(domain.KeyChord{}, "Root",
		domain.NewLeaf(domain.MustParseKeyChord("C-c"), "Copy", domain.ParseCommandTask("pbcopy")),
		domain.NewNode(domain.NewKeyChord("g"), "Git",
			domain.NewLeaf(domain.MustParseKeyChord("C-c"), "Checkout", domain.ParseCommandTask("git checkout")),
			domain.NewLeaf(domain.NewKeyChord("s"), "Status", domain.ParseCommandTask("git status")),
		),
	)
	controls := map[domain.KeyChord]string{domain.MustParseKeyChord("C-c"): "quit"}

	shadows := FindShadowed(root, controls)

	assert.Equal(t, []Shadow{
		{Chords: "C-c", Binding: "quit"},
		{Chords: "g C-c", Binding: "quit"},
	}, shadows)
}
