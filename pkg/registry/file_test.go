package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `
categories:
  quiz:
    - id: g1
      index: 0
      isSpecial: true
      path: /g1
    - id: g2
      index: 1
      isSpecial: true
      path: /g2
    - id: poster
      isSpecial: false
`

func TestParseCatalog(t *testing.T) {
	c, err := ParseCatalog([]byte(sampleCatalog))
	require.NoError(t, err)

	entries, err := c.Load("quiz")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Nil(t, entries[2].Index)

	assert.Equal(t, Target{Path: "/g2", ID: "g2"}, NewResolver(c).ResolveNext("quiz", "g1", nil))
}

func TestParseCatalogJSON(t *testing.T) {
	c, err := ParseCatalog([]byte(`{"categories":{"quiz":[{"id":"a","index":0,"isSpecial":true,"path":"/a"}]}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"quiz"}, c.Categories())
}

func TestParseCatalogErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not yaml", "categories: [unclosed"},
		{"unknown field", "categories:\n  quiz:\n    - id: a\n      colour: red\n"},
		{"missing id", "categories:\n  quiz:\n    - index: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadFileRoundTrip(t *testing.T) {
	data, err := chain().Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Target{Path: "/g2", ID: "g2"}, NewResolver(c).ResolveNext("quiz", "g1", nil))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
