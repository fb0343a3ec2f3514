package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citizen-dojo/pkg/config"
	"citizen-dojo/pkg/game"
	"citizen-dojo/pkg/registry"
)

func TestDumpCatalogLoadsBack(t *testing.T) {
	reg := game.NewRegistry()

	var buf bytes.Buffer
	require.NoError(t, dumpCatalog(&buf, reg.Catalog()))
	assert.Contains(t, buf.String(), "password-power")

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	c := loadCatalog(config.Config{CatalogFile: path}, registry.NewCatalog(nil))
	want := registry.NewResolver(reg.Catalog()).ResolveNext(string(game.CategoryOnlineSafety), "password-power", nil)
	require.True(t, want.Found())
	assert.Equal(t, want, registry.NewResolver(c).ResolveNext(string(game.CategoryOnlineSafety), "password-power", nil))
}

func TestLoadCatalogSkipsBrokenSources(t *testing.T) {
	base := game.NewRegistry().Catalog()
	c := loadCatalog(config.Config{
		CatalogFile:      filepath.Join(t.TempDir(), "missing.yaml"),
		CatalogConfigMap: "/",
	}, base)
	assert.Equal(t, base.Categories(), c.Categories())
}
