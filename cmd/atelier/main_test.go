package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/atelier/internal/app"
	"github.com/depeter/atelier/internal/catalog"
	"github.com/depeter/atelier/internal/ui"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCatalogValidateBuiltIn(t *testing.T) {
	out, err := execute(t, "catalog", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "built-in: ok")
	assert.Contains(t, out, "bespoke  18")
}

func TestCatalogValidateReportsErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[looks]]\nid = \"a\"\ntitle = \"A\"\n"), 0o644))

	_, err := execute(t, "catalog", "validate", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrMissingCTA)
}

func TestUnknownScreenFlag(t *testing.T) {
	_, err := execute(t, "--screen", "gallery")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown screen")
}

func TestEveryScreenNameIsBuilt(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	deps := &ui.Deps{RowsPerPage: 2}
	for _, name := range app.ScreenNames {
		s := newScreen(name, cat, deps)
		require.NotNil(t, s, name)
		assert.Equal(t, name, s.Name())
	}
	assert.Nil(t, newScreen("gallery", cat, deps))
}
