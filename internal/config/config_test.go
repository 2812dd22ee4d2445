package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ROLO_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, cfg.Database.Path)
	require.Equal(t, "02 Jan 2006", cfg.UI.DateFormat)
	require.Equal(t, "name", cfg.UI.SortBy)
	require.Equal(t, "imported", cfg.Import.DefaultTag)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := `
[database]
path = "/tmp/rolo-test.db"

[ui]
date_format = "2006-01-02"
sort_by = "recent"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	t.Setenv("ROLO_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/rolo-test.db", cfg.Database.Path)
	require.Equal(t, "2006-01-02", cfg.UI.DateFormat)
	require.Equal(t, "recent", cfg.UI.SortBy)
	// untouched section keeps its default
	require.Equal(t, "imported", cfg.Import.DefaultTag)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("ROLO_CONFIG", path)

	want := Config{
		Database: DatabaseConfig{Path: "/tmp/roundtrip.db"},
		UI:       UIConfig{DateFormat: "02/01", SortBy: "email"},
		Import:   ImportConfig{DefaultTag: "inbox"},
	}
	require.NoError(t, Save(want))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}
