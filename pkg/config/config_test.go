package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/citymesh/citygraph/pkg/errors"
	"github.com/citymesh/citygraph/pkg/loader"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, loader.DefaultColumns(), cfg.Columns)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 1, cfg.Query.Depth)
	assert.Equal(t, 500.0, cfg.Bands().ShortMax)
	assert.Equal(t, 1500.0, cfg.Bands().MediumMax)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlay(t *testing.T) {
	path := writeConfig(t, `
[sources]
streets = "data/ruas.xlsx"

[columns]
distance = "extensao"

[view]
short_max = 400
medium_max = 1200

[server]
addr = "127.0.0.1:9090"

[query]
depth = 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "bairros.csv", cfg.Sources.Regions)
	assert.Equal(t, "data/ruas.xlsx", cfg.Sources.Streets)
	assert.Equal(t, "bairro_origem", cfg.Columns.Origin)
	assert.Equal(t, "extensao", cfg.Columns.Distance)
	assert.Equal(t, 400.0, cfg.View.ShortMax)
	assert.Equal(t, 1200.0, cfg.View.MediumMax)
	assert.Equal(t, 5, cfg.View.Top)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	assert.Equal(t, 2, cfg.Query.Depth)
	assert.Equal(t, 10, cfg.Query.MaxDepth)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", "[view\nshort_max = 1"},
		{"unknown key", "[view]\nshortmax = 100\n"},
		{"wrong type", "[query]\ndepth = \"two\"\n"},
		{"inverted bands", "[view]\nshort_max = 2000\nmedium_max = 100\n"},
		{"zero depth", "[query]\ndepth = 0\n"},
		{"depth above max", "[query]\ndepth = 5\nmax_depth = 3\n"},
		{"empty addr", "[server]\naddr = \" \"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.ErrCodeInvalidConfig), "got %v", err)
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "citygraph", "config.toml"), path)

	t.Setenv("XDG_CONFIG_HOME", "")
	path, err = DefaultPath()
	require.NoError(t, err)
	home, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(home, ".config", "citygraph", "config.toml"), path)
}
