// Package config loads citygraph settings from a TOML file.
//
// A missing file is not an error; [Default] values apply and any key present
// in the file overrides them:
//
//	[sources]
//	regions = "data/bairros.csv"
//	streets = "data/logradouros.csv"
//
//	[columns]
//	distance = "extensao"
//
//	[view]
//	short_max = 400
//	medium_max = 1200
//	top = 10
//
//	[server]
//	addr = ":9090"
//
//	[query]
//	depth = 2
//	max_depth = 8
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	apperr "github.com/citymesh/citygraph/pkg/errors"
	"github.com/citymesh/citygraph/pkg/loader"
	"github.com/citymesh/citygraph/pkg/nodelink"
)

const appName = "citygraph"

// Config is the full set of settings.
type Config struct {
	Sources Sources        `toml:"sources"`
	Columns loader.Columns `toml:"columns"`
	View    View           `toml:"view"`
	Server  Server         `toml:"server"`
	Query   Query          `toml:"query"`
}

// Sources names the feed files.
type Sources struct {
	Regions string `toml:"regions"`
	Streets string `toml:"streets"`
}

// View controls link bands and ranking listings.
type View struct {
	ShortMax  float64 `toml:"short_max"`
	MediumMax float64 `toml:"medium_max"`
	Top       int     `toml:"top"`
}

// Server configures the HTTP API.
type Server struct {
	Addr string `toml:"addr"`
}

// Query holds defaults for expansion requests.
type Query struct {
	Depth    int `toml:"depth"`
	MaxDepth int `toml:"max_depth"`
}

// Default returns the built-in settings.
func Default() Config {
	bands := nodelink.DefaultOptions()
	return Config{
		Sources: Sources{Regions: "bairros.csv", Streets: "logradouros.csv"},
		Columns: loader.DefaultColumns(),
		View:    View{ShortMax: bands.ShortMax, MediumMax: bands.MediumMax, Top: 5},
		Server:  Server{Addr: ":8080"},
		Query:   Query{Depth: 1, MaxDepth: 10},
	}
}

// Bands converts the view section into node-link options.
func (c Config) Bands() nodelink.Options {
	return nodelink.Options{ShortMax: c.View.ShortMax, MediumMax: c.View.MediumMax}
}

// DefaultPath returns $XDG_CONFIG_HOME/citygraph/config.toml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads path on top of Default. A path that does not exist yields the
// defaults unchanged. Unknown keys are rejected so typos do not go unnoticed.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, apperr.New(apperr.ErrCodeInvalidConfig, "%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "%s", path)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.View.ShortMax < 0:
		return apperr.New(apperr.ErrCodeInvalidConfig, "view.short_max must not be negative")
	case c.View.MediumMax < c.View.ShortMax:
		return apperr.New(apperr.ErrCodeInvalidConfig, "view.medium_max (%g) must not be below view.short_max (%g)", c.View.MediumMax, c.View.ShortMax)
	case c.View.Top < 0:
		return apperr.New(apperr.ErrCodeInvalidConfig, "view.top must not be negative")
	case c.Query.Depth < 1:
		return apperr.New(apperr.ErrCodeInvalidConfig, "query.depth must be at least 1")
	case c.Query.MaxDepth < c.Query.Depth:
		return apperr.New(apperr.ErrCodeInvalidConfig, "query.max_depth (%d) must not be below query.depth (%d)", c.Query.MaxDepth, c.Query.Depth)
	case strings.TrimSpace(c.Server.Addr) == "":
		return apperr.New(apperr.ErrCodeInvalidConfig, "server.addr must not be empty")
	}
	return nil
}
