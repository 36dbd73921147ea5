package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/madhih2000/OEE-Dashboard/internal/store"
)

// DefaultAddr is the Dash development server port.
const DefaultAddr = "127.0.0.1:8050"

var ErrBadAddr = errors.New("listen address must be host:port")

// Config holds the settings a config file may carry. Command line flags
// override it field by field.
type Config struct {
	Addr string `json:"addr" yaml:"addr" toml:"addr"`
	// DataFile is a records file; empty means the built-in sample line.
	DataFile string `json:"data" yaml:"data" toml:"data"`
	NoColor  bool   `json:"no_color" yaml:"no_color" toml:"no_color"`
	Title    string `json:"title" yaml:"title" toml:"title"`
}

func Default() Config {
	return Config{Addr: DefaultAddr}
}

// Load reads a config file over the defaults. A relative data path is
// taken relative to the config file.
func Load(path string) (Config, error) {
	format, err := store.FormatFromPath(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Decode(data, format)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.DataFile != "" && !filepath.IsAbs(cfg.DataFile) {
		cfg.DataFile = filepath.Join(filepath.Dir(path), cfg.DataFile)
	}
	return cfg, nil
}

// Decode parses a config document. Missing keys keep their defaults.
func Decode(data []byte, format store.Format) (Config, error) {
	cfg := Default()
	if err := store.Unmarshal(data, format, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return fmt.Errorf("%q: %w", c.Addr, ErrBadAddr)
	}
	return nil
}
