// Package daemon holds the process configuration for candyd.
package daemon

import (
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config is the full daemon configuration. A TOML file overrides the
// defaults field by field; a missing file means pure defaults.
type Config struct {
	API     APIConfig     `toml:"api"`
	Storage StorageConfig `toml:"storage"`
	Family  FamilyConfig  `toml:"family"`
}

// APIConfig configures the HTTP listener.
type APIConfig struct {
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	Metrics bool   `toml:"metrics"`
}

// StorageConfig configures the sqlite key-value store.
type StorageConfig struct {
	Path string `toml:"path"`
}

// FamilyConfig is the fixed household roster. Children may log deeds and
// trade; the admin reviews submissions behind the PIN gate.
type FamilyConfig struct {
	Admin    string   `toml:"admin"`
	Children []string `toml:"children"`
}

// DefaultConfig returns the defaults used when no config file exists.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			Host:    "127.0.0.1",
			Port:    8715,
			Metrics: true,
		},
		Storage: StorageConfig{
			Path: defaultDBPath(),
		},
		Family: FamilyConfig{
			Admin:    "bilal",
			Children: []string{"musa", "rufa"},
		},
	}
}

// Load reads a TOML config from path over the defaults. A missing file is
// not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ListenAddr formats the host:port pair for the HTTP server.
func (c Config) ListenAddr() string {
	return net.JoinHostPort(c.API.Host, strconv.Itoa(c.API.Port))
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "candyd.db"
	}
	return filepath.Join(home, ".candytrack", "candyd.db")
}
