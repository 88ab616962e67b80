package daemon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.API.Host != "127.0.0.1" {
		t.Errorf("API.Host = %q, want %q", cfg.API.Host, "127.0.0.1")
	}
	if cfg.API.Port != 8715 {
		t.Errorf("API.Port = %d, want %d", cfg.API.Port, 8715)
	}
	if !cfg.API.Metrics {
		t.Error("API.Metrics should be true by default")
	}
	if cfg.Storage.Path == "" {
		t.Error("Storage.Path is empty")
	}
	if cfg.Family.Admin != "bilal" {
		t.Errorf("Family.Admin = %q, want %q", cfg.Family.Admin, "bilal")
	}
	if len(cfg.Family.Children) != 2 {
		t.Errorf("Family.Children = %v, want two children", cfg.Family.Children)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load(missing) = %v, want nil error", err)
	}
	if cfg.API.Port != DefaultConfig().API.Port {
		t.Errorf("Port = %d, want default", cfg.API.Port)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candyd.toml")
	data := `
[api]
port = 9000

[family]
admin = "amir"
children = ["zara"]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.Port != 9000 {
		t.Errorf("API.Port = %d, want 9000", cfg.API.Port)
	}
	if cfg.API.Host != "127.0.0.1" {
		t.Errorf("API.Host = %q, want default kept", cfg.API.Host)
	}
	if cfg.Family.Admin != "amir" {
		t.Errorf("Family.Admin = %q, want %q", cfg.Family.Admin, "amir")
	}
	if len(cfg.Family.Children) != 1 || cfg.Family.Children[0] != "zara" {
		t.Errorf("Family.Children = %v, want [zara]", cfg.Family.Children)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[api\nport ="), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load(malformed) = nil error, want error")
	}
}

func TestListenAddr(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.ListenAddr(); got != "127.0.0.1:8715" {
		t.Errorf("ListenAddr() = %q, want %q", got, "127.0.0.1:8715")
	}
}
