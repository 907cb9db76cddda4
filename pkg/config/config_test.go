package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	Name string `yaml:"name"`
	Port int    `yaml:"port"`
}

type validatedConfig struct {
	Port int `yaml:"port"`
}

func (c *validatedConfig) Validate() error {
	if c.Port <= 0 {
		return fmt.Errorf("port must be positive, got %d", c.Port)
	}
	return nil
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "name: raido\nport: 9090\n")

	var cfg testConfig
	if err := Load(path, &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "raido" || cfg.Port != 9090 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("TEST_CFG_NAME", "from-env")
	path := writeFile(t, "name: ${TEST_CFG_NAME}\n")

	var cfg testConfig
	if err := Load(path, &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "from-env" {
		t.Errorf("name = %q", cfg.Name)
	}
}

func TestLoadRunsValidator(t *testing.T) {
	path := writeFile(t, "port: -1\n")

	var cfg validatedConfig
	if err := Load(path, &cfg); err == nil {
		t.Fatal("invalid config should fail")
	}
}

func TestLoadMissingFile(t *testing.T) {
	var cfg testConfig
	if err := Load(filepath.Join(t.TempDir(), "nope.yaml"), &cfg); err == nil {
		t.Fatal("missing file should fail")
	}
}

func TestLoadIfPresent(t *testing.T) {
	path := writeFile(t, "port: 8080\n")
	cfg := validatedConfig{Port: 1}

	loaded, err := LoadIfPresent(path, &cfg)
	if err != nil || !loaded {
		t.Fatalf("loaded = %v, err = %v", loaded, err)
	}
	if cfg.Port != 8080 {
		t.Errorf("port = %d", cfg.Port)
	}
}

func TestLoadIfPresentMissingValidatesDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	good := validatedConfig{Port: 8080}
	loaded, err := LoadIfPresent(missing, &good)
	if err != nil || loaded {
		t.Fatalf("loaded = %v, err = %v", loaded, err)
	}

	bad := validatedConfig{Port: 0}
	if _, err := LoadIfPresent(missing, &bad); err == nil {
		t.Fatal("invalid defaults should fail")
	}
}
