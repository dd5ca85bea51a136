package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != defaultPort {
		t.Fatalf("Port = %d, want %d", cfg.Port, defaultPort)
	}
	if !cfg.IsDev() {
		t.Fatal("default env should be development")
	}
	if cfg.DSN == "" {
		t.Fatal("DSN should be composed from defaults")
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	raw := `
port: 9000
env: production
redis_url: redis://cache:6379/1
database:
  host: db.internal
  name: notes
ai:
  model: gpt-4o
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 9000 {
		t.Fatalf("Port = %d", cfg.Port)
	}
	if cfg.IsDev() {
		t.Fatal("env production should not be dev")
	}
	if cfg.RedisURL != "redis://cache:6379/1" {
		t.Fatalf("RedisURL = %q", cfg.RedisURL)
	}
	if cfg.AI.Model != "gpt-4o" {
		t.Fatalf("AI.Model = %q", cfg.AI.Model)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("port: 9000\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8080 {
		t.Fatalf("Port = %d, want env override", cfg.Port)
	}
	if cfg.JWTSecret != "from-env" {
		t.Fatalf("JWTSecret = %q", cfg.JWTSecret)
	}
}

func TestComposeDSN(t *testing.T) {
	dsn := composeDSN(DatabaseRuntimeConfig{
		Host: "h", Port: 3307, User: "u", Password: "p", Name: "n",
	})
	want := "u:p@tcp(h:3307)/n?charset=utf8mb4&parseTime=True&loc=Local"
	if dsn != want {
		t.Fatalf("dsn = %q, want %q", dsn, want)
	}
}
