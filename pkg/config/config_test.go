package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "dev" {
		t.Fatalf("expected default env dev, got %q", cfg.App.Env)
	}
	if cfg.Storage.Kind() != StorageBackendMemory {
		t.Fatalf("expected memory backend by default, got %q", cfg.Storage.Backend)
	}
	if !cfg.Auth.DemoMode {
		t.Fatalf("expected demo mode on by default")
	}
	if got := cfg.JWT.TTL(); got != 720*time.Minute {
		t.Fatalf("expected 12h token ttl, got %v", got)
	}
	if cfg.Redis.DialTimeout != 5*time.Second {
		t.Fatalf("unexpected redis dial timeout %v", cfg.Redis.DialTimeout)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvJWTSecret); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvJWTSecret, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvStorageBackend, "floppy")

	if _, err := Load(); err == nil {
		t.Fatal("expected unknown backend to be rejected")
	}
}

func TestLoad_RedisBackendNeedsAddress(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvStorageBackend, "redis")

	if _, err := Load(); err == nil {
		t.Fatal("expected redis backend without address to fail")
	}

	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Redis.URL != "redis://localhost:6379/0" {
		t.Fatalf("unexpected Redis URL: %q", cfg.Redis.URL)
	}
}

func TestLoad_SQLBackendNeedsDSN(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvStorageBackend, "SQL")

	if _, err := Load(); err == nil {
		t.Fatal("expected sql backend without dsn to fail")
	}

	t.Setenv(EnvDBDSN, "file::memory:?cache=shared")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DB.IsPostgres() {
		t.Fatalf("expected sqlite driver by default")
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{EnvAppEnv, EnvStorageBackend, EnvRedisURL, EnvRedisAddr, EnvDBDSN, EnvDBDriver, EnvAuthDemoMode} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("failed to unset %s: %v", key, err)
		}
	}
	t.Setenv(EnvJWTSecret, "secret")
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "prod"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
}
