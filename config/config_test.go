package config

import (
	"testing"
)

func validConfig() Config {
	return Config{
		Database: DatabaseConfig{Driver: "sqlite", DSN: ":memory:"},
		Cache:    CacheConfig{Backend: "memory"},
		Auth:     AuthConfig{JWTSecret: "s"},
		Catalog:  CatalogConfig{PageSize: 12, CompareLimit: 4},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }, wantErr: true},
		{name: "missing dsn", mutate: func(c *Config) { c.Database.DSN = "" }, wantErr: true},
		{name: "redis without url", mutate: func(c *Config) { c.Cache.Backend = "redis" }, wantErr: true},
		{name: "redis with url", mutate: func(c *Config) { c.Cache.Backend = "redis"; c.Cache.RedisURL = "redis://localhost:6379" }},
		{name: "unknown cache", mutate: func(c *Config) { c.Cache.Backend = "memcached" }, wantErr: true},
		{name: "missing secret", mutate: func(c *Config) { c.Auth.JWTSecret = "" }, wantErr: true},
		{name: "dev secret in development", mutate: func(c *Config) { c.Environment.Name = "development"; c.Auth.JWTSecret = DevJWTSecret }},
		{name: "dev secret in production", mutate: func(c *Config) { c.Environment.Name = "production"; c.Auth.JWTSecret = DevJWTSecret }, wantErr: true},
		{name: "dev secret without environment", mutate: func(c *Config) { c.Environment.Name = ""; c.Auth.JWTSecret = DevJWTSecret }, wantErr: true},
		{name: "real secret in production", mutate: func(c *Config) { c.Environment.Name = "production"; c.Auth.JWTSecret = "a-long-random-secret" }},
		{name: "zero page size", mutate: func(c *Config) { c.Catalog.PageSize = 0 }, wantErr: true},
		{name: "compare limit too small", mutate: func(c *Config) { c.Catalog.CompareLimit = 1 }, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ENVIRONMENT_NAME", "production")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("AUTH_JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected Load to reject the default secret in production")
	}

	t.Setenv("JWT_SECRET", "a-long-random-secret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Auth.JWTSecret != "a-long-random-secret" {
		t.Errorf("JWTSecret = %q", cfg.Auth.JWTSecret)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList([]string{"http://a.test, http://b.test", " ", "http://c.test"})
	want := []string{"http://a.test", "http://b.test", "http://c.test"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
