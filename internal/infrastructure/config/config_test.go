package config

import (
	"context"
	"testing"

	"github.com/sethvargo/go-envconfig"
)

func loadFrom(t *testing.T, env map[string]string) *Config {
	t.Helper()
	var cfg Config
	err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.MapLookuper(env),
	})
	if err != nil {
		t.Fatalf("process config: %v", err)
	}
	return &cfg
}

func TestConfig_Defaults(t *testing.T) {
	cfg := loadFrom(t, map[string]string{})

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected development env, got %s", cfg.Env)
	}
	if cfg.JWTTTL != "24h" {
		t.Fatalf("expected 24h token ttl, got %s", cfg.JWTTTL)
	}
	if cfg.Mongo.Database != "agency" {
		t.Fatalf("expected agency database, got %s", cfg.Mongo.Database)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("unexpected redis addr: %s", cfg.Redis.Addr)
	}
	if cfg.SMTP.Port != 587 {
		t.Fatalf("unexpected smtp port: %d", cfg.SMTP.Port)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:5173" {
		t.Fatalf("unexpected cors origins: %v", cfg.CORSOrigins)
	}
	if cfg.Admin.Email != "admin@gmail.com" {
		t.Fatalf("unexpected admin email: %s", cfg.Admin.Email)
	}
}

func TestConfig_Overrides(t *testing.T) {
	cfg := loadFrom(t, map[string]string{
		"PORT":         "9090",
		"ENV":          "production",
		"JWT_SECRET":   "s3cret",
		"CORS_ORIGINS": "https://agency.example,https://www.agency.example",
		"REDIS_DB":     "2",
	})

	if cfg.Port != "9090" {
		t.Fatalf("expected 9090, got %s", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected production, got %s", cfg.Env)
	}
	if cfg.JWTSecret != "s3cret" {
		t.Fatalf("expected jwt secret to load, got %q", cfg.JWTSecret)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.CORSOrigins)
	}
	if cfg.Redis.DB != 2 {
		t.Fatalf("expected redis db 2, got %d", cfg.Redis.DB)
	}
}
