package config

import (
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017/testdb")
	t.Setenv("MONGODB_DATABASE", "gracechapel_test")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("REDIS_PORT", "6379")
	t.Setenv("JWT_SECRET", "testsecret123456789012345678901234")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.MongoDB.URI == "" || cfg.Redis.Host == "" {
		t.Fatalf("unexpected empty config values: %+v", cfg)
	}
	if cfg.MongoDB.Database != "gracechapel_test" {
		t.Fatalf("MongoDB.Database = %q", cfg.MongoDB.Database)
	}
	if cfg.JWT.Secret != "testsecret123456789012345678901234" {
		t.Fatalf("JWT secret not picked up")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Port != "5002" {
		t.Fatalf("Server.Port = %q, want 5002", cfg.Server.Port)
	}
	if cfg.Gateway.Delay != 1500*time.Millisecond {
		t.Fatalf("Gateway.Delay = %v, want 1.5s", cfg.Gateway.Delay)
	}
	if cfg.JWT.AccessTokenTTL != 15*time.Minute {
		t.Fatalf("JWT.AccessTokenTTL = %v, want 15m", cfg.JWT.AccessTokenTTL)
	}
}
