package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal("Load with defaults should succeed:", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %s, want :8080", cfg.Server.Addr)
	}
	if cfg.Cache.MaxSize != 1000 {
		t.Errorf("Cache.MaxSize = %d, want 1000", cfg.Cache.MaxSize)
	}
	if cfg.Cache.DefaultTTL != time.Hour {
		t.Errorf("Cache.DefaultTTL = %s, want 1h", cfg.Cache.DefaultTTL)
	}
	if cfg.RateLimit.MaxRequests != 100 || cfg.RateLimit.WindowSeconds != 60 {
		t.Errorf("rate limit = %d/%ds, want 100/60s",
			cfg.RateLimit.MaxRequests, cfg.RateLimit.WindowSeconds)
	}
	if cfg.StatuteAPI.Timeout != 3*time.Second {
		t.Errorf("StatuteAPI.Timeout = %s, want 3s", cfg.StatuteAPI.Timeout)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CACHE_MAX_SIZE", "50")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "10")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatal("Load should succeed:", err)
	}
	if cfg.Cache.MaxSize != 50 {
		t.Errorf("Cache.MaxSize = %d, want 50", cfg.Cache.MaxSize)
	}
	if cfg.RateLimit.MaxRequests != 10 {
		t.Errorf("RateLimit.MaxRequests = %d, want 10", cfg.RateLimit.MaxRequests)
	}
	if cfg.RateLimit.WindowSeconds != 30 {
		t.Errorf("RateLimit.WindowSeconds = %d, want 30", cfg.RateLimit.WindowSeconds)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("CACHE_MAX_SIZE", "-1")

	if _, err := Load(); err == nil {
		t.Error("Load should reject a negative cache size")
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load()
		if err != nil {
			t.Fatal("Load should succeed:", err)
		}
		return cfg
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero cache size", func(c *Config) { c.Cache.MaxSize = 0 }},
		{"zero cache ttl", func(c *Config) { c.Cache.DefaultTTL = 0 }},
		{"zero max requests", func(c *Config) { c.RateLimit.MaxRequests = 0 }},
		{"negative window", func(c *Config) { c.RateLimit.WindowSeconds = -5 }},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }},
		{"zero api timeout", func(c *Config) { c.StatuteAPI.Timeout = 0 }},
	}

	for _, tc := range cases {
		cfg := base()
		tc.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: Validate should fail", tc.name)
		}
	}
}

func TestArchiveEnabled(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal("Load should succeed:", err)
	}
	if cfg.ArchiveEnabled() {
		t.Error("archive should be disabled without credentials")
	}

	cfg.Archive.Bucket = "reports"
	cfg.Archive.AccessKeyID = "key"
	cfg.Archive.SecretAccessKey = "secret"
	if !cfg.ArchiveEnabled() {
		t.Error("archive should be enabled with a complete config")
	}
}
