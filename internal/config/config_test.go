package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Port:         "8081",
		CreateURL:    "https://flows.example.com/create",
		UpdateURL:    "https://flows.example.com/update",
		SyncTimeout:  10 * time.Second,
		AssetTimeout: 3 * time.Second,
		DataDir:      "data",
		SessionTTL:   12 * time.Hour,
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8081" {
		t.Fatalf("default port = %q", cfg.Port)
	}
	if cfg.SyncTimeout != 10*time.Second {
		t.Fatalf("default sync timeout = %v", cfg.SyncTimeout)
	}
	if cfg.AssetTimeout != 3*time.Second {
		t.Fatalf("default asset timeout = %v", cfg.AssetTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CREATE_URL", "https://example.com/c")
	t.Setenv("SYNC_TIMEOUT", "5s")
	t.Setenv("SESSION_TTL", "1h")

	cfg := Load()
	if cfg.Port != "9090" || cfg.CreateURL != "https://example.com/c" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.SyncTimeout != 5*time.Second || cfg.SessionTTL != time.Hour {
		t.Fatalf("durations not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mut     func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad port", func(c *Config) { c.Port = "abc" }, "invalid port"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "between 1 and 65535"},
		{"bad scheme", func(c *Config) { c.CreateURL = "ftp://x" }, "scheme"},
		{"empty endpoints allowed", func(c *Config) { c.CreateURL = ""; c.UpdateURL = "" }, ""},
		{"sync timeout too small", func(c *Config) { c.SyncTimeout = 10 * time.Millisecond }, "sync timeout"},
		{"sync timeout too large", func(c *Config) { c.SyncTimeout = 2 * time.Minute }, "sync timeout"},
		{"asset timeout out of range", func(c *Config) { c.AssetTimeout = time.Minute }, "asset timeout"},
		{"session ttl too small", func(c *Config) { c.SessionTTL = time.Second }, "session TTL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mut(cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Port = "abc"
	cfg.UpdateURL = "ftp://x"
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "port") || !strings.Contains(err.Error(), "scheme") {
		t.Fatalf("expected both problems reported, got: %v", err)
	}
}

func TestAssetURLs(t *testing.T) {
	cfg := validConfig()
	cfg.WalletAssetURL = "https://assets.example.com/wallet.json"
	urls := cfg.AssetURLs()
	if len(urls) != 3 {
		t.Fatalf("expected three named assets, got %d", len(urls))
	}
	if urls["wallet"] != cfg.WalletAssetURL || urls["success"] != "" {
		t.Fatalf("unexpected urls: %v", urls)
	}
}
