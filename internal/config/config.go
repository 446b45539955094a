package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port string

	// Workflow automation endpoints
	CreateURL string
	UpdateURL string

	// Sync behaviour
	SyncTimeout time.Duration

	// Decorative assets (best-effort)
	AssetTimeout    time.Duration
	WalletAssetURL  string
	SuccessAssetURL string
	LoadingAssetURL string

	// Taxonomy seed files
	DataDir string

	// Session lifecycle
	SessionTTL time.Duration
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8081"),

		CreateURL: getEnv("CREATE_URL", ""),
		UpdateURL: getEnv("UPDATE_URL", ""),

		SyncTimeout: getEnvDuration("SYNC_TIMEOUT", 10*time.Second),

		AssetTimeout:    getEnvDuration("ASSET_TIMEOUT", 3*time.Second),
		WalletAssetURL:  getEnv("ASSET_WALLET_URL", ""),
		SuccessAssetURL: getEnv("ASSET_SUCCESS_URL", ""),
		LoadingAssetURL: getEnv("ASSET_LOADING_URL", ""),

		DataDir: getEnv("DATA_DIR", "data"),

		SessionTTL: getEnvDuration("SESSION_TTL", 12*time.Hour),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	// Endpoint URLs are optional at boot (the dashboard still works without
	// them) but must be well-formed http(s) URLs when provided.
	for name, raw := range map[string]string{
		"CREATE_URL":        c.CreateURL,
		"UPDATE_URL":        c.UpdateURL,
		"ASSET_WALLET_URL":  c.WalletAssetURL,
		"ASSET_SUCCESS_URL": c.SuccessAssetURL,
		"ASSET_LOADING_URL": c.LoadingAssetURL,
	} {
		if raw == "" {
			continue
		}
		if u, err := url.Parse(raw); err != nil {
			errors = append(errors, fmt.Sprintf("invalid %s '%s': %v", name, raw, err))
		} else if u.Scheme != "http" && u.Scheme != "https" {
			errors = append(errors, fmt.Sprintf("invalid %s scheme '%s': must be 'http' or 'https'", name, u.Scheme))
		}
	}

	if c.SyncTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid sync timeout %v: must be at least 1 second", c.SyncTimeout))
	} else if c.SyncTimeout > time.Minute {
		errors = append(errors, fmt.Sprintf("invalid sync timeout %v: must be at most 1 minute", c.SyncTimeout))
	}

	if c.AssetTimeout < 500*time.Millisecond || c.AssetTimeout > 30*time.Second {
		errors = append(errors, fmt.Sprintf("invalid asset timeout %v: must be between 500ms and 30s", c.AssetTimeout))
	}

	if c.SessionTTL < time.Minute {
		errors = append(errors, fmt.Sprintf("invalid session TTL %v: must be at least 1 minute", c.SessionTTL))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// AssetURLs returns the configured decorative asset URLs keyed by name.
func (c *Config) AssetURLs() map[string]string {
	return map[string]string{
		"wallet":  c.WalletAssetURL,
		"success": c.SuccessAssetURL,
		"loading": c.LoadingAssetURL,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
