// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists where config files are searched, in priority
// order. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/homefolio/config.yaml",
	"/etc/homefolio/config.yml",
}

// ConfigPathEnvVar overrides the config file search path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns the built-in defaults, applied before the config
// file and environment variables.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    8462,
			Timeout: 30 * time.Second,
		},
		Security: SecurityConfig{
			AdminUsername:     "",
			AdminPassword:     "",
			JWTSecret:         "",
			SessionTimeout:    30 * 24 * time.Hour,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Settings: SettingsConfig{
			Path: "settings.json",
		},
		Steam: SteamConfig{
			APIKey:   "",
			UserID:   "",
			BaseURL:  "http://api.steampowered.com",
			CacheTTL: 6 * time.Hour,
			Timeout:  15 * time.Second,
		},
		Netease: NeteaseConfig{
			UserID:   "",
			MusicU:   "",
			BaseURL:  "https://neteasecloudmusicapi.wenroumao.com",
			CacheTTL: 12 * time.Hour,
			Timeout:  15 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load builds the configuration from layered sources:
//  1. Defaults
//  2. Optional YAML config file
//  3. Environment variables (highest priority)
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file path, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed from comma-separated strings when sourced
// from environment variables.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated env strings into slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}
		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envTransformFunc maps environment variable names to config paths.
// Unrecognized variables are dropped so unrelated process environment
// never leaks into the config tree.
func envTransformFunc(key string) string {
	mappings := map[string]string{
		"HTTP_HOST":            "server.host",
		"HTTP_PORT":            "server.port",
		"HTTP_TIMEOUT":         "server.timeout",
		"ADMIN_USERNAME":       "security.admin_username",
		"ADMIN_PASSWORD":       "security.admin_password",
		"JWT_SECRET":           "security.jwt_secret",
		"SESSION_TIMEOUT":      "security.session_timeout",
		"RATE_LIMIT_DISABLED":  "security.rate_limit_disabled",
		"CORS_ORIGINS":         "security.cors_origins",
		"SETTINGS_PATH":        "settings.path",
		"STEAM_API_KEY":        "steam.api_key",
		"STEAM_USER_ID":        "steam.user_id",
		"STEAM_API_BASE_URL":   "steam.base_url",
		"STEAM_CACHE_TTL":      "steam.cache_ttl",
		"NETEASE_USER_ID":      "netease.user_id",
		"NETEASE_MUSIC_U":      "netease.music_u",
		"NETEASE_API_BASE_URL": "netease.base_url",
		"NETEASE_CACHE_TTL":    "netease.cache_ttl",
		"LOG_LEVEL":            "logging.level",
		"LOG_FORMAT":           "logging.format",
		"LOG_CALLER":           "logging.caller",
	}
	if path, ok := mappings[strings.ToUpper(key)]; ok {
		return path
	}
	return ""
}
