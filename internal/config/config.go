// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

// Package config loads layered configuration: built-in defaults, then an
// optional YAML config file, then environment variables (highest priority).
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration tree.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Settings SettingsConfig `koanf:"settings"`
	Steam    SteamConfig    `koanf:"steam"`
	Netease  NeteaseConfig  `koanf:"netease"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// Addr returns the listen address in host:port form.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SecurityConfig holds the admin credential pair, JWT settings and
// HTTP hardening knobs. AdminUsername/AdminPassword come from the
// ADMIN_USERNAME/ADMIN_PASSWORD environment variables; when either is empty
// every login attempt is rejected.
type SecurityConfig struct {
	AdminUsername     string        `koanf:"admin_username"`
	AdminPassword     string        `koanf:"admin_password"`
	JWTSecret         string        `koanf:"jwt_secret"`
	SessionTimeout    time.Duration `koanf:"session_timeout"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// SettingsConfig locates the settings document.
type SettingsConfig struct {
	Path string `koanf:"path"`
}

// SteamConfig holds the Steam Web API key, the fallback user id and the
// summary cache window.
type SteamConfig struct {
	APIKey   string        `koanf:"api_key"`
	UserID   string        `koanf:"user_id"`
	BaseURL  string        `koanf:"base_url"`
	CacheTTL time.Duration `koanf:"cache_ttl"`
	Timeout  time.Duration `koanf:"timeout"`
}

// NeteaseConfig holds the NetEase Cloud Music session cookie value
// (MUSIC_U), the fallback user id and the summary cache window.
type NeteaseConfig struct {
	UserID   string        `koanf:"user_id"`
	MusicU   string        `koanf:"music_u"`
	BaseURL  string        `koanf:"base_url"`
	CacheTTL time.Duration `koanf:"cache_ttl"`
	Timeout  time.Duration `koanf:"timeout"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// minJWTSecretLength guards against trivially brute-forceable HS256 keys.
const minJWTSecretLength = 32

// Validate checks invariants that would otherwise surface as confusing
// runtime failures.
func (c *Config) Validate() error {
	if c.Security.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if len(c.Security.JWTSecret) < minJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters", minJWTSecretLength)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if c.Settings.Path == "" {
		return fmt.Errorf("settings path is required")
	}
	// Empty admin credentials are not fatal: the site still serves public
	// content, but no login can succeed until both variables are set.
	return nil
}
