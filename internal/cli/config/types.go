// Package config provides configuration management for the skillkit CLI.
//
// Configuration is layered from four sources, lowest to highest
// precedence: built-in defaults, a skillkit.yaml file, SKILLKIT_
// environment variables, and command-line flags.
package config

import (
	"github.com/oil-oil/agent-skills/internal/hig"
	"github.com/oil-oil/agent-skills/pkg/speclint"
)

// CheckConfig holds configuration for the spec checker.
type CheckConfig struct {
	Disabled          []string                  `koanf:"disabled"`
	SeverityOverrides map[string]string         `koanf:"severity"`
	RuleOptions       map[string]map[string]any `koanf:"rules"`
}

// ToLintConfig converts the file representation into a speclint.Config.
func (c *CheckConfig) ToLintConfig() *speclint.Config {
	cfg := speclint.NewConfig()
	if c == nil {
		return cfg
	}
	for _, id := range c.Disabled {
		cfg.Disable(id)
	}
	for id, sev := range c.SeverityOverrides {
		cfg.SeverityOverrides[id] = speclint.Severity(sev)
	}
	for id, opts := range c.RuleOptions {
		cfg.RuleOptions[id] = opts
	}
	return cfg
}

// ServeConfig holds configuration for the reference server.
type ServeConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`
}

// DefaultServeConfig returns a ServeConfig with default values.
func DefaultServeConfig() *ServeConfig {
	return &ServeConfig{
		Host: "127.0.0.1",
		Port: 8377,
	}
}

// GetServeConfig returns the serve config with defaults applied for any
// unset values.
func (c *Config) GetServeConfig() *ServeConfig {
	if c.Serve == nil {
		return DefaultServeConfig()
	}
	s := c.Serve
	if s.Host == "" {
		s.Host = "127.0.0.1"
	}
	if s.Port == 0 {
		s.Port = 8377
	}
	return s
}

// Config holds all CLI configuration options.
type Config struct {
	SkillDir       string       `koanf:"skill_dir"`
	SleepMS        int          `koanf:"sleep_ms"`
	Concurrency    int          `koanf:"concurrency"`
	TimeoutSeconds int          `koanf:"timeout_seconds"`
	UserAgent      string       `koanf:"user_agent"`
	HTMLFallback   bool         `koanf:"html_fallback"`
	Verbose        bool         `koanf:"verbose"`
	OutputFormat   string       `koanf:"output"`
	Check          *CheckConfig `koanf:"check"`
	Serve          *ServeConfig `koanf:"serve"`

	// ProjectRoot is the resolved project root directory. It is derived
	// at load time, never read from the config file.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values. The polite-pacing default lives with the
// sync engine; an explicit sleep_ms of 0 disables pacing entirely.
const (
	DefaultSkillDir       = "skills/ios-hig-design-guide"
	DefaultSleepMS        = hig.DefaultSleepMS
	DefaultConcurrency    = hig.DefaultConcurrency
	DefaultTimeoutSeconds = 45
	DefaultOutput         = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)
