package config

import (
	"fmt"
	"os"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.SkillDir == "" {
		return fmt.Errorf("skill_dir is required")
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	if c.TimeoutSeconds < 1 {
		return fmt.Errorf("timeout_seconds must be at least 1, got %d", c.TimeoutSeconds)
	}
	switch c.OutputFormat {
	case "", "auto", "text", "markdown", "json":
	default:
		return fmt.Errorf("invalid output format %q (expected auto, text, markdown, or json)", c.OutputFormat)
	}
	// Directory existence is checked separately so help commands work
	// without a valid skill directory.
	return nil
}

// ValidateSkillDir checks if the configured skill directory exists.
func (c *Config) ValidateSkillDir() error {
	if _, err := os.Stat(c.SkillDir); os.IsNotExist(err) {
		return fmt.Errorf("skill directory does not exist: %s\nHint: Run 'skillkit init' or use --skill-dir to specify a different path", c.SkillDir)
	}
	return nil
}
