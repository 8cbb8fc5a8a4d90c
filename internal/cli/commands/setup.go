package commands

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/oil-oil/agent-skills/internal/cli/config"
	"github.com/oil-oil/agent-skills/internal/cli/output"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's
// environment.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to
// environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	cwd, _ := os.Getwd()
	return &config.Config{
		ProjectRoot:    cwd,
		SkillDir:       getEnvOrDefault("SKILLKIT_SKILL_DIR", config.DefaultSkillDir),
		SleepMS:        getEnvIntOrDefault("SKILLKIT_SLEEP_MS", config.DefaultSleepMS),
		Concurrency:    getEnvIntOrDefault("SKILLKIT_CONCURRENCY", config.DefaultConcurrency),
		TimeoutSeconds: getEnvIntOrDefault("SKILLKIT_TIMEOUT_SECONDS", config.DefaultTimeoutSeconds),
		UserAgent:      os.Getenv("SKILLKIT_USER_AGENT"),
		HTMLFallback:   os.Getenv("SKILLKIT_HTML_FALLBACK") != "false",
		Verbose:        os.Getenv("SKILLKIT_VERBOSE") == "true",
		OutputFormat:   os.Getenv("SKILLKIT_OUTPUT"),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
