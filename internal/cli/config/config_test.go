package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oil-oil/agent-skills/pkg/speclint"
)

// TestLoadConfig_Defaults verifies that defaults apply when nothing else
// provides a value.
func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()

	// Empty project dir so no skillkit.yaml is picked up from CWD.
	tmpDir := t.TempDir()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("project-dir", "", "project root")
	require.NoError(t, flags.Set("project-dir", tmpDir))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tmpDir, DefaultSkillDir), cfg.SkillDir)
	assert.Equal(t, DefaultSleepMS, cfg.SleepMS)
	assert.Equal(t, DefaultConcurrency, cfg.Concurrency)
	assert.Equal(t, DefaultTimeoutSeconds, cfg.TimeoutSeconds)
	assert.True(t, cfg.HTMLFallback)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, tmpDir, cfg.ProjectRoot)
}

// TestLoadConfig_File verifies loading values from a skillkit.yaml file.
func TestLoadConfig_File(t *testing.T) {
	ResetConfig()

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "skillkit.yaml")
	cfgContent := `skill_dir: skills/custom-guide
sleep_ms: 250
concurrency: 2
html_fallback: false
check:
  disabled:
    - QA06
  severity:
    SEC06: warning
serve:
  port: 9001
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgContent), 0600))

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tmpDir, "skills/custom-guide"), cfg.SkillDir)
	assert.Equal(t, 250, cfg.SleepMS)
	assert.Equal(t, 2, cfg.Concurrency)
	assert.False(t, cfg.HTMLFallback)

	require.NotNil(t, cfg.Check)
	assert.Equal(t, []string{"QA06"}, cfg.Check.Disabled)
	assert.Equal(t, "warning", cfg.Check.SeverityOverrides["SEC06"])

	serve := cfg.GetServeConfig()
	assert.Equal(t, 9001, serve.Port)
	assert.Equal(t, "127.0.0.1", serve.Host)
}

// TestLoadConfig_EnvPrecedenceOverFile tests that env vars override the
// config file.
func TestLoadConfig_EnvPrecedenceOverFile(t *testing.T) {
	ResetConfig()

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "skillkit.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("sleep_ms: 250\n"), 0600))

	require.NoError(t, os.Setenv("SKILLKIT_SLEEP_MS", "500"))
	defer func() { _ = os.Unsetenv("SKILLKIT_SLEEP_MS") }()

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.SleepMS, "env var should override config file")
}

// TestLoadConfig_FlagPrecedence tests that flags override env vars and
// the config file.
func TestLoadConfig_FlagPrecedence(t *testing.T) {
	ResetConfig()

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "skillkit.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("sleep_ms: 250\n"), 0600))

	require.NoError(t, os.Setenv("SKILLKIT_SLEEP_MS", "500"))
	defer func() { _ = os.Unsetenv("SKILLKIT_SLEEP_MS") }()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("sleep-ms", 0, "pause between page downloads")
	require.NoError(t, flags.Set("sleep-ms", "60"))

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.SleepMS, "flag value should override config file and env var")
}

// TestLoadConfig_FlagNotSetUsesEnv tests that unset flags fall back to
// env vars.
func TestLoadConfig_FlagNotSetUsesEnv(t *testing.T) {
	ResetConfig()

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "skillkit.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("sleep_ms: 250\n"), 0600))

	require.NoError(t, os.Setenv("SKILLKIT_SLEEP_MS", "500"))
	defer func() { _ = os.Unsetenv("SKILLKIT_SLEEP_MS") }()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("sleep-ms", 0, "pause between page downloads")
	// Note: not calling flags.Set(), so Changed is false

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.SleepMS, "env var should be used when flag is not set")
}

// TestLoadConfig_TimeoutFlagMapping tests the --timeout to timeout_seconds
// key mapping.
func TestLoadConfig_TimeoutFlagMapping(t *testing.T) {
	ResetConfig()

	tmpDir := t.TempDir()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("project-dir", "", "project root")
	flags.Int("timeout", 0, "per-request timeout in seconds")
	require.NoError(t, flags.Set("project-dir", tmpDir))
	require.NoError(t, flags.Set("timeout", "90"))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, 90, cfg.TimeoutSeconds)
}

// TestLoadConfig_SkillDirFlag verifies the flag path is anchored to CWD,
// not re-resolved against the project root.
func TestLoadConfig_SkillDirFlag(t *testing.T) {
	ResetConfig()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("skill-dir", "", "skill directory")
	require.NoError(t, flags.Set("skill-dir", filepath.Join("testdata", "skills", "guide")))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "testdata", "skills", "guide"), cfg.SkillDir)
}

// TestInferProjectRoot_FromSkillDir verifies the skills/<name> layout
// convention anchors the project root two levels up.
func TestInferProjectRoot_FromSkillDir(t *testing.T) {
	tmpDir := t.TempDir()
	skillDir := filepath.Join(tmpDir, "skills", "guide")
	require.NoError(t, os.MkdirAll(skillDir, 0755))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("skill-dir", "", "skill directory")
	require.NoError(t, flags.Set("skill-dir", skillDir))

	root := inferProjectRoot(flags)
	assert.Equal(t, tmpDir, root)
}

// TestFindProjectRootUpward verifies the upward config search.
func TestFindProjectRootUpward(t *testing.T) {
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "skillkit.yaml"), []byte(""), 0600))

	assert.Equal(t, tmpDir, findProjectRootUpward(nested))

	empty := filepath.Join(t.TempDir(), "x")
	require.NoError(t, os.MkdirAll(empty, 0755))
	assert.Equal(t, "", findProjectRootUpward(empty))
}

// TestConfig_Validate tests the Config.Validate method.
func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			SkillDir:       "skills/guide",
			Concurrency:    4,
			TimeoutSeconds: 45,
			OutputFormat:   "auto",
		}
	}

	tests := []struct {
		name      string
		mutate    func(*Config)
		errSubstr string
	}{
		{name: "valid config", mutate: func(c *Config) {}},
		{
			name:      "empty skill_dir",
			mutate:    func(c *Config) { c.SkillDir = "" },
			errSubstr: "skill_dir is required",
		},
		{
			name:      "zero concurrency",
			mutate:    func(c *Config) { c.Concurrency = 0 },
			errSubstr: "concurrency must be at least 1",
		},
		{
			name:      "zero timeout",
			mutate:    func(c *Config) { c.TimeoutSeconds = 0 },
			errSubstr: "timeout_seconds must be at least 1",
		},
		{
			name:      "bad output format",
			mutate:    func(c *Config) { c.OutputFormat = "xml" },
			errSubstr: "invalid output format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errSubstr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errSubstr)
			}
		})
	}
}

// TestConfig_ValidateSkillDir tests skill directory existence checks.
func TestConfig_ValidateSkillDir(t *testing.T) {
	t.Run("existing dir", func(t *testing.T) {
		cfg := &Config{SkillDir: t.TempDir()}
		assert.NoError(t, cfg.ValidateSkillDir())
	})

	t.Run("missing dir", func(t *testing.T) {
		cfg := &Config{SkillDir: filepath.Join(t.TempDir(), "absent")}
		err := cfg.ValidateSkillDir()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "skill directory does not exist")
	})
}

// TestCheckConfig_ToLintConfig tests conversion into the checker config.
func TestCheckConfig_ToLintConfig(t *testing.T) {
	t.Run("nil produces empty config", func(t *testing.T) {
		var c *CheckConfig
		cfg := c.ToLintConfig()
		require.NotNil(t, cfg)
		assert.False(t, cfg.IsDisabled("SEC01"))
	})

	t.Run("fields carry over", func(t *testing.T) {
		c := &CheckConfig{
			Disabled:          []string{"QA06"},
			SeverityOverrides: map[string]string{"SEC06": "warning"},
			RuleOptions:       map[string]map[string]any{"SEC02": {"keywords": []string{"screens"}}},
		}
		cfg := c.ToLintConfig()
		assert.True(t, cfg.IsDisabled("QA06"))
		assert.Equal(t, speclint.SeverityWarning, cfg.GetSeverity("SEC06", speclint.SeverityError))
		assert.NotNil(t, cfg.GetRuleOptions("SEC02"))
	})
}
