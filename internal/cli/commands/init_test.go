package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oil-oil/agent-skills/internal/skill"
)

func TestNewInitCommand(t *testing.T) {
	cmd := NewInitCommand()

	assert.Equal(t, "init [directory]", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("force"))
	assert.NotNil(t, cmd.Flags().Lookup("description"))
}

func TestInitCommand_CreatesSkill(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "skills", "watchos-design-guide")

	cmd := NewInitCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{dir})

	require.NoError(t, cmd.Execute())

	// Layout
	assert.FileExists(t, filepath.Join(dir, "SKILL.md"))
	assert.FileExists(t, filepath.Join(dir, "workflow.md"))
	assert.DirExists(t, filepath.Join(dir, "references"))

	// Name derived from the directory
	content, err := os.ReadFile(filepath.Join(dir, "SKILL.md"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "name: watchos-design-guide")
	assert.Contains(t, string(content), "# Watchos Design Guide")

	// The initialized skill loads; only the not-yet-synced reference
	// is reported as missing.
	s, err := skill.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "watchos-design-guide", s.Name)
	problems := s.Validate()
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "apple-hig-ios-curated.md")
}

func TestInitCommand_CustomDescription(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "skills", "guide")

	cmd := NewInitCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{dir, "--description", "Custom description."})

	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(filepath.Join(dir, "SKILL.md"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "description: Custom description.")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "skills", "guide")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte("mine"), 0o644))

	cmd := NewInitCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{dir})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	content, _ := os.ReadFile(filepath.Join(dir, "SKILL.md"))
	assert.Equal(t, "mine", string(content))
}
