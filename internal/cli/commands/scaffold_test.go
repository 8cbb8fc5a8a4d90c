package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScaffoldCommand(t *testing.T) {
	cmd := NewScaffoldCommand()

	assert.Equal(t, "scaffold <output.md>", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("title"))
	assert.NotNil(t, cmd.Flags().Lookup("force"))
}

func TestScaffoldCommand_WritesSpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "specs", "checkout-flow.md")

	cmd := NewScaffoldCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	// Title derived from the file name
	assert.Contains(t, string(content), "# Checkout Flow")

	for _, section := range []string{
		"## User Goal",
		"## Screen Map",
		"## Interaction States",
		"## Component Rules",
		"## Accessibility & Localization",
		"## Telemetry",
	} {
		assert.Contains(t, string(content), section)
	}
}

func TestScaffoldCommand_ExplicitTitle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.md")

	cmd := NewScaffoldCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{path, "--title", "Onboarding"})

	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Onboarding")
}

func TestScaffoldCommand_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.md")
	require.NoError(t, os.WriteFile(path, []byte("existing"), 0o644))

	cmd := NewScaffoldCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// Original content untouched
	content, _ := os.ReadFile(path)
	assert.Equal(t, "existing", string(content))
}

func TestScaffoldCommand_Force(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.md")
	require.NoError(t, os.WriteFile(path, []byte("existing"), 0o644))

	cmd := NewScaffoldCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{path, "--force"})

	require.NoError(t, cmd.Execute())

	content, _ := os.ReadFile(path)
	assert.Contains(t, string(content), "## User Goal")
}
