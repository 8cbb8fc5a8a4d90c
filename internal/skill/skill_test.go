package skill

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSkill(t *testing.T, root, name, content string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte(content), 0o644))
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeSkill(t, t.TempDir(), "ios-hig-design-guide", `---
name: ios-hig-design-guide
description: Build iOS design specs from Apple HIG references.
trigger: designing iOS features
references:
  - references/apple-hig-ios-curated.md
---

Use the curated reference first; fall back to the full dump for edge
cases.
`)

	s, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "ios-hig-design-guide", s.Name)
	assert.Equal(t, "Build iOS design specs from Apple HIG references.", s.Description)
	assert.Equal(t, "designing iOS features", s.Trigger)
	assert.Equal(t, []string{"references/apple-hig-ios-curated.md"}, s.References)
	assert.Contains(t, s.Content, "curated reference first")
	assert.NotContains(t, s.Content, "---")
}

func TestLoadNoFrontmatter(t *testing.T) {
	dir := writeSkill(t, t.TempDir(), "bare-skill", "Just instructions, no header.\n")

	s, err := Load(dir)
	require.NoError(t, err)

	// Directory name is the fallback identity.
	assert.Equal(t, "bare-skill", s.Name)
	assert.Equal(t, "Just instructions, no header.", s.Content)
}

func TestLoadBadFrontmatter(t *testing.T) {
	dir := writeSkill(t, t.TempDir(), "broken", "---\nname: [unclosed\n---\nbody\n")

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoadMissingSkillFile(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestDiscover(t *testing.T) {
	project := t.TempDir()
	skillsRoot := filepath.Join(project, "skills")

	writeSkill(t, skillsRoot, "alpha", "---\nname: alpha\ndescription: a\n---\nbody\n")
	writeSkill(t, skillsRoot, "beta", "---\nname: beta\ndescription: b\n---\nbody\n")

	// A directory without SKILL.md is not a skill.
	require.NoError(t, os.MkdirAll(filepath.Join(skillsRoot, "not-a-skill"), 0o755))

	skills, err := Discover(project)
	require.NoError(t, err)

	require.Len(t, skills, 2)
	assert.Equal(t, "alpha", skills[0].Name)
	assert.Equal(t, "beta", skills[1].Name)
}

func TestValidate(t *testing.T) {
	root := t.TempDir()
	dir := writeSkill(t, root, "incomplete", `---
name: incomplete
references:
  - references/missing.md
---
`)

	s, err := Load(dir)
	require.NoError(t, err)

	problems := s.Validate()
	require.Len(t, problems, 3)
	assert.Contains(t, problems[0], "no description")
	assert.Contains(t, problems[1], "no body")
	assert.Contains(t, problems[2], "references/missing.md")
}

func TestValidateSound(t *testing.T) {
	root := t.TempDir()
	dir := writeSkill(t, root, "sound", `---
name: sound
description: fine
references:
  - references/curated.md
---
Body.
`)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "references"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "references", "curated.md"), []byte("x"), 0o644))

	s, err := Load(dir)
	require.NoError(t, err)
	assert.Empty(t, s.Validate())
}
