// Package skill loads and validates agent skill packages.
//
// A skill is a directory containing a SKILL.md with YAML frontmatter
// plus supporting files, typically a references/ tree of synced source
// material:
//
//	skills/ios-hig-design-guide/
//	  SKILL.md
//	  workflow.md
//	  references/...
package skill

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Skill is a parsed skill package.
type Skill struct {
	Name        string
	Description string
	Trigger     string
	References  []string // reference files the skill depends on, relative to its dir
	Content     string   // SKILL.md body without frontmatter
	Dir         string   // skill directory
}

// frontmatter is the YAML header of a SKILL.md.
type frontmatter struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Trigger     string   `yaml:"trigger"`
	References  []string `yaml:"references"`
}

var frontmatterDelim = []byte("---")

// Load parses the skill package rooted at dir.
func Load(dir string) (*Skill, error) {
	path := filepath.Join(dir, "SKILL.md")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	s := &Skill{Dir: dir}

	body := data
	if bytes.HasPrefix(data, frontmatterDelim) {
		parts := bytes.SplitN(data, frontmatterDelim, 3)
		if len(parts) == 3 {
			var fm frontmatter
			if err := yaml.Unmarshal(parts[1], &fm); err != nil {
				return nil, fmt.Errorf("parse frontmatter in %s: %w", path, err)
			}
			s.Name = fm.Name
			s.Description = fm.Description
			s.Trigger = fm.Trigger
			s.References = fm.References
			body = parts[2]
		}
	}

	if s.Name == "" {
		// Directory name is the fallback identity.
		s.Name = filepath.Base(dir)
	}
	s.Content = strings.TrimSpace(string(body))

	return s, nil
}

// Discover finds skill packages under the project's skills directory and
// the user-level skills directory. Project skills shadow user skills with
// the same name. Results are sorted by name.
func Discover(projectDir string) ([]*Skill, error) {
	var dirs []string
	dirs = append(dirs, filepath.Join(projectDir, "skills"))
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".agent", "skills"))
	}

	var skills []*Skill
	seen := make(map[string]bool)

	for _, root := range dirs {
		entries, err := os.ReadDir(root)
		if err != nil {
			continue // missing roots are fine
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			dir := filepath.Join(root, entry.Name())
			if _, err := os.Stat(filepath.Join(dir, "SKILL.md")); err != nil {
				continue
			}
			s, err := Load(dir)
			if err != nil {
				return nil, err
			}
			if seen[s.Name] {
				continue
			}
			seen[s.Name] = true
			skills = append(skills, s)
		}
	}

	sort.Slice(skills, func(i, j int) bool { return skills[i].Name < skills[j].Name })
	return skills, nil
}

// Validate checks a skill package for structural problems and returns
// human-readable findings. An empty result means the skill is sound.
func (s *Skill) Validate() []string {
	var problems []string

	if s.Description == "" {
		problems = append(problems, "SKILL.md frontmatter has no description")
	}
	if s.Content == "" {
		problems = append(problems, "SKILL.md has no body content")
	}

	for _, ref := range s.References {
		path := filepath.Join(s.Dir, filepath.FromSlash(ref))
		if _, err := os.Stat(path); err != nil {
			problems = append(problems, fmt.Sprintf("declared reference missing: %s", ref))
		}
	}

	return problems
}
