package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// skillTemplateData feeds the SKILL.md template.
type skillTemplateData struct {
	Name        string
	Title       string
	Description string
}

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool
	var description string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new skill directory",
		Long: `Initialize a new agent skill with the standard layout.

This creates:
  - SKILL.md with the skill's frontmatter and usage notes
  - workflow.md describing the staged design workflow
  - references/ directory for synced guideline material

The directory defaults to the configured skill dir. The skill's name
is taken from the directory's base name.`,
		Example: `  # Initialize the default skill
  skillkit init

  # Initialize a named skill
  skillkit init skills/watchos-design-guide

  # Overwrite existing files
  skillkit init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			dir := cmdCtx.Cfg.SkillDir
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmdCtx, dir, description, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	cmd.Flags().StringVar(&description, "description", "", "Skill description for SKILL.md")

	return cmd
}

func runInit(cmdCtx *CommandContext, dir, description string, force bool) error {
	r := cmdCtx.Renderer

	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	skillPath := filepath.Join(dir, "SKILL.md")
	if _, err := os.Stat(skillPath); err == nil && !force {
		return fmt.Errorf("SKILL.md already exists in %s. Use --force to overwrite", dir)
	}

	name := filepath.Base(dir)
	if description == "" {
		description = fmt.Sprintf("Design guidance skill %q grounded in local reference material.", name)
	}
	data := skillTemplateData{
		Name:        name,
		Title:       titleCaser.String(strings.ReplaceAll(name, "-", " ")),
		Description: description,
	}

	created, err := copyTemplate("skill", dir, data, force)
	if err != nil {
		return fmt.Errorf("failed to initialize skill: %w", err)
	}

	// The references tree is populated by sync; create its root now so
	// the layout is visible.
	if err := os.MkdirAll(filepath.Join(dir, "references"), 0750); err != nil {
		return err
	}

	for _, f := range created {
		r.StatusLine(filepath.Join(dir, f), "success", "")
	}
	r.StatusLine(filepath.Join(dir, "references")+string(os.PathSeparator), "success", "")

	r.Println("")
	r.Success(fmt.Sprintf("Skill %q initialized", name))
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Edit SKILL.md's description and trigger")
	r.Println("  2. Run 'skillkit sync' to populate references/")
	r.Println("  3. Run 'skillkit skills validate' to verify the skill")

	return nil
}
