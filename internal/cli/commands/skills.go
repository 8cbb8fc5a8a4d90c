package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/oil-oil/agent-skills/internal/cli/output"
	"github.com/oil-oil/agent-skills/internal/skill"
)

// NewSkillsCommand creates the skills command group.
func NewSkillsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skills",
		Short: "List and validate installed skills",
		Long: `Work with the skills discovered in this project.

Skills are looked up in the project's skills/ directory and in
~/.agent/skills. A project skill shadows a user skill with the same
name.`,
	}

	cmd.AddCommand(newSkillsListCommand())
	cmd.AddCommand(newSkillsValidateCommand())

	return cmd
}

func newSkillsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List discovered skills",
		Example: `  # List skills
  skillkit skills list

  # Machine-readable
  skillkit skills list -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			r := cmdCtx.Renderer

			skills, err := skill.Discover(cmdCtx.Cfg.ProjectRoot)
			if err != nil {
				return err
			}

			if r.IsJSON() {
				return r.JSON(skills)
			}

			if len(skills) == 0 {
				r.Println("No skills found. Run 'skillkit init' to create one.")
				return nil
			}

			if r.Mode() == output.ModeMarkdown {
				r.Println("| Name | Description | Location |")
				r.Println("| --- | --- | --- |")
				for _, s := range skills {
					r.Printf("| %s | %s | %s |\n", s.Name, s.Description, s.Dir)
				}
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(r.Writer())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Name", "Description", "Location"})
			for _, s := range skills {
				t.AppendRow(table.Row{s.Name, s.Description, s.Dir})
			}
			t.Render()
			return nil
		},
	}
}

func newSkillsValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [directory]",
		Short: "Validate a skill's structure",
		Long: `Check that a skill has a description, a body, and that every
reference its frontmatter declares exists on disk.

Without an argument, every discovered skill is validated.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			r := cmdCtx.Renderer

			var skills []*skill.Skill
			if len(args) > 0 {
				s, err := skill.Load(args[0])
				if err != nil {
					return err
				}
				skills = []*skill.Skill{s}
			} else {
				var err error
				skills, err = skill.Discover(cmdCtx.Cfg.ProjectRoot)
				if err != nil {
					return err
				}
				if len(skills) == 0 {
					return fmt.Errorf("no skills found in %s", cmdCtx.Cfg.ProjectRoot)
				}
			}

			type validation struct {
				Name     string   `json:"name"`
				Dir      string   `json:"dir"`
				Problems []string `json:"problems"`
			}

			var report []validation
			failed := 0
			for _, s := range skills {
				problems := s.Validate()
				if len(problems) > 0 {
					failed++
				}
				report = append(report, validation{Name: s.Name, Dir: s.Dir, Problems: problems})
			}

			if r.IsJSON() {
				if err := r.JSON(report); err != nil {
					return err
				}
			} else {
				for _, v := range report {
					if len(v.Problems) == 0 {
						r.StatusLine(v.Name, "ok", "")
						continue
					}
					r.StatusLine(v.Name, "fail", "")
					for _, p := range v.Problems {
						r.Println("    " + p)
					}
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d skills failed validation", failed, len(skills))
			}
			return nil
		},
	}
}
