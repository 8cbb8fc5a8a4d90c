package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oil-oil/agent-skills/internal/cli/output"
	"github.com/oil-oil/agent-skills/internal/workflow"
)

// NewWorkflowCommand creates the workflow command.
func NewWorkflowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "workflow",
		Short: "Show the design workflow",
		Long: `Print the staged design workflow the skill walks a feature through,
from context gathering to the final QA gate.`,
		Example: `  # Show the workflow
  skillkit workflow

  # Machine-readable
  skillkit workflow -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			r := cmdCtx.Renderer

			if r.IsJSON() {
				return r.JSON(workflow.Steps)
			}

			if r.Mode() == output.ModeMarkdown {
				r.Println("# Design Workflow")
				r.Println("")
				for i, step := range workflow.Steps {
					r.Printf("## %d. %s\n\n", i+1, step.Title)
					r.Println(step.Goal)
					r.Println("")
					for _, a := range step.Actions {
						r.Println("- " + a)
					}
					r.Println("")
				}
				return nil
			}

			styles := r.Styles()
			r.Println("")
			r.Println(styles.Header.Render("Design Workflow"))
			r.Println("")
			for i, step := range workflow.Steps {
				r.Println(styles.Bold.Render(fmt.Sprintf("%d. %s", i+1, step.Title)))
				r.Println("   " + styles.Muted.Render(step.Goal))
				for _, a := range step.Actions {
					r.Println("   - " + a)
				}
				r.Println("")
			}
			return nil
		},
	}
}
