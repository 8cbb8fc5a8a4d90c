package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// specTemplateData feeds the design spec template.
type specTemplateData struct {
	Title string
}

// NewScaffoldCommand creates the scaffold command.
func NewScaffoldCommand() *cobra.Command {
	var title string
	var force bool

	cmd := &cobra.Command{
		Use:   "scaffold <output.md>",
		Short: "Scaffold a design spec document",
		Long: `Write a design spec skeleton with every required section.

The skeleton contains the six sections the checker requires (user
goal, screen map, interaction states, component rules, accessibility
and localization, telemetry) pre-filled with guidance, and addresses
each QA gate topic. A freshly scaffolded spec passes 'skillkit
check'.`,
		Example: `  # Scaffold a spec
  skillkit scaffold specs/checkout.md

  # With a title
  skillkit scaffold specs/checkout.md --title "Checkout Flow"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScaffold(cmd, args[0], title, force)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Spec title (default: derived from the file name)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}

func runScaffold(cmd *cobra.Command, path, title string, force bool) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", path)
	}

	if title == "" {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		title = titleCaser.String(strings.ReplaceAll(base, "-", " "))
	}

	content, err := renderTemplate("templates/spec/design-spec.md.tmpl", specTemplateData{Title: title})
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, content, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	r.Success(fmt.Sprintf("Scaffolded %s", path))
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Fill in each section")
	r.Println("  2. Run 'skillkit check " + path + "' before hand-off")

	return nil
}
