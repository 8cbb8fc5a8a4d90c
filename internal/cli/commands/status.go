package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/oil-oil/agent-skills/internal/cli/output"
	"github.com/oil-oil/agent-skills/internal/hig"
)

// StatusOptions holds options for the status command.
type StatusOptions struct {
	FailOnErrors bool
	FailedOnly   bool
}

// NewStatusCommand creates the status command.
func NewStatusCommand() *cobra.Command {
	opts := &StatusOptions{}
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the state of the local HIG mirror",
		Long: `Inspect the catalog from the most recent sync run.

Shows when the mirror was generated, how many pages downloaded, and
which pages failed. Use --fail-on-errors in CI to turn failed pages
into a nonzero exit code.`,
		Example: `  # Show mirror status
  skillkit status

  # Only list pages that failed
  skillkit status --failed

  # Exit nonzero when any page failed
  skillkit status --fail-on-errors`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.FailOnErrors, "fail-on-errors", false, "Exit nonzero when any page failed to download")
	cmd.Flags().BoolVar(&opts.FailedOnly, "failed", false, "Only show pages that failed to download")

	return cmd
}

func runStatus(cmd *cobra.Command, opts *StatusOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	catalog, err := hig.LoadCatalog(cfg.SkillDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("no catalog found in %s; run 'skillkit sync' first", cfg.SkillDir)
		}
		return err
	}

	failed := catalog.FailedRows()

	if r.IsJSON() {
		if err := r.JSON(catalog); err != nil {
			return err
		}
	} else {
		renderStatus(r, catalog, failed, opts)
	}

	if opts.FailOnErrors && len(failed) > 0 {
		return fmt.Errorf("%d pages failed to download", len(failed))
	}
	return nil
}

func renderStatus(r *output.Renderer, catalog *hig.Catalog, failed []hig.Page, opts *StatusOptions) {
	r.Header(2, "Mirror Status")
	r.Printf("Generated:  %s\n", catalog.GeneratedAt)
	r.Printf("Run:        %s\n", catalog.RunID)
	r.Printf("Pages:      %d total, %d ok, %d failed\n",
		catalog.TotalNodes, catalog.DownloadOK, catalog.DownloadError)

	curated := 0
	for _, row := range catalog.Rows {
		if hig.IsCuratedIOSRow(row) {
			curated++
		}
	}
	r.Printf("Curated:    %d iOS articles\n", curated)
	r.Println("")

	rows := catalog.Rows
	if opts.FailedOnly {
		rows = failed
	}
	if len(rows) == 0 {
		if opts.FailedOnly {
			r.Success("No failed pages")
		}
		return
	}

	if r.Mode() == output.ModeMarkdown {
		r.Println("| Path | Kind | Status |")
		r.Println("| --- | --- | --- |")
		for _, row := range rows {
			r.Printf("| %s | %s | %s |\n", row.Path, row.Kind, row.DownloadStatus)
		}
		r.Println("")
	} else {
		t := table.NewWriter()
		t.SetOutputMirror(r.Writer())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Path", "Kind", "Status", "Error"})
		for _, row := range rows {
			t.AppendRow(table.Row{row.Path, row.Kind, row.DownloadStatus, row.Error})
		}
		t.Render()
	}

	if len(failed) > 0 && !opts.FailedOnly {
		r.Warning(fmt.Sprintf("%d pages failed to download", len(failed)))
	}
}
