package commands

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oil-oil/agent-skills/internal/cli/output"
	"github.com/oil-oil/agent-skills/internal/hig"
)

// SyncOptions holds options for the sync command.
type SyncOptions struct {
	SleepMS     int
	Concurrency int
	Timeout     int
	UserAgent   string
	NoFallback  bool
	NoProgress  bool
}

// syncSummary is the JSON payload for sync results.
type syncSummary struct {
	RunID      string `json:"run_id"`
	TotalNodes int    `json:"total_nodes"`
	Downloaded int    `json:"download_ok"`
	Failed     int    `json:"download_error"`
	Catalog    string `json:"catalog"`
}

// NewSyncCommand creates the sync command.
func NewSyncCommand() *cobra.Command {
	opts := &SyncOptions{}
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Mirror the Apple HIG into the skill's references directory",
		Long: `Download the Apple Human Interface Guidelines into the skill's local
reference tree.

The sync walks the published HIG index, downloads every page's data
JSON, and rebuilds the reference markdown files (raw index, full text,
and the curated iOS digest) plus a catalog.json manifest. Page
failures are recorded in the catalog and reported as a warning; only
an unreachable index or an unwritable output tree fails the run.

Requests are paced to stay polite to the endpoint. When a page's data
JSON cannot be fetched, the human-readable page is downloaded and
converted to markdown instead (disable with --no-fallback).`,
		Example: `  # Sync the default skill
  skillkit sync

  # Slower pacing, fewer parallel requests
  skillkit sync --sleep-ms 500 --concurrency 1

  # Machine-readable summary
  skillkit sync -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSync(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.SleepMS, "sleep-ms", 0, "Pause between page downloads in milliseconds")
	cmd.Flags().IntVar(&opts.Concurrency, "concurrency", 0, "Max parallel page downloads")
	cmd.Flags().IntVar(&opts.Timeout, "timeout", 0, "Per-request timeout in seconds")
	cmd.Flags().StringVar(&opts.UserAgent, "user-agent", "", "HTTP User-Agent header")
	cmd.Flags().BoolVar(&opts.NoFallback, "no-fallback", false, "Skip the HTML fallback for failed pages")
	cmd.Flags().BoolVar(&opts.NoProgress, "no-progress", false, "Disable the progress bar")

	return cmd
}

func runSync(cmd *cobra.Command, opts *SyncOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	higOpts := hig.Options{
		SkillDir:     cfg.SkillDir,
		SleepMS:      cfg.SleepMS,
		Concurrency:  cfg.Concurrency,
		Timeout:      time.Duration(cfg.TimeoutSeconds) * time.Second,
		UserAgent:    cfg.UserAgent,
		HTMLFallback: cfg.HTMLFallback && !opts.NoFallback,
	}
	if cmd.Flags().Changed("sleep-ms") {
		higOpts.SleepMS = opts.SleepMS
	}
	if cmd.Flags().Changed("concurrency") {
		higOpts.Concurrency = opts.Concurrency
	}
	if cmd.Flags().Changed("timeout") {
		higOpts.Timeout = time.Duration(opts.Timeout) * time.Second
	}
	if cmd.Flags().Changed("user-agent") {
		higOpts.UserAgent = opts.UserAgent
	}

	syncer := hig.NewSyncer(higOpts, cmdCtx.Logger)

	var catalog *hig.Catalog
	var err error
	if useProgressUI(r, opts) {
		catalog, err = runSyncWithProgress(cmd, syncer)
	} else {
		syncer.OnProgress(func(p hig.Progress) {
			cmdCtx.Logger.Debug("page synced",
				"path", p.Page.Path,
				"status", p.Page.DownloadStatus,
				"done", p.Done,
				"total", p.Total)
		})
		catalog, err = syncer.Run(cmd.Context())
	}
	if err != nil {
		return err
	}

	return renderSyncResult(r, cfg.SkillDir, catalog)
}

// useProgressUI reports whether the interactive progress bar should run.
func useProgressUI(r *output.Renderer, opts *SyncOptions) bool {
	if opts.NoProgress || r.Mode() != output.ModeText {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// runSyncWithProgress drives the sync behind a bubbletea progress bar.
func runSyncWithProgress(cmd *cobra.Command, syncer *hig.Syncer) (*hig.Catalog, error) {
	p := tea.NewProgram(newSyncProgressModel(), tea.WithOutput(cmd.OutOrStdout()))

	syncer.OnProgress(func(prog hig.Progress) {
		p.Send(pageMsg(prog))
	})

	go func() {
		catalog, err := syncer.Run(cmd.Context())
		p.Send(syncDoneMsg{catalog: catalog, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(syncProgressModel)
	if !ok {
		return nil, fmt.Errorf("unexpected progress model type")
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.catalog, nil
}

func renderSyncResult(r *output.Renderer, skillDir string, catalog *hig.Catalog) error {
	layout := hig.Layout{SkillDir: skillDir}

	if r.IsJSON() {
		return r.JSON(syncSummary{
			RunID:      catalog.RunID,
			TotalNodes: catalog.TotalNodes,
			Downloaded: catalog.DownloadOK,
			Failed:     catalog.DownloadError,
			Catalog:    layout.CatalogPath(),
		})
	}

	r.Success(fmt.Sprintf("Synced %d of %d pages", catalog.DownloadOK, catalog.TotalNodes))
	r.StatusLine(layout.CatalogPath(), "ok", "")
	r.StatusLine(layout.RawMarkdownPath(), "ok", "")
	r.StatusLine(layout.FullTextMarkdownPath(), "ok", "")
	r.StatusLine(layout.CuratedMarkdownPath(), "ok", "")

	if failed := catalog.FailedRows(); len(failed) > 0 {
		r.Warning(fmt.Sprintf("%d pages failed to download; see %s", len(failed), layout.CatalogPath()))
		for _, row := range failed {
			r.StatusLine(row.Path, "fail", row.Error)
		}
	}

	return nil
}
