package commands

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/oil-oil/agent-skills/internal/cli/output"
	"github.com/oil-oil/agent-skills/pkg/speclint"
	_ "github.com/oil-oil/agent-skills/pkg/speclint/rules/qagate"   // register QA gate rules
	_ "github.com/oil-oil/agent-skills/pkg/speclint/rules/sections" // register section rules
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Format  string   // Output format: text, json, markdown
	Disable []string // Rule IDs to disable
	Rules   []string // Run only specific rules
	Watch   bool     // Re-run on file changes
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check <spec.md> [spec.md...]",
		Short: "Validate design specs against the QA checklist",
		Long: `Analyze design spec documents for missing sections and unaddressed
QA checklist items.

Section rules require the structural parts of a spec (user goal,
screen map, interaction states, component rules, accessibility,
telemetry). QA gate rules require the checklist topics to be
addressed: touch targets, Dynamic Type, destructive confirmations,
empty/error/retry states, VoiceOver labels, and privacy disclosure.
Rules can be configured under the check key in skillkit.yaml.`,
		Example: `  # Check a spec
  skillkit check specs/checkout.md

  # Re-run on every save
  skillkit check specs/checkout.md --watch

  # Disable specific rules
  skillkit check specs/checkout.md --disable SEC06,QA06

  # Output as JSON
  skillkit check specs/checkout.md --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-run checks when the files change")

	return cmd
}

func runCheck(cmd *cobra.Command, paths []string, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	analyzer := speclint.NewAnalyzer(buildCheckConfig(cmdCtx, opts))

	if opts.Watch {
		return watchAndCheck(cmd, r, analyzer, paths)
	}

	results, err := checkFiles(analyzer, paths)
	if err != nil {
		return err
	}
	if hasIssues := renderCheckResults(r, results, len(paths)); hasIssues {
		return fmt.Errorf("spec check failed")
	}
	return nil
}

// buildCheckConfig layers CLI flags over the project's check config.
func buildCheckConfig(cmdCtx *CommandContext, opts *CheckOptions) *speclint.Config {
	cfg := cmdCtx.Cfg.Check.ToLintConfig()

	for _, id := range opts.Disable {
		cfg.Disable(strings.TrimSpace(id))
	}

	// If --rule specified, disable all others
	if len(opts.Rules) > 0 {
		enabled := make(map[string]bool)
		for _, id := range opts.Rules {
			enabled[strings.TrimSpace(id)] = true
		}
		for _, rule := range speclint.All() {
			if !enabled[rule.ID] {
				cfg.Disable(rule.ID)
			}
		}
	}

	return cfg
}

// checkFileResult holds check results for a single document.
type checkFileResult struct {
	Path        string                `json:"path"`
	Diagnostics []speclint.Diagnostic `json:"diagnostics"`
}

// checkOutput is the JSON payload for check results.
type checkOutput struct {
	Files   []checkFileResult `json:"files"`
	Summary struct {
		FilesChecked int `json:"files_checked"`
		TotalIssues  int `json:"total_issues"`
		Errors       int `json:"errors"`
		Warnings     int `json:"warnings"`
	} `json:"summary"`
}

func checkFiles(analyzer *speclint.Analyzer, paths []string) ([]checkFileResult, error) {
	var results []checkFileResult
	for _, path := range paths {
		doc, err := speclint.LoadDocument(path)
		if err != nil {
			return nil, err
		}
		diags := analyzer.Analyze(doc)
		if len(diags) > 0 {
			results = append(results, checkFileResult{Path: path, Diagnostics: diags})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})
	return results, nil
}

// renderCheckResults reports diagnostics for the checked files.
// filesChecked counts every input document, including clean ones.
func renderCheckResults(r *output.Renderer, results []checkFileResult, filesChecked int) bool {
	if len(results) == 0 {
		if !r.IsJSON() {
			r.Success("All specs pass the QA gate")
			return false
		}
	}

	var out checkOutput
	out.Files = results
	out.Summary.FilesChecked = filesChecked
	for _, res := range results {
		out.Summary.TotalIssues += len(res.Diagnostics)
		for _, d := range res.Diagnostics {
			switch d.Severity {
			case speclint.SeverityError:
				out.Summary.Errors++
			case speclint.SeverityWarning:
				out.Summary.Warnings++
			}
		}
	}

	if r.IsJSON() {
		_ = r.JSON(out)
		return out.Summary.TotalIssues > 0
	}

	styles := r.Styles()
	for _, res := range results {
		r.Println(styles.Bold.Render(res.Path))
		for _, d := range res.Diagnostics {
			loc := fmt.Sprintf("%d", d.Line)
			if d.Line == 0 {
				loc = "-"
			}
			r.Printf("  %s  %s  %s  %s\n",
				styles.Muted.Render(fmt.Sprintf("%-4s", loc)),
				checkSeverityLabel(r, d.Severity),
				styles.Bold.Render(d.RuleID),
				d.Message,
			)
		}
		r.Println("")
	}

	parts := []string{fmt.Sprintf("%d issues", out.Summary.TotalIssues)}
	if out.Summary.Errors > 0 {
		parts = append(parts, fmt.Sprintf("%d errors", out.Summary.Errors))
	}
	if out.Summary.Warnings > 0 {
		parts = append(parts, fmt.Sprintf("%d warnings", out.Summary.Warnings))
	}
	r.Printf("Summary: %s in %d files\n", strings.Join(parts, ", "), out.Summary.FilesChecked)

	return out.Summary.TotalIssues > 0
}

func checkSeverityLabel(r *output.Renderer, sev speclint.Severity) string {
	switch sev {
	case speclint.SeverityError:
		return r.Styles().Error.Render("error  ")
	case speclint.SeverityWarning:
		return r.Styles().Warning.Render("warning")
	case speclint.SeverityInfo:
		return r.Styles().Info.Render("info   ")
	default:
		return r.Styles().Muted.Render("unknown")
	}
}

// watchAndCheck re-runs the checks whenever a watched file changes.
func watchAndCheck(cmd *cobra.Command, r *output.Renderer, analyzer *speclint.Analyzer, paths []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch parent directories; editors often replace files on save,
	// which drops file-level watches.
	watched := make(map[string]bool)
	for _, p := range paths {
		dir := filepath.Dir(p)
		if !watched[dir] {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			watched[dir] = true
		}
	}

	targets := make(map[string]bool)
	for _, p := range paths {
		targets[filepath.Clean(p)] = true
	}

	run := func() {
		results, err := checkFiles(analyzer, paths)
		if err != nil {
			r.Error(err.Error())
			return
		}
		renderCheckResults(r, results, len(paths))
	}

	run()
	r.Println("Watching for changes (ctrl-c to stop)...")

	// Debounce bursts of events from a single save.
	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case <-pending:
			run()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !targets[filepath.Clean(event.Name)] {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(100*time.Millisecond, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.Error(err.Error())
		}
	}
}
