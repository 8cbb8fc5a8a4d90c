package hig

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ErrNotSkillDir is returned when the target directory has no SKILL.md.
var ErrNotSkillDir = errors.New("not a skill directory (missing SKILL.md)")

// Default sync tuning.
const (
	DefaultSleepMS     = 120
	DefaultConcurrency = 4
)

// Options configures a sync run.
type Options struct {
	SkillDir     string        // skill root; must contain SKILL.md
	SleepMS      int           // pacing between page requests; 0 disables pacing
	Concurrency  int           // max in-flight page requests
	Timeout      time.Duration // per-request timeout
	UserAgent    string
	HTMLFallback bool // fetch the human page when the data JSON fails

	// Endpoint overrides, used by tests. Empty values mean the Apple
	// endpoints.
	IndexURL   string
	DataBase   string
	SourceBase string
}

// Progress reports one completed page during a run.
type Progress struct {
	Done  int
	Total int
	Page  Page
}

// Syncer downloads the HIG corpus into a skill's references directory.
type Syncer struct {
	opts   Options
	client *Client
	logger *slog.Logger

	progressMu sync.Mutex
	onProgress func(Progress)
}

// NewSyncer creates a syncer. A zero Concurrency or Timeout falls back
// to the default; SleepMS is honored as given, with zero meaning no
// pacing at all.
func NewSyncer(opts Options, logger *slog.Logger) *Syncer {
	if opts.SleepMS < 0 {
		opts.SleepMS = 0
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.IndexURL == "" {
		opts.IndexURL = IndexURL
	}
	if opts.DataBase == "" {
		opts.DataBase = DataBase
	}
	if opts.SourceBase == "" {
		opts.SourceBase = SourceBase
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Syncer{
		opts:   opts,
		client: NewClient(opts.Timeout, opts.UserAgent),
		logger: logger,
	}
}

// OnProgress registers a callback invoked once per completed page. The
// callback is serialized; it may update a UI without its own locking.
func (s *Syncer) OnProgress(fn func(Progress)) {
	s.onProgress = fn
}

// Run performs a full sync: index fetch, page downloads, catalog write,
// and markdown builds. Individual page failures are recorded in the
// catalog and do not fail the run; only an unusable index or unwritable
// output does.
func (s *Syncer) Run(ctx context.Context) (*Catalog, error) {
	if _, err := os.Stat(filepath.Join(s.opts.SkillDir, "SKILL.md")); err != nil {
		return nil, fmt.Errorf("%s: %w", s.opts.SkillDir, ErrNotSkillDir)
	}

	layout := Layout{SkillDir: s.opts.SkillDir}
	generatedAt := time.Now().UTC().Format("2006-01-02T15:04:05Z")

	s.logger.Info("fetching HIG index", "url", s.opts.IndexURL)
	indexJSON, err := s.client.GetJSON(ctx, s.opts.IndexURL)
	if err != nil {
		return nil, fmt.Errorf("fetch index: %w", err)
	}
	if err := writeRawJSONFile(filepath.Join(layout.RawIndexDir(), IndexFileName), indexJSON); err != nil {
		return nil, err
	}

	nodes, err := CollectNodes(indexJSON)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("index %s contained no pages under %s", s.opts.IndexURL, PagePrefix)
	}
	s.logger.Info("collected index nodes", "count", len(nodes))

	rows := s.fetchPages(ctx, layout, nodes)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	okCount := 0
	for _, row := range rows {
		if row.DownloadStatus == StatusOK {
			okCount++
		}
	}

	catalog := &Catalog{
		RunID:         uuid.NewString(),
		GeneratedAt:   generatedAt,
		IndexURL:      s.opts.IndexURL,
		PageBase:      s.opts.DataBase,
		PagePrefix:    PagePrefix,
		TotalNodes:    len(nodes),
		DownloadOK:    okCount,
		DownloadError: len(nodes) - okCount,
		Rows:          rows,
	}

	if err := WriteJSONFile(layout.CatalogPath(), catalog); err != nil {
		return nil, err
	}

	refsDir := layout.ReferencesDir()
	if err := BuildRawMarkdown(layout.RawMarkdownPath(), catalog); err != nil {
		return nil, err
	}
	if err := BuildFullTextMarkdown(layout.FullTextMarkdownPath(), catalog, refsDir); err != nil {
		return nil, err
	}
	if err := BuildCuratedMarkdown(layout.CuratedMarkdownPath(), catalog, refsDir); err != nil {
		return nil, err
	}

	s.logger.Info("sync complete",
		"run_id", catalog.RunID,
		"total", catalog.TotalNodes,
		"ok", catalog.DownloadOK,
		"errors", catalog.DownloadError)

	return catalog, nil
}

// fetchPages downloads all pages with bounded concurrency and shared
// pacing. Row order matches node order; each worker owns its own slot.
func (s *Syncer) fetchPages(ctx context.Context, layout Layout, nodes []Node) []Page {
	rows := make([]Page, len(nodes))

	var pace <-chan time.Time
	if s.opts.SleepMS > 0 {
		ticker := time.NewTicker(time.Duration(s.opts.SleepMS) * time.Millisecond)
		defer ticker.Stop()
		pace = ticker.C
	}

	var doneCount int

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)

	for i, node := range nodes {
		g.Go(func() error {
			if pace != nil {
				select {
				case <-gctx.Done():
					return gctx.Err()
				case <-pace:
				}
			} else if gctx.Err() != nil {
				return gctx.Err()
			}

			rows[i] = s.fetchPage(gctx, layout, node)

			s.progressMu.Lock()
			doneCount++
			if s.onProgress != nil {
				s.onProgress(Progress{Done: doneCount, Total: len(nodes), Page: rows[i]})
			}
			s.progressMu.Unlock()
			return nil
		})
	}

	// Workers only return context errors; page failures land in rows.
	_ = g.Wait()

	return rows
}

// fetchPage downloads one page and writes its local mirror. A failed
// fetch never removes a mirror left by an earlier successful run.
func (s *Syncer) fetchPage(ctx context.Context, layout Layout, node Node) Page {
	localPath := layout.PageJSONPath(node.Path)
	localRel, err := filepath.Rel(layout.ReferencesDir(), localPath)
	if err != nil {
		localRel = localPath
	}

	row := Page{
		Path:           node.Path,
		Title:          node.Title,
		Kind:           node.Kind,
		ParentPath:     node.ParentPath,
		SourceURL:      s.opts.SourceBase + node.Path,
		DataURL:        s.opts.DataBase + node.Path + ".json",
		LocalJSON:      filepath.ToSlash(localRel),
		DownloadStatus: StatusPending,
	}

	pageJSON, fetchErr := s.client.GetJSON(ctx, row.DataURL)
	if fetchErr != nil && s.opts.HTMLFallback && ctx.Err() == nil {
		s.logger.Warn("data JSON failed, trying HTML fallback", "path", node.Path, "error", fetchErr)
		if fbJSON, fbErr := s.client.FetchHTMLFallback(ctx, row.SourceURL); fbErr == nil {
			pageJSON, fetchErr = fbJSON, nil
		}
	}

	if fetchErr != nil {
		row.DownloadStatus = StatusError
		row.Error = NormalizeSpace(fetchErr.Error())
		s.logger.Warn("page download failed", "path", node.Path, "error", row.Error)
		return row
	}

	if err := writeRawJSONFile(localPath, pageJSON); err != nil {
		row.DownloadStatus = StatusError
		row.Error = NormalizeSpace(err.Error())
		return row
	}

	row.Abstract = ExtractAbstract(pageJSON)
	row.DownloadStatus = StatusOK
	return row
}
