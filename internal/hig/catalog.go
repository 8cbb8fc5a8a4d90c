package hig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Download status values recorded per page in the catalog.
const (
	StatusPending = "pending"
	StatusOK      = "ok"
	StatusError   = "error"
)

// Page is one catalog row: a single HIG page and the outcome of its
// most recent download.
type Page struct {
	Path           string `json:"path"`
	Title          string `json:"title"`
	Kind           string `json:"kind"`
	ParentPath     string `json:"parent_path,omitempty"`
	SourceURL      string `json:"source_url"`
	DataURL        string `json:"data_url"`
	LocalJSON      string `json:"local_json"`
	DownloadStatus string `json:"download_status"`
	Abstract       string `json:"abstract"`
	Error          string `json:"error"`
}

// Catalog records the outcome of a sync run.
type Catalog struct {
	RunID         string `json:"run_id"`
	GeneratedAt   string `json:"generated_at"`
	IndexURL      string `json:"index_url"`
	PageBase      string `json:"page_base"`
	PagePrefix    string `json:"page_prefix"`
	TotalNodes    int    `json:"total_nodes"`
	DownloadOK    int    `json:"download_ok"`
	DownloadError int    `json:"download_error"`
	Rows          []Page `json:"rows"`
}

// FailedRows returns the rows whose download did not succeed.
func (c *Catalog) FailedRows() []Page {
	var failed []Page
	for _, row := range c.Rows {
		if row.DownloadStatus != StatusOK {
			failed = append(failed, row)
		}
	}
	return failed
}

// Layout resolves the on-disk reference paths for a skill directory. The
// directory shape is part of the skill's contract: assistants read these
// files by the documented relative paths.
type Layout struct {
	SkillDir string
}

func (l Layout) ReferencesDir() string { return filepath.Join(l.SkillDir, "references") }
func (l Layout) RawDir() string        { return filepath.Join(l.ReferencesDir(), "raw") }
func (l Layout) RawIndexDir() string   { return filepath.Join(l.RawDir(), "index") }
func (l Layout) RawPagesDir() string   { return filepath.Join(l.RawDir(), "pages") }
func (l Layout) CatalogPath() string   { return filepath.Join(l.RawDir(), "catalog.json") }

func (l Layout) RawMarkdownPath() string {
	return filepath.Join(l.ReferencesDir(), "apple-hig-ios-raw.md")
}

func (l Layout) FullTextMarkdownPath() string {
	return filepath.Join(l.ReferencesDir(), "apple-hig-ios-fulltext.md")
}

func (l Layout) CuratedMarkdownPath() string {
	return filepath.Join(l.ReferencesDir(), "apple-hig-ios-curated.md")
}

// PageJSONPath maps a page path to its local mirror file, preserving the
// source site's URL structure under raw/pages.
func (l Layout) PageJSONPath(pagePath string) string {
	trimmed := strings.TrimPrefix(pagePath, "/")
	return filepath.Join(l.RawPagesDir(), filepath.FromSlash(trimmed)+".json")
}

// LoadCatalog reads catalog.json from a skill's references directory.
func LoadCatalog(skillDir string) (*Catalog, error) {
	layout := Layout{SkillDir: skillDir}
	data, err := os.ReadFile(layout.CatalogPath())
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", layout.CatalogPath(), err)
	}
	return &catalog, nil
}

// WriteJSONFile writes payload as indented JSON, creating parent
// directories as needed.
func WriteJSONFile(path string, payload any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// writeRawJSONFile mirrors raw fetched bytes to disk unmodified.
func writeRawJSONFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
