package hig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Slugs for platform overview pages that a curated iOS build excludes.
var nonIOSSlugs = map[string]bool{
	"designing-for-ipados":   true,
	"designing-for-macos":    true,
	"designing-for-tvos":     true,
	"designing-for-visionos": true,
	"designing-for-watchos":  true,
	"designing-for-games":    true,
}

// IsCuratedIOSRow reports whether a row belongs in the curated iOS build:
// successfully downloaded article pages excluding non-iOS platform
// overviews. Index, module, and symbol nodes carry no prose worth keeping.
func IsCuratedIOSRow(row Page) bool {
	if row.DownloadStatus != StatusOK {
		return false
	}
	if row.Kind != "article" {
		return false
	}
	slug := row.Path[strings.LastIndex(row.Path, "/")+1:]
	return !nonIOSSlugs[slug]
}

// BuildRawMarkdown writes the raw index: one entry per catalog row with
// its paths, URLs, abstract, and download status.
func BuildRawMarkdown(path string, catalog *Catalog) error {
	var b strings.Builder
	b.WriteString("# Apple HIG Raw Index (iOS-focused usage)\n\n")
	b.WriteString("This file is auto-generated from Apple source endpoints.\n")
	fmt.Fprintf(&b, "Generated at: %s\n\n", catalog.GeneratedAt)
	b.WriteString("## Source endpoints\n\n")
	fmt.Fprintf(&b, "- Index JSON: `%s`\n", catalog.IndexURL)
	fmt.Fprintf(&b, "- Page JSON pattern: `%s{path}.json`\n\n", catalog.PageBase)
	b.WriteString("## Pages\n\n")

	for _, row := range catalog.Rows {
		fmt.Fprintf(&b, "### %s\n\n", row.Title)
		fmt.Fprintf(&b, "- Path: `%s`\n", row.Path)
		fmt.Fprintf(&b, "- Kind: `%s`\n", row.Kind)
		if row.ParentPath != "" {
			fmt.Fprintf(&b, "- Parent: `%s`\n", row.ParentPath)
		}
		fmt.Fprintf(&b, "- Source URL: %s\n", row.SourceURL)
		fmt.Fprintf(&b, "- Data URL: %s\n", row.DataURL)
		fmt.Fprintf(&b, "- Local JSON: `%s`\n", row.LocalJSON)
		if row.Abstract != "" {
			fmt.Fprintf(&b, "- Abstract: %s\n", row.Abstract)
		} else {
			b.WriteString("- Abstract: (empty)\n")
		}
		fmt.Fprintf(&b, "- Download: `%s`\n\n", row.DownloadStatus)
	}

	return writeMarkdownFile(path, b.String())
}

// BuildFullTextMarkdown writes the full-text dump: extracted text for
// every successfully downloaded page.
func BuildFullTextMarkdown(path string, catalog *Catalog, referencesDir string) error {
	var b strings.Builder
	b.WriteString("# Apple HIG Full Text Dump (iOS-focused usage)\n\n")
	b.WriteString("This file is auto-generated from Apple source endpoints.\n")
	b.WriteString("The content below is extracted from all `text` fields in each page JSON.\n")
	fmt.Fprintf(&b, "Generated at: %s\n\n", catalog.GeneratedAt)

	for _, row := range catalog.Rows {
		if row.DownloadStatus != StatusOK {
			continue
		}
		fullText, ok := readPageText(referencesDir, row)
		if !ok {
			continue
		}

		fmt.Fprintf(&b, "## %s\n\n", row.Title)
		fmt.Fprintf(&b, "- Path: `%s`\n", row.Path)
		fmt.Fprintf(&b, "- Source URL: %s\n", row.SourceURL)
		fmt.Fprintf(&b, "- Data URL: %s\n\n", row.DataURL)
		if fullText != "" {
			b.WriteString(fullText)
		} else {
			b.WriteString("(no extracted text)")
		}
		b.WriteString("\n\n")
	}

	return writeMarkdownFile(path, b.String())
}

// BuildCuratedMarkdown writes the curated iOS subset used for practical
// design-spec writing.
func BuildCuratedMarkdown(path string, catalog *Catalog, referencesDir string) error {
	var curated []Page
	for _, row := range catalog.Rows {
		if IsCuratedIOSRow(row) {
			curated = append(curated, row)
		}
	}

	var b strings.Builder
	b.WriteString("# Apple HIG iOS Curated Text\n\n")
	b.WriteString("This file is auto-generated for practical iOS design-spec writing.\n")
	b.WriteString("It excludes index/module/symbol nodes and non-iOS platform overview pages.\n")
	fmt.Fprintf(&b, "Generated at: %s\n", catalog.GeneratedAt)
	fmt.Fprintf(&b, "Included pages: %d\n\n", len(curated))

	for _, row := range curated {
		fullText, ok := readPageText(referencesDir, row)
		if !ok {
			continue
		}

		fmt.Fprintf(&b, "## %s\n\n", row.Title)
		fmt.Fprintf(&b, "- Path: `%s`\n", row.Path)
		fmt.Fprintf(&b, "- Source URL: %s\n\n", row.SourceURL)
		if fullText != "" {
			b.WriteString(fullText)
		} else {
			b.WriteString("(no extracted text)")
		}
		b.WriteString("\n\n")
	}

	return writeMarkdownFile(path, b.String())
}

// readPageText loads a row's local JSON mirror and extracts its full text.
// A missing or corrupt mirror skips the row rather than failing the build.
func readPageText(referencesDir string, row Page) (string, bool) {
	if row.LocalJSON == "" {
		return "", false
	}
	localPath := filepath.Join(referencesDir, filepath.FromSlash(row.LocalJSON))
	data, err := os.ReadFile(localPath)
	if err != nil {
		return "", false
	}
	if !json.Valid(data) {
		return "", false
	}
	return ExtractFullText(data), true
}

func writeMarkdownFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	content = strings.TrimRight(content, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
