package hig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCuratedIOSRow(t *testing.T) {
	tests := []struct {
		name string
		row  Page
		want bool
	}{
		{
			name: "article included",
			row:  Page{Path: PagePrefix + "/buttons", Kind: "article", DownloadStatus: StatusOK},
			want: true,
		},
		{
			name: "failed download excluded",
			row:  Page{Path: PagePrefix + "/buttons", Kind: "article", DownloadStatus: StatusError},
			want: false,
		},
		{
			name: "module node excluded",
			row:  Page{Path: PagePrefix, Kind: "module", DownloadStatus: StatusOK},
			want: false,
		},
		{
			name: "non-iOS platform overview excluded",
			row:  Page{Path: PagePrefix + "/designing-for-watchos", Kind: "article", DownloadStatus: StatusOK},
			want: false,
		},
		{
			name: "iOS platform overview included",
			row:  Page{Path: PagePrefix + "/designing-for-ios", Kind: "article", DownloadStatus: StatusOK},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCuratedIOSRow(tt.row))
		})
	}
}

// writeTestMirror places a page JSON mirror where a row's LocalJSON points.
func writeTestMirror(t *testing.T, refsDir, localJSON, content string) {
	t.Helper()
	path := filepath.Join(refsDir, filepath.FromSlash(localJSON))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestMarkdownBuilds(t *testing.T) {
	refsDir := t.TempDir()

	catalog := &Catalog{
		GeneratedAt: "2026-01-02T03:04:05Z",
		IndexURL:    IndexURL,
		PageBase:    DataBase,
		Rows: []Page{
			{
				Path:           PagePrefix + "/buttons",
				Title:          "Buttons",
				Kind:           "article",
				ParentPath:     PagePrefix,
				SourceURL:      SourceBase + PagePrefix + "/buttons",
				DataURL:        DataBase + PagePrefix + "/buttons.json",
				LocalJSON:      "raw/pages/buttons.json",
				DownloadStatus: StatusOK,
				Abstract:       "Buttons initiate actions.",
			},
			{
				Path:           PagePrefix + "/designing-for-watchos",
				Title:          "Designing for watchOS",
				Kind:           "article",
				LocalJSON:      "raw/pages/watchos.json",
				DownloadStatus: StatusOK,
			},
			{
				Path:           PagePrefix + "/broken",
				Title:          "Broken",
				Kind:           "article",
				LocalJSON:      "raw/pages/broken.json",
				DownloadStatus: StatusError,
				Error:          "HTTP 503",
			},
			{
				Path:           PagePrefix + "/corrupt",
				Title:          "Corrupt",
				Kind:           "article",
				LocalJSON:      "raw/pages/corrupt.json",
				DownloadStatus: StatusOK,
			},
		},
	}

	writeTestMirror(t, refsDir, "raw/pages/buttons.json", `{"body": {"text": "Use buttons sparingly."}}`)
	writeTestMirror(t, refsDir, "raw/pages/watchos.json", `{"body": {"text": "Watch content."}}`)
	writeTestMirror(t, refsDir, "raw/pages/corrupt.json", `{"body": truncated`)

	t.Run("raw index lists every row with status", func(t *testing.T) {
		out := filepath.Join(refsDir, "raw.md")
		require.NoError(t, BuildRawMarkdown(out, catalog))

		content, err := os.ReadFile(out)
		require.NoError(t, err)
		text := string(content)

		assert.Contains(t, text, "# Apple HIG Raw Index")
		assert.Contains(t, text, "### Buttons")
		assert.Contains(t, text, "- Abstract: Buttons initiate actions.")
		assert.Contains(t, text, "### Broken")
		assert.Contains(t, text, "- Download: `error`")
	})

	t.Run("fulltext skips failed rows", func(t *testing.T) {
		out := filepath.Join(refsDir, "fulltext.md")
		require.NoError(t, BuildFullTextMarkdown(out, catalog, refsDir))

		content, err := os.ReadFile(out)
		require.NoError(t, err)
		text := string(content)

		assert.Contains(t, text, "## Buttons")
		assert.Contains(t, text, "Use buttons sparingly.")
		assert.Contains(t, text, "## Designing for watchOS")
		assert.NotContains(t, text, "## Broken")
		assert.NotContains(t, text, "## Corrupt")
	})

	t.Run("curated excludes non-iOS overview pages", func(t *testing.T) {
		out := filepath.Join(refsDir, "curated.md")
		require.NoError(t, BuildCuratedMarkdown(out, catalog, refsDir))

		content, err := os.ReadFile(out)
		require.NoError(t, err)
		text := string(content)

		assert.Contains(t, text, "# Apple HIG iOS Curated Text")
		assert.Contains(t, text, "Included pages: 2")
		assert.Contains(t, text, "## Buttons")
		assert.NotContains(t, text, "watchOS")
		assert.NotContains(t, text, "## Corrupt")
	})
}
