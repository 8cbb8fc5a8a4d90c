package hig

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutPaths(t *testing.T) {
	l := Layout{SkillDir: filepath.Join("skills", "ios-hig-design-guide")}

	assert.Equal(t,
		filepath.Join("skills", "ios-hig-design-guide", "references", "raw", "catalog.json"),
		l.CatalogPath())

	// Page paths mirror the source site's URL structure.
	assert.Equal(t,
		filepath.Join(l.RawPagesDir(), "design", "human-interface-guidelines", "buttons.json"),
		l.PageJSONPath("/design/human-interface-guidelines/buttons"))
}

func TestCatalogRoundTrip(t *testing.T) {
	skillDir := t.TempDir()
	layout := Layout{SkillDir: skillDir}

	catalog := &Catalog{
		RunID:         "run-1",
		GeneratedAt:   "2026-01-02T03:04:05Z",
		IndexURL:      IndexURL,
		PageBase:      DataBase,
		PagePrefix:    PagePrefix,
		TotalNodes:    2,
		DownloadOK:    1,
		DownloadError: 1,
		Rows: []Page{
			{Path: "/design/human-interface-guidelines/a", DownloadStatus: StatusOK},
			{Path: "/design/human-interface-guidelines/b", DownloadStatus: StatusError, Error: "HTTP 404"},
		},
	}

	require.NoError(t, WriteJSONFile(layout.CatalogPath(), catalog))

	loaded, err := LoadCatalog(skillDir)
	require.NoError(t, err)
	assert.Equal(t, catalog, loaded)
}

func TestLoadCatalogMissing(t *testing.T) {
	_, err := LoadCatalog(t.TempDir())
	assert.Error(t, err)
}

func TestFailedRows(t *testing.T) {
	catalog := &Catalog{
		Rows: []Page{
			{Path: "/a", DownloadStatus: StatusOK},
			{Path: "/b", DownloadStatus: StatusError},
			{Path: "/c", DownloadStatus: StatusPending},
		},
	}

	failed := catalog.FailedRows()
	require.Len(t, failed, 2)
	assert.Equal(t, "/b", failed[0].Path)
	assert.Equal(t, "/c", failed[1].Path)
}
