package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(mode Mode, isTTY bool) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return NewRendererWithTTY(out, errOut, isTTY, mode), out, errOut
}

func TestAutoModeSelection(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		isTTY bool
		want  Mode
	}{
		{name: "auto on terminal", mode: ModeAuto, isTTY: true, want: ModeText},
		{name: "auto piped", mode: ModeAuto, isTTY: false, want: ModeMarkdown},
		{name: "empty mode piped", mode: "", isTTY: false, want: ModeMarkdown},
		{name: "explicit json", mode: ModeJSON, isTTY: true, want: ModeJSON},
		{name: "explicit text piped", mode: ModeText, isTTY: false, want: ModeText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _ := newTestRenderer(tt.mode, tt.isTTY)
			assert.Equal(t, tt.want, r.Mode())
		})
	}
}

func TestHeaderMarkdown(t *testing.T) {
	r, out, _ := newTestRenderer(ModeMarkdown, false)
	r.Header(2, "Pages")
	assert.Equal(t, "## Pages\n", out.String())
}

func TestSuccessAndWarningRouting(t *testing.T) {
	r, out, errOut := newTestRenderer(ModeText, false)

	r.Success("synced")
	r.Warning("3 pages failed")

	assert.Contains(t, out.String(), "[ok] synced")
	assert.Contains(t, errOut.String(), "[warn] 3 pages failed")
}

func TestStatusLine(t *testing.T) {
	r, out, _ := newTestRenderer(ModeText, false)

	r.StatusLine("references/raw/catalog.json", "ok", "")
	r.StatusLine("buttons", "fail", "HTTP 503")

	text := out.String()
	assert.Contains(t, text, "references/raw/catalog.json")
	assert.Contains(t, text, "fail")
	assert.Contains(t, text, "HTTP 503")
}

func TestJSON(t *testing.T) {
	r, out, _ := newTestRenderer(ModeJSON, false)
	require.True(t, r.IsJSON())

	require.NoError(t, r.JSON(map[string]int{"total": 3}))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, 3, decoded["total"])
}
