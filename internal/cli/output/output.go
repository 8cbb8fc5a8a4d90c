// Package output provides the CLI's rendering layer. A Renderer adapts
// to its environment: styled text on a terminal, plain markdown when
// piped, and machine-readable JSON on request.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Mode selects the output format.
type Mode string

const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	isTTY  bool
	styles *Styles
}

// NewRenderer creates a renderer, detecting TTY state from out when mode
// is auto. An empty mode means auto.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	isTTY := false
	if f, ok := out.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}
	return NewRendererWithTTY(out, errOut, isTTY, mode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state, used
// by tests.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode Mode) *Renderer {
	switch mode {
	case ModeText, ModeMarkdown, ModeJSON:
	default:
		// Auto: styled text on a terminal, markdown when piped.
		if isTTY {
			mode = ModeText
		} else {
			mode = ModeMarkdown
		}
	}

	styled := mode == ModeText && isTTY && termenv.EnvColorProfile() != termenv.Ascii
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  isTTY,
		styles: newStyles(styled),
	}
}

// Mode returns the effective output mode.
func (r *Renderer) Mode() Mode { return r.mode }

// IsJSON reports whether the renderer is in JSON mode; commands with a
// structured payload should emit it via JSON and skip prose output.
func (r *Renderer) IsJSON() bool { return r.mode == ModeJSON }

// Styles exposes the renderer's style set for callers that compose their
// own fragments.
func (r *Renderer) Styles() *Styles { return r.styles }

// Writer exposes the underlying output writer for callers that render
// directly, such as table writers.
func (r *Renderer) Writer() io.Writer { return r.out }

// Println writes a plain line.
func (r *Renderer) Println(s string) {
	fmt.Fprintln(r.out, s)
}

// Printf writes formatted output.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// Header writes a section heading at the given level.
func (r *Renderer) Header(level int, text string) {
	if r.mode == ModeMarkdown {
		fmt.Fprintf(r.out, "%s %s\n", strings.Repeat("#", level), text)
		return
	}
	fmt.Fprintln(r.out, r.styles.Header.Render(text))
}

// Success writes a success line.
func (r *Renderer) Success(s string) {
	fmt.Fprintln(r.out, r.styles.Success.Render(r.prefix("✓ ", "[ok] ")+s))
}

// Warning writes a warning line to errOut.
func (r *Renderer) Warning(s string) {
	fmt.Fprintln(r.errOut, r.styles.Warning.Render(r.prefix("! ", "[warn] ")+s))
}

// Error writes an error line to errOut.
func (r *Renderer) Error(s string) {
	fmt.Fprintln(r.errOut, r.styles.Error.Render(r.prefix("✗ ", "[error] ")+s))
}

// StatusLine writes a name with a status marker and optional detail.
func (r *Renderer) StatusLine(name, status, detail string) {
	marker := "-"
	style := r.styles.Muted
	switch status {
	case "success", "ok", "pass":
		marker, style = r.prefix("✓", "ok"), r.styles.Success
	case "warn", "warning":
		marker, style = r.prefix("!", "warn"), r.styles.Warning
	case "error", "fail":
		marker, style = r.prefix("✗", "fail"), r.styles.Error
	}

	line := fmt.Sprintf("  %s %s", style.Render(marker), name)
	if detail != "" {
		line += " " + r.styles.Muted.Render(detail)
	}
	fmt.Fprintln(r.out, line)
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// prefix picks a glyph on terminals and an ASCII marker elsewhere, so
// piped output stays grep-friendly.
func (r *Renderer) prefix(tty, plain string) string {
	if r.isTTY {
		return tty
	}
	return plain
}
