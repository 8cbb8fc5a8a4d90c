package output

import "github.com/charmbracelet/lipgloss"

// Styles is the CLI's lipgloss style set. When styling is off every
// style is a no-op, so callers can render unconditionally.
type Styles struct {
	Header  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Info    lipgloss.Style
	Bold    lipgloss.Style
}

func newStyles(styled bool) *Styles {
	if !styled {
		plain := lipgloss.NewStyle()
		return &Styles{
			Header:  plain,
			Success: plain,
			Warning: plain,
			Error:   plain,
			Muted:   plain,
			Accent:  plain,
			Info:    plain,
			Bold:    plain,
		}
	}

	return &Styles{
		Header:  lipgloss.NewStyle().Bold(true).Underline(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		Bold:    lipgloss.NewStyle().Bold(true),
	}
}
