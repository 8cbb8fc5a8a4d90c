package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oil-oil/agent-skills/internal/hig"
)

// pageMsg carries one completed page into the progress UI.
type pageMsg hig.Progress

// syncDoneMsg signals the end of the sync run.
type syncDoneMsg struct {
	catalog *hig.Catalog
	err     error
}

// syncProgressModel renders a progress bar while pages download.
type syncProgressModel struct {
	bar      progress.Model
	done     int
	total    int
	lastPath string
	failed   int

	catalog *hig.Catalog
	err     error
}

func newSyncProgressModel() syncProgressModel {
	return syncProgressModel{
		bar: progress.New(progress.WithDefaultGradient()),
	}
}

func (m syncProgressModel) Init() tea.Cmd {
	return nil
}

func (m syncProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - 4
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = fmt.Errorf("interrupted")
			return m, tea.Quit
		}
		return m, nil
	case pageMsg:
		m.done = msg.Done
		m.total = msg.Total
		m.lastPath = msg.Page.Path
		if msg.Page.DownloadStatus == hig.StatusError {
			m.failed++
		}
		return m, nil
	case syncDoneMsg:
		m.catalog = msg.catalog
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m syncProgressModel) View() string {
	if m.total == 0 {
		return "Fetching index...\n"
	}

	var sb strings.Builder
	pct := float64(m.done) / float64(m.total)
	sb.WriteString(m.bar.ViewAs(pct))
	sb.WriteString(fmt.Sprintf("\n%d/%d pages", m.done, m.total))
	if m.failed > 0 {
		sb.WriteString(fmt.Sprintf(" (%d failed)", m.failed))
	}
	if m.lastPath != "" {
		sb.WriteString("  " + m.lastPath)
	}
	sb.WriteString("\n")
	return sb.String()
}
