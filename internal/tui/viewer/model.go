// File: model.go
// Title: Program Viewer Model
// Description: Bubbletea model for browsing a built ladder program:
//              network-by-network ladder display with the validation
//              report alongside. The viewer is read-only; it never
//              mutates the program it displays.
// Author: WKDev
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial viewer model

package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	moprogram "github.com/WKDev/ModOne-sub002/internal/ladder/program"
	morender "github.com/WKDev/ModOne-sub002/internal/ladder/render"
	movalidate "github.com/WKDev/ModOne-sub002/internal/ladder/validate"
)

// Version is set during build
var Version = "0.1.0"

// Model is the Bubbletea model for the program viewer
type Model struct {
	// State
	width      int
	height     int
	ready      bool
	current    int
	allRungs   bool
	showReport bool

	// Components
	viewport viewport.Model

	// Data
	program *moprogram.Program
	report  *movalidate.Report
}

// New creates a viewer over a built program and its validation report
func New(prog *moprogram.Program, report *movalidate.Report) Model {
	return Model{
		program:    prog,
		report:     report,
		showReport: true,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3
		footerHeight := 4
		viewportHeight := msg.Height - headerHeight - footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit

		// Next network
		case "n", "l":
			if !m.allRungs && m.current < len(m.program.Networks)-1 {
				m.current++
				m.updateViewportContent()
			}
			return m, nil

		// Previous network
		case "p", "h":
			if !m.allRungs && m.current > 0 {
				m.current--
				m.updateViewportContent()
			}
			return m, nil

		// Toggle single-network / whole-program display
		case "a":
			m.allRungs = !m.allRungs
			m.updateViewportContent()
			return m, nil

		// Toggle validation report
		case "e":
			m.showReport = !m.showReport
			m.updateViewportContent()
			return m, nil

		case "g":
			m.viewport.GotoTop()
			return m, nil

		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.KeyRight:
		if !m.allRungs && m.current < len(m.program.Networks)-1 {
			m.current++
			m.updateViewportContent()
		}
		return m, nil

	case tea.KeyLeft:
		if !m.allRungs && m.current > 0 {
			m.current--
			m.updateViewportContent()
		}
		return m, nil

	case tea.KeyUp:
		m.viewport.LineUp(1)
		return m, nil

	case tea.KeyDown:
		m.viewport.LineDown(1)
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading viewer..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(LadderPanelStyle.Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())
	return b.String()
}

// renderHeader renders the logo line with the program name
func (m Model) renderHeader() string {
	logo := LogoStyle.Render(Logo)
	name := HeaderStyle.Render(m.program.Name)
	return lipgloss.JoinHorizontal(lipgloss.Center, logo, "  ", name)
}

// updateViewportContent rebuilds the viewport from the current selection
func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}

	var b strings.Builder
	if m.allRungs || len(m.program.Networks) == 0 {
		b.WriteString(LadderStyle.Render(morender.Program(m.program)))
	} else {
		net := m.program.Networks[m.current]
		heading := HeaderStyle.Render(fmt.Sprintf("Network %d", net.Step))
		if net.Comment != "" {
			heading += "  " + NetworkCommentStyle.Render(net.Comment)
		}
		b.WriteString(heading)
		b.WriteString("\n\n")
		for _, line := range morender.Network(net) {
			b.WriteString(LadderStyle.Render(line))
			b.WriteString("\n")
		}
	}

	if m.showReport {
		b.WriteString("\n")
		b.WriteString(m.renderReport())
	}

	m.viewport.SetContent(b.String())
}

// renderReport renders the validation issues, scoped to the displayed
// network unless the whole program is shown
func (m Model) renderReport() string {
	if m.report == nil {
		return ""
	}

	step := -1
	if !m.allRungs && len(m.program.Networks) > 0 {
		step = m.program.Networks[m.current].Step
	}

	var lines []string
	for _, issue := range m.report.Errors {
		if step < 0 || issue.Step == step || issue.Step == 0 {
			lines = append(lines, ReportErrorStyle.Render("error   ")+issue.String())
		}
	}
	for _, issue := range m.report.Warnings {
		if step < 0 || issue.Step == step || issue.Step == 0 {
			lines = append(lines, ReportWarningStyle.Render("warning ")+issue.String())
		}
	}

	if len(lines) == 0 {
		return ReportCleanStyle.Render("no findings")
	}
	return strings.Join(lines, "\n")
}

// renderStatusBar renders program totals and validity
func (m Model) renderStatusBar() string {
	validity := StatusValidStyle.Render("VALID")
	if m.report != nil && !m.report.Valid() {
		validity = StatusInvalidStyle.Render(fmt.Sprintf("INVALID (%d errors)", len(m.report.Errors)))
	}

	position := "all networks"
	if !m.allRungs && len(m.program.Networks) > 0 {
		position = fmt.Sprintf("network %d/%d", m.current+1, len(m.program.Networks))
	}

	status := fmt.Sprintf("%s  %s  %d symbols  %s",
		position,
		fmt.Sprintf("%d nodes", m.program.NodeCount()),
		m.program.Symbols.Len(),
		validity,
	)
	return StatusBarStyle.Width(m.width).Render(status)
}

// renderHelpBar renders the keyboard shortcuts
func (m Model) renderHelpBar() string {
	hints := []string{
		RenderKeyHint("n/p", "next/prev"),
		RenderKeyHint("a", "all"),
		RenderKeyHint("e", "report"),
		RenderKeyHint("g/G", "top/bottom"),
		RenderKeyHint("q", "quit"),
	}
	return HelpStyle.Render(strings.Join(hints, "  "))
}

// Run starts the viewer program and blocks until it exits
func Run(prog *moprogram.Program, report *movalidate.Report) error {
	p := tea.NewProgram(New(prog, report), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
