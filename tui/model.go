// Package tui is the interactive visualizer collaborator: it replays a
// recorded trace.Run result over a surface.Code lattice, letting the user
// step round-by-round through the Z/X syndrome history. It is not part of
// the simulator core (spec.md §1) — it is the pretty-printer contract from
// spec.md §2/§6 expanded into a Bubble Tea program, built the way the
// teacher repo's own TUI is built.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"qcore/surface"
	"qcore/trace"
)

// Model is the Bubble Tea model for the round-by-round syndrome viewer.
type Model struct {
	sc     *surface.Code
	rounds []trace.Round

	cursor int // selected round, 0-indexed
	width  int
	height int

	log viewport.Model
}

// New builds a Model over a completed run.
func New(sc *surface.Code, rounds []trace.Round) Model {
	vp := viewport.New(40, 20)
	m := Model{sc: sc, rounds: rounds, log: vp}
	m.syncLog()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) syncLog() {
	m.log.SetContent(renderLog(m.sc, m.rounds, m.cursor))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.log.Width = msg.Width/2 - 6
		m.log.Height = msg.Height - 10
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.syncLog()
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.rounds)-1 {
				m.cursor++
				m.syncLog()
			}
			return m, nil
		case "home", "g":
			m.cursor = 0
			m.syncLog()
			return m, nil
		case "end", "G":
			m.cursor = len(m.rounds) - 1
			m.syncLog()
			return m, nil
		}
		// Any other key (e.g. page up/down) scrolls the log viewport itself.
		var cmd tea.Cmd
		m.log, cmd = m.log.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.log, cmd = m.log.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.width == 0 {
		return "loading…"
	}

	latticeW := m.width/2 - 2
	logW := m.width/2 - 2
	panelH := m.height - 8

	lattice := renderLatticePanel(m.sc, m.rounds, m.cursor, latticeW, panelH)
	log := logStyle.Width(logW).Height(panelH).Render(
		titleStyle.Render("Syndrome Log") + "\n\n" + m.log.View(),
	)

	row := lipgloss.JoinHorizontal(lipgloss.Top, lattice, log)
	controls := renderControlsPanel(m.width, 3)

	return row + "\n" + controls + "\n" + fmt.Sprintf(" round %d/%d", m.cursor+1, len(m.rounds))
}

// Run launches the interactive visualizer over a completed run and blocks
// until the user quits.
func Run(sc *surface.Code, rounds []trace.Round) error {
	_, err := tea.NewProgram(New(sc, rounds), tea.WithAltScreen()).Run()
	return err
}
