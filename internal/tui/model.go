// Package tui is the terminal incident dashboard.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Princegupta101/instinctive/internal/dashboard"
	"github.com/Princegupta101/instinctive/internal/models"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const requestTimeout = 10 * time.Second

type incidentsLoadedMsg struct {
	resolved  bool
	incidents []models.Incident
	err       error
}

type resolvedMsg struct {
	id       string
	incident *models.Incident
	err      error
}

type camerasLoadedMsg struct {
	cameras []models.Camera
	err     error
}

type removeMsg struct {
	id string
}

type tickMsg time.Time

type Model struct {
	api     API
	board   *dashboard.Board
	player  *dashboard.Player
	cameras []models.Camera
	cursor  int
	loading bool
	err     error

	spinner spinner.Model
	help    help.Model
	keys    keyMap
	styles  styles
}

func New(api API, showResolved bool) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(draculaPurple))

	return &Model{
		api:     api,
		board:   dashboard.NewBoard(showResolved),
		player:  dashboard.NewPlayer(dashboard.DefaultClipLength),
		loading: true,
		spinner: s,
		help:    help.New(),
		keys:    newKeyMap(),
		styles:  newStyles(),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.loadCameras(), m.spinner.Tick, tick())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case incidentsLoadedMsg:
		return m.handleLoaded(msg)
	case camerasLoadedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("loading cameras: %w", msg.err)
			return m, nil
		}
		m.cameras = msg.cameras
		return m, nil
	case resolvedMsg:
		return m.handleResolved(msg)
	case removeMsg:
		if m.board.ShouldRemove(msg.id) {
			m.board.Remove(msg.id)
			m.clampCursor()
		}
		return m, nil
	case tickMsg:
		m.player.Tick()
		return m, tick()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Play):
		m.player.Toggle()
	case key.Matches(msg, m.keys.Filter):
		m.board.SetShowResolved(!m.board.ShowResolved())
		m.cursor = 0
		m.loading = true
		m.err = nil
		m.player.Reset()
		return m, m.load()
	case key.Matches(msg, m.keys.Resolve):
		return m.resolveSelected()
	}

	return m, nil
}

func (m *Model) handleLoaded(msg incidentsLoadedMsg) (tea.Model, tea.Cmd) {
	// A reply for a filter the user already switched away from.
	if msg.resolved != m.board.ShowResolved() {
		return m, nil
	}

	m.loading = false

	if msg.err != nil {
		m.err = msg.err
		return m, nil
	}

	m.err = nil
	m.board.Load(msg.incidents)
	m.clampCursor()

	return m, nil
}

func (m *Model) resolveSelected() (tea.Model, tea.Cmd) {
	incident, ok := m.board.At(m.cursor)
	if !ok {
		return m, nil
	}

	id := incident.ID.String()
	if err := m.board.Apply(id); err != nil {
		m.err = err
		return m, nil
	}

	m.err = nil
	return m, m.resolve(id)
}

func (m *Model) handleResolved(msg resolvedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if err := m.board.Rollback(msg.id); err == nil {
			m.err = fmt.Errorf("resolving incident: %w", msg.err)
		}
		return m, nil
	}

	if err := m.board.Commit(msg.id, *msg.incident); err != nil {
		return m, nil
	}

	if m.board.ShouldRemove(msg.id) {
		id := msg.id
		return m, tea.Tick(dashboard.RemoveDelay, func(time.Time) tea.Msg {
			return removeMsg{id: id}
		})
	}

	return m, nil
}

func (m *Model) load() tea.Cmd {
	api := m.api
	resolved := m.board.ShowResolved()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		incidents, err := api.ListIncidents(ctx, resolved)
		return incidentsLoadedMsg{resolved: resolved, incidents: incidents, err: err}
	}
}

func (m *Model) loadCameras() tea.Cmd {
	api := m.api

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		cameras, err := api.ListCameras(ctx)
		return camerasLoadedMsg{cameras: cameras, err: err}
	}
}

func (m *Model) resolve(id string) tea.Cmd {
	api := m.api

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		incident, err := api.ToggleResolved(ctx, id)
		return resolvedMsg{id: id, incident: incident, err: err}
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= m.board.Len() {
		return
	}
	m.cursor = next
	m.player.Reset()
}

func (m *Model) clampCursor() {
	if m.cursor >= m.board.Len() {
		m.cursor = m.board.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) View() string {
	var b strings.Builder

	filter := "active"
	if m.board.ShowResolved() {
		filter = "resolved"
	}

	b.WriteString(m.styles.title.Render("Instinctive"))
	b.WriteString(m.styles.muted.Render(fmt.Sprintf("  %s incidents · %d unresolved", filter, m.board.Unresolved())))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spinner.View() + " Loading incidents...\n")
	} else {
		b.WriteString(m.listView())
		b.WriteString("\n")
		b.WriteString(m.playerView())
	}

	if m.err != nil {
		b.WriteString("\n" + m.styles.error.Render(m.err.Error()) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))

	return m.styles.app.Render(b.String())
}

func (m *Model) listView() string {
	if m.board.Len() == 0 {
		return m.styles.muted.Render("No incidents.") + "\n"
	}

	var b strings.Builder

	for i, incident := range m.board.Incidents() {
		display := dashboard.DisplayFor(incident.Type)
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color(display.Color)).Render(display.Icon)

		line := fmt.Sprintf("%s %-20s %-14s %s",
			icon,
			incident.Type,
			incident.Camera.Name,
			incident.TsStart.Local().Format("Jan 2 15:04"),
		)

		switch m.board.State(incident.ID.String()) {
		case dashboard.Pending:
			line += " " + m.styles.pending.Render("…")
		default:
			if incident.Resolved {
				line += " " + m.styles.resolved.Render("✓ resolved")
			}
		}

		if i == m.cursor {
			b.WriteString(m.styles.selected.Render("> ") + line + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	return b.String()
}

func (m *Model) playerView() string {
	incident, ok := m.board.At(m.cursor)
	if !ok {
		return m.styles.panel.Render("Select an incident to view footage" + m.camerasLine())
	}

	state := "▶"
	if m.player.Playing() {
		state = "❚❚"
	}

	const barWidth = 30
	filled := int(m.player.Progress() * barWidth)
	bar := strings.Repeat("━", filled) + strings.Repeat("─", barWidth-filled)

	status := "ACTIVE INCIDENT"
	if incident.Resolved {
		status = "RESOLVED"
	}

	body := fmt.Sprintf("Playing: %s - %s\nFeed: %s\n%s\n%s %s %s / %s",
		incident.Type,
		incident.Camera.Name,
		dashboard.FeedFor(incident.Camera.Name),
		status,
		state,
		bar,
		dashboard.FormatClock(m.player.Position()),
		dashboard.FormatClock(m.player.Duration()),
	)

	return m.styles.panel.Render(body + m.camerasLine())
}

func (m *Model) camerasLine() string {
	if len(m.cameras) == 0 {
		return ""
	}

	names := make([]string, 0, len(m.cameras))
	for _, camera := range m.cameras {
		names = append(names, camera.Name)
	}

	return "\n" + m.styles.muted.Render("Cameras: "+strings.Join(names, " · "))
}
