// Package terminal renders the timer as a full-screen terminal program.
package terminal

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"zenfocus/internal/core/focustimer"
	"zenfocus/internal/core/presentation"
	"zenfocus/internal/ui/compact"
	"zenfocus/internal/ui/panel"
)

const maxBarWidth = 48

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7FB4CA")).MarginBottom(1)
	clockStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E6E6E6"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0A0A0"))
	presetStyle  = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#A0A0A0"))
	selectStyle  = presetStyle.Bold(true).Foreground(lipgloss.Color("#1E1E1E")).Background(lipgloss.Color("#7FB4CA"))
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#98BB6C")).MarginTop(1)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E46876")).MarginTop(1)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#5C5C5C")).MarginTop(1)
	compactStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7FB4CA"))
)

type eventMsg focustimer.Event

type eventsClosedMsg struct{}

type bannerMsg struct{ title, body string }

type revealMsg struct{}

// Model is the terminal program state.
type Model struct {
	controller panel.Controller
	events     <-chan focustimer.Event
	surface    *Surface
	ctx        presentation.Context

	progress progress.Model
	banner   string
	err      error
	width    int
	height   int
}

// NewModel renders controller and re-renders on every value from events.
func NewModel(controller panel.Controller, events <-chan focustimer.Event, surface *Surface) Model {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = maxBarWidth
	return Model{
		controller: controller,
		events:     events,
		surface:    surface,
		progress:   bar,
	}
}

// Run starts the program and blocks until the user quits or ctx is done.
func Run(ctx context.Context, model Model) error {
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.events), m.waitForBanner(), m.waitForReveal())
}

func waitForEvent(events <-chan focustimer.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg(event)
	}
}

func (m Model) waitForBanner() tea.Cmd {
	return func() tea.Msg {
		message := <-m.surface.banners
		return bannerMsg{title: message.Title, body: message.Body}
	}
}

func (m Model) waitForReveal() tea.Cmd {
	return func() tea.Msg {
		<-m.surface.reveal
		return revealMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case eventMsg:
		if msg.Type == focustimer.EventStateChange && msg.Snapshot.State == focustimer.StateRunning {
			m.banner = ""
		}
		return m, waitForEvent(m.events)
	case eventsClosedMsg:
		return m, tea.Quit
	case bannerMsg:
		m.banner = msg.title
		if msg.body != "" {
			m.banner = fmt.Sprintf("%s: %s", msg.title, msg.body)
		}
		return m, m.waitForBanner()
	case revealMsg:
		m.ctx.UserMinimized = false
		return m, m.waitForReveal()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width-4, 10), maxBarWidth)
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "s":
		m.err = panel.Toggle(m.controller)
	case "p":
		m.err = m.controller.Pause()
	case "r", "enter":
		if key == "enter" && m.controller.Snapshot().State != focustimer.StateFinished {
			return m, nil
		}
		m.err = m.controller.Reset()
	case "m":
		m.ctx.UserMinimized = !m.ctx.UserMinimized
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			index := int(key[0] - '1')
			presets := m.controller.Presets()
			if index < len(presets) {
				m.err = m.controller.SelectPreset(presets[index].Minutes)
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	snapshot := m.controller.Snapshot()
	if presentation.Select(snapshot.State, m.ctx) == presentation.ViewCompact {
		return m.compactView(snapshot)
	}
	return m.fullView(snapshot)
}

func (m Model) compactView(snapshot focustimer.Snapshot) string {
	text, ok := compact.ClockFor(snapshot)
	if !ok {
		text = focustimer.StatusLabel(snapshot.State)
	}
	return compactStyle.Render("● "+text) + statusStyle.Render("  m expand")
}

func (m Model) fullView(snapshot focustimer.Snapshot) string {
	controls := panel.ControlsFor(snapshot)
	sections := []string{
		titleStyle.Render("ZenFocus"),
		clockStyle.Render(controls.Clock),
		statusStyle.Render(controls.Status),
		"",
		m.progress.ViewAs(controls.Progress / 100),
		"",
		m.presetsView(controls),
	}
	if m.banner != "" {
		sections = append(sections, bannerStyle.Render(m.banner))
	}
	if m.err != nil {
		sections = append(sections, errorStyle.Render(m.err.Error()))
	}
	sections = append(sections, helpStyle.Render(helpFor(controls)))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) presetsView(controls panel.Controls) string {
	presets := m.controller.Presets()
	labels := make([]string, 0, len(presets))
	for i, preset := range presets {
		label := fmt.Sprintf("%d %s", i+1, preset.Label)
		if preset.Minutes == controls.SelectedMinutes {
			labels = append(labels, selectStyle.Render(label))
			continue
		}
		labels = append(labels, presetStyle.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labels...)
}

func helpFor(controls panel.Controls) string {
	keys := make([]string, 0, 6)
	if controls.PrimaryVisible {
		keys = append(keys, "space "+strings.ToLower(controls.PrimaryLabel))
	}
	if controls.FinishedVisible {
		keys = append(keys, "enter close")
	}
	if controls.ResetVisible {
		keys = append(keys, "r reset")
	}
	if controls.PresetsEnabled {
		keys = append(keys, "1-9 preset")
	}
	keys = append(keys, "m minimize", "q quit")
	return strings.Join(keys, " · ")
}
