package terminal

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zenfocus/internal/core/focustimer"
	"zenfocus/internal/core/model"
	"zenfocus/internal/core/ticks"
)

type idleSource struct {
	ch chan ticks.Tick
}

func (source *idleSource) Start()                   {}
func (source *idleSource) Stop()                    {}
func (source *idleSource) Ticks() <-chan ticks.Tick { return source.ch }
func (source *idleSource) Close() error {
	close(source.ch)
	return nil
}

func newTestModel(t *testing.T) (Model, *focustimer.Engine) {
	t.Helper()
	engine := focustimer.New(model.TimerConfig{
		Presets:        model.DefaultPresets(),
		DefaultMinutes: 30,
		TickInterval:   time.Second,
	}, &idleSource{ch: make(chan ticks.Tick)}, focustimer.Options{Clock: clockwork.NewFakeClock()})
	t.Cleanup(func() { _ = engine.Close() })
	return NewModel(engine, make(chan focustimer.Event), NewSurface()), engine
}

func key(s string) tea.Msg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func TestModel_KeyFlow(t *testing.T) {
	m, engine := newTestModel(t)

	m = press(t, m, " ")
	assert.Equal(t, focustimer.StateRunning, engine.Snapshot().State)
	assert.Contains(t, m.View(), "space pause")

	m = press(t, m, "p")
	assert.Equal(t, focustimer.StatePaused, engine.Snapshot().State)
	assert.Contains(t, m.View(), "space resume")

	m = press(t, m, "s")
	assert.Equal(t, focustimer.StateRunning, engine.Snapshot().State)

	m = press(t, m, "r")
	assert.Equal(t, focustimer.StateIdle, engine.Snapshot().State)
	assert.NoError(t, m.err)
}

func TestModel_PresetKeys(t *testing.T) {
	m, engine := newTestModel(t)

	m = press(t, m, "2")
	assert.Equal(t, 45*60, engine.Snapshot().SelectedSeconds)
	assert.Contains(t, m.View(), "45:00")

	m = press(t, m, "9")
	assert.Equal(t, 45*60, engine.Snapshot().SelectedSeconds)

	m = press(t, m, "s", "3")
	assert.ErrorIs(t, m.err, focustimer.ErrInvalidTransition)
	assert.Equal(t, 45*60, engine.Snapshot().SelectedSeconds)
}

func TestModel_FinishedDismissedWithEnter(t *testing.T) {
	m, engine := newTestModel(t)
	require.NoError(t, engine.Start())

	m = press(t, m, "enter")
	assert.Equal(t, focustimer.StateRunning, engine.Snapshot().State)

	for engine.Tick() {
	}
	require.Equal(t, focustimer.StateFinished, engine.Snapshot().State)
	assert.Contains(t, m.View(), "enter close")

	press(t, m, "enter")
	assert.Equal(t, focustimer.StateIdle, engine.Snapshot().State)
	assert.Equal(t, 30*60, engine.Snapshot().RemainingSeconds)
}

func TestModel_CompactShowsClockOnlyWhileRunning(t *testing.T) {
	m, engine := newTestModel(t)

	m = press(t, m, "m")
	assert.Contains(t, m.View(), "Ready")
	assert.NotContains(t, m.View(), "30:00")

	require.NoError(t, engine.Start())
	engine.Tick()
	assert.Contains(t, m.View(), "29:59")

	m = press(t, m, "m")
	assert.Contains(t, m.View(), "ZenFocus")
}

func TestModel_RevealExpandsCompactView(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "m")
	require.True(t, m.ctx.UserMinimized)

	m.surface.EnsureVisible()
	m.surface.EnsureVisible()
	msg := m.waitForReveal()()
	next, cmd := m.Update(msg)
	m = next.(Model)

	assert.False(t, m.ctx.UserMinimized)
	assert.NotNil(t, cmd)
}

func TestModel_BannerFromNotify(t *testing.T) {
	m, _ := newTestModel(t)

	require.NoError(t, m.surface.Notify("Focus complete", "Time for a break."))
	next, _ := m.Update(m.waitForBanner()())
	m = next.(Model)
	assert.Contains(t, m.View(), "Focus complete: Time for a break.")

	next, _ = m.Update(eventMsg(focustimer.Event{
		Type:     focustimer.EventStateChange,
		Snapshot: focustimer.Snapshot{State: focustimer.StateRunning},
	}))
	m = next.(Model)
	assert.Empty(t, m.banner)
}

func TestSurface_NotifyDropsWhenFull(t *testing.T) {
	surface := NewSurface()
	for i := 0; i < 10; i++ {
		assert.NoError(t, surface.Notify("title", "body"))
	}
	assert.Len(t, surface.banners, cap(surface.banners))
}

func TestModel_QuitsWhenEventsClose(t *testing.T) {
	m, _ := newTestModel(t)
	events := make(chan focustimer.Event)
	close(events)

	msg := waitForEvent(events)()
	_, cmd := m.Update(msg)
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestModel_QuitKey(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}
