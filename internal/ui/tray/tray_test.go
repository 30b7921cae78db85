package tray

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zenfocus/internal/core/focustimer"
	"zenfocus/internal/core/model"
)

type fakeTrayApp struct {
	fyne.App
	menu *fyne.Menu
	icon fyne.Resource
}

func (app *fakeTrayApp) SetSystemTrayMenu(menu *fyne.Menu)      { app.menu = menu }
func (app *fakeTrayApp) SetSystemTrayIcon(icon fyne.Resource)   { app.icon = icon }
func (app *fakeTrayApp) SetSystemTrayWindow(window fyne.Window) {}

func findItem(t *testing.T, menu *fyne.Menu, label string) *fyne.MenuItem {
	t.Helper()
	for _, item := range menu.Items {
		if item.Label == label {
			return item
		}
	}
	t.Fatalf("menu item %q not found", label)
	return nil
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Status: Ready", StatusText(focustimer.Snapshot{State: focustimer.StateIdle, RemainingSeconds: 1800}))
	assert.Equal(t, "Status: Focusing, 29:59 left", StatusText(focustimer.Snapshot{State: focustimer.StateRunning, RemainingSeconds: 1799}))
	assert.Equal(t, "Status: Paused, 10:00 left", StatusText(focustimer.Snapshot{State: focustimer.StatePaused, RemainingSeconds: 600}))
	assert.Equal(t, "Status: Done", StatusText(focustimer.Snapshot{State: focustimer.StateFinished}))
}

func TestManager_MenuFollowsSnapshot(t *testing.T) {
	app := &fakeTrayApp{}
	var picked int
	toggled := 0
	manager := New(app, model.DefaultPresets(), Callbacks{
		OnToggle: func() { toggled++ },
		OnPreset: func(minutes int) { picked = minutes },
	})
	require.NotNil(t, app.menu)

	findItem(t, app.menu, "Start").Action()
	assert.Equal(t, 1, toggled)

	presets := findItem(t, app.menu, "Focus for...")
	require.Len(t, presets.ChildMenu.Items, 3)
	presets.ChildMenu.Items[1].Action()
	assert.Equal(t, 45, picked)

	manager.Update(focustimer.Snapshot{State: focustimer.StateRunning, RemainingSeconds: 100, SelectedSeconds: 2700})
	assert.False(t, findItem(t, app.menu, "Pause").Disabled)
	assert.False(t, findItem(t, app.menu, "Reset").Disabled)
	assert.True(t, findItem(t, app.menu, "Focus for...").Disabled)

	manager.Update(focustimer.Snapshot{State: focustimer.StateFinished, SelectedSeconds: 2700})
	assert.True(t, findItem(t, app.menu, "Start").Disabled)
	assert.False(t, findItem(t, app.menu, "Focus for...").Disabled)
}
