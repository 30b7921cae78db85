package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"zenfocus/internal/core/focustimer"
	"zenfocus/internal/core/model"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnToggle      func()
	OnReset       func()
	OnPreset      func(minutes int)
	OnDetach      func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	callbacks  Callbacks
	presets    []model.Preset
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	resetItem  *fyne.MenuItem
	presetItem *fyne.MenuItem
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, presets []model.Preset, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		presets:   presets,
	}

	manager.statusItem = fyne.NewMenuItem("Status: Ready", nil)
	manager.statusItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnToggle != nil {
			manager.callbacks.OnToggle()
		}
	})

	manager.resetItem = fyne.NewMenuItem("Reset", func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})
	manager.resetItem.Disabled = true

	presetItems := make([]*fyne.MenuItem, 0, len(presets))
	for _, preset := range presets {
		minutes := preset.Minutes
		presetItems = append(presetItems, fyne.NewMenuItem(preset.Label, func() {
			if manager.callbacks.OnPreset != nil {
				manager.callbacks.OnPreset(minutes)
			}
		}))
	}
	manager.presetItem = fyne.NewMenuItem("Focus for...", nil)
	manager.presetItem.ChildMenu = fyne.NewMenu("", presetItems...)

	manager.refreshMenu()
	return manager
}

// Update reflects the engine snapshot in the menu.
func (manager *Manager) Update(snapshot focustimer.Snapshot) {
	manager.statusItem.Label = StatusText(snapshot)
	switch snapshot.State {
	case focustimer.StateRunning:
		manager.toggleItem.Label = "Pause"
	case focustimer.StatePaused:
		manager.toggleItem.Label = "Resume"
	default:
		manager.toggleItem.Label = "Start"
	}
	manager.toggleItem.Disabled = snapshot.State == focustimer.StateFinished
	manager.resetItem.Disabled = snapshot.State == focustimer.StateIdle
	manager.presetItem.Disabled = snapshot.State == focustimer.StateRunning
	manager.refreshMenu()
}

// StatusText is the disabled status line at the top of the menu.
func StatusText(snapshot focustimer.Snapshot) string {
	label := focustimer.StatusLabel(snapshot.State)
	switch snapshot.State {
	case focustimer.StateRunning, focustimer.StatePaused:
		return fmt.Sprintf("Status: %s, %s left", label, focustimer.FormatClock(snapshot.RemainingSeconds))
	default:
		return fmt.Sprintf("Status: %s", label)
	}
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("ZenFocus",
		manager.statusItem,
		fyne.NewMenuItem("Show", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		manager.resetItem,
		manager.presetItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Open popup", func() {
			if manager.callbacks.OnDetach != nil {
				manager.callbacks.OnDetach()
			}
		}),
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
