// Package popup hosts the timer in a detached window.
package popup

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"zenfocus/internal/core/presentation"
)

// ErrDetachUnsupported is returned when the device cannot open a second window.
var ErrDetachUnsupported = errors.New("detached window is not supported on this device")

// Config defines popup behaviour.
type Config struct {
	// SmallWidth is the width below which the compact view is used.
	SmallWidth float32
	Borderless bool
}

// Callbacks are host notifications for the shell.
type Callbacks struct {
	OnResize func(small bool)
	OnClosed func()
}

var defaultSize = fyne.NewSize(320, 360)

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// Host manages the detached window. All methods run on the fyne main goroutine.
type Host struct {
	app       fyne.App
	config    Config
	callbacks Callbacks
	window    fyne.Window
	full      fyne.CanvasObject
	compact   fyne.CanvasObject
}

func New(app fyne.App, config Config, callbacks Callbacks) *Host {
	if config.SmallWidth <= 0 {
		config.SmallWidth = 220
	}
	return &Host{app: app, config: config, callbacks: callbacks}
}

// Open creates the detached window showing full or compact content.
func (host *Host) Open(full, compact fyne.CanvasObject) error {
	if host.window != nil {
		host.window.RequestFocus()
		return nil
	}
	if fyne.CurrentDevice().IsMobile() {
		return ErrDetachUnsupported
	}

	window := host.app.NewWindow("ZenFocus")
	if host.config.Borderless {
		driver, ok := host.app.Driver().(splashWindowDriver)
		if !ok {
			return ErrDetachUnsupported
		}
		window = driver.CreateSplashWindow()
	}
	if host.app.Icon() != nil {
		window.SetIcon(host.app.Icon())
	}
	window.SetPadded(false)

	host.full = full
	host.compact = compact
	watch := &sizeWatchLayout{threshold: host.config.SmallWidth, onChange: host.resized}
	window.SetContent(container.New(watch, full, compact))
	window.SetOnClosed(func() {
		host.window = nil
		if host.callbacks.OnClosed != nil {
			host.callbacks.OnClosed()
		}
	})
	window.Resize(defaultSize)
	host.window = window
	window.Show()
	return nil
}

// Show switches the window content to match view.
func (host *Host) Show(view presentation.View) {
	if host.window == nil {
		return
	}
	if view == presentation.ViewDetachedCompact {
		host.full.Hide()
		host.compact.Show()
		return
	}
	host.compact.Hide()
	host.full.Show()
}

// Focus raises the detached window.
func (host *Host) Focus() {
	if host.window != nil {
		host.window.Show()
		host.window.RequestFocus()
	}
}

// Expand resizes the window back to its default size.
func (host *Host) Expand() {
	if host.window != nil {
		host.window.Resize(defaultSize)
	}
}

// Close closes the detached window.
func (host *Host) Close() {
	if host.window != nil {
		host.window.Close()
	}
}

// Active reports whether the detached window is open.
func (host *Host) Active() bool {
	return host.window != nil
}

func (host *Host) resized(small bool) {
	if host.callbacks.OnResize != nil {
		host.callbacks.OnResize(small)
	}
}

// IsSmall reports whether size should use the compact view.
func IsSmall(size fyne.Size, threshold float32) bool {
	return size.Width < threshold
}
