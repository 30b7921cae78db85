// Package shell is the desktop host. It owns the main window, the
// presentation context and the detached popup, and renders every surface
// from the one engine.
package shell

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"

	"zenfocus/internal/core/focustimer"
	"zenfocus/internal/core/presentation"
	"zenfocus/internal/ui/compact"
	"zenfocus/internal/ui/panel"
	"zenfocus/internal/ui/popup"
	"zenfocus/internal/ui/tray"
	"zenfocus/resources"
)

var (
	fullSize    = fyne.NewSize(340, 380)
	compactSize = fyne.NewSize(200, 56)
)

// Config defines the desktop host.
type Config struct {
	Popup          popup.Config
	StartMinimized bool
	// HideOnClose keeps the process alive in the tray when the window is closed.
	HideOnClose bool
}

// Shell is the desktop host.
type Shell struct {
	app        fyne.App
	controller panel.Controller
	window     fyne.Window
	ctx        presentation.Context

	mainFull     *panel.View
	mainCompact  *compact.Badge
	popupFull    *panel.View
	popupCompact *compact.Badge
	popup        *popup.Host
	tray         *tray.Manager

	lastMain     presentation.View
	trayLogo     string
	detachWarned bool
}

// New creates the main window for controller. Call Show to display it.
func New(app fyne.App, controller panel.Controller, config Config) *Shell {
	shell := &Shell{
		app:        app,
		controller: controller,
		ctx: presentation.Context{
			UserMinimized:  config.StartMinimized,
			StandaloneHost: true,
		},
	}

	shell.mainFull = panel.New(controller, panel.Actions{
		OnMinimize: shell.Minimize,
		OnDetach:   shell.Detach,
	})
	shell.mainCompact = compact.New(shell.restoreMain)
	shell.popupFull = panel.New(controller, panel.Actions{})
	shell.popupCompact = compact.New(shell.expandPopup)
	shell.popup = popup.New(app, config.Popup, popup.Callbacks{
		OnResize: shell.popupResized,
		OnClosed: shell.popupClosed,
	})

	shell.window = app.NewWindow("ZenFocus")
	if app.Icon() != nil {
		shell.window.SetIcon(app.Icon())
	}
	shell.window.SetContent(container.NewStack(shell.mainFull.Object(), shell.mainCompact.Object()))
	if config.HideOnClose {
		shell.window.SetCloseIntercept(shell.window.Hide)
	} else {
		shell.window.SetOnClosed(app.Quit)
	}

	shell.render()
	return shell
}

// Window returns the main window.
func (shell *Shell) Window() fyne.Window {
	return shell.window
}

// Context returns the current presentation context.
func (shell *Shell) Context() presentation.Context {
	return shell.ctx
}

// SetTray attaches the tray menu so it follows the engine.
func (shell *Shell) SetTray(manager *tray.Manager) {
	shell.tray = manager
	shell.render()
}

// Listen renders every engine event until the channel is closed.
func (shell *Shell) Listen(events <-chan focustimer.Event) {
	go func() {
		for event := range events {
			if event.Type == focustimer.EventTickStall {
				log.Printf("shell: %s", event.Message)
			}
			fyne.Do(shell.render)
		}
	}()
}

// Show displays the main window.
func (shell *Shell) Show() {
	shell.window.Show()
}

// EnsureVisible brings the timer to the front in its full form. It is
// safe to call from any goroutine.
func (shell *Shell) EnsureVisible() {
	fyne.Do(func() {
		if shell.ctx.DetachedActive {
			shell.ctx.DetachedSurfaceSmall = false
			shell.popup.Focus()
		} else {
			shell.ctx.UserMinimized = false
			shell.window.Show()
			shell.window.RequestFocus()
		}
		shell.render()
	})
}

// Focus shows the window that currently holds the timer.
func (shell *Shell) Focus() {
	if shell.ctx.DetachedActive {
		shell.popup.Focus()
		return
	}
	shell.window.Show()
	shell.window.RequestFocus()
}

// Minimize collapses the main window to the compact badge.
func (shell *Shell) Minimize() {
	shell.ctx.UserMinimized = true
	shell.render()
}

// Detach moves the timer into the popup window. When that fails the user
// is told once and the timer stays in the main window.
func (shell *Shell) Detach() {
	if shell.ctx.DetachedActive {
		shell.popup.Focus()
		return
	}
	if err := shell.popup.Open(shell.popupFull.Object(), shell.popupCompact.Object()); err != nil {
		log.Printf("shell: detach failed: %v", err)
		if !shell.detachWarned {
			shell.detachWarned = true
			dialog.ShowInformation("Popup unavailable",
				"The timer could not open in a separate window. It keeps running here.", shell.window)
		}
		return
	}
	shell.ctx.DetachedActive = true
	shell.render()
}

func (shell *Shell) restoreMain() {
	if shell.ctx.DetachedActive {
		shell.popup.Close()
		return
	}
	shell.ctx.UserMinimized = false
	shell.render()
}

func (shell *Shell) expandPopup() {
	shell.popup.Expand()
	shell.popupResized(false)
}

func (shell *Shell) popupResized(small bool) {
	if shell.ctx.DetachedSurfaceSmall == small {
		return
	}
	shell.ctx.DetachedSurfaceSmall = small
	shell.render()
}

func (shell *Shell) popupClosed() {
	shell.ctx.DetachedActive = false
	shell.ctx.DetachedSurfaceSmall = false
	shell.popupCompact.Stop()
	shell.render()
}

// render must run on the fyne main goroutine.
func (shell *Shell) render() {
	snapshot := shell.controller.Snapshot()
	mainView, detachedView := presentation.Plan(snapshot.State, shell.ctx)

	if mainView == presentation.ViewFull {
		shell.mainFull.Object().Show()
		shell.mainCompact.Object().Hide()
		shell.mainCompact.Stop()
		shell.mainFull.SetDetachVisible(shell.ctx.CanDetach())
		shell.mainFull.Render(snapshot)
	} else {
		shell.mainFull.Object().Hide()
		shell.mainCompact.Object().Show()
		shell.mainCompact.Render(snapshot)
	}
	if mainView != shell.lastMain {
		shell.lastMain = mainView
		if mainView.IsCompact() {
			shell.window.Resize(compactSize)
		} else {
			shell.window.Resize(fullSize)
		}
	}

	if detachedView != "" {
		shell.popup.Show(detachedView)
		if detachedView == presentation.ViewDetachedCompact {
			shell.popupCompact.Render(snapshot)
		} else {
			shell.popupCompact.Stop()
			shell.popupFull.Render(snapshot)
		}
	}

	if shell.tray != nil {
		shell.tray.Update(snapshot)
	}
	shell.updateTrayIcon(snapshot.State)
}

func (shell *Shell) updateTrayIcon(state focustimer.State) {
	desktopApp, ok := shell.app.(desktop.App)
	if !ok {
		return
	}
	logo := compact.LogoFor(state)
	if logo == shell.trayLogo {
		return
	}
	shell.trayLogo = logo
	desktopApp.SetSystemTrayIcon(resources.MustLogo(logo))
}
