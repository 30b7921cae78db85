// Package compact renders the minimized timer badge.
package compact

import (
	"context"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"zenfocus/internal/core/focustimer"
	"zenfocus/internal/ui/animation"
	"zenfocus/resources"
)

var clockColor = color.NRGBA{R: 52, G: 211, B: 153, A: 255}

// Badge is the compact view: an icon, the remaining time while running,
// and a restore button.
type Badge struct {
	root    fyne.CanvasObject
	icon    *widget.Icon
	clock   *canvas.Text
	restore *widget.Button
	pulse   *animation.Engine
	pulsing bool
	logo    string
}

// New builds a badge. onRestore is called when the user expands it.
func New(onRestore func()) *Badge {
	badge := &Badge{logo: resources.LogoActive}

	badge.icon = widget.NewIcon(resources.MustLogo(resources.LogoActive))
	badge.clock = canvas.NewText("", clockColor)
	badge.clock.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	badge.clock.TextSize = 16
	badge.clock.Hide()

	badge.restore = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		if onRestore != nil {
			onRestore()
		}
	})
	badge.restore.Importance = widget.LowImportance

	badge.pulse = animation.New(animation.DefaultConfig(), func(level float64) {
		fyne.Do(func() {
			badge.clock.Color = withAlpha(clockColor, level)
			badge.clock.Refresh()
		})
	})

	badge.root = container.NewHBox(badge.icon, badge.clock, badge.restore)
	return badge
}

// Object returns the badge's canvas object.
func (badge *Badge) Object() fyne.CanvasObject {
	return badge.root
}

// Render updates the badge; it must run on the fyne main goroutine.
func (badge *Badge) Render(snapshot focustimer.Snapshot) {
	text, visible := ClockFor(snapshot)
	badge.clock.Text = text
	if visible {
		badge.clock.Show()
	} else {
		badge.clock.Hide()
	}
	badge.clock.Refresh()

	if logo := LogoFor(snapshot.State); logo != badge.logo {
		badge.logo = logo
		badge.icon.SetResource(resources.MustLogo(logo))
	}

	running := snapshot.State == focustimer.StateRunning
	switch {
	case running && !badge.pulsing:
		badge.pulse.StartPulse(context.Background())
		badge.pulsing = true
	case !running && badge.pulsing:
		badge.pulse.Stop()
		badge.pulsing = false
	}
}

// Stop ends the pulse animation.
func (badge *Badge) Stop() {
	badge.pulse.Stop()
	badge.pulsing = false
}

// ClockFor returns the badge text. The time is shown only while running.
func ClockFor(snapshot focustimer.Snapshot) (string, bool) {
	if snapshot.State != focustimer.StateRunning {
		return "", false
	}
	return focustimer.FormatClock(snapshot.RemainingSeconds), true
}

// LogoFor picks the badge icon for state.
func LogoFor(state focustimer.State) string {
	switch state {
	case focustimer.StatePaused:
		return resources.LogoPaused
	case focustimer.StateFinished:
		return resources.LogoDone
	default:
		return resources.LogoActive
	}
}

func withAlpha(base color.NRGBA, level float64) color.NRGBA {
	level = min(max(level, 0), 1)
	base.A = uint8(level * 255)
	return base
}
