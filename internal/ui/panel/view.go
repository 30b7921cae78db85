package panel

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"zenfocus/internal/core/focustimer"
)

// Actions are host callbacks for the header buttons.
type Actions struct {
	OnMinimize func()
	OnDetach   func()
}

var (
	accentColor = color.NRGBA{R: 52, G: 211, B: 153, A: 255}
	textColor   = color.NRGBA{R: 248, G: 250, B: 252, A: 255}
	mutedColor  = color.NRGBA{R: 148, G: 163, B: 184, A: 255}
	shadeColor  = color.NRGBA{R: 15, G: 23, B: 42, A: 230}
)

// View is the full timer view. It can be placed in any window; all
// methods must run on the fyne main goroutine.
type View struct {
	controller Controller
	actions    Actions

	root          fyne.CanvasObject
	titleLabel    *canvas.Text
	statusLabel   *canvas.Text
	clockLabel    *canvas.Text
	progress      *widget.ProgressBar
	presetButtons map[int]*widget.Button
	primaryButton *widget.Button
	resetButton   *widget.Button
	minimize      *widget.Button
	detach        *widget.Button
	finished      *fyne.Container
}

// New builds the full view for controller.
func New(controller Controller, actions Actions) *View {
	view := &View{
		controller:    controller,
		actions:       actions,
		presetButtons: make(map[int]*widget.Button),
	}

	view.titleLabel = canvas.NewText("ZenFocus", textColor)
	view.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	view.titleLabel.TextSize = 18

	view.statusLabel = canvas.NewText("Ready", mutedColor)
	view.statusLabel.TextSize = 13

	view.clockLabel = canvas.NewText("--:--", accentColor)
	view.clockLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	view.clockLabel.TextSize = 48

	view.progress = widget.NewProgressBar()
	view.progress.Max = 100
	view.progress.TextFormatter = func() string { return "" }

	presetRow := container.NewGridWithColumns(max(len(controller.Presets()), 1))
	for _, preset := range controller.Presets() {
		minutes := preset.Minutes
		button := widget.NewButton(preset.Label, func() {
			view.report(view.controller.SelectPreset(minutes))
		})
		view.presetButtons[minutes] = button
		presetRow.Add(button)
	}

	view.primaryButton = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), func() {
		view.report(Toggle(view.controller))
	})
	view.primaryButton.Importance = widget.HighImportance
	view.resetButton = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), func() {
		view.report(view.controller.Reset())
	})

	view.minimize = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), func() {
		if view.actions.OnMinimize != nil {
			view.actions.OnMinimize()
		}
	})
	view.detach = widget.NewButtonWithIcon("", theme.ViewRestoreIcon(), func() {
		if view.actions.OnDetach != nil {
			view.actions.OnDetach()
		}
	})
	if actions.OnMinimize == nil {
		view.minimize.Hide()
	}
	if actions.OnDetach == nil {
		view.detach.Hide()
	}

	header := container.New(&headerLayout{}, view.titleLabel, view.statusLabel, view.clockLabel)
	windowButtons := container.NewHBox(layout.NewSpacer(), view.detach, view.minimize)
	controls := container.NewHBox(layout.NewSpacer(), view.primaryButton, view.resetButton, layout.NewSpacer())
	body := container.NewBorder(
		windowButtons,
		container.NewVBox(view.progress, presetRow, controls),
		nil, nil,
		header,
	)

	view.finished = view.buildFinishedOverlay()
	view.root = container.NewStack(body, view.finished)

	view.Render(controller.Snapshot())
	return view
}

// Object returns the view's canvas object.
func (view *View) Object() fyne.CanvasObject {
	return view.root
}

// Render updates every widget from the current engine snapshot.
func (view *View) Render(snapshot focustimer.Snapshot) {
	controls := ControlsFor(snapshot)

	view.statusLabel.Text = controls.Status
	view.statusLabel.Refresh()
	view.clockLabel.Text = controls.Clock
	view.clockLabel.Refresh()
	view.progress.SetValue(controls.Progress)

	for minutes, button := range view.presetButtons {
		if minutes == controls.SelectedMinutes {
			button.Importance = widget.HighImportance
		} else {
			button.Importance = widget.MediumImportance
		}
		if controls.PresetsEnabled {
			button.Enable()
		} else {
			button.Disable()
		}
		button.Refresh()
	}

	if controls.PrimaryVisible {
		view.primaryButton.SetText(controls.PrimaryLabel)
		if controls.PrimaryLabel == "Pause" {
			view.primaryButton.SetIcon(theme.MediaPauseIcon())
		} else {
			view.primaryButton.SetIcon(theme.MediaPlayIcon())
		}
		view.primaryButton.Show()
	} else {
		view.primaryButton.Hide()
	}
	setVisible(view.resetButton, controls.ResetVisible)
	setVisible(view.finished, controls.FinishedVisible)
}

// SetDetachVisible shows or hides the detach action.
func (view *View) SetDetachVisible(visible bool) {
	setVisible(view.detach, visible && view.actions.OnDetach != nil)
}

func (view *View) buildFinishedOverlay() *fyne.Container {
	shade := canvas.NewRectangle(shadeColor)

	title := canvas.NewText("Time is up!", textColor)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.TextSize = 24
	title.Alignment = fyne.TextAlignCenter

	subtitle := canvas.NewText("Great focus session.", mutedColor)
	subtitle.Alignment = fyne.TextAlignCenter

	closeButton := widget.NewButton("Close", func() {
		view.report(view.controller.Reset())
	})
	closeButton.Importance = widget.HighImportance

	content := container.NewCenter(container.NewVBox(title, subtitle, container.NewCenter(closeButton)))
	overlay := container.NewStack(shade, content)
	overlay.Hide()
	return overlay
}

func (view *View) report(err error) {
	if err != nil {
		log.Printf("panel: %v", err)
	}
}

func setVisible(object fyne.CanvasObject, visible bool) {
	if visible {
		object.Show()
		return
	}
	object.Hide()
}
