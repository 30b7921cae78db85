package preferences

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window        fyne.Window
	settings      Settings
	onSave        func(Settings)
	chime         *widget.Check
	notifications *widget.Check
	minimized     *widget.Check
	detached      *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("ZenFocus Settings")

	chime := widget.NewCheck("Play a chime when time is up", nil)
	notifications := widget.NewCheck("Show a system notification", nil)
	minimized := widget.NewCheck("Start minimized", nil)
	detached := widget.NewCheck("Open in a floating popup", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Alerts", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		chime,
		notifications,
		widget.NewLabelWithStyle("Window", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		minimized,
		detached,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 260))

	prefs := &Window{
		window:        window,
		onSave:        onSave,
		chime:         chime,
		notifications: notifications,
		minimized:     minimized,
		detached:      detached,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}
	window.SetCloseIntercept(window.Hide)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.chime.SetChecked(settings.ChimeEnabled)
	prefs.notifications.SetChecked(settings.NotificationsAllowed())
	prefs.minimized.SetChecked(settings.StartMinimized)
	prefs.detached.SetChecked(settings.OpenDetached)
}

func (prefs *Window) handleSave() {
	prefs.settings = Apply(prefs.settings, prefs.chime.Checked, prefs.notifications.Checked, prefs.minimized.Checked, prefs.detached.Checked)
	if prefs.onSave != nil {
		prefs.onSave(prefs.settings)
	}
	prefs.window.Hide()
}

// Apply folds the form values into settings. An unanswered notification
// prompt stays unanswered unless the box was ticked.
func Apply(settings Settings, chime, notifications, minimized, detached bool) Settings {
	settings.ChimeEnabled = chime
	settings.StartMinimized = minimized
	settings.OpenDetached = detached
	switch {
	case notifications:
		settings.Notifications = NotificationsGranted
	case settings.Notifications != NotificationsUndetermined:
		settings.Notifications = NotificationsDenied
	}
	return settings
}
