// Package panel renders the full timer view.
package panel

import (
	"fmt"

	"zenfocus/internal/core/focustimer"
	"zenfocus/internal/core/model"
)

// Controller is the part of the timer engine the views drive.
type Controller interface {
	Start() error
	Pause() error
	Reset() error
	SelectPreset(minutes int) error
	Snapshot() focustimer.Snapshot
	Presets() []model.Preset
}

// Controls is the widget state derived from a snapshot.
type Controls struct {
	Clock           string
	Status          string
	Progress        float64
	SelectedMinutes int

	PrimaryLabel    string
	PrimaryVisible  bool
	ResetVisible    bool
	PresetsEnabled  bool
	FinishedVisible bool
}

// ControlsFor derives the widget state for snapshot.
func ControlsFor(snapshot focustimer.Snapshot) Controls {
	controls := Controls{
		Clock:           focustimer.FormatClock(snapshot.RemainingSeconds),
		Status:          focustimer.StatusLabel(snapshot.State),
		Progress:        snapshot.ProgressPercent(),
		SelectedMinutes: snapshot.SelectedMinutes(),
		PrimaryVisible:  true,
		ResetVisible:    snapshot.State != focustimer.StateIdle,
		PresetsEnabled:  snapshot.State != focustimer.StateRunning,
	}
	switch snapshot.State {
	case focustimer.StateRunning:
		controls.PrimaryLabel = "Pause"
	case focustimer.StatePaused:
		controls.PrimaryLabel = "Resume"
	case focustimer.StateFinished:
		controls.PrimaryVisible = false
		controls.FinishedVisible = true
	default:
		controls.PrimaryLabel = "Start"
	}
	if snapshot.Stalled {
		controls.Status = fmt.Sprintf("%s (reconnecting)", controls.Status)
	}
	return controls
}

// Toggle starts or pauses the countdown depending on its state.
func Toggle(controller Controller) error {
	if controller.Snapshot().State == focustimer.StateRunning {
		return controller.Pause()
	}
	return controller.Start()
}
