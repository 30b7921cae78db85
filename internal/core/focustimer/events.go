package focustimer

import "time"

// State represents the current timer mode.
type State string

const (
	StateIdle     State = "idle"
	StateRunning  State = "running"
	StatePaused   State = "paused"
	StateFinished State = "finished"
)

// Transition names the operation that caused a state change.
type Transition string

const (
	TransitionStart        Transition = "start"
	TransitionPause        Transition = "pause"
	TransitionReset        Transition = "reset"
	TransitionSelectPreset Transition = "select_preset"
	TransitionTick         Transition = "tick"
)

// EventType defines the type of engine event.
type EventType string

const (
	EventStateChange  EventType = "state_change"
	EventProgress     EventType = "progress"
	EventFinished     EventType = "finished"
	EventTickStall    EventType = "tick_stall"
	EventTickRestored EventType = "tick_restored"
)

// Event represents an engine update for observers.
type Event struct {
	Type       EventType
	Transition Transition
	Previous   State
	Snapshot   Snapshot
	Completion uint64
	Message    string
	At         time.Time
}

// Snapshot is a read-only copy of the engine state.
type Snapshot struct {
	State            State
	RemainingSeconds int
	SelectedSeconds  int
	Stalled          bool
}

// ProgressPercent derives the completion percentage from the snapshot.
func (snapshot Snapshot) ProgressPercent() float64 {
	switch snapshot.State {
	case StateIdle:
		return 0
	case StateFinished:
		return 100
	}
	if snapshot.SelectedSeconds <= 0 {
		return 0
	}
	elapsed := snapshot.SelectedSeconds - snapshot.RemainingSeconds
	return float64(elapsed) / float64(snapshot.SelectedSeconds) * 100
}

// SelectedMinutes returns the selected preset length in minutes.
func (snapshot Snapshot) SelectedMinutes() int {
	return snapshot.SelectedSeconds / 60
}

// Completion describes one Running to Finished transition.
type Completion struct {
	Seq             uint64
	SelectedSeconds int
	At              time.Time
}
