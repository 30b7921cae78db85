// Package ticks delivers "one second elapsed" signals to the focus timer.
//
// A Source is started and stopped by its owner only. While active it emits
// roughly one Tick per interval on the channel returned by Ticks. It never
// emits while stopped and never replays ticks missed while stopped.
package ticks

import (
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

// ErrUnknownMode is returned by ParseMode for unsupported source names.
var ErrUnknownMode = errors.New("unknown tick source mode")

// Tick is a single elapsed-interval signal.
type Tick struct {
	Seq uint64
	At  time.Time
}

// Source produces ticks while active.
type Source interface {
	// Start activates the source. Calling Start on an active source has no effect.
	Start()
	// Stop deactivates the source. Calling Stop on an inactive source has no effect.
	Stop()
	// Ticks returns the delivery channel. It is the same channel for the
	// lifetime of the source and is closed by Close.
	Ticks() <-chan Tick
	// Close stops the source and releases its resources.
	Close() error
}

// Mode selects a Source implementation.
type Mode string

const (
	ModeWorker Mode = "worker"
	ModeLocal  Mode = "local"
)

// ParseMode validates a configured mode name.
func ParseMode(value string) (Mode, error) {
	switch Mode(value) {
	case ModeWorker, ModeLocal:
		return Mode(value), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, value)
	}
}

// New returns a source for the given mode. Unknown modes fall back to the worker.
func New(mode Mode, clock clockwork.Clock, interval time.Duration) Source {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if interval <= 0 {
		interval = time.Second
	}
	if mode == ModeLocal {
		return NewLocal(clock, interval)
	}
	return NewWorker(clock, interval)
}
