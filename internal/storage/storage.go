// Package storage persists user preferences and the session history.
package storage

import (
	"context"
	"time"
)

// Kind names what happened in a session history entry.
type Kind string

const (
	KindStarted  Kind = "started"
	KindResumed  Kind = "resumed"
	KindPaused   Kind = "paused"
	KindReset    Kind = "reset"
	KindPreset   Kind = "preset"
	KindFinished Kind = "finished"
)

// Entry is one line of the session history.
type Entry struct {
	ID               int64
	At               time.Time
	Kind             Kind
	PresetMinutes    int
	RemainingSeconds int
}

// History is an append-only session log.
type History interface {
	Init(ctx context.Context) error
	Append(ctx context.Context, entry Entry) (int64, error)
	Recent(ctx context.Context, limit int) ([]Entry, error)
	Close() error
}
