package storage

import (
	"context"
	"log"

	"zenfocus/internal/core/focustimer"
)

// EntryFromEvent maps an engine event to a history entry. Progress and
// tick health events are not recorded.
func EntryFromEvent(event focustimer.Event) (Entry, bool) {
	entry := Entry{
		At:               event.At,
		PresetMinutes:    event.Snapshot.SelectedMinutes(),
		RemainingSeconds: event.Snapshot.RemainingSeconds,
	}

	switch {
	case event.Type == focustimer.EventFinished:
		entry.Kind = KindFinished
	case event.Type != focustimer.EventStateChange:
		return Entry{}, false
	case event.Transition == focustimer.TransitionStart && event.Previous == focustimer.StatePaused:
		entry.Kind = KindResumed
	case event.Transition == focustimer.TransitionStart:
		entry.Kind = KindStarted
	case event.Transition == focustimer.TransitionPause:
		entry.Kind = KindPaused
	case event.Transition == focustimer.TransitionReset:
		entry.Kind = KindReset
	case event.Transition == focustimer.TransitionSelectPreset:
		entry.Kind = KindPreset
	default:
		return Entry{}, false
	}
	return entry, true
}

// Record appends history entries for events until the channel is closed or
// ctx is done. Write failures are logged and do not stop recording.
func Record(ctx context.Context, events <-chan focustimer.Event, history History) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			entry, keep := EntryFromEvent(event)
			if !keep {
				continue
			}
			if _, err := history.Append(ctx, entry); err != nil {
				log.Printf("storage: failed to record %s: %v", entry.Kind, err)
			}
		}
	}
}
