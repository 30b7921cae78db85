package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"zenfocus/internal/core/focustimer"
)

type mockHistory struct {
	mock.Mock
}

func (m *mockHistory) Init(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockHistory) Append(ctx context.Context, entry Entry) (int64, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockHistory) Recent(ctx context.Context, limit int) ([]Entry, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]Entry), args.Error(1)
}

func (m *mockHistory) Close() error {
	return m.Called().Error(0)
}

var recordedAt = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func stateEvent(transition focustimer.Transition, previous, state focustimer.State, remaining int) focustimer.Event {
	return focustimer.Event{
		Type:       focustimer.EventStateChange,
		Transition: transition,
		Previous:   previous,
		Snapshot:   focustimer.Snapshot{State: state, RemainingSeconds: remaining, SelectedSeconds: 1800},
		At:         recordedAt,
	}
}

func TestEntryFromEvent(t *testing.T) {
	tests := []struct {
		name  string
		event focustimer.Event
		want  Kind
		keep  bool
	}{
		{"start", stateEvent(focustimer.TransitionStart, focustimer.StateIdle, focustimer.StateRunning, 1800), KindStarted, true},
		{"resume", stateEvent(focustimer.TransitionStart, focustimer.StatePaused, focustimer.StateRunning, 1790), KindResumed, true},
		{"pause", stateEvent(focustimer.TransitionPause, focustimer.StateRunning, focustimer.StatePaused, 1790), KindPaused, true},
		{"reset", stateEvent(focustimer.TransitionReset, focustimer.StatePaused, focustimer.StateIdle, 1800), KindReset, true},
		{"preset", stateEvent(focustimer.TransitionSelectPreset, focustimer.StateIdle, focustimer.StateIdle, 1800), KindPreset, true},
		{"finishing tick state change", stateEvent(focustimer.TransitionTick, focustimer.StateRunning, focustimer.StateFinished, 0), "", false},
		{"finished", focustimer.Event{Type: focustimer.EventFinished, Snapshot: focustimer.Snapshot{State: focustimer.StateFinished, SelectedSeconds: 1800}}, KindFinished, true},
		{"progress", focustimer.Event{Type: focustimer.EventProgress}, "", false},
		{"stall", focustimer.Event{Type: focustimer.EventTickStall}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, keep := EntryFromEvent(tt.event)
			assert.Equal(t, tt.keep, keep)
			assert.Equal(t, tt.want, entry.Kind)
			if keep {
				assert.Equal(t, 30, entry.PresetMinutes)
				assert.Equal(t, tt.event.Snapshot.RemainingSeconds, entry.RemainingSeconds)
			}
		})
	}
}

func TestRecord_AppendsUntilChannelCloses(t *testing.T) {
	history := &mockHistory{}
	history.On("Append", mock.Anything, mock.MatchedBy(func(entry Entry) bool {
		return entry.Kind == KindStarted
	})).Return(int64(1), nil).Once()
	history.On("Append", mock.Anything, mock.MatchedBy(func(entry Entry) bool {
		return entry.Kind == KindPaused
	})).Return(int64(0), errors.New("database is locked")).Once()

	events := make(chan focustimer.Event, 4)
	events <- stateEvent(focustimer.TransitionStart, focustimer.StateIdle, focustimer.StateRunning, 1800)
	events <- focustimer.Event{Type: focustimer.EventProgress}
	events <- stateEvent(focustimer.TransitionPause, focustimer.StateRunning, focustimer.StatePaused, 1799)
	close(events)

	Record(context.Background(), events, history)
	history.AssertExpectations(t)
}

func TestRecord_StopsOnContextCancel(t *testing.T) {
	history := &mockHistory{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		Record(ctx, make(chan focustimer.Event), history)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Record did not return after cancel")
	}
	history.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}
