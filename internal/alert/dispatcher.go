package alert

import (
	"context"
	"log"
	"sync"

	"github.com/sourcegraph/conc"

	"zenfocus/internal/core/focustimer"
)

// Dispatcher fires the chime and the system notification once per completion.
type Dispatcher struct {
	tone        Tone
	notifier    Notifier
	permissions PermissionProvider

	mu          sync.Mutex
	message     Message
	toneEnabled bool
	permission  Permission
	initialized bool
	lastSeq     uint64

	inflight sync.WaitGroup
}

// NewDispatcher creates a dispatcher. Any collaborator may be nil, which
// disables that channel.
func NewDispatcher(tone Tone, notifier Notifier, permissions PermissionProvider, message Message) *Dispatcher {
	return &Dispatcher{
		tone:        tone,
		notifier:    notifier,
		permissions: permissions,
		message:     message,
		toneEnabled: true,
		permission:  PermissionUndetermined,
	}
}

// Init queries notification permission and, only when the user has not
// answered yet, asks for it in the background. Later calls are no-ops.
func (dispatcher *Dispatcher) Init(ctx context.Context) {
	dispatcher.mu.Lock()
	if dispatcher.initialized || dispatcher.permissions == nil {
		dispatcher.initialized = true
		dispatcher.mu.Unlock()
		return
	}
	dispatcher.initialized = true
	dispatcher.mu.Unlock()

	permission := dispatcher.permissions.Query()
	dispatcher.SetPermission(permission)
	if permission != PermissionUndetermined {
		return
	}

	dispatcher.inflight.Add(1)
	go func() {
		defer dispatcher.inflight.Done()
		answer, err := dispatcher.permissions.Request(ctx)
		if err != nil {
			log.Printf("alert: notification permission request failed: %v", err)
		}
		if answer != PermissionUndetermined {
			dispatcher.SetPermission(answer)
		}
	}()
}

// Permission returns the last known notification permission.
func (dispatcher *Dispatcher) Permission() Permission {
	dispatcher.mu.Lock()
	defer dispatcher.mu.Unlock()
	return dispatcher.permission
}

// SetMessage replaces the notification text.
func (dispatcher *Dispatcher) SetMessage(message Message) {
	dispatcher.mu.Lock()
	defer dispatcher.mu.Unlock()
	dispatcher.message = message
}

// SetToneEnabled turns the audible cue on or off.
func (dispatcher *Dispatcher) SetToneEnabled(enabled bool) {
	dispatcher.mu.Lock()
	defer dispatcher.mu.Unlock()
	dispatcher.toneEnabled = enabled
}

// OnFinish is the engine completion hook.
func (dispatcher *Dispatcher) OnFinish(completion focustimer.Completion) {
	dispatcher.Fire(completion.Seq)
}

// Fire starts both alert channels in the background and returns
// immediately. A seq that was already fired is ignored. Failures and
// panics in either channel are logged.
func (dispatcher *Dispatcher) Fire(seq uint64) {
	dispatcher.mu.Lock()
	if seq <= dispatcher.lastSeq {
		dispatcher.mu.Unlock()
		return
	}
	dispatcher.lastSeq = seq
	message := dispatcher.message
	playTone := dispatcher.toneEnabled && dispatcher.tone != nil
	notify := dispatcher.permission == PermissionGranted && dispatcher.notifier != nil
	dispatcher.mu.Unlock()

	dispatcher.inflight.Add(1)
	go func() {
		defer dispatcher.inflight.Done()

		var group conc.WaitGroup
		if playTone {
			group.Go(func() {
				if err := dispatcher.tone.Play(); err != nil {
					log.Printf("alert: chime failed: %v", err)
				}
			})
		}
		if notify {
			group.Go(func() {
				if err := dispatcher.notifier.Notify(message.Title, message.Body); err != nil {
					log.Printf("alert: notification failed: %v", err)
				}
			})
		}
		if recovered := group.WaitAndRecover(); recovered != nil {
			log.Printf("alert: recovered from panic: %v", recovered.Value)
		}
	}()
}

// Wait blocks until in-flight alerts and permission requests finish.
func (dispatcher *Dispatcher) Wait() {
	dispatcher.inflight.Wait()
}

// SetPermission records a permission change made outside the startup prompt.
func (dispatcher *Dispatcher) SetPermission(permission Permission) {
	dispatcher.mu.Lock()
	defer dispatcher.mu.Unlock()
	dispatcher.permission = permission
}
