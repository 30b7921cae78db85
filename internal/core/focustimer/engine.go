// Package focustimer implements the focus countdown state machine.
//
// One Engine backs every presentation surface. Surfaces read Snapshot or
// Subscribe to events and call the transition methods; they never own
// timer state themselves.
package focustimer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"zenfocus/internal/core/model"
	"zenfocus/internal/core/ticks"
)

var (
	// ErrInvalidTransition is returned when an operation is not legal in the current state.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrUnknownPreset is returned when a preset is not part of the configured list.
	ErrUnknownPreset = errors.New("unknown preset")
	// ErrClosed is returned by transitions after Close.
	ErrClosed = errors.New("engine closed")
)

// Hooks are run, in order, once per completed countdown.
type Hooks struct {
	OnFinish      func(Completion)
	EnsureVisible func()
}

// Options contains runtime collaborators for the Engine.
type Options struct {
	Clock clockwork.Clock
	Hooks Hooks
}

// Engine is the focus timer state machine.
type Engine struct {
	mu     sync.Mutex
	config model.TimerConfig
	clock  clockwork.Clock
	source ticks.Source
	hooks  Hooks

	state       State
	selected    int
	remaining   int
	completions uint64
	lastTick    time.Time
	stalled     bool
	// runStarted is when the countdown last entered Running.
	runStarted time.Time

	pumping bool
	closed  bool
	done    chan struct{}
	wg      sync.WaitGroup
	events  []chan Event
}

// New creates an idle Engine driven by source. The engine owns the source
// from now on and closes it in Close.
func New(config model.TimerConfig, source ticks.Source, options Options) *Engine {
	if len(config.Presets) == 0 {
		config.Presets = model.DefaultPresets()
	}
	if _, ok := config.Find(config.DefaultMinutes); !ok {
		config.DefaultMinutes = config.Presets[0].Minutes
	}
	if config.TickInterval <= 0 {
		config.TickInterval = time.Second
	}
	if config.StallAfter <= 0 {
		config.StallAfter = 5 * config.TickInterval
	}
	if options.Clock == nil {
		options.Clock = clockwork.NewRealClock()
	}

	engine := &Engine{
		config:   config,
		clock:    options.Clock,
		source:   source,
		hooks:    options.Hooks,
		state:    StateIdle,
		selected: config.DefaultMinutes * 60,
		done:     make(chan struct{}),
	}
	engine.remaining = engine.selected
	return engine
}

// SetHooks replaces the completion hooks.
func (engine *Engine) SetHooks(hooks Hooks) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.hooks = hooks
}

// Subscribe registers a new observer channel. Events are dropped for
// observers whose buffer is full. The channel is closed by Close.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		close(ch)
		return ch
	}
	engine.events = append(engine.events, ch)
	return ch
}

// Snapshot returns the current state without side effects.
func (engine *Engine) Snapshot() Snapshot {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.snapshotLocked()
}

// Presets returns the configured preset list.
func (engine *Engine) Presets() []model.Preset {
	return append([]model.Preset(nil), engine.config.Presets...)
}

// Start begins or resumes the countdown.
func (engine *Engine) Start() error {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		return ErrClosed
	}
	if engine.state != StateIdle && engine.state != StatePaused {
		return engine.invalidLocked(TransitionStart)
	}

	previous := engine.state
	engine.state = StateRunning
	engine.lastTick = engine.clock.Now()
	engine.runStarted = engine.lastTick
	engine.stalled = false
	engine.startPumpLocked()
	engine.source.Start()
	engine.emitStateLocked(TransitionStart, previous)
	return nil
}

// Pause freezes a running countdown.
func (engine *Engine) Pause() error {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		return ErrClosed
	}
	if engine.state != StateRunning {
		return engine.invalidLocked(TransitionPause)
	}

	engine.state = StatePaused
	engine.stalled = false
	engine.source.Stop()
	engine.emitStateLocked(TransitionPause, StateRunning)
	return nil
}

// Reset returns to Idle with the full selected duration. It is legal in every state.
func (engine *Engine) Reset() error {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		return ErrClosed
	}

	previous := engine.state
	engine.state = StateIdle
	engine.remaining = engine.selected
	engine.stalled = false
	engine.source.Stop()
	engine.emitStateLocked(TransitionReset, previous)
	return nil
}

// SelectPreset switches to another preset and returns to Idle. It is not
// legal while the countdown is running.
func (engine *Engine) SelectPreset(minutes int) error {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		return ErrClosed
	}
	if engine.state == StateRunning {
		return engine.invalidLocked(TransitionSelectPreset)
	}
	preset, ok := engine.config.Find(minutes)
	if !ok {
		return fmt.Errorf("%w: %d minutes", ErrUnknownPreset, minutes)
	}

	previous := engine.state
	engine.selected = preset.Seconds()
	engine.remaining = engine.selected
	engine.state = StateIdle
	engine.source.Stop()
	engine.emitStateLocked(TransitionSelectPreset, previous)
	return nil
}

// Tick consumes one elapsed second and reports whether it was applied.
// Ticks arriving while the engine is not running are dropped.
//
// Completion is decided from the value before the decrement, so the tick
// that reaches zero finishes the countdown and remaining never goes negative.
func (engine *Engine) Tick() bool {
	return engine.apply(time.Time{})
}

// apply consumes one tick. A tick fired at or before the current run began
// belongs to an earlier run and is dropped. A zero firedAt is always current.
func (engine *Engine) apply(firedAt time.Time) bool {
	engine.mu.Lock()
	if engine.closed || engine.state != StateRunning {
		engine.mu.Unlock()
		return false
	}
	if !firedAt.IsZero() && !firedAt.After(engine.runStarted) {
		engine.mu.Unlock()
		return false
	}

	now := engine.clock.Now()
	engine.lastTick = now
	if engine.stalled {
		engine.stalled = false
		engine.emitLocked(Event{
			Type:     EventTickRestored,
			Snapshot: engine.snapshotLocked(),
			At:       now,
		})
	}

	if engine.remaining > 1 {
		engine.remaining--
		engine.emitLocked(Event{
			Type:       EventProgress,
			Transition: TransitionTick,
			Previous:   StateRunning,
			Snapshot:   engine.snapshotLocked(),
			At:         now,
		})
		engine.mu.Unlock()
		return true
	}

	engine.remaining = 0
	engine.state = StateFinished
	engine.source.Stop()
	engine.completions++
	completion := Completion{
		Seq:             engine.completions,
		SelectedSeconds: engine.selected,
		At:              now,
	}
	engine.emitStateLocked(TransitionTick, StateRunning)
	engine.emitLocked(Event{
		Type:       EventFinished,
		Transition: TransitionTick,
		Previous:   StateRunning,
		Snapshot:   engine.snapshotLocked(),
		Completion: completion.Seq,
		At:         now,
	})
	hooks := engine.hooks
	engine.mu.Unlock()

	if hooks.OnFinish != nil {
		hooks.OnFinish(completion)
	}
	if hooks.EnsureVisible != nil {
		hooks.EnsureVisible()
	}
	return true
}

// Watch checks tick delivery until ctx is cancelled or the engine is closed.
func (engine *Engine) Watch(ctx context.Context) {
	ticker := engine.clock.NewTicker(engine.config.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-engine.done:
			return
		case <-ticker.Chan():
			engine.CheckStall()
		}
	}
}

// CheckStall marks a running engine as stalled when no tick was consumed
// for StallAfter, and restarts the tick source. While stalled it retries
// every StallAfter. It reports whether a restart happened.
func (engine *Engine) CheckStall() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed || engine.state != StateRunning {
		return false
	}
	now := engine.clock.Now()
	idle := now.Sub(engine.lastTick)
	if idle < engine.config.StallAfter {
		return false
	}

	engine.stalled = true
	engine.lastTick = now
	log.Printf("focus timer: no tick for %s, restarting tick source", idle)
	engine.source.Stop()
	engine.source.Start()
	engine.emitLocked(Event{
		Type:     EventTickStall,
		Snapshot: engine.snapshotLocked(),
		Message:  fmt.Sprintf("no tick for %s", idle),
		At:       now,
	})
	return true
}

// Close stops counting, releases the tick source and closes observers.
func (engine *Engine) Close() error {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return nil
	}
	engine.closed = true
	close(engine.done)
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	err := engine.source.Close()
	engine.wg.Wait()
	for _, ch := range events {
		close(ch)
	}
	if err != nil {
		return fmt.Errorf("close tick source: %w", err)
	}
	return nil
}

func (engine *Engine) startPumpLocked() {
	if engine.pumping {
		return
	}
	engine.pumping = true
	engine.wg.Add(1)
	go engine.pump(engine.source.Ticks())
}

func (engine *Engine) pump(delivered <-chan ticks.Tick) {
	defer engine.wg.Done()
	for {
		select {
		case <-engine.done:
			return
		case tick, ok := <-delivered:
			if !ok {
				return
			}
			engine.apply(tick.At)
		}
	}
}

func (engine *Engine) invalidLocked(transition Transition) error {
	return fmt.Errorf("%w: cannot %s while %s", ErrInvalidTransition, transition, engine.state)
}

func (engine *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		State:            engine.state,
		RemainingSeconds: engine.remaining,
		SelectedSeconds:  engine.selected,
		Stalled:          engine.stalled,
	}
}

func (engine *Engine) emitStateLocked(transition Transition, previous State) {
	engine.emitLocked(Event{
		Type:       EventStateChange,
		Transition: transition,
		Previous:   previous,
		Snapshot:   engine.snapshotLocked(),
		At:         engine.clock.Now(),
	})
}

func (engine *Engine) emitLocked(event Event) {
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}
