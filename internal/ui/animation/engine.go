package animation

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"
)

// Range defines a duration range with random sampling.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// Random returns a random duration within the range.
func (value Range) Random(rng *rand.Rand) time.Duration {
	if value.Max <= value.Min {
		return value.Min
	}
	delta := value.Max - value.Min
	return value.Min + time.Duration(rng.Int63n(int64(delta)))
}

// Config contains pulse timing values.
type Config struct {
	// Period is one fade out and back in.
	Period time.Duration
	Steps  int

	MinLevel float64
	MaxLevel float64

	// Rest is the pause at full level between pulses.
	Rest Range
}

// Engine drives a looping opacity pulse.
type Engine struct {
	mu     sync.Mutex
	config Config
	update func(level float64)
	cancel context.CancelFunc
	rng    *rand.Rand
}

// New creates a new animation engine. update receives levels between
// MinLevel and MaxLevel and is called from the animation goroutine.
func New(config Config, update func(level float64)) *Engine {
	if config.Steps <= 0 {
		config.Steps = 1
	}
	return &Engine{
		config: config,
		update: update,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// StartPulse starts the pulse loop, replacing any active one.
func (engine *Engine) StartPulse(ctx context.Context) {
	engine.start(ctx, func(runCtx context.Context) {
		defer engine.update(engine.config.MaxLevel)
		frame := engine.config.Period / time.Duration(engine.config.Steps)
		for {
			for step := 0; step < engine.config.Steps; step++ {
				engine.update(Level(engine.config, step))
				if !sleepWithContext(runCtx, frame) {
					return
				}
			}
			engine.update(engine.config.MaxLevel)
			if !sleepWithContext(runCtx, engine.config.Rest.Random(engine.rng)) {
				return
			}
		}
	})
}

// Stop terminates any active animation. The level returns to MaxLevel.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

// Running reports whether a pulse loop is active.
func (engine *Engine) Running() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.cancel != nil
}

// Level returns the pulse level for a step. Step 0 is MaxLevel and the
// middle step is MinLevel.
func Level(config Config, step int) float64 {
	if config.Steps <= 0 {
		return config.MaxLevel
	}
	phase := float64(step%config.Steps) / float64(config.Steps)
	span := config.MaxLevel - config.MinLevel
	return config.MinLevel + span*(1+math.Cos(2*math.Pi*phase))/2
}

func (engine *Engine) start(parent context.Context, run func(context.Context)) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(parent)
	engine.cancel = cancel
	engine.mu.Unlock()

	go run(runCtx)
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
