package animation

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	config := DefaultConfig()

	assert.InDelta(t, 1.0, Level(config, 0), 1e-9)
	assert.InDelta(t, 0.5, Level(config, config.Steps/2), 1e-9)
	assert.InDelta(t, 0.75, Level(config, config.Steps/4), 1e-9)
	assert.InDelta(t, Level(config, 3), Level(config, config.Steps+3), 1e-9)
	assert.Equal(t, 1.0, Level(Config{MaxLevel: 1}, 5))
}

func TestRange_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	value := Range{Min: time.Second, Max: 2 * time.Second}
	for i := 0; i < 100; i++ {
		got := value.Random(rng)
		assert.GreaterOrEqual(t, got, time.Second)
		assert.Less(t, got, 2*time.Second)
	}
	assert.Equal(t, time.Second, Range{Min: time.Second}.Random(rng))
}

func TestEngine_PulseAndStop(t *testing.T) {
	var mu sync.Mutex
	var levels []float64
	engine := New(Config{Period: 10 * time.Millisecond, Steps: 4, MinLevel: 0.5, MaxLevel: 1}, func(level float64) {
		mu.Lock()
		defer mu.Unlock()
		levels = append(levels, level)
	})

	engine.StartPulse(context.Background())
	assert.True(t, engine.Running())
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		for _, level := range levels {
			if level < 0.6 {
				return true
			}
		}
		return false
	}, 2*time.Second, 5*time.Millisecond)

	engine.Stop()
	assert.False(t, engine.Running())
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return levels[len(levels)-1] == 1
	}, 2*time.Second, 5*time.Millisecond)
}

func TestEngine_ParentContextCancels(t *testing.T) {
	done := make(chan float64, 64)
	engine := New(Config{Period: time.Hour, Steps: 1, MinLevel: 0, MaxLevel: 1}, func(level float64) {
		select {
		case done <- level:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	engine.StartPulse(ctx)
	<-done
	cancel()

	select {
	case level := <-done:
		assert.Equal(t, 1.0, level)
	case <-time.After(2 * time.Second):
		t.Fatal("pulse did not stop with its context")
	}
}
