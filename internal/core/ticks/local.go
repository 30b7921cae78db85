package ticks

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
)

// Local owns a repeating ticker that exists only while the source is active.
// Stop releases the ticker and waits for its forwarding loop to exit, so no
// tick from a previous activation can leak into the next one.
type Local struct {
	clock    clockwork.Clock
	interval time.Duration

	mu     sync.Mutex
	ticker clockwork.Ticker
	stop   chan struct{}
	exited chan struct{}
	closed bool
	out    chan Tick
	seq    atomic.Uint64
}

var _ Source = (*Local)(nil)

// NewLocal creates an inactive local source.
func NewLocal(clock clockwork.Clock, interval time.Duration) *Local {
	return &Local{
		clock:    clock,
		interval: interval,
		out:      make(chan Tick),
	}
}

// Start creates the ticker if the source is inactive.
func (local *Local) Start() {
	local.mu.Lock()
	defer local.mu.Unlock()
	if local.closed || local.ticker != nil {
		return
	}
	local.ticker = local.clock.NewTicker(local.interval)
	local.stop = make(chan struct{})
	local.exited = make(chan struct{})
	go local.forward(local.ticker, local.stop, local.exited)
}

// Stop releases the ticker if the source is active.
func (local *Local) Stop() {
	local.mu.Lock()
	defer local.mu.Unlock()
	local.stopLocked()
}

// Ticks returns the delivery channel.
func (local *Local) Ticks() <-chan Tick {
	return local.out
}

// Close stops the source and closes the delivery channel.
func (local *Local) Close() error {
	local.mu.Lock()
	defer local.mu.Unlock()
	if local.closed {
		return nil
	}
	local.stopLocked()
	local.closed = true
	close(local.out)
	return nil
}

func (local *Local) stopLocked() {
	if local.ticker == nil {
		return
	}
	local.ticker.Stop()
	close(local.stop)
	<-local.exited
	local.ticker = nil
	local.stop = nil
	local.exited = nil
}

func (local *Local) forward(ticker clockwork.Ticker, stop <-chan struct{}, exited chan<- struct{}) {
	defer close(exited)
	for {
		select {
		case <-stop:
			return
		case at := <-ticker.Chan():
			tick := Tick{Seq: local.seq.Add(1), At: at}
			select {
			case local.out <- tick:
			case <-stop:
				return
			}
		}
	}
}
