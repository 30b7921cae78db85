package ticks

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type command int

const (
	commandStart command = iota
	commandStop
	commandClose
)

// Worker runs its ticker on a dedicated goroutine controlled through a
// command mailbox. The goroutine is spawned on the first Start and lives
// until Close, so counting keeps going regardless of what the UI is doing.
//
// Ticks that fire while a previous tick is still undelivered are queued and
// handed over one at a time. The queue is dropped on Stop.
type Worker struct {
	clock    clockwork.Clock
	interval time.Duration

	mu       sync.Mutex
	spawned  bool
	closed   bool
	commands chan command
	out      chan Tick
	exited   chan struct{}
}

var _ Source = (*Worker)(nil)

// NewWorker creates an inactive worker source.
func NewWorker(clock clockwork.Clock, interval time.Duration) *Worker {
	return &Worker{
		clock:    clock,
		interval: interval,
		commands: make(chan command),
		out:      make(chan Tick),
		exited:   make(chan struct{}),
	}
}

// Start asks the worker to begin ticking.
func (worker *Worker) Start() {
	worker.send(commandStart)
}

// Stop asks the worker to stop ticking and discard undelivered ticks.
func (worker *Worker) Stop() {
	worker.send(commandStop)
}

// Ticks returns the delivery channel.
func (worker *Worker) Ticks() <-chan Tick {
	return worker.out
}

// Close terminates the worker goroutine and closes the delivery channel.
func (worker *Worker) Close() error {
	worker.mu.Lock()
	if worker.closed {
		worker.mu.Unlock()
		return nil
	}
	worker.closed = true
	if !worker.spawned {
		close(worker.out)
		close(worker.exited)
		worker.mu.Unlock()
		return nil
	}
	worker.commands <- commandClose
	worker.mu.Unlock()

	<-worker.exited
	return nil
}

func (worker *Worker) send(cmd command) {
	worker.mu.Lock()
	defer worker.mu.Unlock()
	if worker.closed {
		return
	}
	if !worker.spawned {
		if cmd != commandStart {
			return
		}
		worker.spawned = true
		go worker.run()
	}
	worker.commands <- cmd
}

func (worker *Worker) run() {
	defer close(worker.exited)
	defer close(worker.out)

	var (
		ticker  clockwork.Ticker
		backlog []Tick
		seq     uint64
	)
	stopTicker := func() {
		if ticker != nil {
			ticker.Stop()
			ticker = nil
		}
		backlog = nil
	}
	defer stopTicker()

	for {
		var tickC <-chan time.Time
		if ticker != nil {
			tickC = ticker.Chan()
		}
		var out chan<- Tick
		var next Tick
		if len(backlog) > 0 {
			out = worker.out
			next = backlog[0]
		}

		select {
		case cmd := <-worker.commands:
			switch cmd {
			case commandStart:
				if ticker == nil {
					ticker = worker.clock.NewTicker(worker.interval)
				}
			case commandStop:
				stopTicker()
			case commandClose:
				return
			}
		case at := <-tickC:
			seq++
			backlog = append(backlog, Tick{Seq: seq, At: at})
		case out <- next:
			backlog = backlog[1:]
		}
	}
}
