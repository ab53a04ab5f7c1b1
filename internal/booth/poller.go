package booth

import (
	"sync"
	"time"
)

// DefaultPollInterval is how often the reel refreshes while a transform
// is in flight.
const DefaultPollInterval = 2 * time.Second

// Poller invokes a refresh function at a fixed interval. It is started
// when a transform begins and stopped when it settles; Stop performs one
// final synchronous refresh so the reel reflects the just-completed
// transform. At most one loop runs at a time: Start while running is a
// no-op.
type Poller struct {
	interval time.Duration
	refresh  func()

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewPoller creates a poller calling refresh every interval.
func NewPoller(interval time.Duration, refresh func()) *Poller {
	return &Poller{interval: interval, refresh: refresh}
}

// Start launches the polling loop. Idempotent while running.
func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stop != nil {
		return
	}
	p.stop = make(chan struct{})
	p.done = make(chan struct{})
	go p.loop(p.stop, p.done)
}

func (p *Poller) loop(stop, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			p.refresh()
		case <-stop:
			return
		}
	}
}

// Stop halts the polling loop, waits for it to exit, then performs the
// final refresh. Stopping an idle poller is a no-op.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stop == nil {
		return
	}
	close(p.stop)
	<-p.done
	p.stop = nil
	p.done = nil
	p.refresh()
}

// Running reports whether the polling loop is active.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stop != nil
}
