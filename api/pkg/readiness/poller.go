package readiness

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/helixml/geveze/api/pkg/types"
)

//go:generate mockgen -source $GOFILE -destination poller_mocks.go -package $GOPACKAGE

const DefaultInterval = 4 * time.Second

var ErrAlreadyRunning = errors.New("poller already running")

// StatusSource is the external status endpoint being polled
type StatusSource interface {
	AgentStatus(ctx context.Context) (*types.AgentStatusResponse, error)
}

type Option func(*Poller)

func WithInterval(interval time.Duration) Option {
	return func(p *Poller) {
		if interval > 0 {
			p.interval = interval
		}
	}
}

// WithClock overrides the time source used to stamp snapshots
func WithClock(now func() time.Time) Option {
	return func(p *Poller) {
		p.now = now
	}
}

// Poller queries a StatusSource on a fixed period and keeps the latest snapshot.
// Failed polls do not keep stale data around, they produce a not ready snapshot
// carrying the failure reason. The fixed period is the only retry mechanism.
type Poller struct {
	source   StatusSource
	interval time.Duration
	now      func() time.Time

	mu          sync.RWMutex
	latest      types.ReadinessSnapshot
	subscribers []func(types.ReadinessSnapshot)
	cancel      context.CancelFunc
	done        chan struct{}
}

func New(source StatusSource, opts ...Option) *Poller {
	p := &Poller{
		source:   source,
		interval: DefaultInterval,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// OnSnapshot registers a callback for every new snapshot. Callbacks run on the
// polling goroutine and must not call Stop.
func (p *Poller) OnSnapshot(fn func(types.ReadinessSnapshot)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers = append(p.subscribers, fn)
}

// Start polls once immediately and then every interval until Stop or ctx is done
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		return ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})

	go p.run(ctx, p.done)

	log.Debug().Dur("interval", p.interval).Msg("readiness poller started")
	return nil
}

// Stop halts the timer, waits for an in flight poll to be abandoned and discards
// the latest snapshot. No snapshot is delivered after Stop returns.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel = nil
	p.done = nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done

	p.mu.Lock()
	p.latest = types.ReadinessSnapshot{}
	p.mu.Unlock()

	log.Debug().Msg("readiness poller stopped")
}

func (p *Poller) Latest() types.ReadinessSnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.latest
}

func (p *Poller) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

// poll performs exactly one request and records the result
func (p *Poller) poll(ctx context.Context) {
	// a slow endpoint must not stack requests, one interval is the budget
	reqCtx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	resp, err := p.source.AgentStatus(reqCtx)
	if ctx.Err() != nil {
		return
	}

	var snapshot types.ReadinessSnapshot
	if err != nil {
		log.Debug().Err(err).Msg("readiness poll failed")
		snapshot = types.ReadinessSnapshot{
			Ready:      false,
			Message:    err.Error(),
			ObservedAt: p.now(),
		}
	} else {
		snapshot = SnapshotFromResponse(resp, p.now())
	}

	p.mu.Lock()
	p.latest = snapshot
	subscribers := make([]func(types.ReadinessSnapshot), len(p.subscribers))
	copy(subscribers, p.subscribers)
	p.mu.Unlock()

	for _, fn := range subscribers {
		fn(snapshot)
	}
}

// SnapshotFromResponse converts a status endpoint body into a snapshot. When the
// backend reports not ready without a message, the first pending model explains why.
func SnapshotFromResponse(resp *types.AgentStatusResponse, observedAt time.Time) types.ReadinessSnapshot {
	if resp == nil {
		return types.ReadinessSnapshot{
			Ready:      false,
			Message:    "empty status response",
			ObservedAt: observedAt,
		}
	}

	snapshot := types.ReadinessSnapshot{
		Ready:       resp.Ready,
		Message:     resp.Message,
		ModelStates: resp.Models,
		ObservedAt:  observedAt,
	}

	if !snapshot.Ready && snapshot.Message == "" {
		for _, name := range []string{types.ModelSTT, types.ModelTTS, types.ModelLLM} {
			state, ok := resp.Models[name]
			if ok && state.State != types.ModelStateReady && state.Message != "" {
				snapshot.Message = state.Message
				break
			}
		}
	}
	return snapshot
}
