// Package coordinator decides when a media session may start and when the agent
// is asked to greet in it. The agent is woken at most once per room, whichever
// readiness signal arrives first.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"

	"github.com/helixml/geveze/api/pkg/agentstatus"
	"github.com/helixml/geveze/api/pkg/session"
	"github.com/helixml/geveze/api/pkg/types"
)

//go:generate mockgen -source $GOFILE -destination coordinator_mocks.go -package $GOPACKAGE

var (
	ErrNotReady       = errors.New("agent backend is not ready yet")
	ErrAlreadyStarted = errors.New("session already started")
	ErrStopped        = errors.New("session stopped while connecting")
)

type TokenClient interface {
	IssueToken(ctx context.Context, req *types.TokenRequest) (*types.TokenResponse, error)
}

type WakeDispatcher interface {
	Dispatch(ctx context.Context, roomName, message string)
}

type StartRequest struct {
	UserName  string
	RoomName  string
	AgentName string
	// WakeMessage overrides the greeting the agent opens with
	WakeMessage string
}

type Coordinator struct {
	tokens    TokenClient
	connector session.Connector
	waker     WakeDispatcher
	listener  *agentstatus.Listener

	ctx    context.Context
	cancel context.CancelFunc
	wakes  conc.WaitGroup

	mu          sync.Mutex
	state       State
	generation  uint64
	readiness   types.ReadinessSnapshot
	agentStatus *types.AgentStatusEvent
	room        string
	pending     string
	dispatched  map[string]struct{}
	wakeMessage string
	session     session.Session
	detach      func()
	observers   []func(StateChange)

	// collected under mu, run once it is released
	changes  []StateChange
	teardown []func()
}

func New(tokens TokenClient, connector session.Connector, waker WakeDispatcher) *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Coordinator{
		tokens:     tokens,
		connector:  connector,
		waker:      waker,
		listener:   agentstatus.NewListener(),
		ctx:        ctx,
		cancel:     cancel,
		state:      StateIdle,
		dispatched: map[string]struct{}{},
	}
	c.listener.OnStatus(func(event types.AgentStatusEvent) {
		c.Handle(AgentStatusChanged{Event: event})
	})
	return c
}

// OnStateChange registers an observer, called outside the coordinator lock
func (c *Coordinator) OnStateChange(fn func(StateChange)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// Handle applies a signal atomically
func (c *Coordinator) Handle(sig Signal) {
	c.mu.Lock()
	c.apply(sig)
	c.unlock()
}

// handleSession applies a signal coming from the session of the given
// generation. Signals from an abandoned session are dropped.
func (c *Coordinator) handleSession(generation uint64, sig Signal) {
	c.mu.Lock()
	if c.generation != generation || c.state == StateIdle {
		c.mu.Unlock()
		log.Debug().Msgf("ignoring %T from a previous session", sig)
		return
	}
	c.apply(sig)
	c.unlock()
}

func (c *Coordinator) Start(ctx context.Context, req StartRequest) error {
	c.mu.Lock()
	if !c.readiness.Ready {
		c.mu.Unlock()
		return ErrNotReady
	}
	if c.state != StateIdle {
		c.mu.Unlock()
		return ErrAlreadyStarted
	}
	c.generation++
	generation := c.generation
	c.wakeMessage = req.WakeMessage
	c.setState(StateConnecting)
	c.unlock()

	room, err := c.connect(ctx, generation, req)
	if err != nil {
		c.mu.Lock()
		if c.generation == generation {
			c.reset()
		}
		c.unlock()
		return err
	}

	c.handleSession(generation, SessionEstablished{Room: room})
	return nil
}

func (c *Coordinator) connect(ctx context.Context, generation uint64, req StartRequest) (string, error) {
	token, err := c.tokens.IssueToken(ctx, &types.TokenRequest{
		UserName:  req.UserName,
		RoomName:  req.RoomName,
		AgentName: req.AgentName,
	})
	if err != nil {
		return "", fmt.Errorf("failed to get session token: %w", err)
	}

	sess, err := c.connector.Connect(ctx, token.ServerURL, token.Token, session.Callbacks{
		OnReconnected: func(roomName string) {
			c.handleSession(generation, SessionEstablished{Room: roomName})
		},
		OnDisconnected: func(reason string) {
			c.handleSession(generation, SessionEnded{Reason: reason})
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to connect session: %w", err)
	}

	c.mu.Lock()
	if c.generation != generation {
		c.mu.Unlock()
		sess.Disconnect()
		return "", ErrStopped
	}
	c.session = sess
	c.mu.Unlock()

	// status messages may arrive before the session is marked established,
	// they are recorded and checked on establishment
	detach := c.listener.Attach(sess)

	c.mu.Lock()
	if c.generation != generation {
		c.mu.Unlock()
		detach()
		return "", ErrStopped
	}
	c.detach = detach
	c.mu.Unlock()

	room := sess.RoomName()
	if room == "" {
		room = token.RoomName
	}
	return room, nil
}

// Stop ends the current session, if any, and returns to idle. Results of a
// connect still in flight are discarded.
func (c *Coordinator) Stop() {
	c.mu.Lock()
	c.reset()
	c.unlock()
}

// Close stops and waits for wake requests in flight
func (c *Coordinator) Close() {
	c.Stop()
	c.wakes.Wait()
	c.cancel()
}

func (c *Coordinator) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	status := Status{
		State:       c.state,
		Room:        c.room,
		PendingRoom: c.pending,
		Readiness:   c.readiness,
	}
	if c.agentStatus != nil {
		event := *c.agentStatus
		status.AgentStatus = &event
	}
	return status
}

// Dispatched reports whether the agent was already woken in the room
func (c *Coordinator) Dispatched(room string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.dispatched[room]
	return ok
}

func (c *Coordinator) apply(sig Signal) {
	switch s := sig.(type) {
	case ReadinessChanged:
		c.readiness = s.Snapshot
	case AgentStatusChanged:
		c.agentStatusChanged(s.Event)
	case SessionEstablished:
		c.sessionEstablished(s.Room)
	case SessionEnded:
		log.Info().Str("room_name", c.room).Str("reason", s.Reason).Msg("session ended")
		c.reset()
	default:
		log.Warn().Msgf("unknown coordinator signal %T", sig)
	}
}

func (c *Coordinator) sessionEstablished(room string) {
	c.room = room

	if _, ok := c.dispatched[room]; ok {
		log.Debug().Str("room_name", room).Msg("agent already woken in room")
		if c.agentReady() {
			c.setState(StateReady)
		} else {
			c.setState(StateWaitingReady)
		}
		return
	}

	if c.agentReady() {
		c.dispatch(room)
		c.setState(StateReady)
		return
	}

	if c.pending != "" && c.pending != room {
		log.Debug().Str("room_name", room).Str("replaced", c.pending).Msg("replacing pending wake")
	}
	c.pending = room
	c.setState(StateWaitingReady)
}

func (c *Coordinator) agentStatusChanged(event types.AgentStatusEvent) {
	// a late message from a session already torn down
	if c.state == StateIdle {
		return
	}
	c.agentStatus = &event
	if !event.IsReady() {
		return
	}

	if pending := c.pending; pending != "" {
		c.pending = ""
		if pending != c.room {
			log.Info().Str("pending", pending).Str("room_name", c.room).Msg("dropping wake for a room the session left")
		} else {
			c.dispatch(pending)
		}
	}

	if _, ok := c.dispatched[c.room]; ok && c.state == StateWaitingReady {
		c.setState(StateReady)
	}
}

func (c *Coordinator) agentReady() bool {
	return c.agentStatus != nil && c.agentStatus.IsReady()
}

// dispatch marks the room before the request goes out, a second trigger for
// the same room sees it as done even while the request is in flight
func (c *Coordinator) dispatch(room string) {
	if _, ok := c.dispatched[room]; ok {
		return
	}
	c.dispatched[room] = struct{}{}

	message := c.wakeMessage
	log.Info().Str("room_name", room).Msg("waking agent")
	c.wakes.Go(func() {
		c.waker.Dispatch(c.ctx, room, message)
	})
}

// reset returns to idle. The dispatched rooms are kept for the lifetime of the
// coordinator.
func (c *Coordinator) reset() {
	c.generation++
	c.room = ""
	c.pending = ""
	c.agentStatus = nil
	c.wakeMessage = ""

	if detach := c.detach; detach != nil {
		c.detach = nil
		c.teardown = append(c.teardown, detach)
	}
	if sess := c.session; sess != nil {
		c.session = nil
		c.teardown = append(c.teardown, sess.Disconnect)
	}
	c.setState(StateIdle)
}

func (c *Coordinator) setState(state State) {
	if c.state == state {
		return
	}
	change := StateChange{From: c.state, To: state, Room: c.room}
	c.state = state
	c.changes = append(c.changes, change)

	log.Debug().
		Str("from", string(change.From)).
		Str("to", string(change.To)).
		Str("room_name", change.Room).
		Msg("coordinator state changed")
}

// unlock releases mu, then runs the teardown and notifications collected while
// it was held. Session callbacks may re-enter Handle from either.
func (c *Coordinator) unlock() {
	teardown := c.teardown
	changes := c.changes
	observers := make([]func(StateChange), len(c.observers))
	copy(observers, c.observers)
	c.teardown = nil
	c.changes = nil
	c.mu.Unlock()

	for _, fn := range teardown {
		fn()
	}
	for _, change := range changes {
		for _, fn := range observers {
			fn(change)
		}
	}
}
