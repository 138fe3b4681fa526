// Package agentstatus follows the status the agent publishes on the room data channel.
package agentstatus

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/helixml/geveze/api/pkg/types"
)

// DataHandler receives every data message of a session
type DataHandler func(topic string, payload []byte)

// DataSource is the side channel of a connected media session
type DataSource interface {
	SubscribeData(handler DataHandler) (unsubscribe func())
}

// Listener keeps the latest agent status reported inside the room. Only one
// source is attached at a time and nothing survives a detach.
type Listener struct {
	now func() time.Time

	mu          sync.Mutex
	generation  uint64
	unsubscribe func()
	latest      *types.AgentStatusEvent
	subscribers []func(types.AgentStatusEvent)
}

func NewListener() *Listener {
	return &Listener{now: time.Now}
}

// OnStatus registers a callback for every accepted status update
func (l *Listener) OnStatus(fn func(types.AgentStatusEvent)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.subscribers = append(l.subscribers, fn)
}

// Attach subscribes to the source, replacing any previous attachment. The
// returned func detaches, it is safe to call more than once.
func (l *Listener) Attach(source DataSource) (detach func()) {
	l.Detach()

	l.mu.Lock()
	l.generation++
	generation := l.generation
	l.mu.Unlock()

	unsubscribe := source.SubscribeData(func(topic string, payload []byte) {
		l.handle(generation, topic, payload)
	})

	l.mu.Lock()
	if l.generation != generation {
		// detached or re-attached while subscribing
		l.mu.Unlock()
		unsubscribe()
		return func() {}
	}
	l.unsubscribe = unsubscribe
	l.mu.Unlock()

	return func() { l.detach(generation) }
}

// Detach drops the current attachment and the latest status
func (l *Listener) Detach() {
	l.mu.Lock()
	generation := l.generation
	l.mu.Unlock()
	l.detach(generation)
}

func (l *Listener) detach(generation uint64) {
	l.mu.Lock()
	if l.generation != generation {
		l.mu.Unlock()
		return
	}
	// any handler registered under the old generation is now inert
	l.generation++
	unsubscribe := l.unsubscribe
	l.unsubscribe = nil
	l.latest = nil
	l.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// Latest returns the most recent accepted status, if any
func (l *Listener) Latest() (types.AgentStatusEvent, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.latest == nil {
		return types.AgentStatusEvent{}, false
	}
	return *l.latest, true
}

func (l *Listener) handle(generation uint64, topic string, payload []byte) {
	msg, ok := ParseMessage(topic, payload)
	if !ok {
		return
	}

	event := types.AgentStatusEvent{
		Status:     msg.Status,
		Message:    msg.Message,
		ObservedAt: l.now(),
	}

	l.mu.Lock()
	if l.generation != generation {
		l.mu.Unlock()
		return
	}
	l.latest = &event
	subscribers := make([]func(types.AgentStatusEvent), len(l.subscribers))
	copy(subscribers, l.subscribers)
	l.mu.Unlock()

	log.Debug().Str("status", event.Status).Str("message", event.Message).Msg("agent status received")

	for _, fn := range subscribers {
		fn(event)
	}
}

// ParseMessage accepts only agent status messages on the agent status topic with
// a non empty status. Anything else, malformed payloads included, is rejected.
func ParseMessage(topic string, payload []byte) (types.AgentStatusMessage, bool) {
	if topic != types.AgentStatusTopic {
		return types.AgentStatusMessage{}, false
	}

	var msg types.AgentStatusMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return types.AgentStatusMessage{}, false
	}
	if msg.Type != types.AgentStatusTopic || strings.TrimSpace(msg.Status) == "" {
		return types.AgentStatusMessage{}, false
	}
	return msg, true
}
