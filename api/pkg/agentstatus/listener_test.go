package agentstatus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixml/geveze/api/pkg/types"
)

type fakeSource struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]DataHandler
}

func newFakeSource() *fakeSource {
	return &fakeSource{handlers: map[int]DataHandler{}}
}

func (s *fakeSource) SubscribeData(handler DataHandler) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.handlers[id] = handler
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.handlers, id)
	}
}

func (s *fakeSource) emit(topic, payload string) {
	s.mu.Lock()
	handlers := make([]DataHandler, 0, len(s.handlers))
	for _, h := range s.handlers {
		handlers = append(handlers, h)
	}
	s.mu.Unlock()
	for _, h := range handlers {
		h(topic, []byte(payload))
	}
}

func (s *fakeSource) registered() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handlers)
}

func TestListener_AcceptsAgentStatus(t *testing.T) {
	received := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	l := NewListener()
	l.now = func() time.Time { return received }

	var events []types.AgentStatusEvent
	l.OnStatus(func(e types.AgentStatusEvent) { events = append(events, e) })

	source := newFakeSource()
	detach := l.Attach(source)
	defer detach()

	source.emit("agent_status", `{"type":"agent_status","status":"agent_ready","message":"ready to talk"}`)

	latest, ok := l.Latest()
	require.True(t, ok)
	assert.Equal(t, "agent_ready", latest.Status)
	assert.Equal(t, "ready to talk", latest.Message)
	assert.Equal(t, received, latest.ObservedAt)
	assert.True(t, latest.IsReady())
	require.Len(t, events, 1)
}

func TestListener_LatestOnly(t *testing.T) {
	l := NewListener()
	source := newFakeSource()
	defer l.Attach(source)()

	source.emit("agent_status", `{"type":"agent_status","status":"warming_up"}`)
	source.emit("agent_status", `{"type":"agent_status","status":"agent_ready"}`)
	source.emit("agent_status", `{"type":"agent_status","status":"thinking"}`)

	latest, ok := l.Latest()
	require.True(t, ok)
	assert.Equal(t, "thinking", latest.Status)
	assert.False(t, latest.IsReady())
}

func TestListener_IgnoresInvalidMessages(t *testing.T) {
	l := NewListener()
	calls := 0
	l.OnStatus(func(types.AgentStatusEvent) { calls++ })

	source := newFakeSource()
	defer l.Attach(source)()

	source.emit("chat", `{"type":"agent_status","status":"agent_ready"}`)
	source.emit("agent_status", `not json`)
	source.emit("agent_status", `[1,2,3]`)
	source.emit("agent_status", `null`)
	source.emit("agent_status", `{"type":"transcript","status":"agent_ready"}`)
	source.emit("agent_status", `{"type":"agent_status","status":""}`)
	source.emit("agent_status", `{"type":"agent_status","status":"   "}`)
	source.emit("agent_status", `{"type":"agent_status"}`)

	_, ok := l.Latest()
	assert.False(t, ok)
	assert.Equal(t, 0, calls)
}

func TestListener_DetachUnsubscribesAndClears(t *testing.T) {
	l := NewListener()
	calls := 0
	l.OnStatus(func(types.AgentStatusEvent) { calls++ })

	source := newFakeSource()
	detach := l.Attach(source)
	require.Equal(t, 1, source.registered())

	source.emit("agent_status", `{"type":"agent_status","status":"agent_ready"}`)
	detach()

	assert.Equal(t, 0, source.registered())
	_, ok := l.Latest()
	assert.False(t, ok)

	// a handler captured before detach must stay inert
	source.emit("agent_status", `{"type":"agent_status","status":"agent_ready"}`)
	assert.Equal(t, 1, calls)

	detach()
	assert.Equal(t, 0, source.registered())
}

func TestListener_ReattachReplacesRegistration(t *testing.T) {
	l := NewListener()
	first := newFakeSource()
	second := newFakeSource()

	staleDetach := l.Attach(first)
	source := second
	defer l.Attach(source)()

	assert.Equal(t, 0, first.registered(), "the previous session handler must not leak")
	assert.Equal(t, 1, second.registered())

	first.emit("agent_status", `{"type":"agent_status","status":"agent_ready"}`)
	_, ok := l.Latest()
	assert.False(t, ok)

	// detaching the stale attachment leaves the current one alone
	staleDetach()
	assert.Equal(t, 1, second.registered())

	second.emit("agent_status", `{"type":"agent_status","status":"agent_ready"}`)
	_, ok = l.Latest()
	assert.True(t, ok)
}

func TestParseMessage(t *testing.T) {
	msg, ok := ParseMessage(types.AgentStatusTopic, []byte(`{"type":"agent_status","status":"listening","message":"hi","extra":1}`))
	require.True(t, ok)
	assert.Equal(t, "listening", msg.Status)
	assert.Equal(t, "hi", msg.Message)

	_, ok = ParseMessage("", []byte(`{"type":"agent_status","status":"agent_ready"}`))
	assert.False(t, ok)
}
