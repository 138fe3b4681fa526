package coordinator

import (
	"github.com/helixml/geveze/api/pkg/types"
)

// Signal is one input of the coordinator state machine. Signals are applied one
// at a time, in the order Handle receives them.
type Signal interface {
	signal()
}

// ReadinessChanged carries a new snapshot from the readiness poller
type ReadinessChanged struct {
	Snapshot types.ReadinessSnapshot
}

// AgentStatusChanged carries a status the agent published inside the room
type AgentStatusChanged struct {
	Event types.AgentStatusEvent
}

// SessionEstablished is sent when the media session is up in Room, on first
// connect and after every reconnect
type SessionEstablished struct {
	Room string
}

type SessionEnded struct {
	Reason string
}

func (ReadinessChanged) signal()   {}
func (AgentStatusChanged) signal() {}
func (SessionEstablished) signal() {}
func (SessionEnded) signal()       {}

type State string

const (
	StateIdle         State = "idle"
	StateConnecting   State = "connecting"
	StateWaitingReady State = "waiting_ready"
	StateReady        State = "ready"
)

type StateChange struct {
	From State
	To   State
	Room string
}

// Status is a point in time view of the coordinator
type Status struct {
	State       State
	Room        string
	PendingRoom string
	Readiness   types.ReadinessSnapshot
	AgentStatus *types.AgentStatusEvent
}
