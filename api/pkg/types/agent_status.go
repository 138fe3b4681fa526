package types

import "time"

// AgentStatusTopic is the data channel topic the agent publishes its status on
const AgentStatusTopic = "agent_status"

// AgentStatusReady is the only in-session status the coordinator acts on
const AgentStatusReady = "agent_ready"

// Model subsystems reported by the backend status endpoint
const (
	ModelSTT = "stt"
	ModelTTS = "tts"
	ModelLLM = "llm"
)

// ModelStateReady marks a warmed up subsystem
const ModelStateReady = "ready"

type ModelState struct {
	State     string  `json:"state"`
	Message   string  `json:"message,omitempty"`
	UpdatedAt float64 `json:"updated_at,omitempty"`
}

// AgentStatusResponse is the body of the backend (and gateway) agent status endpoint.
// Timestamp is unix seconds as reported by the backend.
type AgentStatusResponse struct {
	Ready     bool                  `json:"ready"`
	Message   string                `json:"message,omitempty"`
	Models    map[string]ModelState `json:"models,omitempty"`
	Timestamp float64               `json:"timestamp,omitempty"`
}

// ReadinessSnapshot is the latest view of the backend readiness, as seen by a poller.
// A snapshot is superseded by every poll, no history is kept.
type ReadinessSnapshot struct {
	Ready       bool                  `json:"ready"`
	Message     string                `json:"message,omitempty"`
	ModelStates map[string]ModelState `json:"models,omitempty"`
	ObservedAt  time.Time             `json:"observed_at"`
}

// AgentStatusMessage is the payload of a data packet on the agent_status topic
type AgentStatusMessage struct {
	Type    string `json:"type"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// AgentStatusEvent is the latest status reported by the agent from inside the room.
// ObservedAt is the local receipt time, the agent message carries no trusted timestamp.
type AgentStatusEvent struct {
	Status     string    `json:"status"`
	Message    string    `json:"message,omitempty"`
	ObservedAt time.Time `json:"observed_at"`
}

func (e AgentStatusEvent) IsReady() bool {
	return e.Status == AgentStatusReady
}
