package types

type TokenRequest struct {
	UserName  string `json:"user_name"`
	RoomName  string `json:"room_name,omitempty"`
	AgentName string `json:"agent_name,omitempty"`
}

// TokenResponse carries everything a participant needs to join a room
type TokenResponse struct {
	Token           string `json:"token"`
	ServerURL       string `json:"livekit_url"`
	RoomName        string `json:"room_name"`
	ParticipantName string `json:"participant_name"`
	UserIdentity    string `json:"user_identity"`
}

type WakeRequest struct {
	RoomName string `json:"room_name"`
	Message  string `json:"message,omitempty"`
}

type WakeResponse struct {
	Status   string `json:"status"`
	RoomName string `json:"room_name,omitempty"`
	Message  string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}
