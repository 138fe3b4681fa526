// Package session connects to the media room as a participant.
package session

import (
	"context"

	"github.com/helixml/geveze/api/pkg/agentstatus"
)

//go:generate mockgen -source $GOFILE -destination session_mocks.go -package $GOPACKAGE

// Callbacks report the lifecycle of a connected session. Both may be nil.
type Callbacks struct {
	// OnReconnected fires after the transport recovered, with the room the
	// session is in now
	OnReconnected func(roomName string)
	OnDisconnected func(reason string)
}

// Session is a connected media session
type Session interface {
	agentstatus.DataSource

	RoomName() string
	Disconnect()
}

type Connector interface {
	Connect(ctx context.Context, serverURL, token string, callbacks Callbacks) (Session, error)
}
