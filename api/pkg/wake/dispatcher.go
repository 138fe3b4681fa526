package wake

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/helixml/geveze/api/pkg/types"
)

//go:generate mockgen -source $GOFILE -destination dispatcher_mocks.go -package $GOPACKAGE

const DefaultTimeout = 10 * time.Second

// Client sends the wake request, usually the gateway client
type Client interface {
	Wake(ctx context.Context, req *types.WakeRequest) (*types.WakeResponse, error)
}

// Dispatcher asks the backend to greet in a room. It is fire and forget: failures
// are logged and swallowed, duplicate suppression is the caller's job.
type Dispatcher struct {
	client  Client
	timeout time.Duration
}

func NewDispatcher(client Client, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Dispatcher{
		client:  client,
		timeout: timeout,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, roomName, message string) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	started := time.Now()
	resp, err := d.client.Wake(ctx, &types.WakeRequest{
		RoomName: roomName,
		Message:  message,
	})
	if err != nil {
		log.Error().
			Err(err).
			Str("room_name", roomName).
			Dur("elapsed", time.Since(started)).
			Msg("failed to wake agent, it stays silent until the session is restarted")
		return
	}

	l := log.Info().Str("room_name", roomName).Dur("elapsed", time.Since(started))
	if resp != nil && resp.Message != "" {
		l = l.Str("greeting", resp.Message)
	}
	l.Msg("agent woken")
}
