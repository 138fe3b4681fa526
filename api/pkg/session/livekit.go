package session

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/avast/retry-go/v4"
	lksdk "github.com/livekit/server-sdk-go/v2"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/rs/zerolog/log"

	"github.com/helixml/geveze/api/pkg/agentstatus"
)

const (
	DefaultConnectAttempts = 2
	connectRetryDelay      = 500 * time.Millisecond
)

type LiveKitConnector struct {
	attempts uint
	delay    time.Duration
	// swapped in tests
	connect func(url, token string, cb *lksdk.RoomCallback) (room, error)
}

// room is the part of *lksdk.Room we use
type room interface {
	Name() string
	Disconnect()
}

var _ Connector = &LiveKitConnector{}

func NewLiveKitConnector(attempts uint) *LiveKitConnector {
	if attempts == 0 {
		attempts = DefaultConnectAttempts
	}
	return &LiveKitConnector{
		attempts: attempts,
		delay:    connectRetryDelay,
		connect: func(url, token string, cb *lksdk.RoomCallback) (room, error) {
			return lksdk.ConnectToRoomWithToken(url, token, cb, lksdk.WithAutoSubscribe(false))
		},
	}
}

func (c *LiveKitConnector) Connect(ctx context.Context, serverURL, token string, callbacks Callbacks) (Session, error) {
	s := &LiveKitSession{
		handlers: xsync.NewMapOf[uint64, agentstatus.DataHandler](),
	}

	cb := lksdk.NewRoomCallback()
	cb.ParticipantCallback.OnDataPacket = func(data lksdk.DataPacket, params lksdk.DataReceiveParams) {
		packet, ok := data.(*lksdk.UserDataPacket)
		if !ok {
			return
		}
		s.deliver(packet.Topic, packet.Payload)
	}
	cb.OnReconnected = func() {
		log.Info().Str("room_name", s.RoomName()).Msg("session reconnected")
		if callbacks.OnReconnected != nil {
			callbacks.OnReconnected(s.RoomName())
		}
	}
	cb.OnDisconnectedWithReason = func(reason lksdk.DisconnectionReason) {
		// closing the session ourselves is not an event
		if s.closed.Load() {
			return
		}
		log.Info().Str("room_name", s.RoomName()).Str("reason", string(reason)).Msg("session disconnected")
		if callbacks.OnDisconnected != nil {
			callbacks.OnDisconnected(string(reason))
		}
	}

	r, err := retry.DoWithData(
		func() (room, error) {
			return c.connect(serverURL, token, cb)
		},
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().Err(err).Uint("attempt", n+1).Msg("failed to connect to room, retrying")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", serverURL, err)
	}

	s.setRoom(r)
	log.Info().Str("room_name", r.Name()).Msg("session connected")
	return s, nil
}

// LiveKitSession fans room data packets out to the subscribed handlers
type LiveKitSession struct {
	mu       sync.RWMutex
	room     room
	handlers *xsync.MapOf[uint64, agentstatus.DataHandler]
	nextID   atomic.Uint64
	closed   atomic.Bool
}

func (s *LiveKitSession) SubscribeData(handler agentstatus.DataHandler) func() {
	id := s.nextID.Add(1)
	s.handlers.Store(id, handler)
	return func() {
		s.handlers.Delete(id)
	}
}

func (s *LiveKitSession) setRoom(r room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.room = r
}

func (s *LiveKitSession) RoomName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.room == nil {
		return ""
	}
	return s.room.Name()
}

func (s *LiveKitSession) Disconnect() {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}
	s.handlers.Clear()

	s.mu.RLock()
	r := s.room
	s.mu.RUnlock()
	if r != nil {
		r.Disconnect()
	}
}

func (s *LiveKitSession) deliver(topic string, payload []byte) {
	s.handlers.Range(func(_ uint64, handler agentstatus.DataHandler) bool {
		handler(topic, payload)
		return true
	})
}
