package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/helixml/geveze/api/pkg/pubsub"
	"github.com/helixml/geveze/api/pkg/types"
)

var statusWebsocketUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(*http.Request) bool {
		return true
	},
}

// startStatusPublisher runs the gateway side readiness poller and publishes
// every snapshot for the status websockets
func (apiServer *GatewayServer) startStatusPublisher(ctx context.Context) error {
	apiServer.poller.OnSnapshot(func(snapshot types.ReadinessSnapshot) {
		payload, err := json.Marshal(snapshot)
		if err != nil {
			log.Error().Err(err).Msg("failed to encode readiness snapshot")
			return
		}
		if err := apiServer.pubsub.Publish(ctx, pubsub.AgentStatusTopic, payload); err != nil {
			log.Error().Err(err).Msg("failed to publish readiness snapshot")
		}
	})
	return apiServer.poller.Start(ctx)
}

// startStatusWebSocketServer streams readiness snapshots, starting with the
// latest one known
func (apiServer *GatewayServer) startStatusWebSocketServer(
	_ context.Context,
	r *mux.Router,
	path string,
) {
	r.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		conn, err := statusWebsocketUpgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Error().Msgf("Error upgrading websocket: %s", err.Error())
			return
		}
		defer conn.Close()

		var wsMu sync.Mutex
		write := func(payload []byte) error {
			wsMu.Lock()
			defer wsMu.Unlock()
			return conn.WriteMessage(websocket.TextMessage, payload)
		}

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()
		go func() {
			ticker := time.NewTicker(15 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					wsMu.Lock()
					err := conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(5*time.Second))
					wsMu.Unlock()
					if err != nil {
						log.Debug().Err(err).Msg("status websocket ping failed, connection closing")
						return
					}
				}
			}
		}()

		if latest := apiServer.poller.Latest(); !latest.ObservedAt.IsZero() {
			payload, err := json.Marshal(latest)
			if err == nil {
				if err := write(payload); err != nil {
					return
				}
			}
		}

		sub, err := apiServer.pubsub.Subscribe(ctx, pubsub.AgentStatusTopic, func(payload []byte) error {
			if writeErr := write(payload); writeErr != nil {
				log.Debug().Err(writeErr).Msg("failed to write to status websocket")
			}
			return nil
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to subscribe to readiness snapshots")
			return
		}
		defer func() {
			if err := sub.Unsubscribe(); err != nil {
				log.Error().Msgf("failed to unsubscribe: %v", err)
			}
		}()

		log.Trace().Str("remote", r.RemoteAddr).Msg("status websocket connected")

		// block until the client goes away
		for {
			messageType, _, err := conn.ReadMessage()
			if err != nil {
				log.Trace().Msgf("Client disconnected: %s", err.Error())
				break
			}
			if messageType == websocket.CloseMessage {
				break
			}
		}
	})
}
