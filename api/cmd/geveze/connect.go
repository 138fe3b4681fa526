package geveze

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/helixml/geveze/api/pkg/client"
	"github.com/helixml/geveze/api/pkg/config"
	"github.com/helixml/geveze/api/pkg/coordinator"
	"github.com/helixml/geveze/api/pkg/readiness"
	"github.com/helixml/geveze/api/pkg/session"
	"github.com/helixml/geveze/api/pkg/system"
	"github.com/helixml/geveze/api/pkg/types"
	"github.com/helixml/geveze/api/pkg/wake"
)

type connectOptions struct {
	Name    string
	Room    string
	Agent   string
	Message string
}

func newConnectCmd() *cobra.Command {
	var opts connectOptions

	connectCmd := &cobra.Command{
		Use:   "connect",
		Short: "Join a room and wake the agent once it is ready.",
		Long: `Waits until the agent backend reports ready, joins a room as a participant and
asks the agent to greet exactly once, as soon as the agent confirms it is ready
inside the room. Runs until interrupted or the session ends.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadCliConfig()
			if err != nil {
				return err
			}
			system.SetupLogging(cfg.LogLevel)

			if cmd.Flags().Changed("name") {
				cfg.UserName = opts.Name
			}
			if cmd.Flags().Changed("room") {
				cfg.RoomName = opts.Room
			}
			if cmd.Flags().Changed("agent") {
				cfg.AgentName = opts.Agent
			}
			if cmd.Flags().Changed("message") {
				cfg.WakeMessage = opts.Message
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return connect(ctx, cfg)
		},
	}

	connectCmd.Flags().StringVar(&opts.Name, "name", "", "Display name in the room (GEVEZE_USER_NAME)")
	connectCmd.Flags().StringVar(&opts.Room, "room", "", "Room to join, generated when empty (GEVEZE_ROOM_NAME)")
	connectCmd.Flags().StringVar(&opts.Agent, "agent", "", "Agent to dispatch into the room (GEVEZE_AGENT_NAME)")
	connectCmd.Flags().StringVar(&opts.Message, "message", "", "What the agent opens with (GEVEZE_WAKE_MESSAGE)")

	return connectCmd
}

func connect(ctx context.Context, cfg config.ClientConfig) error {
	return runSession(ctx, cfg, client.NewClientFromConfig(cfg), session.NewLiveKitConnector(cfg.ConnectAttempts))
}

// runSession polls the backend, starts a session once it is ready and blocks
// until ctx is done or the session ends.
func runSession(ctx context.Context, cfg config.ClientConfig, apiClient client.Client, connector session.Connector) error {
	coord := coordinator.New(
		apiClient,
		connector,
		wake.NewDispatcher(apiClient, wake.DefaultTimeout),
	)
	defer coord.Close()

	ended := make(chan struct{}, 1)
	coord.OnStateChange(func(change coordinator.StateChange) {
		log.Info().
			Str("state", string(change.To)).
			Str("room_name", change.Room).
			Msg("session state")
		if change.To == coordinator.StateIdle {
			select {
			case ended <- struct{}{}:
			default:
			}
		}
	})

	ready := make(chan struct{}, 1)
	poller := readiness.New(apiClient, readiness.WithInterval(cfg.PollInterval))
	poller.OnSnapshot(func(snapshot types.ReadinessSnapshot) {
		coord.Handle(coordinator.ReadinessChanged{Snapshot: snapshot})
		if !snapshot.Ready {
			log.Info().Str("message", snapshot.Message).Msg("waiting for agent backend")
			return
		}
		select {
		case ready <- struct{}{}:
		default:
		}
	})
	if err := poller.Start(ctx); err != nil {
		return err
	}
	defer poller.Stop()

	started, err := startWhenReady(ctx, coord, ready, coordinator.StartRequest{
		UserName:    cfg.UserName,
		RoomName:    cfg.RoomName,
		AgentName:   cfg.AgentName,
		WakeMessage: cfg.WakeMessage,
	})
	if err != nil || !started {
		return err
	}

	status := coord.Status()
	log.Info().Str("room_name", status.Room).Msg("joined room, press Ctrl+C to leave")

	select {
	case <-ctx.Done():
		coord.Stop()
	case <-ended:
		log.Info().Msg("session ended")
	}
	return nil
}

type starter interface {
	Start(ctx context.Context, req coordinator.StartRequest) error
}

// startWhenReady tries to start on every ready signal. It reports false when
// ctx is done first.
func startWhenReady(ctx context.Context, coord starter, ready <-chan struct{}, req coordinator.StartRequest) (bool, error) {
	for {
		select {
		case <-ctx.Done():
			return false, nil
		case <-ready:
		}

		err := coord.Start(ctx, req)
		if errors.Is(err, coordinator.ErrNotReady) {
			// readiness flipped back since the last snapshot
			continue
		}
		if err != nil {
			return false, fmt.Errorf("failed to start session: %w", err)
		}
		return true, nil
	}
}
