package geveze

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/helixml/geveze/api/pkg/config"
	"github.com/helixml/geveze/api/pkg/credential"
	"github.com/helixml/geveze/api/pkg/pubsub"
	"github.com/helixml/geveze/api/pkg/server"
	"github.com/helixml/geveze/api/pkg/system"
)

func NewServeConfig() (*config.ServerConfig, error) {
	serverConfig, err := config.LoadServerConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load server config: %v", err)
	}

	if serverConfig.Backend.WebhookURL == "" {
		return nil, fmt.Errorf("agent webhook url is required")
	}

	// token requests fail until these are set, the gateway still serves status
	if serverConfig.LiveKit.APIKey == "" || serverConfig.LiveKit.APISecret == "" {
		log.Warn().Msg("LIVEKIT_API_KEY or LIVEKIT_API_SECRET not set, tokens cannot be issued")
	}
	if serverConfig.LiveKit.URL == "" && serverConfig.LiveKit.SecureURL == "" {
		log.Warn().Msg("LIVEKIT_URL not set, tokens cannot be issued")
	}

	return &serverConfig, nil
}

func newServeCmd() *cobra.Command {
	envHelpText := generateEnvHelpText(&config.ServerConfig{}, "")

	serveCmd := &cobra.Command{
		Use:     "serve",
		Short:   "Start the geveze gateway.",
		Long:    "Start the geveze gateway.",
		Example: "LIVEKIT_URL=ws://localhost:7880 LIVEKIT_API_KEY=devkey LIVEKIT_API_SECRET=secret geveze serve",
		RunE: func(cmd *cobra.Command, _ []string) error {
			serveConfig, err := NewServeConfig()
			if err != nil {
				return err
			}
			return serve(cmd, serveConfig)
		},
	}

	serveCmd.Long += "\n\nEnvironment Variables:\n\n" + envHelpText

	return serveCmd
}

func serve(cmd *cobra.Command, cfg *config.ServerConfig) error {
	system.SetupLogging(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ps, err := pubsub.New(cfg.PubSub)
	if err != nil {
		return err
	}
	defer ps.Close()

	var rooms credential.RoomLister
	if url := credential.RoomServiceURL(cfg.LiveKit); url != "" && cfg.LiveKit.APIKey != "" && cfg.LiveKit.APISecret != "" {
		rooms = credential.NewLiveKitRoomLister(url, cfg.LiveKit.APIKey, cfg.LiveKit.APISecret)
	}

	apiServer, err := server.NewServer(cfg, rooms, ps)
	if err != nil {
		return err
	}

	log.Info().
		Str("agent_webhook_url", cfg.Backend.WebhookURL).
		Bool("trust_forwarded_proto", cfg.WebServer.TrustForwardedProto).
		Msgf("starting geveze gateway on %s:%d", cfg.WebServer.Host, cfg.WebServer.Port)

	return apiServer.ListenAndServe(ctx)
}
