package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/helixml/geveze/api/pkg/config"
	"github.com/helixml/geveze/api/pkg/credential"
	"github.com/helixml/geveze/api/pkg/pubsub"
	"github.com/helixml/geveze/api/pkg/readiness"
	"github.com/helixml/geveze/api/pkg/system"
	"github.com/helixml/geveze/api/pkg/types"
)

const (
	APIPrefix            = system.APISubPath
	AgentStatusWebsocket = "/ws/agent-status"
)

// GatewayServer issues session tokens and fronts the agent webhook server
type GatewayServer struct {
	Cfg *config.ServerConfig

	issuer  *credential.Issuer
	rooms   credential.RoomLister
	backend *backendClient
	poller  *readiness.Poller
	pubsub  pubsub.PubSub
	cache   *ristretto.Cache[string, []byte]
	router  *mux.Router
}

func NewServer(
	cfg *config.ServerConfig,
	rooms credential.RoomLister,
	ps pubsub.PubSub,
) (*GatewayServer, error) {
	if cfg.Backend.WebhookURL == "" {
		return nil, errors.New("agent webhook url is required")
	}

	cache, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: 1e4,     // number of keys to track frequency of
		MaxCost:     1 << 20, // maximum cost of cache (1MB)
		BufferItems: 64,      // number of keys per Get buffer.
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}

	backend := newBackendClient(cfg.Backend)

	return &GatewayServer{
		Cfg:     cfg,
		issuer:  credential.NewIssuer(cfg.LiveKit, rooms),
		rooms:   rooms,
		backend: backend,
		poller:  readiness.New(backend, readiness.WithInterval(cfg.Status.PollInterval)),
		pubsub:  ps,
		cache:   cache,
	}, nil
}

// ListenAndServe blocks until ctx is cancelled or the listener fails
func (apiServer *GatewayServer) ListenAndServe(ctx context.Context) error {
	router := apiServer.registerRoutes(ctx)

	if err := apiServer.startStatusPublisher(ctx); err != nil {
		return err
	}
	defer apiServer.poller.Stop()

	srv := &http.Server{
		Addr: fmt.Sprintf("%s:%d", apiServer.Cfg.WebServer.Host, apiServer.Cfg.WebServer.Port),
		// no write timeout, status websockets stay open
		ReadHeaderTimeout: time.Second * 60,
		IdleTimeout:       time.Minute * 10,
		Handler:           router,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to shut down gateway")
		}
	}()

	log.Info().Str("addr", srv.Addr).Msg("gateway listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (apiServer *GatewayServer) registerRoutes(ctx context.Context) *mux.Router {
	router := mux.NewRouter()
	router.Use(ErrorLoggingMiddleware)
	router.Use(corsMiddleware(apiServer.Cfg.WebServer.AllowedOrigins))

	subRouter := router.PathPrefix(APIPrefix).Subrouter()

	subRouter.HandleFunc("/health", system.DefaultWrapper(apiServer.health)).Methods(http.MethodGet)

	subRouter.HandleFunc("/token", system.Wrapper(apiServer.createToken)).Methods(http.MethodPost)
	subRouter.HandleFunc("/rooms", system.Wrapper(apiServer.listRooms)).Methods(http.MethodGet)

	subRouter.HandleFunc("/agent-status", apiServer.agentStatus).Methods(http.MethodGet)
	subRouter.HandleFunc("/wake", apiServer.proxyBackend(http.MethodPost, "/wake")).Methods(http.MethodPost)

	subRouter.HandleFunc("/settings", apiServer.proxyBackend(http.MethodGet, "/settings")).Methods(http.MethodGet)
	subRouter.HandleFunc("/settings", apiServer.updateSettings).Methods(http.MethodPost)
	subRouter.HandleFunc("/prompt", apiServer.proxyBackend(http.MethodGet, "/prompt")).Methods(http.MethodGet)
	subRouter.HandleFunc("/prompt", apiServer.proxyBackend(http.MethodPost, "/prompt")).Methods(http.MethodPost)

	subRouter.HandleFunc("/voices", apiServer.cachedBackend("/voices", &types.VoicesResponse{Voices: types.DefaultVoices})).Methods(http.MethodGet)
	subRouter.HandleFunc("/models", apiServer.cachedBackend("/models", &types.ModelsResponse{Models: types.DefaultLLMModels})).Methods(http.MethodGet)

	// preflight requests are answered by the cors middleware
	subRouter.Methods(http.MethodOptions).HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	apiServer.startStatusWebSocketServer(ctx, router, AgentStatusWebsocket)

	apiServer.router = router
	return router
}
