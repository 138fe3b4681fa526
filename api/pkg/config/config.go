package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type ServerConfig struct {
	LiveKit   LiveKit
	Backend   Backend
	WebServer WebServer
	Status    Status
	PubSub    PubSub

	LogLevel string `envconfig:"LOG_LEVEL" default:"info" description:"One of trace, debug, info, warn, error."`
}

// LoadServerConfig resolves the gateway configuration once. Values in the process
// environment win over the root config file, which wins over the defaults.
func LoadServerConfig() (ServerConfig, error) {
	if err := loadRootFile(); err != nil {
		return ServerConfig{}, err
	}

	var cfg ServerConfig
	err := envconfig.Process("", &cfg)
	if err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

type LiveKit struct {
	// URL is the endpoint handed to clients, ws:// or wss://
	URL string `envconfig:"LIVEKIT_URL" description:"The LiveKit endpoint returned to clients."`
	// SecureURL is used for clients that reached the gateway over TLS when URL is not wss://
	SecureURL string `envconfig:"LIVEKIT_SECURE_URL" description:"The wss:// LiveKit endpoint for clients connecting over https."`
	APIKey    string `envconfig:"LIVEKIT_API_KEY" description:"The LiveKit API key used to sign tokens."`
	APISecret string `envconfig:"LIVEKIT_API_SECRET" description:"The LiveKit API secret used to sign tokens."`

	TokenTTL time.Duration `envconfig:"LIVEKIT_TOKEN_TTL" default:"10m" description:"Validity of issued participant tokens."`

	// RoomServiceURL is where the gateway lists rooms, defaults to URL with an http(s) scheme
	RoomServiceURL string `envconfig:"LIVEKIT_ROOM_SERVICE_URL" description:"LiveKit server API URL used to list rooms."`
}

type Backend struct {
	// WebhookURL is the agent webhook server (status, wake, settings, voices, models)
	WebhookURL string        `envconfig:"AGENT_WEBHOOK_URL" default:"http://agent:8889" description:"Base URL of the agent webhook server."`
	Timeout    time.Duration `envconfig:"AGENT_WEBHOOK_TIMEOUT" default:"5s" description:"Timeout for a single backend request."`
	RetryMax   int           `envconfig:"AGENT_WEBHOOK_RETRY_MAX" default:"2" description:"Retries for idempotent backend proxy calls."`

	CatalogCacheTTL time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"30s" description:"How long voices and models listings are cached."`
}

type WebServer struct {
	Host string `envconfig:"SERVER_HOST" default:"0.0.0.0" description:"The host to bind the gateway to."`
	Port int    `envconfig:"SERVER_PORT" default:"8080" description:"The port to bind the gateway to."`

	// Only enable behind a reverse proxy that overwrites X-Forwarded-Proto
	TrustForwardedProto bool `envconfig:"TRUST_FORWARDED_PROTO" default:"false" description:"Trust X-Forwarded-Proto to detect https clients."`

	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*" description:"Origins allowed to call the gateway."`
}

type Status struct {
	PollInterval time.Duration `envconfig:"STATUS_POLL_INTERVAL" default:"4s" description:"Interval of the gateway side readiness poller feeding /ws/agent-status."`
}

type PubSub struct {
	// empty starts an embedded server
	URL string `envconfig:"NATS_URL" description:"NATS server used to fan out status snapshots, embedded when empty."`
}
