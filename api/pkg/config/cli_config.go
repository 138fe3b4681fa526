package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// ClientConfig configures the headless client and the CLI commands that talk to a gateway
type ClientConfig struct {
	URL           string        `envconfig:"GEVEZE_URL" default:"http://localhost:8080"`
	TLSSkipVerify bool          `envconfig:"GEVEZE_TLS_SKIP_VERIFY" default:"false"`
	Timeout       time.Duration `envconfig:"GEVEZE_TIMEOUT" default:"10s"`

	UserName  string `envconfig:"GEVEZE_USER_NAME" default:"User"`
	RoomName  string `envconfig:"GEVEZE_ROOM_NAME"`
	AgentName string `envconfig:"GEVEZE_AGENT_NAME"`

	PollInterval    time.Duration `envconfig:"GEVEZE_POLL_INTERVAL" default:"4s"`
	ConnectAttempts uint          `envconfig:"GEVEZE_CONNECT_ATTEMPTS" default:"2"`
	WakeMessage     string        `envconfig:"GEVEZE_WAKE_MESSAGE"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func LoadCliConfig() (ClientConfig, error) {
	if err := loadRootFile(); err != nil {
		return ClientConfig{}, err
	}

	var cfg ClientConfig
	err := envconfig.Process("", &cfg)
	if err != nil {
		return ClientConfig{}, err
	}
	return cfg, nil
}
