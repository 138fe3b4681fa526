package geveze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helixml/geveze/api/pkg/config"
)

func TestGenerateEnvHelpText(t *testing.T) {
	help := generateEnvHelpText(&config.ServerConfig{}, "")

	assert.Contains(t, help, " - LiveKit")
	assert.Contains(t, help, `LIVEKIT_TOKEN_TTL: Validity of issued participant tokens. (default: "10m")`)
	assert.Contains(t, help, `AGENT_WEBHOOK_URL: Base URL of the agent webhook server. (default: "http://agent:8889")`)
	assert.True(t, strings.Contains(help, "TRUST_FORWARDED_PROTO"))
}

func TestNewRootCmd_RegistersCommands(t *testing.T) {
	root := NewRootCmd()

	for _, name := range []string{"serve", "connect", "status", "token", "rooms", "wake", "settings", "voices", "models", "version"} {
		cmd, _, err := root.Find([]string{name})
		if assert.NoError(t, err, name) {
			assert.Equal(t, name, cmd.Name())
		}
	}
}
