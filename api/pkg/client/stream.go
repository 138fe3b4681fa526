package client

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/helixml/geveze/api/pkg/system"
	"github.com/helixml/geveze/api/pkg/types"
)

// StatusStreamPath is served outside the /api prefix, like the other websockets
const StatusStreamPath = "/ws/agent-status"

// StreamAgentStatus follows the gateway readiness stream until ctx is done or
// the gateway closes the connection
func (c *GatewayClient) StreamAgentStatus(ctx context.Context, fn func(types.ReadinessSnapshot)) error {
	dialer := *websocket.DefaultDialer
	if c.tlsSkipVerify {
		dialer.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}

	url := system.WSURL(system.ClientOptions{Host: c.url}, StatusStreamPath)
	conn, _, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", url, err)
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	for {
		var snapshot types.ReadinessSnapshot
		if err := conn.ReadJSON(&snapshot); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) && closeErr.Code == websocket.CloseNormalClosure {
				return nil
			}
			return err
		}
		fn(snapshot)
	}
}
