package client

import (
	"context"
	"net/http"

	"github.com/helixml/geveze/api/pkg/types"
)

func (c *GatewayClient) IssueToken(ctx context.Context, req *types.TokenRequest) (*types.TokenResponse, error) {
	var resp types.TokenResponse
	if err := c.makeRequest(ctx, http.MethodPost, "/token", req, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AgentStatus fetches the readiness of the backend, bypassing any cache on the way
func (c *GatewayClient) AgentStatus(ctx context.Context) (*types.AgentStatusResponse, error) {
	header := http.Header{}
	header.Set("Cache-Control", "no-cache, no-store")
	header.Set("Pragma", "no-cache")

	var resp types.AgentStatusResponse
	if err := c.makeRequest(ctx, http.MethodGet, "/agent-status", nil, header, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *GatewayClient) Wake(ctx context.Context, req *types.WakeRequest) (*types.WakeResponse, error) {
	var resp types.WakeResponse
	if err := c.makeRequest(ctx, http.MethodPost, "/wake", req, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *GatewayClient) ListRooms(ctx context.Context) ([]string, error) {
	var rooms []string
	if err := c.makeRequest(ctx, http.MethodGet, "/rooms", nil, nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}
