package client

import (
	"context"
	"net/http"

	"github.com/helixml/geveze/api/pkg/types"
)

func (c *GatewayClient) GetSettings(ctx context.Context) (*types.SettingsResponse, error) {
	var settings types.SettingsResponse
	if err := c.makeRequest(ctx, http.MethodGet, "/settings", nil, nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (c *GatewayClient) UpdateSettings(ctx context.Context, updates map[string]interface{}) (*types.SettingsResponse, error) {
	var settings types.SettingsResponse
	req := &types.SettingsUpdateRequest{Settings: updates}
	if err := c.makeRequest(ctx, http.MethodPost, "/settings", req, nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (c *GatewayClient) GetPrompt(ctx context.Context) (*types.PromptResponse, error) {
	var prompt types.PromptResponse
	if err := c.makeRequest(ctx, http.MethodGet, "/prompt", nil, nil, &prompt); err != nil {
		return nil, err
	}
	return &prompt, nil
}

func (c *GatewayClient) SavePrompt(ctx context.Context, content string) (*types.PromptResponse, error) {
	var prompt types.PromptResponse
	req := &types.PromptUpdateRequest{Content: content}
	if err := c.makeRequest(ctx, http.MethodPost, "/prompt", req, nil, &prompt); err != nil {
		return nil, err
	}
	return &prompt, nil
}

func (c *GatewayClient) ListVoices(ctx context.Context) ([]string, error) {
	var resp types.VoicesResponse
	if err := c.makeRequest(ctx, http.MethodGet, "/voices", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Voices, nil
}

func (c *GatewayClient) ListModels(ctx context.Context) ([]string, error) {
	var resp types.ModelsResponse
	if err := c.makeRequest(ctx, http.MethodGet, "/models", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Models, nil
}
