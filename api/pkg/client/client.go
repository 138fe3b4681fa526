package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/helixml/geveze/api/pkg/config"
	"github.com/helixml/geveze/api/pkg/system"
	"github.com/helixml/geveze/api/pkg/types"
)

//go:generate mockgen -source $GOFILE -destination client_mocks.go -package $GOPACKAGE

type Client interface {
	IssueToken(ctx context.Context, req *types.TokenRequest) (*types.TokenResponse, error)
	AgentStatus(ctx context.Context) (*types.AgentStatusResponse, error)
	Wake(ctx context.Context, req *types.WakeRequest) (*types.WakeResponse, error)

	GetSettings(ctx context.Context) (*types.SettingsResponse, error)
	UpdateSettings(ctx context.Context, updates map[string]interface{}) (*types.SettingsResponse, error)
	GetPrompt(ctx context.Context) (*types.PromptResponse, error)
	SavePrompt(ctx context.Context, content string) (*types.PromptResponse, error)
	ListVoices(ctx context.Context) ([]string, error)
	ListModels(ctx context.Context) ([]string, error)
	ListRooms(ctx context.Context) ([]string, error)

	StreamAgentStatus(ctx context.Context, fn func(types.ReadinessSnapshot)) error
}

// GatewayClient is the client for the geveze gateway api
type GatewayClient struct {
	httpClient    *http.Client
	url           string
	tlsSkipVerify bool
}

var _ Client = &GatewayClient{}

const (
	DefaultURL = "http://localhost:8080"
)

// APIError is returned for any non 2xx gateway response
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("status code %d", e.StatusCode)
	}
	return fmt.Sprintf("status code %d (%s)", e.StatusCode, e.Message)
}

func NewClientFromEnv() (*GatewayClient, error) {
	cfg, err := config.LoadCliConfig()
	if err != nil {
		return nil, err
	}

	return NewClientFromConfig(cfg), nil
}

func NewClientFromConfig(cfg config.ClientConfig) *GatewayClient {
	c := NewClient(cfg.URL)
	if cfg.Timeout > 0 {
		c.httpClient.Timeout = cfg.Timeout
	}
	if cfg.TLSSkipVerify {
		c.tlsSkipVerify = true
		c.httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec
		}
	}
	return c
}

func NewClient(url string) *GatewayClient {
	if url == "" {
		url = DefaultURL
	}

	return &GatewayClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		url:        strings.TrimSuffix(url, "/"),
	}
}

func (c *GatewayClient) makeRequest(ctx context.Context, method, path string, body interface{}, header http.Header, v interface{}) error {
	var reader io.Reader
	if body != nil {
		bts, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(bts)
	}

	url := system.URL(system.ClientOptions{Host: c.url}, system.GetAPIPath(path))
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, values := range header {
		for _, value := range values {
			req.Header.Add(k, value)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bts, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(bts),
		}
	}

	if v != nil {
		return json.NewDecoder(resp.Body).Decode(v)
	}

	return nil
}

// errorMessage prefers a JSON message/detail/error field over the raw body
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Message != "":
			return payload.Message
		case payload.Detail != "":
			return payload.Detail
		case payload.Error != "":
			return payload.Error
		}
	}
	return strings.TrimSpace(string(body))
}
