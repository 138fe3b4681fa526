package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/helixml/geveze/api/pkg/config"
	"github.com/helixml/geveze/api/pkg/readiness"
	"github.com/helixml/geveze/api/pkg/system"
	"github.com/helixml/geveze/api/pkg/types"
)

const maxBackendBody = 1 << 20

// backendClient talks to the agent webhook server
type backendClient struct {
	baseURL string
	retry   *retryablehttp.Client
}

var _ readiness.StatusSource = &backendClient{}

type backendResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

func newBackendClient(cfg config.Backend) *backendClient {
	retry := system.NewRetryClient(cfg.RetryMax, false)
	retry.HTTPClient.Timeout = cfg.Timeout
	retry.RetryWaitMin = 100 * time.Millisecond
	retry.RetryWaitMax = time.Second
	// relay the last backend answer instead of a generic give up error
	retry.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &backendClient{
		baseURL: strings.TrimSuffix(cfg.WebhookURL, "/"),
		retry:   retry,
	}
}

// do sends one request to the backend. Only GET requests are retried, a wake
// must never be delivered twice.
func (b *backendClient) do(ctx context.Context, method, path string, body []byte, header http.Header) (*backendResponse, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, values := range header {
		for _, value := range values {
			req.Header.Add(k, value)
		}
	}

	var resp *http.Response
	if method == http.MethodGet {
		retryReq, err := retryablehttp.FromRequest(req)
		if err != nil {
			return nil, err
		}
		resp, err = b.retry.Do(retryReq)
		if err != nil {
			return nil, err
		}
	} else {
		resp, err = b.retry.HTTPClient.Do(req)
		if err != nil {
			return nil, err
		}
	}
	defer resp.Body.Close()

	bts, err := io.ReadAll(io.LimitReader(resp.Body, maxBackendBody))
	if err != nil {
		return nil, fmt.Errorf("failed to read backend response: %w", err)
	}

	return &backendResponse{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        bts,
	}, nil
}

// AgentStatus reads the readiness of the agent process
func (b *backendClient) AgentStatus(ctx context.Context) (*types.AgentStatusResponse, error) {
	header := http.Header{}
	header.Set("Cache-Control", "no-cache")

	resp, err := b.do(ctx, http.MethodGet, "/status", nil, header)
	if err != nil {
		return nil, fmt.Errorf("agent not reachable: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("agent status returned %d", resp.StatusCode)
	}

	var status types.AgentStatusResponse
	if err := json.Unmarshal(resp.Body, &status); err != nil {
		return nil, fmt.Errorf("failed to decode agent status: %w", err)
	}
	return &status, nil
}
