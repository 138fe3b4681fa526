package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/helixml/geveze/api/pkg/credential"
	"github.com/helixml/geveze/api/pkg/data"
	"github.com/helixml/geveze/api/pkg/system"
	"github.com/helixml/geveze/api/pkg/types"
)

func (apiServer *GatewayServer) health(_ http.ResponseWriter, _ *http.Request) (*types.HealthResponse, error) {
	return &types.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   data.GetVersion(),
	}, nil
}

// createToken godoc
// @Summary Issue a participant token
// @Description Issue a LiveKit token for one participant in one room
// @Tags    sessions
// @Param request body types.TokenRequest true "Request body"
// @Success 200 {object} types.TokenResponse
// @Router /api/token [post]
func (apiServer *GatewayServer) createToken(_ http.ResponseWriter, r *http.Request) (*types.TokenResponse, *system.HTTPError) {
	var req types.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return nil, system.NewHTTPError400(fmt.Sprintf("invalid request body: %s", err))
	}

	resp, err := apiServer.issuer.Issue(r.Context(), credential.IssueRequest{
		UserName:  req.UserName,
		RoomName:  req.RoomName,
		AgentName: req.AgentName,
		Secure:    credential.RequestIsSecure(r, apiServer.Cfg.WebServer.TrustForwardedProto),
	})
	if err != nil {
		return nil, system.NewHTTPError500(err.Error())
	}
	return resp, nil
}

func (apiServer *GatewayServer) listRooms(_ http.ResponseWriter, r *http.Request) ([]string, *system.HTTPError) {
	if apiServer.rooms == nil {
		return []string{}, nil
	}

	rooms, err := apiServer.rooms.ListRoomNames(r.Context())
	if err != nil {
		// listing failures read as no known rooms
		log.Warn().Err(err).Msg("failed to list rooms")
		return []string{}, nil
	}
	if rooms == nil {
		rooms = []string{}
	}
	return rooms, nil
}

// agentStatus godoc
// @Summary Agent readiness
// @Description Readiness of the speech and language models behind the agent, never cached
// @Tags    agent
// @Success 200 {object} types.AgentStatusResponse
// @Failure 503 {object} types.AgentStatusResponse
// @Router /api/agent-status [get]
func (apiServer *GatewayServer) agentStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	w.Header().Set("Pragma", "no-cache")

	status, err := apiServer.backend.AgentStatus(r.Context())
	if err != nil {
		system.RespondJSON(w, r, http.StatusServiceUnavailable, types.AgentStatusResponse{
			Ready:   false,
			Message: err.Error(),
		})
		return
	}
	system.RespondJSON(w, r, http.StatusOK, status)
}

// proxyBackend forwards the request body as is and relays the backend answer
func (apiServer *GatewayServer) proxyBackend(method, path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if method != http.MethodGet {
			bts, err := io.ReadAll(io.LimitReader(r.Body, maxBackendBody))
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			body = bts
		}
		apiServer.forward(w, r, method, path, body)
	}
}

// updateSettings godoc
// @Summary Update agent settings
// @Description Merge settings into the agent backend settings, null values are dropped
// @Tags    settings
// @Param request body types.SettingsUpdateRequest true "Request body"
// @Success 200 {object} types.SettingsResponse
// @Router /api/settings [post]
func (apiServer *GatewayServer) updateSettings(w http.ResponseWriter, r *http.Request) {
	var req types.SettingsUpdateRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBackendBody)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, fmt.Sprintf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	for k, v := range req.Settings {
		if v == nil {
			delete(req.Settings, k)
		}
	}
	if len(req.Settings) == 0 {
		http.Error(w, "No settings to update", http.StatusBadRequest)
		return
	}

	body, err := json.Marshal(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	apiServer.forward(w, r, http.MethodPost, "/settings", body)
}

func (apiServer *GatewayServer) forward(w http.ResponseWriter, r *http.Request, method, path string, body []byte) {
	resp, err := apiServer.backend.do(r.Context(), method, path, body, nil)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("agent backend request failed")
		http.Error(w, fmt.Sprintf("agent backend unavailable: %s", err), http.StatusBadGateway)
		return
	}
	writeBackendResponse(w, resp)
}

// cachedBackend serves a backend listing through the catalog cache. When the
// backend fails the fallback is served instead.
func (apiServer *GatewayServer) cachedBackend(path string, fallback interface{}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cached, ok := apiServer.cache.Get(path); ok {
			writeBackendResponse(w, &backendResponse{
				StatusCode:  http.StatusOK,
				ContentType: "application/json",
				Body:        cached,
			})
			return
		}

		resp, err := apiServer.backend.do(r.Context(), http.MethodGet, path, nil, nil)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			if ttl := apiServer.Cfg.Backend.CatalogCacheTTL; ttl > 0 {
				apiServer.cache.SetWithTTL(path, resp.Body, int64(len(resp.Body)), ttl)
				apiServer.cache.Wait()
			}
			writeBackendResponse(w, resp)
			return
		}

		if err == nil {
			err = fmt.Errorf("backend returned %d", resp.StatusCode)
		}
		if fallback != nil {
			log.Warn().Err(err).Str("path", path).Msg("serving default listing")
			system.RespondJSON(w, r, http.StatusOK, fallback)
			return
		}
		if resp != nil {
			writeBackendResponse(w, resp)
			return
		}
		http.Error(w, fmt.Sprintf("agent backend unavailable: %s", err), http.StatusBadGateway)
	}
}

func writeBackendResponse(w http.ResponseWriter, resp *backendResponse) {
	contentType := resp.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write(resp.Body)
}
