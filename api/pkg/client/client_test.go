package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixml/geveze/api/pkg/types"
)

func TestIssueToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/token", r.URL.Path)

		var req types.TokenRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Ada", req.UserName)

		_ = json.NewEncoder(w).Encode(types.TokenResponse{
			Token:           "tok",
			ServerURL:       "wss://lk.example.com",
			RoomName:        "room-42",
			ParticipantName: "Ada",
		})
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL).IssueToken(context.Background(), &types.TokenRequest{UserName: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.Token)
	assert.Equal(t, "room-42", resp.RoomName)
}

func TestIssueToken_ErrorCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "LiveKit API credentials are not configured", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).IssueToken(context.Background(), &types.TokenRequest{UserName: "Ada"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "LiveKit API credentials are not configured", apiErr.Message)
}

func TestAgentStatus_DisablesCaching(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/agent-status", r.URL.Path)
		assert.Contains(t, r.Header.Get("Cache-Control"), "no-cache")
		assert.Equal(t, "no-cache", r.Header.Get("Pragma"))

		_, _ = w.Write([]byte(`{"ready":false,"message":"loading llm","models":{"llm":{"state":"loading","message":"loading llm"}}}`))
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL).AgentStatus(context.Background())
	require.NoError(t, err)
	assert.False(t, resp.Ready)
	assert.Equal(t, "loading llm", resp.Message)
	assert.Equal(t, "loading", resp.Models[types.ModelLLM].State)
}

func TestAgentStatus_JSONErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"ready":false,"message":"agent unreachable"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).AgentStatus(context.Background())
	require.Error(t, err)
	assert.Equal(t, "status code 503 (agent unreachable)", err.Error())
}

func TestWake(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/wake", r.URL.Path)

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "room-42", req["room_name"])
		_, hasMessage := req["message"]
		assert.False(t, hasMessage)

		_, _ = w.Write([]byte(`{"status":"ok","room_name":"room-42"}`))
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL).Wake(context.Background(), &types.WakeRequest{RoomName: "room-42"})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
}

func TestSettingsRoundTrip(t *testing.T) {
	stored := map[string]interface{}{"voice": "ayhan"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/settings", r.URL.Path)
		if r.Method == http.MethodPost {
			var req types.SettingsUpdateRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			for k, v := range req.Settings {
				stored[k] = v
			}
		}
		_ = json.NewEncoder(w).Encode(types.SettingsResponse{
			Settings:      stored,
			PromptContent: "You are a helpful assistant.",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	settings, err := c.UpdateSettings(context.Background(), map[string]interface{}{"llm_model": "qwen3:8b"})
	require.NoError(t, err)
	assert.Equal(t, "qwen3:8b", settings.Settings["llm_model"])

	settings, err = c.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ayhan", settings.Settings["voice"])
	assert.Equal(t, "You are a helpful assistant.", settings.PromptContent)
	assert.False(t, settings.CustomPromptExists)
}

func TestPrompt(t *testing.T) {
	prompt := types.PromptResponse{Prompt: "default", Content: "Be brief."}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/prompt", r.URL.Path)
		if r.Method == http.MethodPost {
			var req types.PromptUpdateRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			prompt = types.PromptResponse{Prompt: "custom", Content: req.Content, IsCustom: true}
		}
		_ = json.NewEncoder(w).Encode(prompt)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	resp, err := c.GetPrompt(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "default", resp.Prompt)
	assert.False(t, resp.IsCustom)

	resp, err = c.SavePrompt(context.Background(), "Answer in Turkish.")
	require.NoError(t, err)
	assert.Equal(t, "custom", resp.Prompt)
	assert.Equal(t, "Answer in Turkish.", resp.Content)
	assert.True(t, resp.IsCustom)
}

func TestCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/voices":
			_, _ = w.Write([]byte(`{"voices":["ayhan","serdar"]}`))
		case "/api/models":
			_, _ = w.Write([]byte(`{"models":["qwen3:8b"]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	voices, err := c.ListVoices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"ayhan", "serdar"}, voices)

	models, err := c.ListModels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"qwen3:8b"}, models)
}

func TestStreamAgentStatus(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, StatusStreamPath, r.URL.Path)
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		_ = conn.WriteJSON(types.ReadinessSnapshot{Ready: false, Message: "loading stt"})
		_ = conn.WriteJSON(types.ReadinessSnapshot{Ready: true})
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		time.Sleep(50 * time.Millisecond)
	}))
	defer srv.Close()

	var snapshots []types.ReadinessSnapshot
	err := NewClient(srv.URL).StreamAgentStatus(context.Background(), func(s types.ReadinessSnapshot) {
		snapshots = append(snapshots, s)
	})
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Equal(t, "loading stt", snapshots[0].Message)
	assert.True(t, snapshots[1].Ready)
}
