package geveze

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/helixml/geveze/api/pkg/agentstatus"
	"github.com/helixml/geveze/api/pkg/client"
	"github.com/helixml/geveze/api/pkg/config"
	"github.com/helixml/geveze/api/pkg/coordinator"
	"github.com/helixml/geveze/api/pkg/session"
	"github.com/helixml/geveze/api/pkg/types"
)

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(3 * time.Second):
		t.Fatal("timed out")
	}
	var zero T
	return zero
}

func send(t *testing.T, ch chan<- struct{}) {
	t.Helper()
	select {
	case ch <- struct{}{}:
	case <-time.After(3 * time.Second):
		t.Fatal("timed out")
	}
}

func testClientConfig() config.ClientConfig {
	return config.ClientConfig{
		UserName:     "Ada",
		RoomName:     "room-42",
		PollInterval: 10 * time.Millisecond,
		WakeMessage:  "merhaba",
	}
}

func TestRunSession_WakesOnceAndReturnsWhenSessionEnds(t *testing.T) {
	ctrl := gomock.NewController(t)
	apiClient := client.NewMockClient(ctrl)
	connector := session.NewMockConnector(ctrl)
	sess := session.NewMockSession(ctrl)

	apiClient.EXPECT().AgentStatus(gomock.Any()).Return(&types.AgentStatusResponse{Ready: true}, nil).AnyTimes()
	apiClient.EXPECT().
		IssueToken(gomock.Any(), &types.TokenRequest{UserName: "Ada", RoomName: "room-42"}).
		Return(&types.TokenResponse{Token: "jwt", ServerURL: "wss://livekit.example.com", RoomName: "room-42"}, nil)

	callbacks := make(chan session.Callbacks, 1)
	connector.EXPECT().
		Connect(gomock.Any(), "wss://livekit.example.com", "jwt", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, cb session.Callbacks) (session.Session, error) {
			callbacks <- cb
			return sess, nil
		})

	handlers := make(chan agentstatus.DataHandler, 1)
	sess.EXPECT().SubscribeData(gomock.Any()).DoAndReturn(func(handler agentstatus.DataHandler) func() {
		handlers <- handler
		return func() {}
	})
	sess.EXPECT().RoomName().Return("room-42").AnyTimes()
	sess.EXPECT().Disconnect().AnyTimes()

	woken := make(chan *types.WakeRequest, 2)
	apiClient.EXPECT().Wake(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req *types.WakeRequest) (*types.WakeResponse, error) {
		woken <- req
		return &types.WakeResponse{Status: "ok", RoomName: req.RoomName}, nil
	}).Times(1)

	done := make(chan error, 1)
	go func() {
		done <- runSession(context.Background(), testClientConfig(), apiClient, connector)
	}()

	handler := receive(t, handlers)
	handler("agent_status", []byte(`{"type":"agent_status","status":"agent_ready"}`))
	handler("agent_status", []byte(`{"type":"agent_status","status":"agent_ready"}`))

	req := receive(t, woken)
	assert.Equal(t, "room-42", req.RoomName)
	assert.Equal(t, "merhaba", req.Message)

	cb := receive(t, callbacks)
	cb.OnDisconnected("room deleted")

	require.NoError(t, receive(t, done))
	assert.Empty(t, woken)
}

func TestRunSession_NeverStartsWhileBackendNotReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	apiClient := client.NewMockClient(ctrl)
	connector := session.NewMockConnector(ctrl)

	polled := make(chan struct{}, 16)
	apiClient.EXPECT().AgentStatus(gomock.Any()).DoAndReturn(func(context.Context) (*types.AgentStatusResponse, error) {
		select {
		case polled <- struct{}{}:
		default:
		}
		return &types.AgentStatusResponse{Ready: false, Message: "loading qwen3:8b"}, nil
	}).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- runSession(ctx, testClientConfig(), apiClient, connector)
	}()

	receive(t, polled)
	receive(t, polled)
	cancel()

	require.NoError(t, receive(t, done))
}

type startFunc func(ctx context.Context, req coordinator.StartRequest) error

func (f startFunc) Start(ctx context.Context, req coordinator.StartRequest) error {
	return f(ctx, req)
}

type startResult struct {
	started bool
	err     error
}

func TestStartWhenReady_RetriesOnNextReadySignal(t *testing.T) {
	var calls atomic.Int32
	results := []error{coordinator.ErrNotReady, nil}
	coord := startFunc(func(_ context.Context, req coordinator.StartRequest) error {
		assert.Equal(t, "room-42", req.RoomName)
		return results[calls.Add(1)-1]
	})

	ready := make(chan struct{})
	done := make(chan startResult, 1)
	go func() {
		started, err := startWhenReady(context.Background(), coord, ready, coordinator.StartRequest{RoomName: "room-42"})
		done <- startResult{started, err}
	}()

	send(t, ready)
	// the refused start keeps the loop waiting for the next signal
	send(t, ready)

	res := receive(t, done)
	require.NoError(t, res.err)
	assert.True(t, res.started)
	assert.Equal(t, int32(2), calls.Load())
}

func TestStartWhenReady_StartFailure(t *testing.T) {
	coord := startFunc(func(context.Context, coordinator.StartRequest) error {
		return errors.New("failed to get session token: status code 500 (not configured)")
	})

	ready := make(chan struct{}, 1)
	ready <- struct{}{}

	started, err := startWhenReady(context.Background(), coord, ready, coordinator.StartRequest{})
	require.Error(t, err)
	assert.False(t, started)
	assert.Contains(t, err.Error(), "failed to start session")
}

func TestStartWhenReady_ContextDone(t *testing.T) {
	coord := startFunc(func(context.Context, coordinator.StartRequest) error {
		t.Fatal("start must not be called")
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	started, err := startWhenReady(ctx, coord, make(chan struct{}), coordinator.StartRequest{})
	require.NoError(t, err)
	assert.False(t, started)
}
