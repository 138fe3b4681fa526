package readiness

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/helixml/geveze/api/pkg/types"
)

// scriptedSource replays responses in order and repeats the last one
type scriptedSource struct {
	mu    sync.Mutex
	steps []func() (*types.AgentStatusResponse, error)
	calls atomic.Int32
}

func (s *scriptedSource) AgentStatus(_ context.Context) (*types.AgentStatusResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := int(s.calls.Add(1)) - 1
	if i >= len(s.steps) {
		i = len(s.steps) - 1
	}
	return s.steps[i]()
}

func ready() (*types.AgentStatusResponse, error) {
	return &types.AgentStatusResponse{Ready: true}, nil
}

func TestPoller_PollsImmediatelyOnStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := NewMockStatusSource(ctrl)
	source.EXPECT().AgentStatus(gomock.Any()).Return(&types.AgentStatusResponse{
		Ready: true,
		Models: map[string]types.ModelState{
			types.ModelSTT: {State: "ready"},
		},
	}, nil).MinTimes(1)

	observed := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	p := New(source, WithInterval(time.Hour), WithClock(func() time.Time { return observed }))
	require.NoError(t, p.Start(context.Background()))
	defer p.Stop()

	require.Eventually(t, func() bool { return p.Latest().Ready }, time.Second, 5*time.Millisecond)

	snap := p.Latest()
	assert.Equal(t, observed, snap.ObservedAt)
	assert.Equal(t, "ready", snap.ModelStates[types.ModelSTT].State)
}

func TestPoller_FailureReplacesSnapshot(t *testing.T) {
	source := &scriptedSource{steps: []func() (*types.AgentStatusResponse, error){
		ready,
		func() (*types.AgentStatusResponse, error) { return nil, errors.New("connection refused") },
	}}

	var (
		mu        sync.Mutex
		snapshots []types.ReadinessSnapshot
	)
	p := New(source, WithInterval(10*time.Millisecond))
	p.OnSnapshot(func(s types.ReadinessSnapshot) {
		mu.Lock()
		defer mu.Unlock()
		snapshots = append(snapshots, s)
	})
	require.NoError(t, p.Start(context.Background()))
	defer p.Stop()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(snapshots) >= 2
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	first, second := snapshots[0], snapshots[1]
	mu.Unlock()

	assert.True(t, first.Ready)
	assert.False(t, second.Ready)
	assert.Equal(t, "connection refused", second.Message)
	assert.False(t, second.ObservedAt.IsZero())
	assert.False(t, p.Latest().Ready)
}

func TestPoller_StopDiscardsStateAndDeliversNothing(t *testing.T) {
	source := &scriptedSource{steps: []func() (*types.AgentStatusResponse, error){ready}}

	var delivered atomic.Int32
	p := New(source, WithInterval(5*time.Millisecond))
	p.OnSnapshot(func(types.ReadinessSnapshot) { delivered.Add(1) })
	require.NoError(t, p.Start(context.Background()))

	require.Eventually(t, func() bool { return delivered.Load() >= 2 }, time.Second, time.Millisecond)

	p.Stop()
	afterStop := delivered.Load()
	assert.Equal(t, types.ReadinessSnapshot{}, p.Latest())

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, afterStop, delivered.Load())

	// stopping twice is harmless
	p.Stop()
}

func TestPoller_StartTwice(t *testing.T) {
	source := &scriptedSource{steps: []func() (*types.AgentStatusResponse, error){ready}}
	p := New(source, WithInterval(time.Hour))

	require.NoError(t, p.Start(context.Background()))
	defer p.Stop()

	assert.ErrorIs(t, p.Start(context.Background()), ErrAlreadyRunning)
}

func TestPoller_RestartAfterStop(t *testing.T) {
	source := &scriptedSource{steps: []func() (*types.AgentStatusResponse, error){ready}}
	p := New(source, WithInterval(time.Hour))

	require.NoError(t, p.Start(context.Background()))
	p.Stop()
	require.NoError(t, p.Start(context.Background()))
	defer p.Stop()

	require.Eventually(t, func() bool { return p.Latest().Ready }, time.Second, 5*time.Millisecond)
}

func TestPoller_ContextCancelStopsPolling(t *testing.T) {
	source := &scriptedSource{steps: []func() (*types.AgentStatusResponse, error){ready}}
	ctx, cancel := context.WithCancel(context.Background())

	p := New(source, WithInterval(5*time.Millisecond))
	require.NoError(t, p.Start(ctx))
	require.Eventually(t, func() bool { return source.calls.Load() >= 1 }, time.Second, time.Millisecond)

	cancel()
	time.Sleep(20 * time.Millisecond)
	calls := source.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, source.calls.Load())

	p.Stop()
}

func TestSnapshotFromResponse(t *testing.T) {
	now := time.Now()

	t.Run("nil response", func(t *testing.T) {
		snap := SnapshotFromResponse(nil, now)
		assert.False(t, snap.Ready)
		assert.NotEmpty(t, snap.Message)
	})

	t.Run("backend message wins", func(t *testing.T) {
		snap := SnapshotFromResponse(&types.AgentStatusResponse{Ready: false, Message: "Waiting for LLM"}, now)
		assert.Equal(t, "Waiting for LLM", snap.Message)
	})

	t.Run("first pending model explains", func(t *testing.T) {
		snap := SnapshotFromResponse(&types.AgentStatusResponse{
			Ready: false,
			Models: map[string]types.ModelState{
				types.ModelSTT: {State: "ready", Message: "STT ready"},
				types.ModelTTS: {State: "pending", Message: "Waiting for XTTS service"},
				types.ModelLLM: {State: "pending", Message: "Waiting for LLM"},
			},
		}, now)
		assert.False(t, snap.Ready)
		assert.Equal(t, "Waiting for XTTS service", snap.Message)
		assert.Equal(t, now, snap.ObservedAt)
	})

	t.Run("ready has no message", func(t *testing.T) {
		snap := SnapshotFromResponse(&types.AgentStatusResponse{Ready: true}, now)
		assert.True(t, snap.Ready)
		assert.Empty(t, snap.Message)
	})
}
