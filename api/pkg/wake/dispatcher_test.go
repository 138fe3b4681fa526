package wake

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/helixml/geveze/api/pkg/types"
)

func TestDispatch_SendsRoomAndMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockClient(ctrl)

	client.EXPECT().
		Wake(gomock.Any(), &types.WakeRequest{RoomName: "room-42", Message: "Merhaba!"}).
		Return(&types.WakeResponse{Status: "ok", Message: "Merhaba!"}, nil)

	NewDispatcher(client, time.Second).Dispatch(context.Background(), "room-42", "Merhaba!")
}

func TestDispatch_SwallowsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockClient(ctrl)

	client.EXPECT().
		Wake(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("no active session in room"))

	assert.NotPanics(t, func() {
		NewDispatcher(client, time.Second).Dispatch(context.Background(), "room-1", "")
	})
}

func TestDispatch_AppliesTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockClient(ctrl)

	client.EXPECT().
		Wake(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *types.WakeRequest) (*types.WakeResponse, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 40*time.Millisecond)
			return &types.WakeResponse{Status: "ok"}, nil
		})

	NewDispatcher(client, 50*time.Millisecond).Dispatch(context.Background(), "room-1", "")
}

func TestNewDispatcher_DefaultTimeout(t *testing.T) {
	d := NewDispatcher(nil, 0)
	assert.Equal(t, DefaultTimeout, d.timeout)
}
