package credential

import (
	"context"

	"github.com/livekit/protocol/livekit"
	lksdk "github.com/livekit/server-sdk-go/v2"
)

//go:generate mockgen -source $GOFILE -destination rooms_mocks.go -package $GOPACKAGE

// RoomLister reports the names of rooms that currently exist on the media server
type RoomLister interface {
	ListRoomNames(ctx context.Context) ([]string, error)
}

type LiveKitRoomLister struct {
	client *lksdk.RoomServiceClient
}

var _ RoomLister = &LiveKitRoomLister{}

func NewLiveKitRoomLister(url, apiKey, apiSecret string) *LiveKitRoomLister {
	return &LiveKitRoomLister{
		client: lksdk.NewRoomServiceClient(url, apiKey, apiSecret),
	}
}

func (l *LiveKitRoomLister) ListRoomNames(ctx context.Context) ([]string, error) {
	resp, err := l.client.ListRooms(ctx, &livekit.ListRoomsRequest{})
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(resp.GetRooms()))
	for _, room := range resp.GetRooms() {
		names = append(names, room.GetName())
	}
	return names, nil
}
