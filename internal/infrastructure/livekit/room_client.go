package livekit

import (
	"context"

	"github.com/livekit/protocol/livekit"
	lksdk "github.com/livekit/server-sdk-go/v2"

	"livekit-token-service/internal/config"
	"livekit-token-service/internal/infrastructure/metrics"
)

// RoomClient provides access to LiveKit room management APIs.
type RoomClient struct {
	client *lksdk.RoomServiceClient
}

// NewRoomClient creates a new LiveKit room client.
func NewRoomClient(cfg *config.Config) *RoomClient {
	client := lksdk.NewRoomServiceClient(cfg.LiveKitURL, cfg.LiveKitAPIKey, cfg.LiveKitAPISecret)
	return &RoomClient{client: client}
}

// RoomExists reports whether LiveKit currently has an active room named name.
func (c *RoomClient) RoomExists(ctx context.Context, name string) (bool, error) {
	resp, err := c.client.ListRooms(ctx, &livekit.ListRoomsRequest{
		Names: []string{name},
	})
	if err != nil {
		return false, err
	}

	for _, room := range resp.Rooms {
		if room.Name == name {
			metrics.RoomNameCollisions.Inc()
			return true, nil
		}
	}
	return false, nil
}
