package credential

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/livekit/protocol/auth"
	"github.com/livekit/protocol/livekit"
	"github.com/rs/zerolog/log"

	"github.com/helixml/geveze/api/pkg/config"
	"github.com/helixml/geveze/api/pkg/system"
	"github.com/helixml/geveze/api/pkg/types"
)

var (
	ErrNotConfigured = errors.New("livekit not configured")
	ErrNoEndpoint    = errors.New("no livekit endpoint for this transport")
)

const (
	DefaultUserName = "User"
	DefaultTokenTTL = 10 * time.Minute

	maxRoomNameAttempts = 10
)

type IssueRequest struct {
	UserName  string
	RoomName  string
	AgentName string
	// Secure is derived from the inbound request, see RequestIsSecure
	Secure bool
}

// Issuer signs short lived participant tokens for a single room
type Issuer struct {
	cfg   config.LiveKit
	rooms RoomLister
}

// NewIssuer builds an issuer. rooms may be nil, generated room names are then
// only as unique as their random suffix.
func NewIssuer(cfg config.LiveKit, rooms RoomLister) *Issuer {
	return &Issuer{
		cfg:   cfg,
		rooms: rooms,
	}
}

func (i *Issuer) Issue(ctx context.Context, req IssueRequest) (*types.TokenResponse, error) {
	if i.cfg.APIKey == "" || i.cfg.APISecret == "" {
		return nil, ErrNotConfigured
	}

	endpoint, err := ResolveEndpoint(i.cfg, req.Secure)
	if err != nil {
		return nil, err
	}

	userName := req.UserName
	if userName == "" {
		userName = DefaultUserName
	}

	roomName := req.RoomName
	if roomName == "" {
		roomName = i.uniqueRoomName(ctx)
	}

	identity := system.GenerateUserIdentity()

	ttl := i.cfg.TokenTTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	grant := &auth.VideoGrant{
		RoomJoin: true,
		Room:     roomName,
	}
	grant.SetCanPublish(true)
	grant.SetCanSubscribe(true)
	grant.SetCanPublishData(true)

	at := auth.NewAccessToken(i.cfg.APIKey, i.cfg.APISecret).
		SetVideoGrant(grant).
		SetIdentity(identity).
		SetName(userName).
		SetValidFor(ttl)

	if req.AgentName != "" {
		at.SetRoomConfig(&livekit.RoomConfiguration{
			Agents: []*livekit.RoomAgentDispatch{
				{AgentName: req.AgentName},
			},
		})
	}

	token, err := at.ToJWT()
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	log.Debug().
		Str("room_name", roomName).
		Str("identity", identity).
		Bool("secure", req.Secure).
		Msg("issued participant token")

	return &types.TokenResponse{
		Token:           token,
		ServerURL:       endpoint,
		RoomName:        roomName,
		ParticipantName: userName,
		UserIdentity:    identity,
	}, nil
}

func (i *Issuer) uniqueRoomName(ctx context.Context) string {
	existing := map[string]struct{}{}
	if i.rooms != nil {
		names, err := i.rooms.ListRoomNames(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("failed to list rooms, generated room name is not checked for collisions")
		}
		for _, name := range names {
			existing[name] = struct{}{}
		}
	}

	name := system.GenerateRoomName()
	for attempt := 1; attempt < maxRoomNameAttempts; attempt++ {
		if _, taken := existing[name]; !taken {
			break
		}
		name = system.GenerateRoomName()
	}
	return name
}
