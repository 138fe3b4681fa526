package system

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	RoomPrefix = "room-"
	UserPrefix = "user-"
)

// shortID is the first 8 hex characters of a random UUID
func shortID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

func GenerateRoomName() string {
	return fmt.Sprintf("%s%s", RoomPrefix, shortID())
}

func GenerateUserIdentity() string {
	return fmt.Sprintf("%s%s", UserPrefix, shortID())
}
