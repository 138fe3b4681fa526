package room

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helixml/geveze/api/pkg/client"
)

var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "List rooms that currently exist on the media server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		apiClient, err := client.NewClientFromEnv()
		if err != nil {
			return err
		}

		rooms, err := apiClient.ListRooms(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list rooms: %w", err)
		}

		for _, room := range rooms {
			fmt.Fprintln(cmd.OutOrStdout(), room)
		}
		return nil
	},
}

func NewRoomsCmd() *cobra.Command {
	return roomsCmd
}
