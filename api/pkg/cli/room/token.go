package room

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helixml/geveze/api/pkg/client"
	"github.com/helixml/geveze/api/pkg/config"
	"github.com/helixml/geveze/api/pkg/types"
)

func init() {
	tokenCmd.Flags().String("name", "", "Display name of the participant")
	tokenCmd.Flags().String("room", "", "Room to join, a new one is generated if empty")
	tokenCmd.Flags().String("agent", "", "Agent to dispatch into the room")
	tokenCmd.Flags().Bool("json", false, "Print the full response as JSON")
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a participant token",
	Long:  `Asks the gateway for a token, e.g. to join the room from another LiveKit client.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadCliConfig()
		if err != nil {
			return err
		}

		req := &types.TokenRequest{
			UserName:  stringFlag(cmd, "name", cfg.UserName),
			RoomName:  stringFlag(cmd, "room", cfg.RoomName),
			AgentName: stringFlag(cmd, "agent", cfg.AgentName),
		}

		resp, err := client.NewClientFromConfig(cfg).IssueToken(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("failed to issue token: %w", err)
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Room:        %s\n", resp.RoomName)
		fmt.Fprintf(cmd.OutOrStdout(), "Server:      %s\n", resp.ServerURL)
		fmt.Fprintf(cmd.OutOrStdout(), "Participant: %s (%s)\n", resp.ParticipantName, resp.UserIdentity)
		fmt.Fprintf(cmd.OutOrStdout(), "Token:       %s\n", resp.Token)
		return nil
	},
}

func NewTokenCmd() *cobra.Command {
	return tokenCmd
}

// stringFlag prefers an explicitly set flag over the configured value
func stringFlag(cmd *cobra.Command, name, configured string) string {
	if cmd.Flags().Changed(name) {
		value, _ := cmd.Flags().GetString(name)
		return value
	}
	return configured
}
