package agent

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/helixml/geveze/api/pkg/client"
	"github.com/helixml/geveze/api/pkg/types"
)

func init() {
	wakeCmd.Flags().StringP("message", "m", "", "What the agent should open with, a random greeting if empty")
}

var wakeCmd = &cobra.Command{
	Use:   "wake <room>",
	Short: "Ask the agent to greet in a room",
	Long:  `Sends one wake request for the room. Unlike the connect command nothing prevents waking the same room twice.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message, _ := cmd.Flags().GetString("message")

		apiClient, err := client.NewClientFromEnv()
		if err != nil {
			return err
		}

		return wake(cmd.Context(), apiClient, cmd.OutOrStdout(), args[0], message)
	},
}

func wake(ctx context.Context, apiClient client.Client, out io.Writer, roomName, message string) error {
	resp, err := apiClient.Wake(ctx, &types.WakeRequest{
		RoomName: roomName,
		Message:  message,
	})
	if err != nil {
		return fmt.Errorf("failed to wake agent in %s: %w", roomName, err)
	}

	if resp.Message != "" {
		fmt.Fprintf(out, "%s: %s\n", resp.Status, resp.Message)
		return nil
	}
	fmt.Fprintln(out, resp.Status)
	return nil
}

func NewWakeCmd() *cobra.Command {
	return wakeCmd
}
