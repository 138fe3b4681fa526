package agent

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/helixml/geveze/api/pkg/client"
	"github.com/helixml/geveze/api/pkg/readiness"
	"github.com/helixml/geveze/api/pkg/types"
)

func init() {
	statusCmd.Flags().BoolP("watch", "w", false, "Follow readiness changes until interrupted")
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the agent backend is ready",
	Long:  `Polls the gateway once and prints the readiness of the speech and language models. With --watch the gateway status stream is followed instead.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		watch, _ := cmd.Flags().GetBool("watch")

		apiClient, err := client.NewClientFromEnv()
		if err != nil {
			return err
		}

		if watch {
			return apiClient.StreamAgentStatus(cmd.Context(), func(snapshot types.ReadinessSnapshot) {
				printSnapshotLine(cmd.OutOrStdout(), snapshot)
			})
		}

		// a failed request is a not ready status, not a command failure
		resp, err := apiClient.AgentStatus(cmd.Context())
		var snapshot types.ReadinessSnapshot
		if err != nil {
			snapshot = types.ReadinessSnapshot{Ready: false, Message: err.Error(), ObservedAt: time.Now()}
		} else {
			snapshot = readiness.SnapshotFromResponse(resp, time.Now())
		}

		return printSnapshot(cmd.OutOrStdout(), snapshot)
	},
}

func NewStatusCmd() *cobra.Command {
	return statusCmd
}

func readyLabel(ready bool) string {
	if ready {
		return "ready"
	}
	return "not ready"
}

func printSnapshotLine(w io.Writer, snapshot types.ReadinessSnapshot) {
	line := fmt.Sprintf("%s  %s", snapshot.ObservedAt.Local().Format(time.TimeOnly), readyLabel(snapshot.Ready))
	if snapshot.Message != "" {
		line += "  " + snapshot.Message
	}
	fmt.Fprintln(w, line)
}

func printSnapshot(w io.Writer, snapshot types.ReadinessSnapshot) error {
	fmt.Fprintf(w, "Agent: %s\n", readyLabel(snapshot.Ready))
	if snapshot.Message != "" {
		fmt.Fprintf(w, "Message: %s\n", snapshot.Message)
	}
	if len(snapshot.ModelStates) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	table := tablewriter.NewWriter(w)
	table.Header("Model", "State", "Message")

	for _, name := range []string{types.ModelSTT, types.ModelTTS, types.ModelLLM} {
		state, ok := snapshot.ModelStates[name]
		if !ok {
			continue
		}
		if err := table.Append([]string{name, state.State, state.Message}); err != nil {
			return err
		}
	}

	return table.Render()
}
