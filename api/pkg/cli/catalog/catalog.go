package catalog

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/helixml/geveze/api/pkg/client"
)

var voicesCmd = &cobra.Command{
	Use:   "voices",
	Short: "List text to speech voices",
	RunE: func(cmd *cobra.Command, _ []string) error {
		apiClient, err := client.NewClientFromEnv()
		if err != nil {
			return err
		}

		voices, err := apiClient.ListVoices(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list voices: %w", err)
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.Header("Voice")

		for _, v := range voices {
			if err := table.Append([]string{v}); err != nil {
				return err
			}
		}

		return table.Render()
	},
}

var modelsCmd = &cobra.Command{
	Use:     "models",
	Aliases: []string{"llms"},
	Short:   "List language models the agent can use",
	RunE: func(cmd *cobra.Command, _ []string) error {
		apiClient, err := client.NewClientFromEnv()
		if err != nil {
			return err
		}

		models, err := apiClient.ListModels(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list models: %w", err)
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.Header("Model")

		for _, m := range models {
			if err := table.Append([]string{m}); err != nil {
				return err
			}
		}

		return table.Render()
	},
}

func NewVoicesCmd() *cobra.Command {
	return voicesCmd
}

func NewModelsCmd() *cobra.Command {
	return modelsCmd
}
