package settings

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change agent settings",
	Long:  `Agent settings (voice, language model, prompt) are stored by the agent backend, the gateway only relays them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// By default run the get command
		return getCmd.RunE(cmd, args)
	},
}

func New() *cobra.Command {
	return rootCmd
}
