package settings

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/helixml/geveze/api/pkg/client"
)

func init() {
	rootCmd.AddCommand(setCmd)
}

var setCmd = &cobra.Command{
	Use:     "set key=value [key=value...]",
	Short:   "Change agent settings",
	Example: `  geveze settings set llm_model=qwen3:8b temperature=0.7 wake_greetings='[Hello!, Merhaba!]'`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		updates, err := ParseAssignments(args)
		if err != nil {
			return err
		}

		apiClient, err := client.NewClientFromEnv()
		if err != nil {
			return err
		}

		settings, err := apiClient.UpdateSettings(cmd.Context(), updates)
		if err != nil {
			return fmt.Errorf("failed to update settings: %w", err)
		}

		return printSettings(cmd.OutOrStdout(), settings)
	},
}

// ParseAssignments turns key=value arguments into a settings update. Values are
// read as YAML so numbers, booleans and lists keep their type.
func ParseAssignments(args []string) (map[string]interface{}, error) {
	updates := make(map[string]interface{}, len(args))
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid setting %q, expected key=value", arg)
		}

		var value interface{}
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil || value == nil {
			// not valid YAML or empty, keep the raw text
			value = raw
		}
		updates[key] = value
	}
	return updates, nil
}
