package settings

import (
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/helixml/geveze/api/pkg/client"
	"github.com/helixml/geveze/api/pkg/types"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the current agent settings",
	RunE: func(cmd *cobra.Command, _ []string) error {
		apiClient, err := client.NewClientFromEnv()
		if err != nil {
			return err
		}

		settings, err := apiClient.GetSettings(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}

		return printSettings(cmd.OutOrStdout(), settings)
	},
}

func printSettings(w io.Writer, settings *types.SettingsResponse) error {
	keys := make([]string, 0, len(settings.Settings))
	for k := range settings.Settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	table := tablewriter.NewWriter(w)
	table.Header("Setting", "Value")

	for _, k := range keys {
		if err := table.Append([]string{k, formatValue(settings.Settings[k])}); err != nil {
			return err
		}
	}

	if err := table.Render(); err != nil {
		return err
	}

	if settings.CustomPromptExists {
		fmt.Fprintln(w, "A custom prompt is saved, show it with: geveze settings prompt")
	}
	return nil
}

// formatValue renders lists and maps inline, scalars as they are
func formatValue(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return "-"
	case string:
		return value
	case []interface{}, map[string]interface{}:
		bts, err := yaml.Marshal(value)
		if err != nil {
			return fmt.Sprint(value)
		}
		var node yaml.Node
		if err := yaml.Unmarshal(bts, &node); err != nil {
			return fmt.Sprint(value)
		}
		setFlowStyle(&node)
		flow, err := yaml.Marshal(&node)
		if err != nil {
			return fmt.Sprint(value)
		}
		return string(trimNewline(flow))
	default:
		return fmt.Sprint(value)
	}
}

func setFlowStyle(node *yaml.Node) {
	if node.Kind == yaml.SequenceNode || node.Kind == yaml.MappingNode {
		node.Style = yaml.FlowStyle
	}
	for _, child := range node.Content {
		setFlowStyle(child)
	}
}

func trimNewline(b []byte) []byte {
	for len(b) > 0 && b[len(b)-1] == '\n' {
		b = b[:len(b)-1]
	}
	return b
}
