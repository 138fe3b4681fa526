package settings

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/helixml/geveze/api/pkg/client"
)

func init() {
	promptCmd.Flags().StringP("file", "f", "", "Save the prompt read from this file (- for stdin) and make it the active one")

	rootCmd.AddCommand(promptCmd)
}

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Show or replace the agent system prompt",
	Example: `  geveze settings prompt
  geveze settings prompt --file prompt.md`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		file, _ := cmd.Flags().GetString("file")

		apiClient, err := client.NewClientFromEnv()
		if err != nil {
			return err
		}

		if file == "" {
			return showPrompt(cmd.Context(), apiClient, cmd.OutOrStdout())
		}

		content, err := readPromptFile(file, cmd.InOrStdin())
		if err != nil {
			return err
		}
		return savePrompt(cmd.Context(), apiClient, cmd.OutOrStdout(), content)
	},
}

func showPrompt(ctx context.Context, apiClient client.Client, out io.Writer) error {
	prompt, err := apiClient.GetPrompt(ctx)
	if err != nil {
		return fmt.Errorf("failed to get prompt: %w", err)
	}

	fmt.Fprintf(out, "# prompt: %s\n", prompt.Prompt)
	fmt.Fprintln(out, strings.TrimRight(prompt.Content, "\n"))
	return nil
}

func savePrompt(ctx context.Context, apiClient client.Client, out io.Writer, content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("prompt is empty")
	}

	prompt, err := apiClient.SavePrompt(ctx, content)
	if err != nil {
		return fmt.Errorf("failed to save prompt: %w", err)
	}

	fmt.Fprintf(out, "saved %s prompt (%d characters)\n", prompt.Prompt, len(prompt.Content))
	return nil
}

func readPromptFile(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		bts, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read prompt from stdin: %w", err)
		}
		return string(bts), nil
	}

	bts, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read prompt file: %w", err)
	}
	return string(bts), nil
}
