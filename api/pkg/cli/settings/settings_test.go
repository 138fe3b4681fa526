package settings

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/helixml/geveze/api/pkg/client"
	"github.com/helixml/geveze/api/pkg/types"
)

func TestParseAssignments(t *testing.T) {
	updates, err := ParseAssignments([]string{
		"llm_model=qwen3:8b",
		"temperature=0.7",
		"interruptions=false",
		"max_tokens=256",
		"wake_greetings=[Hello!, Merhaba!]",
		"system_prompt=",
	})
	require.NoError(t, err)

	assert.Equal(t, "qwen3:8b", updates["llm_model"])
	assert.Equal(t, 0.7, updates["temperature"])
	assert.Equal(t, false, updates["interruptions"])
	assert.Equal(t, 256, updates["max_tokens"])
	assert.Equal(t, []interface{}{"Hello!", "Merhaba!"}, updates["wake_greetings"])
	assert.Equal(t, "", updates["system_prompt"])
}

func TestParseAssignments_Invalid(t *testing.T) {
	_, err := ParseAssignments([]string{"voice"})
	require.Error(t, err)

	_, err = ParseAssignments([]string{"=af_heart"})
	require.Error(t, err)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "-", formatValue(nil))
	assert.Equal(t, "af_heart", formatValue("af_heart"))
	assert.Equal(t, "0.7", formatValue(0.7))
	assert.Equal(t, "[Hello!, Merhaba!]", formatValue([]interface{}{"Hello!", "Merhaba!"}))
}

func TestPrintSettings_SortedKeys(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printSettings(&buf, &types.SettingsResponse{
		Settings: map[string]interface{}{
			"voice":     "ayhan",
			"llm_model": "qwen3:8b",
		},
	}))

	out := buf.String()
	assert.Less(t, strings.Index(out, "llm_model"), strings.Index(out, "voice"))
	assert.NotContains(t, out, "custom prompt")
}

func TestPrintSettings_CustomPrompt(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printSettings(&buf, &types.SettingsResponse{
		Settings:           map[string]interface{}{"prompt": "custom"},
		PromptContent:      "Be brief.",
		CustomPromptExists: true,
	}))

	assert.Contains(t, buf.String(), "A custom prompt is saved")
}

func TestShowPrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	apiClient := client.NewMockClient(ctrl)

	apiClient.EXPECT().GetPrompt(gomock.Any()).Return(&types.PromptResponse{
		Prompt:  "default",
		Content: "You are a helpful assistant.\n",
	}, nil)

	var out bytes.Buffer
	require.NoError(t, showPrompt(context.Background(), apiClient, &out))
	assert.Equal(t, "# prompt: default\nYou are a helpful assistant.\n", out.String())
}

func TestSavePrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	apiClient := client.NewMockClient(ctrl)

	apiClient.EXPECT().SavePrompt(gomock.Any(), "Answer in Turkish.").Return(&types.PromptResponse{
		Prompt:   "custom",
		Content:  "Answer in Turkish.",
		IsCustom: true,
	}, nil)

	var out bytes.Buffer
	require.NoError(t, savePrompt(context.Background(), apiClient, &out, "Answer in Turkish."))
	assert.Equal(t, "saved custom prompt (18 characters)\n", out.String())
}

func TestSavePrompt_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	apiClient := client.NewMockClient(ctrl)

	var out bytes.Buffer
	require.Error(t, savePrompt(context.Background(), apiClient, &out, "  \n"))
	assert.Empty(t, out.String())
}

func TestSavePrompt_BackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	apiClient := client.NewMockClient(ctrl)

	apiClient.EXPECT().SavePrompt(gomock.Any(), gomock.Any()).Return(nil, errors.New("status code 502 (agent backend unavailable)"))

	var out bytes.Buffer
	err := savePrompt(context.Background(), apiClient, &out, "Be brief.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save prompt")
}

func TestReadPromptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.md")
	require.NoError(t, os.WriteFile(path, []byte("Be brief."), 0o600))

	content, err := readPromptFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "Be brief.", content)

	content, err = readPromptFile("-", strings.NewReader("From stdin."))
	require.NoError(t, err)
	assert.Equal(t, "From stdin.", content)

	_, err = readPromptFile(filepath.Join(t.TempDir(), "missing.md"), nil)
	require.Error(t, err)
}
