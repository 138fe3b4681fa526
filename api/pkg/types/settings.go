package types

// Settings are opaque to the gateway, they are whatever the agent backend stores.
type SettingsResponse struct {
	Settings           map[string]interface{} `json:"settings"`
	PromptContent      string                 `json:"prompt_content"`
	CustomPromptExists bool                   `json:"custom_prompt_exists"`
}

// SettingsUpdateRequest is merged into the stored settings, unknown keys are
// ignored by the backend.
type SettingsUpdateRequest struct {
	Settings map[string]interface{} `json:"settings"`
}

type PromptResponse struct {
	// Prompt is "default" or "custom"
	Prompt   string `json:"prompt"`
	Content  string `json:"content"`
	IsCustom bool   `json:"is_custom"`
}

// PromptUpdateRequest saves a custom prompt and makes it the active one
type PromptUpdateRequest struct {
	Content string `json:"content"`
}
