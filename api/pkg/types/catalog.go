package types

type VoicesResponse struct {
	Voices []string `json:"voices"`
}

type ModelsResponse struct {
	Models []string `json:"models"`
}

// DefaultVoices is served when the backend cannot list its voices
var DefaultVoices = []string{"ayhan", "serdar"}

// DefaultLLMModels is served when the backend cannot list its models
var DefaultLLMModels = []string{
	"ministral-3:8b",
	"qwen3:8b",
	"llama3.2:3b",
	"gemma2:2b",
}
