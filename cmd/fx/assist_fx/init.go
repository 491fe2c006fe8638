package assist_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"clubcentral/internal/services"
	"clubcentral/pkg/utils"
)

var Module = fx.Provide(
	ProvideAssistClient,
	ProvideAssistService)

// AssistConfig holds configuration for text generation clients
type AssistConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideAssistClient creates a text generation client based on environment variables
func ProvideAssistClient() (utils.TextAssistClient, error) {
	config := getAssistConfig()

	log.Printf("Initializing %s assist client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAIAssistClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiAssistClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported assist provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

func ProvideAssistService(client utils.TextAssistClient) services.AssistServiceInterface {
	return services.NewAssistService(client)
}

// getAssistConfig reads configuration from environment variables
func getAssistConfig() AssistConfig {
	provider := getEnvWithDefault("ASSIST_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return AssistConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
