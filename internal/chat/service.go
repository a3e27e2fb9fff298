package chat

import (
	"context"
	"fmt"

	"github.com/pytutor/pytutor_service/internal/providers"
	"github.com/pytutor/pytutor_service/internal/telemetry"
	"github.com/pytutor/pytutor_service/internal/usage"
)

type Params struct {
	Topic            string
	Language         string
	Model            string
	Query            string
	FamiliarityLevel string
	ConversationMode string
	APIKey           string
}

type Service struct {
	client       providers.Client
	ledger       *usage.Ledger
	fallbackKey  string
	defaultModel string
}

func NewService(client providers.Client, ledger *usage.Ledger, fallbackKey, defaultModel string) *Service {
	return &Service{client: client, ledger: ledger, fallbackKey: fallbackKey, defaultModel: defaultModel}
}

// Answer returns displayable text in every case. Provider failures come
// back as "Error: ..." strings, never as an error value, so the handler
// always has something to show the user.
func (s *Service) Answer(ctx context.Context, p Params) string {
	log := telemetry.L().With().Str("topic", p.Topic).Str("model", p.Model).Logger()

	apiKey := p.APIKey
	if apiKey == "" {
		apiKey = s.fallbackKey
	}
	if apiKey == "" {
		return "Error: No API key provided. Please enter your Google Gemini API key in the settings."
	}

	model := p.Model
	if model == "" {
		model = s.defaultModel
	}

	prompt := CombinePrompts(
		SystemMessage(),
		BuildUserMessage(p.Topic, p.Language, p.Query, p.FamiliarityLevel, p.ConversationMode),
	)

	text, err := s.client.Complete(ctx, providers.CompletionRequest{
		APIKey: apiKey,
		Model:  model,
		Prompt: prompt,
		Config: providers.ChatConfig(),
	})
	if err != nil {
		log.Error().Err(err).Str("kind", string(providers.Classify(err))).Msg("llm_response_failed")
		switch providers.Classify(err) {
		case providers.KindCredential:
			return "Error: Invalid or missing Google Gemini API key. Please check the backend configuration."
		case providers.KindNetwork:
			return "Error: Network issue while connecting to Google Gemini API. Please try again later."
		case providers.KindModel:
			return fmt.Sprintf("Error: The selected model is not available. Please try a different model. Details: %v", err)
		default:
			return fmt.Sprintf("Error: An unexpected issue occurred while processing your request. Details: %v", err)
		}
	}

	// Failed calls do not record usage; only completed round trips count
	// against the local quota.
	s.ledger.Record(apiKey, usage.Estimate(prompt)+usage.Estimate(text))

	return text
}
