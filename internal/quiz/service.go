package quiz

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pytutor/pytutor_service/internal/providers"
	"github.com/pytutor/pytutor_service/internal/telemetry"
	"github.com/pytutor/pytutor_service/internal/usage"
)

// maxQuestions caps the returned quiz; minQuestions is the floor below
// which the whole generation is discarded as a failure.
const (
	maxQuestions = 5
	minQuestions = 3
)

// structuredModels are trusted to follow the JSON-array instruction; any
// other caller preference is overridden by the forced model.
var structuredModels = map[string]bool{
	"gemini-1.5-pro":   true,
	"gemini-1.5-flash": true,
}

type GenerateParams struct {
	Topic            string
	Language         string
	Model            string
	FamiliarityLevel string
	APIKey           string
}

type Service struct {
	client      providers.Client
	ledger      *usage.Ledger
	fallbackKey string
	forcedModel string

	// rdb is optional; when nil the cache is skipped entirely.
	rdb      *redis.Client
	cacheTTL time.Duration
}

func NewService(client providers.Client, ledger *usage.Ledger, fallbackKey, forcedModel string) *Service {
	if forcedModel == "" {
		forcedModel = "gemini-1.5-pro"
	}
	return &Service{client: client, ledger: ledger, fallbackKey: fallbackKey, forcedModel: forcedModel}
}

// WithCache enables result caching keyed by the generation inputs.
func (s *Service) WithCache(rdb *redis.Client, ttl time.Duration) *Service {
	s.rdb = rdb
	s.cacheTTL = ttl
	return s
}

// Generate produces 0 to 5 validated questions. Every failure mode, from a
// missing key to unparseable output, collapses to an empty result with the
// cause logged; the handler decides how to surface that.
func (s *Service) Generate(ctx context.Context, p GenerateParams) []Question {
	log := telemetry.L().With().Str("topic", p.Topic).Logger()

	apiKey := p.APIKey
	if apiKey == "" {
		apiKey = s.fallbackKey
	}
	if apiKey == "" {
		log.Error().Msg("quiz_no_api_key")
		return nil
	}

	model := s.selectModel(p.Model)

	if cached, ok := s.cacheGet(ctx, p, model); ok {
		log.Info().Int("questions", len(cached)).Msg("quiz_cache_hit")
		return cached
	}

	prompt := SystemMessage() + "\n\n" + BuildUserMessage(p.Topic, p.Language, p.FamiliarityLevel)

	content, err := s.client.Complete(ctx, providers.CompletionRequest{
		APIKey: apiKey,
		Model:  model,
		Prompt: prompt,
		Config: providers.QuizConfig(),
		Safety: true,
	})
	if err != nil {
		log.Error().Err(err).Str("kind", string(providers.Classify(err))).Msg("quiz_generation_failed")
		return nil
	}

	// Usage counts as soon as the round trip succeeds, whether or not the
	// output turns out to be parseable.
	s.ledger.Record(apiKey, usage.Estimate(prompt)+usage.Estimate(content))

	arr, ok := extractArray(content)
	if !ok {
		log.Error().Msg("quiz_output_unrecoverable")
		return nil
	}
	if len(arr) == 0 {
		log.Error().Msg("quiz_empty_data")
		return nil
	}
	if len(arr) < minQuestions {
		log.Error().Int("count", len(arr)).Msg("quiz_too_few_questions")
		return nil
	}

	var questions []Question
	for _, el := range arr {
		q, ok := buildQuestion(el, p.Topic)
		if !ok {
			continue
		}
		questions = append(questions, q)
	}
	if len(questions) == 0 {
		log.Error().Msg("quiz_no_valid_questions")
		return nil
	}
	if len(questions) < minQuestions {
		log.Error().Int("count", len(questions)).Msg("quiz_too_few_valid_questions")
		return nil
	}
	if len(questions) > maxQuestions {
		questions = questions[:maxQuestions]
	}

	s.cacheSet(ctx, p, model, questions)
	return questions
}

func (s *Service) selectModel(requested string) string {
	if structuredModels[requested] {
		return requested
	}
	return s.forcedModel
}

func cacheKey(p GenerateParams, model string) string {
	h := sha256.Sum256([]byte(strings.Join([]string{p.Topic, p.Language, p.FamiliarityLevel, model}, "|")))
	return "quiz:" + hex.EncodeToString(h[:])
}

func (s *Service) cacheGet(ctx context.Context, p GenerateParams, model string) ([]Question, bool) {
	if s.rdb == nil {
		return nil, false
	}
	raw, err := s.rdb.Get(ctx, cacheKey(p, model)).Result()
	if err != nil {
		return nil, false
	}
	var qs []Question
	if json.Unmarshal([]byte(raw), &qs) != nil || len(qs) == 0 {
		return nil, false
	}
	return qs, true
}

func (s *Service) cacheSet(ctx context.Context, p GenerateParams, model string, qs []Question) {
	if s.rdb == nil || s.cacheTTL <= 0 {
		return
	}
	b, err := json.Marshal(qs)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, cacheKey(p, model), b, s.cacheTTL).Err(); err != nil {
		log := telemetry.L()
		log.Warn().Err(err).Msg("quiz_cache_set_err")
	}
}
