package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pytutor/pytutor_service/internal/telemetry"
)

// safetySettings relax blocking to BLOCK_ONLY_HIGH so that code-heavy quiz
// content is not refused outright.
var safetySettings = []map[string]string{
	{"category": "HARM_CATEGORY_HARASSMENT", "threshold": "BLOCK_ONLY_HIGH"},
	{"category": "HARM_CATEGORY_HATE_SPEECH", "threshold": "BLOCK_ONLY_HIGH"},
	{"category": "HARM_CATEGORY_SEXUALLY_EXPLICIT", "threshold": "BLOCK_ONLY_HIGH"},
	{"category": "HARM_CATEGORY_DANGEROUS_CONTENT", "threshold": "BLOCK_ONLY_HIGH"},
}

type Gemini struct {
	// BaseURL overrides the Google endpoint, used by tests.
	BaseURL string
	DryRun  bool
}

func (c *Gemini) Name() SourceName { return SourceGemini }

func (c *Gemini) endpoint(model string) string {
	base := c.BaseURL
	if base == "" {
		base = "https://generativelanguage.googleapis.com/v1beta"
	}
	return fmt.Sprintf("%s/models/%s:generateContent", base, model)
}

func (c *Gemini) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if req.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	log := telemetry.L().With().Str("provider", string(c.Name())).Str("model", req.Model).Logger()

	// DRY_RUN mode: skip API call
	if c.DryRun {
		log.Info().Msg("gemini_dry_run_enabled")
		return "simulated completion", nil
	}

	genCfg := map[string]any{
		"temperature":     req.Config.Temperature,
		"topP":            req.Config.TopP,
		"topK":            req.Config.TopK,
		"maxOutputTokens": req.Config.MaxOutputTokens,
	}
	body := map[string]any{
		"contents": []any{
			map[string]any{
				"role": "user",
				"parts": []any{
					map[string]string{"text": req.Prompt},
				},
			},
		},
		"generationConfig": genCfg,
	}
	if req.Safety {
		body["safetySettings"] = safetySettings
	}

	b, err := json.Marshal(body)
	if err != nil {
		return "", &ProviderError{Kind: KindUnclassified, Err: err}
	}
	log.Debug().Int("body_len", len(b)).Msg("gemini_request")

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.endpoint(req.Model), bytes.NewReader(b))
	if err != nil {
		return "", &ProviderError{Kind: KindUnclassified, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-goog-api-key", req.APIKey)

	resp, err := http.DefaultClient.Do(httpReq)
	if err != nil {
		log.Error().Err(err).Msg("gemini_request_failed")
		return "", &ProviderError{Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	log.Debug().Int("status_code", resp.StatusCode).Int("body_len", len(raw)).Msg("gemini_response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error().Str("status", resp.Status).Msg("gemini_http_error")
		return "", &ProviderError{
			Kind:   kindFromStatus(resp.StatusCode, string(raw)),
			Status: resp.Status,
			Err:    errors.New("http " + resp.Status),
		}
	}

	var out struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
			FinishReason string `json:"finishReason"`
		} `json:"candidates"`
		PromptFeedback *struct {
			BlockReason string `json:"blockReason"`
		} `json:"promptFeedback"`
	}
	_ = json.Unmarshal(raw, &out)

	if out.PromptFeedback != nil && out.PromptFeedback.BlockReason != "" {
		return "", &ProviderError{
			Kind: KindModel,
			Err:  errors.New("blocked: " + out.PromptFeedback.BlockReason),
		}
	}

	var text string
	if len(out.Candidates) > 0 {
		var sb strings.Builder
		for _, p := range out.Candidates[0].Content.Parts {
			sb.WriteString(p.Text)
		}
		text = sb.String()
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", &ProviderError{Kind: KindUnclassified, Err: errors.New("empty candidates")}
	}
	return text, nil
}
