package quiz

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/pytutor/pytutor_service/internal/telemetry"
)

// extractArray attempts various strategies to recover a JSON array of
// question objects from raw model output.
// Priorities: cleaned strict parse (fence strip + bracket slice) -> regex
// [ { ... } ] over the raw text -> give up with nil.
func extractArray(content string) ([]map[string]any, bool) {
	log := telemetry.L()

	cleaned := cleanContent(content)
	log.Debug().Str("head", head(cleaned, 100)).Msg("quiz_parse_attempt")

	var arr []map[string]any
	if err := json.Unmarshal([]byte(cleaned), &arr); err == nil {
		return arr, true
	} else {
		log.Error().Err(err).Str("raw", head(content, 500)).Msg("quiz_parse_strict_failed")
	}

	if s := rxArray.FindString(content); s != "" {
		if err := json.Unmarshal([]byte(s), &arr); err == nil {
			log.Info().Msg("quiz_parse_regex_recovered")
			return arr, true
		}
	}
	return nil, false
}

var rxArray = regexp.MustCompile(`(?s)\[\s*\{.*\}\s*\]`)

// cleanContent strips one leading and one trailing markdown fence (with or
// without a language tag) and, failing a leading '[', slices between the
// first '[' and the last ']' to drop surrounding prose.
func cleanContent(content string) string {
	s := strings.TrimSpace(content)

	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
	}
	s = strings.TrimSpace(s)

	if !strings.HasPrefix(s, "[") {
		start := strings.Index(s, "[")
		end := strings.LastIndex(s, "]")
		if start != -1 && end != -1 && end > start {
			s = s[start : end+1]
		}
	}
	return s
}

func head(s string, n int) string {
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
