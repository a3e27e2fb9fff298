package quiz

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pytutor/pytutor_service/internal/telemetry"
)

type Question struct {
	Question               string   `json:"question"`
	Options                []string `json:"options"`
	CorrectAnswer          int      `json:"correct_answer"`
	Explanation            string   `json:"explanation"`
	ImprovementSuggestions []string `json:"improvement_suggestions"`
}

// buildQuestion turns one loosely typed element into a valid Question.
// Every field has a fallback; only a missing/empty options list makes the
// element unsalvageable.
func buildQuestion(el map[string]any, topic string) (Question, bool) {
	log := telemetry.L()

	options := toStringSlice(el["options"])
	if len(options) == 0 {
		log.Error().Msg("quiz_question_has_no_options")
		return Question{}, false
	}

	suggestions := toStringSlice(el["improvement_suggestions"])
	if len(suggestions) == 0 {
		suggestions = []string{
			fmt.Sprintf("Review the concept of %s in more detail.", topic),
			fmt.Sprintf("Practice with more examples to better understand %s.", topic),
			fmt.Sprintf("Consider reviewing the documentation for %s.", topic),
		}
	}

	return Question{
		Question:               stringOr(el["question"], "Question text not provided"),
		Options:                options,
		CorrectAnswer:          coerceAnswerIndex(el["correct_answer"], len(options)),
		Explanation:            stringOr(el["explanation"], "Explanation not provided"),
		ImprovementSuggestions: suggestions,
	}, true
}

// coerceAnswerIndex never rejects: strings get an integer conversion,
// anything missing, non-integer or out of range falls back to 0 with a
// warning.
func coerceAnswerIndex(v any, optionCount int) int {
	log := telemetry.L()

	var idx int
	switch t := v.(type) {
	case float64:
		if t != math.Trunc(t) {
			log.Warn().Float64("correct_answer", t).Msg("quiz_answer_not_integer_default_0")
			return 0
		}
		idx = int(t)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			log.Warn().Str("correct_answer", t).Msg("quiz_answer_bad_format_default_0")
			return 0
		}
		idx = n
	default:
		log.Warn().Interface("correct_answer", v).Msg("quiz_answer_invalid_default_0")
		return 0
	}

	if idx < 0 || idx >= optionCount {
		log.Warn().Int("correct_answer", idx).Int("options", optionCount).Msg("quiz_answer_out_of_range_default_0")
		return 0
	}
	return idx
}

func stringOr(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

func toStringSlice(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		var out []string
		for _, it := range t {
			out = append(out, str(it))
		}
		return out
	default:
		return nil
	}
}

func str(v any) string {
	switch t := v.(type) {
	case string:
		return t
	default:
		b, _ := json.Marshal(v)
		return string(b)
	}
}
