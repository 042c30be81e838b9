package feedback

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/spigell/interview-coach/internal/ai"
)

const (
	minFeedbackScore = 0
	maxFeedbackScore = 100
)

// parsed is a decoded collaborator response plus which optional fields were present.
type parsed struct {
	feedback ai.Feedback
	hasScore bool
}

// ParseFeedback decodes the collaborator's JSON reply. Fenced code blocks and
// loosely typed values ("82", a single string instead of a list) are accepted.
func ParseFeedback(raw string) (*ai.Feedback, error) {
	p, err := parse(raw)
	if err != nil {
		return nil, err
	}
	return &p.feedback, nil
}

func parse(raw string) (parsed, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return parsed{}, fmt.Errorf("parse feedback response: %w", err)
	}

	var fb ai.Feedback
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &fb,
		TagName:          "mapstructure",
	})
	if err != nil {
		return parsed{}, fmt.Errorf("create feedback decoder: %w", err)
	}
	if err := decoder.Decode(data); err != nil {
		return parsed{}, fmt.Errorf("decode feedback response: %w", err)
	}

	fb.Score = clampScore(fb.Score)
	fb.Summary = strings.TrimSpace(fb.Summary)
	fb.IdealResponseTip = strings.TrimSpace(fb.IdealResponseTip)
	fb.Strengths = compact(fb.Strengths)
	fb.Weaknesses = compact(fb.Weaknesses)
	fb.Suggestions = compact(fb.Suggestions)
	fb.Raw = raw

	_, hasScore := data["score"]
	return parsed{feedback: fb, hasScore: hasScore && data["score"] != nil}, nil
}

// extractJSON strips markdown fences and any prose around the outermost object.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end > start {
		raw = raw[start : end+1]
	}
	return strings.TrimSpace(raw)
}

func clampScore(v int) int {
	return max(minFeedbackScore, min(v, maxFeedbackScore))
}

func compact(items []string) []string {
	out := items[:0:0]
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
