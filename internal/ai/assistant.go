// Package ai defines the contracts of the generative collaborators. The
// interview core works without any of them.
package ai

import "context"

// Feedback is the structured report returned by the feedback collaborator.
type Feedback struct {
	Score            int      `json:"score" mapstructure:"score"`
	Summary          string   `json:"summary" mapstructure:"summary"`
	Strengths        []string `json:"strengths" mapstructure:"strengths"`
	Weaknesses       []string `json:"weaknesses" mapstructure:"weaknesses"`
	Suggestions      []string `json:"suggestions" mapstructure:"suggestions"`
	IdealResponseTip string   `json:"ideal_response_tip" mapstructure:"idealResponseTip"`
	Raw              string   `json:"-" mapstructure:"-"`
}

// ContentGenerator turns a prompt into text.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// OpeningRequest is the context for a generated interview opening.
type OpeningRequest struct {
	JobRole   string
	Persona   string
	Language  string
	CVSummary string
	Greeting  string
}

// OpeningGenerator decorates the static greeting with a generated opening line.
type OpeningGenerator interface {
	Opening(ctx context.Context, req OpeningRequest) (string, error)
}

// StaticOpening keeps the persona greeting as is.
type StaticOpening struct{}

// Opening returns the greeting unchanged.
func (StaticOpening) Opening(_ context.Context, req OpeningRequest) (string, error) {
	return req.Greeting, nil
}
