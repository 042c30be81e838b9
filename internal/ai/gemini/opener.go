package gemini

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/interview-coach/internal/ai"
	"github.com/spigell/interview-coach/internal/logger"
)

const maxOpeningRunes = 300

// Opener asks the model for one personalised line that follows the persona greeting.
type Opener struct {
	generator ai.ContentGenerator
	logger    *zap.Logger
}

// NewOpener creates an OpeningGenerator backed by generator.
func NewOpener(generator ai.ContentGenerator, log *zap.Logger) *Opener {
	return &Opener{generator: generator, logger: logger.OrNop(log)}
}

// Opening returns the greeting followed by a generated opening line.
func (o *Opener) Opening(ctx context.Context, req ai.OpeningRequest) (string, error) {
	if o == nil || o.generator == nil {
		return req.Greeting, nil
	}

	line, err := o.generator.GenerateContent(ctx, buildOpeningPrompt(req))
	if err != nil {
		return "", fmt.Errorf("generate opening: %w", err)
	}

	line = strings.Trim(strings.TrimSpace(line), `"`)
	if line == "" {
		return req.Greeting, nil
	}
	if utf8.RuneCountInString(line) > maxOpeningRunes {
		line = string([]rune(line)[:maxOpeningRunes])
	}

	o.logger.Debug("generated interview opening",
		zap.Int("length", utf8.RuneCountInString(line)),
		zap.String("preview", logger.TruncateForLog(line, 80)),
	)

	if strings.TrimSpace(req.Greeting) == "" {
		return line, nil
	}
	return req.Greeting + " " + line, nil
}

func buildOpeningPrompt(req ai.OpeningRequest) string {
	var b strings.Builder
	b.WriteString("You are a mock interviewer. Write ONE short sentence that follows the greeting below ")
	b.WriteString("and makes the candidate feel the interview is tailored to them. ")
	b.WriteString("Do not ask a question. Reply with the sentence only.\n\n")
	fmt.Fprintf(&b, "Role: %s\n", req.JobRole)
	fmt.Fprintf(&b, "Interviewer persona: %s\n", req.Persona)
	fmt.Fprintf(&b, "Language: %s\n", req.Language)
	if cv := strings.TrimSpace(req.CVSummary); cv != "" {
		fmt.Fprintf(&b, "Candidate background: %s\n", logger.TruncateForLog(cv, 600))
	}
	fmt.Fprintf(&b, "Greeting: %s\n", req.Greeting)
	return b.String()
}
