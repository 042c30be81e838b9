// Package feedback composes the interview transcript into a prompt for the
// generative feedback collaborator and merges its answer with the local score.
package feedback

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/interview-coach/internal/ai"
	"github.com/spigell/interview-coach/internal/assessment"
	"github.com/spigell/interview-coach/internal/logger"
	"github.com/spigell/interview-coach/internal/session"
)

// ErrNotEnoughResponses is returned when a session has no answered question.
var ErrNotEnoughResponses = errors.New("not enough responses to generate feedback")

const (
	minAnswered         = 1
	defaultMaxLogLength = 200
)

type Aggregator struct {
	generator ai.ContentGenerator
	logger    *zap.Logger
	maxLogLen int
}

// NewAggregator creates an Aggregator. A nil generator makes Generate return
// feedback derived from the local score only.
func NewAggregator(generator ai.ContentGenerator, log *zap.Logger, maxLogLength int) *Aggregator {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	return &Aggregator{
		generator: generator,
		logger:    logger.OrNop(log),
		maxLogLen: maxLogLength,
	}
}

// Generate asks the collaborator for feedback on s and merges the result with local.
func (a *Aggregator) Generate(ctx context.Context, s session.Session, personaName string, local assessment.Score) (*ai.Feedback, error) {
	if s.AnsweredCount() < minAnswered {
		return nil, ErrNotEnoughResponses
	}

	if a.generator == nil {
		return FromScore(local), nil
	}

	prompt := BuildPrompt(s, personaName)
	a.logger.Debug("feedback request",
		zap.String(logger.FieldSession, s.ID),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, a.maxLogLen)),
	)

	raw, err := a.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate feedback: %w", err)
	}

	a.logger.Debug("feedback response",
		zap.String(logger.FieldSession, s.ID),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, a.maxLogLen)),
	)

	p, err := parse(raw)
	if err != nil {
		return nil, err
	}

	return merge(p, local), nil
}

// FromScore builds a feedback report from the deterministic score alone.
func FromScore(local assessment.Score) *ai.Feedback {
	return &ai.Feedback{
		Score:      clampScore(local.Percentage),
		Summary:    local.OverallFeedback,
		Strengths:  append([]string(nil), local.Strengths...),
		Weaknesses: append([]string(nil), local.Improvements...),
	}
}

func merge(p parsed, local assessment.Score) *ai.Feedback {
	fb := p.feedback
	if !p.hasScore {
		fb.Score = clampScore(local.Percentage)
	}
	if fb.Summary == "" {
		fb.Summary = local.OverallFeedback
	}
	if len(fb.Strengths) == 0 {
		fb.Strengths = append([]string(nil), local.Strengths...)
	}
	if len(fb.Weaknesses) == 0 {
		fb.Weaknesses = append([]string(nil), local.Improvements...)
	}
	return &fb
}
