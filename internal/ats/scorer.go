package ats

import (
	"sort"

	"go.uber.org/zap"

	"github.com/spigell/interview-coach/internal/lexicon"
)

// Check computes one independently capped sub-score.
type Check interface {
	Name() string
	Max() int
	Apply(doc *document, lex *lexicon.Resume) Outcome
}

// Outcome is what a check contributes to the result.
type Outcome struct {
	Score           int
	Issues          []Issue
	Recommendations []string
}

// Scorer runs the checks in order and assembles the result.
type Scorer struct {
	lex    *lexicon.Lexicon
	logger *zap.Logger
	checks []Check
}

// NewScorer creates a scorer with the four standard checks. A nil lexicon
// selects the embedded one.
func NewScorer(lex *lexicon.Lexicon, logger *zap.Logger) *Scorer {
	if lex == nil {
		lex = lexicon.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scorer{
		lex:    lex,
		logger: logger,
		checks: []Check{
			newKeywordsCheck(),
			newImpactCheck(),
			newFormattingCheck(),
			newCompletenessCheck(),
		},
	}
}

// Score evaluates resume text, optionally against a job description.
func (s *Scorer) Score(resume, jobDescription string) Result {
	doc := newDocument(resume, jobDescription)

	var (
		breakdown Breakdown
		issues    []Issue
		recs      []string
	)

	for _, check := range s.checks {
		out := check.Apply(doc, &s.lex.Resume)
		score := clamp(out.Score, 0, check.Max())

		s.logger.Debug("ats check",
			zap.String("name", check.Name()),
			zap.Int("score", score),
			zap.Int("max", check.Max()),
			zap.Int("issues", len(out.Issues)),
		)

		switch check.Name() {
		case Keywords:
			breakdown.Keywords = score
		case Impact:
			breakdown.Impact = score
		case Formatting:
			breakdown.Formatting = score
		case Completeness:
			breakdown.Completeness = score
		}

		issues = append(issues, out.Issues...)
		recs = append(recs, out.Recommendations...)
	}

	// Critical findings first; generation order is kept within a severity.
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Severity.rank() < issues[j].Severity.rank()
	})

	if len(issues) > maxIssues {
		issues = issues[:maxIssues]
	}
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	if issues == nil {
		issues = []Issue{}
	}
	if recs == nil {
		recs = []string{}
	}

	result := Result{
		OverallScore:    clamp(breakdown.Sum(), 0, MaxOverall),
		Breakdown:       breakdown,
		Issues:          issues,
		Recommendations: recs,
	}

	s.logger.Debug("ats scored",
		zap.Int("overall", result.OverallScore),
		zap.Int("words", doc.wordCount),
		zap.Bool("job_description", doc.hasJobDescription()),
	)

	return result
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
