package assessment

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/interview-coach/internal/lexicon"
	"github.com/spigell/interview-coach/internal/session"
)

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// Scorer grades answers with the given lexicon.
type Scorer struct {
	lex    *lexicon.Lexicon
	logger *zap.Logger
}

// NewScorer creates a scorer. A nil lexicon selects the embedded one.
func NewScorer(lex *lexicon.Lexicon, logger *zap.Logger) *Scorer {
	if lex == nil {
		lex = lexicon.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{lex: lex, logger: logger}
}

// answerText is the normalised input shared by the dimension scorers.
type answerText struct {
	raw       string
	lower     string
	words     []string
	sentences []string
}

func newAnswerText(answers []string) answerText {
	kept := make([]string, 0, len(answers))
	for _, a := range answers {
		if session.IsAnswered(a) {
			kept = append(kept, strings.TrimSpace(a))
		}
	}

	raw := strings.Join(kept, " ")
	var sentences []string
	for _, s := range sentenceSplit.Split(raw, -1) {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}

	return answerText{
		raw:       raw,
		lower:     strings.ToLower(raw),
		words:     strings.Fields(raw),
		sentences: sentences,
	}
}

func (a answerText) length() int { return utf8.RuneCountInString(a.raw) }

// Score grades the answers. Blank and skipped answers are ignored; if nothing
// remains the fixed incomplete result is returned.
func (s *Scorer) Score(answers []string, ctx Context) Score {
	if session.CountAnswered(answers) == 0 {
		s.logger.Debug("no answered questions, returning incomplete score")
		return incompleteScore()
	}

	text := newAnswerText(answers)
	dims := []Dimension{
		s.dimension(Clarity, s.clarity(text)),
		s.dimension(Relevance, s.relevance(text, ctx)),
		s.dimension(Confidence, s.confidence(text)),
		s.dimension(Structure, s.structure(text)),
		s.dimension(RoleAlignment, s.roleAlignment(text, ctx)),
	}

	total := 0.0
	for _, d := range dims {
		total += d.Score
	}
	total = round1(total)
	percentage := Percentage(total)

	result := Score{
		Total:           total,
		Percentage:      percentage,
		Dimensions:      dims,
		Strengths:       strengths(dims),
		Improvements:    improvements(dims),
		OverallFeedback: pickBand(overallBands, float64(percentage)),
	}

	s.logger.Debug("interview scored",
		zap.Float64("total", total),
		zap.Int("percentage", percentage),
		zap.Int("words", len(text.words)),
	)

	return result
}

// Percentage normalises a total to 0-100 against MaxTotal.
func Percentage(total float64) int {
	return int(math.Round(100 * total / MaxTotal))
}

func (s *Scorer) dimension(name string, score float64) Dimension {
	score = round1(clamp(score, 0, MaxDimensionScore))
	return Dimension{Name: name, Score: score, Feedback: pickBand(dimensionBands[name], score)}
}

func (s *Scorer) clarity(t answerText) float64 {
	lex := s.lex.Interview
	score := 2.5

	if n := len(t.sentences); n > 0 {
		chars := 0
		for _, sentence := range t.sentences {
			chars += utf8.RuneCountInString(sentence)
		}
		avg := float64(chars) / float64(n)
		switch {
		case avg >= 50 && avg <= 180:
			score += 1.0
		case avg > 180:
			score -= 0.5
		case avg < 20:
			score -= 0.5
		}
	}

	score += math.Min(0.25*float64(lex.Connectors.Distinct(t.lower)), 1.0)

	if words := len(t.words); words > 0 {
		density := float64(lex.Fillers.Count(t.lower)) / float64(words)
		switch {
		case density > 0.05:
			score -= 1.0
		case density > 0.02:
			score -= 0.5
		}
	}

	switch length := t.length(); {
	case length < 50:
		score -= 1.0
	case length < 100:
		score -= 0.5
	}

	return score
}

func (s *Scorer) relevance(t answerText, ctx Context) float64 {
	score := 2.0

	score += math.Min(0.5*float64(matchAny(t.lower, ctx.CVKeywords)), 1.5)
	score += math.Min(0.5*float64(matchAny(t.lower, ctx.ExpectedSkills)), 1.5)

	if fields := strings.Fields(strings.ToLower(ctx.JobRole)); len(fields) > 0 {
		if lexicon.NewTermSet(fields[0]).Any(t.lower) {
			score += 0.5
		}
	}

	if t.length() < 50 {
		score -= 1.0
	}

	return score
}

func (s *Scorer) confidence(t answerText) float64 {
	lex := s.lex.Interview
	score := 3.0

	score -= math.Min(0.3*float64(lex.Hedges.Count(t.lower)), 2.0)
	score += math.Min(0.25*float64(lex.ActionVerbs.Count(t.lower)), 1.0)
	score += math.Min(0.5*float64(lex.Ownership.Count(t.lower)), 1.0)

	if len(t.words) > 0 {
		first := strings.Trim(t.words[0], ",.!?;:")
		if !lex.WeakOpeners.Contains(first) {
			score += 0.25
		}
	}

	return score
}

func (s *Scorer) structure(t answerText) float64 {
	lex := s.lex.Interview
	score := 2.0

	for _, cues := range []lexicon.TermSet{lex.Star.Situation, lex.Star.Task, lex.Star.Action, lex.Star.Result} {
		if cues.Any(t.lower) {
			score += 0.5
		}
	}
	if lex.ExampleMarkers.Any(t.lower) {
		score += 0.5
	}
	if lexicon.QuantCount(t.raw) > 0 {
		score += 0.75
	}
	score += math.Min(0.25*float64(lex.Sequencing.Distinct(t.lower)), 0.5)

	return score
}

func (s *Scorer) roleAlignment(t answerText, ctx Context) float64 {
	lex := s.lex.Interview
	role := strings.ToLower(ctx.JobRole)
	score := 2.5

	if lex.SeniorMarkers.Any(role) {
		score += math.Min(0.4*float64(lex.Leadership.Distinct(t.lower)), 1.5)
		score -= math.Min(0.3*float64(lex.JuniorCoded.Count(t.lower)), 1.0)
	} else {
		score += math.Min(0.4*float64(lex.Growth.Distinct(t.lower)), 1.5)
	}

	if lex.TechnicalMarkers.Any(role) {
		score += math.Min(0.3*float64(lex.TechnicalDepth.Distinct(t.lower)), 1.0)
	}

	return score
}

// strengths returns the feedback of the top two dimensions scoring at least 3.
// Ties keep dimension order.
func strengths(dims []Dimension) []string {
	ranked := append([]Dimension(nil), dims...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })

	var out []string
	for _, d := range ranked {
		if len(out) == maxStrengths || d.Score < strengthThreshold {
			break
		}
		out = append(out, d.Feedback)
	}

	if len(out) == 0 {
		out = []string{genericStrength}
	}
	return out
}

// improvements returns the feedback of the lowest dimension when it is below 4.
// Ties pick the first dimension in order.
func improvements(dims []Dimension) []string {
	if len(dims) == 0 {
		return []string{}
	}

	lowest := dims[0]
	for _, d := range dims[1:] {
		if d.Score < lowest.Score {
			lowest = d
		}
	}

	if lowest.Score >= improvementThreshold {
		return []string{}
	}
	return []string{lowest.Feedback}
}

func incompleteScore() Score {
	dims := make([]Dimension, 0, 5)
	for _, name := range []string{Clarity, Relevance, Confidence, Structure, RoleAlignment} {
		dims = append(dims, Dimension{Name: name, Score: 0, Feedback: "No answer was recorded."})
	}
	return Score{
		Total:           0,
		Percentage:      0,
		Dimensions:      dims,
		Strengths:       []string{},
		Improvements:    []string{"Answer at least one question so your responses can be evaluated."},
		OverallFeedback: IncompleteFeedback,
	}
}

// matchAny counts how many keywords occur in text.
func matchAny(text string, keywords []string) int {
	return lexicon.NewTermSet(keywords...).Distinct(text)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
