// Package session holds the interview session value and the control-state
// machine that drives it.
package session

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spigell/interview-coach/internal/catalog"
	"github.com/spigell/interview-coach/internal/randutil"
)

const (
	// DefaultQuestionCount is used when the caller does not ask for a count.
	DefaultQuestionCount = 5
	// SkipMarker is recorded in place of an answer for a skipped question.
	SkipMarker = "[skipped]"
)

// Options configure a new session.
type Options struct {
	JobRole       string
	Language      string
	Persona       string
	CVSummary     string
	QuestionCount int
}

// Session is an interview in progress. It has value semantics: every
// operation that advances it returns a new Session.
type Session struct {
	ID           string             `json:"id"`
	Questions    []catalog.Question `json:"questions"`
	CurrentIndex int                `json:"current_index"`
	Answers      []string           `json:"answers"`
	JobRole      string             `json:"job_role"`
	Role         catalog.RoleBucket `json:"role"`
	Level        catalog.Level      `json:"level"`
	Persona      string             `json:"persona"`
	Language     string             `json:"language"`
	CVSummary    string             `json:"cv_summary,omitempty"`
	StartedAt    time.Time          `json:"started_at"`
}

// New classifies the job role and draws an ordered question list. It never
// fails; a small catalog just yields fewer questions.
func New(cat *catalog.Catalog, src randutil.Source, opts Options) Session {
	count := opts.QuestionCount
	if count <= 0 {
		count = DefaultQuestionCount
	}

	role := catalog.DetectRoleType(opts.JobRole)
	level := catalog.DetectLevel(opts.JobRole)

	return Session{
		ID:        uuid.NewString(),
		Questions: cat.QuestionsForInterview(src, role, level, count),
		Answers:   []string{},
		JobRole:   strings.TrimSpace(opts.JobRole),
		Role:      role,
		Level:     level,
		Persona:   strings.TrimSpace(opts.Persona),
		Language:  strings.TrimSpace(opts.Language),
		CVSummary: strings.TrimSpace(opts.CVSummary),
		StartedAt: time.Now(),
	}
}

// CurrentQuestion returns the pending question; ok is false once every
// question has been answered.
func (s Session) CurrentQuestion() (catalog.Question, bool) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return catalog.Question{}, false
	}
	return s.Questions[s.CurrentIndex], true
}

// RecordAnswer returns a copy with the answer appended and the index advanced.
// The receiver is not modified. Answers beyond the last question are ignored.
func (s Session) RecordAnswer(answer string) Session {
	if s.IsComplete() {
		return s.clone()
	}

	next := s.clone()
	next.Answers = append(next.Answers, answer)
	next.CurrentIndex++
	return next
}

// Skip records the skip marker for the current question.
func (s Session) Skip() Session {
	return s.RecordAnswer(SkipMarker)
}

// IsComplete reports whether every question has been answered.
func (s Session) IsComplete() bool {
	return s.CurrentIndex >= len(s.Questions)
}

// Remaining is the number of unanswered questions.
func (s Session) Remaining() int {
	if n := len(s.Questions) - s.CurrentIndex; n > 0 {
		return n
	}
	return 0
}

// Exchange is one asked question and the candidate's reply.
type Exchange struct {
	Question catalog.Question
	Answer   string
}

// Exchanges pairs every consumed question with its recorded answer.
func (s Session) Exchanges() []Exchange {
	n := len(s.Answers)
	if n > len(s.Questions) {
		n = len(s.Questions)
	}

	out := make([]Exchange, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Exchange{Question: s.Questions[i], Answer: s.Answers[i]})
	}
	return out
}

// AnsweredCount counts answers that are neither blank nor skipped.
func (s Session) AnsweredCount() int {
	return CountAnswered(s.Answers)
}

// CountAnswered counts answers that are neither blank nor the skip marker.
func CountAnswered(answers []string) int {
	n := 0
	for _, a := range answers {
		if IsAnswered(a) {
			n++
		}
	}
	return n
}

// IsAnswered reports whether a recorded answer carries content.
func IsAnswered(answer string) bool {
	trimmed := strings.TrimSpace(answer)
	return trimmed != "" && !strings.EqualFold(trimmed, SkipMarker)
}

func (s Session) clone() Session {
	next := s
	next.Questions = append([]catalog.Question(nil), s.Questions...)
	next.Answers = append(make([]string, 0, len(s.Answers)+1), s.Answers...)
	return next
}
