// Package interview drives a mock interview: it walks the control state
// machine, advances the session value, phrases questions through the persona
// library and produces the final report.
package interview

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/interview-coach/internal/ai"
	"github.com/spigell/interview-coach/internal/assessment"
	"github.com/spigell/interview-coach/internal/catalog"
	"github.com/spigell/interview-coach/internal/feedback"
	"github.com/spigell/interview-coach/internal/lexicon"
	"github.com/spigell/interview-coach/internal/logger"
	"github.com/spigell/interview-coach/internal/persona"
	"github.com/spigell/interview-coach/internal/randutil"
	"github.com/spigell/interview-coach/internal/session"
)

var (
	// ErrIllegalTransition is returned when an operation is not allowed in the current state.
	ErrIllegalTransition = errors.New("illegal state transition")
	// ErrNoSession is returned when an operation needs a running session.
	ErrNoSession = errors.New("no interview session in progress")
	// ErrNoQuestions is returned when the catalog has nothing for the requested role.
	ErrNoQuestions = errors.New("no eligible questions")
)

// Answers shorter than this many words draw a challenge from challenging personas.
const shortAnswerWords = 20

// Config wires the engine collaborators. Zero values are replaced with the
// embedded data, a static opening and an entropy-seeded source.
type Config struct {
	Catalog       *catalog.Catalog
	Personas      *persona.Library
	Scorer        *assessment.Scorer
	Aggregator    *feedback.Aggregator
	Opener        ai.OpeningGenerator
	Source        randutil.Source
	Logger        *zap.Logger
	ThinkingDelay bool
	Wait          WaitFunc
}

// Turn is what the interviewer says next.
type Turn struct {
	State    session.State    `json:"state"`
	Greeting string           `json:"greeting,omitempty"`
	Prompt   string           `json:"prompt,omitempty"`
	Question catalog.Question `json:"question"`
	Number   int              `json:"number"`
	Total    int              `json:"total"`
	Done     bool             `json:"done"`
}

// Report is the outcome of a finished interview.
type Report struct {
	SessionID  string           `json:"session_id"`
	JobRole    string           `json:"job_role"`
	Persona    string           `json:"persona"`
	Answered   int              `json:"answered"`
	Asked      int              `json:"asked"`
	Score      assessment.Score `json:"score"`
	Feedback   *ai.Feedback     `json:"feedback,omitempty"`
	Transcript string           `json:"transcript"`
}

// Engine runs one interview at a time. It is not safe for concurrent use.
type Engine struct {
	machine    *session.Machine
	catalog    *catalog.Catalog
	personas   *persona.Library
	scorer     *assessment.Scorer
	aggregator *feedback.Aggregator
	opener     ai.OpeningGenerator
	src        randutil.Source
	base       *zap.Logger
	logger     *zap.Logger
	delay      bool
	wait       WaitFunc

	session    *session.Session
	persona    persona.Config
	pausedFrom session.State
}

func New(cfg Config) *Engine {
	log := logger.OrNop(cfg.Logger)

	src := cfg.Source
	if src == nil {
		src = randutil.New(0)
	}
	cat := cfg.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	personas := cfg.Personas
	if personas == nil {
		personas = persona.Default(src)
	}
	scorer := cfg.Scorer
	if scorer == nil {
		scorer = assessment.NewScorer(lexicon.Default(), log)
	}
	opener := cfg.Opener
	if opener == nil {
		opener = ai.StaticOpening{}
	}
	wait := cfg.Wait
	if wait == nil {
		wait = WaitFor
	}

	return &Engine{
		machine:    session.NewMachine(log),
		catalog:    cat,
		personas:   personas,
		scorer:     scorer,
		aggregator: cfg.Aggregator,
		opener:     opener,
		src:        src,
		base:       log,
		logger:     log,
		delay:      cfg.ThinkingDelay,
		wait:       wait,
	}
}

// State returns the current control state.
func (e *Engine) State() session.State { return e.machine.State() }

// Session returns a copy of the running session.
func (e *Engine) Session() (session.Session, bool) {
	if e.session == nil {
		return session.Session{}, false
	}
	return *e.session, true
}

// Setup opens a new interview configuration.
func (e *Engine) Setup() error {
	return e.transition(session.StateSetup)
}

// Start creates the session, greets the candidate and asks the first question.
func (e *Engine) Start(ctx context.Context, opts session.Options) (Turn, error) {
	if state := e.machine.State(); state == session.StateIdle || state == session.StateComplete {
		if err := e.Setup(); err != nil {
			return Turn{}, err
		}
	}
	if err := e.transition(session.StateInitializing); err != nil {
		return Turn{}, err
	}

	e.persona = e.personas.Resolve(opts.Persona)
	opts.Persona = e.persona.ID
	opts.Language = persona.NormalizeLanguage(opts.Language)

	s := session.New(e.catalog, e.src, opts)
	if len(s.Questions) == 0 {
		e.machine.TransitionTo(session.StateIdle)
		return Turn{}, fmt.Errorf("%w for role %q", ErrNoQuestions, opts.JobRole)
	}
	e.session = &s
	e.logger = logger.WithFields(e.base, logger.SessionFields(s.ID, s.Persona, string(s.Role))...)

	greeting := e.personas.Greeting(persona.GreetingConfig{
		Persona:  s.Persona,
		Language: s.Language,
		JobRole:  s.JobRole,
	})
	greeting = e.opening(ctx, s, greeting)

	if err := e.transition(session.StateAskQuestion); err != nil {
		return Turn{}, err
	}

	e.logger.Info("interview started",
		zap.String("job_role", s.JobRole),
		zap.String("level", string(s.Level)),
		zap.Int("questions", len(s.Questions)),
	)

	turn := e.turn()
	turn.Greeting = greeting
	return turn, nil
}

func (e *Engine) opening(ctx context.Context, s session.Session, greeting string) string {
	out, err := e.opener.Opening(ctx, ai.OpeningRequest{
		JobRole:   s.JobRole,
		Persona:   e.persona.Name,
		Language:  s.Language,
		CVSummary: s.CVSummary,
		Greeting:  greeting,
	})
	if err != nil {
		e.logger.Warn("opening generation failed, using static greeting", zap.Error(err))
		return greeting
	}
	if strings.TrimSpace(out) == "" {
		return greeting
	}
	return out
}

// Prompt returns the current question as the persona would ask it.
func (e *Engine) Prompt() string {
	if e.session == nil {
		return ""
	}
	q, ok := e.session.CurrentQuestion()
	if !ok {
		return ""
	}

	text := e.personas.FormatQuestionNaturally(q.Text, e.session.Persona, e.session.Language)
	if e.machine.State() != session.StateAskFollowUp || e.session.CurrentIndex == 0 {
		return text
	}
	return joinPhrase(e.lead(), text)
}

// lead is the phrase that acknowledges the previous answer.
func (e *Engine) lead() string {
	s := e.session
	if e.persona.Style == persona.StyleChallenging && len(s.Answers) > 0 {
		last := s.Answers[len(s.Answers)-1]
		if len(strings.Fields(last)) < shortAnswerWords {
			return e.personas.ChallengePhrase(s.Persona, s.Language)
		}
	}
	return e.personas.TransitionPhrase(s.Persona, s.Language)
}

// Listen marks that the question has been delivered and the candidate may answer.
func (e *Engine) Listen() error {
	if e.session == nil {
		return ErrNoSession
	}
	return e.transition(session.StateListening)
}

// Submit records the candidate's answer and moves to the next question or
// to feedback generation when none remain.
func (e *Engine) Submit(ctx context.Context, answer string) (Turn, error) {
	if e.session == nil {
		return Turn{}, ErrNoSession
	}
	if state := e.machine.State(); state == session.StateAskQuestion || state == session.StateAskFollowUp {
		if err := e.Listen(); err != nil {
			return Turn{}, err
		}
	}
	if err := e.transition(session.StateProcessing); err != nil {
		return Turn{}, err
	}

	next := e.session.RecordAnswer(answer)
	e.session = &next
	e.logger.Debug("answer recorded",
		zap.Int("index", next.CurrentIndex-1),
		zap.Int("length", len(answer)),
		zap.Bool("skipped", !session.IsAnswered(answer)),
	)

	if e.delay {
		if err := e.wait(ctx, thinkingDelay(e.src)); err != nil {
			e.Abort()
			return Turn{}, fmt.Errorf("thinking delay: %w", err)
		}
	}

	if next.IsComplete() {
		if err := e.transition(session.StateGeneratingFeedback); err != nil {
			return Turn{}, err
		}
		return Turn{State: e.machine.State(), Number: len(next.Questions), Total: len(next.Questions), Done: true}, nil
	}

	if err := e.transition(session.StateAskFollowUp); err != nil {
		return Turn{}, err
	}
	return e.turn(), nil
}

// Skip records the skip marker for the current question.
func (e *Engine) Skip(ctx context.Context) (Turn, error) {
	return e.Submit(ctx, session.SkipMarker)
}

// EndEarly stops asking questions and moves to feedback generation.
func (e *Engine) EndEarly() error {
	if e.session == nil {
		return ErrNoSession
	}
	if e.machine.State() == session.StateAskQuestion {
		if err := e.Listen(); err != nil {
			return err
		}
	}
	return e.transition(session.StateGeneratingFeedback)
}

// Pause suspends a running interview.
func (e *Engine) Pause() error {
	from := e.machine.State()
	if err := e.transition(session.StatePaused); err != nil {
		return err
	}
	e.pausedFrom = from
	return nil
}

// Resume returns to the state the interview was paused in.
func (e *Engine) Resume() error {
	if e.machine.State() != session.StatePaused {
		return fmt.Errorf("%w: not paused", ErrIllegalTransition)
	}
	return e.transition(e.pausedFrom)
}

// Abort cancels the interview and discards its progress.
func (e *Engine) Abort() {
	if e.machine.State() != session.StateIdle {
		e.machine.TransitionTo(session.StateIdle)
	}
	if e.session != nil {
		e.logger.Info("interview aborted", zap.Int("answered", e.session.AnsweredCount()))
	}
	e.session = nil
	e.pausedFrom = ""
	e.logger = e.base
}

// Finish scores the answers, asks the feedback collaborator and completes the
// interview. When nothing was answered the report carries the local score and
// the error is feedback.ErrNotEnoughResponses.
func (e *Engine) Finish(ctx context.Context) (Report, error) {
	if e.session == nil {
		return Report{}, ErrNoSession
	}
	if state := e.machine.State(); state != session.StateGeneratingFeedback {
		return Report{}, fmt.Errorf("%w: cannot finish from %s", ErrIllegalTransition, state)
	}

	s := *e.session
	local := e.scorer.Score(s.Answers, assessment.Context{
		JobRole:        s.JobRole,
		CVKeywords:     CVKeywords(s.CVSummary),
		ExpectedSkills: e.catalog.ExpectedSkills(s.Role),
	})

	report := Report{
		SessionID:  s.ID,
		JobRole:    s.JobRole,
		Persona:    s.Persona,
		Answered:   s.AnsweredCount(),
		Asked:      len(s.Answers),
		Score:      local,
		Transcript: feedback.BuildTranscript(s),
	}

	fb, err := e.feedback(ctx, s, local)
	if err != nil && !errors.Is(err, feedback.ErrNotEnoughResponses) {
		e.logger.Warn("feedback generation failed, using local score", zap.Error(err))
		fb, err = feedback.FromScore(local), nil
	}
	report.Feedback = fb

	if trErr := e.transition(session.StateComplete); trErr != nil {
		return report, trErr
	}
	e.logger.Info("interview complete",
		zap.Int("answered", report.Answered),
		zap.Float64("total", local.Total),
		zap.Int("percentage", local.Percentage),
	)
	return report, err
}

func (e *Engine) feedback(ctx context.Context, s session.Session, local assessment.Score) (*ai.Feedback, error) {
	if e.aggregator == nil {
		if s.AnsweredCount() == 0 {
			return nil, feedback.ErrNotEnoughResponses
		}
		return feedback.FromScore(local), nil
	}
	return e.aggregator.Generate(ctx, s, e.persona.Name, local)
}

func (e *Engine) transition(target session.State) error {
	if from := e.machine.State(); !e.machine.TransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, target)
	}
	return nil
}

func (e *Engine) turn() Turn {
	q, _ := e.session.CurrentQuestion()
	return Turn{
		State:    e.machine.State(),
		Prompt:   e.Prompt(),
		Question: q,
		Number:   e.session.CurrentIndex + 1,
		Total:    len(e.session.Questions),
	}
}

// CVKeywords splits a CV summary into comma, semicolon or newline separated keywords.
func CVKeywords(summary string) []string {
	parts := strings.FieldsFunc(summary, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n' || r == '|'
	})

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func joinPhrase(lead, text string) string {
	lead = strings.TrimSpace(lead)
	if lead == "" {
		return text
	}
	return lead + " " + text
}
