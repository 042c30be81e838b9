package feedback

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spigell/interview-coach/internal/assessment"
	"github.com/spigell/interview-coach/internal/catalog"
	"github.com/spigell/interview-coach/internal/session"
)

type stubGenerator struct {
	response   string
	err        error
	calls      int
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	return s.response, s.err
}

func testSession(answers ...string) session.Session {
	s := session.Session{
		ID:        "s-1",
		JobRole:   "Backend Engineer",
		CVSummary: "Five years of Go",
		Questions: []catalog.Question{
			{ID: "q1", Text: "Tell me about yourself."},
			{ID: "q2", Text: "Describe a hard bug you fixed."},
		},
	}
	for _, a := range answers {
		s = s.RecordAnswer(a)
	}
	return s
}

var localScore = assessment.Score{
	Total:           15,
	Percentage:      60,
	Strengths:       []string{"local strength"},
	Improvements:    []string{"local improvement"},
	OverallFeedback: "local summary",
}

func TestBuildTranscript(t *testing.T) {
	s := testSession("I build APIs.", session.SkipMarker)

	want := "INTERVIEWER: Tell me about yourself.\nCANDIDATE: I build APIs.\n" +
		"INTERVIEWER: Describe a hard bug you fixed.\nCANDIDATE: [skipped]"
	if got := BuildTranscript(s); got != want {
		t.Fatalf("unexpected transcript:\n%s", got)
	}

	if got := BuildTranscript(testSession()); got != "" {
		t.Fatalf("expected empty transcript, got %q", got)
	}
}

func TestBuildPromptFillsPlaceholders(t *testing.T) {
	prompt := BuildPrompt(testSession("I build APIs."), "Recruiter")

	for _, want := range []string{"Backend Engineer", "Recruiter", "Five years of Go", "CANDIDATE: I build APIs."} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("expected prompt to contain %q", want)
		}
	}
	if strings.Contains(prompt, "{{") {
		t.Fatalf("unreplaced placeholder in prompt: %s", prompt)
	}

	s := testSession("x")
	s.CVSummary = ""
	if !strings.Contains(BuildPrompt(s, ""), noneValue) {
		t.Fatal("expected none placeholder for missing context")
	}
}

func TestParseFeedback(t *testing.T) {
	cases := []struct {
		name      string
		raw       string
		score     int
		strengths int
		tip       string
	}{
		{
			name:      "plain",
			raw:       `{"score": 72, "summary": "Solid", "strengths": ["a", "b"], "weaknesses": [], "suggestions": ["c"], "idealResponseTip": "Use STAR"}`,
			score:     72,
			strengths: 2,
			tip:       "Use STAR",
		},
		{
			name:      "fenced with loose types",
			raw:       "```json\n{\"score\": \"85\", \"summary\": \"Good\", \"strengths\": \"clear\"}\n```",
			score:     85,
			strengths: 1,
		},
		{
			name:  "prose around object and out of range",
			raw:   "Here you go:\n{\"score\": 140, \"summary\": \"Great\"}\nThanks!",
			score: 100,
		},
		{
			name:  "negative",
			raw:   `{"score": -5}`,
			score: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fb, err := ParseFeedback(tc.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if fb.Score != tc.score {
				t.Fatalf("expected score %d, got %d", tc.score, fb.Score)
			}
			if len(fb.Strengths) != tc.strengths {
				t.Fatalf("expected %d strengths, got %v", tc.strengths, fb.Strengths)
			}
			if fb.IdealResponseTip != tc.tip {
				t.Fatalf("unexpected tip %q", fb.IdealResponseTip)
			}
			if fb.Raw != tc.raw {
				t.Fatal("expected raw response to be kept")
			}
		})
	}

	if _, err := ParseFeedback("not json"); err == nil {
		t.Fatal("expected error for invalid response")
	}
}

func TestGenerateRejectsSessionsWithoutAnswers(t *testing.T) {
	stub := &stubGenerator{response: `{"score": 50}`}
	agg := NewAggregator(stub, nil, 0)

	for _, s := range []session.Session{testSession(), testSession("  ", session.SkipMarker)} {
		_, err := agg.Generate(context.Background(), s, "Recruiter", localScore)
		if !errors.Is(err, ErrNotEnoughResponses) {
			t.Fatalf("expected ErrNotEnoughResponses, got %v", err)
		}
	}
	if stub.calls != 0 {
		t.Fatalf("collaborator must not be called, got %d calls", stub.calls)
	}
}

func TestGenerateMergesWithLocalScore(t *testing.T) {
	stub := &stubGenerator{response: `{"summary": "", "suggestions": ["practice"], "idealResponseTip": "Quantify"}`}
	agg := NewAggregator(stub, nil, 0)

	fb, err := agg.Generate(context.Background(), testSession("I fixed a race in the cache layer."), "Recruiter", localScore)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stub.calls != 1 {
		t.Fatalf("expected one call, got %d", stub.calls)
	}
	if fb.Score != 60 {
		t.Fatalf("expected local percentage when score missing, got %d", fb.Score)
	}
	if fb.Summary != "local summary" {
		t.Fatalf("unexpected summary %q", fb.Summary)
	}
	if len(fb.Strengths) != 1 || fb.Strengths[0] != "local strength" {
		t.Fatalf("unexpected strengths %v", fb.Strengths)
	}
	if len(fb.Weaknesses) != 1 || fb.Weaknesses[0] != "local improvement" {
		t.Fatalf("unexpected weaknesses %v", fb.Weaknesses)
	}
	if len(fb.Suggestions) != 1 || fb.IdealResponseTip != "Quantify" {
		t.Fatalf("collaborator fields lost: %+v", fb)
	}
}

func TestGenerateKeepsCollaboratorScore(t *testing.T) {
	stub := &stubGenerator{response: `{"score": 0, "strengths": ["s"], "weaknesses": ["w"]}`}
	agg := NewAggregator(stub, nil, 0)

	fb, err := agg.Generate(context.Background(), testSession("answer"), "", localScore)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fb.Score != 0 {
		t.Fatalf("explicit zero score must be kept, got %d", fb.Score)
	}
	if fb.Strengths[0] != "s" || fb.Weaknesses[0] != "w" {
		t.Fatalf("collaborator lists overwritten: %+v", fb)
	}
}

func TestGenerateWithoutCollaborator(t *testing.T) {
	agg := NewAggregator(nil, nil, 0)

	fb, err := agg.Generate(context.Background(), testSession("answer"), "", localScore)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fb.Score != 60 || fb.Summary != "local summary" {
		t.Fatalf("unexpected local feedback: %+v", fb)
	}
}

func TestGeneratePropagatesCollaboratorErrors(t *testing.T) {
	agg := NewAggregator(&stubGenerator{err: errors.New("quota")}, nil, 0)

	if _, err := agg.Generate(context.Background(), testSession("answer"), "", localScore); err == nil {
		t.Fatal("expected error")
	}
}
