package persona

import (
	"strings"
	"testing"

	"github.com/spigell/interview-coach/internal/randutil"
)

func TestGreetingFallbackTiers(t *testing.T) {
	lib := Default(randutil.New(1))

	tests := []struct {
		name     string
		cfg      GreetingConfig
		contains string
	}{
		{
			name:     "persona and language",
			cfg:      GreetingConfig{Persona: "mentor", Language: "hi", JobRole: "Data Analyst"},
			contains: "प्रिया",
		},
		{
			name:     "regional tag reduced to base language",
			cfg:      GreetingConfig{Persona: "mentor", Language: "hi-IN", JobRole: "Data Analyst"},
			contains: "प्रिया",
		},
		{
			name:     "missing language falls back to english",
			cfg:      GreetingConfig{Persona: "executive", Language: "hi", JobRole: "Product Manager"},
			contains: "I'm Vikram",
		},
		{
			name:     "unknown persona uses the generic greeting",
			cfg:      GreetingConfig{Persona: "pirate", Language: "en", JobRole: "Backend Engineer"},
			contains: "thank you for joining today",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lib.Greeting(tt.cfg)
			if !strings.Contains(got, tt.contains) {
				t.Fatalf("expected greeting to contain %q, got %q", tt.contains, got)
			}
			if !strings.Contains(got, tt.cfg.JobRole) {
				t.Fatalf("expected role %q to be interpolated, got %q", tt.cfg.JobRole, got)
			}
			if strings.Contains(got, roleToken) {
				t.Fatalf("role token left in greeting: %q", got)
			}
		})
	}
}

func TestTransitionAndChallengePools(t *testing.T) {
	lib := Default(randutil.New(5))
	mentor, _ := lib.Lookup("mentor")
	recruiter, _ := lib.Lookup("recruiter")

	for i := 0; i < 20; i++ {
		if got := lib.TransitionPhrase("mentor", "en"); !contains(mentor.Transitions["en"], got) {
			t.Fatalf("transition %q not from the mentor pool", got)
		}
		if got := lib.TransitionPhrase("nobody", "en"); !contains(recruiter.Transitions["en"], got) {
			t.Fatalf("unknown persona should use the recruiter pool, got %q", got)
		}
		if got := lib.ChallengePhrase("mentor", "hi"); !contains(mentor.Challenges["en"], got) {
			t.Fatalf("challenge %q should fall back to the english pool", got)
		}
	}
}

func TestFormatQuestionNaturallyKeepsQuestion(t *testing.T) {
	lib := Default(randutil.New(9))
	question := "Tell me about yourself."

	sawBare := false
	for i := 0; i < 50; i++ {
		got := lib.FormatQuestionNaturally(question, "executive", "en")
		if !strings.HasSuffix(got, question) {
			t.Fatalf("question text altered: %q", got)
		}
		if got == question {
			sawBare = true
		}
	}
	if !sawBare {
		t.Fatalf("expected the empty connective to be chosen at least once")
	}
}

func TestResolveAndList(t *testing.T) {
	lib := Default(nil)

	if got := lib.Resolve("  MENTOR "); got.ID != "mentor" {
		t.Fatalf("expected case-insensitive lookup, got %q", got.ID)
	}
	if got := lib.Resolve("unknown"); got.ID != "recruiter" {
		t.Fatalf("expected default persona, got %q", got.ID)
	}

	list := lib.List()
	if len(list) != 3 || list[0].ID != "mentor" {
		t.Fatalf("unexpected persona list: %+v", list)
	}
}

func TestLoadRequiresDefaultPersona(t *testing.T) {
	data := "default: ghost\npersonas:\n  - id: mentor\n"
	if _, err := Load(strings.NewReader(data), nil); err == nil {
		t.Fatal("expected error for a missing default persona")
	}
}

func TestNormalizeLanguage(t *testing.T) {
	tests := map[string]string{
		"":      "en",
		"en-US": "en",
		"hi":    "hi",
		"!!":    "en",
	}
	for input, expect := range tests {
		if got := NormalizeLanguage(input); got != expect {
			t.Fatalf("NormalizeLanguage(%q) = %q, want %q", input, got, expect)
		}
	}
}

func contains(pool []string, value string) bool {
	for _, item := range pool {
		if item == value {
			return true
		}
	}
	return false
}
