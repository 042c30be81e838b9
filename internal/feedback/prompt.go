package feedback

import (
	_ "embed"
	"strings"

	"github.com/spigell/interview-coach/internal/session"
)

//go:embed prompt.md
var promptTemplate string

const noneValue = "none provided"

// BuildPrompt fills the feedback template with the session context and transcript.
func BuildPrompt(s session.Session, personaName string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Role: {{ROLE}}\nPersona: {{PERSONA}}\nBackground: {{CV_SUMMARY}}\n\n{{TRANSCRIPT}}\n\nJSON Response:"
	}

	replacer := strings.NewReplacer(
		"{{ROLE}}", orNone(s.JobRole),
		"{{PERSONA}}", orNone(personaName),
		"{{CV_SUMMARY}}", orNone(s.CVSummary),
		"{{TRANSCRIPT}}", BuildTranscript(s),
	)
	return replacer.Replace(template)
}

func orNone(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return noneValue
	}
	return v
}
