package feedback

import (
	"strings"

	"github.com/spigell/interview-coach/internal/session"
)

const (
	interviewerPrefix = "INTERVIEWER: "
	candidatePrefix   = "CANDIDATE: "
)

// BuildTranscript renders the consumed questions and answers as alternating
// INTERVIEWER/CANDIDATE lines.
func BuildTranscript(s session.Session) string {
	var b strings.Builder
	for i, ex := range s.Exchanges() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(interviewerPrefix)
		b.WriteString(strings.TrimSpace(ex.Question.Text))
		b.WriteString("\n")
		b.WriteString(candidatePrefix)
		answer := strings.TrimSpace(ex.Answer)
		if answer == "" {
			answer = session.SkipMarker
		}
		b.WriteString(answer)
	}
	return b.String()
}
