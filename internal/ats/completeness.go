package ats

import (
	"fmt"
	"strings"

	"github.com/spigell/interview-coach/internal/lexicon"
)

const (
	completenessBaseline = 5
	pointsPerSection     = 4
	missingEmailPenalty  = 3
)

type completenessCheck struct{}

func newCompletenessCheck() Check { return completenessCheck{} }

func (completenessCheck) Name() string { return Completeness }

func (completenessCheck) Max() int { return MaxCompleteness }

func (completenessCheck) Apply(doc *document, lex *lexicon.Resume) Outcome {
	out := Outcome{Score: completenessBaseline}

	sections := []struct {
		name  string
		terms lexicon.TermSet
	}{
		{name: "contact", terms: lex.Sections.Contact},
		{name: "experience", terms: lex.Sections.Experience},
		{name: "education", terms: lex.Sections.Education},
		{name: "skills", terms: lex.Sections.Skills},
	}

	hasEmail := strings.Contains(doc.text, "@")

	var missing []string
	for _, section := range sections {
		present := section.terms.Any(doc.lower)
		if section.name == "contact" && hasEmail {
			present = true
		}
		if present {
			out.Score += pointsPerSection
		} else {
			missing = append(missing, section.name)
		}
	}

	if len(missing) > 0 {
		severity := SeverityWarning
		if len(missing) > 1 {
			severity = SeverityCritical
		}
		out.Issues = append(out.Issues, Issue{
			Title:       "Missing required sections",
			Location:    "Document structure",
			Description: fmt.Sprintf("The resume does not contain: %s.", strings.Join(missing, ", ")),
			Excerpt:     doc.excerpt(""),
			Suggestion:  "Add clearly labelled sections for " + strings.Join(missing, ", ") + ".",
			Severity:    severity,
		})
	}

	if !hasEmail {
		out.Score -= missingEmailPenalty
		out.Issues = append(out.Issues, Issue{
			Title:       "Missing email",
			Location:    "Contact information",
			Description: "No email address was found, so recruiters cannot reach you.",
			Excerpt:     doc.excerpt(""),
			Suggestion:  "Add a professional email address at the top of the resume.",
			Severity:    SeverityCritical,
		})
	}

	return out
}
