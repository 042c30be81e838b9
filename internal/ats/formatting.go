package ats

import (
	"fmt"
	"strings"

	"github.com/spigell/interview-coach/internal/lexicon"
)

const (
	formattingBaseline = 15
	minWords           = 200
	maxWords           = 1000
	shortPenalty       = 5
	longPenalty        = 2
	headersBonus       = 5
)

type formattingCheck struct{}

func newFormattingCheck() Check { return formattingCheck{} }

func (formattingCheck) Name() string { return Formatting }

func (formattingCheck) Max() int { return MaxFormatting }

func (c formattingCheck) Apply(doc *document, lex *lexicon.Resume) Outcome {
	out := Outcome{Score: formattingBaseline}

	switch {
	case doc.wordCount < minWords:
		out.Score -= shortPenalty
		out.Issues = append(out.Issues, Issue{
			Title:       "Resume is too short",
			Location:    "Entire resume",
			Description: fmt.Sprintf("The resume has %d words; ATS screens favour at least %d.", doc.wordCount, minWords),
			Excerpt:     doc.excerpt(""),
			Suggestion:  "Describe your responsibilities, projects and achievements in more detail.",
			Severity:    SeverityWarning,
		})
	case doc.wordCount > maxWords:
		out.Score -= longPenalty
		out.Recommendations = append(out.Recommendations,
			fmt.Sprintf("The resume has %d words. Trim it to the most relevant %d.", doc.wordCount, maxWords))
	}

	if c.hasHeaders(doc, lex) {
		out.Score += headersBonus
	} else {
		out.Issues = append(out.Issues, Issue{
			Title:       "No standard section headers",
			Location:    "Document structure",
			Description: "ATS parsers rely on headers such as Experience, Education and Skills at the start of a line.",
			Excerpt:     doc.excerpt(""),
			Suggestion:  "Put each section under its own header line, for example \"Experience\" or \"Skills\".",
			Severity:    SeverityWarning,
		})
	}

	return out
}

// hasHeaders reports whether any line starts with a known section header.
func (formattingCheck) hasHeaders(doc *document, lex *lexicon.Resume) bool {
	for _, line := range doc.lines {
		lower := strings.ToLower(line)
		for _, header := range lex.SectionHeaders.Terms() {
			if !strings.HasPrefix(lower, header) {
				continue
			}
			rest := lower[len(header):]
			if rest == "" || !isLetter(rest[0]) {
				return true
			}
		}
	}
	return false
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
