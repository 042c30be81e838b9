package ats

import (
	"fmt"
	"math"
	"strings"

	"github.com/spigell/interview-coach/internal/lexicon"
)

const (
	lowMatchRatio    = 0.3
	skillsBaseline   = 10
	pointsPerSkill   = 2
	minSkillsMatched = 5
)

type keywordsCheck struct{}

func newKeywordsCheck() Check { return keywordsCheck{} }

func (keywordsCheck) Name() string { return Keywords }

func (keywordsCheck) Max() int { return MaxKeywords }

func (c keywordsCheck) Apply(doc *document, lex *lexicon.Resume) Outcome {
	if doc.hasJobDescription() {
		return c.againstJobDescription(doc)
	}
	return c.againstCommonSkills(doc, lex)
}

func (keywordsCheck) againstJobDescription(doc *document) Outcome {
	words := doc.jobWords()
	if len(words) == 0 {
		return Outcome{}
	}

	var missing []string
	matched := 0
	for _, w := range words {
		if strings.Contains(doc.lower, w) {
			matched++
		} else {
			missing = append(missing, w)
		}
	}

	ratio := float64(matched) / float64(len(words))
	out := Outcome{Score: int(math.Round(ratio * MaxKeywords))}

	if ratio < lowMatchRatio {
		out.Issues = append(out.Issues, Issue{
			Title:       "Low keyword match",
			Location:    "Entire resume",
			Description: fmt.Sprintf("Only %d%% of the job description keywords appear in your resume.", int(math.Round(ratio*100))),
			Excerpt:     doc.excerpt(""),
			Suggestion:  "Mirror the wording of the job description, for example: " + strings.Join(firstN(missing, 5), ", ") + ".",
			Severity:    SeverityCritical,
		})
	}

	return out
}

func (keywordsCheck) againstCommonSkills(doc *document, lex *lexicon.Resume) Outcome {
	found := lex.CommonSkills.Found(doc.lower)
	out := Outcome{Score: skillsBaseline + pointsPerSkill*len(found)}

	if len(found) < minSkillsMatched {
		out.Recommendations = append(out.Recommendations,
			fmt.Sprintf("Only %d recognised skills were found. Add a skills section listing the tools and competencies you use.", len(found)))
	}

	return out
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
