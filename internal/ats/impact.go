package ats

import (
	"github.com/spigell/interview-coach/internal/lexicon"
)

const (
	impactBaseline       = 10
	maxActionVerbPoints  = 10
	minActionVerbs       = 3
	minQuantifiedResults = 3
	quantifiedBonus      = 10
)

type impactCheck struct{}

func newImpactCheck() Check { return impactCheck{} }

func (impactCheck) Name() string { return Impact }

func (impactCheck) Max() int { return MaxImpact }

func (impactCheck) Apply(doc *document, lex *lexicon.Resume) Outcome {
	out := Outcome{Score: impactBaseline}

	verbs := lex.ActionVerbs.Distinct(doc.lower)
	out.Score += min(verbs, maxActionVerbPoints)
	if verbs < minActionVerbs {
		out.Issues = append(out.Issues, Issue{
			Title:       "Weak action verbs",
			Location:    "Experience section",
			Description: "Few bullet points start with strong action verbs.",
			Excerpt:     doc.excerpt("experience"),
			Suggestion:  "Start bullets with verbs such as led, built, delivered or optimized.",
			Severity:    SeverityWarning,
		})
	}

	if lexicon.QuantCount(doc.text) >= minQuantifiedResults {
		out.Score += quantifiedBonus
	} else {
		out.Issues = append(out.Issues, Issue{
			Title:       "Missing quantifiable results",
			Location:    "Experience section",
			Description: "Achievements are not backed by numbers such as percentages, amounts or counts.",
			Excerpt:     doc.excerpt("experience"),
			Suggestion:  "Quantify outcomes, for example \"reduced load time by 30%\" or \"managed a budget of $50K\".",
			Severity:    SeverityCritical,
		})
	}

	return out
}
