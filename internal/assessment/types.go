// Package assessment grades interview answers on five lexical dimensions
// without calling any model.
package assessment

// Dimension names.
const (
	Clarity       = "Clarity"
	Relevance     = "Relevance"
	Confidence    = "Confidence"
	Structure     = "Structure"
	RoleAlignment = "Role Alignment"
)

const (
	// MaxDimensionScore bounds every dimension.
	MaxDimensionScore = 5.0
	// MaxTotal is the best possible sum over all dimensions.
	MaxTotal = 5 * MaxDimensionScore

	strengthThreshold    = 3.0
	improvementThreshold = 4.0
	maxStrengths         = 2

	// IncompleteFeedback is the overall feedback when no answer carries content.
	IncompleteFeedback = "Interview incomplete. Answer at least one question to receive a score."
	genericStrength    = "Completed the interview and engaged with every question."
)

// Dimension is one scored aspect of the answers.
type Dimension struct {
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

// Score is the aggregated result over all dimensions.
type Score struct {
	Total           float64     `json:"total"`
	Percentage      int         `json:"percentage"`
	Dimensions      []Dimension `json:"dimensions"`
	Strengths       []string    `json:"strengths"`
	Improvements    []string    `json:"improvements"`
	OverallFeedback string      `json:"overall_feedback"`
}

// Context is the role information answers are measured against.
type Context struct {
	JobRole        string   `json:"job_role"`
	CVKeywords     []string `json:"cv_keywords"`
	ExpectedSkills []string `json:"expected_skills"`
}

// band maps a minimum score to a feedback line.
type band struct {
	min  float64
	text string
}

var dimensionBands = map[string][]band{
	Clarity: {
		{4, "Clear, well-paced answers that are easy to follow."},
		{3, "Mostly clear answers; a few sentences could be tighter."},
		{2, "Answers are sometimes hard to follow; reduce filler words and connect your ideas."},
		{0, "Answers lack clarity; speak in complete sentences and explain your reasoning."},
	},
	Relevance: {
		{4, "Answers stay on topic and draw on skills the role needs."},
		{3, "Answers are relevant; tie them more directly to the role's requirements."},
		{2, "Answers drift from the question; reference the skills the role asks for."},
		{0, "Answers rarely address the role; prepare examples that match the job."},
	},
	Confidence: {
		{4, "You speak with conviction and clear ownership of your work."},
		{3, "Generally confident; cut hedging phrases like \"I think\" or \"maybe\"."},
		{2, "Frequent hedging weakens your answers; state what you did directly."},
		{0, "Answers sound unsure; use action verbs and own your results."},
	},
	Structure: {
		{4, "Well-structured answers with context, actions and measurable results."},
		{3, "Good structure; add numbers to show the impact of your actions."},
		{2, "Use the STAR method: situation, task, action and result."},
		{0, "Answers lack structure; walk through a concrete example step by step."},
	},
	RoleAlignment: {
		{4, "Your answers match the expectations of this role's level."},
		{3, "Reasonable fit; highlight more of the depth this role expects."},
		{2, "Answers do not yet reflect the level of this role; show scope and depth."},
		{0, "Answers are misaligned with the role; study what the position demands."},
	},
}

var overallBands = []band{
	{80, "Excellent performance. You are well prepared for this interview."},
	{60, "Good performance with a few areas to polish before the real interview."},
	{40, "Fair performance. Practise structuring answers and quantifying results."},
	{0, "Needs improvement. Prepare concrete examples and rehearse your answers."},
}

func pickBand(bands []band, score float64) string {
	for _, b := range bands {
		if score >= b.min {
			return b.text
		}
	}
	return bands[len(bands)-1].text
}
