// Package ats scores raw resume text the way an applicant tracking system
// screens it. It has no dependency on interview sessions.
package ats

// Severity ranks an issue.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

func (s Severity) rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityWarning:
		return 1
	default:
		return 2
	}
}

// Sub-score names and their maxima.
const (
	Keywords     = "keywords"
	Impact       = "impact"
	Formatting   = "formatting"
	Completeness = "completeness"

	MaxKeywords     = 30
	MaxImpact       = 30
	MaxFormatting   = 20
	MaxCompleteness = 20
	MaxOverall      = 100

	maxIssues          = 5
	maxRecommendations = 5
)

// Issue is a single finding with a literal excerpt of the resume.
type Issue struct {
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Excerpt     string   `json:"excerpt"`
	Suggestion  string   `json:"suggestion"`
	Severity    Severity `json:"severity"`
}

// Breakdown holds the four sub-scores.
type Breakdown struct {
	Keywords     int `json:"keywords"`
	Impact       int `json:"impact"`
	Formatting   int `json:"formatting"`
	Completeness int `json:"completeness"`
}

// Sum adds the sub-scores.
func (b Breakdown) Sum() int {
	return b.Keywords + b.Impact + b.Formatting + b.Completeness
}

// Result is the full ATS evaluation.
type Result struct {
	OverallScore    int       `json:"overall_score"`
	Breakdown       Breakdown `json:"breakdown"`
	Issues          []Issue   `json:"issues"`
	Recommendations []string  `json:"recommendations"`
}
