package ats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const strongResume = `Jane Smith
jane.smith@example.com | +91 98765 43210 | linkedin.com/in/janesmith

Summary
Backend engineer with 6 years of experience building payment platforms.

Experience
Senior Software Engineer, Acme Payments (2019 - present)
- Led a team of 6 engineers to rebuild the settlement service, cutting processing time by 45%.
- Designed and implemented an event pipeline handling 2,000,000 transactions per day.
- Reduced cloud spend by $120K per year by optimizing Kubernetes workloads.
- Mentored 4 junior developers and established a code review culture.
- Automated release checks, improving deployment frequency 3x.

Education
B.Tech in Computer Science, National Institute of Technology, 2017

Skills
Go, Python, SQL, Docker, Kubernetes, AWS, Git, Linux, Agile, communication, leadership`

func TestMinimalResumeWithoutEmail(t *testing.T) {
	result := NewScorer(nil, nil).Score("John Doe. Experience: none.", "")

	assert.Less(t, result.OverallScore, 50)

	var emailIssue *Issue
	for i := range result.Issues {
		if result.Issues[i].Title == "Missing email" {
			emailIssue = &result.Issues[i]
		}
	}
	require.NotNil(t, emailIssue, "expected a missing email issue, got %+v", result.Issues)
	assert.Equal(t, SeverityCritical, emailIssue.Severity)
	assert.Equal(t, "John Doe. Experience: none.", emailIssue.Excerpt)
}

func TestStrongResumeScoresHigh(t *testing.T) {
	result := NewScorer(nil, nil).Score(strongResume, "")

	assert.GreaterOrEqual(t, result.Breakdown.Impact, 25)
	assert.False(t, hasIssue(result, "Missing quantifiable results"))
	assert.Equal(t, MaxCompleteness, result.Breakdown.Completeness)
	assert.Greater(t, result.OverallScore, 70)

	for _, issue := range result.Issues {
		assert.NotEqual(t, SeverityCritical, issue.Severity, "unexpected critical issue %q", issue.Title)
	}
}

func TestOverallIsSumOfBoundedSubScores(t *testing.T) {
	scorer := NewScorer(nil, nil)
	inputs := []struct {
		resume string
		jd     string
	}{
		{resume: "", jd: ""},
		{resume: strongResume, jd: ""},
		{resume: strings.Repeat(strongResume+"\n", 30), jd: ""},
		{resume: strongResume, jd: "We are hiring a backend engineer with strong Go, Kubernetes and payments experience to build settlement services."},
		{resume: "Резюме без ключевых слов", jd: strings.Repeat("доставка логистика ", 10)},
		{resume: strings.Repeat("python java sql excel react aws azure docker kubernetes git ", 50), jd: ""},
	}

	for _, in := range inputs {
		result := scorer.Score(in.resume, in.jd)
		b := result.Breakdown

		assert.Equal(t, b.Sum(), result.OverallScore)
		assert.GreaterOrEqual(t, b.Keywords, 0)
		assert.LessOrEqual(t, b.Keywords, MaxKeywords)
		assert.GreaterOrEqual(t, b.Impact, 0)
		assert.LessOrEqual(t, b.Impact, MaxImpact)
		assert.GreaterOrEqual(t, b.Formatting, 0)
		assert.LessOrEqual(t, b.Formatting, MaxFormatting)
		assert.GreaterOrEqual(t, b.Completeness, 0)
		assert.LessOrEqual(t, b.Completeness, MaxCompleteness)
		assert.LessOrEqual(t, len(result.Issues), maxIssues)
		assert.LessOrEqual(t, len(result.Recommendations), maxRecommendations)
	}
}

func TestKeywordsAgainstJobDescription(t *testing.T) {
	scorer := NewScorer(nil, nil)
	jd := "Looking for a marketing specialist with campaign planning, copywriting, branding and social media analytics."

	result := scorer.Score(strongResume, jd)
	require.True(t, hasIssue(result, "Low keyword match"))
	assert.Less(t, result.Breakdown.Keywords, 10)

	matching := scorer.Score("Marketing specialist with campaign planning, copywriting, branding, social media analytics, looking forward.", jd)
	assert.Equal(t, MaxKeywords, matching.Breakdown.Keywords)
	assert.False(t, hasIssue(matching, "Low keyword match"))
}

func TestShortJobDescriptionFallsBackToSkills(t *testing.T) {
	result := NewScorer(nil, nil).Score("Skills: python, sql", "Go developer")

	assert.Equal(t, skillsBaseline+2*pointsPerSkill, result.Breakdown.Keywords)
	require.NotEmpty(t, result.Recommendations)
}

func TestMissingSectionsSeverity(t *testing.T) {
	scorer := NewScorer(nil, nil)

	one := scorer.Score("me@example.com\nExperience\nEducation: BSc", "")
	issue := findIssue(one, "Missing required sections")
	require.NotNil(t, issue)
	assert.Equal(t, SeverityWarning, issue.Severity)
	assert.Contains(t, issue.Description, "skills")

	many := scorer.Score("me@example.com\nHello there", "")
	issue = findIssue(many, "Missing required sections")
	require.NotNil(t, issue)
	assert.Equal(t, SeverityCritical, issue.Severity)
	assert.Contains(t, issue.Description, "experience, education, skills")
}

func TestLongResumeOnlyRecommends(t *testing.T) {
	long := strongResume + "\n" + strings.Repeat("delivered ", 1200)
	result := NewScorer(nil, nil).Score(long, "")

	assert.False(t, hasIssue(result, "Resume is too short"))
	assert.Equal(t, formattingBaseline-longPenalty+headersBonus, result.Breakdown.Formatting)

	found := false
	for _, rec := range result.Recommendations {
		if strings.Contains(rec, "Trim it") {
			found = true
		}
	}
	assert.True(t, found, "expected a length recommendation, got %v", result.Recommendations)
}

func TestIssuesOrderedBySeverity(t *testing.T) {
	result := NewScorer(nil, nil).Score("hello", "")

	for i := 1; i < len(result.Issues); i++ {
		assert.LessOrEqual(t, result.Issues[i-1].Severity.rank(), result.Issues[i].Severity.rank())
	}
}

func hasIssue(r Result, title string) bool {
	return findIssue(r, title) != nil
}

func findIssue(r Result, title string) *Issue {
	for i := range r.Issues {
		if r.Issues[i].Title == title {
			return &r.Issues[i]
		}
	}
	return nil
}
