package catalog

import (
	"regexp"
	"strings"
)

// RoleBucket is the closed set of roles the catalog knows about.
type RoleBucket string

const (
	RoleSoftwareDeveloper RoleBucket = "software-developer"
	RoleDataAnalyst       RoleBucket = "data-analyst"
	RoleProductManager    RoleBucket = "product-manager"
	RoleGeneral           RoleBucket = "general"
)

func (r RoleBucket) known() bool {
	switch r {
	case RoleSoftwareDeveloper, RoleDataAnalyst, RoleProductManager, RoleGeneral:
		return true
	}
	return false
}

// Technical reports whether the bucket is an engineering or analytics role.
func (r RoleBucket) Technical() bool {
	return r == RoleSoftwareDeveloper || r == RoleDataAnalyst
}

type roleRule struct {
	bucket   RoleBucket
	keywords []string
}

// Checked in order. Data and product titles come before the broad engineering
// keywords so that "Data Analyst" never lands in software-developer.
var roleRules = []roleRule{
	{bucket: RoleDataAnalyst, keywords: []string{"data analyst", "data scientist", "business analyst", "analyst", "analytics", "business intelligence", "bi developer"}},
	{bucket: RoleProductManager, keywords: []string{"product manager", "product owner", "program manager", "project manager", "product lead"}},
	{bucket: RoleSoftwareDeveloper, keywords: []string{"developer", "engineer", "software", "programmer", "backend", "frontend", "full stack", "fullstack", "devops", "sde", "sre"}},
}

var (
	seniorPattern  = regexp.MustCompile(`(?i)\b(senior|sr\.?|lead|principal|staff|architect|head|director|vp)\b`)
	fresherPattern = regexp.MustCompile(`(?i)\b(junior|jr\.?|intern|internship|fresher|trainee|graduate|entry[\s-]level|apprentice)\b`)
)

// DetectRoleType maps a job title to a role bucket. Unmatched titles, including
// titles in other languages, resolve to RoleGeneral.
func DetectRoleType(jobTitle string) RoleBucket {
	title := strings.ToLower(strings.TrimSpace(jobTitle))
	if title == "" {
		return RoleGeneral
	}

	for _, rule := range roleRules {
		for _, kw := range rule.keywords {
			if strings.Contains(title, kw) {
				return rule.bucket
			}
		}
	}

	return RoleGeneral
}

// DetectLevel maps a job title to a seniority level, defaulting to LevelMid.
func DetectLevel(jobTitle string) Level {
	switch {
	case seniorPattern.MatchString(jobTitle):
		return LevelSenior
	case fresherPattern.MatchString(jobTitle):
		return LevelFresher
	default:
		return LevelMid
	}
}
