package catalog

import (
	"strings"
	"testing"

	"github.com/spigell/interview-coach/internal/randutil"
)

func TestDetectLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title  string
		expect Level
	}{
		{title: "Senior Software Engineer", expect: LevelSenior},
		{title: "Software Engineer", expect: LevelMid},
		{title: "Sr. Backend Developer", expect: LevelSenior},
		{title: "Tech Lead", expect: LevelSenior},
		{title: "Junior Data Analyst", expect: LevelFresher},
		{title: "Software Engineering Intern", expect: LevelFresher},
		{title: "", expect: LevelMid},
		{title: "Ingeniero de software", expect: LevelMid},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			t.Parallel()
			if got := DetectLevel(tt.title); got != tt.expect {
				t.Fatalf("expected %s, got %s", tt.expect, got)
			}
		})
	}
}

func TestDetectRoleType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title  string
		expect RoleBucket
	}{
		{title: "Junior Data Analyst", expect: RoleDataAnalyst},
		{title: "Senior Backend Engineer", expect: RoleSoftwareDeveloper},
		{title: "Product Owner", expect: RoleProductManager},
		{title: "Marketing Executive", expect: RoleGeneral},
		{title: "   ", expect: RoleGeneral},
		{title: "Программист", expect: RoleGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			t.Parallel()
			if got := DetectRoleType(tt.title); got != tt.expect {
				t.Fatalf("expected %s, got %s", tt.expect, got)
			}
		})
	}
}

func TestEligibleRespectsLevelOrdering(t *testing.T) {
	cat := Default()

	for _, q := range cat.Eligible(RoleSoftwareDeveloper, LevelFresher) {
		if q.Level != LevelFresher {
			t.Fatalf("fresher requester got %s question %s", q.Level, q.ID)
		}
	}

	levels := map[Level]bool{}
	for _, q := range cat.Eligible(RoleSoftwareDeveloper, LevelSenior) {
		levels[q.Level] = true
	}
	if !levels[LevelFresher] || !levels[LevelMid] || !levels[LevelSenior] {
		t.Fatalf("senior requester should be eligible for every level, got %v", levels)
	}
}

func TestEligibleMixesGenericPool(t *testing.T) {
	cat := Default()

	var generic, role int
	for _, q := range cat.Eligible(RoleDataAnalyst, LevelMid) {
		if strings.HasPrefix(q.ID, "gen-") {
			generic++
		} else {
			role++
		}
	}
	if generic == 0 || role == 0 {
		t.Fatalf("expected role and generic questions, got role=%d generic=%d", role, generic)
	}

	for _, q := range cat.Eligible(RoleGeneral, LevelMid) {
		if !strings.HasPrefix(q.ID, "gen-") {
			t.Fatalf("general bucket should only draw generic questions, got %s", q.ID)
		}
	}
}

func TestQuestionsForInterviewCount(t *testing.T) {
	cat := Default()
	src := randutil.New(1)

	got := cat.QuestionsForInterview(src, RoleProductManager, LevelMid, 4)
	if len(got) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(got))
	}

	eligible := len(cat.Eligible(RoleGeneral, LevelFresher))
	got = cat.QuestionsForInterview(src, RoleGeneral, LevelFresher, eligible+10)
	if len(got) != eligible {
		t.Fatalf("expected the whole pool of %d, got %d", eligible, len(got))
	}

	if got := cat.QuestionsForInterview(src, RoleGeneral, LevelMid, 0); len(got) != 0 {
		t.Fatalf("expected no questions for zero count, got %d", len(got))
	}

	seen := map[string]bool{}
	for _, q := range cat.QuestionsForInterview(src, RoleSoftwareDeveloper, LevelSenior, 100) {
		if seen[q.ID] {
			t.Fatalf("duplicate question %s", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestQuestionsForInterviewDeterministicWithSeed(t *testing.T) {
	cat := Default()

	a := cat.QuestionsForInterview(randutil.New(11), RoleSoftwareDeveloper, LevelMid, 5)
	b := cat.QuestionsForInterview(randutil.New(11), RoleSoftwareDeveloper, LevelMid, 5)
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("expected identical selection for the same seed")
		}
	}
}

func TestExpectedSkills(t *testing.T) {
	cat := Default()
	if len(cat.ExpectedSkills(RoleDataAnalyst)) == 0 {
		t.Fatalf("expected skills for data analysts")
	}
	if len(cat.ExpectedSkills(RoleGeneral)) != 0 {
		t.Fatalf("general bucket has no expected skills")
	}

	skills := cat.ExpectedSkills(RoleDataAnalyst)
	skills[0] = "mutated"
	if cat.ExpectedSkills(RoleDataAnalyst)[0] == "mutated" {
		t.Fatalf("ExpectedSkills must return a copy")
	}
}

func TestLoadRejectsInvalidData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "unknown level", data: "generic:\n  - {id: a, text: t, category: behavioral, level: guru}\n"},
		{name: "unknown category", data: "generic:\n  - {id: a, text: t, category: trivia, level: mid}\n"},
		{name: "duplicate id", data: "generic:\n  - {id: a, text: t, category: behavioral, level: mid}\n  - {id: a, text: u, category: behavioral, level: mid}\n"},
		{name: "unknown role", data: "roles:\n  chef:\n    questions: []\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(tt.data)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
