package catalog

import "fmt"

// Category groups questions by the kind of answer they expect.
type Category string

const (
	CategoryTechnical   Category = "technical"
	CategoryBehavioral  Category = "behavioral"
	CategorySituational Category = "situational"
)

// Level is a seniority level. Levels are ordered fresher < mid < senior.
type Level string

const (
	LevelFresher Level = "fresher"
	LevelMid     Level = "mid"
	LevelSenior  Level = "senior"
)

func (l Level) rank() int {
	switch l {
	case LevelFresher:
		return 0
	case LevelMid:
		return 1
	case LevelSenior:
		return 2
	default:
		return -1
	}
}

// AtOrBelow reports whether l is eligible for a requester at level max.
func (l Level) AtOrBelow(max Level) bool {
	return l.rank() >= 0 && l.rank() <= max.rank()
}

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool { return l.rank() >= 0 }

// Question is a single catalog entry. Questions are never mutated after load.
type Question struct {
	ID       string   `yaml:"id" json:"id"`
	Text     string   `yaml:"text" json:"text"`
	Category Category `yaml:"category" json:"category"`
	Level    Level    `yaml:"level" json:"level"`
	Topics   []string `yaml:"topics,omitempty" json:"topics,omitempty"`
}

func (q Question) validate() error {
	if q.ID == "" {
		return fmt.Errorf("question id is required")
	}
	if q.Text == "" {
		return fmt.Errorf("question %s: text is required", q.ID)
	}
	if !q.Level.Valid() {
		return fmt.Errorf("question %s: unknown level %q", q.ID, q.Level)
	}
	switch q.Category {
	case CategoryTechnical, CategoryBehavioral, CategorySituational:
	default:
		return fmt.Errorf("question %s: unknown category %q", q.ID, q.Category)
	}
	return nil
}
