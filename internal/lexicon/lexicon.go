// Package lexicon holds the versioned word lists consumed by the interview and
// resume scorers. Lists are loaded once and never mutated afterwards.
package lexicon

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"regexp"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var embedded []byte

// quantPattern matches percentages, currency amounts, multipliers and counted nouns.
var quantPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?\s*%` +
	`|[$₹€£]\s?\d[\d,]*(?:\.\d+)?\s*(?:k|m|bn|million|billion|lakh|crore)?` +
	`|\b\d+(?:\.\d+)?\s*(?:lakh|crore|million|billion)\b` +
	`|\b\d+(?:\.\d+)?\s*(?:x|times)\b` +
	`|\b\d[\d,]*\+?\s+(?:users|customers|clients|engineers|developers|people|members|projects|hours|days|weeks|months|years|transactions|requests|employees|teams|applications|services|servers|products|features|countries|cities|stores))`)

// QuantCount returns how many quantitative patterns occur in text.
func QuantCount(text string) int {
	return len(quantPattern.FindAllStringIndex(text, -1))
}

// StarCues groups Situation/Task/Action/Result vocabulary.
type StarCues struct {
	Situation TermSet
	Task      TermSet
	Action    TermSet
	Result    TermSet
}

// Interview is the vocabulary used to score spoken answers.
type Interview struct {
	Fillers          TermSet
	Connectors       TermSet
	Hedges           TermSet
	ActionVerbs      TermSet
	Ownership        TermSet
	WeakOpeners      TermSet
	Star             StarCues
	ExampleMarkers   TermSet
	Sequencing       TermSet
	Leadership       TermSet
	JuniorCoded      TermSet
	Growth           TermSet
	TechnicalDepth   TermSet
	SeniorMarkers    TermSet
	TechnicalMarkers TermSet
}

// Sections holds keywords that reveal the four required resume sections.
type Sections struct {
	Contact    TermSet
	Experience TermSet
	Education  TermSet
	Skills     TermSet
}

// Resume is the vocabulary used to score resume text.
type Resume struct {
	ActionVerbs    TermSet
	CommonSkills   TermSet
	SectionHeaders TermSet
	Sections       Sections
}

// Lexicon is the full, compiled word-list bundle.
type Lexicon struct {
	Version   string
	Interview Interview
	Resume    Resume
}

type rawLexicon struct {
	Version   string `yaml:"version"`
	Interview struct {
		Fillers     []string `yaml:"fillers"`
		Connectors  []string `yaml:"connectors"`
		Hedges      []string `yaml:"hedges"`
		ActionVerbs []string `yaml:"action_verbs"`
		Ownership   []string `yaml:"ownership"`
		WeakOpeners []string `yaml:"weak_openers"`
		Star        struct {
			Situation []string `yaml:"situation"`
			Task      []string `yaml:"task"`
			Action    []string `yaml:"action"`
			Result    []string `yaml:"result"`
		} `yaml:"star"`
		ExampleMarkers   []string `yaml:"example_markers"`
		Sequencing       []string `yaml:"sequencing"`
		Leadership       []string `yaml:"leadership"`
		JuniorCoded      []string `yaml:"junior_coded"`
		Growth           []string `yaml:"growth"`
		TechnicalDepth   []string `yaml:"technical_depth"`
		SeniorMarkers    []string `yaml:"senior_markers"`
		TechnicalMarkers []string `yaml:"technical_markers"`
	} `yaml:"interview"`
	Resume struct {
		ActionVerbs    []string `yaml:"action_verbs"`
		CommonSkills   []string `yaml:"common_skills"`
		SectionHeaders []string `yaml:"section_headers"`
		Sections       struct {
			Contact    []string `yaml:"contact"`
			Experience []string `yaml:"experience"`
			Education  []string `yaml:"education"`
			Skills     []string `yaml:"skills"`
		} `yaml:"sections"`
	} `yaml:"resume"`
}

// Load parses a YAML lexicon.
func Load(r io.Reader) (*Lexicon, error) {
	var raw rawLexicon
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode lexicon: %w", err)
	}

	if raw.Version == "" {
		return nil, fmt.Errorf("lexicon version is required")
	}

	in := raw.Interview
	res := raw.Resume

	return &Lexicon{
		Version: raw.Version,
		Interview: Interview{
			Fillers:     NewTermSet(in.Fillers...),
			Connectors:  NewTermSet(in.Connectors...),
			Hedges:      NewTermSet(in.Hedges...),
			ActionVerbs: NewTermSet(in.ActionVerbs...),
			Ownership:   NewTermSet(in.Ownership...),
			WeakOpeners: NewTermSet(in.WeakOpeners...),
			Star: StarCues{
				Situation: NewTermSet(in.Star.Situation...),
				Task:      NewTermSet(in.Star.Task...),
				Action:    NewTermSet(in.Star.Action...),
				Result:    NewTermSet(in.Star.Result...),
			},
			ExampleMarkers:   NewTermSet(in.ExampleMarkers...),
			Sequencing:       NewTermSet(in.Sequencing...),
			Leadership:       NewTermSet(in.Leadership...),
			JuniorCoded:      NewTermSet(in.JuniorCoded...),
			Growth:           NewTermSet(in.Growth...),
			TechnicalDepth:   NewTermSet(in.TechnicalDepth...),
			SeniorMarkers:    NewTermSet(in.SeniorMarkers...),
			TechnicalMarkers: NewTermSet(in.TechnicalMarkers...),
		},
		Resume: Resume{
			ActionVerbs:    NewTermSet(res.ActionVerbs...),
			CommonSkills:   NewTermSet(res.CommonSkills...),
			SectionHeaders: NewTermSet(res.SectionHeaders...),
			Sections: Sections{
				Contact:    NewTermSet(res.Sections.Contact...),
				Experience: NewTermSet(res.Sections.Experience...),
				Education:  NewTermSet(res.Sections.Education...),
				Skills:     NewTermSet(res.Sections.Skills...),
			},
		},
	}, nil
}

// LoadFile parses the lexicon stored at path.
func LoadFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon file %q: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
)

// Default returns the embedded lexicon. It panics if the embedded data is malformed.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		lex, err := Load(bytesReader(embedded))
		if err != nil {
			panic(fmt.Sprintf("embedded lexicon: %v", err))
		}
		defaultLex = lex
	})
	return defaultLex
}
