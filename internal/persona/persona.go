// Package persona resolves interviewer surface text: greetings, transitions,
// challenges and question framing. Lookups never fail; they degrade through
// persona+language, persona English and finally the default persona.
package persona

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/spigell/interview-coach/internal/randutil"
)

//go:embed personas.yaml
var embedded []byte

// Style describes how an interviewer treats the candidate.
type Style string

const (
	StyleEncouraging Style = "encouraging"
	StyleNeutral     Style = "neutral"
	StyleChallenging Style = "challenging"
)

const (
	fallbackLanguage = "en"
	roleToken        = "{{ROLE}}"
	// Used when the persona itself is unknown and has no greeting of its own.
	genericGreeting = "Hello, thank you for joining today. Let's begin your interview for the " + roleToken + " role."
	defaultRoleName = "open"
)

// Config is a static, read-only persona definition.
type Config struct {
	ID          string              `yaml:"id" json:"id"`
	Name        string              `yaml:"name" json:"name"`
	Pressure    int                 `yaml:"pressure" json:"pressure"`
	Style       Style               `yaml:"style" json:"style"`
	Greetings   map[string]string   `yaml:"greetings" json:"-"`
	Transitions map[string][]string `yaml:"transitions" json:"-"`
	Challenges  map[string][]string `yaml:"challenges" json:"-"`
	Connectives map[string][]string `yaml:"connectives" json:"-"`
}

// GreetingConfig carries the interpolation context of a greeting.
type GreetingConfig struct {
	Persona  string
	Language string
	JobRole  string
}

type rawLibrary struct {
	Version  string   `yaml:"version"`
	Default  string   `yaml:"default"`
	Personas []Config `yaml:"personas"`
}

// Library is an immutable persona table plus the random source used for picks.
type Library struct {
	version   string
	fallback  string
	order     []string
	personas  map[string]Config
	src       randutil.Source
	mu        sync.Mutex
}

// Load parses a YAML persona table.
func Load(r io.Reader, src randutil.Source) (*Library, error) {
	var raw rawLibrary
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode personas: %w", err)
	}

	lib := &Library{
		version:  raw.Version,
		fallback: strings.TrimSpace(raw.Default),
		personas: make(map[string]Config, len(raw.Personas)),
		src:      src,
	}

	for _, p := range raw.Personas {
		id := strings.ToLower(strings.TrimSpace(p.ID))
		if id == "" {
			return nil, fmt.Errorf("persona id is required")
		}
		if _, dup := lib.personas[id]; dup {
			return nil, fmt.Errorf("duplicate persona %q", id)
		}
		p.ID = id
		lib.personas[id] = p
		lib.order = append(lib.order, id)
	}

	if _, ok := lib.personas[lib.fallback]; !ok {
		return nil, fmt.Errorf("default persona %q is not defined", lib.fallback)
	}

	return lib, nil
}

// LoadFile parses the persona table stored at path.
func LoadFile(path string, src randutil.Source) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open personas file %q: %w", path, err)
	}
	defer f.Close()

	return Load(f, src)
}

// Default builds a library from the embedded persona table.
func Default(src randutil.Source) *Library {
	lib, err := Load(bytes.NewReader(embedded), src)
	if err != nil {
		panic(fmt.Sprintf("embedded personas: %v", err))
	}
	return lib
}

// Version identifies the loaded data set.
func (l *Library) Version() string { return l.version }

// List returns personas in definition order.
func (l *Library) List() []Config {
	out := make([]Config, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.personas[id])
	}
	return out
}

// Lookup returns the persona with the given id.
func (l *Library) Lookup(id string) (Config, bool) {
	p, ok := l.personas[strings.ToLower(strings.TrimSpace(id))]
	return p, ok
}

// Resolve returns the persona with the given id or the default persona.
func (l *Library) Resolve(id string) Config {
	if p, ok := l.Lookup(id); ok {
		return p
	}
	return l.personas[l.fallback]
}

// Greeting returns the persona greeting for the requested language with the
// role interpolated.
func (l *Library) Greeting(cfg GreetingConfig) string {
	role := strings.TrimSpace(cfg.JobRole)
	if role == "" {
		role = defaultRoleName
	}

	template := genericGreeting
	if p, ok := l.Lookup(cfg.Persona); ok {
		if g := localized(p.Greetings, cfg.Language); g != "" {
			template = g
		}
	}

	return strings.ReplaceAll(template, roleToken, role)
}

// TransitionPhrase picks a short acknowledgement for the persona.
func (l *Library) TransitionPhrase(personaID, lang string) string {
	return l.pick(personaID, lang, func(p Config) map[string][]string { return p.Transitions })
}

// ChallengePhrase picks a probing follow-up for the persona.
func (l *Library) ChallengePhrase(personaID, lang string) string {
	return l.pick(personaID, lang, func(p Config) map[string][]string { return p.Challenges })
}

// FormatQuestionNaturally prefixes the question text with a randomly chosen
// connective. The question text itself is never altered.
func (l *Library) FormatQuestionNaturally(question, personaID, lang string) string {
	connective := l.pick(personaID, lang, func(p Config) map[string][]string { return p.Connectives })
	return connective + question
}

func (l *Library) pick(personaID, lang string, pools func(Config) map[string][]string) string {
	pool := localizedPool(pools(l.Resolve(personaID)), lang)
	if len(pool) == 0 {
		pool = localizedPool(pools(l.personas[l.fallback]), lang)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return randutil.Pick(l.src, pool)
}

func localized(values map[string]string, lang string) string {
	if v := values[NormalizeLanguage(lang)]; v != "" {
		return v
	}
	return values[fallbackLanguage]
}

func localizedPool(values map[string][]string, lang string) []string {
	if v := values[NormalizeLanguage(lang)]; len(v) > 0 {
		return v
	}
	return values[fallbackLanguage]
}

// NormalizeLanguage reduces a BCP 47 tag to its base language ("en-IN" -> "en").
// Unparseable tags fall back to English.
func NormalizeLanguage(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return fallbackLanguage
	}

	parsed, err := language.Parse(tag)
	if err != nil {
		return fallbackLanguage
	}

	base, _ := parsed.Base()
	return base.String()
}
