// Package catalog holds the static interview question banks and classifies
// free-text job titles into a role bucket and seniority level.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/spigell/interview-coach/internal/randutil"
)

//go:embed questions.yaml
var embedded []byte

type roleBank struct {
	Skills    []string   `yaml:"skills"`
	Questions []Question `yaml:"questions"`
}

type rawCatalog struct {
	Version string                  `yaml:"version"`
	Roles   map[RoleBucket]roleBank `yaml:"roles"`
	Generic []Question              `yaml:"generic"`
}

// Catalog is an immutable set of question banks keyed by role bucket plus a
// cross-role generic pool.
type Catalog struct {
	version string
	roles   map[RoleBucket]roleBank
	generic []Question
}

// Load parses and validates a YAML catalog.
func Load(r io.Reader) (*Catalog, error) {
	var raw rawCatalog
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[string]struct{})
	check := func(q Question) error {
		if err := q.validate(); err != nil {
			return err
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("duplicate question id %s", q.ID)
		}
		seen[q.ID] = struct{}{}
		return nil
	}

	for role, bank := range raw.Roles {
		if !role.known() || role == RoleGeneral {
			return nil, fmt.Errorf("unknown role bucket %q", role)
		}
		for _, q := range bank.Questions {
			if err := check(q); err != nil {
				return nil, fmt.Errorf("role %s: %w", role, err)
			}
		}
	}
	for _, q := range raw.Generic {
		if err := check(q); err != nil {
			return nil, fmt.Errorf("generic pool: %w", err)
		}
	}

	if raw.Roles == nil {
		raw.Roles = make(map[RoleBucket]roleBank)
	}

	return &Catalog{version: raw.Version, roles: raw.Roles, generic: raw.Generic}, nil
}

// LoadFile parses the catalog stored at path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file %q: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the embedded catalog. It panics if the embedded data is malformed.
func Default() *Catalog {
	defaultOnce.Do(func() {
		cat, err := Load(bytes.NewReader(embedded))
		if err != nil {
			panic(fmt.Sprintf("embedded catalog: %v", err))
		}
		defaultCat = cat
	})
	return defaultCat
}

// Version identifies the loaded data set.
func (c *Catalog) Version() string { return c.version }

// Roles lists the role buckets that have a dedicated bank, sorted.
func (c *Catalog) Roles() []RoleBucket {
	roles := make([]RoleBucket, 0, len(c.roles))
	for role := range c.roles {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

// ExpectedSkills returns the skills an answer for the given role should touch.
// The general bucket has none.
func (c *Catalog) ExpectedSkills(role RoleBucket) []string {
	return append([]string(nil), c.roles[role].Skills...)
}

// Eligible returns every question whose level is at or below level, role bank
// first, then the generic pool. The result is a fresh slice.
func (c *Catalog) Eligible(role RoleBucket, level Level) []Question {
	var out []Question
	for _, q := range c.roles[role].Questions {
		if q.Level.AtOrBelow(level) {
			out = append(out, q)
		}
	}
	for _, q := range c.generic {
		if q.Level.AtOrBelow(level) {
			out = append(out, q)
		}
	}
	return out
}

// QuestionsForInterview shuffles the eligible pool and returns at most count
// questions. A smaller pool yields fewer questions.
func (c *Catalog) QuestionsForInterview(src randutil.Source, role RoleBucket, level Level, count int) []Question {
	if count <= 0 {
		return []Question{}
	}

	pool := c.Eligible(role, level)
	randutil.Shuffle(src, pool)

	if len(pool) > count {
		pool = pool[:count]
	}
	return pool
}
