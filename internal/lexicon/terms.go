package lexicon

import (
	"bytes"
	"io"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TermSet matches a fixed list of words or phrases case-insensitively on word boundaries.
type TermSet struct {
	terms    []string
	patterns []*regexp.Regexp
}

// NewTermSet compiles the given terms. Blank terms are dropped.
func NewTermSet(terms ...string) TermSet {
	set := TermSet{}
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		set.terms = append(set.terms, term)
		set.patterns = append(set.patterns, compileTerm(term))
	}
	return set
}

func compileTerm(term string) *regexp.Regexp {
	expr := regexp.QuoteMeta(term)

	first, _ := utf8.DecodeRuneInString(term)
	if isWordRune(first) {
		expr = `\b` + expr
	}
	last, _ := utf8.DecodeLastRuneInString(term)
	if isWordRune(last) {
		expr += `\b`
	}

	return regexp.MustCompile(`(?i)` + expr)
}

func isWordRune(r rune) bool {
	return r == '_' || (r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)))
}

// Terms returns a copy of the configured terms.
func (s TermSet) Terms() []string {
	return append([]string(nil), s.terms...)
}

// Len is the number of configured terms.
func (s TermSet) Len() int { return len(s.terms) }

// Count returns the total number of occurrences of all terms.
func (s TermSet) Count(text string) int {
	total := 0
	for _, p := range s.patterns {
		total += len(p.FindAllStringIndex(text, -1))
	}
	return total
}

// Distinct returns how many different terms occur at least once.
func (s TermSet) Distinct(text string) int {
	return len(s.Found(text))
}

// Found lists the terms that occur in text, in configured order.
func (s TermSet) Found(text string) []string {
	var found []string
	for i, p := range s.patterns {
		if p.MatchString(text) {
			found = append(found, s.terms[i])
		}
	}
	return found
}

// Any reports whether at least one term occurs.
func (s TermSet) Any(text string) bool {
	for _, p := range s.patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// Contains reports whether word equals one of the terms.
func (s TermSet) Contains(word string) bool {
	word = strings.ToLower(strings.TrimSpace(word))
	for _, term := range s.terms {
		if term == word {
			return true
		}
	}
	return false
}

func bytesReader(b []byte) io.Reader { return bytes.NewReader(b) }
