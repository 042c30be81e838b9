package ats

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spigell/interview-coach/internal/logger"
)

const (
	minJobDescriptionLength = 50
	minJobWordLength        = 3
	excerptLength           = 120
)

var wordSplit = regexp.MustCompile(`[^\p{L}\p{N}+#.]+`)

// document is the prepared input shared by every check.
type document struct {
	text           string
	lower          string
	lines          []string
	wordCount      int
	jobDescription string
}

func newDocument(resume, jobDescription string) *document {
	var lines []string
	for _, line := range strings.Split(resume, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	return &document{
		text:           resume,
		lower:          strings.ToLower(resume),
		lines:          lines,
		wordCount:      len(strings.Fields(resume)),
		jobDescription: strings.TrimSpace(jobDescription),
	}
}

func (d *document) hasJobDescription() bool {
	return utf8.RuneCountInString(d.jobDescription) > minJobDescriptionLength
}

// jobWords returns the distinct lowercase job-description words longer than three letters.
func (d *document) jobWords() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, w := range wordSplit.Split(strings.ToLower(d.jobDescription), -1) {
		w = strings.TrimFunc(w, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) })
		if utf8.RuneCountInString(w) <= minJobWordLength {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// excerpt returns the first line containing needle, or the opening of the resume.
func (d *document) excerpt(needle string) string {
	needle = strings.ToLower(needle)
	if needle != "" {
		for _, line := range d.lines {
			if strings.Contains(strings.ToLower(line), needle) {
				return logger.TruncateForLog(line, excerptLength)
			}
		}
	}
	if len(d.lines) > 0 {
		return logger.TruncateForLog(d.lines[0], excerptLength)
	}
	return ""
}
