package fields

import (
	"context"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/resumatic/resume-parser/constants"
)

var (
	reName  = regexp.MustCompile(`^([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`)
	reEmail = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	rePhone = regexp.MustCompile(`(?:\+\d{1,2}\s)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
)

// Extractor derives resume fields from cleaned text using regular
// expressions and keyword taxonomies. Deliberately tolerant of noisy text:
// missing fields stay empty rather than erroring.
type Extractor struct {
	skills  []*keywordPattern
	headers []*keywordPattern
	logger  *slog.Logger
}

type keywordPattern struct {
	label string
	re    *regexp.Regexp
}

// NewExtractor compiles patterns for the given skill taxonomy and section
// headers. Pass the constants defaults unless a caller needs a custom list.
func NewExtractor(skills, headers []string, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Extractor{logger: logger}
	for _, s := range skills {
		e.skills = append(e.skills, &keywordPattern{label: s, re: keywordRegexp(s)})
	}
	// longest headers first, so "Work Experience" resolves to the
	// "work experience" entry and not the bare "experience" one
	sorted := make([]string, len(headers))
	copy(sorted, headers)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	for _, h := range sorted {
		e.headers = append(e.headers, &keywordPattern{label: h, re: keywordRegexp(h)})
	}
	return e
}

// keywordRegexp builds a case-insensitive whole-word pattern for kw. \b only
// works against word characters, so keywords like "C++" or "C#" need explicit
// edge classes instead.
func keywordRegexp(kw string) *regexp.Regexp {
	pre, post := `\b`, `\b`
	if !isWordByte(kw[0]) {
		pre = `(?:^|[^\w])`
	}
	if !isWordByte(kw[len(kw)-1]) {
		post = `(?:[^\w]|$)`
	}
	return regexp.MustCompile(`(?i)` + pre + regexp.QuoteMeta(kw) + post)
}

func isWordByte(b byte) bool {
	return b == '_' ||
		('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}

// NewDefaultExtractor uses the stock taxonomy and section headers.
func NewDefaultExtractor(logger *slog.Logger) *Extractor {
	return NewExtractor(constants.TechSkills, constants.SectionHeaders, logger)
}

// ExtractFields parses the cleaned text. Empty input yields an empty Resume.
func (e *Extractor) ExtractFields(_ context.Context, text string) (Resume, error) {
	r := Resume{Skills: []string{}, Experience: []string{}, Education: []string{}}
	if text == "" {
		return r, nil
	}

	// the name sits on the top line; matching further would swallow any
	// capitalized line that follows it
	firstLine, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	if m := reName.FindStringSubmatch(firstLine); m != nil {
		r.Name = m[1]
	}
	if m := reEmail.FindString(text); m != "" {
		r.Email = m
	}
	if m := rePhone.FindString(text); m != "" {
		r.Phone = m
	}
	r.Skills = e.matchSkills(text)

	sections := e.bucketSections(text)
	if lines, ok := sections["summary"]; ok {
		r.Summary = strings.Join(lines, " ")
	}
	if lines, ok := sections["education"]; ok {
		r.Education = lines
	}
	for _, key := range []string{"experience", "work experience", "employment"} {
		if lines, ok := sections[key]; ok {
			r.Experience = lines
			break
		}
	}
	return r, nil
}

// matchSkills returns taxonomy entries present in the text as whole words,
// deduplicated case-insensitively, in taxonomy order.
func (e *Extractor) matchSkills(text string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, sp := range e.skills {
		if !sp.re.MatchString(text) {
			continue
		}
		key := strings.ToLower(sp.label)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, sp.label)
	}
	return out
}

// bucketSections assigns lines to the most recent section header seen.
// Header lines themselves are not recorded as content.
func (e *Extractor) bucketSections(text string) map[string][]string {
	sections := make(map[string][]string)
	current := ""
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if header := e.headerOf(trimmed); header != "" {
			current = header
			if _, ok := sections[current]; !ok {
				sections[current] = []string{}
			}
			continue
		}
		if current != "" {
			sections[current] = append(sections[current], trimmed)
		}
	}
	return sections
}

// headerOf reports which section header a line announces, or "".
// Only short lines count: a sentence that merely mentions "experience"
// should not start a section.
func (e *Extractor) headerOf(line string) string {
	if len(line) > 40 {
		return ""
	}
	for _, h := range e.headers {
		if h.re.MatchString(line) {
			return h.label
		}
	}
	return ""
}
