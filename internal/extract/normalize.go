package extract

import (
	"regexp"
	"strings"

	"github.com/resumatic/resume-parser/constants"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reHorizWS    = regexp.MustCompile(`[^\S\n]+`)
	reGluedSent  = regexp.MustCompile(`([.!?])(\w)`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
)

// Normalizer is the deterministic cleanup pass applied to the winning
// candidate. Idempotent: Normalize(Normalize(x)) == Normalize(x).
type Normalizer struct {
	sections []*regexp.Regexp
}

// NewNormalizer compiles whole-word, case-insensitive patterns for the given
// section keywords. The keyword list is data, not code.
func NewNormalizer(keywords []string) *Normalizer {
	n := &Normalizer{sections: make([]*regexp.Regexp, 0, len(keywords))}
	for _, kw := range keywords {
		// surrounding spaces are consumed so the inserted paragraph breaks
		// sit directly against the neighboring text
		n.sections = append(n.sections, regexp.MustCompile(`(?i) *\b(`+regexp.QuoteMeta(kw)+`)\b *`))
	}
	return n
}

// Normalize collapses noisy whitespace, separates glued sentences, and
// isolates section headers into their own paragraphs. Line breaks are kept
// as structural signals; runs of three or more newlines collapse to one
// blank line.
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return s
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reHorizWS.ReplaceAllString(s, " ")
	// column-based extraction tends to glue sentences together
	s = reGluedSent.ReplaceAllString(s, "$1 $2")
	// section headers get their own paragraph so downstream splitting can
	// rely on them even when the source ran sections together
	for _, re := range n.sections {
		s = re.ReplaceAllString(s, "\n\n$1\n\n")
	}
	// trim trailing spaces on lines before collapsing blanks, so trimming
	// cannot reintroduce runs of newlines
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	s = reMultiBlank.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(s)
}

var defaultNormalizer = NewNormalizer(constants.SectionKeywords)

// Normalize applies the default resume normalizer.
func Normalize(s string) string {
	return defaultNormalizer.Normalize(s)
}
