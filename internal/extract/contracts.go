package extract

import (
	"context"
	"time"
)

// Method identifies which extraction strategy produced a candidate.
type Method string

const (
	MethodStructural Method = "structural"
	MethodLayout     Method = "layout"
	MethodOptical    Method = "optical"
)

// ExtractionThreshold is the combined-best length (in bytes) below which the
// two cheap strategies are considered insufficient and the optical fallback
// runs. Design invariant, not a tunable.
const ExtractionThreshold = 100

// Candidate is one strategy's output prior to selection. Length is always
// len(Text); failed strategies degrade to an empty candidate.
type Candidate struct {
	Method Method
	Text   string
	Length int
	Pages  int
}

// NewCandidate tags text with its producing method and page count.
func NewCandidate(method Method, text string, pages int) Candidate {
	return Candidate{Method: method, Text: text, Length: len(text), Pages: pages}
}

// Strategy is one independent way of turning a PDF path into text.
// Each strategy opens its own handle to the file and reports how many pages
// it saw; errors belong to the strategy alone and never abort the pipeline.
type Strategy interface {
	Method() Method
	Extract(ctx context.Context, path string) (text string, pages int, err error)
}

// Result is the pipeline's output: the normalized text of the winning
// candidate plus diagnostics about how it was produced. Pages is the winning
// strategy's page count (the optical path may cap it).
type Result struct {
	Text     string
	Method   Method
	Pages    int
	Duration time.Duration
	Warnings []string
}
