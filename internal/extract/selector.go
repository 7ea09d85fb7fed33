package extract

// methodRank orders candidates for tie-breaking. Structurally-extracted text
// is most likely to preserve exact characters when lengths tie, so it wins
// over layout reconstruction, which wins over optical recognition.
var methodRank = map[Method]int{
	MethodStructural: 0,
	MethodLayout:     1,
	MethodOptical:    2,
}

// SelectBest picks the candidate with the highest length; ties resolve by
// method rank. Pure quantity heuristic: content quality is judged downstream
// by the field extractor, not here.
func SelectBest(candidates []Candidate) Candidate {
	if len(candidates) == 0 {
		return Candidate{}
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Length > best.Length {
			best = c
			continue
		}
		if c.Length == best.Length && methodRank[c.Method] < methodRank[best.Method] {
			best = c
		}
	}
	return best
}
