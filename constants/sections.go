package constants

// SectionKeywords are the resume section headers the normalizer isolates into
// their own paragraphs and the field extractor buckets content under.
// Matched case-insensitively as whole words.
var SectionKeywords = []string{
	"education",
	"experience",
	"skills",
	"work history",
	"projects",
	"certifications",
	"achievements",
	"summary",
	"objective",
}

// SectionHeaders is the superset used for line-based section bucketing.
var SectionHeaders = []string{
	"education",
	"experience",
	"work experience",
	"employment",
	"skills",
	"projects",
	"certifications",
	"achievements",
	"summary",
	"objective",
}
