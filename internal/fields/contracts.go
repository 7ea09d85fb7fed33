package fields

import "context"

// Resume holds the structured fields derived from cleaned resume text.
type Resume struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Skills     []string `json:"skills"`
	Experience []string `json:"experience"`
	Education  []string `json:"education"`
	Summary    string   `json:"summary"`
}

// FieldExtractor turns cleaned text into structured resume fields.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, text string) (Resume, error)
}
