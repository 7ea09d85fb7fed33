package fields

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildResumeJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the serialized Resume. Used to validate rows before
// they are persisted.
func BuildResumeJSONSchema() map[string]any {
	stringList := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":       map[string]any{"type": "string"},
			"email":      map[string]any{"type": "string"},
			"phone":      map[string]any{"type": "string"},
			"skills":     stringList,
			"experience": stringList,
			"education":  stringList,
			"summary":    map[string]any{"type": "string"},
		},
		"required": []string{"name", "email", "phone", "skills", "experience", "education", "summary"},
	}
}

// MarshalValidated serializes r and checks the result against the resume
// schema, returning the JSON bytes on success.
func MarshalValidated(r Resume) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal resume: %w", err)
	}
	if err := validateAgainstSchema(BuildResumeJSONSchema(), data); err != nil {
		return nil, err
	}
	return data, nil
}

func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("resume.schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("resume.schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("resume json does not match schema: %w", err)
	}
	return nil
}
