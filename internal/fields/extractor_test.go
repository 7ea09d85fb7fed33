package fields

import (
	"context"
	"io"
	"log/slog"
	"reflect"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const sampleResume = `Jane Smith
jane.smith@example.com
(555) 123-4567

Summary

Backend engineer with eight years shipping services.

Skills

Python, SQL, Docker, python

Education

BSc Computer Science, 2015

Experience

Acme Corp, Senior Engineer
Built data pipelines.`

func TestExtractFields(t *testing.T) {
	e := NewDefaultExtractor(testLogger())
	r, err := e.ExtractFields(context.Background(), sampleResume)
	if err != nil {
		t.Fatal(err)
	}

	if r.Name != "Jane Smith" {
		t.Errorf("Name = %q", r.Name)
	}
	if r.Email != "jane.smith@example.com" {
		t.Errorf("Email = %q", r.Email)
	}
	if r.Phone != "(555) 123-4567" {
		t.Errorf("Phone = %q", r.Phone)
	}
	// duplicates collapse case-insensitively; taxonomy order and casing win
	if want := []string{"Python", "SQL", "Docker"}; !reflect.DeepEqual(r.Skills, want) {
		t.Errorf("Skills = %v, want %v", r.Skills, want)
	}
	if r.Summary != "Backend engineer with eight years shipping services." {
		t.Errorf("Summary = %q", r.Summary)
	}
	if want := []string{"BSc Computer Science, 2015"}; !reflect.DeepEqual(r.Education, want) {
		t.Errorf("Education = %v, want %v", r.Education, want)
	}
	if len(r.Experience) != 2 || r.Experience[0] != "Acme Corp, Senior Engineer" {
		t.Errorf("Experience = %v", r.Experience)
	}
}

func TestExtractFieldsEmptyText(t *testing.T) {
	e := NewDefaultExtractor(testLogger())
	r, err := e.ExtractFields(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	if r.Name != "" || r.Email != "" || r.Phone != "" {
		t.Errorf("expected empty scalar fields, got %+v", r)
	}
	// slices stay non-nil so the serialized form validates against the schema
	if r.Skills == nil || r.Experience == nil || r.Education == nil {
		t.Errorf("expected initialized slices, got %+v", r)
	}
}

func TestExtractFieldsNoSections(t *testing.T) {
	e := NewDefaultExtractor(testLogger())
	r, err := e.ExtractFields(context.Background(), "John Doe\njohn@example.com\nJust one line about Java.")
	if err != nil {
		t.Fatal(err)
	}
	if r.Name != "John Doe" {
		t.Errorf("Name = %q", r.Name)
	}
	if len(r.Skills) != 1 || r.Skills[0] != "Java" {
		t.Errorf("Skills = %v", r.Skills)
	}
	if len(r.Education) != 0 || len(r.Experience) != 0 || r.Summary != "" {
		t.Errorf("unexpected section content: %+v", r)
	}
}

func TestExtractFieldsNameStopsAtFirstLine(t *testing.T) {
	// normalized text puts section headers on their own capitalized lines
	// right after the name; they must not be absorbed into it
	e := NewDefaultExtractor(testLogger())
	r, err := e.ExtractFields(context.Background(), "Jane Smith\n\nSkills\n\n: Python, SQL")
	if err != nil {
		t.Fatal(err)
	}
	if r.Name != "Jane Smith" {
		t.Errorf("Name = %q, want %q", r.Name, "Jane Smith")
	}
}

func TestHeaderOfPrefersLongestMatch(t *testing.T) {
	e := NewDefaultExtractor(testLogger())
	if h := e.headerOf("Work Experience"); h != "work experience" {
		t.Errorf("headerOf(Work Experience) = %q, want %q", h, "work experience")
	}
	if h := e.headerOf("Employment History"); h != "employment" {
		t.Errorf("headerOf(Employment History) = %q, want %q", h, "employment")
	}
}

func TestExtractFieldsWorkExperienceSection(t *testing.T) {
	e := NewDefaultExtractor(testLogger())
	r, err := e.ExtractFields(context.Background(), "Jane Smith\n\nWork Experience\n\nAcme Corp, Senior Engineer")
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Experience) != 1 || r.Experience[0] != "Acme Corp, Senior Engineer" {
		t.Errorf("Experience = %v", r.Experience)
	}
}

func TestMatchSkillsSymbolEdges(t *testing.T) {
	// \b-based matching would miss keywords that end in + or #
	e := NewDefaultExtractor(testLogger())
	r, err := e.ExtractFields(context.Background(), "Fluent in C++ and C# development.")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"C++", "C#"}; !reflect.DeepEqual(r.Skills, want) {
		t.Errorf("Skills = %v, want %v", r.Skills, want)
	}
}

func TestHeaderOfIgnoresLongLines(t *testing.T) {
	e := NewDefaultExtractor(testLogger())
	long := "I have a lot of experience building resilient distributed systems at scale"
	if h := e.headerOf(long); h != "" {
		t.Errorf("long sentence treated as header %q", h)
	}
	if h := e.headerOf("Work Experience"); h == "" {
		t.Error("expected header match")
	}
}
