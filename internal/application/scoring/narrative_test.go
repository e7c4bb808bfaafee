package scoring

import (
	"strings"
	"testing"
)

func TestFallbackNarrativeNeverEmpty(t *testing.T) {
	narrative := FallbackNarrative(TypeAptitude, nil, Result{})

	if narrative.Analysis == "" {
		t.Fatal("analysis must not be empty")
	}
	if len(narrative.Strengths) != 3 {
		t.Fatalf("generic strengths = %d, want 3", len(narrative.Strengths))
	}
	if len(narrative.CareerSuggestions) != 1 {
		t.Fatalf("suggestions = %d, want 1", len(narrative.CareerSuggestions))
	}
	if narrative.CareerSuggestions[0].Field != defaultCareerField {
		t.Fatalf("field = %q, want %q", narrative.CareerSuggestions[0].Field, defaultCareerField)
	}
	if narrative.CareerSuggestions[0].Match != 75 {
		t.Fatalf("match = %d, want 75", narrative.CareerSuggestions[0].Match)
	}
	if len(narrative.Recommendations) == 0 || len(narrative.NextSteps) == 0 || len(narrative.ImprovementAreas) == 0 {
		t.Fatal("all list sections must be populated")
	}
	if narrative.DetailedFeedback.Personality == "" || narrative.DetailedFeedback.Motivation == "" {
		t.Fatal("detailed feedback must be populated")
	}
}

func TestFallbackNarrativeZeroPercentageReadsAsSeventy(t *testing.T) {
	narrative := FallbackNarrative(TypeAptitude, nil, Result{Percentage: 0})

	if !strings.Contains(narrative.Analysis, "70.0%") {
		t.Fatalf("zero percentage should read as 70%%, got %q", narrative.Analysis)
	}
}

func TestFallbackNarrativeTopCategories(t *testing.T) {
	result := Result{
		Percentage: 85,
		CategoryScores: map[string]CategoryScore{
			"Logical-Mathematical": {Percentage: 90},
			"Linguistic":           {Percentage: 70},
			"Creative":             {Percentage: 80},
			"Musical":              {Percentage: 10},
		},
	}

	narrative := FallbackNarrative(TypeAptitude, nil, result)

	if len(narrative.Strengths) != 3 {
		t.Fatalf("strengths = %d, want top 3", len(narrative.Strengths))
	}
	if narrative.Strengths[0] != "Strong logical mathematical abilities (90%)" {
		t.Fatalf("unexpected first strength: %q", narrative.Strengths[0])
	}

	if narrative.CareerSuggestions[0].Field != "Engineering and Data Science" {
		t.Fatalf("field = %q, want Engineering and Data Science", narrative.CareerSuggestions[0].Field)
	}
	if narrative.CareerSuggestions[0].Match != 90 {
		t.Fatalf("match = %d, want 90", narrative.CareerSuggestions[0].Match)
	}
}

func TestFallbackNarrativeQuestionFeedbackPattern(t *testing.T) {
	q := question("Analytical", 1.0)
	responses := []Response{
		respond(q, "Agree"),
		respond(q, "Agree"),
		respond(q, "Agree"),
		respond(q, "Agree"),
	}

	narrative := FallbackNarrative(TypeAptitude, responses, Result{})

	if len(narrative.QuestionAnalysis) != 4 {
		t.Fatalf("question analysis = %d, want 4", len(narrative.QuestionAnalysis))
	}
	// Índices múltiplos de 3 são marcados como não ótimos
	wantOptimal := []bool{false, true, true, false}
	for i, qa := range narrative.QuestionAnalysis {
		if qa.IsOptimal != wantOptimal[i] {
			t.Fatalf("isOptimal[%d] = %v, want %v", i, qa.IsOptimal, wantOptimal[i])
		}
	}
}

func TestFallbackNarrativeTieBreaksByName(t *testing.T) {
	result := Result{
		CategoryScores: map[string]CategoryScore{
			"Zeta":  {Percentage: 50},
			"Alpha": {Percentage: 50},
		},
	}

	narrative := FallbackNarrative(TypeAptitude, nil, result)

	if !strings.HasPrefix(narrative.Strengths[0], "Strong alpha") {
		t.Fatalf("ties should rank alphabetically, got %q", narrative.Strengths[0])
	}
}

func TestCareerFieldFor(t *testing.T) {
	cases := []struct {
		category string
		want     string
	}{
		{"Logical-Mathematical", "Engineering and Data Science"},
		{"Interpersonal", "Education and Social Work"},
		{"Naturalistic", "Environmental Science"},
		{"Unknown Category", defaultCareerField},
	}
	for _, c := range cases {
		if got := CareerFieldFor(c.category); got != c.want {
			t.Fatalf("CareerFieldFor(%q) = %q, want %q", c.category, got, c.want)
		}
	}
}

func TestPerformanceBand(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{95, "excellent"},
		{80, "excellent"},
		{79.9, "good"},
		{60, "good"},
		{59.9, "developing"},
		{0, "developing"},
	}
	for _, c := range cases {
		if got := performanceBand(c.pct); got != c.want {
			t.Fatalf("performanceBand(%v) = %q, want %q", c.pct, got, c.want)
		}
	}
}

func TestHumanize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Logical-Mathematical", "logical mathematical"},
		{"Creative", "creative"},
		{"Multi-Part-Name", "multi part-name"}, // apenas o primeiro hífen
	}
	for _, c := range cases {
		if got := humanize(c.in); got != c.want {
			t.Fatalf("humanize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
