package scoring

import (
	"math"
	"testing"

	"github.com/margdarshak/career-intelligence-api/internal/domain/entities"
)

func question(category string, weight float64, options ...string) entities.AssessmentQuestion {
	return entities.AssessmentQuestion{
		Question: "q",
		Category: category,
		Weight:   weight,
		Options:  options,
	}
}

func respond(q entities.AssessmentQuestion, answer string) Response {
	return Response{Question: q, Answer: answer}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreAptitude(t *testing.T) {
	responses := []Response{
		respond(question("Logical-Mathematical", 1.0), "Strongly Agree"),
		respond(question("Linguistic", 1.0), "Disagree"),
	}

	result := scoreAptitude(responses)

	if result.OverallScore != 7 {
		t.Fatalf("overall = %v, want 7", result.OverallScore)
	}
	if !almostEqual(result.Percentage, 70) {
		t.Fatalf("percentage = %v, want 70", result.Percentage)
	}

	lm, ok := result.CategoryScores["Logical-Mathematical"]
	if !ok {
		t.Fatal("missing Logical-Mathematical category")
	}
	if lm.Score != 5 || *lm.MaxScore != 5 || !almostEqual(lm.Percentage, 100) || *lm.Count != 1 {
		t.Fatalf("unexpected category score: %+v", lm)
	}
}

func TestScoreAptitudeWeighted(t *testing.T) {
	responses := []Response{
		respond(question("Analytical", 1.2), "Agree"),
	}

	result := scoreAptitude(responses)

	if !almostEqual(result.OverallScore, 4.8) {
		t.Fatalf("overall = %v, want 4.8", result.OverallScore)
	}
	if !almostEqual(result.Percentage, 80) {
		t.Fatalf("percentage = %v, want 80", result.Percentage)
	}
}

func TestScoreAptitudeUnknownAnswer(t *testing.T) {
	responses := []Response{
		respond(question("Spatial", 1.0), "Whatever"),
	}

	result := scoreAptitude(responses)

	if result.OverallScore != 3 {
		t.Fatalf("unknown answer should score the middle ordinal, got %v", result.OverallScore)
	}
}

func TestScoreAptitudeEmpty(t *testing.T) {
	result := scoreAptitude(nil)

	if result.OverallScore != 0 || result.Percentage != 0 {
		t.Fatalf("empty input should score zero, got %+v", result)
	}
	if math.IsNaN(result.Percentage) {
		t.Fatal("percentage must never be NaN")
	}
}

func TestScoreInterestTalliesByAnswer(t *testing.T) {
	q1 := question("Primary Interest", 1.2)
	q2 := question("Career Field", 1.2)
	q3 := question("Motivation", 1.1)

	responses := []Response{
		respond(q1, "Conducting scientific research"),
		respond(q2, "Conducting scientific research"),
		respond(q3, "Expressing creativity"),
	}

	result := scoreInterest(responses)

	research := result.CategoryScores["Conducting scientific research"]
	if !almostEqual(research.Score, 2.4) {
		t.Fatalf("research score = %v, want 2.4", research.Score)
	}
	if !almostEqual(result.OverallScore, 3.5) {
		t.Fatalf("overall = %v, want 3.5", result.OverallScore)
	}
	// max possível é len×1.2 = 3.6
	if !almostEqual(result.Percentage, 3.5/3.6*100) {
		t.Fatalf("percentage = %v", result.Percentage)
	}
}

func TestScoreInterestKeepsTopThree(t *testing.T) {
	responses := []Response{
		respond(question("A", 1.0), "alpha"),
		respond(question("B", 1.0), "alpha"),
		respond(question("C", 1.0), "beta"),
		respond(question("D", 1.0), "gamma"),
		respond(question("E", 1.0), "delta"),
	}

	result := scoreInterest(responses)

	if len(result.CategoryScores) != 3 {
		t.Fatalf("category count = %d, want 3", len(result.CategoryScores))
	}
	if _, ok := result.CategoryScores["alpha"]; !ok {
		t.Fatal("top answer missing from categories")
	}
	if _, ok := result.CategoryScores["delta"]; ok {
		t.Fatal("fourth-ranked answer should be cut")
	}
}

func TestScorePersonalityUsesOptionPosition(t *testing.T) {
	options := []string{"first", "second", "third", "fourth", "fifth"}
	q := question("Decision Making", 1.0, options...)

	responses := []Response{respond(q, "third")}

	result := scorePersonality(responses)

	if result.OverallScore != 3 {
		t.Fatalf("overall = %v, want 3 (1-based option index)", result.OverallScore)
	}
	if !almostEqual(result.Percentage, 60) {
		t.Fatalf("percentage = %v, want 60", result.Percentage)
	}
}

func TestScorePersonalityDominantIsFirstResponse(t *testing.T) {
	options := []string{"a", "b", "c", "d", "e"}
	q1 := question("Social Style", 1.0, options...)
	q2 := question("Social Style", 1.0, options...)
	q3 := question("Social Style", 1.0, options...)

	responses := []Response{
		respond(q1, "b"),
		respond(q2, "e"),
		respond(q3, "e"),
	}

	result := scorePersonality(responses)

	// A resposta dominante é a primeira da categoria, não a mais frequente
	if got := result.CategoryScores["Social Style"].DominantResponse; got != "b" {
		t.Fatalf("dominant = %q, want %q", got, "b")
	}
}

func TestScorePersonalityAnswerOutsideOptions(t *testing.T) {
	q := question("Work Style", 1.0, "a", "b")

	result := scorePersonality([]Response{respond(q, "zzz")})

	if result.OverallScore != 0 {
		t.Fatalf("answer outside options should score 0, got %v", result.OverallScore)
	}
}

func TestScoreSkillLevels(t *testing.T) {
	responses := []Response{
		respond(question("Communication", 1.0), "Expert"),
		respond(question("Communication", 1.0), "Intermediate"),
	}

	result := scoreSkill(responses)

	comm := result.CategoryScores["Communication"]
	if *comm.AverageScore != 4 {
		t.Fatalf("average = %v, want 4", *comm.AverageScore)
	}
	if comm.Level != "Advanced" {
		t.Fatalf("level = %q, want Advanced", comm.Level)
	}
	if !almostEqual(comm.Percentage, 80) {
		t.Fatalf("percentage = %v, want 80", comm.Percentage)
	}
}

func TestSkillLevelBands(t *testing.T) {
	cases := []struct {
		avg  float64
		want string
	}{
		{5, "Advanced"},
		{4, "Advanced"},
		{3.5, "Intermediate"},
		{3, "Intermediate"},
		{2, "Beginner"},
		{1, "No experience"},
	}
	for _, c := range cases {
		if got := skillLevel(c.avg); got != c.want {
			t.Fatalf("skillLevel(%v) = %q, want %q", c.avg, got, c.want)
		}
	}
}

func TestScoreCareerValuesOverwritesCategory(t *testing.T) {
	responses := []Response{
		respond(question("Financial Security", 1.0), "Extremely Important"),
		respond(question("Financial Security", 1.0), "Slightly Important"),
	}

	result := scoreCareerValues(responses)

	fs := result.CategoryScores["Financial Security"]
	if fs.Score != 2 || fs.Importance != "Slightly Important" {
		t.Fatalf("category should keep the last response, got %+v", fs)
	}
	if result.OverallScore != 7 {
		t.Fatalf("overall = %v, want 7 (both responses count)", result.OverallScore)
	}
}

func TestScoreLearningStyle(t *testing.T) {
	responses := []Response{
		respond(question("Learning Style", 1.0), "Visual"),
		respond(question("Learning Style", 1.0), "Auditory"),
		respond(question("Learning Style", 1.0), "Visual"),
	}

	result := scoreLearningStyle(responses)

	if result.DominantStyle != "Visual" {
		t.Fatalf("dominant = %q, want Visual", result.DominantStyle)
	}
	if result.OverallScore != 3 {
		t.Fatalf("overall = %v, want 3", result.OverallScore)
	}
	if result.Percentage != 100 {
		t.Fatalf("percentage = %v, want 100", result.Percentage)
	}
	visual := result.CategoryScores["Visual"]
	if visual.Score != 2 || !almostEqual(visual.Percentage, 2.0/3.0*100) {
		t.Fatalf("unexpected Visual score: %+v", visual)
	}
}

func TestScoreLearningStyleTieBreaksOnFirstSeen(t *testing.T) {
	responses := []Response{
		respond(question("Learning Style", 1.0), "Auditory"),
		respond(question("Learning Style", 1.0), "Visual"),
	}

	result := scoreLearningStyle(responses)

	if result.DominantStyle != "Auditory" {
		t.Fatalf("tie should keep the first style seen, got %q", result.DominantStyle)
	}
}

func TestScoreLearningStyleEmpty(t *testing.T) {
	result := scoreLearningStyle(nil)

	if result.Percentage != 0 || result.DominantStyle != "" || result.OverallScore != 0 {
		t.Fatalf("empty input should be all-zero, got %+v", result)
	}
}

func TestRegistryFallsBackToGeneric(t *testing.T) {
	registry := NewRegistry()
	responses := []Response{
		respond(question("X", 1.0), "anything"),
		respond(question("Y", 1.0), "anything"),
	}

	result := registry.Score(AssessmentType("SOMETHING_NEW"), responses)

	if result.OverallScore != 6 {
		t.Fatalf("overall = %v, want 6 (3 per response)", result.OverallScore)
	}
	if !almostEqual(result.Percentage, 60) {
		t.Fatalf("percentage = %v, want 60", result.Percentage)
	}
}

func TestRegistryDispatchesKnownTypes(t *testing.T) {
	registry := NewRegistry()
	responses := []Response{respond(question("Spatial", 1.0), "Strongly Agree")}

	result := registry.Score(TypeAptitude, responses)

	if result.OverallScore != 5 {
		t.Fatalf("APTITUDE should use the agreement scale, got %v", result.OverallScore)
	}
}

func TestAssessmentTypeValid(t *testing.T) {
	for _, valid := range []AssessmentType{TypeAptitude, TypeInterest, TypePersonality, TypeSkill, TypeCareerValues, TypeLearningStyle} {
		if !valid.Valid() {
			t.Fatalf("%s should be valid", valid)
		}
	}
	if AssessmentType("NOPE").Valid() {
		t.Fatal("unknown type should be invalid")
	}
}

func TestDefaultTemplatesCoverAllTypes(t *testing.T) {
	templates := DefaultTemplates()
	if len(templates) != 6 {
		t.Fatalf("template count = %d, want 6", len(templates))
	}
	for typ, tpl := range templates {
		if tpl.Type != typ {
			t.Fatalf("template %s carries type %s", typ, tpl.Type)
		}
		if len(tpl.Questions) == 0 {
			t.Fatalf("template %s has no questions", typ)
		}
		for _, q := range tpl.Questions {
			if len(q.Options) == 0 {
				t.Fatalf("template %s question %q has no options", typ, q.Question)
			}
			if q.Weight <= 0 {
				t.Fatalf("template %s question %q has weight %v", typ, q.Question, q.Weight)
			}
		}
	}
}
