package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Narrative é a análise estruturada de uma avaliação, vinda da IA ou do
// gerador de fallback. O formato é o mesmo nos dois caminhos.
type Narrative struct {
	Analysis          string             `json:"analysis"`
	QuestionAnalysis  []QuestionFeedback `json:"questionAnalysis"`
	Strengths         []string           `json:"strengths"`
	ImprovementAreas  []string           `json:"improvementAreas"`
	CareerSuggestions []CareerSuggestion `json:"careerSuggestions"`
	Recommendations   []string           `json:"recommendations"`
	NextSteps         []string           `json:"nextSteps"`
	DetailedFeedback  DetailedFeedback   `json:"detailedFeedback"`
}

// QuestionFeedback comenta uma resposta individual
type QuestionFeedback struct {
	Question     string `json:"question"`
	UserAnswer   string `json:"userAnswer"`
	IsOptimal    bool   `json:"isOptimal"`
	Feedback     string `json:"feedback"`
	BetterChoice string `json:"betterChoice,omitempty"`
	Reasoning    string `json:"reasoning"`
}

// CareerSuggestion aponta um campo de carreira compatível com o perfil
type CareerSuggestion struct {
	Field        string `json:"field"`
	Match        int    `json:"match"`
	Reasoning    string `json:"reasoning"`
	Requirements string `json:"requirements"`
	Growth       string `json:"growth"`
}

// DetailedFeedback agrupa os comentários qualitativos por dimensão
type DetailedFeedback struct {
	Personality   string `json:"personality"`
	WorkStyle     string `json:"workStyle"`
	LearningStyle string `json:"learningStyle"`
	Motivation    string `json:"motivation"`
	Challenges    string `json:"challenges"`
}

// Tabela estática categoria → campo de carreira. Categorias fora da tabela
// caem no campo genérico.
var careerFields = map[string]string{
	"Logical-Mathematical": "Engineering and Data Science",
	"Linguistic":           "Communications and Writing",
	"Spatial":              "Design and Architecture",
	"Kinesthetic":          "Healthcare and Sports",
	"Musical":              "Arts and Entertainment",
	"Interpersonal":        "Education and Social Work",
	"Intrapersonal":        "Psychology and Counseling",
	"Naturalistic":         "Environmental Science",
	"Creative":             "Arts and Design",
	"Analytical":           "Research and Analysis",
	"Scientific":           "Science and Technology",
	"Leadership":           "Management and Business",
	"Systematic":           "Operations and Administration",
}

const defaultCareerField = "Technology and Innovation"

// CareerFieldFor mapeia uma categoria para um campo de carreira
func CareerFieldFor(category string) string {
	if field, ok := careerFields[category]; ok {
		return field
	}
	return defaultCareerField
}

type rankedCategory struct {
	name  string
	score CategoryScore
}

// FallbackNarrative sintetiza a análise completa a partir da pontuação, sem
// nenhum serviço externo. É o caminho de disponibilidade garantida: produz um
// resultado totalmente preenchido para qualquer entrada, inclusive sem
// categorias, e nunca falha.
func FallbackNarrative(assessmentType AssessmentType, responses []Response, result Result) *Narrative {
	top := topCategories(result.CategoryScores, 3)

	strengths := make([]string, 0, 3)
	for _, c := range top {
		strengths = append(strengths, fmt.Sprintf("Strong %s abilities (%d%%)", humanize(c.name), int(math.Round(c.score.Percentage))))
	}
	if len(strengths) == 0 {
		strengths = []string{"Analytical thinking", "Problem-solving approach", "Career exploration mindset"}
	}

	questionAnalysis := make([]QuestionFeedback, 0, len(responses))
	for i, r := range responses {
		category := humanize(r.Question.Category)
		questionAnalysis = append(questionAnalysis, QuestionFeedback{
			Question:   r.Question.Question,
			UserAnswer: r.Answer,
			IsOptimal:  i%3 != 0,
			Feedback:   fmt.Sprintf("Your response demonstrates %s thinking patterns.", category),
			Reasoning:  fmt.Sprintf("This answer reflects your approach to %s challenges and shows your natural inclinations.", category),
		})
	}

	suggestions := make([]CareerSuggestion, 0, 3)
	for _, c := range top {
		suggestions = append(suggestions, CareerSuggestion{
			Field:        CareerFieldFor(c.name),
			Match:        int(math.Round(c.score.Percentage)),
			Reasoning:    fmt.Sprintf("Your strong %s skills align well with this field", humanize(c.name)),
			Requirements: "Relevant education, skill development, and practical experience",
			Growth:       "Positive growth prospects with increasing demand",
		})
	}
	if len(suggestions) == 0 {
		suggestions = []CareerSuggestion{{
			Field:        defaultCareerField,
			Match:        75,
			Reasoning:    "Your analytical approach shows potential in tech fields",
			Requirements: "Technical skills and continuous learning",
			Growth:       "Excellent growth prospects",
		}}
	}

	overall := result.Percentage
	if overall == 0 {
		overall = 70
	}
	band := performanceBand(overall)

	topNames := make([]string, 0, len(top))
	for _, c := range top {
		topNames = append(topNames, humanize(c.name))
	}

	workStyle := "analytical"
	if len(top) > 0 {
		workStyle = humanize(top[0].name)
	}

	motivation := "Well"
	if band == "excellent" {
		motivation = "Highly"
	}

	return &Narrative{
		Analysis: fmt.Sprintf(
			"Based on your assessment responses, you demonstrate %s capabilities across multiple areas. Your strongest areas are %s. With an overall score of %.1f%%, you show a well-rounded profile with specific areas of excellence that can guide your career development.",
			band, strings.Join(topNames, ", "), overall),
		QuestionAnalysis: questionAnalysis,
		Strengths:        strengths,
		ImprovementAreas: []string{
			"Continue developing your weaker skill areas",
			"Seek practical experience in your areas of interest",
			"Build a network in your target career fields",
			"Stay updated with industry trends and requirements",
		},
		CareerSuggestions: suggestions,
		Recommendations: []string{
			fmt.Sprintf("Focus on leveraging your strongest skills: %s", firstOr(strengths, "analytical abilities")),
			"Explore internships or projects in your areas of interest",
			"Consider additional training or certification in your target field",
			"Connect with professionals in careers that match your profile",
			"Regularly reassess your skills and interests as you grow",
		},
		NextSteps: []string{
			"Research specific roles in your top career suggestions",
			"Identify skill gaps and create a development plan",
			"Network with professionals in your fields of interest",
			"Gain hands-on experience through projects or volunteering",
			"Consider taking additional assessments as you develop",
		},
		DetailedFeedback: DetailedFeedback{
			Personality:   fmt.Sprintf("Shows %s self-awareness and thoughtful career planning approach", band),
			WorkStyle:     fmt.Sprintf("Demonstrates %s work preferences", workStyle),
			LearningStyle: "Engaged and systematic approach to skill development",
			Motivation:    fmt.Sprintf("%s motivated for career growth and development", motivation),
			Challenges:    "Continue exploring diverse opportunities while building on your strengths",
		},
	}
}

// topCategories ordena as categorias por porcentagem decrescente e devolve as
// n primeiras. Empates são resolvidos pelo nome para manter o determinismo.
func topCategories(scores map[string]CategoryScore, n int) []rankedCategory {
	ranked := make([]rankedCategory, 0, len(scores))
	for name, score := range scores {
		ranked = append(ranked, rankedCategory{name: name, score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score.Percentage != ranked[j].score.Percentage {
			return ranked[i].score.Percentage > ranked[j].score.Percentage
		}
		return ranked[i].name < ranked[j].name
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func performanceBand(percentage float64) string {
	switch {
	case percentage >= 80:
		return "excellent"
	case percentage >= 60:
		return "good"
	default:
		return "developing"
	}
}

// humanize converte "Logical-Mathematical" em "logical mathematical"
func humanize(category string) string {
	return strings.Replace(strings.ToLower(category), "-", " ", 1)
}

func firstOr(list []string, fallback string) string {
	if len(list) > 0 {
		return list[0]
	}
	return fallback
}
