package scoring

import (
	"github.com/margdarshak/career-intelligence-api/internal/domain/entities"
)

// AssessmentType identifica o tipo de avaliação (enum fechado)
type AssessmentType string

const (
	TypeAptitude      AssessmentType = "APTITUDE"
	TypeInterest      AssessmentType = "INTEREST"
	TypePersonality   AssessmentType = "PERSONALITY"
	TypeSkill         AssessmentType = "SKILL"
	TypeCareerValues  AssessmentType = "CAREER_VALUES"
	TypeLearningStyle AssessmentType = "LEARNING_STYLE"
)

// Valid indica se o tipo faz parte do enum conhecido
func (t AssessmentType) Valid() bool {
	switch t {
	case TypeAptitude, TypeInterest, TypePersonality, TypeSkill, TypeCareerValues, TypeLearningStyle:
		return true
	}
	return false
}

// Response emparelha uma pergunta com a resposta literal escolhida
type Response struct {
	Question entities.AssessmentQuestion
	Answer   string
}

// CategoryScore é o agregado por categoria. Os campos opcionais variam por
// algoritmo: APTITUDE preenche maxScore/count, SKILL preenche averageScore/level,
// PERSONALITY preenche dominantResponse, CAREER_VALUES preenche importance.
type CategoryScore struct {
	Score            float64  `json:"score"`
	MaxScore         *float64 `json:"maxScore,omitempty"`
	Percentage       float64  `json:"percentage"`
	Count            *int     `json:"count,omitempty"`
	AverageScore     *float64 `json:"averageScore,omitempty"`
	Level            string   `json:"level,omitempty"`
	DominantResponse string   `json:"dominantResponse,omitempty"`
	Importance       string   `json:"importance,omitempty"`
}

// Result é a saída de qualquer algoritmo de pontuação
type Result struct {
	OverallScore   float64                  `json:"overallScore"`
	Percentage     float64                  `json:"percentage"`
	CategoryScores map[string]CategoryScore `json:"categoryScores"`
	DominantStyle  string                   `json:"dominantStyle,omitempty"`
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
