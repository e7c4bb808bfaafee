package entities

import (
	"time"

	"github.com/lib/pq"
)

// Assessment representa uma avaliação instanciada a partir de um template
type Assessment struct {
	ID          string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	UserID      string    `json:"user_id" gorm:"column:user_id;type:uuid;index"`
	Type        string    `json:"type" gorm:"column:type"`
	Title       string    `json:"title" gorm:"column:title"`
	Description string    `json:"description" gorm:"column:description"`
	TimeLimit   int       `json:"time_limit" gorm:"column:time_limit"`
	IsCompleted bool      `json:"is_completed" gorm:"column:is_completed"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`

	// Relações
	Questions []AssessmentQuestion `json:"questions,omitempty" gorm:"foreignKey:AssessmentID"`
	Responses []AssessmentResponse `json:"responses,omitempty" gorm:"foreignKey:AssessmentID"`
	Result    *AssessmentResult    `json:"result,omitempty" gorm:"foreignKey:AssessmentID"`
}

// AssessmentQuestion é imutável depois que a avaliação é criada a partir do template
type AssessmentQuestion struct {
	ID           string         `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	AssessmentID string         `json:"assessment_id" gorm:"column:assessment_id;type:uuid;index"`
	Question     string         `json:"question" gorm:"column:question"`
	Options      pq.StringArray `json:"options" gorm:"column:options;type:text[]"`
	Category     string         `json:"category" gorm:"column:category"`
	Weight       float64        `json:"weight" gorm:"column:weight;default:1.0"`
	Order        int            `json:"order" gorm:"column:question_order"`
}

// AssessmentResponse registra a resposta literal escolhida para uma pergunta
type AssessmentResponse struct {
	ID           string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	AssessmentID string    `json:"assessment_id" gorm:"column:assessment_id;type:uuid;index"`
	QuestionID   string    `json:"question_id" gorm:"column:question_id;type:uuid"`
	Answer       string    `json:"answer" gorm:"column:answer"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`

	// Relações
	Question AssessmentQuestion `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
}

// AssessmentResult guarda a pontuação e a análise (IA ou fallback), no máximo um por avaliação
type AssessmentResult struct {
	ID              string         `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	AssessmentID    string         `json:"assessment_id" gorm:"column:assessment_id;type:uuid;uniqueIndex"`
	OverallScore    float64        `json:"overall_score" gorm:"column:overall_score"`
	Percentage      float64        `json:"percentage" gorm:"column:percentage"`
	CategoryScores  JSONMap        `json:"category_scores" gorm:"column:category_scores;type:jsonb"`
	Insights        string         `json:"insights" gorm:"column:insights"`
	Recommendations pq.StringArray `json:"recommendations" gorm:"column:recommendations;type:text[]"`
	Traits          JSONMap        `json:"traits,omitempty" gorm:"column:traits;type:jsonb"`
	CreatedAt       time.Time      `json:"created_at" gorm:"column:created_at"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"column:updated_at"`
}
