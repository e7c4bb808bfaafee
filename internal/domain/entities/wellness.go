package entities

import (
	"time"

	"github.com/lib/pq"
)

// WellnessCheckin representa o check-in diário de bem-estar (um por usuário por dia).
// As cinco métricas principais são obrigatórias (1-10); as demais são opcionais e
// entram no cálculo do OverallScore apenas quando presentes.
type WellnessCheckin struct {
	ID     string `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	UserID string `json:"user_id" gorm:"column:user_id;type:uuid;index"`

	MoodScore    int `json:"mood_score" gorm:"column:mood_score"`
	StressLevel  int `json:"stress_level" gorm:"column:stress_level"`
	EnergyLevel  int `json:"energy_level" gorm:"column:energy_level"`
	SleepQuality int `json:"sleep_quality" gorm:"column:sleep_quality"`
	FocusLevel   int `json:"focus_level" gorm:"column:focus_level"`

	HoursSlept        *float64 `json:"hours_slept,omitempty" gorm:"column:hours_slept"`
	ExerciseMinutes   *int     `json:"exercise_minutes,omitempty" gorm:"column:exercise_minutes"`
	ScreenTime        *int     `json:"screen_time,omitempty" gorm:"column:screen_time"`
	SocialTime        *int     `json:"social_time,omitempty" gorm:"column:social_time"`
	StudyHours        *float64 `json:"study_hours,omitempty" gorm:"column:study_hours"`
	ProductivityScore *int     `json:"productivity_score,omitempty" gorm:"column:productivity_score"`
	MotivationLevel   *int     `json:"motivation_level,omitempty" gorm:"column:motivation_level"`
	AnxietyLevel      *int     `json:"anxiety_level,omitempty" gorm:"column:anxiety_level"`
	ConfidenceLevel   *int     `json:"confidence_level,omitempty" gorm:"column:confidence_level"`

	Activities pq.StringArray `json:"activities" gorm:"column:activities;type:text[]"`
	Gratitude  pq.StringArray `json:"gratitude" gorm:"column:gratitude;type:text[]"`
	Challenges pq.StringArray `json:"challenges" gorm:"column:challenges;type:text[]"`
	Goals      pq.StringArray `json:"goals" gorm:"column:goals;type:text[]"`
	Notes      string         `json:"notes,omitempty" gorm:"column:notes"`

	// Derivado na criação: sempre igual a analytics.WellnessScore(checkin)
	OverallScore float64 `json:"overall_score" gorm:"column:overall_score"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;index"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// WellnessInsight é gerado pelo motor de regras e imutável depois de criado
type WellnessInsight struct {
	ID              string         `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	UserID          string         `json:"user_id" gorm:"column:user_id;type:uuid;index"`
	Type            string         `json:"type" gorm:"column:type"`
	Title           string         `json:"title" gorm:"column:title"`
	Description     string         `json:"description" gorm:"column:description"`
	Category        string         `json:"category" gorm:"column:category"`
	Recommendations pq.StringArray `json:"recommendations" gorm:"column:recommendations;type:text[]"`
	Priority        string         `json:"priority" gorm:"column:priority"`
	TriggerData     JSONMap        `json:"trigger_data,omitempty" gorm:"column:trigger_data;type:jsonb"`
	IsRead          bool           `json:"is_read" gorm:"column:is_read"`
	CreatedAt       time.Time      `json:"created_at" gorm:"column:created_at"`
}

// WellnessGoal é lido pelos dashboards; fora do escopo do cálculo de score
type WellnessGoal struct {
	ID           string        `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	UserID       string        `json:"user_id" gorm:"column:user_id;type:uuid;index"`
	Title        string        `json:"title" gorm:"column:title"`
	Description  string        `json:"description,omitempty" gorm:"column:description"`
	Category     string        `json:"category" gorm:"column:category"`
	TargetValue  *float64      `json:"target_value,omitempty" gorm:"column:target_value"`
	Unit         string        `json:"unit,omitempty" gorm:"column:unit"`
	ReminderTime string        `json:"reminder_time,omitempty" gorm:"column:reminder_time"`
	ReminderDays pq.Int64Array `json:"reminder_days" gorm:"column:reminder_days;type:integer[]"`
	IsActive     bool          `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt    time.Time     `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time     `json:"updated_at" gorm:"column:updated_at"`
}
