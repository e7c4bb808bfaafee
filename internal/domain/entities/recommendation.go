package entities

import (
	"time"

	"github.com/lib/pq"
)

// CareerRoadmap é um plano de carreira montado pelo estudante, com marcos
// ordenados e progresso agregado
type CareerRoadmap struct {
	ID          string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	UserID      string    `json:"user_id" gorm:"column:user_id;type:uuid;index"`
	Title       string    `json:"title" gorm:"column:title"`
	Description string    `json:"description,omitempty" gorm:"column:description"`
	TargetRole  string    `json:"target_role" gorm:"column:target_role"`
	Progress    float64   `json:"progress" gorm:"column:progress;default:0"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`

	// Relações
	Milestones []RoadmapMilestone `json:"milestones,omitempty" gorm:"foreignKey:RoadmapID"`
}

// RoadmapMilestone é um passo tipado do plano (curso, projeto, habilidade,
// certificação ou experiência)
type RoadmapMilestone struct {
	ID          string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	RoadmapID   string    `json:"roadmap_id" gorm:"column:roadmap_id;type:uuid;index"`
	Title       string    `json:"title" gorm:"column:title"`
	Description string    `json:"description,omitempty" gorm:"column:description"`
	Type        string    `json:"type" gorm:"column:type"`
	Resources   JSONMap   `json:"resources,omitempty" gorm:"column:resources;type:jsonb"`
	Order       int       `json:"order" gorm:"column:milestone_order"`
	IsCompleted bool      `json:"is_completed" gorm:"column:is_completed;default:false"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// Course representa um curso de graduação/pós no catálogo estático
type Course struct {
	ID            string         `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	Name          string         `json:"name" gorm:"column:name;uniqueIndex"`
	Code          string         `json:"code" gorm:"column:code"`
	Level         string         `json:"level" gorm:"column:level"`
	Field         string         `json:"field" gorm:"column:field"`
	Description   string         `json:"description,omitempty" gorm:"column:description"`
	Duration      string         `json:"duration" gorm:"column:duration"`
	CareerPaths   pq.StringArray `json:"career_paths" gorm:"column:career_paths;type:text[]"`
	Skills        pq.StringArray `json:"skills" gorm:"column:skills;type:text[]"`
	Prerequisites pq.StringArray `json:"prerequisites" gorm:"column:prerequisites;type:text[]"`
	Eligibility   string         `json:"eligibility,omitempty" gorm:"column:eligibility"`
	CreatedAt     time.Time      `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time      `json:"updated_at" gorm:"column:updated_at"`
}
