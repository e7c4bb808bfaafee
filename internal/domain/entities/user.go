package entities

import (
	"time"

	"github.com/lib/pq"
)

// User representa um estudante cadastrado no sistema
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	Email        string    `json:"email" gorm:"column:email;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"column:password_hash"`
	Name         string    `json:"name" gorm:"column:name"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at"`

	// Relações
	Profile *UserProfile `json:"profile,omitempty" gorm:"foreignKey:UserID"`
}

// UserProfile guarda o contexto acadêmico usado na análise por IA
type UserProfile struct {
	ID                  string         `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	UserID              string         `json:"user_id" gorm:"column:user_id;type:uuid;uniqueIndex"`
	Age                 *int           `json:"age,omitempty" gorm:"column:age"`
	Class               string         `json:"class,omitempty" gorm:"column:class"`
	Location            string         `json:"location,omitempty" gorm:"column:location"`
	Interests           pq.StringArray `json:"interests" gorm:"column:interests;type:text[]"`
	CareerGoals         pq.StringArray `json:"career_goals" gorm:"column:career_goals;type:text[]"`
	Skills              pq.StringArray `json:"skills" gorm:"column:skills;type:text[]"`
	AcademicPerformance string         `json:"academic_performance,omitempty" gorm:"column:academic_performance"`
	CreatedAt           time.Time      `json:"created_at" gorm:"column:created_at"`
	UpdatedAt           time.Time      `json:"updated_at" gorm:"column:updated_at"`
}
