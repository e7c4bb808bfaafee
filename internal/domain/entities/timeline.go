package entities

import "time"

// TimelineEvent representa um marco acadêmico (prova, prazo, resultado) do usuário
// ou um evento global visível para todos.
type TimelineEvent struct {
	ID           string     `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	UserID       string     `json:"user_id" gorm:"column:user_id;type:uuid;index"`
	Title        string     `json:"title" gorm:"column:title"`
	Description  string     `json:"description,omitempty" gorm:"column:description"`
	Type         string     `json:"type" gorm:"column:type"`
	EventDate    time.Time  `json:"event_date" gorm:"column:event_date;index"`
	ReminderDate *time.Time `json:"reminder_date,omitempty" gorm:"column:reminder_date"`
	IsCompleted  bool       `json:"is_completed" gorm:"column:is_completed"`
	IsGlobal     bool       `json:"is_global" gorm:"column:is_global"`
	Metadata     JSONMap    `json:"metadata,omitempty" gorm:"column:metadata;type:jsonb"`
	CreatedAt    time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"column:updated_at"`
}
