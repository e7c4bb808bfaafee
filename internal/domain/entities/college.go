package entities

import (
	"time"

	"github.com/lib/pq"
)

// College representa uma instituição de ensino no catálogo
type College struct {
	ID            string         `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	Name          string         `json:"name" gorm:"column:name"`
	City          string         `json:"city" gorm:"column:city"`
	State         string         `json:"state" gorm:"column:state"`
	Location      string         `json:"location" gorm:"column:location"`
	Type          string         `json:"type" gorm:"column:type"`
	Programs      pq.StringArray `json:"programs" gorm:"column:programs;type:text[]"`
	EntranceExams pq.StringArray `json:"entrance_exams" gorm:"column:entrance_exams;type:text[]"`
	Rating        float64        `json:"rating" gorm:"column:rating"`
	Website       string         `json:"website,omitempty" gorm:"column:website"`
	CreatedAt     time.Time      `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time      `json:"updated_at" gorm:"column:updated_at"`
}
