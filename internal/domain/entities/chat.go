package entities

import "time"

// ChatSession agrupa as mensagens de uma conversa com o assistente
type ChatSession struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	UserID    string    `json:"user_id" gorm:"column:user_id;type:uuid;index"`
	Type      string    `json:"type" gorm:"column:type"`
	Title     string    `json:"title" gorm:"column:title"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`

	// Relações
	Messages []ChatMessage `json:"messages,omitempty" gorm:"foreignKey:SessionID"`
}

// ChatMessage representa uma mensagem trocada em uma sessão
type ChatMessage struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	SessionID string    `json:"session_id" gorm:"column:session_id;type:uuid;index"`
	Role      string    `json:"role" gorm:"column:role"`
	Content   string    `json:"content" gorm:"column:content"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}
