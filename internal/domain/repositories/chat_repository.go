package repositories

import (
	"errors"
	"time"

	"github.com/margdarshak/career-intelligence-api/internal/domain/entities"
	"gorm.io/gorm"
)

type IChatRepository interface {
	CreateSession(session *entities.ChatSession) error
	FindSession(id, userID string) (*entities.ChatSession, error)
	FindSessions(userID string) ([]entities.ChatSession, error)
	CreateMessage(message *entities.ChatMessage) error
	TouchSession(id string) error
}

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{
		db: db,
	}
}

func (r *ChatRepository) CreateSession(session *entities.ChatSession) error {
	return r.db.Create(session).Error
}

// FindSession carrega a sessão com as mensagens em ordem cronológica
func (r *ChatRepository) FindSession(id, userID string) (*entities.ChatSession, error) {
	var session entities.ChatSession
	err := r.db.
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ? AND user_id = ?", id, userID).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// FindSessions lista as sessões do usuário com a última mensagem de cada uma
func (r *ChatRepository) FindSessions(userID string) ([]entities.ChatSession, error) {
	var sessions []entities.ChatSession
	err := r.db.
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC").Limit(1)
		}).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&sessions).Error
	return sessions, err
}

func (r *ChatRepository) CreateMessage(message *entities.ChatMessage) error {
	return r.db.Create(message).Error
}

func (r *ChatRepository) TouchSession(id string) error {
	return r.db.Model(&entities.ChatSession{}).
		Where("id = ?", id).
		Update("updated_at", time.Now()).Error
}
