package repositories

import (
	"errors"
	"time"

	"github.com/margdarshak/career-intelligence-api/internal/domain/entities"
	"gorm.io/gorm"
)

// TimelineFilters restringe a listagem de eventos
type TimelineFilters struct {
	Type      string
	Upcoming  bool
	Completed bool
}

type ITimelineRepository interface {
	FindEvents(userID string, filters TimelineFilters, now time.Time) ([]entities.TimelineEvent, error)
	FindEventByID(id, userID string) (*entities.TimelineEvent, error)
	FindReminders(userID string, from, to time.Time) ([]entities.TimelineEvent, error)
	CreateEvent(event *entities.TimelineEvent) error
	UpdateEvent(event *entities.TimelineEvent) error
	DeleteEvent(id string) error
}

type TimelineRepository struct {
	db *gorm.DB
}

func NewTimelineRepository(db *gorm.DB) *TimelineRepository {
	return &TimelineRepository{
		db: db,
	}
}

// FindEvents retorna os eventos do usuário mais os globais, por data de evento
func (r *TimelineRepository) FindEvents(userID string, filters TimelineFilters, now time.Time) ([]entities.TimelineEvent, error) {
	query := r.db.Where("user_id = ? OR is_global = ?", userID, true)

	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.Upcoming {
		query = query.Where("event_date >= ? AND is_completed = ?", now, false)
	}
	if filters.Completed {
		query = query.Where("is_completed = ?", true)
	}

	var events []entities.TimelineEvent
	err := query.
		Order("event_date ASC").
		Order("created_at DESC").
		Find(&events).Error
	return events, err
}

// FindEventByID resolve eventos próprios ou globais; eventos de outros
// usuários ficam invisíveis
func (r *TimelineRepository) FindEventByID(id, userID string) (*entities.TimelineEvent, error) {
	var event entities.TimelineEvent
	err := r.db.Where("id = ? AND (user_id = ? OR is_global = ?)", id, userID, true).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// FindReminders retorna eventos pendentes (próprios ou globais) com lembrete
// dentro da janela [from, to]
func (r *TimelineRepository) FindReminders(userID string, from, to time.Time) ([]entities.TimelineEvent, error) {
	var events []entities.TimelineEvent
	err := r.db.
		Where("(user_id = ? OR is_global = ?)", userID, true).
		Where("reminder_date >= ? AND reminder_date <= ?", from, to).
		Where("is_completed = ?", false).
		Order("reminder_date ASC").
		Find(&events).Error
	return events, err
}

func (r *TimelineRepository) CreateEvent(event *entities.TimelineEvent) error {
	return r.db.Create(event).Error
}

func (r *TimelineRepository) UpdateEvent(event *entities.TimelineEvent) error {
	return r.db.Save(event).Error
}

func (r *TimelineRepository) DeleteEvent(id string) error {
	return r.db.Delete(&entities.TimelineEvent{}, "id = ?", id).Error
}
