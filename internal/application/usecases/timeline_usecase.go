package usecases

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/margdarshak/career-intelligence-api/internal/domain/entities"
	"github.com/margdarshak/career-intelligence-api/internal/domain/repositories"
	"github.com/margdarshak/career-intelligence-api/internal/utils"
)

var (
	ErrEventNotFound = errors.New("timeline event not found")
	ErrEventReadOnly = errors.New("global events cannot be modified")
)

// TimelineUseCase implementa a linha do tempo acadêmica (marcos do usuário e
// eventos globais como datas de vestibular)
type TimelineUseCase struct {
	timelineRepo repositories.ITimelineRepository
}

// NewTimelineUseCase cria uma nova instância de TimelineUseCase
func NewTimelineUseCase(timelineRepo repositories.ITimelineRepository) *TimelineUseCase {
	return &TimelineUseCase{
		timelineRepo: timelineRepo,
	}
}

// EventInput carrega os campos de criação/edição de um evento
type EventInput struct {
	Title        string     `json:"title" validate:"required"`
	Description  string     `json:"description,omitempty"`
	Type         string     `json:"type" validate:"required,oneof=EXAM APPLICATION RESULT DEADLINE MILESTONE OTHER"`
	EventDate    time.Time  `json:"eventDate" validate:"required"`
	ReminderDate *time.Time `json:"reminderDate,omitempty"`
}

// GetEvents lista os eventos do usuário e os globais, filtrados
func (u *TimelineUseCase) GetEvents(userID string, filters repositories.TimelineFilters) ([]entities.TimelineEvent, error) {
	now := time.Now().In(utils.GetIndiaLocation())
	return u.timelineRepo.FindEvents(userID, filters, now)
}

// GetReminders lista os eventos pendentes com lembrete nos próximos 7 dias
func (u *TimelineUseCase) GetReminders(userID string) ([]entities.TimelineEvent, error) {
	now := time.Now().In(utils.GetIndiaLocation())
	return u.timelineRepo.FindReminders(userID, now, now.AddDate(0, 0, 7))
}

// CreateEvent cria um marco pessoal na linha do tempo
func (u *TimelineUseCase) CreateEvent(userID string, input EventInput) (*entities.TimelineEvent, error) {
	now := time.Now()
	event := &entities.TimelineEvent{
		ID:           uuid.NewString(),
		UserID:       userID,
		Title:        input.Title,
		Description:  input.Description,
		Type:         input.Type,
		EventDate:    input.EventDate,
		ReminderDate: input.ReminderDate,
		IsCompleted:  false,
		IsGlobal:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.timelineRepo.CreateEvent(event); err != nil {
		return nil, err
	}
	return event, nil
}

// UpdateEvent edita um marco pessoal. Eventos globais são somente leitura.
func (u *TimelineUseCase) UpdateEvent(userID, eventID string, input EventInput, isCompleted *bool) (*entities.TimelineEvent, error) {
	event, err := u.findOwnEvent(userID, eventID)
	if err != nil {
		return nil, err
	}

	event.Title = input.Title
	event.Description = input.Description
	event.Type = input.Type
	event.EventDate = input.EventDate
	event.ReminderDate = input.ReminderDate
	if isCompleted != nil {
		event.IsCompleted = *isCompleted
	}
	event.UpdatedAt = time.Now()

	if err := u.timelineRepo.UpdateEvent(event); err != nil {
		return nil, err
	}
	return event, nil
}

// ToggleCompleted alterna o status de conclusão de um marco pessoal
func (u *TimelineUseCase) ToggleCompleted(userID, eventID string) (*entities.TimelineEvent, error) {
	event, err := u.findOwnEvent(userID, eventID)
	if err != nil {
		return nil, err
	}

	event.IsCompleted = !event.IsCompleted
	event.UpdatedAt = time.Now()

	if err := u.timelineRepo.UpdateEvent(event); err != nil {
		return nil, err
	}
	return event, nil
}

// DeleteEvent remove um marco pessoal
func (u *TimelineUseCase) DeleteEvent(userID, eventID string) error {
	event, err := u.findOwnEvent(userID, eventID)
	if err != nil {
		return err
	}
	return u.timelineRepo.DeleteEvent(event.ID)
}

func (u *TimelineUseCase) findOwnEvent(userID, eventID string) (*entities.TimelineEvent, error) {
	event, err := u.timelineRepo.FindEventByID(eventID, userID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	if event.IsGlobal {
		return nil, ErrEventReadOnly
	}
	return event, nil
}
