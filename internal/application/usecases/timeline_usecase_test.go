package usecases

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/margdarshak/career-intelligence-api/internal/domain/entities"
	"github.com/margdarshak/career-intelligence-api/internal/domain/repositories"
)

type stubTimelineRepo struct {
	events map[string]*entities.TimelineEvent
}

func newStubTimelineRepo() *stubTimelineRepo {
	return &stubTimelineRepo{events: map[string]*entities.TimelineEvent{}}
}

func (s *stubTimelineRepo) FindEvents(userID string, filters repositories.TimelineFilters, now time.Time) ([]entities.TimelineEvent, error) {
	var out []entities.TimelineEvent
	for _, e := range s.events {
		if e.UserID == userID || e.IsGlobal {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (s *stubTimelineRepo) FindEventByID(id, userID string) (*entities.TimelineEvent, error) {
	e, ok := s.events[id]
	if !ok || (e.UserID != userID && !e.IsGlobal) {
		return nil, nil
	}
	copy := *e
	return &copy, nil
}

func (s *stubTimelineRepo) FindReminders(userID string, from, to time.Time) ([]entities.TimelineEvent, error) {
	var out []entities.TimelineEvent
	for _, e := range s.events {
		if e.UserID != userID && !e.IsGlobal {
			continue
		}
		if e.ReminderDate == nil || e.IsCompleted {
			continue
		}
		if e.ReminderDate.Before(from) || e.ReminderDate.After(to) {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (s *stubTimelineRepo) CreateEvent(event *entities.TimelineEvent) error {
	s.events[event.ID] = event
	return nil
}

func (s *stubTimelineRepo) UpdateEvent(event *entities.TimelineEvent) error {
	s.events[event.ID] = event
	return nil
}

func (s *stubTimelineRepo) DeleteEvent(id string) error {
	delete(s.events, id)
	return nil
}

func seedTimelineEvent(repo *stubTimelineRepo, userID string, isGlobal, isCompleted bool, reminderIn time.Duration) *entities.TimelineEvent {
	reminder := time.Now().Add(reminderIn)
	event := &entities.TimelineEvent{
		ID:           uuid.NewString(),
		UserID:       userID,
		Title:        "event",
		Type:         "EXAM",
		EventDate:    reminder.AddDate(0, 0, 14),
		ReminderDate: &reminder,
		IsGlobal:     isGlobal,
		IsCompleted:  isCompleted,
	}
	repo.events[event.ID] = event
	return event
}

func TestGetRemindersWithinWeek(t *testing.T) {
	repo := newStubTimelineRepo()
	uc := NewTimelineUseCase(repo)

	own := seedTimelineEvent(repo, "user-1", false, false, 48*time.Hour)
	global := seedTimelineEvent(repo, "", true, false, 72*time.Hour)
	seedTimelineEvent(repo, "user-1", false, false, 30*24*time.Hour) // fora da janela
	seedTimelineEvent(repo, "user-1", false, true, 24*time.Hour)     // já concluído
	seedTimelineEvent(repo, "user-2", false, false, 24*time.Hour)    // de outro usuário

	reminders, err := uc.GetReminders("user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reminders) != 2 {
		t.Fatalf("reminders = %d, want own + global", len(reminders))
	}
	for _, r := range reminders {
		if r.ID != own.ID && r.ID != global.ID {
			t.Fatalf("unexpected reminder %q", r.Title)
		}
	}
}

func TestGlobalEventsAreReadOnly(t *testing.T) {
	repo := newStubTimelineRepo()
	uc := NewTimelineUseCase(repo)
	global := seedTimelineEvent(repo, "", true, false, 24*time.Hour)

	if _, err := uc.ToggleCompleted("user-1", global.ID); err != ErrEventReadOnly {
		t.Fatalf("err = %v, want ErrEventReadOnly", err)
	}
	if err := uc.DeleteEvent("user-1", global.ID); err != ErrEventReadOnly {
		t.Fatalf("err = %v, want ErrEventReadOnly", err)
	}
}
