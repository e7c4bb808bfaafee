package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/margdarshak/career-intelligence-api/internal/domain/entities"
)

type stubChatRepo struct {
	sessions map[string]*entities.ChatSession
	messages []entities.ChatMessage
}

func newStubChatRepo() *stubChatRepo {
	return &stubChatRepo{sessions: map[string]*entities.ChatSession{}}
}

func (s *stubChatRepo) CreateSession(session *entities.ChatSession) error {
	s.sessions[session.ID] = session
	return nil
}

func (s *stubChatRepo) FindSession(id, userID string) (*entities.ChatSession, error) {
	session, ok := s.sessions[id]
	if !ok || session.UserID != userID {
		return nil, nil
	}
	copy := *session
	for _, m := range s.messages {
		if m.SessionID == id {
			copy.Messages = append(copy.Messages, m)
		}
	}
	return &copy, nil
}

func (s *stubChatRepo) FindSessions(userID string) ([]entities.ChatSession, error) {
	var out []entities.ChatSession
	for _, session := range s.sessions {
		if session.UserID == userID {
			out = append(out, *session)
		}
	}
	return out, nil
}

func (s *stubChatRepo) CreateMessage(message *entities.ChatMessage) error {
	s.messages = append(s.messages, *message)
	return nil
}

func (s *stubChatRepo) TouchSession(id string) error {
	if session, ok := s.sessions[id]; ok {
		session.UpdatedAt = time.Now()
	}
	return nil
}

type failingGenerator struct{}

func (failingGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	return "", errors.New("service unavailable")
}

type echoGenerator struct{}

func (echoGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	return "  echoed reply \n", nil
}

func TestCreateSessionDefaultsType(t *testing.T) {
	uc := NewChatUseCase(newStubChatRepo(), newStubUserRepo(), nil)

	session, err := uc.CreateSession("user-1", "SOMETHING_ELSE", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Type != ChatGeneral {
		t.Fatalf("type = %q, want %q", session.Type, ChatGeneral)
	}
	if session.Title == "" {
		t.Fatal("title must be defaulted")
	}
}

func TestSendMessagePersistsBothSides(t *testing.T) {
	repo := newStubChatRepo()
	uc := NewChatUseCase(repo, newStubUserRepo(), echoGenerator{})

	session, err := uc.CreateSession("user-1", ChatCareerGuidance, "Exams")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userMsg, assistantMsg, err := uc.SendMessage(context.Background(), "user-1", session.ID, "Which exams should I take?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userMsg.Role != "user" || assistantMsg.Role != "assistant" {
		t.Fatalf("unexpected roles: %q / %q", userMsg.Role, assistantMsg.Role)
	}
	if assistantMsg.Content != "echoed reply" {
		t.Fatalf("reply = %q, want trimmed generator output", assistantMsg.Content)
	}
	if len(repo.messages) != 2 {
		t.Fatalf("persisted messages = %d, want 2", len(repo.messages))
	}
}

func TestSendMessageFallsBackOnAIError(t *testing.T) {
	repo := newStubChatRepo()
	uc := NewChatUseCase(repo, newStubUserRepo(), failingGenerator{})

	session, err := uc.CreateSession("user-1", ChatWellness, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, assistantMsg, err := uc.SendMessage(context.Background(), "user-1", session.ID, "I feel stressed")
	if err != nil {
		t.Fatalf("AI failure must not fail the message: %v", err)
	}
	if assistantMsg.Content != fallbackReplies[ChatWellness] {
		t.Fatalf("reply = %q, want the wellness fallback", assistantMsg.Content)
	}
}

func TestSendMessageSessionNotFound(t *testing.T) {
	uc := NewChatUseCase(newStubChatRepo(), newStubUserRepo(), nil)

	if _, _, err := uc.SendMessage(context.Background(), "user-1", "missing", "hello"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestGetSessionScopedToUser(t *testing.T) {
	repo := newStubChatRepo()
	uc := NewChatUseCase(repo, newStubUserRepo(), nil)

	session, err := uc.CreateSession("user-1", ChatGeneral, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := uc.GetSession("user-2", session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound for another user", err)
	}
}
