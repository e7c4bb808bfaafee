package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/margdarshak/career-intelligence-api/internal/domain/entities"
	"github.com/margdarshak/career-intelligence-api/internal/domain/repositories"
)

var ErrSessionNotFound = errors.New("chat session not found")

// Tipos de sessão de conversa
const (
	ChatCareerGuidance = "CAREER_GUIDANCE"
	ChatWellness       = "WELLNESS_SUPPORT"
	ChatGeneral        = "GENERAL"
)

// TextGenerator é o colaborador de IA para conversas. Em qualquer erro o
// assistente responde com a mensagem determinística de fallback.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ChatUseCase implementa as conversas com o assistente GuideMitra
type ChatUseCase struct {
	chatRepo  repositories.IChatRepository
	userRepo  repositories.IUserRepository
	generator TextGenerator
}

// NewChatUseCase cria uma nova instância de ChatUseCase
func NewChatUseCase(chatRepo repositories.IChatRepository, userRepo repositories.IUserRepository, generator TextGenerator) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:  chatRepo,
		userRepo:  userRepo,
		generator: generator,
	}
}

var systemPrompts = map[string]string{
	ChatCareerGuidance: "You are GuideMitra, a friendly career counselor for Indian students. Give practical, encouraging advice about careers, entrance exams and colleges in India. Keep answers concise.",
	ChatWellness:       "You are GuideMitra, a supportive wellness companion for students. Listen with empathy, suggest healthy habits and never give medical diagnoses. Keep answers concise.",
	ChatGeneral:        "You are GuideMitra, a helpful assistant for Indian students navigating academics and career decisions. Keep answers concise.",
}

var fallbackReplies = map[string]string{
	ChatCareerGuidance: "I'm having trouble connecting right now, but here's a tip in the meantime: explore your completed assessments for career suggestions tailored to your strengths, and check the college explorer for institutions matching your interests. Please try again in a moment.",
	ChatWellness:       "I'm having trouble connecting right now. In the meantime, remember that a short walk, a few deep breaths or talking to a friend can help when things feel heavy. Your daily check-ins help me understand you better. Please try again in a moment.",
	ChatGeneral:        "I'm having trouble connecting right now. Please try again in a moment.",
}

// CreateSession abre uma nova sessão do tipo pedido
func (u *ChatUseCase) CreateSession(userID, sessionType, title string) (*entities.ChatSession, error) {
	if _, ok := systemPrompts[sessionType]; !ok {
		sessionType = ChatGeneral
	}
	if title == "" {
		title = "New conversation"
	}

	now := time.Now()
	session := &entities.ChatSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      sessionType,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.chatRepo.CreateSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSessions lista as sessões do usuário com a última mensagem de cada
func (u *ChatUseCase) GetSessions(userID string) ([]entities.ChatSession, error) {
	return u.chatRepo.FindSessions(userID)
}

// GetSession retorna a sessão com o histórico completo
func (u *ChatUseCase) GetSession(userID, sessionID string) (*entities.ChatSession, error) {
	session, err := u.chatRepo.FindSession(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// SendMessage registra a mensagem do usuário, gera a resposta do assistente
// (IA com fallback determinístico) e devolve as duas mensagens persistidas.
func (u *ChatUseCase) SendMessage(ctx context.Context, userID, sessionID, content string) (*entities.ChatMessage, *entities.ChatMessage, error) {
	session, err := u.chatRepo.FindSession(sessionID, userID)
	if err != nil {
		return nil, nil, err
	}
	if session == nil {
		return nil, nil, ErrSessionNotFound
	}

	userMessage := &entities.ChatMessage{
		ID:        uuid.NewString(),
		SessionID: session.ID,
		Role:      "user",
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := u.chatRepo.CreateMessage(userMessage); err != nil {
		return nil, nil, err
	}

	reply := u.generateReply(ctx, session, content)
	assistantMessage := &entities.ChatMessage{
		ID:        uuid.NewString(),
		SessionID: session.ID,
		Role:      "assistant",
		Content:   reply,
		CreatedAt: time.Now(),
	}
	if err := u.chatRepo.CreateMessage(assistantMessage); err != nil {
		return nil, nil, err
	}

	if err := u.chatRepo.TouchSession(session.ID); err != nil {
		return nil, nil, err
	}
	return userMessage, assistantMessage, nil
}

func (u *ChatUseCase) generateReply(ctx context.Context, session *entities.ChatSession, content string) string {
	if u.generator == nil {
		return fallbackReply(session.Type)
	}

	reply, err := u.generator.GenerateText(ctx, u.buildPrompt(session, content))
	if err != nil {
		log.Printf("⚠️ chat reply unavailable, using fallback: %v", err)
		return fallbackReply(session.Type)
	}
	return strings.TrimSpace(reply)
}

// buildPrompt monta o prompt com o papel do assistente, o contexto do perfil e
// o histórico recente da sessão.
func (u *ChatUseCase) buildPrompt(session *entities.ChatSession, content string) string {
	var sb strings.Builder
	prompt, ok := systemPrompts[session.Type]
	if !ok {
		prompt = systemPrompts[ChatGeneral]
	}
	sb.WriteString(prompt)
	sb.WriteString("\n\n")

	if profile, err := u.userRepo.GetProfile(session.UserID); err == nil && profile != nil {
		sb.WriteString("Student context: ")
		if profile.Class != "" {
			fmt.Fprintf(&sb, "class %s, ", profile.Class)
		}
		if len(profile.Interests) > 0 {
			fmt.Fprintf(&sb, "interests: %s, ", strings.Join(profile.Interests, ", "))
		}
		if len(profile.CareerGoals) > 0 {
			fmt.Fprintf(&sb, "career goals: %s", strings.Join(profile.CareerGoals, ", "))
		}
		sb.WriteString("\n\n")
	}

	// Janela das últimas 10 mensagens para limitar o tamanho do prompt
	messages := session.Messages
	if len(messages) > 10 {
		messages = messages[len(messages)-10:]
	}
	for _, m := range messages {
		fmt.Fprintf(&sb, "%s: %s\n", m.Role, m.Content)
	}
	fmt.Fprintf(&sb, "user: %s\nassistant:", content)
	return sb.String()
}

func fallbackReply(sessionType string) string {
	if reply, ok := fallbackReplies[sessionType]; ok {
		return reply
	}
	return fallbackReplies[ChatGeneral]
}
