package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/margdarshak/career-intelligence-api/internal/application/usecases"
	"github.com/margdarshak/career-intelligence-api/internal/interfaces/http/middleware"
)

// ChatHandler lida com as conversas com o assistente GuideMitra
type ChatHandler struct {
	chatUseCase *usecases.ChatUseCase
}

// NewChatHandler cria uma nova instância de ChatHandler
func NewChatHandler(chatUseCase *usecases.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type createSessionRequest struct {
	Type  string `json:"type,omitempty"`
	Title string `json:"title,omitempty"`
}

// CreateSession abre uma nova sessão de conversa
func (h *ChatHandler) CreateSession(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req createSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	session, err := h.chatUseCase.CreateSession(userID, req.Type, req.Title)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create session: " + err.Error()})
	}

	return c.Status(201).JSON(session)
}

// GetSessions lista as sessões do usuário
func (h *ChatHandler) GetSessions(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	sessions, err := h.chatUseCase.GetSessions(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sessions: " + err.Error()})
	}

	return c.JSON(fiber.Map{"data": sessions})
}

// GetSession retorna uma sessão com o histórico completo
func (h *ChatHandler) GetSession(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	session, err := h.chatUseCase.GetSession(userID, c.Params("id"))
	if err != nil {
		if errors.Is(err, usecases.ErrSessionNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Session not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch session: " + err.Error()})
	}

	return c.JSON(session)
}

type sendMessageRequest struct {
	Content string `json:"content" validate:"required,min=1,max=4000"`
}

// SendMessage envia uma mensagem e devolve a resposta do assistente
// @Summary Envia uma mensagem ao assistente
// @Description Registra a mensagem do usuário e devolve a resposta gerada (IA com fallback)
// @Tags chat
// @Accept json
// @Produce json
// @Param id path string true "ID da sessão"
// @Success 200 {object} map[string]interface{} "Mensagens do usuário e do assistente"
// @Failure 404 {object} map[string]interface{} "Sessão não encontrada"
// @Router /chat/sessions/{id}/messages [post]
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	sessionID := c.Params("id")

	var req sendMessageRequest
	if err := parseAndValidate(c, &req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	userMessage, assistantMessage, err := h.chatUseCase.SendMessage(c.Context(), userID, sessionID, req.Content)
	if err != nil {
		if errors.Is(err, usecases.ErrSessionNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Session not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to send message: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"userMessage":      userMessage,
		"assistantMessage": assistantMessage,
	})
}
