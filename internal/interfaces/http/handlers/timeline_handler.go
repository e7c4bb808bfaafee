package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/margdarshak/career-intelligence-api/internal/application/usecases"
	"github.com/margdarshak/career-intelligence-api/internal/domain/repositories"
	"github.com/margdarshak/career-intelligence-api/internal/interfaces/http/middleware"
)

// TimelineHandler lida com a linha do tempo acadêmica
type TimelineHandler struct {
	timelineUseCase *usecases.TimelineUseCase
}

// NewTimelineHandler cria uma nova instância de TimelineHandler
func NewTimelineHandler(timelineUseCase *usecases.TimelineUseCase) *TimelineHandler {
	return &TimelineHandler{
		timelineUseCase: timelineUseCase,
	}
}

// GetEvents lista os eventos do usuário e os globais
// @Summary Lista os eventos da linha do tempo
// @Description Retorna os marcos do usuário e os eventos globais, com filtros por tipo e status
// @Tags timeline
// @Produce json
// @Param type query string false "Tipo do evento"
// @Param upcoming query bool false "Apenas eventos futuros"
// @Param completed query bool false "Apenas concluídos"
// @Success 200 {object} map[string]interface{} "Lista de eventos"
// @Router /timeline [get]
func (h *TimelineHandler) GetEvents(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	filters := repositories.TimelineFilters{
		Type:      c.Query("type"),
		Upcoming:  c.Query("upcoming", "false") == "true",
		Completed: c.Query("completed", "false") == "true",
	}

	events, err := h.timelineUseCase.GetEvents(userID, filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch events: " + err.Error()})
	}

	return c.JSON(fiber.Map{"data": events})
}

// GetReminders lista os lembretes pendentes da próxima semana
func (h *TimelineHandler) GetReminders(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	reminders, err := h.timelineUseCase.GetReminders(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch reminders: " + err.Error()})
	}

	return c.JSON(fiber.Map{"data": reminders})
}

// CreateEvent cria um marco pessoal
func (h *TimelineHandler) CreateEvent(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var input usecases.EventInput
	if err := parseAndValidate(c, &input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	event, err := h.timelineUseCase.CreateEvent(userID, input)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create event: " + err.Error()})
	}

	return c.Status(201).JSON(event)
}

type updateEventRequest struct {
	usecases.EventInput
	IsCompleted *bool `json:"isCompleted,omitempty"`
}

// UpdateEvent edita um marco pessoal
func (h *TimelineHandler) UpdateEvent(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	eventID := c.Params("id")

	var req updateEventRequest
	if err := parseAndValidate(c, &req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	event, err := h.timelineUseCase.UpdateEvent(userID, eventID, req.EventInput, req.IsCompleted)
	if err != nil {
		return timelineError(c, err, "Failed to update event")
	}

	return c.JSON(event)
}

// ToggleCompleted alterna o status de conclusão de um marco
func (h *TimelineHandler) ToggleCompleted(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	eventID := c.Params("id")

	event, err := h.timelineUseCase.ToggleCompleted(userID, eventID)
	if err != nil {
		return timelineError(c, err, "Failed to update event")
	}

	return c.JSON(event)
}

// DeleteEvent remove um marco pessoal
func (h *TimelineHandler) DeleteEvent(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	eventID := c.Params("id")

	if err := h.timelineUseCase.DeleteEvent(userID, eventID); err != nil {
		return timelineError(c, err, "Failed to delete event")
	}

	return c.SendStatus(204)
}

func timelineError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, usecases.ErrEventNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Event not found"})
	case errors.Is(err, usecases.ErrEventReadOnly):
		return c.Status(403).JSON(fiber.Map{"error": "Global events cannot be modified"})
	}
	return c.Status(500).JSON(fiber.Map{"error": fallback + ": " + err.Error()})
}
