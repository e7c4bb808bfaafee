package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/margdarshak/career-intelligence-api/internal/application/usecases"
	"github.com/margdarshak/career-intelligence-api/internal/interfaces/http/middleware"
)

// WellnessHandler lida com requisições de bem-estar
type WellnessHandler struct {
	wellnessUseCase *usecases.WellnessUseCase
}

// NewWellnessHandler cria uma nova instância de WellnessHandler
func NewWellnessHandler(wellnessUseCase *usecases.WellnessUseCase) *WellnessHandler {
	return &WellnessHandler{
		wellnessUseCase: wellnessUseCase,
	}
}

// CreateCheckin registra o check-in do dia
// @Summary Cria o check-in diário
// @Description Registra o check-in do dia, deriva o score geral e gera insights
// @Tags wellness
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{} "Check-in e insights gerados"
// @Failure 400 {object} map[string]interface{} "Erro de validação"
// @Failure 409 {object} map[string]interface{} "Já existe check-in hoje"
// @Router /wellness/checkins [post]
func (h *WellnessHandler) CreateCheckin(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var input usecases.CheckinInput
	if err := parseAndValidate(c, &input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	checkin, insights, err := h.wellnessUseCase.CreateCheckin(userID, input)
	if err != nil {
		if errors.Is(err, usecases.ErrCheckinExists) {
			return c.Status(409).JSON(fiber.Map{"error": "A check-in already exists for today"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create check-in: " + err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"checkin":  checkin,
		"insights": insights,
	})
}

// UpdateCheckin edita o check-in do dia corrente
func (h *WellnessHandler) UpdateCheckin(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	checkinID := c.Params("id")

	var input usecases.CheckinInput
	if err := parseAndValidate(c, &input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	checkin, err := h.wellnessUseCase.UpdateCheckin(userID, checkinID, input)
	if err != nil {
		switch {
		case errors.Is(err, usecases.ErrCheckinNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Check-in not found"})
		case errors.Is(err, usecases.ErrCheckinLocked):
			return c.Status(403).JSON(fiber.Map{"error": "Only today's check-in can be updated"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update check-in: " + err.Error()})
	}

	return c.JSON(checkin)
}

// GetToday retorna o check-in do dia, ou null quando ainda não há
func (h *WellnessHandler) GetToday(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	checkin, err := h.wellnessUseCase.GetTodayCheckin(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch today's check-in: " + err.Error()})
	}

	return c.JSON(fiber.Map{"checkin": checkin})
}

// GetDashboard monta o painel de bem-estar
// @Summary Painel de bem-estar
// @Description Retorna o check-in de hoje, a sequência de dias, médias da semana, metas ativas e insights recentes
// @Tags wellness
// @Produce json
// @Success 200 {object} map[string]interface{} "Painel de bem-estar"
// @Failure 500 {object} map[string]interface{} "Erro interno do servidor"
// @Router /wellness/dashboard [get]
func (h *WellnessHandler) GetDashboard(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	dashboard, err := h.wellnessUseCase.GetDashboard(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build dashboard: " + err.Error()})
	}

	return c.JSON(dashboard)
}

// GetAnalytics calcula a análise da janela pedida (?days=30)
func (h *WellnessHandler) GetAnalytics(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	days, err := strconv.Atoi(c.Query("days", "30"))
	if err != nil || days < 1 || days > 365 {
		return c.Status(400).JSON(fiber.Map{"error": "Parameter 'days' must be between 1 and 365"})
	}

	analytics, err := h.wellnessUseCase.GetAnalytics(userID, days)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute analytics: " + err.Error()})
	}

	return c.JSON(analytics)
}

// GetInsights lista os insights priorizados (?limit=20&unread=true)
func (h *WellnessHandler) GetInsights(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	unreadOnly := c.Query("unread", "false") == "true"

	insights, err := h.wellnessUseCase.GetInsights(userID, limit, unreadOnly)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch insights: " + err.Error()})
	}

	return c.JSON(fiber.Map{"data": insights})
}

// MarkInsightRead marca um insight como lido
func (h *WellnessHandler) MarkInsightRead(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	insightID := c.Params("id")

	insight, err := h.wellnessUseCase.MarkInsightRead(userID, insightID)
	if err != nil {
		if errors.Is(err, usecases.ErrInsightNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Insight not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update insight: " + err.Error()})
	}

	return c.JSON(insight)
}

// CreateGoal cria uma meta de bem-estar
func (h *WellnessHandler) CreateGoal(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var input usecases.GoalInput
	if err := parseAndValidate(c, &input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	goal, err := h.wellnessUseCase.CreateGoal(userID, input)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create goal: " + err.Error()})
	}

	return c.Status(201).JSON(goal)
}

// GetGoals lista as metas do usuário
func (h *WellnessHandler) GetGoals(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	goals, err := h.wellnessUseCase.GetGoals(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch goals: " + err.Error()})
	}

	return c.JSON(fiber.Map{"data": goals})
}

type updateGoalRequest struct {
	usecases.GoalInput
	IsActive *bool `json:"isActive,omitempty"`
}

// UpdateGoal edita uma meta existente
func (h *WellnessHandler) UpdateGoal(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	goalID := c.Params("id")

	var req updateGoalRequest
	if err := parseAndValidate(c, &req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	goal, err := h.wellnessUseCase.UpdateGoal(userID, goalID, req.GoalInput, req.IsActive)
	if err != nil {
		if errors.Is(err, usecases.ErrGoalNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Goal not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update goal: " + err.Error()})
	}

	return c.JSON(goal)
}

// DeleteGoal remove uma meta
func (h *WellnessHandler) DeleteGoal(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	goalID := c.Params("id")

	if err := h.wellnessUseCase.DeleteGoal(userID, goalID); err != nil {
		if errors.Is(err, usecases.ErrGoalNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Goal not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete goal: " + err.Error()})
	}

	return c.SendStatus(204)
}
