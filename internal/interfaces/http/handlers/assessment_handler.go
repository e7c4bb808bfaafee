package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/margdarshak/career-intelligence-api/internal/application/usecases"
	"github.com/margdarshak/career-intelligence-api/internal/interfaces/http/middleware"
)

// AssessmentHandler lida com requisições relacionadas a avaliações
type AssessmentHandler struct {
	assessmentUseCase *usecases.AssessmentUseCase
}

// NewAssessmentHandler cria uma nova instância de AssessmentHandler
func NewAssessmentHandler(assessmentUseCase *usecases.AssessmentUseCase) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentUseCase: assessmentUseCase,
	}
}

// GetAvailable lista os tipos de avaliação disponíveis
// @Summary Lista as avaliações disponíveis
// @Description Retorna os templates de avaliação com o status de conclusão do usuário
// @Tags assessments
// @Produce json
// @Success 200 {object} map[string]interface{} "Lista de avaliações"
// @Failure 500 {object} map[string]interface{} "Erro interno do servidor"
// @Router /assessments [get]
func (h *AssessmentHandler) GetAvailable(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	available, err := h.assessmentUseCase.GetAvailableAssessments(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to list assessments: " + err.Error()})
	}

	return c.JSON(fiber.Map{"data": available})
}

// GetMine lista as avaliações já iniciadas pelo usuário
func (h *AssessmentHandler) GetMine(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	assessments, err := h.assessmentUseCase.GetUserAssessments(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to list assessments: " + err.Error()})
	}

	return c.JSON(fiber.Map{"data": assessments})
}

type startAssessmentRequest struct {
	Type string `json:"type" validate:"required"`
}

// Start instancia uma avaliação a partir do template
// @Summary Inicia uma avaliação
// @Description Cria uma avaliação do tipo pedido com as perguntas do template
// @Tags assessments
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{} "Avaliação criada"
// @Failure 400 {object} map[string]interface{} "Tipo desconhecido"
// @Router /assessments [post]
func (h *AssessmentHandler) Start(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req startAssessmentRequest
	if err := parseAndValidate(c, &req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	assessment, err := h.assessmentUseCase.StartAssessment(userID, req.Type)
	if err != nil {
		if errors.Is(err, usecases.ErrUnknownAssessment) {
			return c.Status(400).JSON(fiber.Map{"error": "Unknown assessment type"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to start assessment: " + err.Error()})
	}

	return c.Status(201).JSON(assessment)
}

type submitAssessmentRequest struct {
	Responses []usecases.SubmitAnswer `json:"responses" validate:"required,min=1,dive"`
}

// Submit registra as respostas e devolve o resultado pontuado e analisado
// @Summary Submete as respostas de uma avaliação
// @Description Pontua as respostas, gera a análise (IA com fallback) e marca a avaliação como concluída
// @Tags assessments
// @Accept json
// @Produce json
// @Param id path string true "ID da avaliação"
// @Success 200 {object} map[string]interface{} "Resultado da avaliação"
// @Failure 400 {object} map[string]interface{} "Respostas incompletas"
// @Failure 404 {object} map[string]interface{} "Avaliação não encontrada"
// @Failure 409 {object} map[string]interface{} "Avaliação já concluída"
// @Router /assessments/{id}/submit [post]
func (h *AssessmentHandler) Submit(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	assessmentID := c.Params("id")

	var req submitAssessmentRequest
	if err := parseAndValidate(c, &req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.assessmentUseCase.SubmitAssessment(c.Context(), userID, assessmentID, req.Responses)
	if err != nil {
		switch {
		case errors.Is(err, usecases.ErrAssessmentNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Assessment not found"})
		case errors.Is(err, usecases.ErrAssessmentCompleted):
			return c.Status(409).JSON(fiber.Map{"error": "Assessment already completed"})
		case errors.Is(err, usecases.ErrIncompleteAnswers):
			return c.Status(400).JSON(fiber.Map{"error": "All questions must be answered"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to submit assessment: " + err.Error()})
	}

	return c.JSON(result)
}

// GetResult retorna a avaliação com perguntas, respostas e resultado
func (h *AssessmentHandler) GetResult(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	assessmentID := c.Params("id")

	assessment, err := h.assessmentUseCase.GetAssessmentResult(c.Context(), userID, assessmentID)
	if err != nil {
		if errors.Is(err, usecases.ErrAssessmentNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Assessment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch assessment: " + err.Error()})
	}

	return c.JSON(assessment)
}

// Regenerate refaz a análise de uma avaliação concluída
func (h *AssessmentHandler) Regenerate(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	assessmentID := c.Params("id")

	result, err := h.assessmentUseCase.RegenerateAnalysis(c.Context(), userID, assessmentID)
	if err != nil {
		if errors.Is(err, usecases.ErrAssessmentNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Completed assessment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to regenerate analysis: " + err.Error()})
	}

	return c.JSON(result)
}

// GetAnalytics resume as avaliações concluídas do usuário
func (h *AssessmentHandler) GetAnalytics(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	analytics, err := h.assessmentUseCase.GetAnalytics(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute analytics: " + err.Error()})
	}

	return c.JSON(analytics)
}
