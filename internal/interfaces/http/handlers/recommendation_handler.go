package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/margdarshak/career-intelligence-api/internal/application/usecases"
	"github.com/margdarshak/career-intelligence-api/internal/domain/repositories"
	"github.com/margdarshak/career-intelligence-api/internal/interfaces/http/middleware"
)

// RecommendationHandler lida com recomendações de carreira e planos de estudo
type RecommendationHandler struct {
	recommendationUseCase *usecases.RecommendationUseCase
}

// NewRecommendationHandler cria uma nova instância de RecommendationHandler
func NewRecommendationHandler(recommendationUseCase *usecases.RecommendationUseCase) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationUseCase: recommendationUseCase,
	}
}

// GetCareerResources retorna o material de estudo de uma carreira,
// personalizado pelas habilidades do perfil
// @Summary Material de estudo por carreira
// @Description Cursos, habilidades e projetos sugeridos para a carreira pedida
// @Tags recommendations
// @Produce json
// @Success 200 {object} map[string]interface{} "Material de estudo"
// @Router /recommendations/career/{role} [get]
func (h *RecommendationHandler) GetCareerResources(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	role := c.Params("role")

	pack, err := h.recommendationUseCase.GetCareerResources(userID, role)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch recommendations: " + err.Error()})
	}
	return c.JSON(pack)
}

// CreateRoadmap cria um plano de carreira com marcos
func (h *RecommendationHandler) CreateRoadmap(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var input usecases.RoadmapInput
	if err := parseAndValidate(c, &input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	roadmap, err := h.recommendationUseCase.CreateRoadmap(userID, input)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create roadmap: " + err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Career roadmap created successfully",
		"roadmap": roadmap,
	})
}

// GetRoadmaps lista os planos do usuário
func (h *RecommendationHandler) GetRoadmaps(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	roadmaps, err := h.recommendationUseCase.GetRoadmaps(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch roadmaps: " + err.Error()})
	}
	return c.JSON(roadmaps)
}

type completeMilestoneRequest struct {
	IsCompleted bool `json:"isCompleted"`
}

// CompleteMilestone atualiza a conclusão de um marco e devolve o progresso
// recalculado do plano
func (h *RecommendationHandler) CompleteMilestone(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	milestoneID := c.Params("id")

	var req completeMilestoneRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	milestone, progress, err := h.recommendationUseCase.CompleteMilestone(userID, milestoneID, req.IsCompleted)
	if err != nil {
		if errors.Is(err, usecases.ErrMilestoneNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Milestone not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update milestone: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"message":         "Milestone updated successfully",
		"milestone":       milestone,
		"roadmapProgress": progress,
	})
}

// GetCourseRecommendations retorna cursos sugeridos pela IA com fallback
// @Summary Recomendações de cursos
// @Description Sugestões de cursos personalizadas pelo perfil e avaliações
// @Tags recommendations
// @Produce json
// @Success 200 {object} map[string]interface{} "Recomendações e origem"
// @Failure 404 {object} map[string]interface{} "Perfil não encontrado"
// @Router /recommendations/courses [get]
func (h *RecommendationHandler) GetCourseRecommendations(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	set, err := h.recommendationUseCase.GetCourseRecommendations(c.Context(), userID)
	if err != nil {
		if errors.Is(err, usecases.ErrProfileNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "User profile not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to get course recommendations: " + err.Error()})
	}
	return c.JSON(set)
}

// GetCareerRecommendations retorna carreiras sugeridas pela IA com fallback
func (h *RecommendationHandler) GetCareerRecommendations(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	set, err := h.recommendationUseCase.GetCareerRecommendations(c.Context(), userID)
	if err != nil {
		if errors.Is(err, usecases.ErrProfileNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "User profile not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to get career recommendations: " + err.Error()})
	}
	return c.JSON(set)
}

// GetCourseMapping retorna o mapeamento curso → carreira (um ou todos)
func (h *RecommendationHandler) GetCourseMapping(c *fiber.Ctx) error {
	return c.JSON(h.recommendationUseCase.GetCourseMapping(c.Query("course")))
}

// GetCourses lista o catálogo de cursos com filtros
func (h *RecommendationHandler) GetCourses(c *fiber.Ctx) error {
	filters := repositories.CourseFilters{
		Level: c.Query("level"),
		Field: c.Query("field"),
	}

	courses, err := h.recommendationUseCase.GetCourses(filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch courses: " + err.Error()})
	}
	return c.JSON(fiber.Map{"courses": courses})
}
