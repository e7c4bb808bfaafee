package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/margdarshak/career-intelligence-api/internal/application/usecases"
	"github.com/margdarshak/career-intelligence-api/internal/domain/repositories"
	"github.com/margdarshak/career-intelligence-api/internal/interfaces/http/middleware"
)

// CollegeHandler lida com a exploração do catálogo de instituições
type CollegeHandler struct {
	collegeUseCase *usecases.CollegeUseCase
}

// NewCollegeHandler cria uma nova instância de CollegeHandler
func NewCollegeHandler(collegeUseCase *usecases.CollegeUseCase) *CollegeHandler {
	return &CollegeHandler{
		collegeUseCase: collegeUseCase,
	}
}

// GetColleges lista as instituições com filtros e paginação
// @Summary Lista as instituições
// @Description Retorna as instituições com filtros por localização, estado, tipo e programa
// @Tags colleges
// @Produce json
// @Param page query int false "Página atual" default(1)
// @Param limit query int false "Itens por página" default(20)
// @Param location query string false "Cidade ou região"
// @Param state query string false "Estado"
// @Param type query string false "Tipo de instituição"
// @Param program query string false "Programa oferecido"
// @Success 200 {object} map[string]interface{} "Lista de instituições"
// @Failure 400 {object} map[string]interface{} "Erro de parâmetros"
// @Router /colleges [get]
func (h *CollegeHandler) GetColleges(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid 'page' parameter"})
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid 'limit' parameter"})
	}

	filters := repositories.CollegeFilters{
		Location: c.Query("location"),
		State:    c.Query("state"),
		Type:     c.Query("type"),
		Program:  c.Query("program"),
		Page:     page,
		Limit:    limit,
	}

	colleges, total, err := h.collegeUseCase.GetColleges(filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch colleges: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"data":  colleges,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetCollege retorna uma instituição pelo ID
func (h *CollegeHandler) GetCollege(c *fiber.Ctx) error {
	college, err := h.collegeUseCase.GetCollege(c.Params("id"))
	if err != nil {
		if errors.Is(err, usecases.ErrCollegeNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "College not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch college: " + err.Error()})
	}

	return c.JSON(college)
}

// GetNearby busca instituições próximas à localização do perfil
func (h *CollegeHandler) GetNearby(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	colleges, err := h.collegeUseCase.GetNearbyColleges(userID)
	if err != nil {
		if errors.Is(err, usecases.ErrLocationNotSet) {
			return c.Status(400).JSON(fiber.Map{"error": "User location not set"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch nearby colleges: " + err.Error()})
	}
	return c.JSON(colleges)
}

// GetByProgram lista as instituições que oferecem o programa
func (h *CollegeHandler) GetByProgram(c *fiber.Ctx) error {
	colleges, err := h.collegeUseCase.GetCollegesByProgram(c.Params("program"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch colleges: " + err.Error()})
	}
	return c.JSON(colleges)
}

// GetPrograms lista os programas disponíveis no catálogo
func (h *CollegeHandler) GetPrograms(c *fiber.Ctx) error {
	programs, err := h.collegeUseCase.GetPrograms()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch programs: " + err.Error()})
	}
	return c.JSON(fiber.Map{"programs": programs})
}

// GetLocations agrupa cidades por estado para os filtros do catálogo
func (h *CollegeHandler) GetLocations(c *fiber.Ctx) error {
	states, err := h.collegeUseCase.GetLocations()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch locations: " + err.Error()})
	}
	return c.JSON(fiber.Map{"states": states})
}
