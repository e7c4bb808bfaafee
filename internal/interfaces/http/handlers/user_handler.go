package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/margdarshak/career-intelligence-api/internal/application/usecases"
	"github.com/margdarshak/career-intelligence-api/internal/interfaces/http/middleware"
)

// UserHandler lida com o usuário autenticado e seu perfil
type UserHandler struct {
	userUseCase *usecases.UserUseCase
}

// NewUserHandler cria uma nova instância de UserHandler
func NewUserHandler(userUseCase *usecases.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

// GetMe retorna o usuário autenticado com o perfil
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	user, err := h.userUseCase.GetMe(userID)
	if err != nil {
		if errors.Is(err, usecases.ErrUserNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch user: " + err.Error()})
	}

	return c.JSON(user)
}

// GetProfile retorna o perfil acadêmico, ou null quando ainda não existe
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	profile, err := h.userUseCase.GetProfile(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch profile: " + err.Error()})
	}

	return c.JSON(fiber.Map{"profile": profile})
}

// UpsertProfile cria ou atualiza o perfil acadêmico
func (h *UserHandler) UpsertProfile(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var input usecases.ProfileInput
	if err := parseAndValidate(c, &input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	profile, err := h.userUseCase.UpsertProfile(userID, input)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save profile: " + err.Error()})
	}

	return c.JSON(profile)
}
