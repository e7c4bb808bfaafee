package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/margdarshak/career-intelligence-api/internal/application/usecases"
)

// AuthHandler lida com cadastro e login
type AuthHandler struct {
	authUseCase *usecases.AuthUseCase
}

// NewAuthHandler cria uma nova instância de AuthHandler
func NewAuthHandler(authUseCase *usecases.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// Register cria um novo usuário
// @Summary Cadastra um novo usuário
// @Description Cria o usuário com a senha em hash e retorna o token de acesso
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{} "Usuário e token"
// @Failure 400 {object} map[string]interface{} "Erro de validação"
// @Failure 409 {object} map[string]interface{} "Email já cadastrado"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input usecases.RegisterInput
	if err := parseAndValidate(c, &input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.authUseCase.Register(input)
	if err != nil {
		if errors.Is(err, usecases.ErrEmailTaken) {
			return c.Status(409).JSON(fiber.Map{"error": "Email is already registered"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to register: " + err.Error()})
	}

	return c.Status(201).JSON(result)
}

// Login autentica o usuário
// @Summary Autentica um usuário
// @Description Valida email e senha e retorna o token de acesso
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Usuário e token"
// @Failure 401 {object} map[string]interface{} "Credenciais inválidas"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input usecases.LoginInput
	if err := parseAndValidate(c, &input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.authUseCase.Login(input)
	if err != nil {
		if errors.Is(err, usecases.ErrInvalidCredentials) {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid email or password"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to login: " + err.Error()})
	}

	return c.JSON(result)
}
