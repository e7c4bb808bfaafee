package usecases

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/margdarshak/career-intelligence-api/internal/domain/entities"
	"github.com/margdarshak/career-intelligence-api/internal/domain/repositories"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const tokenTTL = 7 * 24 * time.Hour

// AuthUseCase implementa registro, login e emissão de tokens
type AuthUseCase struct {
	userRepo  repositories.IUserRepository
	jwtSecret []byte
}

// NewAuthUseCase cria uma nova instância de AuthUseCase. O segredo vem de
// JWT_SECRET no ambiente.
func NewAuthUseCase(userRepo repositories.IUserRepository) *AuthUseCase {
	return &AuthUseCase{
		userRepo:  userRepo,
		jwtSecret: []byte(os.Getenv("JWT_SECRET")),
	}
}

// RegisterInput são os dados de cadastro
type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput são as credenciais de acesso
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResult é o par usuário + token emitido
type AuthResult struct {
	User  *entities.User `json:"user"`
	Token string         `json:"token"`
}

// Register cria o usuário com a senha em hash bcrypt e emite o token
func (u *AuthUseCase) Register(input RegisterInput) (*AuthResult, error) {
	existing, err := u.userRepo.FindByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entities.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: string(hash),
		Name:         input.Name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.userRepo.CreateUser(user); err != nil {
		return nil, err
	}

	token, err := u.issueToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

// Login valida as credenciais e emite o token
func (u *AuthUseCase) Login(input LoginInput) (*AuthResult, error) {
	user, err := u.userRepo.FindByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := u.issueToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

func (u *AuthUseCase) issueToken(userID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(u.jwtSecret)
}
