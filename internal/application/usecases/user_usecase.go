package usecases

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/margdarshak/career-intelligence-api/internal/domain/entities"
	"github.com/margdarshak/career-intelligence-api/internal/domain/repositories"
)

var ErrUserNotFound = errors.New("user not found")

// UserUseCase implementa os casos de uso de usuário e perfil
type UserUseCase struct {
	userRepo repositories.IUserRepository
}

// NewUserUseCase cria uma nova instância de UserUseCase
func NewUserUseCase(userRepo repositories.IUserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

// GetMe retorna o usuário autenticado com o perfil carregado
func (u *UserUseCase) GetMe(userID string) (*entities.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ProfileInput carrega o contexto acadêmico editável do perfil
type ProfileInput struct {
	Age                 *int     `json:"age,omitempty" validate:"omitempty,min=10,max=100"`
	Class               string   `json:"class,omitempty"`
	Location            string   `json:"location,omitempty"`
	Interests           []string `json:"interests,omitempty"`
	CareerGoals         []string `json:"careerGoals,omitempty"`
	Skills              []string `json:"skills,omitempty"`
	AcademicPerformance string   `json:"academicPerformance,omitempty"`
}

// UpsertProfile cria ou atualiza o perfil do usuário
func (u *UserUseCase) UpsertProfile(userID string, input ProfileInput) (*entities.UserProfile, error) {
	now := time.Now()
	profile := &entities.UserProfile{
		ID:                  uuid.NewString(),
		UserID:              userID,
		Age:                 input.Age,
		Class:               input.Class,
		Location:            input.Location,
		Interests:           input.Interests,
		CareerGoals:         input.CareerGoals,
		Skills:              input.Skills,
		AcademicPerformance: input.AcademicPerformance,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := u.userRepo.UpsertProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetProfile retorna o perfil do usuário, ou nil quando ainda não existe
func (u *UserUseCase) GetProfile(userID string) (*entities.UserProfile, error) {
	return u.userRepo.GetProfile(userID)
}
