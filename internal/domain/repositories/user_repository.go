package repositories

import (
	"errors"

	"github.com/margdarshak/career-intelligence-api/internal/domain/entities"
	"gorm.io/gorm"
)

type IUserRepository interface {
	CreateUser(user *entities.User) error
	FindByEmail(email string) (*entities.User, error)
	FindByID(id string) (*entities.User, error)
	GetProfile(userID string) (*entities.UserProfile, error)
	UpsertProfile(profile *entities.UserProfile) error
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) CreateUser(user *entities.User) error {
	return r.db.Create(user).Error
}

// FindByEmail retorna nil sem erro quando o e-mail não está cadastrado
func (r *UserRepository) FindByEmail(email string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(id string) (*entities.User, error) {
	var user entities.User
	err := r.db.Preload("Profile").Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetProfile(userID string) (*entities.UserProfile, error) {
	var profile entities.UserProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpsertProfile cria ou atualiza o perfil do usuário (um por usuário)
func (r *UserRepository) UpsertProfile(profile *entities.UserProfile) error {
	existing, err := r.GetProfile(profile.UserID)
	if err != nil {
		return err
	}
	if existing == nil {
		return r.db.Create(profile).Error
	}
	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	return r.db.Save(profile).Error
}
