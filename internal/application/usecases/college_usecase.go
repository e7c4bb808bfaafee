package usecases

import (
	"errors"

	"github.com/margdarshak/career-intelligence-api/internal/domain/entities"
	"github.com/margdarshak/career-intelligence-api/internal/domain/repositories"
)

var (
	ErrCollegeNotFound = errors.New("college not found")
	ErrLocationNotSet  = errors.New("user location not set")
)

// CollegeUseCase implementa a exploração do catálogo de instituições
type CollegeUseCase struct {
	collegeRepo repositories.ICollegeRepository
	userRepo    repositories.IUserRepository
}

// NewCollegeUseCase cria uma nova instância de CollegeUseCase
func NewCollegeUseCase(collegeRepo repositories.ICollegeRepository, userRepo repositories.IUserRepository) *CollegeUseCase {
	return &CollegeUseCase{
		collegeRepo: collegeRepo,
		userRepo:    userRepo,
	}
}

// GetColleges lista as instituições com filtros e paginação
func (u *CollegeUseCase) GetColleges(filters repositories.CollegeFilters) ([]entities.College, int64, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 || filters.Limit > 100 {
		filters.Limit = 20
	}
	return u.collegeRepo.GetColleges(filters)
}

// GetCollege retorna uma instituição pelo ID
func (u *CollegeUseCase) GetCollege(id string) (*entities.College, error) {
	college, err := u.collegeRepo.FindCollegeByID(id)
	if err != nil {
		return nil, err
	}
	if college == nil {
		return nil, ErrCollegeNotFound
	}
	return college, nil
}

// GetNearbyColleges busca instituições na cidade ou estado do perfil do
// usuário. Sem localização no perfil não há busca.
func (u *CollegeUseCase) GetNearbyColleges(userID string) ([]entities.College, error) {
	profile, err := u.userRepo.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.Location == "" {
		return nil, ErrLocationNotSet
	}
	return u.collegeRepo.FindNearby(profile.Location, 20)
}

// GetCollegesByProgram lista as instituições que oferecem o programa
func (u *CollegeUseCase) GetCollegesByProgram(program string) ([]entities.College, error) {
	return u.collegeRepo.FindByProgram(program)
}

// GetPrograms lista os programas distintos do catálogo
func (u *CollegeUseCase) GetPrograms() ([]string, error) {
	return u.collegeRepo.ListPrograms()
}

// GetLocations agrupa cidades por estado com contagens, para os filtros
func (u *CollegeUseCase) GetLocations() (map[string]*repositories.StateColleges, error) {
	return u.collegeRepo.ListLocations()
}
