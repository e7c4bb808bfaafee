package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/margdarshak/career-intelligence-api/internal/domain/entities"
	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

// CollegeFilters agrupa os filtros de busca do catálogo
type CollegeFilters struct {
	Location string
	State    string
	Type     string
	Program  string
	Page     int
	Limit    int
}

// CityCount é a contagem de instituições de uma cidade no agrupamento por
// estado
type CityCount struct {
	Name         string `json:"name"`
	CollegeCount int64  `json:"collegeCount"`
}

// StateColleges agrupa as cidades de um estado com os totais
type StateColleges struct {
	Cities        []CityCount `json:"cities"`
	TotalColleges int64       `json:"totalColleges"`
}

type ICollegeRepository interface {
	GetColleges(filters CollegeFilters) ([]entities.College, int64, error)
	FindCollegeByID(id string) (*entities.College, error)
	FindNearby(location string, limit int) ([]entities.College, error)
	FindByProgram(program string) ([]entities.College, error)
	ListPrograms() ([]string, error)
	ListLocations() (map[string]*StateColleges, error)
}

type CollegeRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewCollegeRepository(db *gorm.DB) *CollegeRepository {
	return &CollegeRepository{
		db:    db,
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

type collegePage struct {
	colleges []entities.College
	total    int64
}

// GetColleges busca com filtros e paginação; o catálogo é estático, então o
// resultado fica em cache por alguns minutos.
func (r *CollegeRepository) GetColleges(filters CollegeFilters) ([]entities.College, int64, error) {
	cacheKey := fmt.Sprintf("colleges:%s:%s:%s:%s:%d:%d",
		filters.Location, filters.State, filters.Type, filters.Program, filters.Page, filters.Limit)

	if cached, found := r.cache.Get(cacheKey); found {
		page := cached.(collegePage)
		return page.colleges, page.total, nil
	}

	query := r.db.Model(&entities.College{})

	if filters.Location != "" {
		pattern := "%" + filters.Location + "%"
		query = query.Where("city ILIKE ? OR location ILIKE ?", pattern, pattern)
	}
	if filters.State != "" {
		query = query.Where("state ILIKE ?", "%"+filters.State+"%")
	}
	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.Program != "" {
		query = query.Where("? = ANY(programs)", filters.Program)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filters.Page - 1) * filters.Limit

	var colleges []entities.College
	err := query.
		Order("rating DESC").
		Order("name ASC").
		Offset(offset).
		Limit(filters.Limit).
		Find(&colleges).Error
	if err != nil {
		return nil, 0, err
	}

	r.cache.Set(cacheKey, collegePage{colleges: colleges, total: total}, cache.DefaultExpiration)

	return colleges, total, nil
}

func (r *CollegeRepository) FindCollegeByID(id string) (*entities.College, error) {
	var college entities.College
	err := r.db.Where("id = ?", id).First(&college).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &college, nil
}

// FindNearby casa a localização do perfil com cidade ou estado. Instituições
// públicas vêm primeiro, depois por avaliação.
func (r *CollegeRepository) FindNearby(location string, limit int) ([]entities.College, error) {
	pattern := "%" + location + "%"

	var colleges []entities.College
	err := r.db.
		Where("city ILIKE ? OR state ILIKE ?", pattern, pattern).
		Order("type ASC").
		Order("rating DESC").
		Limit(limit).
		Find(&colleges).Error
	return colleges, err
}

func (r *CollegeRepository) FindByProgram(program string) ([]entities.College, error) {
	var colleges []entities.College
	err := r.db.
		Where("? = ANY(programs)", program).
		Order("rating DESC").
		Order("name ASC").
		Find(&colleges).Error
	return colleges, err
}

// ListPrograms retorna os programas distintos do catálogo, em ordem
func (r *CollegeRepository) ListPrograms() ([]string, error) {
	cacheKey := "colleges:meta:programs"
	if cached, found := r.cache.Get(cacheKey); found {
		return cached.([]string), nil
	}

	var programs []string
	err := r.db.Model(&entities.College{}).
		Select("DISTINCT unnest(programs)").
		Order("1 ASC").
		Pluck("unnest", &programs).Error
	if err != nil {
		return nil, err
	}

	r.cache.Set(cacheKey, programs, cache.DefaultExpiration)
	return programs, nil
}

type locationRow struct {
	State string
	City  string
	Count int64
}

// ListLocations agrupa as cidades por estado com contagem de instituições,
// para montar os filtros do catálogo.
func (r *CollegeRepository) ListLocations() (map[string]*StateColleges, error) {
	var rows []locationRow
	err := r.db.Model(&entities.College{}).
		Select("state, city, COUNT(*) as count").
		Group("state, city").
		Order("state ASC").
		Order("city ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	states := map[string]*StateColleges{}
	for _, row := range rows {
		entry, ok := states[row.State]
		if !ok {
			entry = &StateColleges{}
			states[row.State] = entry
		}
		entry.Cities = append(entry.Cities, CityCount{Name: row.City, CollegeCount: row.Count})
		entry.TotalColleges += row.Count
	}
	return states, nil
}
