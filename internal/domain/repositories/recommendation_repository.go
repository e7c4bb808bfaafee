package repositories

import (
	"errors"

	"github.com/margdarshak/career-intelligence-api/internal/domain/entities"
	"gorm.io/gorm"
)

// CourseFilters restringe a listagem do catálogo de cursos
type CourseFilters struct {
	Level string
	Field string
}

type IRecommendationRepository interface {
	CreateRoadmap(roadmap *entities.CareerRoadmap) error
	FindRoadmaps(userID string) ([]entities.CareerRoadmap, error)
	FindMilestone(id, userID string) (*entities.RoadmapMilestone, error)
	FindMilestonesByRoadmap(roadmapID string) ([]entities.RoadmapMilestone, error)
	UpdateMilestone(milestone *entities.RoadmapMilestone) error
	UpdateRoadmapProgress(roadmapID string, progress float64) error
	FindCourses(filters CourseFilters) ([]entities.Course, error)
}

type RecommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{
		db: db,
	}
}

// CreateRoadmap grava o plano e seus marcos em uma transação
func (r *RecommendationRepository) CreateRoadmap(roadmap *entities.CareerRoadmap) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(roadmap).Error
	})
}

func (r *RecommendationRepository) FindRoadmaps(userID string) ([]entities.CareerRoadmap, error) {
	var roadmaps []entities.CareerRoadmap
	err := r.db.
		Preload("Milestones", func(db *gorm.DB) *gorm.DB {
			return db.Order("milestone_order ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&roadmaps).Error
	return roadmaps, err
}

// FindMilestone resolve o marco apenas se o plano pertence ao usuário
func (r *RecommendationRepository) FindMilestone(id, userID string) (*entities.RoadmapMilestone, error) {
	var milestone entities.RoadmapMilestone
	err := r.db.
		Joins("JOIN career_roadmaps ON career_roadmaps.id = roadmap_milestones.roadmap_id").
		Where("roadmap_milestones.id = ? AND career_roadmaps.user_id = ?", id, userID).
		First(&milestone).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &milestone, nil
}

func (r *RecommendationRepository) FindMilestonesByRoadmap(roadmapID string) ([]entities.RoadmapMilestone, error) {
	var milestones []entities.RoadmapMilestone
	err := r.db.
		Where("roadmap_id = ?", roadmapID).
		Order("milestone_order ASC").
		Find(&milestones).Error
	return milestones, err
}

func (r *RecommendationRepository) UpdateMilestone(milestone *entities.RoadmapMilestone) error {
	return r.db.Save(milestone).Error
}

func (r *RecommendationRepository) UpdateRoadmapProgress(roadmapID string, progress float64) error {
	return r.db.Model(&entities.CareerRoadmap{}).
		Where("id = ?", roadmapID).
		Update("progress", progress).Error
}

func (r *RecommendationRepository) FindCourses(filters CourseFilters) ([]entities.Course, error) {
	query := r.db.Model(&entities.Course{})

	if filters.Level != "" {
		query = query.Where("level = ?", filters.Level)
	}
	if filters.Field != "" {
		query = query.Where("field ILIKE ?", "%"+filters.Field+"%")
	}

	var courses []entities.Course
	err := query.Order("name ASC").Find(&courses).Error
	return courses, err
}
