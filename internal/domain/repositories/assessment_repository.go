package repositories

import (
	"errors"

	"github.com/margdarshak/career-intelligence-api/internal/domain/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IAssessmentRepository interface {
	FindByUser(userID string) ([]entities.Assessment, error)
	FindByID(id, userID string) (*entities.Assessment, error)
	FindPendingByID(id, userID string) (*entities.Assessment, error)
	HasCompletedType(userID, assessmentType string) (bool, error)
	CreateWithQuestions(assessment *entities.Assessment) error
	CreateResponses(responses []entities.AssessmentResponse) error
	FindResponsesWithQuestions(assessmentID string) ([]entities.AssessmentResponse, error)
	UpsertResult(result *entities.AssessmentResult) error
	MarkCompleted(assessmentID string) error
	FindCompletedWithResults(userID string) ([]entities.Assessment, error)
}

type AssessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{
		db: db,
	}
}

// FindByUser retorna as avaliações do usuário com perguntas ordenadas e resultado
func (r *AssessmentRepository) FindByUser(userID string) ([]entities.Assessment, error) {
	var assessments []entities.Assessment
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_order ASC")
		}).
		Preload("Result").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&assessments).Error
	return assessments, err
}

func (r *AssessmentRepository) FindByID(id, userID string) (*entities.Assessment, error) {
	var assessment entities.Assessment
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_order ASC")
		}).
		Preload("Result").
		Preload("Responses.Question").
		Where("id = ? AND user_id = ?", id, userID).
		First(&assessment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

// FindPendingByID retorna a avaliação apenas se ainda não foi concluída
func (r *AssessmentRepository) FindPendingByID(id, userID string) (*entities.Assessment, error) {
	var assessment entities.Assessment
	err := r.db.
		Preload("Questions").
		Where("id = ? AND user_id = ? AND is_completed = ?", id, userID, false).
		First(&assessment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *AssessmentRepository) HasCompletedType(userID, assessmentType string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Assessment{}).
		Where("user_id = ? AND type = ? AND is_completed = ?", userID, assessmentType, true).
		Count(&count).Error
	return count > 0, err
}

// CreateWithQuestions grava a avaliação e as perguntas em uma transação
func (r *AssessmentRepository) CreateWithQuestions(assessment *entities.Assessment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(assessment).Error
	})
}

func (r *AssessmentRepository) CreateResponses(responses []entities.AssessmentResponse) error {
	if len(responses) == 0 {
		return nil
	}
	return r.db.Create(&responses).Error
}

func (r *AssessmentRepository) FindResponsesWithQuestions(assessmentID string) ([]entities.AssessmentResponse, error) {
	var responses []entities.AssessmentResponse
	err := r.db.
		Preload("Question").
		Where("assessment_id = ?", assessmentID).
		Find(&responses).Error
	return responses, err
}

// UpsertResult garante no máximo um resultado por avaliação: escritores
// concorrentes atualizam o registro existente em vez de duplicar.
func (r *AssessmentRepository) UpsertResult(result *entities.AssessmentResult) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "assessment_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"overall_score", "percentage", "category_scores",
			"insights", "recommendations", "traits", "updated_at",
		}),
	}).Create(result).Error
}

func (r *AssessmentRepository) MarkCompleted(assessmentID string) error {
	return r.db.Model(&entities.Assessment{}).
		Where("id = ?", assessmentID).
		Update("is_completed", true).Error
}

func (r *AssessmentRepository) FindCompletedWithResults(userID string) ([]entities.Assessment, error) {
	var assessments []entities.Assessment
	err := r.db.
		Preload("Result").
		Where("user_id = ? AND is_completed = ?", userID, true).
		Order("updated_at DESC").
		Find(&assessments).Error
	return assessments, err
}
