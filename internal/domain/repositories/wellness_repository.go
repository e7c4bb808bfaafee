package repositories

import (
	"errors"
	"time"

	"github.com/margdarshak/career-intelligence-api/internal/domain/entities"
	"gorm.io/gorm"
)

type IWellnessRepository interface {
	CreateCheckin(checkin *entities.WellnessCheckin) error
	UpdateCheckin(checkin *entities.WellnessCheckin) error
	FindCheckinByID(id, userID string) (*entities.WellnessCheckin, error)
	FindCheckinBetween(userID string, from, to time.Time) (*entities.WellnessCheckin, error)
	FindCheckinsSince(userID string, since time.Time) ([]entities.WellnessCheckin, error)
	FindRecentCheckins(userID string, limit int) ([]entities.WellnessCheckin, error)
	FindAllCheckinsDesc(userID string) ([]entities.WellnessCheckin, error)
	CreateInsights(insights []entities.WellnessInsight) error
	FindInsights(userID string, limit int, unreadOnly bool) ([]entities.WellnessInsight, error)
	FindInsightsSince(userID string, since time.Time, limit int) ([]entities.WellnessInsight, error)
	MarkInsightRead(id, userID string) (*entities.WellnessInsight, error)
	CreateGoal(goal *entities.WellnessGoal) error
	FindGoals(userID string) ([]entities.WellnessGoal, error)
	FindActiveGoals(userID string) ([]entities.WellnessGoal, error)
	FindGoalByID(id, userID string) (*entities.WellnessGoal, error)
	UpdateGoal(goal *entities.WellnessGoal) error
	DeleteGoal(id string) error
}

type WellnessRepository struct {
	db *gorm.DB
}

func NewWellnessRepository(db *gorm.DB) *WellnessRepository {
	return &WellnessRepository{
		db: db,
	}
}

func (r *WellnessRepository) CreateCheckin(checkin *entities.WellnessCheckin) error {
	return r.db.Create(checkin).Error
}

func (r *WellnessRepository) UpdateCheckin(checkin *entities.WellnessCheckin) error {
	return r.db.Save(checkin).Error
}

func (r *WellnessRepository) FindCheckinByID(id, userID string) (*entities.WellnessCheckin, error) {
	var checkin entities.WellnessCheckin
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&checkin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &checkin, nil
}

// FindCheckinBetween busca o check-in do usuário dentro da janela [from, to),
// usado para localizar o check-in do dia.
func (r *WellnessRepository) FindCheckinBetween(userID string, from, to time.Time) (*entities.WellnessCheckin, error) {
	var checkin entities.WellnessCheckin
	err := r.db.
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, from, to).
		First(&checkin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &checkin, nil
}

// FindCheckinsSince retorna a janela em ordem cronológica (mais antigo primeiro)
func (r *WellnessRepository) FindCheckinsSince(userID string, since time.Time) ([]entities.WellnessCheckin, error) {
	var checkins []entities.WellnessCheckin
	err := r.db.
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at ASC").
		Find(&checkins).Error
	return checkins, err
}

func (r *WellnessRepository) FindRecentCheckins(userID string, limit int) ([]entities.WellnessCheckin, error) {
	var checkins []entities.WellnessCheckin
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&checkins).Error
	return checkins, err
}

func (r *WellnessRepository) FindAllCheckinsDesc(userID string) ([]entities.WellnessCheckin, error) {
	var checkins []entities.WellnessCheckin
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&checkins).Error
	return checkins, err
}

func (r *WellnessRepository) CreateInsights(insights []entities.WellnessInsight) error {
	if len(insights) == 0 {
		return nil
	}
	return r.db.Create(&insights).Error
}

// FindInsights ordena por prioridade (HIGH > MEDIUM > LOW) e depois por data
func (r *WellnessRepository) FindInsights(userID string, limit int, unreadOnly bool) ([]entities.WellnessInsight, error) {
	query := r.db.Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var insights []entities.WellnessInsight
	err := query.
		Order("CASE priority WHEN 'HIGH' THEN 3 WHEN 'MEDIUM' THEN 2 ELSE 1 END DESC").
		Order("created_at DESC").
		Limit(limit).
		Find(&insights).Error
	return insights, err
}

func (r *WellnessRepository) FindInsightsSince(userID string, since time.Time, limit int) ([]entities.WellnessInsight, error) {
	var insights []entities.WellnessInsight
	err := r.db.
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at DESC").
		Limit(limit).
		Find(&insights).Error
	return insights, err
}

func (r *WellnessRepository) MarkInsightRead(id, userID string) (*entities.WellnessInsight, error) {
	var insight entities.WellnessInsight
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&insight).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := r.db.Model(&insight).Update("is_read", true).Error; err != nil {
		return nil, err
	}
	insight.IsRead = true
	return &insight, nil
}

func (r *WellnessRepository) CreateGoal(goal *entities.WellnessGoal) error {
	return r.db.Create(goal).Error
}

func (r *WellnessRepository) FindGoals(userID string) ([]entities.WellnessGoal, error) {
	var goals []entities.WellnessGoal
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error
	return goals, err
}

func (r *WellnessRepository) FindActiveGoals(userID string) ([]entities.WellnessGoal, error) {
	var goals []entities.WellnessGoal
	err := r.db.
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&goals).Error
	return goals, err
}

func (r *WellnessRepository) FindGoalByID(id, userID string) (*entities.WellnessGoal, error) {
	var goal entities.WellnessGoal
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *WellnessRepository) UpdateGoal(goal *entities.WellnessGoal) error {
	return r.db.Save(goal).Error
}

func (r *WellnessRepository) DeleteGoal(id string) error {
	return r.db.Delete(&entities.WellnessGoal{}, "id = ?", id).Error
}
