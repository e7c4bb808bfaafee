package migrations

import (
	"github.com/margdarshak/career-intelligence-api/internal/domain/entities"
	"gorm.io/gorm"
)

// Migrate aplica o schema de todas as entidades
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.User{},
		&entities.UserProfile{},
		&entities.Assessment{},
		&entities.AssessmentQuestion{},
		&entities.AssessmentResponse{},
		&entities.AssessmentResult{},
		&entities.WellnessCheckin{},
		&entities.WellnessInsight{},
		&entities.WellnessGoal{},
		&entities.College{},
		&entities.TimelineEvent{},
		&entities.ChatSession{},
		&entities.ChatMessage{},
		&entities.CareerRoadmap{},
		&entities.RoadmapMilestone{},
		&entities.Course{},
	)
}

// AddIndexes adds indexes to the database to improve query performance
func AddIndexes(db *gorm.DB) error {
	// Assessments: listagem por usuário e verificação de tipo concluído
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_assessments_user_type ON assessments (user_id, type, is_completed)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_assessment_questions_order ON assessment_questions (assessment_id, question_order)").Error; err != nil {
		return err
	}

	// Check-ins: janelas por data e verificação de check-in do dia
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_wellness_checkins_user_created ON wellness_checkins (user_id, created_at)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_wellness_insights_user_priority ON wellness_insights (user_id, priority, created_at)").Error; err != nil {
		return err
	}

	// Timeline: eventos futuros por data
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_timeline_events_date ON timeline_events (event_date, is_completed)").Error; err != nil {
		return err
	}

	// Roadmaps: marcos em ordem por plano
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_roadmap_milestones_order ON roadmap_milestones (roadmap_id, milestone_order)").Error; err != nil {
		return err
	}

	// Colleges: busca por estado/tipo com ordenação por nota
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_colleges_state_type ON colleges (state, type)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_colleges_rating ON colleges (rating DESC)").Error; err != nil {
		return err
	}

	return nil
}
