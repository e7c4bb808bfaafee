package usecases

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/margdarshak/career-intelligence-api/internal/application/analytics"
	"github.com/margdarshak/career-intelligence-api/internal/domain/entities"
	"github.com/margdarshak/career-intelligence-api/internal/domain/repositories"
	"github.com/margdarshak/career-intelligence-api/internal/utils"
)

var (
	ErrCheckinExists   = errors.New("a check-in already exists for today")
	ErrCheckinNotFound = errors.New("check-in not found")
	ErrCheckinLocked   = errors.New("only today's check-in can be updated")
	ErrGoalNotFound    = errors.New("wellness goal not found")
	ErrInsightNotFound = errors.New("wellness insight not found")
)

// WellnessUseCase implementa os casos de uso de bem-estar
type WellnessUseCase struct {
	wellnessRepo repositories.IWellnessRepository
	insights     *analytics.InsightEngine
	now          func() time.Time
}

// NewWellnessUseCase cria uma nova instância de WellnessUseCase
func NewWellnessUseCase(wellnessRepo repositories.IWellnessRepository, insights *analytics.InsightEngine) *WellnessUseCase {
	return &WellnessUseCase{
		wellnessRepo: wellnessRepo,
		insights:     insights,
		now:          func() time.Time { return time.Now().In(utils.GetIndiaLocation()) },
	}
}

// CheckinInput carrega as métricas do check-in diário. As cinco principais são
// obrigatórias; as demais entram no score apenas quando presentes.
type CheckinInput struct {
	MoodScore    int `json:"moodScore" validate:"required,min=1,max=10"`
	StressLevel  int `json:"stressLevel" validate:"required,min=1,max=10"`
	EnergyLevel  int `json:"energyLevel" validate:"required,min=1,max=10"`
	SleepQuality int `json:"sleepQuality" validate:"required,min=1,max=10"`
	FocusLevel   int `json:"focusLevel" validate:"required,min=1,max=10"`

	HoursSlept        *float64 `json:"hoursSlept,omitempty" validate:"omitempty,min=0,max=24"`
	ExerciseMinutes   *int     `json:"exerciseMinutes,omitempty" validate:"omitempty,min=0"`
	ScreenTime        *int     `json:"screenTime,omitempty" validate:"omitempty,min=0"`
	SocialTime        *int     `json:"socialTime,omitempty" validate:"omitempty,min=0"`
	StudyHours        *float64 `json:"studyHours,omitempty" validate:"omitempty,min=0,max=24"`
	ProductivityScore *int     `json:"productivityScore,omitempty" validate:"omitempty,min=1,max=10"`
	MotivationLevel   *int     `json:"motivationLevel,omitempty" validate:"omitempty,min=1,max=10"`
	AnxietyLevel      *int     `json:"anxietyLevel,omitempty" validate:"omitempty,min=1,max=10"`
	ConfidenceLevel   *int     `json:"confidenceLevel,omitempty" validate:"omitempty,min=1,max=10"`

	Activities []string `json:"activities,omitempty"`
	Gratitude  []string `json:"gratitude,omitempty"`
	Challenges []string `json:"challenges,omitempty"`
	Goals      []string `json:"goals,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

// CreateCheckin registra o check-in do dia (no máximo um por dia de calendário),
// deriva o OverallScore e roda o motor de insights sobre o histórico recente.
func (u *WellnessUseCase) CreateCheckin(userID string, input CheckinInput) (*entities.WellnessCheckin, []entities.WellnessInsight, error) {
	today := utils.StartOfDay(u.now())
	tomorrow := today.AddDate(0, 0, 1)

	existing, err := u.wellnessRepo.FindCheckinBetween(userID, today, tomorrow)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, ErrCheckinExists
	}

	now := u.now()
	checkin := entities.WellnessCheckin{
		ID:     uuid.NewString(),
		UserID: userID,

		MoodScore:    input.MoodScore,
		StressLevel:  input.StressLevel,
		EnergyLevel:  input.EnergyLevel,
		SleepQuality: input.SleepQuality,
		FocusLevel:   input.FocusLevel,

		HoursSlept:        input.HoursSlept,
		ExerciseMinutes:   input.ExerciseMinutes,
		ScreenTime:        input.ScreenTime,
		SocialTime:        input.SocialTime,
		StudyHours:        input.StudyHours,
		ProductivityScore: input.ProductivityScore,
		MotivationLevel:   input.MotivationLevel,
		AnxietyLevel:      input.AnxietyLevel,
		ConfidenceLevel:   input.ConfidenceLevel,

		Activities: input.Activities,
		Gratitude:  input.Gratitude,
		Challenges: input.Challenges,
		Goals:      input.Goals,
		Notes:      input.Notes,

		CreatedAt: now,
		UpdatedAt: now,
	}
	checkin.OverallScore = analytics.WellnessScore(checkin)

	if err := u.wellnessRepo.CreateCheckin(&checkin); err != nil {
		return nil, nil, err
	}

	insights, err := u.generateInsights(userID, checkin)
	if err != nil {
		return nil, nil, err
	}
	return &checkin, insights, nil
}

// UpdateCheckin edita o check-in do dia corrente e recalcula o OverallScore.
// Check-ins de dias anteriores são imutáveis.
func (u *WellnessUseCase) UpdateCheckin(userID, checkinID string, input CheckinInput) (*entities.WellnessCheckin, error) {
	checkin, err := u.wellnessRepo.FindCheckinByID(checkinID, userID)
	if err != nil {
		return nil, err
	}
	if checkin == nil {
		return nil, ErrCheckinNotFound
	}

	now := u.now()
	created := checkin.CreatedAt.In(now.Location())
	if created.Year() != now.Year() || created.YearDay() != now.YearDay() {
		return nil, ErrCheckinLocked
	}

	checkin.MoodScore = input.MoodScore
	checkin.StressLevel = input.StressLevel
	checkin.EnergyLevel = input.EnergyLevel
	checkin.SleepQuality = input.SleepQuality
	checkin.FocusLevel = input.FocusLevel
	checkin.HoursSlept = input.HoursSlept
	checkin.ExerciseMinutes = input.ExerciseMinutes
	checkin.ScreenTime = input.ScreenTime
	checkin.SocialTime = input.SocialTime
	checkin.StudyHours = input.StudyHours
	checkin.ProductivityScore = input.ProductivityScore
	checkin.MotivationLevel = input.MotivationLevel
	checkin.AnxietyLevel = input.AnxietyLevel
	checkin.ConfidenceLevel = input.ConfidenceLevel
	checkin.Activities = input.Activities
	checkin.Gratitude = input.Gratitude
	checkin.Challenges = input.Challenges
	checkin.Goals = input.Goals
	checkin.Notes = input.Notes
	checkin.OverallScore = analytics.WellnessScore(*checkin)
	checkin.UpdatedAt = u.now()

	if err := u.wellnessRepo.UpdateCheckin(checkin); err != nil {
		return nil, err
	}
	return checkin, nil
}

// GetTodayCheckin retorna o check-in do dia corrente, ou nil quando não há
func (u *WellnessUseCase) GetTodayCheckin(userID string) (*entities.WellnessCheckin, error) {
	today := utils.StartOfDay(u.now())
	return u.wellnessRepo.FindCheckinBetween(userID, today, today.AddDate(0, 0, 1))
}

// Dashboard resume o estado atual de bem-estar do usuário
type Dashboard struct {
	Today          *entities.WellnessCheckin  `json:"today"`
	Streak         int                        `json:"streak"`
	WeeklyAverages *analytics.MetricAverages  `json:"weeklyAverages"`
	RecentCheckins []entities.WellnessCheckin `json:"recentCheckins"`
	ActiveGoals    []entities.WellnessGoal    `json:"activeGoals"`
	RecentInsights []entities.WellnessInsight `json:"recentInsights"`
}

// GetDashboard monta o painel: check-in de hoje, sequência de dias
// consecutivos, médias da última semana, metas ativas e insights recentes.
func (u *WellnessUseCase) GetDashboard(userID string) (*Dashboard, error) {
	today, err := u.GetTodayCheckin(userID)
	if err != nil {
		return nil, err
	}

	all, err := u.wellnessRepo.FindAllCheckinsDesc(userID)
	if err != nil {
		return nil, err
	}
	streak := analytics.Streak(all, u.now())

	weekAgo := utils.StartOfDay(u.now()).AddDate(0, 0, -7)
	lastWeek, err := u.wellnessRepo.FindCheckinsSince(userID, weekAgo)
	if err != nil {
		return nil, err
	}

	recent, err := u.wellnessRepo.FindRecentCheckins(userID, 7)
	if err != nil {
		return nil, err
	}

	goals, err := u.wellnessRepo.FindActiveGoals(userID)
	if err != nil {
		return nil, err
	}

	insights, err := u.wellnessRepo.FindInsights(userID, 5, false)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Today:          today,
		Streak:         streak,
		WeeklyAverages: analytics.Averages(lastWeek),
		RecentCheckins: recent,
		ActiveGoals:    goals,
		RecentInsights: insights,
	}, nil
}

// WellnessAnalytics é a análise da janela pedida
type WellnessAnalytics struct {
	TotalCheckins int                        `json:"totalCheckins"`
	Averages      *analytics.MetricAverages  `json:"averages"`
	WeeklyTrends  []analytics.WeeklyTrend    `json:"weeklyTrends"`
	Correlations  analytics.CorrelationSet   `json:"correlations"`
	DailyData     []entities.WellnessCheckin `json:"dailyData"`
}

// GetAnalytics calcula médias, tendências semanais e correlações sobre os
// check-ins dos últimos `days` dias, em ordem cronológica.
func (u *WellnessUseCase) GetAnalytics(userID string, days int) (*WellnessAnalytics, error) {
	if days <= 0 {
		days = 30
	}
	since := utils.StartOfDay(u.now()).AddDate(0, 0, -days)
	checkins, err := u.wellnessRepo.FindCheckinsSince(userID, since)
	if err != nil {
		return nil, err
	}

	return &WellnessAnalytics{
		TotalCheckins: len(checkins),
		Averages:      analytics.Averages(checkins),
		WeeklyTrends:  analytics.WeeklyTrends(checkins),
		Correlations:  analytics.Correlations(checkins),
		DailyData:     checkins,
	}, nil
}

// GetInsights lista os insights do usuário, priorizados
func (u *WellnessUseCase) GetInsights(userID string, limit int, unreadOnly bool) ([]entities.WellnessInsight, error) {
	if limit <= 0 {
		limit = 20
	}
	return u.wellnessRepo.FindInsights(userID, limit, unreadOnly)
}

// MarkInsightRead marca um insight como lido
func (u *WellnessUseCase) MarkInsightRead(userID, insightID string) (*entities.WellnessInsight, error) {
	insight, err := u.wellnessRepo.MarkInsightRead(insightID, userID)
	if err != nil {
		return nil, err
	}
	if insight == nil {
		return nil, ErrInsightNotFound
	}
	return insight, nil
}

// GoalInput carrega os campos de criação/edição de uma meta de bem-estar
type GoalInput struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description,omitempty"`
	Category     string   `json:"category" validate:"required,oneof=SLEEP EXERCISE MENTAL STUDY SOCIAL SCREEN"`
	TargetValue  *float64 `json:"targetValue,omitempty"`
	Unit         string   `json:"unit,omitempty"`
	ReminderTime string   `json:"reminderTime,omitempty"`
	ReminderDays []int64  `json:"reminderDays,omitempty" validate:"omitempty,dive,min=0,max=6"`
}

// CreateGoal cria uma meta ativa de bem-estar
func (u *WellnessUseCase) CreateGoal(userID string, input GoalInput) (*entities.WellnessGoal, error) {
	now := u.now()
	goal := &entities.WellnessGoal{
		ID:           uuid.NewString(),
		UserID:       userID,
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		TargetValue:  input.TargetValue,
		Unit:         input.Unit,
		ReminderTime: input.ReminderTime,
		ReminderDays: input.ReminderDays,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.wellnessRepo.CreateGoal(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// GetGoals lista todas as metas do usuário
func (u *WellnessUseCase) GetGoals(userID string) ([]entities.WellnessGoal, error) {
	return u.wellnessRepo.FindGoals(userID)
}

// UpdateGoal edita uma meta existente
func (u *WellnessUseCase) UpdateGoal(userID, goalID string, input GoalInput, isActive *bool) (*entities.WellnessGoal, error) {
	goal, err := u.wellnessRepo.FindGoalByID(goalID, userID)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, ErrGoalNotFound
	}

	goal.Title = input.Title
	goal.Description = input.Description
	goal.Category = input.Category
	goal.TargetValue = input.TargetValue
	goal.Unit = input.Unit
	goal.ReminderTime = input.ReminderTime
	goal.ReminderDays = input.ReminderDays
	if isActive != nil {
		goal.IsActive = *isActive
	}
	goal.UpdatedAt = u.now()

	if err := u.wellnessRepo.UpdateGoal(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// DeleteGoal remove uma meta do usuário
func (u *WellnessUseCase) DeleteGoal(userID, goalID string) error {
	goal, err := u.wellnessRepo.FindGoalByID(goalID, userID)
	if err != nil {
		return err
	}
	if goal == nil {
		return ErrGoalNotFound
	}
	return u.wellnessRepo.DeleteGoal(goal.ID)
}

// generateInsights roda as regras sobre o histórico recente (em ordem
// cronológica, incluindo o check-in recém-criado) e persiste o que disparou.
func (u *WellnessUseCase) generateInsights(userID string, checkin entities.WellnessCheckin) ([]entities.WellnessInsight, error) {
	recent, err := u.wellnessRepo.FindRecentCheckins(userID, 7)
	if err != nil {
		return nil, err
	}
	// FindRecentCheckins devolve em ordem decrescente; o motor espera cronológica
	history := make([]entities.WellnessCheckin, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		history = append(history, recent[i])
	}

	generated := u.insights.Generate(checkin, history)
	if len(generated) == 0 {
		return []entities.WellnessInsight{}, nil
	}

	now := u.now()
	persisted := make([]entities.WellnessInsight, 0, len(generated))
	for _, in := range generated {
		persisted = append(persisted, entities.WellnessInsight{
			ID:              uuid.NewString(),
			UserID:          userID,
			Type:            in.Type,
			Title:           in.Title,
			Description:     in.Description,
			Category:        in.Category,
			Recommendations: in.Recommendations,
			Priority:        in.Priority,
			IsRead:          false,
			CreatedAt:       now,
		})
	}
	if err := u.wellnessRepo.CreateInsights(persisted); err != nil {
		return nil, err
	}
	return persisted, nil
}
