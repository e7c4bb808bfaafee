package usecases

import (
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/margdarshak/career-intelligence-api/internal/application/analytics"
	"github.com/margdarshak/career-intelligence-api/internal/domain/entities"
)

type stubWellnessRepo struct {
	checkins []entities.WellnessCheckin
	insights []entities.WellnessInsight
	goals    map[string]*entities.WellnessGoal
}

func newStubWellnessRepo() *stubWellnessRepo {
	return &stubWellnessRepo{
		goals: map[string]*entities.WellnessGoal{},
	}
}

func (s *stubWellnessRepo) CreateCheckin(checkin *entities.WellnessCheckin) error {
	s.checkins = append(s.checkins, *checkin)
	return nil
}

func (s *stubWellnessRepo) UpdateCheckin(checkin *entities.WellnessCheckin) error {
	for i := range s.checkins {
		if s.checkins[i].ID == checkin.ID {
			s.checkins[i] = *checkin
			return nil
		}
	}
	return errors.New("not found")
}

func (s *stubWellnessRepo) FindCheckinByID(id, userID string) (*entities.WellnessCheckin, error) {
	for i := range s.checkins {
		if s.checkins[i].ID == id && s.checkins[i].UserID == userID {
			c := s.checkins[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (s *stubWellnessRepo) FindCheckinBetween(userID string, from, to time.Time) (*entities.WellnessCheckin, error) {
	for i := range s.checkins {
		c := s.checkins[i]
		if c.UserID == userID && !c.CreatedAt.Before(from) && c.CreatedAt.Before(to) {
			return &c, nil
		}
	}
	return nil, nil
}

func (s *stubWellnessRepo) FindCheckinsSince(userID string, since time.Time) ([]entities.WellnessCheckin, error) {
	var out []entities.WellnessCheckin
	for _, c := range s.checkins {
		if c.UserID == userID && !c.CreatedAt.Before(since) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *stubWellnessRepo) FindRecentCheckins(userID string, limit int) ([]entities.WellnessCheckin, error) {
	all, _ := s.FindAllCheckinsDesc(userID)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (s *stubWellnessRepo) FindAllCheckinsDesc(userID string) ([]entities.WellnessCheckin, error) {
	var out []entities.WellnessCheckin
	for _, c := range s.checkins {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *stubWellnessRepo) CreateInsights(insights []entities.WellnessInsight) error {
	s.insights = append(s.insights, insights...)
	return nil
}

func (s *stubWellnessRepo) FindInsights(userID string, limit int, unreadOnly bool) ([]entities.WellnessInsight, error) {
	var out []entities.WellnessInsight
	for _, in := range s.insights {
		if in.UserID != userID {
			continue
		}
		if unreadOnly && in.IsRead {
			continue
		}
		out = append(out, in)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubWellnessRepo) FindInsightsSince(userID string, since time.Time, limit int) ([]entities.WellnessInsight, error) {
	return s.FindInsights(userID, limit, false)
}

func (s *stubWellnessRepo) MarkInsightRead(id, userID string) (*entities.WellnessInsight, error) {
	for i := range s.insights {
		if s.insights[i].ID == id && s.insights[i].UserID == userID {
			s.insights[i].IsRead = true
			in := s.insights[i]
			return &in, nil
		}
	}
	return nil, nil
}

func (s *stubWellnessRepo) CreateGoal(goal *entities.WellnessGoal) error {
	s.goals[goal.ID] = goal
	return nil
}

func (s *stubWellnessRepo) FindGoals(userID string) ([]entities.WellnessGoal, error) {
	var out []entities.WellnessGoal
	for _, g := range s.goals {
		if g.UserID == userID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (s *stubWellnessRepo) FindActiveGoals(userID string) ([]entities.WellnessGoal, error) {
	var out []entities.WellnessGoal
	for _, g := range s.goals {
		if g.UserID == userID && g.IsActive {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (s *stubWellnessRepo) FindGoalByID(id, userID string) (*entities.WellnessGoal, error) {
	g, ok := s.goals[id]
	if !ok || g.UserID != userID {
		return nil, nil
	}
	copy := *g
	return &copy, nil
}

func (s *stubWellnessRepo) UpdateGoal(goal *entities.WellnessGoal) error {
	s.goals[goal.ID] = goal
	return nil
}

func (s *stubWellnessRepo) DeleteGoal(id string) error {
	delete(s.goals, id)
	return nil
}

func newWellnessUseCase(repo *stubWellnessRepo, now time.Time) *WellnessUseCase {
	uc := NewWellnessUseCase(repo, analytics.NewInsightEngine())
	uc.now = func() time.Time { return now }
	return uc
}

func validCheckinInput() CheckinInput {
	return CheckinInput{
		MoodScore:    8,
		StressLevel:  3,
		EnergyLevel:  7,
		SleepQuality: 9,
		FocusLevel:   7,
	}
}

func TestCreateCheckinDerivesScore(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	repo := newStubWellnessRepo()
	uc := newWellnessUseCase(repo, now)

	checkin, insights, err := uc.CreateCheckin("user-1", validCheckinInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// (8 + (11-3) + 7 + 9 + 7) / 5 = 7.8
	if checkin.OverallScore != 7.8 {
		t.Fatalf("overall = %v, want 7.8", checkin.OverallScore)
	}
	if len(repo.checkins) != 1 {
		t.Fatalf("persisted checkins = %d, want 1", len(repo.checkins))
	}
	if insights == nil {
		t.Fatal("insights must be an empty slice, not nil")
	}
}

func TestCreateCheckinOncePerDay(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	repo := newStubWellnessRepo()
	uc := newWellnessUseCase(repo, now)

	if _, _, err := uc.CreateCheckin("user-1", validCheckinInput()); err != nil {
		t.Fatalf("first checkin failed: %v", err)
	}
	if _, _, err := uc.CreateCheckin("user-1", validCheckinInput()); !errors.Is(err, ErrCheckinExists) {
		t.Fatalf("err = %v, want ErrCheckinExists", err)
	}
}

func TestCreateCheckinPersistsTriggeredInsights(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	repo := newStubWellnessRepo()
	uc := newWellnessUseCase(repo, now)

	hours := 5.0
	input := validCheckinInput()
	input.SleepQuality = 3
	input.HoursSlept = &hours

	_, insights, err := uc.CreateCheckin("user-1", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(insights) != 1 {
		t.Fatalf("insights = %d, want 1 (sleep warning)", len(insights))
	}
	if insights[0].Type != analytics.InsightWarning || insights[0].Priority != analytics.PriorityHigh {
		t.Fatalf("unexpected insight: %+v", insights[0])
	}
	if len(repo.insights) != 1 {
		t.Fatal("insight must be persisted")
	}
}

func TestUpdateCheckinRecomputesScore(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	repo := newStubWellnessRepo()
	uc := newWellnessUseCase(repo, now)

	checkin, _, err := uc.CreateCheckin("user-1", validCheckinInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	input := validCheckinInput()
	input.MoodScore = 3
	updated, err := uc.UpdateCheckin("user-1", checkin.ID, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.OverallScore >= checkin.OverallScore {
		t.Fatalf("score should drop after mood drop: %v -> %v", checkin.OverallScore, updated.OverallScore)
	}
}

func TestUpdateCheckinLockedAfterDayEnds(t *testing.T) {
	repo := newStubWellnessRepo()
	yesterday := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	uc := newWellnessUseCase(repo, yesterday)

	checkin, _, err := uc.CreateCheckin("user-1", validCheckinInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// No dia seguinte o check-in fica imutável
	uc.now = func() time.Time { return yesterday.AddDate(0, 0, 1) }
	if _, err := uc.UpdateCheckin("user-1", checkin.ID, validCheckinInput()); !errors.Is(err, ErrCheckinLocked) {
		t.Fatalf("err = %v, want ErrCheckinLocked", err)
	}
}

func TestDashboardStreak(t *testing.T) {
	now := time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC)
	repo := newStubWellnessRepo()
	uc := newWellnessUseCase(repo, now)

	for _, daysAgo := range []int{0, 1, 2, 4} {
		repo.checkins = append(repo.checkins, entities.WellnessCheckin{
			ID:        "c" + string(rune('0'+daysAgo)),
			UserID:    "user-1",
			MoodScore: 5, StressLevel: 5, EnergyLevel: 5, SleepQuality: 5, FocusLevel: 5,
			OverallScore: 5,
			CreatedAt:    now.AddDate(0, 0, -daysAgo),
		})
	}

	dashboard, err := uc.GetDashboard("user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dashboard.Streak != 3 {
		t.Fatalf("streak = %d, want 3 (gap on day -3)", dashboard.Streak)
	}
	if dashboard.Today == nil {
		t.Fatal("today's checkin must be present")
	}
	if dashboard.WeeklyAverages == nil {
		t.Fatal("weekly averages must be computed")
	}
}

func TestAnalyticsWindow(t *testing.T) {
	now := time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC)
	repo := newStubWellnessRepo()
	uc := newWellnessUseCase(repo, now)

	for i := 0; i < 10; i++ {
		repo.checkins = append(repo.checkins, entities.WellnessCheckin{
			ID:     "c" + string(rune('a'+i)),
			UserID: "user-1",
			MoodScore: 5 + i%3, StressLevel: 5, EnergyLevel: 5, SleepQuality: 5, FocusLevel: 5,
			OverallScore: 5,
			CreatedAt:    now.AddDate(0, 0, -i),
		})
	}

	analytics, err := uc.GetAnalytics("user-1", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analytics.TotalCheckins != 10 {
		t.Fatalf("total = %d, want 10", analytics.TotalCheckins)
	}
	if len(analytics.WeeklyTrends) != 2 {
		t.Fatalf("weekly buckets = %d, want 2", len(analytics.WeeklyTrends))
	}
	if analytics.Averages == nil {
		t.Fatal("averages must not be nil")
	}
	if analytics.Correlations.SleepMood == nil {
		t.Fatal("sleep/mood correlation must be computed")
	}
	// DailyData em ordem cronológica
	for i := 1; i < len(analytics.DailyData); i++ {
		if analytics.DailyData[i].CreatedAt.Before(analytics.DailyData[i-1].CreatedAt) {
			t.Fatal("daily data must be chronological")
		}
	}
}

func TestGoalLifecycle(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	repo := newStubWellnessRepo()
	uc := newWellnessUseCase(repo, now)

	goal, err := uc.CreateGoal("user-1", GoalInput{Title: "Sleep 8 hours", Category: "SLEEP"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !goal.IsActive {
		t.Fatal("new goals must start active")
	}

	inactive := false
	updated, err := uc.UpdateGoal("user-1", goal.ID, GoalInput{Title: "Sleep 8 hours", Category: "SLEEP"}, &inactive)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.IsActive {
		t.Fatal("goal must be deactivated")
	}

	if err := uc.DeleteGoal("user-1", goal.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.DeleteGoal("user-1", goal.ID); !errors.Is(err, ErrGoalNotFound) {
		t.Fatalf("err = %v, want ErrGoalNotFound", err)
	}
}

func TestMarkInsightReadNotFound(t *testing.T) {
	uc := newWellnessUseCase(newStubWellnessRepo(), time.Now())

	if _, err := uc.MarkInsightRead("user-1", "missing"); !errors.Is(err, ErrInsightNotFound) {
		t.Fatalf("err = %v, want ErrInsightNotFound", err)
	}
}
