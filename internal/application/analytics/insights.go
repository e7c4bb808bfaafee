package analytics

import (
	"fmt"

	"github.com/margdarshak/career-intelligence-api/internal/domain/entities"
)

// Tipos e prioridades de insight
const (
	InsightTrend       = "TREND"
	InsightWarning     = "WARNING"
	InsightAchievement = "ACHIEVEMENT"

	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

// Insight é a saída estruturada do motor de regras, pronta para persistência
type Insight struct {
	Type            string   `json:"type"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	Recommendations []string `json:"recommendations"`
	Priority        string   `json:"priority"`
}

// InsightEngine avalia um conjunto fixo e ordenado de regras independentes
// sobre o check-in atual e o histórico recente. Cada chamada é pura: a mesma
// entrada produz os mesmos insights, sem deduplicação contra o que já foi
// persistido (isso é responsabilidade da camada de persistência).
type InsightEngine struct{}

func NewInsightEngine() *InsightEngine {
	return &InsightEngine{}
}

// Generate devolve zero ou mais insights. history deve estar em ordem
// cronológica (mais antigo primeiro).
func (e *InsightEngine) Generate(checkin entities.WellnessCheckin, history []entities.WellnessCheckin) []Insight {
	insights := []Insight{}

	// Tendência de humor: média dos 3 últimos vs. os 3 anteriores
	if len(history) >= 3 {
		recent := history[len(history)-3:]
		var recentSum float64
		for _, c := range recent {
			recentSum += float64(c.MoodScore)
		}
		recentAvg := recentSum / 3

		var previousSum float64
		start := len(history) - 6
		if start < 0 {
			start = 0
		}
		for _, c := range history[start : len(history)-3] {
			previousSum += float64(c.MoodScore)
		}
		previousAvg := previousSum / 3

		if recentAvg > previousAvg+1 {
			insights = append(insights, Insight{
				Type:        InsightTrend,
				Title:       "Mood Improvement Detected",
				Description: fmt.Sprintf("Your mood has improved by %.1f points over the last 3 days!", recentAvg-previousAvg),
				Category:    "MENTAL",
				Recommendations: []string{
					"Keep up the great work!",
					"Consider what positive changes you've made recently",
				},
				Priority: PriorityMedium,
			})
		}
	}

	// Qualidade de sono baixa combinada com poucas horas dormidas
	if checkin.SleepQuality <= 4 && checkin.HoursSlept != nil && *checkin.HoursSlept < 7 {
		insights = append(insights, Insight{
			Type:        InsightWarning,
			Title:       "Sleep Quality Concern",
			Description: "Poor sleep quality combined with insufficient sleep hours detected.",
			Category:    "SLEEP",
			Recommendations: []string{
				"Aim for 7-9 hours of sleep",
				"Create a consistent bedtime routine",
				"Limit screen time before bed",
			},
			Priority: PriorityHigh,
		})
	}

	// Estresse e ansiedade elevados ao mesmo tempo
	if checkin.StressLevel >= 7 && checkin.AnxietyLevel != nil && *checkin.AnxietyLevel >= 7 {
		insights = append(insights, Insight{
			Type:        InsightWarning,
			Title:       "High Stress and Anxiety",
			Description: "Both stress and anxiety levels are elevated. Consider stress management techniques.",
			Category:    "MENTAL",
			Recommendations: []string{
				"Try deep breathing exercises",
				"Take short breaks during study/work",
				"Consider talking to someone you trust",
				"Practice mindfulness or meditation",
			},
			Priority: PriorityHigh,
		})
	}

	// Dia de alta produtividade com foco alto
	if checkin.ProductivityScore != nil && *checkin.ProductivityScore >= 8 && checkin.FocusLevel >= 8 {
		insights = append(insights, Insight{
			Type:        InsightAchievement,
			Title:       "High Productivity Day",
			Description: "Excellent focus and productivity today! You're in the zone.",
			Category:    "PRODUCTIVITY",
			Recommendations: []string{
				"Note what made today successful",
				"Try to replicate these conditions tomorrow",
			},
			Priority: PriorityMedium,
		})
	}

	return insights
}
