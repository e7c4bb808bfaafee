package analytics

import (
	"math"
	"time"

	"github.com/margdarshak/career-intelligence-api/internal/domain/entities"
)

// MetricAverages é a média aritmética das métricas principais na janela
type MetricAverages struct {
	Mood    float64 `json:"mood"`
	Stress  float64 `json:"stress"`
	Energy  float64 `json:"energy"`
	Sleep   float64 `json:"sleep"`
	Focus   float64 `json:"focus"`
	Overall float64 `json:"overall"`
}

// WeeklyTrend é a média das métricas em um balde de 7 check-ins consecutivos
type WeeklyTrend struct {
	Week    int     `json:"week"`
	Mood    float64 `json:"mood"`
	Stress  float64 `json:"stress"`
	Energy  float64 `json:"energy"`
	Sleep   float64 `json:"sleep"`
	Focus   float64 `json:"focus"`
	Overall float64 `json:"overall"`
}

// CorrelationSet agrupa os pares de correlação expostos pela análise.
// exerciseMood fica nulo quando não há check-ins suficientes com minutos de
// exercício registrados.
type CorrelationSet struct {
	SleepMood    *float64 `json:"sleepMood"`
	StressEnergy *float64 `json:"stressEnergy"`
	ExerciseMood *float64 `json:"exerciseMood"`
}

// Averages calcula as médias da janela; retorna nil para janela vazia
func Averages(checkins []entities.WellnessCheckin) *MetricAverages {
	if len(checkins) == 0 {
		return nil
	}

	var avg MetricAverages
	for _, c := range checkins {
		avg.Mood += float64(c.MoodScore)
		avg.Stress += float64(c.StressLevel)
		avg.Energy += float64(c.EnergyLevel)
		avg.Sleep += float64(c.SleepQuality)
		avg.Focus += float64(c.FocusLevel)
		avg.Overall += c.OverallScore
	}

	n := float64(len(checkins))
	avg.Mood /= n
	avg.Stress /= n
	avg.Energy /= n
	avg.Sleep /= n
	avg.Focus /= n
	avg.Overall /= n
	return &avg
}

// WeeklyTrends particiona a lista (já em ordem cronológica) em grupos
// consecutivos de 7 check-ins e calcula a média de cada grupo. O índice do
// balde é 1-based, do mais antigo para o mais recente.
func WeeklyTrends(checkins []entities.WellnessCheckin) []WeeklyTrend {
	trends := []WeeklyTrend{}
	for i := 0; i*7 < len(checkins); i++ {
		end := (i + 1) * 7
		if end > len(checkins) {
			end = len(checkins)
		}
		week := checkins[i*7 : end]
		avg := Averages(week)
		trends = append(trends, WeeklyTrend{
			Week:    i + 1,
			Mood:    avg.Mood,
			Stress:  avg.Stress,
			Energy:  avg.Energy,
			Sleep:   avg.Sleep,
			Focus:   avg.Focus,
			Overall: avg.Overall,
		})
	}
	return trends
}

// PearsonCorrelation calcula o coeficiente de Pearson entre duas séries de
// mesmo comprimento. Retorna nil para séries vazias ou de tamanhos diferentes.
// Denominador exatamente zero (série constante) resulta em 0, não NaN, para
// manter os consumidores numéricos seguros.
func PearsonCorrelation(x, y []float64) *float64 {
	if len(x) != len(y) || len(x) == 0 {
		return nil
	}

	n := float64(len(x))
	var sumX, sumY, sumXY, sumXX, sumYY float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumXX += x[i] * x[i]
		sumYY += y[i] * y[i]
	}

	numerator := n*sumXY - sumX*sumY
	denominator := math.Sqrt((n*sumXX - sumX*sumX) * (n*sumYY - sumY*sumY))
	if denominator == 0 {
		zero := 0.0
		return &zero
	}
	r := numerator / denominator
	return &r
}

// Correlations monta os pares padrão da análise de bem-estar. O par
// exercício×humor só é calculado quando mais de 5 check-ins têm minutos de
// exercício registrados, filtrado a esses check-ins.
func Correlations(checkins []entities.WellnessCheckin) CorrelationSet {
	sleep := make([]float64, len(checkins))
	mood := make([]float64, len(checkins))
	stress := make([]float64, len(checkins))
	energy := make([]float64, len(checkins))
	for i, c := range checkins {
		sleep[i] = float64(c.SleepQuality)
		mood[i] = float64(c.MoodScore)
		stress[i] = float64(c.StressLevel)
		energy[i] = float64(c.EnergyLevel)
	}

	set := CorrelationSet{
		SleepMood:    PearsonCorrelation(sleep, mood),
		StressEnergy: PearsonCorrelation(stress, energy),
	}

	var exercise, exerciseMood []float64
	for _, c := range checkins {
		if c.ExerciseMinutes != nil {
			exercise = append(exercise, float64(*c.ExerciseMinutes))
			exerciseMood = append(exerciseMood, float64(c.MoodScore))
		}
	}
	if len(exercise) > 5 {
		set.ExerciseMood = PearsonCorrelation(exercise, exerciseMood)
	}

	return set
}

// Streak conta os dias de calendário consecutivos com check-in, andando para
// trás a partir de hoje. checkins deve estar em ordem decrescente de criação;
// a caminhada para na primeira lacuna.
func Streak(checkins []entities.WellnessCheckin, today time.Time) int {
	streak := 0
	for i, c := range checkins {
		expected := today.AddDate(0, 0, -i)
		if sameDay(c.CreatedAt, expected) {
			streak++
		} else {
			break
		}
	}
	return streak
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
