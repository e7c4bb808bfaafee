package analytics

import (
	"math"

	"github.com/margdarshak/career-intelligence-api/internal/domain/entities"
)

// WellnessScore combina um check-in em uma nota única de 0 a 10 com uma casa
// decimal. As métricas principais sempre entram na média; as opcionais só
// entram quando presentes, então o denominador é dinâmico. Estresse e
// ansiedade são invertidos (11 - valor) porque menor é melhor.
func WellnessScore(c entities.WellnessCheckin) float64 {
	total := float64(c.MoodScore + (11 - c.StressLevel) + c.EnergyLevel + c.SleepQuality + c.FocusLevel)
	count := 5

	if c.ProductivityScore != nil {
		total += float64(*c.ProductivityScore)
		count++
	}
	if c.MotivationLevel != nil {
		total += float64(*c.MotivationLevel)
		count++
	}
	if c.ConfidenceLevel != nil {
		total += float64(*c.ConfidenceLevel)
		count++
	}
	if c.AnxietyLevel != nil {
		total += float64(11 - *c.AnxietyLevel)
		count++
	}

	return math.Round(total/float64(count)*10) / 10
}
