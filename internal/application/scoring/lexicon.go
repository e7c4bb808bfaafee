package scoring

// Léxicos ordinais: mapeiam a resposta literal para um valor 1-5.
// Uma resposta fora do léxico vale o ordinal do meio (3) para tolerar
// divergência entre versões de template, nunca erro.

const defaultOrdinal = 3.0

var agreementScale = map[string]float64{
	"Strongly Agree":    5,
	"Agree":             4,
	"Neutral":           3,
	"Disagree":          2,
	"Strongly Disagree": 1,
}

var proficiencyScale = map[string]float64{
	"Expert":        5,
	"Advanced":      4,
	"Intermediate":  3,
	"Beginner":      2,
	"No experience": 1,
}

var importanceScale = map[string]float64{
	"Extremely Important":  5,
	"Very Important":       4,
	"Moderately Important": 3,
	"Slightly Important":   2,
	"Not Important":        1,
}

func ordinalFor(scale map[string]float64, answer string) float64 {
	if v, ok := scale[answer]; ok {
		return v
	}
	return defaultOrdinal
}
