package scoring

import "sort"

// Algorithm converte a lista ordenada de respostas em um Result.
// Todos os algoritmos são puros e determinísticos, sem I/O.
type Algorithm func(responses []Response) Result

// Registry despacha o algoritmo pelo tipo da avaliação. As tabelas são
// imutáveis e construídas uma vez na inicialização do processo.
type Registry struct {
	algorithms map[AssessmentType]Algorithm
}

// NewRegistry cria o registro com um algoritmo por tipo conhecido
func NewRegistry() *Registry {
	return &Registry{
		algorithms: map[AssessmentType]Algorithm{
			TypeAptitude:      scoreAptitude,
			TypeInterest:      scoreInterest,
			TypePersonality:   scorePersonality,
			TypeSkill:         scoreSkill,
			TypeCareerValues:  scoreCareerValues,
			TypeLearningStyle: scoreLearningStyle,
		},
	}
}

// Score aplica o algoritmo do tipo informado. Um tipo desconhecido cai no
// scorer genérico, que trata cada resposta como valendo 3 de 5 pontos.
func (r *Registry) Score(t AssessmentType, responses []Response) Result {
	if alg, ok := r.algorithms[t]; ok {
		return alg(responses)
	}
	return scoreGeneric(responses)
}

type categoryAccum struct {
	score    float64
	maxScore float64
	count    int
}

// scoreAptitude: ordinal da escala de concordância × peso da pergunta,
// agregado por categoria.
func scoreAptitude(responses []Response) Result {
	categories := map[string]*categoryAccum{}
	var totalScore, maxPossible float64

	for _, r := range responses {
		weight := r.Question.Weight
		score := ordinalFor(agreementScale, r.Answer) * weight
		totalScore += score
		maxPossible += 5 * weight

		acc, ok := categories[r.Question.Category]
		if !ok {
			acc = &categoryAccum{}
			categories[r.Question.Category] = acc
		}
		acc.score += score
		acc.maxScore += 5 * weight
		acc.count++
	}

	categoryScores := make(map[string]CategoryScore, len(categories))
	for category, acc := range categories {
		categoryScores[category] = CategoryScore{
			Score:      acc.score,
			MaxScore:   floatPtr(acc.maxScore),
			Percentage: (acc.score / acc.maxScore) * 100,
			Count:      intPtr(acc.count),
		}
	}

	return Result{
		OverallScore:   totalScore,
		Percentage:     safePercentage(totalScore, maxPossible),
		CategoryScores: categoryScores,
	}
}

// scoreInterest soma o peso por resposta literal (não por categoria) e expõe
// as 3 mais pontuadas. O máximo possível é aproximado como len×1.2 (maior
// peso observado nos templates), então a porcentagem pode passar de 100.
// Comportamento documentado, não um bug.
func scoreInterest(responses []Response) Result {
	weights := map[string]float64{}
	var order []string
	var totalScore float64

	for _, r := range responses {
		if _, seen := weights[r.Answer]; !seen {
			order = append(order, r.Answer)
		}
		weights[r.Answer] += r.Question.Weight
		totalScore += r.Question.Weight
	}

	// Ordenação estável: empates mantêm a ordem de primeira ocorrência
	sort.SliceStable(order, func(i, j int) bool {
		return weights[order[i]] > weights[order[j]]
	})
	if len(order) > 3 {
		order = order[:3]
	}

	categoryScores := make(map[string]CategoryScore, len(order))
	for _, answer := range order {
		categoryScores[answer] = CategoryScore{
			Score:      weights[answer],
			Percentage: safePercentage(weights[answer], totalScore),
		}
	}

	maxPossible := float64(len(responses)) * 1.2

	return Result{
		OverallScore:   totalScore,
		Percentage:     safePercentage(totalScore, maxPossible),
		CategoryScores: categoryScores,
	}
}

type traitAccum struct {
	score    float64
	maxScore float64
	answers  []string
}

// scorePersonality usa a posição (1-indexada) da resposta dentro das opções
// da própria pergunta, já que o texto das opções varia por pergunta.
// dominantResponse é a primeira resposta encontrada na categoria, não a moda.
func scorePersonality(responses []Response) Result {
	traits := map[string]*traitAccum{}
	var totalScore, maxPossible float64

	for _, r := range responses {
		weight := r.Question.Weight
		score := float64(optionIndex(r.Question.Options, r.Answer)+1) * weight
		totalScore += score
		maxPossible += 5 * weight

		acc, ok := traits[r.Question.Category]
		if !ok {
			acc = &traitAccum{}
			traits[r.Question.Category] = acc
		}
		acc.score += score
		acc.maxScore += 5 * weight
		acc.answers = append(acc.answers, r.Answer)
	}

	categoryScores := make(map[string]CategoryScore, len(traits))
	for trait, acc := range traits {
		categoryScores[trait] = CategoryScore{
			Score:            acc.score,
			Percentage:       safePercentage(acc.score, acc.maxScore),
			DominantResponse: acc.answers[0],
		}
	}

	return Result{
		OverallScore:   totalScore,
		Percentage:     safePercentage(totalScore, maxPossible),
		CategoryScores: categoryScores,
	}
}

// scoreSkill: escala de proficiência sem peso; por categoria expõe a média
// e a faixa qualitativa correspondente.
func scoreSkill(responses []Response) Result {
	skills := map[string]*categoryAccum{}
	var totalScore, maxPossible float64

	for _, r := range responses {
		score := ordinalFor(proficiencyScale, r.Answer)
		totalScore += score
		maxPossible += 5

		acc, ok := skills[r.Question.Category]
		if !ok {
			acc = &categoryAccum{}
			skills[r.Question.Category] = acc
		}
		acc.score += score
		acc.maxScore += 5
		acc.count++
	}

	categoryScores := make(map[string]CategoryScore, len(skills))
	for skill, acc := range skills {
		avg := acc.score / float64(acc.count)
		categoryScores[skill] = CategoryScore{
			Score:        acc.score,
			AverageScore: floatPtr(avg),
			Percentage:   (avg / 5) * 100,
			Level:        skillLevel(avg),
		}
	}

	return Result{
		OverallScore:   totalScore,
		Percentage:     safePercentage(totalScore, maxPossible),
		CategoryScores: categoryScores,
	}
}

func skillLevel(avg float64) string {
	switch {
	case avg >= 4:
		return "Advanced"
	case avg >= 3:
		return "Intermediate"
	case avg >= 2:
		return "Beginner"
	default:
		return "No experience"
	}
}

// scoreCareerValues: escala de importância sem peso; cada categoria guarda a
// última resposta dada (uma pergunta por categoria nos templates).
func scoreCareerValues(responses []Response) Result {
	categoryScores := map[string]CategoryScore{}
	var totalScore, maxPossible float64

	for _, r := range responses {
		score := ordinalFor(importanceScale, r.Answer)
		totalScore += score
		maxPossible += 5

		categoryScores[r.Question.Category] = CategoryScore{
			Score:      score,
			Percentage: (score / 5) * 100,
			Importance: r.Answer,
		}
	}

	return Result{
		OverallScore:   totalScore,
		Percentage:     safePercentage(totalScore, maxPossible),
		CategoryScores: categoryScores,
	}
}

// scoreLearningStyle conta a frequência bruta de cada resposta; o estilo
// dominante é o mais frequente, com empate decidido pela primeira ocorrência.
// A porcentagem é fixa em 100 quando há respostas (mede conclusão, não
// qualidade).
func scoreLearningStyle(responses []Response) Result {
	counts := map[string]int{}
	var order []string

	for _, r := range responses {
		if _, seen := counts[r.Answer]; !seen {
			order = append(order, r.Answer)
		}
		counts[r.Answer]++
	}

	dominant := ""
	best := 0
	for _, style := range order {
		if counts[style] > best {
			dominant = style
			best = counts[style]
		}
	}

	total := len(responses)
	categoryScores := make(map[string]CategoryScore, len(counts))
	for style, count := range counts {
		categoryScores[style] = CategoryScore{
			Score:      float64(count),
			Percentage: safePercentage(float64(count), float64(total)),
		}
	}

	percentage := 0.0
	if total > 0 {
		percentage = 100
	}

	return Result{
		OverallScore:   float64(total),
		Percentage:     percentage,
		CategoryScores: categoryScores,
		DominantStyle:  dominant,
	}
}

// scoreGeneric é o fallback para tipos desconhecidos: cada resposta vale 3
// de 5 pontos, sem quebra por categoria.
func scoreGeneric(responses []Response) Result {
	n := float64(len(responses))
	return Result{
		OverallScore:   n * 3,
		Percentage:     safePercentage(n*3, n*5),
		CategoryScores: map[string]CategoryScore{},
	}
}

// safePercentage evita divisão por zero quando a lista de respostas é vazia
func safePercentage(score, max float64) float64 {
	if max == 0 {
		return 0
	}
	return (score / max) * 100
}

func optionIndex(options []string, answer string) int {
	for i, opt := range options {
		if opt == answer {
			return i
		}
	}
	return -1
}
