package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/margdarshak/career-intelligence-api/internal/application/scoring"
	"github.com/margdarshak/career-intelligence-api/internal/domain/entities"
	"github.com/margdarshak/career-intelligence-api/internal/domain/repositories"
)

var (
	ErrAssessmentNotFound  = errors.New("assessment not found")
	ErrAssessmentCompleted = errors.New("assessment already completed")
	ErrUnknownAssessment   = errors.New("unknown assessment type")
	ErrIncompleteAnswers   = errors.New("all questions must be answered")
)

// NarrativeGenerator é o colaborador de IA. Qualquer erro leva ao fallback
// determinístico, nunca a uma falha do fluxo de submissão.
type NarrativeGenerator interface {
	GenerateNarrative(ctx context.Context, prompt string) (*scoring.Narrative, error)
}

// AssessmentUseCase implementa os casos de uso de avaliações
type AssessmentUseCase struct {
	assessmentRepo repositories.IAssessmentRepository
	userRepo       repositories.IUserRepository
	registry       *scoring.Registry
	templates      map[scoring.AssessmentType]scoring.Template
	narrator       NarrativeGenerator
}

// NewAssessmentUseCase cria uma nova instância de AssessmentUseCase
func NewAssessmentUseCase(
	assessmentRepo repositories.IAssessmentRepository,
	userRepo repositories.IUserRepository,
	registry *scoring.Registry,
	templates map[scoring.AssessmentType]scoring.Template,
	narrator NarrativeGenerator,
) *AssessmentUseCase {
	return &AssessmentUseCase{
		assessmentRepo: assessmentRepo,
		userRepo:       userRepo,
		registry:       registry,
		templates:      templates,
		narrator:       narrator,
	}
}

// AvailableAssessment descreve um template e se o usuário já o concluiu
type AvailableAssessment struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	TimeLimit   int    `json:"timeLimit"`
	Questions   int    `json:"questionCount"`
	IsCompleted bool   `json:"isCompleted"`
}

// GetAvailableAssessments lista os templates com o status de conclusão do usuário
func (u *AssessmentUseCase) GetAvailableAssessments(userID string) ([]AvailableAssessment, error) {
	available := make([]AvailableAssessment, 0, len(u.templates))
	for _, tpl := range u.templates {
		completed, err := u.assessmentRepo.HasCompletedType(userID, string(tpl.Type))
		if err != nil {
			return nil, err
		}
		available = append(available, AvailableAssessment{
			Type:        string(tpl.Type),
			Title:       tpl.Title,
			Description: tpl.Description,
			TimeLimit:   tpl.TimeLimit,
			Questions:   len(tpl.Questions),
			IsCompleted: completed,
		})
	}
	// Ordem estável para o cliente, já que o mapa de templates não tem ordem
	sort.Slice(available, func(i, j int) bool {
		return available[i].Type < available[j].Type
	})
	return available, nil
}

// GetUserAssessments retorna as avaliações já instanciadas do usuário
func (u *AssessmentUseCase) GetUserAssessments(userID string) ([]entities.Assessment, error) {
	return u.assessmentRepo.FindByUser(userID)
}

// StartAssessment instancia uma avaliação a partir do template do tipo pedido.
// As perguntas são copiadas do template e ficam imutáveis a partir daqui.
func (u *AssessmentUseCase) StartAssessment(userID, assessmentType string) (*entities.Assessment, error) {
	tpl, ok := u.templates[scoring.AssessmentType(assessmentType)]
	if !ok {
		return nil, ErrUnknownAssessment
	}

	now := time.Now()
	assessment := &entities.Assessment{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        string(tpl.Type),
		Title:       tpl.Title,
		Description: tpl.Description,
		TimeLimit:   tpl.TimeLimit,
		IsCompleted: false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	questions := make([]entities.AssessmentQuestion, 0, len(tpl.Questions))
	for i, q := range tpl.Questions {
		questions = append(questions, entities.AssessmentQuestion{
			ID:           uuid.NewString(),
			AssessmentID: assessment.ID,
			Question:     q.Question,
			Options:      q.Options,
			Category:     q.Category,
			Weight:       q.Weight,
			Order:        i,
		})
	}
	assessment.Questions = questions

	if err := u.assessmentRepo.CreateWithQuestions(assessment); err != nil {
		return nil, err
	}
	return assessment, nil
}

// SubmitAnswer é a resposta literal a uma pergunta da avaliação
type SubmitAnswer struct {
	QuestionID string `json:"questionId" validate:"required,uuid4"`
	Answer     string `json:"answer" validate:"required"`
}

// SubmitAssessment registra as respostas, pontua e gera a análise. A análise
// por IA é melhor-esforço: qualquer falha (chave ausente, rede, parse) cai no
// gerador determinístico e a submissão continua.
func (u *AssessmentUseCase) SubmitAssessment(ctx context.Context, userID, assessmentID string, answers []SubmitAnswer) (*entities.AssessmentResult, error) {
	assessment, err := u.assessmentRepo.FindPendingByID(assessmentID, userID)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		// Distinguir "não existe" de "já concluída" para o handler
		existing, err := u.assessmentRepo.FindByID(assessmentID, userID)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.IsCompleted {
			return nil, ErrAssessmentCompleted
		}
		return nil, ErrAssessmentNotFound
	}

	answerByQuestion := make(map[string]string, len(answers))
	for _, a := range answers {
		answerByQuestion[a.QuestionID] = a.Answer
	}

	responses := make([]entities.AssessmentResponse, 0, len(assessment.Questions))
	scoringInput := make([]scoring.Response, 0, len(assessment.Questions))
	for _, q := range assessment.Questions {
		answer, ok := answerByQuestion[q.ID]
		if !ok {
			return nil, ErrIncompleteAnswers
		}
		responses = append(responses, entities.AssessmentResponse{
			ID:           uuid.NewString(),
			AssessmentID: assessment.ID,
			QuestionID:   q.ID,
			Answer:       answer,
			CreatedAt:    time.Now(),
		})
		scoringInput = append(scoringInput, scoring.Response{Question: q, Answer: answer})
	}

	if err := u.assessmentRepo.CreateResponses(responses); err != nil {
		return nil, err
	}

	assessmentType := scoring.AssessmentType(assessment.Type)
	score := u.registry.Score(assessmentType, scoringInput)
	narrative := u.generateNarrative(ctx, assessment, assessmentType, scoringInput, score)

	result := buildResult(assessment.ID, score, narrative)
	if err := u.assessmentRepo.UpsertResult(result); err != nil {
		return nil, err
	}
	if err := u.assessmentRepo.MarkCompleted(assessment.ID); err != nil {
		return nil, err
	}
	return result, nil
}

// GetAssessmentResult retorna a avaliação concluída com perguntas, respostas e resultado
func (u *AssessmentUseCase) GetAssessmentResult(ctx context.Context, userID, assessmentID string) (*entities.Assessment, error) {
	assessment, err := u.assessmentRepo.FindByID(assessmentID, userID)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, ErrAssessmentNotFound
	}

	// Avaliações concluídas sem resultado (escrita antiga interrompida) são
	// reanalisadas na leitura.
	if assessment.IsCompleted && assessment.Result == nil {
		result, err := u.RegenerateAnalysis(ctx, userID, assessmentID)
		if err != nil {
			return nil, err
		}
		assessment.Result = result
	}
	return assessment, nil
}

// RegenerateAnalysis refaz a análise de uma avaliação já concluída a partir das
// respostas persistidas e sobrescreve o resultado anterior.
func (u *AssessmentUseCase) RegenerateAnalysis(ctx context.Context, userID, assessmentID string) (*entities.AssessmentResult, error) {
	assessment, err := u.assessmentRepo.FindByID(assessmentID, userID)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, ErrAssessmentNotFound
	}
	if !assessment.IsCompleted {
		return nil, ErrAssessmentNotFound
	}

	stored, err := u.assessmentRepo.FindResponsesWithQuestions(assessment.ID)
	if err != nil {
		return nil, err
	}

	scoringInput := make([]scoring.Response, 0, len(stored))
	for _, r := range stored {
		scoringInput = append(scoringInput, scoring.Response{Question: r.Question, Answer: r.Answer})
	}

	assessmentType := scoring.AssessmentType(assessment.Type)
	score := u.registry.Score(assessmentType, scoringInput)
	narrative := u.generateNarrative(ctx, assessment, assessmentType, scoringInput, score)

	result := buildResult(assessment.ID, score, narrative)
	if err := u.assessmentRepo.UpsertResult(result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssessmentAnalytics agrega as avaliações concluídas do usuário
type AssessmentAnalytics struct {
	TotalCompleted    int                   `json:"totalCompleted"`
	AveragePercentage float64               `json:"averagePercentage"`
	ByType            map[string]float64    `json:"byType"`
	TopCategories     []string              `json:"topCategories"`
	Recent            []entities.Assessment `json:"recent"`
}

// GetAnalytics resume as avaliações concluídas: média geral, porcentagem por
// tipo e as categorias mais fortes entre todos os resultados.
func (u *AssessmentUseCase) GetAnalytics(userID string) (*AssessmentAnalytics, error) {
	completed, err := u.assessmentRepo.FindCompletedWithResults(userID)
	if err != nil {
		return nil, err
	}

	analytics := &AssessmentAnalytics{
		ByType:        map[string]float64{},
		TopCategories: []string{},
		Recent:        completed,
	}
	if len(analytics.Recent) > 5 {
		analytics.Recent = analytics.Recent[:5]
	}

	type categoryStanding struct {
		name       string
		percentage float64
	}
	var standings []categoryStanding
	var percentageSum float64

	for _, a := range completed {
		if a.Result == nil {
			continue
		}
		analytics.TotalCompleted++
		percentageSum += a.Result.Percentage
		analytics.ByType[a.Type] = a.Result.Percentage

		for name, raw := range a.Result.CategoryScores {
			if entry, ok := raw.(map[string]interface{}); ok {
				if pct, ok := entry["percentage"].(float64); ok {
					standings = append(standings, categoryStanding{name: name, percentage: pct})
				}
			}
		}
	}

	if analytics.TotalCompleted > 0 {
		analytics.AveragePercentage = percentageSum / float64(analytics.TotalCompleted)
	}

	sort.Slice(standings, func(i, j int) bool {
		if standings[i].percentage != standings[j].percentage {
			return standings[i].percentage > standings[j].percentage
		}
		return standings[i].name < standings[j].name
	})
	for i, s := range standings {
		if i == 5 {
			break
		}
		analytics.TopCategories = append(analytics.TopCategories, s.name)
	}

	return analytics, nil
}

// generateNarrative tenta a IA primeiro e cai no gerador determinístico em
// qualquer erro. Nunca retorna nil.
func (u *AssessmentUseCase) generateNarrative(ctx context.Context, assessment *entities.Assessment, assessmentType scoring.AssessmentType, responses []scoring.Response, score scoring.Result) *scoring.Narrative {
	if u.narrator != nil {
		prompt := u.buildPrompt(assessment, responses, score)
		narrative, err := u.narrator.GenerateNarrative(ctx, prompt)
		if err == nil {
			return narrative
		}
		log.Printf("⚠️ AI analysis unavailable, using fallback: %v", err)
	}
	return scoring.FallbackNarrative(assessmentType, responses, score)
}

// buildPrompt monta o prompt da análise com as respostas, a pontuação e o
// contexto acadêmico do perfil (quando existir).
func (u *AssessmentUseCase) buildPrompt(assessment *entities.Assessment, responses []scoring.Response, score scoring.Result) string {
	var sb strings.Builder
	sb.WriteString("You are a career counselor for Indian students. Analyze the following ")
	sb.WriteString(assessment.Type)
	sb.WriteString(" assessment and respond ONLY with a JSON object containing the keys ")
	sb.WriteString(`analysis, questionAnalysis, strengths, improvementAreas, careerSuggestions, recommendations, nextSteps and detailedFeedback.`)
	sb.WriteString("\n\n")

	if profile, err := u.userRepo.GetProfile(assessment.UserID); err == nil && profile != nil {
		sb.WriteString("Student context: ")
		if profile.Age != nil {
			fmt.Fprintf(&sb, "age %d, ", *profile.Age)
		}
		if profile.Class != "" {
			fmt.Fprintf(&sb, "class %s, ", profile.Class)
		}
		if len(profile.Interests) > 0 {
			fmt.Fprintf(&sb, "interests: %s, ", strings.Join(profile.Interests, ", "))
		}
		if len(profile.CareerGoals) > 0 {
			fmt.Fprintf(&sb, "career goals: %s", strings.Join(profile.CareerGoals, ", "))
		}
		sb.WriteString("\n\n")
	}

	fmt.Fprintf(&sb, "Overall score: %.1f (%.1f%%)\n\nResponses:\n", score.OverallScore, score.Percentage)
	for i, r := range responses {
		fmt.Fprintf(&sb, "%d. [%s] %s -> %s\n", i+1, r.Question.Category, r.Question.Question, r.Answer)
	}
	return sb.String()
}

// buildResult converte a pontuação e a narrativa na entidade persistível
func buildResult(assessmentID string, score scoring.Result, narrative *scoring.Narrative) *entities.AssessmentResult {
	now := time.Now()
	traits := entities.JSONMap{
		"strengths":         narrative.Strengths,
		"improvementAreas":  narrative.ImprovementAreas,
		"careerSuggestions": narrative.CareerSuggestions,
		"nextSteps":         narrative.NextSteps,
		"questionAnalysis":  narrative.QuestionAnalysis,
		"detailedFeedback":  narrative.DetailedFeedback,
	}
	if score.DominantStyle != "" {
		traits["dominantStyle"] = score.DominantStyle
	}

	return &entities.AssessmentResult{
		ID:              uuid.NewString(),
		AssessmentID:    assessmentID,
		OverallScore:    score.OverallScore,
		Percentage:      score.Percentage,
		CategoryScores:  toJSONMap(score.CategoryScores),
		Insights:        narrative.Analysis,
		Recommendations: narrative.Recommendations,
		Traits:          traits,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// toJSONMap serializa uma estrutura tipada para a forma jsonb genérica
func toJSONMap(v interface{}) entities.JSONMap {
	data, err := json.Marshal(v)
	if err != nil {
		return entities.JSONMap{}
	}
	var m entities.JSONMap
	if err := json.Unmarshal(data, &m); err != nil {
		return entities.JSONMap{}
	}
	return m
}
