package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/margdarshak/career-intelligence-api/internal/domain/entities"
	"github.com/margdarshak/career-intelligence-api/internal/domain/repositories"
)

var (
	ErrProfileNotFound   = errors.New("user profile not found")
	ErrMilestoneNotFound = errors.New("milestone not found")
)

// RecommendationUseCase implementa recomendações de carreira e cursos, o
// mapeamento curso → carreira e os planos de carreira com marcos.
type RecommendationUseCase struct {
	recommendationRepo repositories.IRecommendationRepository
	userRepo           repositories.IUserRepository
	assessmentRepo     repositories.IAssessmentRepository
	generator          TextGenerator
}

// NewRecommendationUseCase cria uma nova instância de RecommendationUseCase
func NewRecommendationUseCase(
	recommendationRepo repositories.IRecommendationRepository,
	userRepo repositories.IUserRepository,
	assessmentRepo repositories.IAssessmentRepository,
	generator TextGenerator,
) *RecommendationUseCase {
	return &RecommendationUseCase{
		recommendationRepo: recommendationRepo,
		userRepo:           userRepo,
		assessmentRepo:     assessmentRepo,
		generator:          generator,
	}
}

// RoadmapMilestoneInput é um marco do plano na criação
type RoadmapMilestoneInput struct {
	Title       string                 `json:"title" validate:"required,min=3,max=100"`
	Description string                 `json:"description,omitempty" validate:"omitempty,max=300"`
	Type        string                 `json:"type" validate:"required,oneof=COURSE PROJECT SKILL CERTIFICATION EXPERIENCE"`
	Resources   map[string]interface{} `json:"resources,omitempty"`
}

// RoadmapInput carrega os campos de criação de um plano de carreira
type RoadmapInput struct {
	Title       string                  `json:"title" validate:"required,min=3,max=100"`
	Description string                  `json:"description,omitempty" validate:"omitempty,max=500"`
	TargetRole  string                  `json:"targetRole" validate:"required,min=2,max=100"`
	Milestones  []RoadmapMilestoneInput `json:"milestones" validate:"required,min=1,dive"`
}

// CourseRecommendation é uma sugestão de curso/graduação para o estudante
type CourseRecommendation struct {
	CourseName    string   `json:"courseName"`
	Reason        string   `json:"reason"`
	Duration      string   `json:"duration"`
	CareerPaths   []string `json:"careerPaths"`
	SalaryRange   string   `json:"salaryRange"`
	TopColleges   []string `json:"topColleges"`
	EntranceExams []string `json:"entranceExams"`
}

// CareerRecommendation é uma sugestão de trajetória profissional
type CareerRecommendation struct {
	CareerTitle     string   `json:"careerTitle"`
	Description     string   `json:"description"`
	RequiredSkills  []string `json:"requiredSkills"`
	EducationalPath string   `json:"educationalPath"`
	AverageSalary   string   `json:"averageSalary"`
	GrowthProspects string   `json:"growthProspects"`
	MarketDemand    string   `json:"marketDemand"`
}

// CareerResourcePack é a resposta de GET /career/:role
type CareerResourcePack struct {
	Role            string          `json:"role"`
	Recommendations roleResources   `json:"recommendations"`
	Personalization personalization `json:"personalization"`
}

type roleResources struct {
	CareerResources
	SuggestedNewSkills []string `json:"suggestedNewSkills"`
}

type personalization struct {
	BasedOnSkills    []string `json:"basedOnSkills"`
	BasedOnInterests []string `json:"basedOnInterests"`
}

// GetCareerResources retorna o material de estudo de uma carreira, filtrando
// as habilidades que o estudante já declarou no perfil.
func (u *RecommendationUseCase) GetCareerResources(userID, role string) (*CareerResourcePack, error) {
	normalized := strings.ToLower(strings.Join(strings.Fields(role), "-"))

	resources, ok := careerResources[normalized]
	if !ok {
		resources = careerResources["software-engineer"]
	}

	var userSkills, userInterests []string
	if profile, err := u.userRepo.GetProfile(userID); err == nil && profile != nil {
		userSkills = profile.Skills
		userInterests = profile.Interests
	}
	if userSkills == nil {
		userSkills = []string{}
	}
	if userInterests == nil {
		userInterests = []string{}
	}

	newSkills := []string{}
	for _, skill := range resources.Skills {
		if !containsFold(userSkills, skill) {
			newSkills = append(newSkills, skill)
		}
	}
	if len(newSkills) > 5 {
		newSkills = newSkills[:5]
	}

	return &CareerResourcePack{
		Role: role,
		Recommendations: roleResources{
			CareerResources:    resources,
			SuggestedNewSkills: newSkills,
		},
		Personalization: personalization{
			BasedOnSkills:    userSkills,
			BasedOnInterests: userInterests,
		},
	}, nil
}

// CreateRoadmap grava o plano com os marcos numerados na ordem enviada
func (u *RecommendationUseCase) CreateRoadmap(userID string, input RoadmapInput) (*entities.CareerRoadmap, error) {
	now := time.Now()
	roadmap := &entities.CareerRoadmap{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		TargetRole:  input.TargetRole,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for i, m := range input.Milestones {
		roadmap.Milestones = append(roadmap.Milestones, entities.RoadmapMilestone{
			ID:          uuid.NewString(),
			RoadmapID:   roadmap.ID,
			Title:       m.Title,
			Description: m.Description,
			Type:        m.Type,
			Resources:   entities.JSONMap(m.Resources),
			Order:       i + 1,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if err := u.recommendationRepo.CreateRoadmap(roadmap); err != nil {
		return nil, err
	}
	return roadmap, nil
}

// GetRoadmaps lista os planos do usuário com os marcos em ordem
func (u *RecommendationUseCase) GetRoadmaps(userID string) ([]entities.CareerRoadmap, error) {
	return u.recommendationRepo.FindRoadmaps(userID)
}

// CompleteMilestone marca (ou desmarca) um marco e recalcula o progresso do
// plano como porcentagem de marcos concluídos.
func (u *RecommendationUseCase) CompleteMilestone(userID, milestoneID string, isCompleted bool) (*entities.RoadmapMilestone, float64, error) {
	milestone, err := u.recommendationRepo.FindMilestone(milestoneID, userID)
	if err != nil {
		return nil, 0, err
	}
	if milestone == nil {
		return nil, 0, ErrMilestoneNotFound
	}

	milestone.IsCompleted = isCompleted
	milestone.UpdatedAt = time.Now()
	if err := u.recommendationRepo.UpdateMilestone(milestone); err != nil {
		return nil, 0, err
	}

	milestones, err := u.recommendationRepo.FindMilestonesByRoadmap(milestone.RoadmapID)
	if err != nil {
		return nil, 0, err
	}

	completed := 0
	for _, m := range milestones {
		if m.IsCompleted {
			completed++
		}
	}
	progress := 0.0
	if len(milestones) > 0 {
		progress = float64(completed) / float64(len(milestones)) * 100
	}

	if err := u.recommendationRepo.UpdateRoadmapProgress(milestone.RoadmapID, progress); err != nil {
		return nil, 0, err
	}
	return milestone, progress, nil
}

// RecommendationSet embala as sugestões e a origem (IA ou fallback)
type RecommendationSet struct {
	Recommendations interface{} `json:"recommendations"`
	Source          string      `json:"source"`
}

// GetCourseRecommendations pede à IA cursos adequados ao perfil e aos
// resultados das avaliações; em qualquer falha cai na regra determinística.
func (u *RecommendationUseCase) GetCourseRecommendations(ctx context.Context, userID string) (*RecommendationSet, error) {
	profile, err := u.userRepo.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	prompt := u.buildCoursePrompt(userID, profile)
	var recommendations []CourseRecommendation
	if u.tryGenerate(ctx, prompt, &recommendations) && len(recommendations) > 0 {
		return &RecommendationSet{Recommendations: recommendations, Source: "ai"}, nil
	}
	return &RecommendationSet{Recommendations: ruleBasedCourseRecommendations(profile), Source: "fallback"}, nil
}

// GetCareerRecommendations pede à IA trajetórias de carreira para o perfil;
// em qualquer falha cai na regra determinística.
func (u *RecommendationUseCase) GetCareerRecommendations(ctx context.Context, userID string) (*RecommendationSet, error) {
	profile, err := u.userRepo.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	prompt := u.buildCareerPrompt(userID, profile)
	var recommendations []CareerRecommendation
	if u.tryGenerate(ctx, prompt, &recommendations) && len(recommendations) > 0 {
		return &RecommendationSet{Recommendations: recommendations, Source: "ai"}, nil
	}
	return &RecommendationSet{Recommendations: ruleBasedCareerRecommendations(profile), Source: "fallback"}, nil
}

// GetCourseMapping retorna o mapeamento de um curso ou a tabela completa
func (u *RecommendationUseCase) GetCourseMapping(course string) interface{} {
	if course != "" {
		if mapping, ok := courseCareerMapping[course]; ok {
			return map[string]interface{}{"course": course, "mapping": mapping}
		}
	}
	return map[string]interface{}{"mappings": courseCareerMapping}
}

// GetCourses lista o catálogo de cursos com filtros de nível e área
func (u *RecommendationUseCase) GetCourses(filters repositories.CourseFilters) ([]entities.Course, error) {
	return u.recommendationRepo.FindCourses(filters)
}

// tryGenerate chama a IA e decodifica a resposta JSON em out; retorna false
// em qualquer erro para o chamador usar o fallback.
func (u *RecommendationUseCase) tryGenerate(ctx context.Context, prompt string, out interface{}) bool {
	if u.generator == nil {
		return false
	}
	text, err := u.generator.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("⚠️ AI recommendations unavailable, using fallback: %v", err)
		return false
	}
	if err := json.Unmarshal([]byte(trimJSONFences(text)), out); err != nil {
		log.Printf("⚠️ AI recommendations unparsable, using fallback: %v", err)
		return false
	}
	return true
}

func (u *RecommendationUseCase) buildCoursePrompt(userID string, profile *entities.UserProfile) string {
	var sb strings.Builder
	sb.WriteString("You are an expert career counselor for Indian students. Based on the following student profile, recommend 5 most suitable courses/degree programs:\n\n")
	u.writeProfile(&sb, profile, true)
	u.writeAssessmentResults(&sb, userID)
	sb.WriteString("\nFor each recommendation, provide: course name, brief reason why it matches the student, duration, top 3 career paths, average salary range in India, top 3 colleges in India, main entrance exams.\n")
	sb.WriteString("Format as JSON array with objects containing: courseName, reason, duration, careerPaths, salaryRange, topColleges, entranceExams.")
	return sb.String()
}

func (u *RecommendationUseCase) buildCareerPrompt(userID string, profile *entities.UserProfile) string {
	var sb strings.Builder
	sb.WriteString("Based on this student's profile and assessment results, recommend 5 specific career paths with detailed information:\n\n")
	u.writeProfile(&sb, profile, false)
	u.writeAssessmentResults(&sb, userID)
	sb.WriteString("\nFor each career recommendation, provide: career title, description (2-3 sentences), required skills, educational path, average salary in India, growth prospects, job market demand.\n")
	sb.WriteString("Format as JSON array with objects containing: careerTitle, description, requiredSkills, educationalPath, averageSalary, growthProspects, marketDemand.")
	return sb.String()
}

func (u *RecommendationUseCase) writeProfile(sb *strings.Builder, profile *entities.UserProfile, full bool) {
	sb.WriteString("Student Profile:\n")
	if full {
		if profile.Age != nil {
			fmt.Fprintf(sb, "- Age: %d\n", *profile.Age)
		}
		if profile.Class != "" {
			fmt.Fprintf(sb, "- Class: %s\n", profile.Class)
		}
		if profile.Location != "" {
			fmt.Fprintf(sb, "- Location: %s\n", profile.Location)
		}
	}
	if len(profile.Interests) > 0 {
		fmt.Fprintf(sb, "- Interests: %s\n", strings.Join(profile.Interests, ", "))
	}
	if len(profile.CareerGoals) > 0 {
		fmt.Fprintf(sb, "- Career Goals: %s\n", strings.Join(profile.CareerGoals, ", "))
	}
	if profile.AcademicPerformance != "" {
		fmt.Fprintf(sb, "- Academic Performance: %s\n", profile.AcademicPerformance)
	}
}

func (u *RecommendationUseCase) writeAssessmentResults(sb *strings.Builder, userID string) {
	completed, err := u.assessmentRepo.FindCompletedWithResults(userID)
	if err != nil || len(completed) == 0 {
		return
	}
	sb.WriteString("\nAssessment Results:\n")
	for _, a := range completed {
		percentage := 0.0
		if a.Result != nil {
			percentage = a.Result.Percentage
		}
		fmt.Fprintf(sb, "%s: %.1f%%\n", a.Type, percentage)
	}
}

// containsFold verifica presença na lista sem diferenciar maiúsculas
func containsFold(list []string, value string) bool {
	for _, item := range list {
		if strings.EqualFold(item, value) {
			return true
		}
	}
	return false
}

// trimJSONFences remove o bloco ```json ... ``` que o modelo costuma
// devolver em volta do corpo
func trimJSONFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	}
	return strings.TrimSpace(text)
}
