package scoring

// TemplateQuestion é uma pergunta do template antes de ser instanciada
type TemplateQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Category string   `json:"category"`
	Weight   float64  `json:"weight"`
}

// Template define uma avaliação disponível para o usuário
type Template struct {
	Type        AssessmentType     `json:"type"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	TimeLimit   int                `json:"timeLimit"`
	Questions   []TemplateQuestion `json:"questions"`
}

var agreementOptions = []string{"Strongly Agree", "Agree", "Neutral", "Disagree", "Strongly Disagree"}
var proficiencyOptions = []string{"Expert", "Advanced", "Intermediate", "Beginner", "No experience"}
var importanceOptions = []string{"Extremely Important", "Very Important", "Moderately Important", "Slightly Important", "Not Important"}

// DefaultTemplates retorna a tabela estática de templates. Construída uma vez
// na inicialização e injetada no usecase.
func DefaultTemplates() map[AssessmentType]Template {
	return map[AssessmentType]Template{
		TypeAptitude: {
			Type:        TypeAptitude,
			Title:       "Career Aptitude Assessment",
			Description: "Discover your natural abilities and suitable career paths",
			TimeLimit:   20,
			Questions: []TemplateQuestion{
				{Question: "I excel at solving complex mathematical problems and working with numbers", Options: agreementOptions, Category: "Logical-Mathematical", Weight: 1.0},
				{Question: "I prefer working with my hands and building physical things", Options: agreementOptions, Category: "Kinesthetic", Weight: 1.0},
				{Question: "I enjoy reading, writing, and expressing complex ideas through words", Options: agreementOptions, Category: "Linguistic", Weight: 1.0},
				{Question: "I like analyzing data, finding patterns, and drawing conclusions", Options: agreementOptions, Category: "Analytical", Weight: 1.0},
				{Question: "I enjoy helping others and working collaboratively in teams", Options: agreementOptions, Category: "Interpersonal", Weight: 1.0},
				{Question: "I prefer working independently and setting my own pace", Options: agreementOptions, Category: "Intrapersonal", Weight: 1.0},
				{Question: "I enjoy creating art, music, or other creative works", Options: agreementOptions, Category: "Creative", Weight: 1.0},
				{Question: "I like understanding how things work and conducting experiments", Options: agreementOptions, Category: "Scientific", Weight: 1.0},
				{Question: "I enjoy organizing events, leading groups, and taking charge", Options: agreementOptions, Category: "Leadership", Weight: 1.0},
				{Question: "I prefer detailed, systematic work over open-ended creative tasks", Options: agreementOptions, Category: "Systematic", Weight: 1.0},
				{Question: "I can easily visualize objects in 3D and understand spatial relationships", Options: agreementOptions, Category: "Spatial", Weight: 1.0},
				{Question: "I have a good sense of rhythm and can easily learn musical patterns", Options: agreementOptions, Category: "Musical", Weight: 1.0},
			},
		},
		TypeInterest: {
			Type:        TypeInterest,
			Title:       "Career Interest Inventory",
			Description: "Identify your interests and matching career fields",
			TimeLimit:   15,
			Questions: []TemplateQuestion{
				{Question: "Which activity interests you most?", Options: []string{"Conducting scientific research", "Teaching and mentoring others", "Creating artistic works", "Managing business operations", "Helping people solve problems"}, Category: "Primary Interest", Weight: 1.2},
				{Question: "In your free time, you prefer to:", Options: []string{"Read about new technologies", "Volunteer for social causes", "Write or create content", "Plan and organize events", "Exercise or play sports"}, Category: "Leisure Preference", Weight: 1.0},
				{Question: "Which subject did you enjoy most in school?", Options: []string{"Mathematics and Science", "Literature and History", "Art and Music", "Business Studies", "Physical Education"}, Category: "Academic Interest", Weight: 1.0},
				{Question: "Your ideal work environment would be:", Options: []string{"Laboratory or research facility", "School or community center", "Studio or creative space", "Corporate office", "Outdoor or varied locations"}, Category: "Work Environment", Weight: 1.0},
				{Question: "Which career field excites you most?", Options: []string{"Technology and Innovation", "Education and Social Work", "Arts and Entertainment", "Business and Finance", "Healthcare and Medicine"}, Category: "Career Field", Weight: 1.2},
				{Question: "When working on projects, you prefer:", Options: []string{"Researching and analyzing data", "Collaborating with diverse teams", "Designing and creating", "Planning and executing strategies", "Providing direct service to others"}, Category: "Work Style", Weight: 1.0},
				{Question: "What motivates you most in work?", Options: []string{"Discovering new knowledge", "Making a positive impact on society", "Expressing creativity", "Achieving financial success", "Helping individuals directly"}, Category: "Motivation", Weight: 1.1},
				{Question: "Which type of problem-solving appeals to you?", Options: []string{"Technical and logical problems", "Social and interpersonal issues", "Creative and design challenges", "Strategic and business problems", "Health and wellness concerns"}, Category: "Problem Solving", Weight: 1.0},
			},
		},
		TypePersonality: {
			Type:        TypePersonality,
			Title:       "Personality Type Assessment",
			Description: "Understand your personality traits and work style preferences",
			TimeLimit:   18,
			Questions: []TemplateQuestion{
				{Question: "In social situations, I usually:", Options: []string{"Take charge and lead conversations", "Listen more than I speak", "Adapt to the group's energy", "Prefer one-on-one interactions", "Feel energized by large groups"}, Category: "Social Style", Weight: 1.0},
				{Question: "When making decisions, I rely more on:", Options: []string{"Logic and objective facts", "Intuition and gut feelings", "Past experiences and patterns", "Others' opinions and consensus", "Detailed analysis and research"}, Category: "Decision Making", Weight: 1.1},
				{Question: "I work best when:", Options: []string{"I have a detailed plan and structure", "I can be flexible and spontaneous", "I have clear deadlines and goals", "I can work at my own pace", "I have variety in my tasks"}, Category: "Work Style", Weight: 1.0},
				{Question: "Under pressure, I tend to:", Options: []string{"Stay calm and focused", "Seek help from others", "Take breaks to recharge", "Push through with determination", "Break tasks into smaller steps"}, Category: "Stress Response", Weight: 1.0},
				{Question: "I am most motivated by:", Options: []string{"Achievement and recognition", "Learning and personal growth", "Helping others succeed", "Creative expression", "Financial rewards"}, Category: "Motivation", Weight: 1.1},
				{Question: "When learning new things, I prefer to:", Options: []string{"Read and study independently", "Discuss with others", "Learn by doing hands-on", "Watch demonstrations", "Take structured courses"}, Category: "Learning Style", Weight: 1.0},
				{Question: "In team projects, I naturally:", Options: []string{"Take the leadership role", "Support and encourage others", "Focus on creative ideas", "Handle detailed planning", "Ensure quality and accuracy"}, Category: "Team Role", Weight: 1.0},
				{Question: "I prefer work that is:", Options: []string{"Predictable and routine", "Varied and changing", "Challenging and complex", "Collaborative and social", "Independent and autonomous"}, Category: "Work Preference", Weight: 1.0},
			},
		},
		TypeSkill: {
			Type:        TypeSkill,
			Title:       "Skills Assessment",
			Description: "Evaluate your current skills and identify areas for development",
			TimeLimit:   25,
			Questions: []TemplateQuestion{
				{Question: "Rate your proficiency in written communication:", Options: proficiencyOptions, Category: "Communication", Weight: 1.0},
				{Question: "Rate your proficiency in public speaking and presentations:", Options: proficiencyOptions, Category: "Communication", Weight: 1.0},
				{Question: "Rate your proficiency in data analysis and interpretation:", Options: proficiencyOptions, Category: "Analytical", Weight: 1.0},
				{Question: "Rate your proficiency in project management:", Options: proficiencyOptions, Category: "Management", Weight: 1.0},
				{Question: "Rate your proficiency in computer programming:", Options: proficiencyOptions, Category: "Technical", Weight: 1.0},
				{Question: "Rate your proficiency in creative design (visual/graphic):", Options: proficiencyOptions, Category: "Creative", Weight: 1.0},
				{Question: "Rate your proficiency in financial analysis and budgeting:", Options: proficiencyOptions, Category: "Financial", Weight: 1.0},
				{Question: "Rate your proficiency in research and information gathering:", Options: proficiencyOptions, Category: "Research", Weight: 1.0},
				{Question: "Rate your proficiency in team leadership:", Options: proficiencyOptions, Category: "Leadership", Weight: 1.0},
				{Question: "Rate your proficiency in problem-solving and critical thinking:", Options: proficiencyOptions, Category: "Analytical", Weight: 1.0},
			},
		},
		TypeCareerValues: {
			Type:        TypeCareerValues,
			Title:       "Career Values Assessment",
			Description: "Identify what matters most to you in your career",
			TimeLimit:   12,
			Questions: []TemplateQuestion{
				{Question: "How important is work-life balance to you?", Options: importanceOptions, Category: "Lifestyle", Weight: 1.0},
				{Question: "How important is high salary and financial rewards?", Options: importanceOptions, Category: "Financial", Weight: 1.0},
				{Question: "How important is job security and stability?", Options: importanceOptions, Category: "Security", Weight: 1.0},
				{Question: "How important is making a positive impact on society?", Options: importanceOptions, Category: "Purpose", Weight: 1.0},
				{Question: "How important is creative expression in your work?", Options: importanceOptions, Category: "Creativity", Weight: 1.0},
				{Question: "How important is career advancement and growth opportunities?", Options: importanceOptions, Category: "Growth", Weight: 1.0},
			},
		},
		TypeLearningStyle: {
			Type:        TypeLearningStyle,
			Title:       "Learning Style Assessment",
			Description: "Discover how you learn best and optimize your study approach",
			TimeLimit:   10,
			Questions: []TemplateQuestion{
				{Question: "I learn best when information is presented:", Options: []string{"Visually with charts and diagrams", "Through listening and discussion", "Through hands-on practice", "Through reading and writing"}, Category: "Input Style", Weight: 1.0},
				{Question: "When studying, I prefer to:", Options: []string{"Work alone in quiet spaces", "Study with others in groups", "Move around while learning", "Have background music or noise"}, Category: "Environment", Weight: 1.0},
				{Question: "I remember information better when I:", Options: []string{"See it written or drawn", "Hear it explained", "Practice it myself", "Discuss it with others"}, Category: "Retention", Weight: 1.0},
				{Question: "When learning new skills, I prefer to:", Options: []string{"Follow step-by-step instructions", "Learn through trial and error", "Watch someone demonstrate first", "Jump in and figure it out"}, Category: "Approach", Weight: 1.0},
			},
		},
	}
}
