package usecases

import (
	"github.com/margdarshak/career-intelligence-api/internal/domain/entities"
)

// CourseCareerMapping resume o que um curso abre de portas
type CourseCareerMapping struct {
	Careers       []string `json:"careers"`
	Skills        []string `json:"skills"`
	AverageSalary string   `json:"averageSalary"`
	TopColleges   []string `json:"topColleges"`
	EntranceExams []string `json:"entranceExams"`
}

// ResourceCourse é um curso online sugerido para uma carreira
type ResourceCourse struct {
	Title      string `json:"title"`
	Provider   string `json:"provider"`
	URL        string `json:"url"`
	Difficulty string `json:"difficulty"`
}

// ResourceProject é um projeto prático sugerido para uma carreira
type ResourceProject struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CareerResources agrupa o material de estudo estático de uma carreira
type CareerResources struct {
	Courses  []ResourceCourse  `json:"courses"`
	Skills   []string          `json:"skills"`
	Projects []ResourceProject `json:"projects"`
}

// Mapeamento estático curso → carreiras, no lugar de um modelo de ML
var courseCareerMapping = map[string]CourseCareerMapping{
	"Computer Science Engineering": {
		Careers:       []string{"Software Engineer", "Data Scientist", "Product Manager", "Tech Entrepreneur", "AI/ML Engineer"},
		Skills:        []string{"Programming", "Data Structures", "Algorithms", "System Design"},
		AverageSalary: "₹6-25 LPA",
		TopColleges:   []string{"IIT Delhi", "IIT Bombay", "BITS Pilani", "NIT Trichy"},
		EntranceExams: []string{"JEE Main", "JEE Advanced", "BITSAT"},
	},
	"MBBS": {
		Careers:       []string{"General Physician", "Specialist Doctor", "Surgeon", "Medical Researcher", "Public Health Officer"},
		Skills:        []string{"Medical Knowledge", "Patient Care", "Communication", "Empathy"},
		AverageSalary: "₹8-30 LPA",
		TopColleges:   []string{"AIIMS Delhi", "CMC Vellore", "JIPMER", "KGMU"},
		EntranceExams: []string{"NEET UG"},
	},
	"Mechanical Engineering": {
		Careers:       []string{"Mechanical Engineer", "Automotive Engineer", "Manufacturing Engineer", "Design Engineer"},
		Skills:        []string{"CAD/CAM", "Thermodynamics", "Manufacturing", "Problem Solving"},
		AverageSalary: "₹4-15 LPA",
		TopColleges:   []string{"IIT Madras", "IIT Kharagpur", "NIT Warangal"},
		EntranceExams: []string{"JEE Main", "JEE Advanced"},
	},
	"Business Administration": {
		Careers:       []string{"Business Analyst", "Marketing Manager", "Consultant", "Entrepreneur", "Operations Manager"},
		Skills:        []string{"Leadership", "Finance", "Marketing", "Strategy", "Communication"},
		AverageSalary: "₹5-20 LPA",
		TopColleges:   []string{"IIM Ahmedabad", "ISB Hyderabad", "XLRI Jamshedpur"},
		EntranceExams: []string{"CAT", "XAT", "GMAT"},
	},
}

// Material de estudo por carreira normalizada (minúsculas com hífen)
var careerResources = map[string]CareerResources{
	"software-engineer": {
		Courses: []ResourceCourse{
			{Title: "JavaScript Fundamentals", Provider: "FreeCodeCamp", URL: "https://freecodecamp.org", Difficulty: "Beginner"},
			{Title: "React Development", Provider: "Coursera", URL: "https://coursera.org", Difficulty: "Intermediate"},
			{Title: "Node.js Backend Development", Provider: "Udemy", URL: "https://udemy.com", Difficulty: "Intermediate"},
		},
		Skills: []string{"JavaScript", "React", "Node.js", "Git", "SQL", "Problem Solving"},
		Projects: []ResourceProject{
			{Title: "Personal Portfolio Website", Description: "Build a responsive portfolio using React"},
			{Title: "Todo App with Backend", Description: "Full-stack application with CRUD operations"},
			{Title: "E-commerce Platform", Description: "Complete online store with payment integration"},
		},
	},
	"data-scientist": {
		Courses: []ResourceCourse{
			{Title: "Python for Data Science", Provider: "Coursera", URL: "https://coursera.org", Difficulty: "Beginner"},
			{Title: "Machine Learning Basics", Provider: "edX", URL: "https://edx.org", Difficulty: "Intermediate"},
			{Title: "Deep Learning Specialization", Provider: "Coursera", URL: "https://coursera.org", Difficulty: "Advanced"},
		},
		Skills: []string{"Python", "Pandas", "NumPy", "Scikit-learn", "TensorFlow", "Statistics"},
		Projects: []ResourceProject{
			{Title: "Data Analysis Project", Description: "Analyze real-world dataset and create visualizations"},
			{Title: "Predictive Model", Description: "Build ML model to predict outcomes"},
			{Title: "Deep Learning Application", Description: "Create neural network for image classification"},
		},
	},
}

// ruleBasedCourseRecommendations é o fallback determinístico quando a IA
// não responde: sugere cursos a partir dos interesses e metas do perfil.
func ruleBasedCourseRecommendations(profile *entities.UserProfile) []CourseRecommendation {
	recommendations := []CourseRecommendation{}
	interests := profile.Interests
	careerGoals := profile.CareerGoals

	if containsFold(interests, "Technology") || containsFold(careerGoals, "Software Engineer") {
		recommendations = append(recommendations, CourseRecommendation{
			CourseName:    "Computer Science Engineering",
			Reason:        "Matches your interest in technology and programming",
			Duration:      "4 years",
			CareerPaths:   []string{"Software Engineer", "Data Scientist", "Product Manager"},
			SalaryRange:   "₹6-25 LPA",
			TopColleges:   []string{"IIT Delhi", "IIT Bombay", "BITS Pilani"},
			EntranceExams: []string{"JEE Main", "JEE Advanced", "BITSAT"},
		})
	}

	if containsFold(interests, "Medicine") || containsFold(careerGoals, "Doctor") {
		recommendations = append(recommendations, CourseRecommendation{
			CourseName:    "MBBS",
			Reason:        "Aligns with your interest in healthcare and helping others",
			Duration:      "5.5 years",
			CareerPaths:   []string{"General Physician", "Specialist Doctor", "Surgeon"},
			SalaryRange:   "₹8-30 LPA",
			TopColleges:   []string{"AIIMS Delhi", "CMC Vellore", "JIPMER"},
			EntranceExams: []string{"NEET UG"},
		})
	}

	if containsFold(interests, "Business") || containsFold(careerGoals, "Entrepreneur") {
		recommendations = append(recommendations, CourseRecommendation{
			CourseName:    "Business Administration",
			Reason:        "Perfect for your entrepreneurial and business interests",
			Duration:      "3 years",
			CareerPaths:   []string{"Business Analyst", "Marketing Manager", "Entrepreneur"},
			SalaryRange:   "₹5-20 LPA",
			TopColleges:   []string{"IIM Ahmedabad", "ISB Hyderabad", "XLRI Jamshedpur"},
			EntranceExams: []string{"CAT", "XAT", "GMAT"},
		})
	}

	return recommendations
}

// ruleBasedCareerRecommendations sugere carreiras por interesse do perfil
func ruleBasedCareerRecommendations(profile *entities.UserProfile) []CareerRecommendation {
	recommendations := []CareerRecommendation{}

	for _, interest := range profile.Interests {
		switch interest {
		case "Technology":
			recommendations = append(recommendations, CareerRecommendation{
				CareerTitle:     "Software Engineer",
				Description:     "Design and develop software applications, websites, and systems. Work with cutting-edge technologies to solve real-world problems.",
				RequiredSkills:  []string{"Programming", "Problem Solving", "Teamwork", "Communication"},
				EducationalPath: "B.Tech Computer Science or related field",
				AverageSalary:   "₹6-25 LPA",
				GrowthProspects: "Excellent - High demand and growth potential",
				MarketDemand:    "Very High",
			})
		case "Medicine":
			recommendations = append(recommendations, CareerRecommendation{
				CareerTitle:     "Medical Doctor",
				Description:     "Diagnose and treat patients, provide healthcare services, and contribute to public health. Make a direct impact on people's lives.",
				RequiredSkills:  []string{"Medical Knowledge", "Empathy", "Communication", "Decision Making"},
				EducationalPath: "MBBS followed by specialization",
				AverageSalary:   "₹8-30 LPA",
				GrowthProspects: "Excellent - Always in demand",
				MarketDemand:    "Very High",
			})
		}
	}

	return recommendations
}
