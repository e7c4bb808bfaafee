package database

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/margdarshak/career-intelligence-api/internal/domain/entities"
	"gorm.io/gorm"
)

// SeedColleges popula o catálogo estático de faculdades quando a tabela está
// vazia. O catálogo é somente leitura para a aplicação.
func SeedColleges(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.College{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("📚 Seeding colleges...")

	colleges := []entities.College{
		{
			Name:          "Indian Institute of Technology Delhi",
			City:          "New Delhi",
			State:         "Delhi",
			Location:      "Hauz Khas, New Delhi",
			Type:          "GOVERNMENT",
			Programs:      pq.StringArray{"Computer Science Engineering", "Mechanical Engineering", "Electrical Engineering", "Civil Engineering"},
			EntranceExams: pq.StringArray{"JEE Main", "JEE Advanced"},
			Rating:        4.8,
			Website:       "https://home.iitd.ac.in",
		},
		{
			Name:          "All India Institute of Medical Sciences Delhi",
			City:          "New Delhi",
			State:         "Delhi",
			Location:      "Ansari Nagar, New Delhi",
			Type:          "GOVERNMENT",
			Programs:      pq.StringArray{"MBBS", "BDS", "B.Sc Nursing", "Paramedical Courses"},
			EntranceExams: pq.StringArray{"NEET UG"},
			Rating:        4.9,
			Website:       "https://www.aiims.edu",
		},
		{
			Name:          "Indian Institute of Management Ahmedabad",
			City:          "Ahmedabad",
			State:         "Gujarat",
			Location:      "Vastrapur, Ahmedabad",
			Type:          "AUTONOMOUS",
			Programs:      pq.StringArray{"MBA", "Executive MBA", "Fellow Programme in Management"},
			EntranceExams: pq.StringArray{"CAT", "GMAT"},
			Rating:        4.7,
			Website:       "https://www.iima.ac.in",
		},
		{
			Name:          "Birla Institute of Technology and Science Pilani",
			City:          "Pilani",
			State:         "Rajasthan",
			Location:      "Pilani, Rajasthan",
			Type:          "DEEMED",
			Programs:      pq.StringArray{"Computer Science Engineering", "Electronics Engineering", "Mechanical Engineering", "Chemical Engineering"},
			EntranceExams: pq.StringArray{"BITSAT"},
			Rating:        4.6,
			Website:       "https://www.bits-pilani.ac.in",
		},
		{
			Name:          "National Institute of Technology Tiruchirappalli",
			City:          "Tiruchirappalli",
			State:         "Tamil Nadu",
			Location:      "Tanjore Main Road, Tiruchirappalli",
			Type:          "GOVERNMENT",
			Programs:      pq.StringArray{"Computer Science Engineering", "Mechanical Engineering", "Production Engineering"},
			EntranceExams: pq.StringArray{"JEE Main"},
			Rating:        4.5,
			Website:       "https://www.nitt.edu",
		},
		{
			Name:          "Christian Medical College Vellore",
			City:          "Vellore",
			State:         "Tamil Nadu",
			Location:      "Ida Scudder Road, Vellore",
			Type:          "PRIVATE",
			Programs:      pq.StringArray{"MBBS", "B.Sc Nursing", "Allied Health Sciences"},
			EntranceExams: pq.StringArray{"NEET UG"},
			Rating:        4.7,
			Website:       "https://www.cmch-vellore.edu",
		},
	}

	now := time.Now()
	for i := range colleges {
		colleges[i].ID = uuid.NewString()
		colleges[i].CreatedAt = now
		colleges[i].UpdatedAt = now
	}

	return db.Create(&colleges).Error
}

// SeedCourses popula o catálogo estático de cursos quando a tabela está vazia
func SeedCourses(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.Course{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("📖 Seeding courses...")

	courses := []entities.Course{
		{
			Name:          "Computer Science Engineering",
			Code:          "CSE",
			Level:         "UNDERGRADUATE",
			Field:         "Engineering",
			Description:   "Study of algorithms, programming languages, and computer systems",
			Duration:      "4 years",
			CareerPaths:   pq.StringArray{"Software Engineer", "Data Scientist", "Product Manager", "Tech Entrepreneur"},
			Skills:        pq.StringArray{"Programming", "Data Structures", "Algorithms", "System Design"},
			Prerequisites: pq.StringArray{"Mathematics", "Physics", "Chemistry"},
			Eligibility:   "10+2 with PCM, JEE Main/Advanced",
		},
		{
			Name:          "MBBS",
			Code:          "MBBS",
			Level:         "UNDERGRADUATE",
			Field:         "Medical",
			Description:   "Bachelor of Medicine and Bachelor of Surgery",
			Duration:      "5.5 years",
			CareerPaths:   pq.StringArray{"General Physician", "Specialist Doctor", "Surgeon", "Medical Researcher"},
			Skills:        pq.StringArray{"Medical Knowledge", "Patient Care", "Communication", "Empathy"},
			Prerequisites: pq.StringArray{"Biology", "Chemistry", "Physics"},
			Eligibility:   "10+2 with PCB, NEET UG",
		},
		{
			Name:          "Mechanical Engineering",
			Code:          "ME",
			Level:         "UNDERGRADUATE",
			Field:         "Engineering",
			Description:   "Design, analysis, and manufacturing of mechanical systems",
			Duration:      "4 years",
			CareerPaths:   pq.StringArray{"Mechanical Engineer", "Automotive Engineer", "Manufacturing Engineer"},
			Skills:        pq.StringArray{"CAD/CAM", "Thermodynamics", "Manufacturing", "Problem Solving"},
			Prerequisites: pq.StringArray{"Mathematics", "Physics", "Chemistry"},
			Eligibility:   "10+2 with PCM, JEE Main/Advanced",
		},
		{
			Name:          "Business Administration",
			Code:          "BBA",
			Level:         "UNDERGRADUATE",
			Field:         "Management",
			Description:   "Study of business operations and management principles",
			Duration:      "3 years",
			CareerPaths:   pq.StringArray{"Business Analyst", "Marketing Manager", "Consultant", "Entrepreneur"},
			Skills:        pq.StringArray{"Leadership", "Finance", "Marketing", "Strategy"},
			Prerequisites: pq.StringArray{"Any stream in 10+2"},
			Eligibility:   "10+2 from any stream",
		},
	}

	now := time.Now()
	for i := range courses {
		courses[i].ID = uuid.NewString()
		courses[i].CreatedAt = now
		courses[i].UpdatedAt = now
	}

	return db.Create(&courses).Error
}
