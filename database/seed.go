package database

import (
	"github.com/lshigami/Placify/internal/model"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed populates reference data on first start: the five test sections with a
// small question bank, plus the default admin and demo student accounts.
// It is a no-op when the tables already hold data.
func Seed(db *gorm.DB) error {
	if err := seedUsers(db); err != nil {
		return err
	}
	return seedSections(db)
}

func seedUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []struct {
		username, password, fullName, role, department string
	}{
		{"admin", "admin123", "Placify Admin", model.RoleAdmin, ""},
		{"student1", "student123", "Demo Student", model.RoleStudent, "Computer Science"},
	}
	for _, d := range defaults {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := model.User{
			Username:     d.username,
			Email:        d.username + "@placify.local",
			PasswordHash: string(hash),
			FullName:     d.fullName,
			Role:         d.role,
			Department:   d.department,
			College:      "Placify College",
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}
	log.Info().Msg("Seeded default admin and student accounts")
	return nil
}

func seedSections(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.TestSection{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	sections := []model.TestSection{
		{
			Name:            model.SectionAptitude,
			Description:     "Quantitative aptitude and numerical ability",
			DurationMinutes: 30,
			Questions: []model.Question{
				{
					QuestionText:  "A train travels 360 km in 4 hours. What is its average speed?",
					OptionA:       "80 km/h",
					OptionB:       "90 km/h",
					OptionC:       "100 km/h",
					OptionD:       "120 km/h",
					CorrectAnswer: "B",
					Points:        1,
				},
				{
					QuestionText:  "If 15% of a number is 45, what is the number?",
					OptionA:       "200",
					OptionB:       "250",
					OptionC:       "300",
					OptionD:       "350",
					CorrectAnswer: "C",
					Points:        1,
				},
				{
					QuestionText:  "What is the compound interest on Rs. 1000 at 10% per annum for 2 years?",
					OptionA:       "Rs. 200",
					OptionB:       "Rs. 210",
					OptionC:       "Rs. 220",
					OptionD:       "Rs. 240",
					CorrectAnswer: "B",
					Points:        1,
				},
			},
		},
		{
			Name:            model.SectionLogicalReasoning,
			Description:     "Pattern recognition, puzzles and deduction",
			DurationMinutes: 30,
			Questions: []model.Question{
				{
					QuestionText:  "Find the next number in the series: 2, 6, 12, 20, 30, ...",
					OptionA:       "40",
					OptionB:       "42",
					OptionC:       "44",
					OptionD:       "48",
					CorrectAnswer: "B",
					Points:        1,
				},
				{
					QuestionText:  "If all Bloops are Razzies and all Razzies are Lazzies, are all Bloops definitely Lazzies?",
					OptionA:       "Yes",
					OptionB:       "No",
					OptionC:       "Cannot be determined",
					OptionD:       "Only some are",
					CorrectAnswer: "A",
					Points:        1,
				},
			},
		},
		{
			Name:            model.SectionCoding,
			Description:     "Data structures, algorithms and programming concepts",
			DurationMinutes: 45,
			Questions: []model.Question{
				{
					QuestionText:  "What is the worst-case time complexity of binary search?",
					OptionA:       "O(1)",
					OptionB:       "O(n)",
					OptionC:       "O(log n)",
					OptionD:       "O(n log n)",
					CorrectAnswer: "C",
					Points:        1,
				},
				{
					QuestionText:  "Which data structure uses FIFO ordering?",
					OptionA:       "Stack",
					OptionB:       "Queue",
					OptionC:       "Tree",
					OptionD:       "Graph",
					CorrectAnswer: "B",
					Points:        1,
				},
				{
					QuestionText:  "Which sorting algorithm has the best average-case complexity?",
					OptionA:       "Bubble sort",
					OptionB:       "Insertion sort",
					OptionC:       "Selection sort",
					OptionD:       "Merge sort",
					CorrectAnswer: "D",
					Points:        1,
				},
			},
		},
		{
			Name:            model.SectionHRSoftSkills,
			Description:     "Behavioral and communication readiness",
			DurationMinutes: 20,
			Questions: []model.Question{
				{
					QuestionText:  "In a behavioral interview, the STAR method stands for:",
					OptionA:       "Situation, Task, Action, Result",
					OptionB:       "Skill, Talent, Ability, Rating",
					OptionC:       "Start, Try, Achieve, Repeat",
					OptionD:       "Strength, Target, Aim, Review",
					CorrectAnswer: "A",
					Points:        1,
				},
			},
		},
		{
			Name:            model.SectionDomainKnowledge,
			Description:     "Core technical fundamentals",
			DurationMinutes: 30,
			Questions: []model.Question{
				{
					QuestionText:  "Which protocol does HTTPS use for encryption?",
					OptionA:       "SSH",
					OptionB:       "TLS",
					OptionC:       "FTP",
					OptionD:       "SMTP",
					CorrectAnswer: "B",
					Points:        1,
				},
				{
					QuestionText:  "In relational databases, a foreign key enforces:",
					OptionA:       "Uniqueness",
					OptionB:       "Referential integrity",
					OptionC:       "Atomicity",
					OptionD:       "Indexing",
					CorrectAnswer: "B",
					Points:        1,
				},
			},
		},
	}

	for i := range sections {
		sections[i].TotalQuestions = len(sections[i].Questions)
		if err := db.Create(&sections[i]).Error; err != nil {
			return err
		}
	}
	log.Info().Int("sections", len(sections)).Msg("Seeded test sections and question bank")
	return nil
}
