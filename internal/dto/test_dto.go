package dto

import "time"

// TestSectionDTO lists a section available for practice.
type TestSectionDTO struct {
	ID              uint   `json:"id"`
	SectionName     string `json:"section_name"`
	Description     string `json:"description,omitempty"`
	DurationMinutes int    `json:"duration_minutes"`
	TotalQuestions  int    `json:"total_questions"`
}

// QuestionDTO is a question as shown to a student taking a test. The correct
// answer is deliberately absent.
type QuestionDTO struct {
	ID           uint   `json:"id"`
	QuestionText string `json:"question_text"`
	OptionA      string `json:"option_a"`
	OptionB      string `json:"option_b"`
	OptionC      string `json:"option_c"`
	OptionD      string `json:"option_d"`
}

// SubmitTestRequest is a full answer sheet for one section. Answers maps the
// question id (JSON object keys are strings on the wire) to the selected
// option letter.
type SubmitTestRequest struct {
	SectionID uint              `json:"section_id" binding:"required"`
	Answers   map[string]string `json:"answers"`
	TimeTaken int               `json:"time_taken"`
}

// SubmitTestResponse is the score summary returned right after scoring.
type SubmitTestResponse struct {
	Success   bool    `json:"success"`
	Score     float64 `json:"score"`
	Correct   int     `json:"correct"`
	Total     int     `json:"total"`
	AttemptID uint    `json:"attempt_id"`
}

// UserScoreDTO is one row of a student's attempt history.
type UserScoreDTO struct {
	ID             uint      `json:"id"`
	SectionID      uint      `json:"section_id"`
	SectionName    string    `json:"section_name"`
	TotalQuestions int       `json:"total_questions"`
	CorrectAnswers int       `json:"correct_answers"`
	Score          float64   `json:"score"`
	TimeTaken      int       `json:"time_taken"`
	CompletedAt    time.Time `json:"completed_at"`
}

// SectionPerformanceDTO aggregates a student's attempts per section.
type SectionPerformanceDTO struct {
	SectionName string  `json:"section_name"`
	AvgScore    float64 `json:"avg_score"`
	Attempts    int     `json:"attempts"`
}

// RecommendationDTO is the current recommendation with the serialized lists
// expanded back into arrays.
type RecommendationDTO struct {
	UserID           uint      `json:"user_id"`
	WeakSections     []string  `json:"weak_sections"`
	ImprovementAreas []string  `json:"improvement_areas"`
	PracticeFocus    string    `json:"practice_focus"`
	ReadinessScore   float64   `json:"readiness_score"`
	GeneratedAt      time.Time `json:"generated_at"`
}
