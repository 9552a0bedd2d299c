package dto

import "time"

// SaveResumeRequest carries the free-text resume fields. All fields are
// optional; the scoring engine treats absence as an empty section.
type SaveResumeRequest struct {
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Education      string `json:"education"`
	Skills         string `json:"skills"`
	Experience     string `json:"experience"`
	Projects       string `json:"projects"`
	Certifications string `json:"certifications"`
}

// ResumeScoresDTO is the derived-score block returned after a save.
type ResumeScoresDTO struct {
	ATSScore     float64 `json:"ats_score"`
	KeywordScore float64 `json:"keyword_score"`
	FormatScore  float64 `json:"format_score"`
	OverallScore float64 `json:"overall_score"`
	Feedback     string  `json:"feedback"`
}

// SaveResumeResponse wraps the scores for /api/save_resume.
type SaveResumeResponse struct {
	Success bool            `json:"success"`
	Scores  ResumeScoresDTO `json:"scores"`
}

// ResumeDTO is the stored resume record for /api/get_resume.
type ResumeDTO struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"user_id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Education      string    `json:"education"`
	Skills         string    `json:"skills"`
	Experience     string    `json:"experience"`
	Projects       string    `json:"projects"`
	Certifications string    `json:"certifications"`
	ResumeText     string    `json:"resume_text"`
	ATSScore       float64   `json:"ats_score"`
	KeywordScore   float64   `json:"keyword_score"`
	FormatScore    float64   `json:"format_score"`
	OverallScore   float64   `json:"overall_score"`
	Feedback       string    `json:"feedback"`
	UpdatedAt      time.Time `json:"updated_at"`
}
