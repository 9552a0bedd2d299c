package service

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Placify/internal/dto"
	"github.com/lshigami/Placify/internal/model"
	"github.com/lshigami/Placify/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var ErrResumeNotFound = errors.New("no resume found")

// resumeKeywords are the terms the keyword score looks for in the combined
// skills/experience/projects text. Each hit is worth 100/len(resumeKeywords).
var resumeKeywords = []string{
	"python", "java", "javascript", "react", "sql", "database",
	"api", "git", "team", "project", "leadership", "communication",
	"problem solving", "agile", "development",
}

type ResumeService interface {
	SaveResume(userID uint, req dto.SaveResumeRequest) (*dto.ResumeScoresDTO, error)
	GetResume(userID uint) (*dto.ResumeDTO, error)
}

type resumeService struct {
	resumeRepo repository.ResumeRepository
}

func NewResumeService(resumeRepo repository.ResumeRepository) ResumeService {
	return &resumeService{resumeRepo: resumeRepo}
}

func (s *resumeService) SaveResume(userID uint, req dto.SaveResumeRequest) (*dto.ResumeScoresDTO, error) {
	scores := CalculateResumeScores(req)

	resume := model.Resume{
		UserID:         userID,
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		Education:      req.Education,
		Skills:         req.Skills,
		Experience:     req.Experience,
		Projects:       req.Projects,
		Certifications: req.Certifications,
		ResumeText:     buildResumeText(req),
		ATSScore:       scores.ATSScore,
		KeywordScore:   scores.KeywordScore,
		FormatScore:    scores.FormatScore,
		OverallScore:   scores.OverallScore,
		Feedback:       scores.Feedback,
	}

	if err := s.resumeRepo.Upsert(&resume); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("SaveResume: failed to persist resume")
		return nil, fmt.Errorf("error saving resume: %w", err)
	}
	return &scores, nil
}

func (s *resumeService) GetResume(userID uint) (*dto.ResumeDTO, error) {
	resume, err := s.resumeRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeNotFound
		}
		log.Error().Err(err).Uint("userID", userID).Msg("GetResume: repository error")
		return nil, fmt.Errorf("error fetching resume: %w", err)
	}

	var resp dto.ResumeDTO
	if err := copier.Copy(&resp, resume); err != nil {
		log.Error().Err(err).Msg("GetResume: failed to copy Resume model to DTO")
		return nil, fmt.Errorf("error preparing resume response: %w", err)
	}
	return &resp, nil
}

// CalculateResumeScores derives the three rule-based sub-scores and the
// overall score from the submitted resume fields. Pure; no storage access.
func CalculateResumeScores(req dto.SaveResumeRequest) dto.ResumeScoresDTO {
	atsScore := calculateATSScore(req)
	keywordScore := calculateKeywordScore(req)
	formatScore := calculateFormatScore(req)
	overallScore := (atsScore + keywordScore + formatScore) / 3

	return dto.ResumeScoresDTO{
		ATSScore:     round2(atsScore),
		KeywordScore: round2(keywordScore),
		FormatScore:  round2(formatScore),
		OverallScore: round2(overallScore),
		Feedback:     buildResumeFeedback(atsScore, keywordScore, formatScore, overallScore),
	}
}

// calculateATSScore checks the presence of the key resume sections. The
// weights sum to 100.
func calculateATSScore(req dto.SaveResumeRequest) float64 {
	score := 0.0
	if req.FullName != "" {
		score += 15
	}
	if req.Email != "" {
		score += 10
	}
	if req.Phone != "" {
		score += 10
	}
	if req.Education != "" {
		score += 20
	}
	if req.Skills != "" {
		score += 20
	}
	if req.Experience != "" || req.Projects != "" {
		score += 25
	}
	return score
}

func calculateKeywordScore(req dto.SaveResumeRequest) float64 {
	text := strings.ToLower(req.Skills + " " + req.Experience + " " + req.Projects)

	score := 0.0
	for _, keyword := range resumeKeywords {
		if strings.Contains(text, keyword) {
			score += 100.0 / float64(len(resumeKeywords))
		}
	}
	return score
}

// calculateFormatScore is a step function over the summed length of the five
// long-text sections: 40 past 100 characters, 70 past 300, 100 past 500.
func calculateFormatScore(req dto.SaveResumeRequest) float64 {
	totalLength := len(req.Education) + len(req.Skills) + len(req.Experience) +
		len(req.Projects) + len(req.Certifications)

	score := 0.0
	if totalLength > 100 {
		score += 40
	}
	if totalLength > 300 {
		score += 30
	}
	if totalLength > 500 {
		score += 30
	}
	return score
}

func buildResumeFeedback(atsScore, keywordScore, formatScore, overallScore float64) string {
	var feedback []string
	if atsScore < 70 {
		feedback = append(feedback, "Add more details to key sections like education and experience.")
	}
	if keywordScore < 50 {
		feedback = append(feedback, "Include more relevant technical skills and keywords.")
	}
	if formatScore < 60 {
		feedback = append(feedback, "Expand your resume with more detailed descriptions.")
	}
	switch {
	case overallScore >= 80:
		feedback = append(feedback, "Excellent resume! Well structured and comprehensive.")
	case overallScore >= 60:
		feedback = append(feedback, "Good resume, but there's room for improvement.")
	default:
		feedback = append(feedback, "Your resume needs significant enhancement.")
	}
	return strings.Join(feedback, " ")
}

// buildResumeText flattens the structured fields into the plain-text rendering
// stored alongside the record.
func buildResumeText(req dto.SaveResumeRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n%s\n", req.FullName, req.Email, req.Phone)
	fmt.Fprintf(&b, "Education: %s\n", req.Education)
	fmt.Fprintf(&b, "Skills: %s\n", req.Skills)
	fmt.Fprintf(&b, "Experience: %s\n", req.Experience)
	fmt.Fprintf(&b, "Projects: %s\n", req.Projects)
	fmt.Fprintf(&b, "Certifications: %s", req.Certifications)
	return b.String()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
