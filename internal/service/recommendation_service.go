package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lshigami/Placify/internal/dto"
	"github.com/lshigami/Placify/internal/model"
	"github.com/lshigami/Placify/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const weakSectionThreshold = 60.0

// readinessBonus is the flat bonus a student earns for having attempted tests
// at all; the readiness score is capped at 100.
const readinessBonus = 10.0

type RecommendationService interface {
	// Generate recomputes the recommendation from the user's attempt history
	// and appends it to the recommendation history.
	Generate(userID uint) (*model.Recommendation, error)
	// GetCurrent returns the latest recommendation, generating one first if
	// the user has none yet.
	GetCurrent(userID uint) (*dto.RecommendationDTO, error)
}

type recommendationService struct {
	attemptRepo repository.AttemptRepository
	recRepo     repository.RecommendationRepository
}

func NewRecommendationService(attemptRepo repository.AttemptRepository, recRepo repository.RecommendationRepository) RecommendationService {
	return &recommendationService{attemptRepo: attemptRepo, recRepo: recRepo}
}

func (s *recommendationService) Generate(userID uint) (*model.Recommendation, error) {
	averages, err := s.attemptRepo.SectionAveragesByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Generate: failed to load section averages")
		return nil, fmt.Errorf("error loading performance for user %d: %w", userID, err)
	}

	weakSections := make([]string, 0)
	improvementAreas := make([]string, 0)

	// Overall average is the unweighted mean of the per-section averages, so a
	// heavily retaken section does not dominate the readiness score.
	overallAvg := 0.0
	if len(averages) > 0 {
		sum := 0.0
		for _, a := range averages {
			sum += a.AvgScore
		}
		overallAvg = sum / float64(len(averages))

		for _, a := range averages {
			if a.AvgScore >= weakSectionThreshold {
				continue
			}
			weakSections = append(weakSections, a.SectionName)
			if advice, ok := improvementAdvice(a.SectionName); ok {
				improvementAreas = append(improvementAreas, advice)
			} else {
				log.Error().Str("section", a.SectionName).Uint("userID", userID).
					Msg("Generate: no improvement advice registered for section")
			}
		}
	}

	weakJSON, err := json.Marshal(weakSections)
	if err != nil {
		return nil, fmt.Errorf("error serializing weak sections: %w", err)
	}
	improvementJSON, err := json.Marshal(improvementAreas)
	if err != nil {
		return nil, fmt.Errorf("error serializing improvement areas: %w", err)
	}

	rec := model.Recommendation{
		UserID:           userID,
		WeakSections:     string(weakJSON),
		ImprovementAreas: string(improvementJSON),
		PracticeFocus:    practiceFocus(overallAvg),
		ReadinessScore:   readinessScore(overallAvg),
	}
	if err := s.recRepo.Create(&rec); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Generate: failed to store recommendation")
		return nil, fmt.Errorf("error storing recommendation: %w", err)
	}
	return &rec, nil
}

func (s *recommendationService) GetCurrent(userID uint) (*dto.RecommendationDTO, error) {
	rec, err := s.recRepo.FindLatestByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rec, err = s.Generate(userID)
	}
	if err != nil {
		return nil, err
	}

	resp := dto.RecommendationDTO{
		UserID:         rec.UserID,
		PracticeFocus:  rec.PracticeFocus,
		ReadinessScore: rec.ReadinessScore,
		GeneratedAt:    rec.GeneratedAt,
	}
	if err := json.Unmarshal([]byte(rec.WeakSections), &resp.WeakSections); err != nil {
		log.Warn().Err(err).Uint("recID", rec.ID).Msg("GetCurrent: malformed weak_sections JSON")
		resp.WeakSections = []string{}
	}
	if err := json.Unmarshal([]byte(rec.ImprovementAreas), &resp.ImprovementAreas); err != nil {
		log.Warn().Err(err).Uint("recID", rec.ID).Msg("GetCurrent: malformed improvement_areas JSON")
		resp.ImprovementAreas = []string{}
	}
	return &resp, nil
}

// improvementAdvice maps each known section to its improvement sentence. The
// boolean result forces callers to handle sections missing from the map.
func improvementAdvice(sectionName string) (string, bool) {
	switch sectionName {
	case model.SectionAptitude:
		return "Practice more quantitative problems and speed calculations", true
	case model.SectionLogicalReasoning:
		return "Work on pattern recognition and logical puzzles", true
	case model.SectionCoding:
		return "Focus on data structures and algorithms", true
	case model.SectionHRSoftSkills:
		return "Improve communication and behavioral interview skills", true
	case model.SectionDomainKnowledge:
		return "Study core technical concepts and fundamentals", true
	default:
		return "", false
	}
}

func practiceFocus(overallAvg float64) string {
	switch {
	case overallAvg < 50:
		return "Focus on fundamentals across all sections. Take more practice tests."
	case overallAvg < 70:
		return "Good progress! Concentrate on weak areas and time management."
	default:
		return "Excellent performance! Maintain consistency and polish advanced topics."
	}
}

func readinessScore(overallAvg float64) float64 {
	score := overallAvg + readinessBonus
	if score > 100 {
		score = 100
	}
	return round2(score)
}
