package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lshigami/Placify/internal/dto"
	"github.com/lshigami/Placify/internal/model"
	"github.com/lshigami/Placify/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// TestSubmissionService owns the submission and scoring pipeline plus the
// read side of a student's attempt history.
type TestSubmissionService interface {
	SubmitTest(userID uint, req dto.SubmitTestRequest) (*dto.SubmitTestResponse, error)
	GetUserScores(userID uint) ([]dto.UserScoreDTO, error)
	GetSectionPerformance(userID uint) ([]dto.SectionPerformanceDTO, error)
}

type testSubmissionService struct {
	sectionRepo  repository.SectionRepository
	questionRepo repository.QuestionRepository
	attemptRepo  repository.AttemptRepository
	recService   RecommendationService
}

func NewTestSubmissionService(
	sectionRepo repository.SectionRepository,
	questionRepo repository.QuestionRepository,
	attemptRepo repository.AttemptRepository,
	recService RecommendationService,
) TestSubmissionService {
	return &testSubmissionService{
		sectionRepo:  sectionRepo,
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
		recService:   recService,
	}
}

// SubmitTest scores an answer sheet against the section's question bank and
// persists the attempt together with one response row per question in a
// single transaction. Every submission creates a new attempt; resubmitting
// the same answers is not deduplicated.
func (s *testSubmissionService) SubmitTest(userID uint, req dto.SubmitTestRequest) (*dto.SubmitTestResponse, error) {
	if _, err := s.sectionRepo.FindByID(req.SectionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, fmt.Errorf("error loading section %d: %w", req.SectionID, err)
	}

	questions, err := s.questionRepo.FindBySectionID(req.SectionID)
	if err != nil {
		log.Error().Err(err).Uint("sectionID", req.SectionID).Msg("SubmitTest: failed to load questions")
		return nil, fmt.Errorf("error loading questions for section %d: %w", req.SectionID, err)
	}

	// Answer keys arrive as strings; keys that are not numeric or do not
	// belong to this section are simply never looked up.
	answers := parseAnswerMap(req.Answers)

	correctCount := 0
	totalPoints := 0
	earnedPoints := 0
	responses := make([]model.UserResponse, 0, len(questions))

	for _, q := range questions {
		totalPoints += q.Points

		selected := answers[q.ID] // missing answer stays "" and never matches
		isCorrect := selected != "" && strings.EqualFold(selected, q.CorrectAnswer)
		if isCorrect {
			correctCount++
			earnedPoints += q.Points
		}

		responses = append(responses, model.UserResponse{
			QuestionID:     q.ID,
			SelectedAnswer: selected,
			IsCorrect:      isCorrect,
		})
	}

	score := 0.0
	if totalPoints > 0 {
		score = float64(earnedPoints) / float64(totalPoints) * 100
	}
	score = round2(score)

	attempt := model.TestAttempt{
		UserID:         userID,
		SectionID:      req.SectionID,
		TotalQuestions: len(questions),
		TimeTaken:      req.TimeTaken,
		Score:          score,
		CorrectAnswers: correctCount,
		Responses:      responses,
	}
	if err := s.attemptRepo.CreateWithResponses(&attempt); err != nil {
		log.Error().Err(err).Uint("userID", userID).Uint("sectionID", req.SectionID).Msg("SubmitTest: failed to persist attempt")
		return nil, fmt.Errorf("error recording test attempt: %w", err)
	}

	// Recommendations are regenerated from the new history. A failure here
	// must not invalidate the already-persisted attempt.
	if _, err := s.recService.Generate(userID); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("SubmitTest: recommendation regeneration failed")
	}

	log.Info().Uint("userID", userID).Uint("attemptID", attempt.ID).
		Float64("score", score).Int("correct", correctCount).Int("total", len(questions)).
		Msg("Test attempt scored")

	return &dto.SubmitTestResponse{
		Success:   true,
		Score:     score,
		Correct:   correctCount,
		Total:     len(questions),
		AttemptID: attempt.ID,
	}, nil
}

func (s *testSubmissionService) GetUserScores(userID uint) ([]dto.UserScoreDTO, error) {
	attempts, err := s.attemptRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetUserScores: repository error")
		return nil, fmt.Errorf("error fetching scores for user %d: %w", userID, err)
	}

	dtos := make([]dto.UserScoreDTO, 0, len(attempts))
	for _, attempt := range attempts {
		dtos = append(dtos, dto.UserScoreDTO{
			ID:             attempt.ID,
			SectionID:      attempt.SectionID,
			SectionName:    attempt.Section.Name,
			TotalQuestions: attempt.TotalQuestions,
			CorrectAnswers: attempt.CorrectAnswers,
			Score:          attempt.Score,
			TimeTaken:      attempt.TimeTaken,
			CompletedAt:    attempt.CompletedAt,
		})
	}
	return dtos, nil
}

func (s *testSubmissionService) GetSectionPerformance(userID uint) ([]dto.SectionPerformanceDTO, error) {
	averages, err := s.attemptRepo.SectionAveragesByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetSectionPerformance: repository error")
		return nil, fmt.Errorf("error fetching section performance for user %d: %w", userID, err)
	}

	dtos := make([]dto.SectionPerformanceDTO, 0, len(averages))
	for _, avg := range averages {
		dtos = append(dtos, dto.SectionPerformanceDTO{
			SectionName: avg.SectionName,
			AvgScore:    round2(avg.AvgScore),
			Attempts:    avg.Attempts,
		})
	}
	return dtos, nil
}

func parseAnswerMap(raw map[string]string) map[uint]string {
	answers := make(map[uint]string, len(raw))
	for key, selected := range raw {
		id, err := strconv.ParseUint(key, 10, 32)
		if err != nil {
			log.Warn().Str("questionID", key).Msg("SubmitTest: non-numeric question id in answer map, skipping")
			continue
		}
		answers[uint(id)] = selected
	}
	return answers
}
