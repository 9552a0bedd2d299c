package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Placify/internal/dto"
	"github.com/lshigami/Placify/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var ErrSectionNotFound = errors.New("test section not found")

// TestService serves the reference data students need to take a test:
// the section catalogue and the questions of a section with the correct
// answers stripped.
type TestService interface {
	GetSections() ([]dto.TestSectionDTO, error)
	GetQuestions(sectionID uint) ([]dto.QuestionDTO, error)
}

type testService struct {
	sectionRepo  repository.SectionRepository
	questionRepo repository.QuestionRepository
}

func NewTestService(sectionRepo repository.SectionRepository, questionRepo repository.QuestionRepository) TestService {
	return &testService{sectionRepo: sectionRepo, questionRepo: questionRepo}
}

func (s *testService) GetSections() ([]dto.TestSectionDTO, error) {
	sections, err := s.sectionRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("GetSections: repository error")
		return nil, fmt.Errorf("error fetching test sections: %w", err)
	}

	dtos := make([]dto.TestSectionDTO, 0, len(sections))
	for _, section := range sections {
		dtos = append(dtos, dto.TestSectionDTO{
			ID:              section.ID,
			SectionName:     section.Name,
			Description:     section.Description,
			DurationMinutes: section.DurationMinutes,
			TotalQuestions:  section.TotalQuestions,
		})
	}
	return dtos, nil
}

func (s *testService) GetQuestions(sectionID uint) ([]dto.QuestionDTO, error) {
	if _, err := s.sectionRepo.FindByID(sectionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, fmt.Errorf("error loading section %d: %w", sectionID, err)
	}

	questions, err := s.questionRepo.FindBySectionID(sectionID)
	if err != nil {
		log.Error().Err(err).Uint("sectionID", sectionID).Msg("GetQuestions: repository error")
		return nil, fmt.Errorf("error fetching questions for section %d: %w", sectionID, err)
	}

	dtos := make([]dto.QuestionDTO, 0, len(questions))
	for _, q := range questions {
		var qDTO dto.QuestionDTO
		// QuestionDTO has no CorrectAnswer field, so the answer key cannot
		// leak to the client here.
		if err := copier.Copy(&qDTO, &q); err != nil {
			log.Error().Err(err).Uint("questionID", q.ID).Msg("GetQuestions: failed to copy question to DTO")
			return nil, fmt.Errorf("error preparing question response: %w", err)
		}
		dtos = append(dtos, qDTO)
	}
	return dtos, nil
}
