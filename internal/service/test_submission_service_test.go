package service

import (
	"fmt"
	"testing"

	"github.com/lshigami/Placify/internal/dto"
	"github.com/lshigami/Placify/internal/model"
	"github.com/lshigami/Placify/internal/repository"
	"gorm.io/gorm"
)

func newSubmissionService(db *gorm.DB) TestSubmissionService {
	attemptRepo := repository.NewAttemptRepository(db)
	recService := NewRecommendationService(attemptRepo, repository.NewRecommendationRepository(db))
	return NewTestSubmissionService(
		repository.NewSectionRepository(db),
		repository.NewQuestionRepository(db),
		attemptRepo,
		recService,
	)
}

func answersFor(section *model.TestSection, correct int) map[string]string {
	// The first `correct` questions get the right answer, the rest a wrong one.
	answers := make(map[string]string)
	for i, q := range section.Questions {
		selected := "B"
		if i < correct {
			selected = "A"
		}
		answers[fmt.Sprint(q.ID)] = selected
	}
	return answers
}

func TestSubmitTestScoring(t *testing.T) {
	tests := []struct {
		name      string
		questions int
		correct   int
		wantScore float64
	}{
		{name: "all correct", questions: 4, correct: 4, wantScore: 100},
		{name: "half correct", questions: 4, correct: 2, wantScore: 50},
		{name: "none correct", questions: 4, correct: 0, wantScore: 0},
		{name: "one of three", questions: 3, correct: 1, wantScore: 33.33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			user := createStudent(t, db, "scorer")
			section := createSection(t, db, model.SectionAptitude, tt.questions)
			svc := newSubmissionService(db)

			resp, err := svc.SubmitTest(user.ID, dto.SubmitTestRequest{
				SectionID: section.ID,
				Answers:   answersFor(section, tt.correct),
				TimeTaken: 120,
			})
			if err != nil {
				t.Fatalf("SubmitTest: %v", err)
			}
			if resp.Score != tt.wantScore {
				t.Errorf("Score = %v, want %v", resp.Score, tt.wantScore)
			}
			if resp.Correct != tt.correct {
				t.Errorf("Correct = %d, want %d", resp.Correct, tt.correct)
			}
			if resp.Total != tt.questions {
				t.Errorf("Total = %d, want %d", resp.Total, tt.questions)
			}
			if resp.AttemptID == 0 {
				t.Error("AttemptID not set")
			}
		})
	}
}

func TestSubmitTestCaseInsensitiveAnswers(t *testing.T) {
	db := newTestDB(t)
	user := createStudent(t, db, "lowercase")
	section := createSection(t, db, model.SectionCoding, 2)
	svc := newSubmissionService(db)

	answers := map[string]string{
		fmt.Sprint(section.Questions[0].ID): "a",
		fmt.Sprint(section.Questions[1].ID): "A",
	}
	resp, err := svc.SubmitTest(user.ID, dto.SubmitTestRequest{SectionID: section.ID, Answers: answers})
	if err != nil {
		t.Fatalf("SubmitTest: %v", err)
	}
	if resp.Correct != 2 {
		t.Errorf("Correct = %d, want 2 (answer matching must ignore case)", resp.Correct)
	}
}

func TestSubmitTestMissingAndUnknownAnswers(t *testing.T) {
	db := newTestDB(t)
	user := createStudent(t, db, "partial")
	section := createSection(t, db, model.SectionCoding, 3)
	svc := newSubmissionService(db)

	answers := map[string]string{
		fmt.Sprint(section.Questions[0].ID): "A",
		"999999":                            "A", // not part of the section
		"not-a-number":                      "A",
	}
	resp, err := svc.SubmitTest(user.ID, dto.SubmitTestRequest{SectionID: section.ID, Answers: answers})
	if err != nil {
		t.Fatalf("SubmitTest: %v", err)
	}
	if resp.Correct != 1 {
		t.Errorf("Correct = %d, want 1 (unknown ids ignored, skipped questions wrong)", resp.Correct)
	}
	if resp.Total != 3 {
		t.Errorf("Total = %d, want 3", resp.Total)
	}

	// One response row per section question, skipped ones with empty answer.
	var responses []model.UserResponse
	if err := db.Where("attempt_id = ?", resp.AttemptID).Find(&responses).Error; err != nil {
		t.Fatalf("load responses: %v", err)
	}
	if len(responses) != 3 {
		t.Fatalf("responses = %d, want 3", len(responses))
	}
	empty := 0
	for _, r := range responses {
		if r.SelectedAnswer == "" {
			empty++
			if r.IsCorrect {
				t.Error("skipped question marked correct")
			}
		}
	}
	if empty != 2 {
		t.Errorf("empty responses = %d, want 2", empty)
	}
}

func TestSubmitTestEmptySection(t *testing.T) {
	db := newTestDB(t)
	user := createStudent(t, db, "empty_section")
	section := createSection(t, db, model.SectionDomainKnowledge, 0)
	svc := newSubmissionService(db)

	resp, err := svc.SubmitTest(user.ID, dto.SubmitTestRequest{SectionID: section.ID})
	if err != nil {
		t.Fatalf("SubmitTest on empty section: %v", err)
	}
	if resp.Score != 0 || resp.Correct != 0 || resp.Total != 0 {
		t.Errorf("got score=%v correct=%d total=%d, want all zero", resp.Score, resp.Correct, resp.Total)
	}
}

func TestSubmitTestUnknownSection(t *testing.T) {
	db := newTestDB(t)
	user := createStudent(t, db, "lost")
	svc := newSubmissionService(db)

	if _, err := svc.SubmitTest(user.ID, dto.SubmitTestRequest{SectionID: 42}); err != ErrSectionNotFound {
		t.Errorf("SubmitTest error = %v, want ErrSectionNotFound", err)
	}
}

func TestSubmitTestResubmissionCreatesNewAttempt(t *testing.T) {
	db := newTestDB(t)
	user := createStudent(t, db, "repeater")
	section := createSection(t, db, model.SectionAptitude, 2)
	svc := newSubmissionService(db)

	req := dto.SubmitTestRequest{SectionID: section.ID, Answers: answersFor(section, 2)}
	first, err := svc.SubmitTest(user.ID, req)
	if err != nil {
		t.Fatalf("first SubmitTest: %v", err)
	}
	second, err := svc.SubmitTest(user.ID, req)
	if err != nil {
		t.Fatalf("second SubmitTest: %v", err)
	}
	if first.AttemptID == second.AttemptID {
		t.Error("resubmission reused the attempt id, want independent attempts")
	}

	var count int64
	if err := db.Model(&model.TestAttempt{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count attempts: %v", err)
	}
	if count != 2 {
		t.Errorf("attempts = %d, want 2", count)
	}
}

func TestSubmitTestRegeneratesRecommendations(t *testing.T) {
	db := newTestDB(t)
	user := createStudent(t, db, "recommended")
	section := createSection(t, db, model.SectionCoding, 2)
	svc := newSubmissionService(db)

	if _, err := svc.SubmitTest(user.ID, dto.SubmitTestRequest{SectionID: section.ID, Answers: answersFor(section, 1)}); err != nil {
		t.Fatalf("SubmitTest: %v", err)
	}

	var count int64
	if err := db.Model(&model.Recommendation{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count recommendations: %v", err)
	}
	if count != 1 {
		t.Errorf("recommendations = %d, want 1 generated by submission", count)
	}
}

func TestGetUserScoresAndSectionPerformance(t *testing.T) {
	db := newTestDB(t)
	user := createStudent(t, db, "historian")
	section := createSection(t, db, model.SectionAptitude, 2)
	svc := newSubmissionService(db)

	for _, correct := range []int{2, 0} {
		if _, err := svc.SubmitTest(user.ID, dto.SubmitTestRequest{SectionID: section.ID, Answers: answersFor(section, correct)}); err != nil {
			t.Fatalf("SubmitTest: %v", err)
		}
	}

	scores, err := svc.GetUserScores(user.ID)
	if err != nil {
		t.Fatalf("GetUserScores: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("scores = %d, want 2", len(scores))
	}
	if scores[0].SectionName != model.SectionAptitude {
		t.Errorf("SectionName = %q, want joined section name", scores[0].SectionName)
	}

	performance, err := svc.GetSectionPerformance(user.ID)
	if err != nil {
		t.Fatalf("GetSectionPerformance: %v", err)
	}
	if len(performance) != 1 {
		t.Fatalf("performance rows = %d, want 1", len(performance))
	}
	if performance[0].AvgScore != 50 {
		t.Errorf("AvgScore = %v, want 50 (mean of 100 and 0)", performance[0].AvgScore)
	}
	if performance[0].Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", performance[0].Attempts)
	}
}
