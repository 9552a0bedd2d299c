package service

import (
	"math"
	"strings"
	"testing"

	"github.com/lshigami/Placify/internal/dto"
	"github.com/lshigami/Placify/internal/repository"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.001
}

func TestCalculateATSScore(t *testing.T) {
	tests := []struct {
		name string
		req  dto.SaveResumeRequest
		want float64
	}{
		{
			name: "empty resume",
			req:  dto.SaveResumeRequest{},
			want: 0,
		},
		{
			name: "all fields present",
			req: dto.SaveResumeRequest{
				FullName:  "Jane Doe",
				Email:     "jane@example.com",
				Phone:     "1234567890",
				Education: "B.Tech",
				Skills:    "Go",
				Projects:  "Compiler",
			},
			want: 100,
		},
		{
			name: "only name and email",
			req:  dto.SaveResumeRequest{FullName: "Jane Doe", Email: "jane@example.com"},
			want: 25,
		},
		{
			name: "experience alone earns the experience-or-projects weight",
			req:  dto.SaveResumeRequest{Experience: "intern"},
			want: 25,
		},
		{
			name: "experience and projects together count once",
			req:  dto.SaveResumeRequest{Experience: "intern", Projects: "app"},
			want: 25,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateATSScore(tt.req)
			if !almostEqual(got, tt.want) {
				t.Errorf("calculateATSScore() = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("calculateATSScore() = %v, out of [0,100]", got)
			}
		})
	}
}

func TestCalculateKeywordScore(t *testing.T) {
	// Keywords chosen so none is a substring of another.
	tests := []struct {
		name string
		req  dto.SaveResumeRequest
		hits int
	}{
		{name: "no keywords", req: dto.SaveResumeRequest{Skills: "painting, cooking"}, hits: 0},
		{name: "one keyword", req: dto.SaveResumeRequest{Skills: "python"}, hits: 1},
		{
			name: "three keywords across fields",
			req: dto.SaveResumeRequest{
				Skills:     "python, react",
				Experience: "used git daily",
			},
			hits: 3,
		},
		{
			name: "matching is case-insensitive",
			req:  dto.SaveResumeRequest{Skills: "PYTHON and Agile"},
			hits: 2,
		},
		{
			name: "duplicate mentions count once",
			req:  dto.SaveResumeRequest{Skills: "python", Projects: "python scraper"},
			hits: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateKeywordScore(tt.req)
			want := float64(tt.hits) * 100.0 / 15.0
			if !almostEqual(got, want) {
				t.Errorf("calculateKeywordScore() = %v, want %v (%d hits)", got, want, tt.hits)
			}
		})
	}
}

func TestCalculateKeywordScoreAllKeywords(t *testing.T) {
	req := dto.SaveResumeRequest{
		Skills: "python java javascript react sql database api git team project " +
			"leadership communication problem solving agile development",
	}
	got := calculateKeywordScore(req)
	if !almostEqual(got, 100) {
		t.Errorf("calculateKeywordScore() with all keywords = %v, want 100", got)
	}
}

func TestCalculateFormatScore(t *testing.T) {
	tests := []struct {
		name   string
		length int
		want   float64
	}{
		{name: "empty", length: 0, want: 0},
		{name: "at threshold boundary", length: 100, want: 0},
		{name: "past first threshold", length: 150, want: 40},
		{name: "past second threshold", length: 350, want: 70},
		{name: "past third threshold", length: 600, want: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.SaveResumeRequest{Education: strings.Repeat("x", tt.length)}
			if got := calculateFormatScore(req); !almostEqual(got, tt.want) {
				t.Errorf("calculateFormatScore(len=%d) = %v, want %v", tt.length, got, tt.want)
			}
		})
	}
}

func TestCalculateFormatScoreSumsAllFields(t *testing.T) {
	req := dto.SaveResumeRequest{
		Education:      strings.Repeat("a", 30),
		Skills:         strings.Repeat("b", 30),
		Experience:     strings.Repeat("c", 30),
		Projects:       strings.Repeat("d", 30),
		Certifications: strings.Repeat("e", 31),
	}
	// 151 characters total, past the first threshold only.
	if got := calculateFormatScore(req); !almostEqual(got, 40) {
		t.Errorf("calculateFormatScore() = %v, want 40", got)
	}
}

func TestCalculateResumeScoresOverallIsMean(t *testing.T) {
	req := dto.SaveResumeRequest{
		FullName:  "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "1234567890",
		Education: strings.Repeat("x", 200),
		Skills:    "python, react, sql",
		Projects:  "data pipeline with git",
	}
	scores := CalculateResumeScores(req)

	ats := calculateATSScore(req)
	keyword := calculateKeywordScore(req)
	format := calculateFormatScore(req)
	wantOverall := math.Round((ats+keyword+format)/3*100) / 100

	if !almostEqual(scores.OverallScore, wantOverall) {
		t.Errorf("OverallScore = %v, want mean %v", scores.OverallScore, wantOverall)
	}
}

func TestResumeFeedbackSentences(t *testing.T) {
	t.Run("sparse resume gets the add-more-details sentence", func(t *testing.T) {
		scores := CalculateResumeScores(dto.SaveResumeRequest{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
		})
		if scores.ATSScore != 25 {
			t.Fatalf("ATSScore = %v, want 25", scores.ATSScore)
		}
		if !strings.Contains(scores.Feedback, "Add more details to key sections") {
			t.Errorf("Feedback = %q, missing presence advice", scores.Feedback)
		}
		if !strings.Contains(scores.Feedback, "needs significant enhancement") {
			t.Errorf("Feedback = %q, missing low overall band", scores.Feedback)
		}
	})

	t.Run("strong resume gets the excellent band only", func(t *testing.T) {
		scores := CalculateResumeScores(dto.SaveResumeRequest{
			FullName:  "Jane Doe",
			Email:     "jane@example.com",
			Phone:     "1234567890",
			Education: strings.Repeat("x", 200),
			Skills: "python java javascript react sql database api git team project " +
				"leadership communication problem solving agile development " + strings.Repeat("y", 400),
			Experience: "backend developer",
		})
		if !strings.Contains(scores.Feedback, "Excellent resume!") {
			t.Errorf("Feedback = %q, missing excellent band", scores.Feedback)
		}
		if strings.Contains(scores.Feedback, "needs significant enhancement") {
			t.Errorf("Feedback = %q, overall bands must be mutually exclusive", scores.Feedback)
		}
	})
}

func TestSaveResumeUpserts(t *testing.T) {
	db := newTestDB(t)
	user := createStudent(t, db, "resume_user")

	repoSvc := NewResumeService(repository.NewResumeRepository(db))

	first := dto.SaveResumeRequest{FullName: "Jane Doe", Email: "jane@example.com"}
	if _, err := repoSvc.SaveResume(user.ID, first); err != nil {
		t.Fatalf("SaveResume first: %v", err)
	}
	second := dto.SaveResumeRequest{FullName: "Jane M. Doe", Email: "jane@example.com", Skills: "python"}
	if _, err := repoSvc.SaveResume(user.ID, second); err != nil {
		t.Fatalf("SaveResume second: %v", err)
	}

	var count int64
	if err := db.Table("resumes").Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count resumes: %v", err)
	}
	if count != 1 {
		t.Errorf("resume rows = %d, want 1 (upsert)", count)
	}

	stored, err := repoSvc.GetResume(user.ID)
	if err != nil {
		t.Fatalf("GetResume: %v", err)
	}
	if stored.FullName != "Jane M. Doe" {
		t.Errorf("FullName = %q, want updated value", stored.FullName)
	}
}

func TestGetResumeNotFound(t *testing.T) {
	db := newTestDB(t)
	user := createStudent(t, db, "no_resume_user")

	svc := NewResumeService(repository.NewResumeRepository(db))
	if _, err := svc.GetResume(user.ID); err != ErrResumeNotFound {
		t.Errorf("GetResume() error = %v, want ErrResumeNotFound", err)
	}
}
