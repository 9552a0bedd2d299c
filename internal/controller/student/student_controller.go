package student

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Placify/internal/dto"
	"github.com/lshigami/Placify/internal/middleware"
	"github.com/lshigami/Placify/internal/service"
	"github.com/rs/zerolog/log"
)

type StudentController struct {
	testService       service.TestService
	submissionService service.TestSubmissionService
	resumeService     service.ResumeService
	recService        service.RecommendationService
}

func NewStudentController(
	testService service.TestService,
	submissionService service.TestSubmissionService,
	resumeService service.ResumeService,
	recService service.RecommendationService,
) *StudentController {
	return &StudentController{
		testService:       testService,
		submissionService: submissionService,
		resumeService:     resumeService,
		recService:        recService,
	}
}

// GetTestSections godoc
// @Summary List all test sections
// @Tags Tests
// @Produce json
// @Success 200 {array} dto.TestSectionDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/test_sections [get]
func (c *StudentController) GetTestSections(ctx *gin.Context) {
	sections, err := c.testService.GetSections()
	if err != nil {
		log.Error().Err(err).Msg("GetTestSections: service error")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to retrieve test sections"))
		return
	}
	ctx.JSON(http.StatusOK, sections)
}

// GetQuestions godoc
// @Summary Get the questions of a section, without correct answers
// @Tags Tests
// @Produce json
// @Param section_id path int true "Section ID"
// @Success 200 {array} dto.QuestionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid section id"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Router /api/questions/{section_id} [get]
func (c *StudentController) GetQuestions(ctx *gin.Context) {
	sectionID, err := strconv.ParseUint(ctx.Param("section_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid section id"))
		return
	}

	questions, err := c.testService.GetQuestions(uint(sectionID))
	if err != nil {
		if errors.Is(err, service.ErrSectionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse("Section not found"))
			return
		}
		log.Error().Err(err).Uint64("sectionID", sectionID).Msg("GetQuestions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to retrieve questions"))
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// SubmitTest godoc
// @Summary Submit a test and receive the score summary
// @Description Scores the answer sheet against the section's question bank, records the attempt and regenerates recommendations.
// @Tags Tests
// @Accept json
// @Produce json
// @Param submission body dto.SubmitTestRequest true "Section id, answer map and elapsed time"
// @Success 200 {object} dto.SubmitTestResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Not logged in"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Router /api/submit_test [post]
func (c *StudentController) SubmitTest(ctx *gin.Context) {
	auth, ok := middleware.FromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Not logged in"))
		return
	}

	var req dto.SubmitTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body", err.Error()))
		return
	}

	result, err := c.submissionService.SubmitTest(auth.UserID, req)
	if err != nil {
		if errors.Is(err, service.ErrSectionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse("Section not found"))
			return
		}
		log.Error().Err(err).Uint("userID", auth.UserID).Msg("SubmitTest: service error")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to submit test"))
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetUserScores godoc
// @Summary Get the authenticated student's attempt history
// @Tags Tests
// @Produce json
// @Success 200 {array} dto.UserScoreDTO
// @Failure 401 {object} dto.ErrorResponse "Not logged in"
// @Router /api/user_scores [get]
func (c *StudentController) GetUserScores(ctx *gin.Context) {
	auth, ok := middleware.FromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Not logged in"))
		return
	}

	scores, err := c.submissionService.GetUserScores(auth.UserID)
	if err != nil {
		log.Error().Err(err).Uint("userID", auth.UserID).Msg("GetUserScores: service error")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to retrieve scores"))
		return
	}
	ctx.JSON(http.StatusOK, scores)
}

// GetSectionPerformance godoc
// @Summary Get the authenticated student's per-section averages
// @Tags Tests
// @Produce json
// @Success 200 {array} dto.SectionPerformanceDTO
// @Failure 401 {object} dto.ErrorResponse "Not logged in"
// @Router /api/section_performance [get]
func (c *StudentController) GetSectionPerformance(ctx *gin.Context) {
	auth, ok := middleware.FromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Not logged in"))
		return
	}

	performance, err := c.submissionService.GetSectionPerformance(auth.UserID)
	if err != nil {
		log.Error().Err(err).Uint("userID", auth.UserID).Msg("GetSectionPerformance: service error")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to retrieve section performance"))
		return
	}
	ctx.JSON(http.StatusOK, performance)
}

// SaveResume godoc
// @Summary Save the resume and receive the derived quality scores
// @Tags Resume
// @Accept json
// @Produce json
// @Param resume body dto.SaveResumeRequest true "Resume fields"
// @Success 200 {object} dto.SaveResumeResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Not logged in"
// @Router /api/save_resume [post]
func (c *StudentController) SaveResume(ctx *gin.Context) {
	auth, ok := middleware.FromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Not logged in"))
		return
	}

	var req dto.SaveResumeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body", err.Error()))
		return
	}

	scores, err := c.resumeService.SaveResume(auth.UserID, req)
	if err != nil {
		log.Error().Err(err).Uint("userID", auth.UserID).Msg("SaveResume: service error")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to save resume"))
		return
	}
	ctx.JSON(http.StatusOK, dto.SaveResumeResponse{Success: true, Scores: *scores})
}

// GetResume godoc
// @Summary Get the stored resume record
// @Tags Resume
// @Produce json
// @Success 200 {object} dto.ResumeDTO
// @Failure 401 {object} dto.ErrorResponse "Not logged in"
// @Failure 404 {object} dto.ErrorResponse "No resume found"
// @Router /api/get_resume [get]
func (c *StudentController) GetResume(ctx *gin.Context) {
	auth, ok := middleware.FromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Not logged in"))
		return
	}

	resume, err := c.resumeService.GetResume(auth.UserID)
	if err != nil {
		if errors.Is(err, service.ErrResumeNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse("No resume found"))
			return
		}
		log.Error().Err(err).Uint("userID", auth.UserID).Msg("GetResume: service error")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to retrieve resume"))
		return
	}
	ctx.JSON(http.StatusOK, resume)
}

// GetRecommendations godoc
// @Summary Get the current recommendation, generating one if none exists
// @Tags Recommendations
// @Produce json
// @Success 200 {object} dto.RecommendationDTO
// @Failure 401 {object} dto.ErrorResponse "Not logged in"
// @Router /api/ai_recommendations [get]
func (c *StudentController) GetRecommendations(ctx *gin.Context) {
	auth, ok := middleware.FromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Not logged in"))
		return
	}

	rec, err := c.recService.GetCurrent(auth.UserID)
	if err != nil {
		log.Error().Err(err).Uint("userID", auth.UserID).Msg("GetRecommendations: service error")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to retrieve recommendations"))
		return
	}
	ctx.JSON(http.StatusOK, rec)
}
