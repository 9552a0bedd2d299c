package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Placify/internal/dto"
	"github.com/lshigami/Placify/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminController struct {
	adminService service.AdminService
}

func NewAdminController(adminService service.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// GetStudents godoc
// @Summary (Admin) List all students with attempt aggregates
// @Tags Admin
// @Produce json
// @Success 200 {array} dto.AdminStudentDTO
// @Failure 401 {object} dto.ErrorResponse "Not logged in"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /api/admin/students [get]
func (c *AdminController) GetStudents(ctx *gin.Context) {
	students, err := c.adminService.GetStudents()
	if err != nil {
		log.Error().Err(err).Msg("Admin GetStudents: service error")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to retrieve students"))
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// GetDepartmentStats godoc
// @Summary (Admin) Department-wise performance statistics
// @Tags Admin
// @Produce json
// @Success 200 {array} dto.DepartmentStatsDTO
// @Failure 401 {object} dto.ErrorResponse "Not logged in"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /api/admin/department_stats [get]
func (c *AdminController) GetDepartmentStats(ctx *gin.Context) {
	stats, err := c.adminService.GetDepartmentStats()
	if err != nil {
		log.Error().Err(err).Msg("Admin GetDepartmentStats: service error")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to retrieve department stats"))
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
