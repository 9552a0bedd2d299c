package service

import (
	"fmt"

	"github.com/lshigami/Placify/internal/dto"
	"github.com/lshigami/Placify/internal/repository"
	"github.com/rs/zerolog/log"
)

// AdminService serves the aggregate views of the admin dashboard.
type AdminService interface {
	GetStudents() ([]dto.AdminStudentDTO, error)
	GetDepartmentStats() ([]dto.DepartmentStatsDTO, error)
}

type adminService struct {
	userRepo repository.UserRepository
}

func NewAdminService(userRepo repository.UserRepository) AdminService {
	return &adminService{userRepo: userRepo}
}

func (s *adminService) GetStudents() ([]dto.AdminStudentDTO, error) {
	students, err := s.userRepo.FindStudentsWithStats()
	if err != nil {
		log.Error().Err(err).Msg("GetStudents: repository error")
		return nil, fmt.Errorf("error fetching students: %w", err)
	}

	dtos := make([]dto.AdminStudentDTO, 0, len(students))
	for _, st := range students {
		avg := st.AvgScore
		if avg != nil {
			rounded := round2(*avg)
			avg = &rounded
		}
		dtos = append(dtos, dto.AdminStudentDTO{
			ID:                st.ID,
			Username:          st.Username,
			Email:             st.Email,
			FullName:          st.FullName,
			Department:        st.Department,
			Year:              st.Year,
			College:           st.College,
			AvgScore:          avg,
			SectionsAttempted: st.SectionsAttempted,
		})
	}
	return dtos, nil
}

func (s *adminService) GetDepartmentStats() ([]dto.DepartmentStatsDTO, error) {
	stats, err := s.userRepo.FindDepartmentStats()
	if err != nil {
		log.Error().Err(err).Msg("GetDepartmentStats: repository error")
		return nil, fmt.Errorf("error fetching department stats: %w", err)
	}

	dtos := make([]dto.DepartmentStatsDTO, 0, len(stats))
	for _, st := range stats {
		avg := st.AvgScore
		if avg != nil {
			rounded := round2(*avg)
			avg = &rounded
		}
		dtos = append(dtos, dto.DepartmentStatsDTO{
			Department:    st.Department,
			StudentCount:  st.StudentCount,
			AvgScore:      avg,
			TotalAttempts: st.TotalAttempts,
		})
	}
	return dtos, nil
}
