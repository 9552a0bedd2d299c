package dto

// AdminStudentDTO is one student row in the admin overview, with attempt
// aggregates joined in. AvgScore is nil for students who never took a test.
type AdminStudentDTO struct {
	ID                uint     `json:"id"`
	Username          string   `json:"username"`
	Email             string   `json:"email"`
	FullName          string   `json:"full_name"`
	Department        string   `json:"department,omitempty"`
	Year              string   `json:"year,omitempty"`
	College           string   `json:"college,omitempty"`
	AvgScore          *float64 `json:"avg_score"`
	SectionsAttempted int      `json:"sections_attempted"`
}

// DepartmentStatsDTO aggregates student performance per department.
type DepartmentStatsDTO struct {
	Department    string   `json:"department"`
	StudentCount  int      `json:"student_count"`
	AvgScore      *float64 `json:"avg_score"`
	TotalAttempts int      `json:"total_attempts"`
}
