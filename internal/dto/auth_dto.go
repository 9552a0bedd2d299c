package dto

// LoginRequest carries the credentials posted to /api/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse tells the client which dashboard to load for the role.
type LoginResponse struct {
	Success  bool   `json:"success"`
	Role     string `json:"role"`
	Redirect string `json:"redirect"`
}

// RegisterRequest is the student signup payload. College defaults server-side
// when omitted.
type RegisterRequest struct {
	Username   string `json:"username" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	FullName   string `json:"full_name" binding:"required"`
	Department string `json:"department"`
	Year       string `json:"year"`
	College    string `json:"college"`
}

// UserInfoResponse echoes the authenticated session identity.
type UserInfoResponse struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}
