package dto

// ErrorResponse is the uniform failure body for every endpoint.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// SuccessResponse is used when an operation has no payload beyond a message.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func NewErrorResponse(message string, details ...string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message, Details: details}
}
