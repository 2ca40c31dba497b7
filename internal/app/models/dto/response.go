package dto

import "time"

// APIResponse is the success envelope used by the CRUD endpoints.
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewSuccessResponse wraps data in a successful APIResponse.
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// MessageResponse is a plain confirmation body.
type MessageResponse struct {
	Message string `json:"message" example:"Enrollment deleted"`
}
