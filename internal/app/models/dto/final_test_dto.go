package dto

import "github.com/yigit/learnhub/internal/app/models"

// UpsertFinalTestRequest is the body of PUT /courses/{id}/final-test
type UpsertFinalTestRequest struct {
	Title     string            `json:"title" binding:"required,max=200" example:"Final exam"`
	Questions []models.Question `json:"questions" binding:"required,min=1"`
	PassScore *int              `json:"passScore" binding:"omitempty,min=0,max=100" example:"60"`
}
