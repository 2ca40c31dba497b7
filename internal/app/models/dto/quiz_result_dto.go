package dto

import "github.com/yigit/learnhub/internal/app/models"

// CreateQuizResultRequest is the body of POST /quiz-results. Pointers let a
// score of 0 pass the required check while a missing score fails it.
type CreateQuizResultRequest struct {
	StudentID *int64          `json:"studentId" binding:"required" example:"5"`
	LectureID *int64          `json:"lectureId" binding:"required" example:"10"`
	Score     *int            `json:"score" binding:"required" example:"80"`
	MaxScore  *int            `json:"maxScore" example:"100"`
	Answers   []models.Answer `json:"answers"`
}
