package dto

import "github.com/yigit/learnhub/internal/app/models"

// CreateLectureRequest is the body of POST /lectures
type CreateLectureRequest struct {
	CourseID  int64             `json:"courseId" binding:"required" example:"1"`
	Title     string            `json:"title" binding:"required,max=200" example:"Week 1 quiz"`
	Type      string            `json:"type" binding:"required,oneof=text video quiz" example:"quiz"`
	Content   *string           `json:"content"`
	VideoURL  *string           `json:"videoUrl"`
	Questions []models.Question `json:"questions"`
	Order     *int              `json:"order" example:"1"`
}

// UpdateLectureRequest is the body of PUT /lectures/{id}; nil fields are left unchanged.
type UpdateLectureRequest struct {
	Title     *string            `json:"title" binding:"omitempty,min=1,max=200"`
	Type      *string            `json:"type" binding:"omitempty,oneof=text video quiz"`
	Content   *string            `json:"content"`
	VideoURL  *string            `json:"videoUrl"`
	Questions *[]models.Question `json:"questions"`
	Order     *int               `json:"order"`
}

// SubmitAnswersRequest carries a student's answers for server-side grading.
type SubmitAnswersRequest struct {
	Answers []models.Answer `json:"answers" binding:"required"`
}

// QuizAttemptResponse is returned after grading a quiz or final test.
type QuizAttemptResponse struct {
	Result  interface{} `json:"result"`
	Correct int         `json:"correct" example:"4"`
	Total   int         `json:"total" example:"5"`
}
