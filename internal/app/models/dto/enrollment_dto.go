package dto

import "github.com/yigit/learnhub/internal/app/models"

// EnrollmentItem names one course in an enrollment sync request.
type EnrollmentItem struct {
	CourseID int64 `json:"courseId" binding:"required" example:"1"`
}

// UpdateEnrollmentsRequest is the body of PUT /users/{email}
type UpdateEnrollmentsRequest struct {
	Enrollments []EnrollmentItem `json:"enrollments" binding:"required,dive"`
}

// CourseIDs flattens the requested course ids.
func (r UpdateEnrollmentsRequest) CourseIDs() []int64 {
	ids := make([]int64, 0, len(r.Enrollments))
	for _, e := range r.Enrollments {
		ids = append(ids, e.CourseID)
	}
	return ids
}

// DeleteEnrollmentRequest is the body of DELETE /users/{email}
type DeleteEnrollmentRequest struct {
	CourseID int64 `json:"courseId" binding:"required" example:"1"`
}

// UserEnrollmentsResponse is a user together with the courses they are enrolled in.
type UserEnrollmentsResponse struct {
	*UserResponse
	Enrollments []models.Enrollment `json:"enrollments"`
}

// NewUserEnrollmentsResponse builds the response, never emitting a null list.
func NewUserEnrollmentsResponse(u *models.User) *UserEnrollmentsResponse {
	enrollments := u.Enrollments
	if enrollments == nil {
		enrollments = []models.Enrollment{}
	}
	return &UserEnrollmentsResponse{
		UserResponse: NewUserResponse(u),
		Enrollments:  enrollments,
	}
}
