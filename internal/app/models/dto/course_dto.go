package dto

// CreateCourseRequest is the body of POST /courses. TeacherID defaults to the caller.
type CreateCourseRequest struct {
	Title       string  `json:"title" binding:"required,max=200" example:"Intro to Go"`
	Description *string `json:"description"`
	Capacity    *int    `json:"capacity" binding:"omitempty,min=0" example:"30"`
	IsPremium   *bool   `json:"isPremium"`
	HasAds      *bool   `json:"hasAds"`
	TeacherID   *int64  `json:"teacherId" example:"2"`
	PhotoURL    *string `json:"photoUrl"`
}

// UpdateCourseRequest is the body of PUT /courses/{id}; nil fields are left unchanged.
type UpdateCourseRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	Capacity    *int    `json:"capacity" binding:"omitempty,min=0"`
	IsPremium   *bool   `json:"isPremium"`
	HasAds      *bool   `json:"hasAds"`
	PhotoURL    *string `json:"photoUrl"`
}
