package models

import "time"

// Course defines the course model based on the 'courses' table
type Course struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Title       string    `json:"title" db:"title" example:"Intro to Go"`
	Description *string   `json:"description" db:"description"`
	Capacity    *int      `json:"capacity" db:"capacity" example:"30"` // Advisory only, never enforced on enroll
	IsPremium   bool      `json:"isPremium" db:"is_premium"`
	HasAds      bool      `json:"hasAds" db:"has_ads"`
	TeacherID   int64     `json:"teacherId" db:"teacher_id" example:"2"`
	PhotoURL    *string   `json:"photoUrl" db:"photo_url"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	Teacher *TeacherSummary `json:"teacher,omitempty"` // Relation, no db tag
}

// TeacherSummary is the public view of a course owner.
type TeacherSummary struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	PhotoURL  *string `json:"photoUrl"`
}

// Enrollment links a user to a course. (user_id, course_id) is the primary key.
type Enrollment struct {
	UserID     int64     `json:"userId" db:"user_id"`
	CourseID   int64     `json:"courseId" db:"course_id"`
	EnrolledAt time.Time `json:"enrolledAt" db:"enrolled_at"`

	Course *Course `json:"course,omitempty"` // Relation, no db tag
}
