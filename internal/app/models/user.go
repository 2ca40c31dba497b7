package models

import (
	"time"
)

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleTeacher RoleType = "teacher"
	RoleAdmin   RoleType = "admin"
)

// IsValid reports whether r is one of the known roles.
func (r RoleType) IsValid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	FirstName string    `json:"firstName" db:"first_name" example:"Ada"`
	LastName  string    `json:"lastName" db:"last_name" example:"Lovelace"`
	Email     string    `json:"email" db:"email" example:"ada@example.com"`
	Password  string    `json:"-" db:"password_hash"`
	RoleType  RoleType  `json:"role" db:"role" example:"student"`
	PhotoURL  *string   `json:"photoUrl,omitempty" db:"photo_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	Enrollments []Enrollment `json:"enrollments,omitempty"` // Relation, no db tag
}

// FullName joins first and last name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
