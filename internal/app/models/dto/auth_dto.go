package dto

import (
	"time"

	"github.com/yigit/learnhub/internal/app/models"
)

// RegisterRequest is the body of POST /auth/register
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required,max=100" example:"Ada"`
	LastName  string `json:"lastName" binding:"required,max=100" example:"Lovelace"`
	Email     string `json:"email" binding:"required,email" example:"ada@example.com"`
	Password  string `json:"password" binding:"required,min=8" example:"secret123"`
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ada@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// RefreshTokenRequest is the body of POST /auth/refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse is returned on login and refresh
type TokenResponse struct {
	AccessToken      string        `json:"accessToken"`
	RefreshToken     string        `json:"refreshToken"`
	ExpiresIn        int           `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int           `json:"refreshExpiresIn" example:"2592000"`
	TokenType        string        `json:"tokenType" example:"Bearer"`
	User             *UserResponse `json:"user"`
}

// UserResponse is the public view of a user; the password hash never leaves the service.
type UserResponse struct {
	ID        int64     `json:"id" example:"1"`
	FirstName string    `json:"firstName" example:"Ada"`
	LastName  string    `json:"lastName" example:"Lovelace"`
	Email     string    `json:"email" example:"ada@example.com"`
	Role      string    `json:"role" example:"student"`
	PhotoURL  *string   `json:"photoUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserResponse maps a user model to its public view.
func NewUserResponse(u *models.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      string(u.RoleType),
		PhotoURL:  u.PhotoURL,
		CreatedAt: u.CreatedAt,
	}
}

// TeacherResponse is one entry of GET /teachers
type TeacherResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	PhotoURL  *string `json:"photoUrl"`
}
