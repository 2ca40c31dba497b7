package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/learnhub/internal/app/models"
	"github.com/yigit/learnhub/internal/app/models/dto"
)

// UserRoleLister lists users by role.
type UserRoleLister interface {
	ListByRole(ctx context.Context, role models.RoleType) ([]models.User, error)
}

// UserService defines the interface for user operations
type UserService interface {
	ListTeachers(ctx context.Context) ([]dto.TeacherResponse, error)
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo UserRoleLister
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo UserRoleLister, logger zerolog.Logger) UserService {
	return &userServiceImpl{userRepo: userRepo, logger: logger}
}

// ListTeachers returns every user with the teacher role
func (s *userServiceImpl) ListTeachers(ctx context.Context) ([]dto.TeacherResponse, error) {
	users, err := s.userRepo.ListByRole(ctx, models.RoleTeacher)
	if err != nil {
		return nil, fmt.Errorf("error listing teachers: %w", err)
	}

	teachers := make([]dto.TeacherResponse, 0, len(users))
	for _, u := range users {
		teachers = append(teachers, dto.TeacherResponse{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Role:      string(u.RoleType),
			PhotoURL:  u.PhotoURL,
		})
	}
	return teachers, nil
}
