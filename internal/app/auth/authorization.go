package auth

import (
	"context"

	"github.com/yigit/learnhub/internal/app/models"
	"github.com/yigit/learnhub/internal/pkg/apperrors"
	"github.com/yigit/learnhub/internal/pkg/logger"
)

// CourseOwnerLookup resolves the teacher that owns a course.
type CourseOwnerLookup interface {
	GetTeacherID(ctx context.Context, courseID int64) (int64, error)
}

// AuthorizationService handles authorization operations
type AuthorizationService struct {
	courses CourseOwnerLookup
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(courses CourseOwnerLookup) *AuthorizationService {
	return &AuthorizationService{courses: courses}
}

// IsStaff reports whether the role may act on other users' data.
func IsStaff(role models.RoleType) bool {
	return role == models.RoleTeacher || role == models.RoleAdmin
}

// CanManageCourse reports whether the user owns the course or is an admin.
// A missing course yields ErrCourseNotFound for every caller.
func (s *AuthorizationService) CanManageCourse(ctx context.Context, courseID, userID int64, role models.RoleType) (bool, error) {
	teacherID, err := s.courses.GetTeacherID(ctx, courseID)
	if err != nil {
		return false, err
	}
	return role == models.RoleAdmin || teacherID == userID, nil
}

// ValidateCourseOwnership returns a forbidden error unless the user may manage the course.
func (s *AuthorizationService) ValidateCourseOwnership(ctx context.Context, courseID, userID int64, role models.RoleType) error {
	ok, err := s.CanManageCourse(ctx, courseID, userID, role)
	if err != nil {
		return err
	}
	if !ok {
		logger.Warn().Int64("courseID", courseID).Int64("userID", userID).Msg("Course ownership check failed")
		return apperrors.NewForbiddenError("Only the course teacher or an admin can perform this action")
	}
	return nil
}

// ValidateStudentStatisticsAccess allows the student themself, the course
// owner and admins.
func (s *AuthorizationService) ValidateStudentStatisticsAccess(ctx context.Context, courseID, studentID, userID int64, role models.RoleType) error {
	if userID == studentID {
		return nil
	}
	ok, err := s.CanManageCourse(ctx, courseID, userID, role)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewForbiddenError("You cannot view another student's statistics")
	}
	return nil
}

// ValidateSelfOrStaff lets students act only on their own records.
func ValidateSelfOrStaff(studentID, userID int64, role models.RoleType) error {
	if userID == studentID || IsStaff(role) {
		return nil
	}
	return apperrors.NewForbiddenError("Students can only access their own quiz results")
}
