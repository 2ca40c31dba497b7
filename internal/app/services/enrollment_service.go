package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/learnhub/internal/app/models"
	"github.com/yigit/learnhub/internal/pkg/apperrors"
	"github.com/yigit/learnhub/internal/pkg/cache"
)

// EnrollmentStore persists enrollments.
type EnrollmentStore interface {
	Enroll(ctx context.Context, userID, courseID int64) (*models.Enrollment, error)
	EnrollMany(ctx context.Context, userID int64, courseIDs []int64) ([]models.Enrollment, error)
	Delete(ctx context.Context, userID, courseID int64) error
	ListByUser(ctx context.Context, userID int64) ([]models.Enrollment, error)
}

// UserFinder resolves users by email.
type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// EnrollmentService manages course membership. Course capacity is display
// data only and is not checked here.
type EnrollmentService struct {
	enrollments EnrollmentStore
	users       UserFinder
	cache       *cache.Cache
	logger      zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(enrollments EnrollmentStore, users UserFinder, statsCache *cache.Cache, logger zerolog.Logger) *EnrollmentService {
	return &EnrollmentService{
		enrollments: enrollments,
		users:       users,
		cache:       statsCache,
		logger:      logger,
	}
}

func (s *EnrollmentService) invalidate(ctx context.Context, courseIDs ...int64) {
	keys := make([]string, len(courseIDs))
	for i, id := range courseIDs {
		keys[i] = cache.TeacherStatisticsKey(id)
	}
	s.cache.Invalidate(ctx, keys...)
}

func (s *EnrollmentService) userByEmail(ctx context.Context, email string) (*models.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, apperrors.NewValidationError("email", "email is required")
	}
	return s.users.GetByEmail(ctx, email)
}

// Enroll adds the user to the course. Enrolling twice is a no-op that
// returns the existing row.
func (s *EnrollmentService) Enroll(ctx context.Context, userID, courseID int64) (*models.Enrollment, error) {
	enrollment, err := s.enrollments.Enroll(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, courseID)
	s.logger.Info().Int64("userID", userID).Int64("courseID", courseID).Msg("User enrolled")
	return enrollment, nil
}

// Unenroll removes the user from the course; ErrEnrollmentNotFound when the
// user was not enrolled.
func (s *EnrollmentService) Unenroll(ctx context.Context, userID, courseID int64) error {
	if err := s.enrollments.Delete(ctx, userID, courseID); err != nil {
		return err
	}
	s.invalidate(ctx, courseID)
	s.logger.Info().Int64("userID", userID).Int64("courseID", courseID).Msg("User unenrolled")
	return nil
}

// SyncEnrollmentsByEmail enrolls the user identified by email in every listed
// course atomically and returns the user with all current enrollments.
func (s *EnrollmentService) SyncEnrollmentsByEmail(ctx context.Context, email string, courseIDs []int64) (*models.User, error) {
	for _, id := range courseIDs {
		if id <= 0 {
			return nil, apperrors.NewValidationError("courseId", "courseId must be a positive integer")
		}
	}

	user, err := s.userByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if len(courseIDs) > 0 {
		if _, err := s.enrollments.EnrollMany(ctx, user.ID, courseIDs); err != nil {
			return nil, err
		}
		s.invalidate(ctx, courseIDs...)
	}

	user.Enrollments, err = s.enrollments.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UnenrollByEmail removes the user identified by email from the course.
func (s *EnrollmentService) UnenrollByEmail(ctx context.Context, email string, courseID int64) error {
	user, err := s.userByEmail(ctx, email)
	if err != nil {
		return err
	}
	return s.Unenroll(ctx, user.ID, courseID)
}

// GetUserWithEnrollments returns the user identified by email together with
// the courses they are enrolled in.
func (s *EnrollmentService) GetUserWithEnrollments(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	user.Enrollments, err = s.enrollments.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return user, nil
}
