package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/learnhub/internal/app/models"
	"github.com/yigit/learnhub/internal/app/models/dto"
	"github.com/yigit/learnhub/internal/pkg/apperrors"
	"github.com/yigit/learnhub/internal/pkg/cache"
)

// CourseStore persists courses.
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	List(ctx context.Context) ([]models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// CourseService handles course CRUD
type CourseService struct {
	courses CourseStore
	cache   *cache.Cache
	logger  zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courses CourseStore, statsCache *cache.Cache, logger zerolog.Logger) *CourseService {
	return &CourseService{courses: courses, cache: statsCache, logger: logger}
}

// List returns every course, newest first
func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	return s.courses.List(ctx)
}

// Get returns one course with its teacher
func (s *CourseService) Get(ctx context.Context, id int64) (*models.Course, error) {
	return s.courses.GetByID(ctx, id)
}

// Create stores a course. Only admins may assign it to another teacher.
func (s *CourseService) Create(ctx context.Context, req *dto.CreateCourseRequest, callerID int64, callerRole models.RoleType) (*models.Course, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.NewValidationError("title", "title is required")
	}

	course := &models.Course{
		Title:       title,
		Description: req.Description,
		Capacity:    req.Capacity,
		HasAds:      true,
		TeacherID:   callerID,
		PhotoURL:    req.PhotoURL,
	}
	if req.IsPremium != nil {
		course.IsPremium = *req.IsPremium
	}
	if req.HasAds != nil {
		course.HasAds = *req.HasAds
	}
	if req.TeacherID != nil && *req.TeacherID != callerID {
		if callerRole != models.RoleAdmin {
			return nil, apperrors.NewForbiddenError("Only an admin can create a course for another teacher")
		}
		course.TeacherID = *req.TeacherID
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("courseID", course.ID).Int64("teacherID", course.TeacherID).Msg("Course created")
	return s.courses.GetByID(ctx, course.ID)
}

// Update applies the non-nil fields of req
func (s *CourseService) Update(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperrors.NewValidationError("title", "title cannot be empty")
		}
		course.Title = title
	}
	if req.Description != nil {
		course.Description = req.Description
	}
	if req.Capacity != nil {
		course.Capacity = req.Capacity
	}
	if req.IsPremium != nil {
		course.IsPremium = *req.IsPremium
	}
	if req.HasAds != nil {
		course.HasAds = *req.HasAds
	}
	if req.PhotoURL != nil {
		course.PhotoURL = req.PhotoURL
	}

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Delete removes a course and everything that hangs off it
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	if err := s.courses.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cache.TeacherStatisticsKey(id))
	s.logger.Info().Int64("courseID", id).Msg("Course deleted")
	return nil
}
