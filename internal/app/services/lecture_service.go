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

// LectureStore persists lectures.
type LectureStore interface {
	Create(ctx context.Context, lecture *models.Lecture) error
	GetByID(ctx context.Context, id int64) (*models.Lecture, error)
	ListByCourse(ctx context.Context, courseID int64) ([]models.Lecture, error)
	Update(ctx context.Context, lecture *models.Lecture) error
	Delete(ctx context.Context, id int64) error
}

// LectureService handles lecture CRUD
type LectureService struct {
	lectures LectureStore
	cache    *cache.Cache
	logger   zerolog.Logger
}

// NewLectureService creates a new LectureService
func NewLectureService(lectures LectureStore, statsCache *cache.Cache, logger zerolog.Logger) *LectureService {
	return &LectureService{lectures: lectures, cache: statsCache, logger: logger}
}

// validateLecture checks the type and, for quizzes, the question shapes.
func validateLecture(l *models.Lecture) error {
	if strings.TrimSpace(l.Title) == "" {
		return apperrors.NewValidationError("title", "title is required")
	}
	if !l.Type.IsValid() {
		return apperrors.NewValidationError("type", "type must be one of text, video, quiz")
	}
	if l.Type == models.LectureQuiz {
		if err := models.ValidateQuestions(l.Questions); err != nil {
			return apperrors.NewValidationError("questions", err.Error())
		}
	}
	return nil
}

// ListByCourse returns a course's lectures ordered by their order field
func (s *LectureService) ListByCourse(ctx context.Context, courseID int64) ([]models.Lecture, error) {
	return s.lectures.ListByCourse(ctx, courseID)
}

// Get returns a lecture by id
func (s *LectureService) Get(ctx context.Context, id int64) (*models.Lecture, error) {
	return s.lectures.GetByID(ctx, id)
}

// Create stores a lecture. Order defaults to 1.
func (s *LectureService) Create(ctx context.Context, req *dto.CreateLectureRequest) (*models.Lecture, error) {
	lecture := &models.Lecture{
		CourseID:  req.CourseID,
		Title:     strings.TrimSpace(req.Title),
		Type:      models.LectureType(req.Type),
		Content:   req.Content,
		VideoURL:  req.VideoURL,
		Questions: req.Questions,
		Order:     1,
	}
	if req.Order != nil {
		lecture.Order = *req.Order
	}
	if err := validateLecture(lecture); err != nil {
		return nil, err
	}

	if err := s.lectures.Create(ctx, lecture); err != nil {
		return nil, err
	}
	if lecture.Type == models.LectureQuiz {
		s.cache.Invalidate(ctx, cache.TeacherStatisticsKey(lecture.CourseID))
	}
	s.logger.Info().Int64("lectureID", lecture.ID).Int64("courseID", lecture.CourseID).Str("type", string(lecture.Type)).Msg("Lecture created")
	return lecture, nil
}

// Update applies the non-nil fields of req to an existing lecture
func (s *LectureService) Update(ctx context.Context, lecture *models.Lecture, req *dto.UpdateLectureRequest) (*models.Lecture, error) {
	wasQuiz := lecture.Type == models.LectureQuiz

	if req.Title != nil {
		lecture.Title = strings.TrimSpace(*req.Title)
	}
	if req.Type != nil {
		lecture.Type = models.LectureType(*req.Type)
	}
	if req.Content != nil {
		lecture.Content = req.Content
	}
	if req.VideoURL != nil {
		lecture.VideoURL = req.VideoURL
	}
	if req.Questions != nil {
		lecture.Questions = *req.Questions
	}
	if req.Order != nil {
		lecture.Order = *req.Order
	}
	if err := validateLecture(lecture); err != nil {
		return nil, err
	}

	if err := s.lectures.Update(ctx, lecture); err != nil {
		return nil, err
	}
	if wasQuiz || lecture.Type == models.LectureQuiz {
		s.cache.Invalidate(ctx, cache.TeacherStatisticsKey(lecture.CourseID))
	}
	return lecture, nil
}

// Delete removes a lecture along with its quiz results
func (s *LectureService) Delete(ctx context.Context, lecture *models.Lecture) error {
	if err := s.lectures.Delete(ctx, lecture.ID); err != nil {
		return err
	}
	if lecture.Type == models.LectureQuiz {
		s.cache.Invalidate(ctx, cache.TeacherStatisticsKey(lecture.CourseID))
	}
	s.logger.Info().Int64("lectureID", lecture.ID).Msg("Lecture deleted")
	return nil
}
