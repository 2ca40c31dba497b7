package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/learnhub/internal/app/models"
	"github.com/yigit/learnhub/internal/app/models/dto"
	"github.com/yigit/learnhub/internal/pkg/apperrors"
	"github.com/yigit/learnhub/internal/pkg/cache"
)

// QuizResultStore persists quiz attempts.
type QuizResultStore interface {
	Create(ctx context.Context, result *models.QuizResult) error
	ListByStudent(ctx context.Context, studentID int64, lectureID *int64) ([]models.QuizResult, error)
}

// LectureGetter loads a single lecture.
type LectureGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Lecture, error)
}

// QuizResultService records and lists quiz attempts.
type QuizResultService struct {
	results  QuizResultStore
	lectures LectureGetter
	cache    *cache.Cache
	logger   zerolog.Logger
}

// NewQuizResultService creates a new QuizResultService
func NewQuizResultService(results QuizResultStore, lectures LectureGetter, statsCache *cache.Cache, logger zerolog.Logger) *QuizResultService {
	return &QuizResultService{
		results:  results,
		lectures: lectures,
		cache:    statsCache,
		logger:   logger,
	}
}

// Record stores a caller-scored attempt. Score is not checked against
// maxScore, and the lecture is not required to be a quiz.
func (s *QuizResultService) Record(ctx context.Context, req *dto.CreateQuizResultRequest) (*models.QuizResult, error) {
	switch {
	case req.StudentID == nil:
		return nil, apperrors.NewValidationError("studentId", "studentId is required")
	case req.LectureID == nil:
		return nil, apperrors.NewValidationError("lectureId", "lectureId is required")
	case req.Score == nil:
		return nil, apperrors.NewValidationError("score", "score is required")
	}
	if err := models.ValidateAnswers(req.Answers); err != nil {
		return nil, apperrors.NewValidationError("answers", err.Error())
	}

	result := &models.QuizResult{
		StudentID: *req.StudentID,
		LectureID: *req.LectureID,
		Score:     *req.Score,
		Answers:   req.Answers,
	}
	if req.MaxScore != nil {
		result.MaxScore = *req.MaxScore
	}

	if err := s.results.Create(ctx, result); err != nil {
		return nil, err
	}
	s.afterRecord(ctx, result, nil)
	return result, nil
}

// SubmitQuizAttempt grades the answers against the quiz and stores the
// attempt as a percentage out of 100.
func (s *QuizResultService) SubmitQuizAttempt(ctx context.Context, studentID, lectureID int64, answers []models.Answer) (*dto.QuizAttemptResponse, error) {
	if err := models.ValidateAnswers(answers); err != nil {
		return nil, apperrors.NewValidationError("answers", err.Error())
	}

	lecture, err := s.lectures.GetByID(ctx, lectureID)
	if err != nil {
		return nil, err
	}
	if lecture.Type != models.LectureQuiz {
		return nil, apperrors.NewBadRequestError("Lecture is not a quiz")
	}

	correct, total := GradeQuiz(lecture.Questions, answers)
	result := &models.QuizResult{
		StudentID: studentID,
		LectureID: lectureID,
		Score:     PercentScore(correct, total),
		MaxScore:  100,
		Answers:   answers,
	}
	if err := s.results.Create(ctx, result); err != nil {
		return nil, err
	}
	s.afterRecord(ctx, result, lecture)

	return &dto.QuizAttemptResponse{Result: result, Correct: correct, Total: total}, nil
}

// afterRecord drops the cached cohort statistics of the lecture's course.
func (s *QuizResultService) afterRecord(ctx context.Context, result *models.QuizResult, lecture *models.Lecture) {
	s.logger.Info().
		Int64("resultID", result.ID).
		Int64("studentID", result.StudentID).
		Int64("lectureID", result.LectureID).
		Int("score", result.Score).
		Msg("Quiz result recorded")

	if !s.cache.Enabled() {
		return
	}
	if lecture == nil {
		var err error
		lecture, err = s.lectures.GetByID(ctx, result.LectureID)
		if err != nil {
			s.logger.Warn().Err(err).Int64("lectureID", result.LectureID).Msg("Could not resolve course for cache invalidation")
			return
		}
	}
	s.cache.Invalidate(ctx, cache.TeacherStatisticsKey(lecture.CourseID))
}

// List returns a student's attempts, optionally for one lecture, newest first.
func (s *QuizResultService) List(ctx context.Context, studentID int64, lectureID *int64) ([]models.QuizResult, error) {
	return s.results.ListByStudent(ctx, studentID, lectureID)
}
