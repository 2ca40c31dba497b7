package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/learnhub/internal/app/models"
	"github.com/yigit/learnhub/internal/app/models/dto"
	"github.com/yigit/learnhub/internal/pkg/cache"
)

// QuizLister lists the quiz lectures of a course in display order.
type QuizLister interface {
	ListQuizzesByCourse(ctx context.Context, courseID int64) ([]models.Lecture, error)
}

// QuizResultsByLecture lists every student's results for a set of lectures, newest first.
type QuizResultsByLecture interface {
	ListByLectures(ctx context.Context, lectureIDs []int64) ([]models.QuizResult, error)
}

// EnrollmentCounter counts enrollment rows of a course.
type EnrollmentCounter interface {
	CountByCourse(ctx context.Context, courseID int64) (int, error)
}

// StatisticsService computes course dashboards from raw quiz results.
// The reads of one computation share no snapshot; a result stored between
// them may show up in one and not the other.
type StatisticsService struct {
	lectures     QuizLister
	results      QuizResultsByLecture
	enrollments  EnrollmentCounter
	cache        *cache.Cache
	cacheTTL     time.Duration
	queryTimeout time.Duration
	logger       zerolog.Logger
}

// NewStatisticsService creates a new StatisticsService. A nil cache or a zero
// ttl disables caching; a zero queryTimeout leaves the caller's deadline alone.
func NewStatisticsService(
	lectures QuizLister,
	results QuizResultsByLecture,
	enrollments EnrollmentCounter,
	statsCache *cache.Cache,
	cacheTTL time.Duration,
	queryTimeout time.Duration,
	logger zerolog.Logger,
) *StatisticsService {
	return &StatisticsService{
		lectures:     lectures,
		results:      results,
		enrollments:  enrollments,
		cache:        statsCache,
		cacheTTL:     cacheTTL,
		queryTimeout: queryTimeout,
		logger:       logger,
	}
}

func (s *StatisticsService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

// loadQuizResults fetches the quiz set of a course and all results for it.
func (s *StatisticsService) loadQuizResults(ctx context.Context, courseID int64) ([]models.Lecture, []models.QuizResult, error) {
	quizzes, err := s.lectures.ListQuizzesByCourse(ctx, courseID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load quizzes: %w", err)
	}

	ids := make([]int64, len(quizzes))
	for i, q := range quizzes {
		ids[i] = q.ID
	}

	results, err := s.results.ListByLectures(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load quiz results: %w", err)
	}
	return quizzes, results, nil
}

// StudentStatistics returns one student's dashboard for a course.
func (s *StatisticsService) StudentStatistics(ctx context.Context, courseID, studentID int64) (*dto.StudentStatistics, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	quizzes, results, err := s.loadQuizResults(ctx, courseID)
	if err != nil {
		s.logger.Error().Err(err).Int64("courseID", courseID).Int64("studentID", studentID).Msg("Student statistics failed")
		return nil, err
	}
	return BuildStudentStatistics(quizzes, results, studentID), nil
}

// TeacherStatistics returns the cohort dashboard for a course, through the
// cache when one is configured.
func (s *StatisticsService) TeacherStatistics(ctx context.Context, courseID int64) (*dto.TeacherStatistics, error) {
	load := func(ctx context.Context) (*dto.TeacherStatistics, error) {
		ctx, cancel := s.withTimeout(ctx)
		defer cancel()

		enrolled, err := s.enrollments.CountByCourse(ctx, courseID)
		if err != nil {
			return nil, fmt.Errorf("failed to count enrollments: %w", err)
		}
		quizzes, results, err := s.loadQuizResults(ctx, courseID)
		if err != nil {
			return nil, err
		}
		return BuildTeacherStatistics(quizzes, results, enrolled), nil
	}

	var (
		stats *dto.TeacherStatistics
		err   error
	)
	if s.cacheTTL > 0 {
		stats, err = cache.GetOrLoad(ctx, s.cache, cache.TeacherStatisticsKey(courseID), s.cacheTTL, load)
	} else {
		stats, err = load(ctx)
	}
	if err != nil {
		s.logger.Error().Err(err).Int64("courseID", courseID).Msg("Teacher statistics failed")
		return nil, err
	}
	return stats, nil
}
