package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/learnhub/internal/app/models"
	"github.com/yigit/learnhub/internal/app/models/dto"
	"github.com/yigit/learnhub/internal/pkg/apperrors"
)

// DefaultPassScore applies when a final test is saved without a pass score.
const DefaultPassScore = 60

// FinalTestStore persists final tests and their results.
type FinalTestStore interface {
	Upsert(ctx context.Context, test *models.FinalTest) error
	GetByCourse(ctx context.Context, courseID int64) (*models.FinalTest, error)
	CreateResult(ctx context.Context, result *models.TestResult) error
	ListResults(ctx context.Context, courseID int64, studentID *int64) ([]models.TestResult, error)
}

// FinalTestService manages the cumulative test of each course
type FinalTestService struct {
	tests  FinalTestStore
	logger zerolog.Logger
}

// NewFinalTestService creates a new FinalTestService
func NewFinalTestService(tests FinalTestStore, logger zerolog.Logger) *FinalTestService {
	return &FinalTestService{tests: tests, logger: logger}
}

// Get returns the final test of a course
func (s *FinalTestService) Get(ctx context.Context, courseID int64) (*models.FinalTest, error) {
	return s.tests.GetByCourse(ctx, courseID)
}

// Save creates or replaces the final test of a course
func (s *FinalTestService) Save(ctx context.Context, courseID int64, req *dto.UpsertFinalTestRequest) (*models.FinalTest, error) {
	if err := models.ValidateQuestions(req.Questions); err != nil {
		return nil, apperrors.NewValidationError("questions", err.Error())
	}

	test := &models.FinalTest{
		CourseID:  courseID,
		Title:     strings.TrimSpace(req.Title),
		Questions: req.Questions,
		PassScore: DefaultPassScore,
	}
	if req.PassScore != nil {
		test.PassScore = *req.PassScore
	}

	if err := s.tests.Upsert(ctx, test); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("courseID", courseID).Int64("finalTestID", test.ID).Msg("Final test saved")
	return test, nil
}

// Submit grades a student's answers and stores the attempt. The attempt
// passes when its percentage reaches the test's pass score.
func (s *FinalTestService) Submit(ctx context.Context, courseID, studentID int64, answers []models.Answer) (*dto.QuizAttemptResponse, error) {
	if err := models.ValidateAnswers(answers); err != nil {
		return nil, apperrors.NewValidationError("answers", err.Error())
	}

	test, err := s.tests.GetByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	correct, total := GradeQuiz(test.Questions, answers)
	score := PercentScore(correct, total)
	result := &models.TestResult{
		StudentID:   studentID,
		CourseID:    courseID,
		FinalTestID: test.ID,
		Score:       score,
		MaxScore:    100,
		Answers:     answers,
		Passed:      score >= test.PassScore,
	}
	if err := s.tests.CreateResult(ctx, result); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("courseID", courseID).Int64("studentID", studentID).Int("score", score).Bool("passed", result.Passed).Msg("Final test submitted")
	return &dto.QuizAttemptResponse{Result: result, Correct: correct, Total: total}, nil
}

// Results lists final test attempts, optionally for one student, newest first
func (s *FinalTestService) Results(ctx context.Context, courseID int64, studentID *int64) ([]models.TestResult, error) {
	return s.tests.ListResults(ctx, courseID, studentID)
}
