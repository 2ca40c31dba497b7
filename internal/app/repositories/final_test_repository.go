package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/learnhub/internal/app/models"
	"github.com/yigit/learnhub/internal/pkg/apperrors"
	"github.com/yigit/learnhub/internal/pkg/dberrors"
	"github.com/yigit/learnhub/internal/pkg/logger"
)

// FinalTestRepository handles final tests and their results
type FinalTestRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFinalTestRepository creates a new FinalTestRepository
func NewFinalTestRepository(db *pgxpool.Pool) *FinalTestRepository {
	return &FinalTestRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Upsert creates or replaces the single final test of a course.
func (r *FinalTestRepository) Upsert(ctx context.Context, test *models.FinalTest) error {
	questions, err := jsonbParam(test.Questions)
	if err != nil {
		return err
	}

	sql, args, err := r.sb.Insert("final_tests").
		Columns("course_id", "title", "questions", "pass_score").
		Values(test.CourseID, test.Title, questions, test.PassScore).
		Suffix(`ON CONFLICT (course_id) DO UPDATE SET
			title = EXCLUDED.title,
			questions = EXCLUDED.questions,
			pass_score = EXCLUDED.pass_score,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert final test query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&test.ID, &test.CreatedAt, &test.UpdatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err, "") {
			return apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", test.CourseID).Msg("Error saving final test")
		return fmt.Errorf("error saving final test: %w", err)
	}
	return nil
}

// GetByCourse returns the final test of a course
func (r *FinalTestRepository) GetByCourse(ctx context.Context, courseID int64) (*models.FinalTest, error) {
	sql, args, err := r.sb.Select("id", "course_id", "title", "questions", "pass_score", "created_at", "updated_at").
		From("final_tests").
		Where(squirrel.Eq{"course_id": courseID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get final test query: %w", err)
	}

	var t models.FinalTest
	err = r.db.QueryRow(ctx, sql, args...).Scan(&t.ID, &t.CourseID, &t.Title, &t.Questions, &t.PassScore, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFinalTestNotFound
		}
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error retrieving final test")
		return nil, fmt.Errorf("error retrieving final test: %w", err)
	}
	return &t, nil
}

// CreateResult stores a graded final test attempt
func (r *FinalTestRepository) CreateResult(ctx context.Context, result *models.TestResult) error {
	answers, err := jsonbParam(result.Answers)
	if err != nil {
		return err
	}

	sql, args, err := r.sb.Insert("test_results").
		Columns("student_id", "course_id", "final_test_id", "score", "max_score", "answers", "passed").
		Values(result.StudentID, result.CourseID, result.FinalTestID, result.Score, result.MaxScore, answers, result.Passed).
		Suffix("RETURNING id, date_taken").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create test result query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&result.ID, &result.DateTaken); err != nil {
		if dberrors.IsForeignKeyViolation(err, "") {
			return apperrors.NewResourceNotFoundError("Student, course or final test not found")
		}
		logger.Error().Err(err).Int64("courseID", result.CourseID).Msg("Error creating test result")
		return fmt.Errorf("error creating test result: %w", err)
	}
	return nil
}

// ListResults returns final test attempts of a course, optionally for one student, newest first.
func (r *FinalTestRepository) ListResults(ctx context.Context, courseID int64, studentID *int64) ([]models.TestResult, error) {
	where := squirrel.Eq{"course_id": courseID}
	if studentID != nil {
		where["student_id"] = *studentID
	}

	sql, args, err := r.sb.Select("id", "student_id", "course_id", "final_test_id", "score", "max_score", "answers", "passed", "date_taken").
		From("test_results").
		Where(where).
		OrderBy("date_taken DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list test results query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error listing test results")
		return nil, fmt.Errorf("error listing test results: %w", err)
	}
	defer rows.Close()

	results := []models.TestResult{}
	for rows.Next() {
		var t models.TestResult
		if err := rows.Scan(&t.ID, &t.StudentID, &t.CourseID, &t.FinalTestID, &t.Score, &t.MaxScore, &t.Answers, &t.Passed, &t.DateTaken); err != nil {
			return nil, fmt.Errorf("error scanning test result: %w", err)
		}
		results = append(results, t)
	}
	return results, rows.Err()
}
