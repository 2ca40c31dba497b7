package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/learnhub/internal/app/models"
	"github.com/yigit/learnhub/internal/pkg/apperrors"
	"github.com/yigit/learnhub/internal/pkg/dberrors"
	"github.com/yigit/learnhub/internal/pkg/logger"
)

var quizResultColumns = []string{"id", "student_id", "lecture_id", "score", "max_score", "answers", "date_taken"}

// QuizResultRepository stores quiz attempts. Rows are append-only.
type QuizResultRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewQuizResultRepository creates a new QuizResultRepository
func NewQuizResultRepository(db *pgxpool.Pool) *QuizResultRepository {
	return &QuizResultRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanQuizResult(row pgx.Row) (*models.QuizResult, error) {
	var q models.QuizResult
	if err := row.Scan(&q.ID, &q.StudentID, &q.LectureID, &q.Score, &q.MaxScore, &q.Answers, &q.DateTaken); err != nil {
		return nil, err
	}
	return &q, nil
}

// Create inserts an attempt; date_taken is set by the database.
func (r *QuizResultRepository) Create(ctx context.Context, result *models.QuizResult) error {
	answers, err := jsonbParam(result.Answers)
	if err != nil {
		return err
	}

	sql, args, err := r.sb.Insert("quiz_results").
		Columns("student_id", "lecture_id", "score", "max_score", "answers").
		Values(result.StudentID, result.LectureID, result.Score, result.MaxScore, answers).
		Suffix("RETURNING id, date_taken").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create quiz result query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&result.ID, &result.DateTaken); err != nil {
		switch {
		case dberrors.IsForeignKeyViolation(err, "quiz_results_lecture_id_fkey"):
			return apperrors.ErrLectureNotFound
		case dberrors.IsForeignKeyViolation(err, "quiz_results_student_id_fkey"):
			return apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("studentID", result.StudentID).Int64("lectureID", result.LectureID).Msg("Error creating quiz result")
		return fmt.Errorf("error creating quiz result: %w", err)
	}
	return nil
}

// listQuery orders newest first; id breaks ties between attempts stored in the same instant.
func (r *QuizResultRepository) listQuery(where squirrel.Sqlizer) (string, []interface{}, error) {
	return r.sb.Select(quizResultColumns...).
		From("quiz_results").
		Where(where).
		OrderBy("date_taken DESC", "id DESC").
		ToSql()
}

func (r *QuizResultRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]models.QuizResult, error) {
	sql, args, err := r.listQuery(where)
	if err != nil {
		return nil, fmt.Errorf("failed to build list quiz results query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing quiz results")
		return nil, fmt.Errorf("error listing quiz results: %w", err)
	}
	defer rows.Close()

	results := []models.QuizResult{}
	for rows.Next() {
		q, err := scanQuizResult(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning quiz result: %w", err)
		}
		results = append(results, *q)
	}
	return results, rows.Err()
}

// ListByStudent returns a student's attempts, optionally for one lecture, newest first.
func (r *QuizResultRepository) ListByStudent(ctx context.Context, studentID int64, lectureID *int64) ([]models.QuizResult, error) {
	where := squirrel.Eq{"student_id": studentID}
	if lectureID != nil {
		where["lecture_id"] = *lectureID
	}
	return r.list(ctx, where)
}

// ListByLectures returns every student's attempts for the given lectures, newest first.
func (r *QuizResultRepository) ListByLectures(ctx context.Context, lectureIDs []int64) ([]models.QuizResult, error) {
	if len(lectureIDs) == 0 {
		return []models.QuizResult{}, nil
	}
	return r.list(ctx, squirrel.Eq{"lecture_id": lectureIDs})
}
