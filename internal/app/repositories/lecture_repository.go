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

var lectureColumns = []string{
	"id", "course_id", "title", "type", "content", "video_url", "questions", `"order"`, "created_at", "updated_at",
}

// LectureRepository handles lecture database operations
type LectureRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewLectureRepository creates a new LectureRepository
func NewLectureRepository(db *pgxpool.Pool) *LectureRepository {
	return &LectureRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanLecture(row pgx.Row) (*models.Lecture, error) {
	var l models.Lecture
	err := row.Scan(
		&l.ID, &l.CourseID, &l.Title, &l.Type, &l.Content, &l.VideoURL,
		&l.Questions, &l.Order, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Create inserts a lecture. An unknown course id yields ErrCourseNotFound.
func (r *LectureRepository) Create(ctx context.Context, lecture *models.Lecture) error {
	questions, err := jsonbParam(lecture.Questions)
	if err != nil {
		return err
	}

	sql, args, err := r.sb.Insert("lectures").
		Columns("course_id", "title", "type", "content", "video_url", "questions", `"order"`).
		Values(lecture.CourseID, lecture.Title, lecture.Type, lecture.Content, lecture.VideoURL, questions, lecture.Order).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create lecture query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&lecture.ID, &lecture.CreatedAt, &lecture.UpdatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err, "lectures_course_id_fkey") {
			return apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", lecture.CourseID).Msg("Error creating lecture")
		return fmt.Errorf("error creating lecture: %w", err)
	}
	return nil
}

// GetByID retrieves a lecture by id
func (r *LectureRepository) GetByID(ctx context.Context, id int64) (*models.Lecture, error) {
	sql, args, err := r.sb.Select(lectureColumns...).From("lectures").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get lecture query: %w", err)
	}

	lecture, err := scanLecture(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLectureNotFound
		}
		logger.Error().Err(err).Int64("lectureID", id).Msg("Error retrieving lecture")
		return nil, fmt.Errorf("error retrieving lecture: %w", err)
	}
	return lecture, nil
}

// listQuery orders by the authored sequence with id as a tiebreaker.
func (r *LectureRepository) listQuery(courseID int64, onlyType models.LectureType) (string, []interface{}, error) {
	where := squirrel.Eq{"course_id": courseID}
	if onlyType != "" {
		where["type"] = onlyType
	}
	return r.sb.Select(lectureColumns...).
		From("lectures").
		Where(where).
		OrderBy(`"order" ASC`, "id ASC").
		ToSql()
}

func (r *LectureRepository) list(ctx context.Context, courseID int64, onlyType models.LectureType) ([]models.Lecture, error) {
	sql, args, err := r.listQuery(courseID, onlyType)
	if err != nil {
		return nil, fmt.Errorf("failed to build list lectures query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error listing lectures")
		return nil, fmt.Errorf("error listing lectures: %w", err)
	}
	defer rows.Close()

	lectures := []models.Lecture{}
	for rows.Next() {
		l, err := scanLecture(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning lecture: %w", err)
		}
		lectures = append(lectures, *l)
	}
	return lectures, rows.Err()
}

// ListByCourse returns all lectures of a course in authored order
func (r *LectureRepository) ListByCourse(ctx context.Context, courseID int64) ([]models.Lecture, error) {
	return r.list(ctx, courseID, "")
}

// ListQuizzesByCourse returns the quiz lectures of a course in authored order
func (r *LectureRepository) ListQuizzesByCourse(ctx context.Context, courseID int64) ([]models.Lecture, error) {
	return r.list(ctx, courseID, models.LectureQuiz)
}

// Update writes every mutable lecture field
func (r *LectureRepository) Update(ctx context.Context, lecture *models.Lecture) error {
	questions, err := jsonbParam(lecture.Questions)
	if err != nil {
		return err
	}

	sql, args, err := r.sb.Update("lectures").
		Set("title", lecture.Title).
		Set("type", lecture.Type).
		Set("content", lecture.Content).
		Set("video_url", lecture.VideoURL).
		Set("questions", questions).
		Set(`"order"`, lecture.Order).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": lecture.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update lecture query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&lecture.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrLectureNotFound
		}
		logger.Error().Err(err).Int64("lectureID", lecture.ID).Msg("Error updating lecture")
		return fmt.Errorf("error updating lecture: %w", err)
	}
	return nil
}

// Delete removes a lecture and, by cascade, its quiz results
func (r *LectureRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("lectures").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete lecture query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("lectureID", id).Msg("Error deleting lecture")
		return fmt.Errorf("error deleting lecture: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrLectureNotFound
	}
	return nil
}
