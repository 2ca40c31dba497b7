package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/learnhub/internal/app/models"
	"github.com/yigit/learnhub/internal/db"
	"github.com/yigit/learnhub/internal/pkg/apperrors"
	"github.com/yigit/learnhub/internal/pkg/dberrors"
	"github.com/yigit/learnhub/internal/pkg/logger"
)

// EnrollmentRepository handles enrollment rows. Enroll is a single
// unique-key-backed upsert, so concurrent identical calls cannot create
// duplicates.
type EnrollmentRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(database *db.PostgresDB) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// upsertQuery touches user_id on conflict so RETURNING yields the existing row.
func (r *EnrollmentRepository) upsertQuery(userID, courseID int64) (string, []interface{}, error) {
	return r.sb.Insert("enrollments").
		Columns("user_id", "course_id").
		Values(userID, courseID).
		Suffix("ON CONFLICT (user_id, course_id) DO UPDATE SET user_id = EXCLUDED.user_id RETURNING user_id, course_id, enrolled_at").
		ToSql()
}

func (r *EnrollmentRepository) enroll(ctx context.Context, q db.Querier, userID, courseID int64) (*models.Enrollment, error) {
	sql, args, err := r.upsertQuery(userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to build enroll query: %w", err)
	}

	var e models.Enrollment
	if err := q.QueryRow(ctx, sql, args...).Scan(&e.UserID, &e.CourseID, &e.EnrolledAt); err != nil {
		switch {
		case dberrors.IsForeignKeyViolation(err, "enrollments_course_id_fkey"):
			return nil, apperrors.ErrCourseNotFound
		case dberrors.IsForeignKeyViolation(err, "enrollments_user_id_fkey"):
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Int64("courseID", courseID).Msg("Error enrolling user")
		return nil, fmt.Errorf("error enrolling user: %w", err)
	}
	return &e, nil
}

// Enroll creates the enrollment if absent and returns the current row.
func (r *EnrollmentRepository) Enroll(ctx context.Context, userID, courseID int64) (*models.Enrollment, error) {
	return r.enroll(ctx, r.db.Pool, userID, courseID)
}

// EnrollMany enrolls a user in every course inside one transaction; any
// failure leaves no partial enrollment behind.
func (r *EnrollmentRepository) EnrollMany(ctx context.Context, userID int64, courseIDs []int64) ([]models.Enrollment, error) {
	result := make([]models.Enrollment, 0, len(courseIDs))
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		for _, courseID := range courseIDs {
			e, err := r.enroll(ctx, tx, userID, courseID)
			if err != nil {
				return err
			}
			result = append(result, *e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *EnrollmentRepository) deleteQuery(userID, courseID int64) (string, []interface{}, error) {
	return r.sb.Delete("enrollments").
		Where(squirrel.Eq{"user_id": userID, "course_id": courseID}).
		ToSql()
}

// Delete removes the (user, course) enrollment; zero deleted rows is ErrEnrollmentNotFound.
func (r *EnrollmentRepository) Delete(ctx context.Context, userID, courseID int64) error {
	sql, args, err := r.deleteQuery(userID, courseID)
	if err != nil {
		return fmt.Errorf("failed to build unenroll query: %w", err)
	}

	tag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Int64("courseID", courseID).Msg("Error deleting enrollment")
		return fmt.Errorf("error deleting enrollment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}
	return nil
}

// CountByCourse counts enrollment rows of a course
func (r *EnrollmentRepository) CountByCourse(ctx context.Context, courseID int64) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("enrollments").Where(squirrel.Eq{"course_id": courseID}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count enrollments query: %w", err)
	}

	var n int
	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error counting enrollments")
		return 0, fmt.Errorf("error counting enrollments: %w", err)
	}
	return n, nil
}

// IsEnrolled reports whether the user is enrolled in the course
func (r *EnrollmentRepository) IsEnrolled(ctx context.Context, userID, courseID int64) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM enrollments WHERE user_id = $1 AND course_id = $2)`,
		userID, courseID,
	).Scan(&exists)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Int64("courseID", courseID).Msg("Error checking enrollment")
		return false, fmt.Errorf("error checking enrollment: %w", err)
	}
	return exists, nil
}

// ListByUser returns a user's enrollments with their courses, oldest first.
func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID int64) ([]models.Enrollment, error) {
	sql, args, err := r.sb.Select(
		"e.user_id", "e.course_id", "e.enrolled_at",
		"c.id", "c.title", "c.description", "c.capacity", "c.is_premium", "c.has_ads",
		"c.teacher_id", "c.photo_url", "c.created_at", "c.updated_at",
	).
		From("enrollments e").
		Join("courses c ON c.id = e.course_id").
		Where(squirrel.Eq{"e.user_id": userID}).
		OrderBy("e.enrolled_at ASC", "e.course_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list enrollments query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error listing enrollments")
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []models.Enrollment{}
	for rows.Next() {
		var e models.Enrollment
		var c models.Course
		if err := rows.Scan(
			&e.UserID, &e.CourseID, &e.EnrolledAt,
			&c.ID, &c.Title, &c.Description, &c.Capacity, &c.IsPremium, &c.HasAds,
			&c.TeacherID, &c.PhotoURL, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning enrollment: %w", err)
		}
		e.Course = &c
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}
