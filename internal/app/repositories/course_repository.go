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

var courseWithTeacherColumns = []string{
	"c.id", "c.title", "c.description", "c.capacity", "c.is_premium", "c.has_ads",
	"c.teacher_id", "c.photo_url", "c.created_at", "c.updated_at",
	"u.id", "u.first_name", "u.last_name", "u.email", "u.role", "u.photo_url",
}

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanCourseWithTeacher(row pgx.Row) (*models.Course, error) {
	var c models.Course
	var t models.TeacherSummary
	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &c.Capacity, &c.IsPremium, &c.HasAds,
		&c.TeacherID, &c.PhotoURL, &c.CreatedAt, &c.UpdatedAt,
		&t.ID, &t.FirstName, &t.LastName, &t.Email, &t.Role, &t.PhotoURL,
	)
	if err != nil {
		return nil, err
	}
	c.Teacher = &t
	return &c, nil
}

func (r *CourseRepository) selectWithTeacher() squirrel.SelectBuilder {
	return r.sb.Select(courseWithTeacherColumns...).
		From("courses c").
		Join("users u ON u.id = c.teacher_id")
}

// Create inserts a course. An unknown teacher id yields ErrUserNotFound.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Insert("courses").
		Columns("title", "description", "capacity", "is_premium", "has_ads", "teacher_id", "photo_url").
		Values(course.Title, course.Description, course.Capacity, course.IsPremium, course.HasAds, course.TeacherID, course.PhotoURL).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err, "courses_teacher_id_fkey") {
			return apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("title", course.Title).Msg("Error creating course")
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// GetByID retrieves a course together with its teacher
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.selectWithTeacher().Where(squirrel.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourseWithTeacher(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error retrieving course")
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// List returns every course, newest first
func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	sql, args, err := r.selectWithTeacher().OrderBy("c.created_at DESC", "c.id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing courses")
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		c, err := scanCourseWithTeacher(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, *c)
	}
	return courses, rows.Err()
}

// Update writes the mutable course fields
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Update("courses").
		SetMap(map[string]interface{}{
			"title":       course.Title,
			"description": course.Description,
			"capacity":    course.Capacity,
			"is_premium":  course.IsPremium,
			"has_ads":     course.HasAds,
			"photo_url":   course.PhotoURL,
			"updated_at":  squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": course.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&course.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", course.ID).Msg("Error updating course")
		return fmt.Errorf("error updating course: %w", err)
	}
	return nil
}

// Delete removes a course. Enrollments, lectures, quiz results, final tests
// and test results go with it through ON DELETE CASCADE.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("courses").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error deleting course")
		return fmt.Errorf("error deleting course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// GetTeacherID returns the owner of a course
func (r *CourseRepository) GetTeacherID(ctx context.Context, courseID int64) (int64, error) {
	var teacherID int64
	err := r.db.QueryRow(ctx, `SELECT teacher_id FROM courses WHERE id = $1`, courseID).Scan(&teacherID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error retrieving course owner")
		return 0, fmt.Errorf("error retrieving course owner: %w", err)
	}
	return teacherID, nil
}
