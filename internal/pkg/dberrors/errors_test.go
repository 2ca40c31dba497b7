package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestConstraintClassification(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "enrollments_course_id_fkey"}
	wrapped := fmt.Errorf("insert user: %w", dup)

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"duplicate named", IsDuplicateConstraintError(dup, "users_email_key"), true},
		{"duplicate wrapped", IsDuplicateConstraintError(wrapped, "users_email_key"), true},
		{"duplicate any", IsDuplicateConstraintError(dup, ""), true},
		{"duplicate other constraint", IsDuplicateConstraintError(dup, "courses_pkey"), false},
		{"fk named", IsForeignKeyViolation(fk, "enrollments_course_id_fkey"), true},
		{"fk is not duplicate", IsDuplicateConstraintError(fk, ""), false},
		{"plain error", IsForeignKeyViolation(errors.New("boom"), ""), false},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}
