package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// IsDuplicateConstraintError reports a unique_violation on the named constraint.
// An empty constraint name matches any unique violation.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	return isCode(err, uniqueViolation, constraintName)
}

// IsForeignKeyViolation reports a foreign_key_violation on the named constraint.
// An empty constraint name matches any foreign key violation.
func IsForeignKeyViolation(err error, constraintName string) bool {
	return isCode(err, foreignKeyViolation, constraintName)
}

func isCode(err error, code, constraintName string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != code {
		return false
	}
	return constraintName == "" || pgErr.ConstraintName == constraintName
}
