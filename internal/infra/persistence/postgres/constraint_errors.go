package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SQLSTATE codes of the integrity_constraint_violation class.
const (
	sqlStateNotNullViolation    = "23502"
	sqlStateForeignKeyViolation = "23503"
	sqlStateUniqueViolation     = "23505"
	sqlStateCheckViolation      = "23514"
)

func pgErrorCode(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}

	return "", ""
}

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	code, _ := pgErrorCode(err)

	return code == sqlStateUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	code, _ := pgErrorCode(err)

	return code == sqlStateForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	code, _ := pgErrorCode(err)

	return code == sqlStateNotNullViolation
}

// isCheckConstraintViolation also matches the stock counter check, which is
// what a concurrent over-reservation trips when the guarded UPDATE races.
func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	code, _ := pgErrorCode(err)

	return code == sqlStateCheckViolation
}

// violatedConstraint names the constraint behind a driver error, if any.
func violatedConstraint(err error) string {
	_, constraint := pgErrorCode(err)

	return constraint
}
