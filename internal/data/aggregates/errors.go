package aggregates

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainagg "github.com/mpac-commercial/course-design-assessment/internal/domain/aggregates"
)

var (
	// ErrNotFound indicates a referenced record does not exist.
	ErrNotFound = errors.New("aggregate not found")
	// ErrConflict indicates a duplicate or mismatched reference.
	ErrConflict = errors.New("aggregate conflict")
	// ErrInvalidLength indicates a name outside its allowed length.
	ErrInvalidLength = errors.New("aggregate invalid length")
	// ErrOutOfRange indicates a numeric value outside its allowed range.
	ErrOutOfRange = errors.New("aggregate out of range")
)

// kindError carries a user-facing message tagged with one of the sentinels above.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string        { return e.msg }
func (e *kindError) Is(target error) bool { return target == e.kind }

func tagged(kind error, msg string) error {
	return &kindError{kind: kind, msg: strings.TrimSpace(msg)}
}

// NotFoundError tags an error as a missing reference.
func NotFoundError(msg string) error { return tagged(ErrNotFound, msg) }

// ConflictError tags an error as a conflict.
func ConflictError(msg string) error { return tagged(ErrConflict, msg) }

// InvalidLengthError tags an error as a length violation.
func InvalidLengthError(msg string) error { return tagged(ErrInvalidLength, msg) }

// OutOfRangeError tags an error as a range violation.
func OutOfRangeError(msg string) error { return tagged(ErrOutOfRange, msg) }

// MapError maps infrastructure/domain failures into aggregate error codes.
// A foreign-key violation is reported as CodeNotFound (missing parent on insert).
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var aggErr *domainagg.Error
	if errors.As(err, &aggErr) {
		return err
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return domainagg.Wrap(domainagg.CodeNotFound, op, err)
	case errors.Is(err, ErrConflict):
		return domainagg.Wrap(domainagg.CodeConflict, op, err)
	case errors.Is(err, ErrInvalidLength):
		return domainagg.Wrap(domainagg.CodeInvalidLength, op, err)
	case errors.Is(err, ErrOutOfRange):
		return domainagg.Wrap(domainagg.CodeOutOfRange, op, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domainagg.Wrap(domainagg.CodeNotFound, op, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return domainagg.Wrap(domainagg.CodeInternal, op, err)
	case IsUniqueViolation(err):
		return domainagg.Wrap(domainagg.CodeConflict, op, err)
	case IsForeignKeyViolation(err):
		return domainagg.Wrap(domainagg.CodeNotFound, op, err)
	default:
		return domainagg.Wrap(domainagg.CodeInternal, op, err)
	}
}

// IsUniqueViolation reports whether err comes from a unique index.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.TrimSpace(pgErr.Code) == "23505" // unique_violation
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") ||
		strings.Contains(msg, "duplicate key")
}

// IsForeignKeyViolation reports whether err comes from a foreign key constraint.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.TrimSpace(pgErr.Code) == "23503" // foreign_key_violation
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key constraint")
}
