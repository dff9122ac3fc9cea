package sqlite

import (
	"errors"
	"fmt"

	sqlite3 "github.com/mattn/go-sqlite3"
)

// ConstraintKind distinguishes the three integrity violations the
// schema can raise. No other failure is considered a constraint error.
type ConstraintKind string

const (
	ConstraintNotNull    ConstraintKind = "NotNull"
	ConstraintUniqueKey  ConstraintKind = "UniqueKey"
	ConstraintForeignKey ConstraintKind = "ForeignKey"
)

// ConstraintError wraps an engine-level integrity violation. These are
// surfaced immediately to the caller at the point of the violating
// operation; data-integrity errors are not transient, so nothing here
// retries.
type ConstraintError struct {
	Kind ConstraintKind
	Err  error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s constraint violation: %v", e.Kind, e.Err)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// ErrNotFound is returned by lookups and deletes when no row matches
// the given composite key.
var ErrNotFound = errors.New("no row with the given (patient_id, variant_number) key")

// wrapConstraint maps sqlite3 extended result codes onto the
// constraint taxonomy; anything else passes through untouched.
func wrapConstraint(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintPrimaryKey, sqlite3.ErrConstraintUnique:
		return &ConstraintError{Kind: ConstraintUniqueKey, Err: err}
	case sqlite3.ErrConstraintForeignKey:
		return &ConstraintError{Kind: ConstraintForeignKey, Err: err}
	case sqlite3.ErrConstraintNotNull:
		return &ConstraintError{Kind: ConstraintNotNull, Err: err}
	}

	return err
}

func isConstraint(err error, kind ConstraintKind) bool {
	var ce *ConstraintError
	return errors.As(err, &ce) && ce.Kind == kind
}

func IsUniqueKeyViolation(err error) bool {
	return isConstraint(err, ConstraintUniqueKey)
}

func IsForeignKeyViolation(err error) bool {
	return isConstraint(err, ConstraintForeignKey)
}

func IsNotNullViolation(err error) bool {
	return isConstraint(err, ConstraintNotNull)
}
