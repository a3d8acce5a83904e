package infra

import (
	"errors"
	"log/slog"

	"hotel-backend/internal/pkg/errs"
	"hotel-backend/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind       RepositoryErrorKind
	Constraint string
	msg        string
	err        error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}

	var constraint string
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		constraint = pgErr.ConstraintName
		logArgs = append(logArgs,
			slog.String("sqlstate", pgErr.Code),
			slog.String("constraint", constraint),
		)
	}

	if kind == KindDBFailure {
		slogger.Error("Repository error: "+msg, logArgs...)
	} else {
		slogger.Debug("Repository error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, Constraint: constraint, msg: msg, err: err}
}

// ClassifyErr picks the kind from the PostgreSQL error behind err.
func ClassifyErr(slogger *slog.Logger, msg string, err error) error {
	return WrapRepoErr(slogger, KindOf(err), msg, err)
}

func KindOf(err error) RepositoryErrorKind {
	if pgconv.IsNoRows(err) {
		return KindNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return KindDBFailure
	}

	switch pgErr.Code {
	case pgErrCodeUniqueViolation:
		return KindDuplicateKey
	case pgErrCodeForeignKeyViolation:
		return KindForeignKeyViolated
	case pgErrCodeExclusionViolation:
		return KindConflict
	default:
		return KindDBFailure
	}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ConstraintOf returns the violated constraint name, if any.
func ConstraintOf(err error) string {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Constraint
	}
	return ""
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindConflict           RepositoryErrorKind = "CONFLICT"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeExclusionViolation  = "23P01"
)

// Constraint names from migrations/001_initial_schema.sql
const (
	ConstraintRoomNumber   = "rooms_number_key"
	ConstraintClientEmail  = "clients_email_key"
	ConstraintNoDoubleBook = "reservations_no_double_booking"
	ConstraintRoomFK       = "reservations_room_id_fkey"
	ConstraintClientFK     = "reservations_client_id_fkey"
)
