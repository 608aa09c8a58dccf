package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

// SQLSTATE codes the repositories translate. Anything else is returned as is.
var sqlStateSentinels = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation: duplicate stage, industry or invite
	"23503": domain.ErrNotFound,      // foreign_key_violation: dangling stage, analyst or category
	"23502": domain.ErrValidation,    // not_null_violation
	"23514": domain.ErrValidation,    // check_violation: enum columns
	"22P02": domain.ErrValidation,    // invalid_text_representation
	"22001": domain.ErrValidation,    // string_data_right_truncation
	"40001": domain.ErrConflict,      // serialization_failure
	"40P01": domain.ErrConflict,      // deadlock_detected
}

// MapError rewrites a driver error as "<entity> <id>: <sentinel>" so the
// transport layer can pick a status. Context errors keep their identity and
// are only prefixed. A violated constraint is named in the message.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	subject := entity
	if id != uuid.Nil {
		subject = entity + " " + id.String()
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w", subject, err)
	case errors.Is(err, pgx.ErrNoRows), pgxscan.NotFound(err):
		return fmt.Errorf("%s: %w", subject, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", subject, err)
	}
	sentinel, ok := sqlStateSentinels[pgErr.Code]
	if !ok {
		return fmt.Errorf("%s: %w", subject, err)
	}
	if pgErr.ConstraintName != "" {
		return fmt.Errorf("%s: %w (%s)", subject, sentinel, pgErr.ConstraintName)
	}
	return fmt.Errorf("%s: %w", subject, sentinel)
}
