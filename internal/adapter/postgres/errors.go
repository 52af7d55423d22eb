package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/leadflow-backend/internal/domain"
)

// pgCodeErrors maps SQLSTATE codes to the domain error they stand for.
var pgCodeErrors = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation
	"P0002": domain.ErrNotFound,      // no_data_found, raised by lead functions
	"23502": domain.ErrValidation,    // not_null_violation
	"23514": domain.ErrValidation,    // check_violation
	"22P02": domain.ErrValidation,    // invalid_text_representation
	"40001": domain.ErrConflict,      // serialization_failure
	"40P01": domain.ErrConflict,      // deadlock_detected
}

// MapError converts pgx errors into domain errors, prefixed with the entity
// and id they concern. Context cancellation and unknown database errors keep
// their original error in the chain.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}
	subject := fmt.Sprintf("%s %s", entity, id)

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w", subject, err)
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%s: %w", subject, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := pgCodeErrors[pgErr.Code]; ok {
			if mapped == domain.ErrValidation {
				return fmt.Errorf("%s: %w: %s", subject, mapped, pgErr.Message)
			}
			return fmt.Errorf("%s: %w", subject, mapped)
		}
	}

	return fmt.Errorf("%s: %w", subject, err)
}
