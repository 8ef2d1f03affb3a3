// Package storage defines the storage error kinds shared by repositories and services.
package storage

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
	ErrTransient     = errors.New("transient storage failure")
)

// SQLSTATE codes and classes that are worth retrying.
var (
	transientClasses = []string{"08", "40", "53"}
	transientCodes   = map[string]struct{}{
		"55P03": {}, // lock_not_available
		"57014": {}, // query_canceled
		"57P01": {}, // admin_shutdown
		"57P02": {}, // crash_shutdown
		"57P03": {}, // cannot_connect_now
	}
)

// Classify wraps err with the matching storage error kind, keeping err in the chain.
// Errors that match no kind are returned unchanged.
func Classify(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%s: %w: %w", op, ErrNotFound, err)
	case IsUniqueViolation(err):
		return fmt.Errorf("%s: %w: %w", op, ErrAlreadyExists, err)
	case IsTransient(err):
		return fmt.Errorf("%s: %w: %w", op, ErrTransient, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// IsUniqueViolation reports whether err is a Postgres unique_violation (23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// wrapped so that PgError is not reachable
	return strings.Contains(err.Error(), "SQLSTATE 23505")
}

// IsTransient reports whether err is a failure that may succeed when retried:
// lost connections, serialization failures, deadlocks, lock timeouts, cancellations.
func IsTransient(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if _, ok := transientCodes[pgErr.Code]; ok {
			return true
		}
		for _, class := range transientClasses {
			if strings.HasPrefix(pgErr.Code, class) {
				return true
			}
		}
		return false
	}

	if pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
