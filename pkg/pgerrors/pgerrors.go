// Package pgerrors maps lib/pq errors to PostgreSQL SQLSTATE codes.
package pgerrors

import (
	"errors"

	"github.com/lib/pq"
)

const (
	UniqueViolation      = "23505"
	ForeignKeyViolation  = "23503"
	ExclusionViolation   = "23P01"
	SerializationFailure = "40001"
)

// Code returns the SQLSTATE of err, or "" when err is not a *pq.Error.
func Code(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// Is reports whether err carries the given SQLSTATE code.
func Is(err error, code string) bool {
	return err != nil && Code(err) == code
}

// Constraint returns the violated constraint name, if any.
func Constraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}
