// ABOUTME: Result is the success/failure value returned by every pipeline operation
// ABOUTME: Data and Error are mutually exclusive; callers branch on Success

package domain

import (
	"time"

	apperrors "gameportal-api/core/errors"
)

// Result carries either data or an error, never both
type Result[T any] struct {
	Success bool                `json:"success"`
	Data    T                   `json:"data,omitempty"`
	Error   *apperrors.APIError `json:"error,omitempty"`
}

// Ok wraps data in a successful Result
func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

// Fail wraps an error in a failed Result
func Fail[T any](err *apperrors.APIError) Result[T] {
	return Result[T]{Success: false, Error: err}
}

// Err returns the error as a plain error value, nil on success
func (r Result[T]) Err() error {
	if r.Success || r.Error == nil {
		return nil
	}
	return r.Error
}

// QueryOptions tunes a single CMS query
type QueryOptions struct {
	// CacheTTL is the revalidation window hint for the transport cache. Zero uses the default.
	CacheTTL time.Duration

	// Timeout overrides the client timeout. Zero uses the default.
	Timeout time.Duration

	// NoCache bypasses the transport cache for this query
	NoCache bool
}
