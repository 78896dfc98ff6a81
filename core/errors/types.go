// ABOUTME: Error taxonomy for the game content pipeline
// ABOUTME: APIError carries a machine-readable code consumed by the API layer and UI fallbacks

package errors

import (
	"errors"
	"fmt"
)

// Code identifies the kind of failure. The set is closed.
type Code string

const (
	// CodeNotFound means the query succeeded but no record matched
	CodeNotFound Code = "NOT_FOUND"

	// CodeNetwork covers transport failures, timeouts and non-2xx responses
	CodeNetwork Code = "NETWORK_ERROR"

	// CodeGraphQL means the CMS answered but reported application errors
	CodeGraphQL Code = "GRAPHQL_ERROR"

	// CodeValidation means the CMS returned a record that breaks the domain invariants
	CodeValidation Code = "VALIDATION_ERROR"
)

// APIError is the error value propagated from the pipeline to its consumers
type APIError struct {
	Message string                 `json:"message"`
	Code    Code                   `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NotFound builds a NOT_FOUND error for the given slug. kind defaults to "Game".
func NotFound(slug string, kind string) *APIError {
	if kind == "" {
		kind = "Game"
	}
	return &APIError{
		Message: fmt.Sprintf("%s not found: %s", kind, slug),
		Code:    CodeNotFound,
		Details: map[string]interface{}{"slug": slug},
	}
}

// Validation builds a VALIDATION_ERROR naming the offending field, the rejected value
// and the unmet requirement
func Validation(field string, value interface{}, requirement string) *APIError {
	return &APIError{
		Message: fmt.Sprintf("Game %s %s", field, requirement),
		Code:    CodeValidation,
		Details: map[string]interface{}{
			"field":       field,
			"value":       value,
			"requirement": requirement,
		},
	}
}

// Network builds a NETWORK_ERROR
func Network(message string, details map[string]interface{}) *APIError {
	return &APIError{
		Message: message,
		Code:    CodeNetwork,
		Details: details,
	}
}

// GraphQL builds a GRAPHQL_ERROR. Only the first message is surfaced; the full list is kept
// in the details.
func GraphQL(message string, errs interface{}) *APIError {
	return &APIError{
		Message: message,
		Code:    CodeGraphQL,
		Details: map[string]interface{}{"errors": errs},
	}
}

// AsAPIError extracts an *APIError from an error chain
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func hasCode(err error, code Code) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Code == code
}

// IsNotFound checks if an error is a NOT_FOUND APIError
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsValidation checks if an error is a VALIDATION_ERROR APIError
func IsValidation(err error) bool {
	return hasCode(err, CodeValidation)
}

// IsNetwork checks if an error is a NETWORK_ERROR APIError
func IsNetwork(err error) bool {
	return hasCode(err, CodeNetwork)
}

// IsGraphQL checks if an error is a GRAPHQL_ERROR APIError
func IsGraphQL(err error) bool {
	return hasCode(err, CodeGraphQL)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
