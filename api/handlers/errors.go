// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts pipeline error codes to HTTP responses; details only leave the process in development

package handlers

import (
	"github.com/danielgtaylor/huma/v2"

	apperrors "gameportal-api/core/errors"
)

// toHumaError converts pipeline errors to Huma HTTP errors. When development is true the
// APIError details are attached to the response.
func toHumaError(err error, development bool) error {
	if err == nil {
		return nil
	}

	apiErr, ok := apperrors.AsAPIError(err)
	if !ok {
		return huma.Error500InternalServerError("Internal server error")
	}

	var detail []error
	if development {
		detail = append(detail, &huma.ErrorDetail{
			Message:  apiErr.Message,
			Location: string(apiErr.Code),
			Value:    apiErr.Details,
		})
	}

	switch apiErr.Code {
	case apperrors.CodeNotFound:
		return huma.Error404NotFound(apiErr.Message, detail...)
	case apperrors.CodeValidation:
		return huma.Error422UnprocessableEntity("Invalid game data", detail...)
	case apperrors.CodeGraphQL:
		return huma.Error502BadGateway("Content service error", detail...)
	case apperrors.CodeNetwork:
		if apiErr.Message == timeoutMessage {
			return huma.Error504GatewayTimeout("Content service timeout", detail...)
		}
		return huma.Error503ServiceUnavailable("Content service unavailable", detail...)
	default:
		return huma.Error500InternalServerError("Internal server error", detail...)
	}
}

// timeoutMessage is the message of the NETWORK_ERROR raised when a CMS query times out
const timeoutMessage = "Request timeout"
