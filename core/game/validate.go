package game

import (
	"strings"

	"gameportal-api/core/domain"
	apperrors "gameportal-api/core/errors"
)

const (
	requirementString = "is required and must be a string"
	requirementHTTPS  = "is required and must use HTTPS"
)

// Validate checks the invariants a record must satisfy before it is served: non-empty
// slug and title, and an https iframe URL. Fields are checked in that order and the first
// failure is returned.
func Validate(record *domain.GameRecord) *apperrors.APIError {
	if record.Slug == "" {
		return apperrors.Validation("slug", record.Slug, requirementString)
	}

	if record.Title == "" {
		return apperrors.Validation("title", record.Title, requirementString)
	}

	if !strings.HasPrefix(record.IframeURL, "https://") {
		return apperrors.Validation("iframe_url", record.IframeURL, requirementHTTPS)
	}

	return nil
}
