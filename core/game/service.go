// ABOUTME: Game data pipeline: fetch from the CMS, map, validate
// ABOUTME: Every operation returns a domain.Result instead of an error

package game

import (
	"context"
	"encoding/json"

	"gameportal-api/core/domain"
	apperrors "gameportal-api/core/errors"
	"gameportal-api/core/interfaces"
)

// Service fetches and validates game records
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates a new game service
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

// FetchBySlug fetches one game. A query that matches nothing succeeds with nil data; a
// record that fails validation is a VALIDATION_ERROR.
func (s *Service) FetchBySlug(ctx context.Context, slug string, opts domain.QueryOptions) domain.Result[*domain.GameRecord] {
	data, apiErr := s.execute(ctx, interfaces.GraphQLRequest{
		Name:      "game",
		Query:     GameBySlugQuery,
		Variables: map[string]interface{}{"slug": slug},
		Options:   opts,
	})
	if apiErr != nil {
		return domain.Fail[*domain.GameRecord](apiErr)
	}

	var payload domain.GameQueryData
	if err := json.Unmarshal(data, &payload); err != nil {
		return domain.Fail[*domain.GameRecord](apperrors.Network(err.Error(), map[string]interface{}{
			"originalError": "decode",
		}))
	}

	record := toGameRecord(payload.Game, slug, s.deps.Assets)
	if record == nil {
		return domain.Ok[*domain.GameRecord](nil)
	}

	if verr := Validate(record); verr != nil {
		return domain.Fail[*domain.GameRecord](verr)
	}

	return domain.Ok(record)
}

// FetchBySlugs fetches several games in one query. Records failing validation are logged
// and dropped; only transport and GraphQL failures fail the batch.
func (s *Service) FetchBySlugs(ctx context.Context, slugs []string, opts domain.QueryOptions) domain.Result[[]domain.GameRecord] {
	if len(slugs) == 0 {
		return domain.Ok([]domain.GameRecord{})
	}

	data, apiErr := s.execute(ctx, interfaces.GraphQLRequest{
		Name:      "games",
		Query:     GamesBySlugsQuery,
		Variables: map[string]interface{}{"slugs": slugs},
		Options:   opts,
	})
	if apiErr != nil {
		return domain.Fail[[]domain.GameRecord](apiErr)
	}

	var payload domain.GamesQueryData
	if err := json.Unmarshal(data, &payload); err != nil {
		return domain.Fail[[]domain.GameRecord](apperrors.Network(err.Error(), map[string]interface{}{
			"originalError": "decode",
		}))
	}

	records := make([]domain.GameRecord, 0, len(payload.Games.Nodes))
	for i := range payload.Games.Nodes {
		node := &payload.Games.Nodes[i]

		assetSlug := ""
		if node.GameContent != nil {
			assetSlug = node.GameContent.Slug
		}

		record := toGameRecord(node, assetSlug, s.deps.Assets)
		if verr := Validate(record); verr != nil {
			s.dropped(record, verr)
			continue
		}
		records = append(records, *record)
	}

	return domain.Ok(records)
}

func (s *Service) execute(ctx context.Context, req interfaces.GraphQLRequest) (json.RawMessage, *apperrors.APIError) {
	data, err := s.deps.CMS.Execute(ctx, req)
	if err == nil {
		return data, nil
	}

	if apiErr, ok := apperrors.AsAPIError(err); ok {
		return nil, apiErr
	}
	return nil, apperrors.Network(err.Error(), nil)
}

func (s *Service) dropped(record *domain.GameRecord, verr *apperrors.APIError) {
	field, _ := verr.Details["field"].(string)

	s.deps.Logger.Warn("Dropping invalid game record", map[string]interface{}{
		"slug":   record.Slug,
		"field":  field,
		"reason": verr.Message,
	})

	if s.deps.Metrics != nil {
		s.deps.Metrics.RecordDropped(field)
	}
}
