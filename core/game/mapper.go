// ABOUTME: Maps raw CMS game nodes onto the domain GameRecord
// ABOUTME: Image paths come from the local asset lookup, never from the CMS

package game

import (
	"gameportal-api/core/domain"
	"gameportal-api/core/interfaces"
	timeutil "gameportal-api/pkg/utils/time"
)

// toGameRecord maps node onto a GameRecord. assetSlug selects the local images. A nil node
// maps to nil; missing blocks map to zero values and are caught by Validate.
func toGameRecord(node *domain.CMSGame, assetSlug string, assets interfaces.AssetLookup) *domain.GameRecord {
	if node == nil {
		return nil
	}

	seo := domain.CMSSeo{}
	if node.Seo != nil {
		seo = *node.Seo
	}
	content := domain.CMSGameContent{}
	if node.GameContent != nil {
		content = *node.GameContent
	}
	fields := domain.CMSGameFields{}
	if node.GameFields != nil {
		fields = *node.GameFields
	}

	record := &domain.GameRecord{
		Slug:                content.Slug,
		Title:               content.Title,
		ShortDescription:    fields.ShortDescription,
		LongDescriptionHTML: content.LongDescription,
		IframeURL:           fields.IframeURL,
		Genres:              content.Genre,
		MetaTitle:           seo.Title,
		MetaDescription:     seo.MetaDesc,
		Developer:           fields.Developer,
		PublishedAt:         timeutil.ParseOptional(content.PublishedAt),
	}

	if record.Genres == nil {
		record.Genres = []string{}
	}
	if fields.SocialDescription != nil {
		record.SocialDescription = *fields.SocialDescription
	}
	if fields.FAQJSONLD != nil {
		record.FAQPayload = *fields.FAQJSONLD
	}
	if fields.Rating != nil {
		record.Rating = *fields.Rating
	}
	if fields.RatingCount != nil {
		record.RatingCount = *fields.RatingCount
	}

	if assets != nil {
		if thumb, og, ok := assets.Assets(assetSlug); ok {
			record.ThumbnailPath = thumb
			record.OGImagePath = og
		}
	}

	return record
}
