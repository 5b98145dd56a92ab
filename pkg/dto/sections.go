package dto

import (
	"encoding/json"

	"github.com/Aya-Jafar/storefront-api/pkg/models"
)

// Section is one normalized block of the feed. Exactly one of the content
// pairs is set, matching Type.
type Section struct {
	Type              string                   `json:"type"`
	Products          []ProductDTO             `json:"products,omitempty"`
	ProductProperties *ProductPropertiesDTO    `json:"productProperties,omitempty"`
	Banners           []BannerDTO              `json:"banners,omitempty"`
	BannerProperties  *BannerGridPropertiesDTO `json:"bannerProperties,omitempty"`
}

// BuildSections normalizes the tagged feed sections. Sections with unknown
// types or undecodable payloads are skipped rather than failing the feed.
func BuildSections(feed *models.FeedResponse) []Section {
	if feed == nil {
		return []Section{}
	}
	out := make([]Section, 0, len(feed.Content))
	for _, raw := range feed.Content {
		switch raw.Type {
		case models.SectionTypeProducts:
			var products []models.RawProduct
			if len(raw.Content) > 0 {
				if err := json.Unmarshal(raw.Content, &products); err != nil {
					continue
				}
			}
			var props *models.ProductProperties
			if len(raw.Properties) > 0 {
				// Properties are optional; a bad block falls back to defaults.
				_ = json.Unmarshal(raw.Properties, &props)
			}
			p := BuildProductProperties(props)
			out = append(out, Section{
				Type:              raw.Type,
				Products:          BuildProducts(products),
				ProductProperties: &p,
			})
		case models.SectionTypeGrid:
			var banners []models.RawBanner
			if len(raw.Content) > 0 {
				if err := json.Unmarshal(raw.Content, &banners); err != nil {
					continue
				}
			}
			var props *models.BannerGridProperties
			if len(raw.Properties) > 0 {
				_ = json.Unmarshal(raw.Properties, &props)
			}
			p := BuildBannerProperties(props)
			out = append(out, Section{
				Type:             raw.Type,
				Banners:          BuildBanners(banners),
				BannerProperties: &p,
			})
		}
	}
	return out
}
