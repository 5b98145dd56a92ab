package dto

import "github.com/Aya-Jafar/storefront-api/pkg/models"

// BannerDTO is the flattened banner shape handed to the rendering layer.
type BannerDTO struct {
	ID           string `json:"id"`
	ImageURL     string `json:"imageURL"`
	Title        string `json:"title"`
	ActionID     string `json:"actionId"`
	ActionTarget string `json:"actionTarget"`
}

// BannerGridPropertiesDTO carries banner-grid layout settings in camelCase
// with safe defaults.
type BannerGridPropertiesDTO struct {
	Cols                  string `json:"cols"`
	Rows                  string `json:"rows"`
	Ratio                 string `json:"ratio"`
	Direction             string `json:"direction"`
	HasShadow             bool   `json:"hasShadow"`
	LineSpacing           string `json:"lineSpacing"`
	InteritemSpacing      string `json:"interitemSpacing"`
	LeftRightMargins      string `json:"leftRightMargins"`
	TopBottomMargins      string `json:"topBottomMargins"`
	OuterLeftRightMargins string `json:"outerLeftRightMargins"`
	OuterTopBottomMargins string `json:"outerTopBottomMargins"`
	InnerLeftRightSpacing string `json:"innerLeftRightSpacing"`
	InnerTopBottomSpacing string `json:"innerTopBottomSpacing"`
}

// BuildBanners normalizes raw banner records. Nil input yields an empty
// slice.
func BuildBanners(raw []models.RawBanner) []BannerDTO {
	out := make([]BannerDTO, 0, len(raw))
	for _, b := range raw {
		d := BannerDTO{
			ID:       b.ID,
			ImageURL: b.Image,
			Title:    b.Title,
		}
		if b.Action != nil {
			d.ActionID = b.Action.ID
			d.ActionTarget = b.Action.Target
		}
		out = append(out, d)
	}
	return out
}

// BuildBannerProperties converts raw banner-grid layout settings to the DTO
// form, applying the display defaults.
func BuildBannerProperties(p *models.BannerGridProperties) BannerGridPropertiesDTO {
	if p == nil {
		p = &models.BannerGridProperties{}
	}
	return BannerGridPropertiesDTO{
		Cols:                  orDefault(p.Cols.String(), "1"),
		Rows:                  orDefault(p.Rows.String(), "1"),
		Ratio:                 orDefault(p.Ratio.String(), "1"),
		Direction:             orDefault(p.Direction, "vertical"),
		HasShadow:             boolOrDefault(p.HasShadow, false),
		LineSpacing:           orDefault(p.LineSpacing.String(), "0"),
		InteritemSpacing:      orDefault(p.InteritemSpacing.String(), "0"),
		LeftRightMargins:      orDefault(p.LeftRightMargins.String(), "0"),
		TopBottomMargins:      orDefault(p.TopBottomMargins.String(), "0"),
		OuterLeftRightMargins: orDefault(p.OuterLeftRightMargins.String(), "16"),
		OuterTopBottomMargins: orDefault(p.OuterTopBottomMargins.String(), "8"),
		InnerLeftRightSpacing: orDefault(p.InnerLeftRightSpacing.String(), "16"),
		InnerTopBottomSpacing: orDefault(p.InnerTopBottomSpacing.String(), "8"),
	}
}
