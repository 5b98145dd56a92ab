package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aya-Jafar/storefront-api/pkg/models"
)

func TestBuildBanners(t *testing.T) {
	out := BuildBanners([]models.RawBanner{
		{
			ID:     "b-1",
			Image:  "https://cdn.example.com/b-1.jpg",
			Title:  "Summer Sale",
			Action: &models.Action{ID: "a-1", Target: "/sale"},
		},
		{}, // everything missing
	})
	require.Len(t, out, 2)

	assert.Equal(t, BannerDTO{
		ID:           "b-1",
		ImageURL:     "https://cdn.example.com/b-1.jpg",
		Title:        "Summer Sale",
		ActionID:     "a-1",
		ActionTarget: "/sale",
	}, out[0])
	assert.Equal(t, BannerDTO{}, out[1])
}

func TestBuildBanners_Nil(t *testing.T) {
	assert.Equal(t, []BannerDTO{}, BuildBanners(nil))
}

func TestBuildBannerProperties_Defaults(t *testing.T) {
	p := BuildBannerProperties(nil)
	assert.Equal(t, "1", p.Cols)
	assert.Equal(t, "1", p.Rows)
	assert.Equal(t, "1", p.Ratio)
	assert.Equal(t, "vertical", p.Direction)
	assert.False(t, p.HasShadow)
	assert.Equal(t, "0", p.LineSpacing)
	assert.Equal(t, "0", p.InteritemSpacing)
	assert.Equal(t, "0", p.LeftRightMargins)
	assert.Equal(t, "0", p.TopBottomMargins)
	assert.Equal(t, "16", p.OuterLeftRightMargins)
	assert.Equal(t, "8", p.OuterTopBottomMargins)
	assert.Equal(t, "16", p.InnerLeftRightSpacing)
	assert.Equal(t, "8", p.InnerTopBottomSpacing)
}

func TestBuildBannerProperties_Explicit(t *testing.T) {
	shadow := models.FlexBool(true)
	p := BuildBannerProperties(&models.BannerGridProperties{
		Cols:      "2",
		Rows:      "3",
		Direction: "horizontal",
		HasShadow: &shadow,
	})
	assert.Equal(t, "2", p.Cols)
	assert.Equal(t, "3", p.Rows)
	assert.Equal(t, "horizontal", p.Direction)
	assert.True(t, p.HasShadow)
}
