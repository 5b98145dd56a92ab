package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aya-Jafar/storefront-api/pkg/models"
)

func TestBuildProducts_NilAndEmpty(t *testing.T) {
	assert.Equal(t, []ProductDTO{}, BuildProducts(nil))
	assert.Equal(t, []ProductDTO{}, BuildProducts([]models.RawProduct{}))
}

// TestBuildProducts_AllFieldsMissing verifies the total-defaulting
// discipline: a completely empty raw record still yields a DTO with every
// field populated.
func TestBuildProducts_AllFieldsMissing(t *testing.T) {
	out := BuildProducts([]models.RawProduct{{}})
	require.Len(t, out, 1)

	d := out[0]
	assert.Equal(t, "No Title", d.Title)
	assert.Equal(t, "Unknown Brand", d.Brand)
	assert.Equal(t, "Unknown Merchant", d.Merchant)
	assert.Equal(t, "", d.MerchantIcon)
	assert.Equal(t, "", d.MerchantBgColor)
	assert.Equal(t, "Uncategorized", d.Category)
	assert.Equal(t, "0", d.Price)
	assert.Equal(t, "0", d.PriceBeforeDiscount)
	assert.Equal(t, "N/A", d.Currency)
	assert.Equal(t, "0", d.Rating)
	assert.Equal(t, "0", d.RatingCount)
	assert.Equal(t, []string{}, d.Colors)
	assert.Equal(t, "", d.TopTag)
	assert.Equal(t, "", d.BottomTag)
}

func TestBuildProducts_FullRecord(t *testing.T) {
	hasCart := models.FlexBool(false)
	raw := models.RawProduct{
		Type:        "products",
		ID:          "p-1",
		Title:       "Leather Jacket",
		Image:       "https://cdn.example.com/p-1.jpg",
		Brand:       "Acme",
		Category:    "Jackets",
		Rating:      "4.5",
		RatingCount: "120",
		Colors:      []string{"#000", "#fff"},
		Price: &models.Price{
			Value:         "129900",
			Currency:      "IQD",
			OriginalValue: "150000.5",
		},
		StartTag: &models.Tag{Title: "خصم 25%", Color: "#fff", BgColor: "#e00"},
		EndTag:   &models.Tag{Title: "Free Shipping", Color: "#333", BgColor: "#eee"},
		Merchant: &models.Merchant{Title: "Super Store", Icon: "icon.png", BgColor: "#0a0"},
		Properties: &models.ProductProperties{
			ImageRatio: "0.75",
			HasCartBtn: &hasCart,
		},
	}

	out := BuildProducts([]models.RawProduct{raw})
	require.Len(t, out, 1)

	d := out[0]
	assert.Equal(t, "p-1", d.ID)
	assert.Equal(t, "Leather Jacket", d.Title)
	assert.Equal(t, "https://cdn.example.com/p-1.jpg", d.ImageURL)
	assert.Equal(t, "129,900", d.Price)
	assert.Equal(t, "150,000.5", d.PriceBeforeDiscount)
	assert.Equal(t, "IQD", d.Currency)
	assert.Equal(t, "-25%", d.TopTag)
	assert.Equal(t, "#fff", d.TopTagColor)
	assert.Equal(t, "#e00", d.TopTagBgColor)
	assert.Equal(t, "Free Shipping", d.BottomTag)
	assert.Equal(t, "Super Store", d.Merchant)
	assert.Equal(t, "icon.png", d.MerchantIcon)
}

func TestBuildProduct_Nil(t *testing.T) {
	assert.Nil(t, BuildProduct(nil))
}

func TestDiscountLabel(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"25% off", "-25%"},
		{"Save 10 today", "-10%"},
		{"خصم 40%", "-40%"},
		{"Mega Sale", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, discountLabel(tt.title), "title %q", tt.title)
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "1,234,567", formatPrice("1234567"))
	assert.Equal(t, "999", formatPrice("999"))
	assert.Equal(t, "0", formatPrice("not-a-number"))
	assert.Equal(t, "0", formatPrice(""))
}

func TestBuildProductProperties_Defaults(t *testing.T) {
	p := BuildProductProperties(nil)
	assert.Equal(t, "1", p.ImageRatio)
	assert.Equal(t, "", p.TitleLines)
	assert.True(t, p.HasCartBtn)
	assert.True(t, p.HasFavouriteBtn)
	assert.True(t, p.ShouldShowTitle)
	assert.True(t, p.ShouldShowRating)
	assert.True(t, p.ShouldShowVariations)
}

func TestBuildProductProperties_ExplicitFalseSurvives(t *testing.T) {
	off := models.FlexBool(false)
	p := BuildProductProperties(&models.ProductProperties{
		ImageRatio: "0.5",
		HasCartBtn: &off,
	})
	assert.Equal(t, "0.5", p.ImageRatio)
	assert.False(t, p.HasCartBtn)
	assert.True(t, p.HasFavouriteBtn)
}
