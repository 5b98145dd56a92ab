package dto

import (
	"regexp"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/Aya-Jafar/storefront-api/pkg/models"
)

// ProductDTO is the flattened, fully-defaulted product shape handed to the
// rendering layer. Every field is always populated; consumers never
// null-check.
type ProductDTO struct {
	Type                string   `json:"type"`
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	ImageURL            string   `json:"imageURL"`
	Brand               string   `json:"brand"`
	Price               string   `json:"price"`
	Currency            string   `json:"currency"`
	Colors              []string `json:"colors"`
	Rating              string   `json:"rating"`
	RatingCount         string   `json:"ratingCount"`
	Category            string   `json:"category"`
	PriceBeforeDiscount string   `json:"priceBeforeDiscount"`
	TopTag              string   `json:"topTag"`
	TopTagColor         string   `json:"topTagColor"`
	TopTagBgColor       string   `json:"topTagBgColor"`
	BottomTag           string   `json:"bottomTag"`
	BottomTagColor      string   `json:"bottomTagColor"`
	BottomTagBgColor    string   `json:"bottomTagBgColor"`
	Merchant            string   `json:"merchant"`
	MerchantIcon        string   `json:"merchantIcon"`
	MerchantBgColor     string   `json:"merchantBgColor"`
}

// ProductPropertiesDTO carries product-grid layout settings in camelCase
// with safe defaults.
type ProductPropertiesDTO struct {
	ImageRatio           string `json:"imageRatio"`
	TitleLines           string `json:"titleLines"`
	HasCartBtn           bool   `json:"hasCartBtn"`
	HasFavouriteBtn      bool   `json:"hasFavouriteBtn"`
	ShouldShowTitle      bool   `json:"shouldShowTitle"`
	ShouldShowRating     bool   `json:"shouldShowRating"`
	ShouldShowVariations bool   `json:"shouldShowVariations"`
}

var digitRun = regexp.MustCompile(`\d+`)

var pricePrinter = message.NewPrinter(language.English)

// BuildProducts normalizes raw product records into ProductDTOs. A nil or
// empty input yields an empty slice, never an error.
func BuildProducts(raw []models.RawProduct) []ProductDTO {
	out := make([]ProductDTO, 0, len(raw))
	for i := range raw {
		out = append(out, *BuildProduct(&raw[i]))
	}
	return out
}

// BuildProduct normalizes a single raw product record. Nil yields nil.
func BuildProduct(p *models.RawProduct) *ProductDTO {
	if p == nil {
		return nil
	}

	d := &ProductDTO{
		Type:                p.Type,
		ID:                  p.ID,
		Title:               orDefault(p.Title, "No Title"),
		ImageURL:            p.Image,
		Brand:               orDefault(p.Brand, "Unknown Brand"),
		Price:               "0",
		Currency:            "N/A",
		Colors:              p.Colors,
		Rating:              orDefault(p.Rating.String(), "0"),
		RatingCount:         orDefault(p.RatingCount.String(), "0"),
		Category:            orDefault(p.Category, "Uncategorized"),
		PriceBeforeDiscount: "0",
		Merchant:            "Unknown Merchant",
	}
	if d.Colors == nil {
		d.Colors = []string{}
	}

	if p.Price != nil {
		d.Price = formatPrice(p.Price.Value.String())
		d.PriceBeforeDiscount = formatPrice(p.Price.OriginalValue.String())
		d.Currency = orDefault(p.Price.Currency, "N/A")
	}

	if p.StartTag != nil {
		d.TopTag = discountLabel(p.StartTag.Title)
		d.TopTagColor = p.StartTag.Color
		d.TopTagBgColor = p.StartTag.BgColor
	}
	if p.EndTag != nil {
		d.BottomTag = p.EndTag.Title
		d.BottomTagColor = p.EndTag.Color
		d.BottomTagBgColor = p.EndTag.BgColor
	}
	if p.Merchant != nil {
		d.Merchant = orDefault(p.Merchant.Title, "Unknown Merchant")
		d.MerchantIcon = p.Merchant.Icon
		d.MerchantBgColor = p.Merchant.BgColor
	}

	return d
}

// BuildProductProperties converts raw product layout settings to the DTO
// form, applying the display defaults.
func BuildProductProperties(p *models.ProductProperties) ProductPropertiesDTO {
	if p == nil {
		p = &models.ProductProperties{}
	}
	return ProductPropertiesDTO{
		ImageRatio:           orDefault(p.ImageRatio.String(), "1"),
		TitleLines:           p.TitleLines.String(),
		HasCartBtn:           boolOrDefault(p.HasCartBtn, true),
		HasFavouriteBtn:      boolOrDefault(p.HasFavouriteBtn, true),
		ShouldShowTitle:      boolOrDefault(p.ShouldShowTitle, true),
		ShouldShowRating:     boolOrDefault(p.ShouldShowRating, true),
		ShouldShowVariations: boolOrDefault(p.ShouldShowVariations, true),
	}
}

// discountLabel extracts the first run of digits from a promotional title
// and renders it as "-{N}%". Titles without a numeral yield an empty label;
// the renderer treats empty as "no tag".
func discountLabel(title string) string {
	n := digitRun.FindString(title)
	if n == "" {
		return ""
	}
	return "-" + n + "%"
}

// formatPrice parses a raw numeric string and renders it with locale
// thousands separators. Unparsable input collapses to "0".
func formatPrice(v string) string {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return "0"
	}
	return pricePrinter.Sprintf("%v", number.Decimal(f))
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func boolOrDefault(v *models.FlexBool, def bool) bool {
	if v == nil {
		return def
	}
	return v.Bool()
}
