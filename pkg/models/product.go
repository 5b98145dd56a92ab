package models

// Raw backend records for the products feed. Every nested object is a
// pointer and every scalar tolerates absence: the backend omits fields
// freely and normalization happens downstream in the DTO builders.

// Price carries the raw price block of a product.
type Price struct {
	Value         FlexString `json:"value"`
	Currency      string     `json:"currency"`
	OriginalValue FlexString `json:"original_value"`
}

// Tag is a promotional label shown above or below a product card.
type Tag struct {
	Title   string `json:"title"`
	Color   string `json:"color"`
	BgColor string `json:"bg_color"`
}

// Merchant identifies the seller of a product.
type Merchant struct {
	Title   string `json:"title"`
	Icon    string `json:"icon"`
	BgColor string `json:"bg_color"`
}

// Action is a navigation target attached to banners and products.
type Action struct {
	ID     string `json:"id"`
	Target string `json:"target"`
}

// RawProduct is a single product record as served by the backend.
type RawProduct struct {
	Type        string             `json:"type"`
	ID          string             `json:"id"`
	URL         string             `json:"url"`
	Brand       string             `json:"brand"`
	BrandAlias  string             `json:"brand_alias"`
	Image       string             `json:"image"`
	Title       string             `json:"title"`
	Price       *Price             `json:"price"`
	Action      *Action            `json:"action"`
	Colors      []string           `json:"colors"`
	Rating      FlexString         `json:"rating"`
	RatingCount FlexString         `json:"rating_count"`
	Category    string             `json:"category"`
	StartTag    *Tag               `json:"start_tag"`
	EndTag      *Tag               `json:"end_tag"`
	Merchant    *Merchant          `json:"merchant"`
	Properties  *ProductProperties `json:"properties"`
}

// ProductProperties is the raw layout configuration of a product grid.
type ProductProperties struct {
	ImageRatio           FlexString `json:"image_ratio"`
	TitleLines           FlexString `json:"title_lines"`
	HasCartBtn           *FlexBool  `json:"has_cart_btn"`
	HasFavouriteBtn      *FlexBool  `json:"has_favourite_btn"`
	ShouldShowTitle      *FlexBool  `json:"should_show_title"`
	ShouldShowRating     *FlexBool  `json:"should_show_rating"`
	ShouldShowVariations *FlexBool  `json:"should_show_variations"`
}
