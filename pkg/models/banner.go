package models

// RawBanner is a single banner record inside a grid section.
type RawBanner struct {
	ID     string  `json:"id"`
	Image  string  `json:"image"`
	Title  string  `json:"title"`
	Action *Action `json:"action"`
}

// BannerGridProperties is the raw layout configuration of a banner grid.
type BannerGridProperties struct {
	Cols                  FlexString `json:"cols"`
	Rows                  FlexString `json:"rows"`
	Ratio                 FlexString `json:"ratio"`
	Direction             string     `json:"direction"`
	HasShadow             *FlexBool  `json:"has_shadow"`
	LineSpacing           FlexString `json:"line_spacing"`
	InteritemSpacing      FlexString `json:"interitem_spacing"`
	LeftRightMargins      FlexString `json:"left_right_margins"`
	TopBottomMargins      FlexString `json:"top_bottom_margins"`
	OuterLeftRightMargins FlexString `json:"outer_left_right_margins"`
	OuterTopBottomMargins FlexString `json:"outer_top_bottom_margins"`
	InnerLeftRightSpacing FlexString `json:"inner_left_right_spacing"`
	InnerTopBottomSpacing FlexString `json:"inner_top_bottom_spacing"`
}
