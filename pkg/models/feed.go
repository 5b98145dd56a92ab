package models

import "encoding/json"

// Section type tags used by the feed payload.
const (
	SectionTypeProducts = "products"
	SectionTypeGrid     = "grid"
)

// RawSection is one tagged block of the feed: either a product list or a
// banner grid. Content and Properties stay raw until the tag is known.
type RawSection struct {
	Type       string          `json:"type"`
	Content    json.RawMessage `json:"content"`
	Properties json.RawMessage `json:"properties"`
}

// FeedResponse is the wrapper object returned by the products listing.
type FeedResponse struct {
	Content []RawSection `json:"content"`
}
