package shop

import "github.com/shopspring/decimal"

// Product is a catalog entry as the store sells it. Products are immutable
// once fetched; a re-fetch replaces the whole value, never patches it.
type Product struct {
	// ID is the server-assigned product identifier
	ID string
	// Title is the display name
	Title string
	// Category is the store's category label
	Category string
	// Unit is the selling unit (e.g. per box, per bag)
	Unit string
	// Description is the short marketing description
	Description string
	// Content is the long-form detail text
	Content string
	// Price is the current selling price
	Price decimal.Decimal
	// OriginPrice is the pre-discount compare price
	OriginPrice decimal.Decimal
	// ImageURL is the primary image
	ImageURL string
	// ImagesURL contains any additional images
	ImagesURL []string
	// Enabled indicates the product is listed for sale
	Enabled bool
}
