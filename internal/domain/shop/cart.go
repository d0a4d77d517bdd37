package shop

import "github.com/shopspring/decimal"

// CartItem is one product line inside the cart. Totals are server-computed;
// the client never derives them from Qty locally.
type CartItem struct {
	// ID is the server-assigned cart item identifier
	ID string
	// ProductID is the product this line refers to
	ProductID string
	// Product is the embedded product snapshot
	Product Product
	// Qty is the ordered quantity (positive; zero or less means removal)
	Qty int
	// Total is the line subtotal before coupon discount
	Total decimal.Decimal
	// FinalTotal is the line subtotal after coupon discount
	FinalTotal decimal.Decimal
}

// Cart is the server-held shopping cart snapshot. Items are an unordered set
// keyed by item ID. The whole value is replaced on every successful read.
type Cart struct {
	// Items contains the cart lines
	Items []CartItem
	// Total is the aggregate amount before coupon discount
	Total decimal.Decimal
	// FinalTotal is the aggregate amount after coupon discount
	FinalTotal decimal.Decimal
}

// Item returns the cart line with the given ID, or nil if absent.
func (c *Cart) Item(id string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return &c.Items[i]
		}
	}
	return nil
}

// IsEmpty returns true if the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Discount returns the aggregate coupon discount (Total - FinalTotal).
func (c *Cart) Discount() decimal.Decimal {
	return c.Total.Sub(c.FinalTotal)
}
