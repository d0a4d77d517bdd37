package commerce

import (
	"github.com/shopspring/decimal"

	"github.com/storefront/client/internal/domain/shop"
)

// ---------------------------------------------------------------------------
// Common API Response Types
// ---------------------------------------------------------------------------

// apiResponse is the base response shape shared by every endpoint. Message is
// the server-issued feedback text; failure responses carry it too.
type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// envelope wraps every mutating request body in a single data field, as the
// API requires.
type envelope struct {
	Data any `json:"data"`
}

// ---------------------------------------------------------------------------
// Request Payloads
// ---------------------------------------------------------------------------

// cartItemPayload is the body for cart add and update calls.
type cartItemPayload struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

// couponPayload is the body for coupon application.
type couponPayload struct {
	Code string `json:"code"`
}

// ---------------------------------------------------------------------------
// Product Types
// ---------------------------------------------------------------------------

// productsResponse is the response for GET /products.
type productsResponse struct {
	apiResponse
	Products []apiProduct `json:"products"`
}

// productResponse is the response for GET /product/{id}.
type productResponse struct {
	apiResponse
	Product *apiProduct `json:"product,omitempty"`
}

// apiProduct is a product as the API serializes it.
type apiProduct struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Category    string          `json:"category"`
	Unit        string          `json:"unit"`
	Description string          `json:"description"`
	Content     string          `json:"content"`
	OriginPrice decimal.Decimal `json:"origin_price"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	ImagesURL   []string        `json:"imagesUrl,omitempty"`
	IsEnabled   int             `json:"is_enabled"`
}

// toProduct converts an API product to the domain model.
func (p *apiProduct) toProduct() shop.Product {
	return shop.Product{
		ID:          p.ID,
		Title:       p.Title,
		Category:    p.Category,
		Unit:        p.Unit,
		Description: p.Description,
		Content:     p.Content,
		Price:       p.Price,
		OriginPrice: p.OriginPrice,
		ImageURL:    p.ImageURL,
		ImagesURL:   p.ImagesURL,
		Enabled:     p.IsEnabled != 0,
	}
}

// ---------------------------------------------------------------------------
// Cart Types
// ---------------------------------------------------------------------------

// cartResponse is the response for GET /cart.
type cartResponse struct {
	apiResponse
	Data apiCart `json:"data"`
}

// apiCart is the cart snapshot as the API serializes it.
type apiCart struct {
	Carts      []apiCartItem   `json:"carts"`
	Total      decimal.Decimal `json:"total"`
	FinalTotal decimal.Decimal `json:"final_total"`
}

// apiCartItem is one cart line as the API serializes it.
type apiCartItem struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	Product    apiProduct      `json:"product"`
	Qty        int             `json:"qty"`
	Total      decimal.Decimal `json:"total"`
	FinalTotal decimal.Decimal `json:"final_total"`
}

// toCart converts an API cart to the domain model.
func (c *apiCart) toCart() *shop.Cart {
	cart := &shop.Cart{
		Items:      make([]shop.CartItem, 0, len(c.Carts)),
		Total:      c.Total,
		FinalTotal: c.FinalTotal,
	}
	for _, line := range c.Carts {
		cart.Items = append(cart.Items, shop.CartItem{
			ID:         line.ID,
			ProductID:  line.ProductID,
			Product:    line.Product.toProduct(),
			Qty:        line.Qty,
			Total:      line.Total,
			FinalTotal: line.FinalTotal,
		})
	}
	return cart
}
