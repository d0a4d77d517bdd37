package shop

import "context"

// OperationResult is the outcome of a cart or order mutation. Message is the
// server-issued human-readable text, forwarded verbatim to the Notifier.
type OperationResult struct {
	// Success mirrors the server's success flag
	Success bool
	// Message is the server-issued feedback text
	Message string
}

// ---------------------------------------------------------------------------
// CommerceGateway Port Interface
// ---------------------------------------------------------------------------

// CommerceGateway defines the port interface for the remote commerce API.
// Each operation maps 1:1 to one network call with no built-in retry and no
// cached state; transport failures are translated into RemoteError values
// wrapping the shop transport sentinels.
type CommerceGateway interface {
	// ListProducts retrieves the full product catalog
	ListProducts(ctx context.Context) ([]Product, error)

	// GetProduct retrieves a single product's detail
	GetProduct(ctx context.Context, productID string) (*Product, error)

	// GetCart retrieves the authoritative cart snapshot
	GetCart(ctx context.Context) (*Cart, error)

	// AddItem adds qty units of a product to the cart
	AddItem(ctx context.Context, productID string, qty int) (*OperationResult, error)

	// UpdateItem sets the quantity of an existing cart line
	UpdateItem(ctx context.Context, cartItemID, productID string, qty int) (*OperationResult, error)

	// RemoveItem deletes a single cart line
	RemoveItem(ctx context.Context, cartItemID string) (*OperationResult, error)

	// ClearCart deletes every cart line
	ClearCart(ctx context.Context) (*OperationResult, error)

	// ApplyCoupon applies a coupon code to the cart. Reapplying overwrites the
	// previous coupon; stacking policy is server-owned.
	ApplyCoupon(ctx context.Context, code string) (*OperationResult, error)

	// SubmitOrder submits the order form together with the server-held cart
	SubmitOrder(ctx context.Context, form *OrderForm) (*OperationResult, error)
}

// ---------------------------------------------------------------------------
// User Feedback Ports
// ---------------------------------------------------------------------------

// Notifier receives outcome signals for user display. Implementations render
// them however the surface demands (toasts, console lines).
type Notifier interface {
	// Success reports a completed operation
	Success(text string)
	// Warning reports a soft, non-fatal condition
	Warning(text string)
	// Error reports a failed operation
	Error(text string)
}

// ProductModal displays the currently selected product's detail.
type ProductModal interface {
	// Open shows the modal bound to the given product
	Open(product Product)
	// Close hides the modal
	Close()
}
