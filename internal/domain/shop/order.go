package shop

// Contact is the buyer contact block of the order form.
type Contact struct {
	// Name is the buyer's name
	Name string `json:"name" validate:"required"`
	// Email is the buyer's email address
	Email string `json:"email" validate:"required,email"`
	// Tel is the buyer's mobile number (leading 09, ten digits total)
	Tel string `json:"tel" validate:"required,twmobile"`
	// Address is the delivery address
	Address string `json:"address" validate:"required"`
}

// OrderForm is the order submission payload. It is independent of the Cart;
// the server joins the two when the order is created.
type OrderForm struct {
	// User is the buyer contact block
	User Contact `json:"user" validate:"required"`
	// Message is the buyer's free-text note
	Message string `json:"message"`
}

// NewOrderForm returns the empty form shape.
func NewOrderForm() *OrderForm {
	return &OrderForm{}
}

// Reset restores the form to its empty shape after a successful submission.
func (f *OrderForm) Reset() {
	*f = OrderForm{}
}
