package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/storefront/client/internal/domain/shop"
)

// Modal renders the currently selected product's detail block to the
// terminal. It stands in for the page's detail modal component.
type Modal struct {
	mu      sync.Mutex
	w       io.Writer
	open    bool
	product shop.Product
}

// NewModal creates a Modal writing to w.
func NewModal(w io.Writer) *Modal {
	return &Modal{w: w}
}

// Open shows the modal bound to the given product.
func (m *Modal) Open(product shop.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = true
	m.product = product

	fmt.Fprintln(m.w, strings.Repeat("-", 40))
	fmt.Fprintf(m.w, "%s (%s)\n", product.Title, product.Category)
	if product.Description != "" {
		fmt.Fprintln(m.w, product.Description)
	}
	if product.Content != "" {
		fmt.Fprintln(m.w, product.Content)
	}
	if product.OriginPrice.GreaterThan(product.Price) {
		fmt.Fprintf(m.w, "price: %s (was %s) / %s\n", product.Price, product.OriginPrice, product.Unit)
	} else {
		fmt.Fprintf(m.w, "price: %s / %s\n", product.Price, product.Unit)
	}
	fmt.Fprintln(m.w, strings.Repeat("-", 40))
}

// Close hides the modal.
func (m *Modal) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = false
}

// IsOpen returns true if the modal is currently shown.
func (m *Modal) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

// Current returns the product the modal is bound to.
func (m *Modal) Current() shop.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.product
}

// Ensure Modal implements the ProductModal port
var _ shop.ProductModal = (*Modal)(nil)
