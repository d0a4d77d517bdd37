// Package console provides terminal implementations of the storefront's
// user-feedback ports: the toast channel and the product detail modal.
package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/storefront/client/internal/domain/shop"
)

// Toaster renders outcome notifications as prefixed console lines. It stands
// in for the page's toast component.
type Toaster struct {
	mu sync.Mutex
	w  io.Writer
}

// NewToaster creates a Toaster writing to w.
func NewToaster(w io.Writer) *Toaster {
	return &Toaster{w: w}
}

// Success reports a completed operation.
func (t *Toaster) Success(text string) {
	t.print("✓", text)
}

// Warning reports a soft, non-fatal condition.
func (t *Toaster) Warning(text string) {
	t.print("!", text)
}

// Error reports a failed operation.
func (t *Toaster) Error(text string) {
	t.print("✗", text)
}

func (t *Toaster) print(prefix, text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.w, "%s %s\n", prefix, text)
}

// Ensure Toaster implements the Notifier port
var _ shop.Notifier = (*Toaster)(nil)
