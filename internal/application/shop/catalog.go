package shop

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/storefront/client/internal/domain/shop"
)

// emptyCatalogWarning is the soft signal shown when the catalog is empty or
// could not be loaded. An empty store is not necessarily an application error.
const emptyCatalogWarning = "the store has no products for sale right now"

// Catalog loads the product list and individual product detail on demand.
// Busy flags live on the Store, since the page has a single busy indicator.
type Catalog struct {
	gateway  shop.CommerceGateway
	notifier shop.Notifier
	modal    shop.ProductModal
	store    *Store
	log      *zap.Logger

	// spinnerHold is the minimum busy display duration after a successful
	// catalog load, so fast responses don't flicker the spinner.
	spinnerHold time.Duration

	mu       sync.Mutex
	products []shop.Product
	selected *shop.Product
}

// NewCatalog creates a new catalog loader.
func NewCatalog(gateway shop.CommerceGateway, notifier shop.Notifier, modal shop.ProductModal, store *Store, log *zap.Logger, spinnerHold time.Duration) *Catalog {
	return &Catalog{
		gateway:     gateway,
		notifier:    notifier,
		modal:       modal,
		store:       store,
		log:         log,
		spinnerHold: spinnerHold,
	}
}

// Products returns the last loaded product collection.
func (c *Catalog) Products() []shop.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]shop.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Selected returns the product currently shown in the detail modal, or nil.
func (c *Catalog) Selected() *shop.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return nil
	}
	p := *c.selected
	return &p
}

// LoadProducts fetches the product list and replaces the local collection
// wholesale. A transport failure or an empty catalog emits a warning, not an
// error; the page busy flag clears on every path.
func (c *Catalog) LoadProducts(ctx context.Context) error {
	start := time.Now()
	c.store.setBusy(shop.BusyPage())

	products, err := c.gateway.ListProducts(ctx)
	if err != nil {
		c.store.clearBusy()
		c.notifier.Warning(emptyCatalogWarning)
		c.log.Warn("catalog load failed", zap.Error(err))
		return err
	}

	c.mu.Lock()
	c.products = products
	c.mu.Unlock()

	c.holdAndClear(start)
	if len(products) == 0 {
		c.notifier.Warning(emptyCatalogWarning)
	}
	c.log.Info("catalog loaded", zap.Int("products", len(products)))
	return nil
}

// OpenProduct fetches one product's detail, populates the selected-product
// slot and commands the modal open. The busy indicator is keyed to the
// product row that triggered it.
func (c *Catalog) OpenProduct(ctx context.Context, productID string) error {
	c.store.setBusy(shop.BusyItem(productID))

	product, err := c.gateway.GetProduct(ctx, productID)
	if err != nil {
		c.store.clearBusy()
		c.notifier.Error(shop.UserMessage(err))
		c.log.Warn("product detail load failed", zap.String("product_id", productID), zap.Error(err))
		return err
	}

	c.mu.Lock()
	c.selected = product
	c.mu.Unlock()

	c.modal.Open(*product)
	c.store.clearBusy()
	return nil
}

// holdAndClear clears the page busy flag after the minimum spinner display
// duration has elapsed since start.
func (c *Catalog) holdAndClear(start time.Time) {
	if remaining := c.spinnerHold - time.Since(start); remaining > 0 {
		time.Sleep(remaining)
	}
	c.store.clearBusy()
}
