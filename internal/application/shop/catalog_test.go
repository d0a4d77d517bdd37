package shop

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/storefront/client/internal/domain/shop"
)

func newTestCatalog(gateway *fakeGateway, spinnerHold time.Duration) (*Catalog, *Store, *fakeNotifier, *fakeModal) {
	notifier := &fakeNotifier{}
	modal := &fakeModal{}
	store := NewStore(gateway, notifier, modal, zap.NewNop(), 0)
	catalog := NewCatalog(gateway, notifier, modal, store, zap.NewNop(), spinnerHold)
	return catalog, store, notifier, modal
}

func sampleProducts() []shop.Product {
	return []shop.Product{
		{ID: "prod-tea", Title: "Oolong Tea", Category: "tea", Price: decimal.NewFromInt(280), Enabled: true},
		{ID: "prod-cake", Title: "Honey Cake", Category: "bakery", Price: decimal.NewFromInt(120), Enabled: true},
	}
}

func TestCatalog_LoadProducts_Success(t *testing.T) {
	gateway := &fakeGateway{
		listProductsFn: func() ([]shop.Product, error) { return sampleProducts(), nil },
	}
	catalog, store, notifier, _ := newTestCatalog(gateway, 0)

	err := catalog.LoadProducts(context.Background())
	require.NoError(t, err)

	products := catalog.Products()
	require.Len(t, products, 2)
	assert.Equal(t, "prod-tea", products[0].ID)
	assert.Empty(t, notifier.warnings)
	assert.True(t, store.Busy().IsIdle())
}

func TestCatalog_LoadProducts_ReplacesWholesale(t *testing.T) {
	products := sampleProducts()
	gateway := &fakeGateway{
		listProductsFn: func() ([]shop.Product, error) { return products, nil },
	}
	catalog, _, _, _ := newTestCatalog(gateway, 0)

	require.NoError(t, catalog.LoadProducts(context.Background()))
	require.Len(t, catalog.Products(), 2)

	products = products[:1]
	require.NoError(t, catalog.LoadProducts(context.Background()))
	assert.Len(t, catalog.Products(), 1)
}

func TestCatalog_LoadProducts_Empty(t *testing.T) {
	gateway := &fakeGateway{
		listProductsFn: func() ([]shop.Product, error) { return []shop.Product{}, nil },
	}
	catalog, store, notifier, _ := newTestCatalog(gateway, 0)

	err := catalog.LoadProducts(context.Background())
	require.NoError(t, err)

	assert.Empty(t, catalog.Products())
	assert.Equal(t, []string{emptyCatalogWarning}, notifier.warnings)
	assert.True(t, store.Busy().IsIdle())
}

func TestCatalog_LoadProducts_Failure(t *testing.T) {
	gateway := &fakeGateway{
		listProductsFn: func() ([]shop.Product, error) {
			return nil, shop.NewRemoteError(shop.ErrShopUnavailable, "store unreachable")
		},
	}
	catalog, store, notifier, _ := newTestCatalog(gateway, 0)

	err := catalog.LoadProducts(context.Background())
	require.Error(t, err)

	// A load failure degrades to the empty-catalog warning, not a hard error
	assert.Equal(t, []string{emptyCatalogWarning}, notifier.warnings)
	assert.Empty(t, notifier.errs)
	assert.True(t, store.Busy().IsIdle())
}

func TestCatalog_LoadProducts_SpinnerHold(t *testing.T) {
	gateway := &fakeGateway{
		listProductsFn: func() ([]shop.Product, error) { return sampleProducts(), nil },
	}
	catalog, store, _, _ := newTestCatalog(gateway, 40*time.Millisecond)

	start := time.Now()
	require.NoError(t, catalog.LoadProducts(context.Background()))

	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
	assert.True(t, store.Busy().IsIdle())
}

func TestCatalog_OpenProduct_Success(t *testing.T) {
	detail := shop.Product{ID: "prod-tea", Title: "Oolong Tea", Content: "100g loose leaf"}
	gateway := &fakeGateway{
		getProductFn: func(id string) (*shop.Product, error) { return &detail, nil },
	}
	catalog, store, _, modal := newTestCatalog(gateway, 0)

	var busyDuringFetch shop.BusyState
	gateway.getProductFn = func(id string) (*shop.Product, error) {
		busyDuringFetch = store.Busy()
		return &detail, nil
	}

	err := catalog.OpenProduct(context.Background(), "prod-tea")
	require.NoError(t, err)

	assert.True(t, busyDuringFetch.IsItem("prod-tea"))
	require.NotNil(t, catalog.Selected())
	assert.Equal(t, "Oolong Tea", catalog.Selected().Title)
	assert.True(t, modal.open)
	assert.Equal(t, "prod-tea", modal.product.ID)
	assert.True(t, store.Busy().IsIdle())
}

func TestCatalog_OpenProduct_Failure(t *testing.T) {
	gateway := &fakeGateway{
		getProductFn: func(id string) (*shop.Product, error) {
			return nil, shop.NewRemoteError(shop.ErrShopRequestFailed, "product not found")
		},
	}
	catalog, store, notifier, modal := newTestCatalog(gateway, 0)

	err := catalog.OpenProduct(context.Background(), "prod-missing")
	require.Error(t, err)

	assert.Nil(t, catalog.Selected())
	assert.False(t, modal.open)
	assert.Equal(t, []string{"product not found"}, notifier.errs)
	assert.True(t, store.Busy().IsIdle())
}
