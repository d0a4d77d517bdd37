package shop

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_Item(t *testing.T) {
	cart := Cart{
		Items: []CartItem{
			{ID: "item-1", ProductID: "prod-tea", Qty: 2},
			{ID: "item-2", ProductID: "prod-cake", Qty: 1},
		},
	}

	item := cart.Item("item-2")
	require.NotNil(t, item)
	assert.Equal(t, "prod-cake", item.ProductID)

	assert.Nil(t, cart.Item("item-404"))
}

func TestCart_IsEmpty(t *testing.T) {
	var cart Cart
	assert.True(t, cart.IsEmpty())

	cart.Items = append(cart.Items, CartItem{ID: "item-1"})
	assert.False(t, cart.IsEmpty())
}

func TestCart_Discount(t *testing.T) {
	cart := Cart{
		Total:      decimal.NewFromInt(1000),
		FinalTotal: decimal.NewFromInt(800),
	}
	assert.True(t, cart.Discount().Equal(decimal.NewFromInt(200)))

	noCoupon := Cart{
		Total:      decimal.NewFromInt(1000),
		FinalTotal: decimal.NewFromInt(1000),
	}
	assert.True(t, noCoupon.Discount().IsZero())
}

func TestBusyState(t *testing.T) {
	var zero BusyState
	assert.True(t, zero.IsIdle())

	assert.True(t, BusyNone().IsIdle())
	assert.False(t, BusyNone().IsPage())

	page := BusyPage()
	assert.True(t, page.IsPage())
	assert.False(t, page.IsIdle())
	assert.False(t, page.IsItem("item-1"))

	item := BusyItem("item-1")
	assert.True(t, item.IsItem("item-1"))
	assert.False(t, item.IsItem("item-2"))
	assert.False(t, item.IsIdle())
	assert.False(t, item.IsPage())
}

func TestRemoteError(t *testing.T) {
	err := NewRemoteError(ErrShopRequestFailed, "coupon expired")

	assert.ErrorIs(t, err, ErrShopRequestFailed)
	assert.NotErrorIs(t, err, ErrShopUnavailable)
	assert.Contains(t, err.Error(), "coupon expired")

	// Classification survives further wrapping
	wrapped := fmt.Errorf("apply coupon: %w", err)
	assert.ErrorIs(t, wrapped, ErrShopRequestFailed)
	assert.Equal(t, "coupon expired", UserMessage(wrapped))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "coupon expired", UserMessage(NewRemoteError(ErrShopRequestFailed, "coupon expired")))

	// No server message falls back to the error text
	assert.Equal(t, ErrShopUnavailable.Error(), UserMessage(ErrShopUnavailable))
	assert.Equal(t, ErrShopRequestFailed.Error(), UserMessage(NewRemoteError(ErrShopRequestFailed, "")))
	assert.Equal(t, "boom", UserMessage(errors.New("boom")))
	assert.Empty(t, UserMessage(nil))
}

func TestOrderForm_Reset(t *testing.T) {
	form := NewOrderForm()
	form.User = Contact{
		Name:    "Wang Xiaoming",
		Email:   "wang@example.com",
		Tel:     "0912345678",
		Address: "Taipei",
	}
	form.Message = "morning delivery"

	form.Reset()

	assert.Equal(t, OrderForm{}, *form)
}
