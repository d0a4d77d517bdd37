package shop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/storefront/client/internal/domain/shop"
)

func newTestCheckout(gateway *fakeGateway) (*Checkout, *Store, *fakeNotifier) {
	notifier := &fakeNotifier{}
	store := NewStore(gateway, notifier, &fakeModal{}, zap.NewNop(), 0)
	checkout := NewCheckout(gateway, notifier, store, zap.NewNop())
	return checkout, store, notifier
}

func fillValidForm(c *Checkout) {
	form := c.Form()
	form.User.Name = "Wang Xiaoming"
	form.User.Email = "wang@example.com"
	form.User.Tel = "0912345678"
	form.User.Address = "No. 1, Sec. 1, Roosevelt Rd, Taipei"
	form.Message = "please deliver in the morning"
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr error
	}{
		{name: "valid mobile", value: "0912345678", wantErr: nil},
		{name: "empty", value: "", wantErr: shop.ErrPhoneRequired},
		{name: "whitespace only", value: "   ", wantErr: shop.ErrPhoneRequired},
		{name: "too short", value: "0912345", wantErr: shop.ErrPhoneInvalidFormat},
		{name: "too long", value: "09123456789", wantErr: shop.ErrPhoneInvalidFormat},
		{name: "wrong prefix", value: "0812345678", wantErr: shop.ErrPhoneInvalidFormat},
		{name: "landline", value: "0223456789", wantErr: shop.ErrPhoneInvalidFormat},
		{name: "letters", value: "09abcdefgh", wantErr: shop.ErrPhoneInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhone(tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckout_ValidateForm(t *testing.T) {
	checkout, _, _ := newTestCheckout(&fakeGateway{})
	fillValidForm(checkout)
	assert.NoError(t, checkout.ValidateForm())

	checkout.Form().User.Email = "not-an-email"
	err := checkout.ValidateForm()
	require.Error(t, err)
	assert.ErrorIs(t, err, shop.ErrFormInvalid)
	assert.Equal(t, "invalid email format", shop.UserMessage(err))
}

func TestCheckout_ValidateForm_PhoneRunsFirst(t *testing.T) {
	checkout, _, _ := newTestCheckout(&fakeGateway{})
	// Everything is missing; the phone rule must win over the generic tags
	err := checkout.ValidateForm()
	assert.ErrorIs(t, err, shop.ErrPhoneRequired)

	checkout.Form().User.Tel = "12345"
	err = checkout.ValidateForm()
	assert.ErrorIs(t, err, shop.ErrPhoneInvalidFormat)
}

func TestCheckout_Submit_Success(t *testing.T) {
	gateway := &fakeGateway{
		submitOrderFn: func(form *shop.OrderForm) (*shop.OperationResult, error) {
			return okResult("order placed")
		},
	}
	checkout, _, notifier := newTestCheckout(gateway)
	fillValidForm(checkout)
	checkout.SetCouponCode("TEA20")

	err := checkout.Submit(context.Background())
	require.NoError(t, err)

	// Successful submission resets the form and re-fetches the cleared cart
	assert.Equal(t, []string{"SubmitOrder", "GetCart"}, gateway.Calls())
	assert.Empty(t, checkout.Form().User.Name)
	assert.Empty(t, checkout.Form().User.Tel)
	assert.Empty(t, checkout.CouponCode())
	assert.Equal(t, []string{"order placed"}, notifier.successes)
}

func TestCheckout_Submit_RemoteFailureKeepsForm(t *testing.T) {
	gateway := &fakeGateway{
		submitOrderFn: func(form *shop.OrderForm) (*shop.OperationResult, error) {
			return nil, shop.NewRemoteError(shop.ErrShopRequestFailed, "cart is empty")
		},
	}
	checkout, _, notifier := newTestCheckout(gateway)
	fillValidForm(checkout)
	checkout.SetCouponCode("TEA20")

	err := checkout.Submit(context.Background())
	require.Error(t, err)

	// The form survives for retry and the shown message stays generic
	assert.Equal(t, "Wang Xiaoming", checkout.Form().User.Name)
	assert.Equal(t, "TEA20", checkout.CouponCode())
	assert.Equal(t, []string{submitFailedMessage}, notifier.errs)
	assert.Equal(t, []string{"SubmitOrder"}, gateway.Calls())
}

func TestCheckout_Submit_ValidationPreemptsNetwork(t *testing.T) {
	gateway := &fakeGateway{}
	checkout, _, notifier := newTestCheckout(gateway)
	fillValidForm(checkout)
	checkout.Form().User.Tel = ""

	err := checkout.Submit(context.Background())
	require.ErrorIs(t, err, shop.ErrPhoneRequired)

	assert.Empty(t, gateway.Calls())
	assert.Equal(t, []string{"phone number is required"}, notifier.errs)
}

func TestCheckout_ApplyCouponDelegatesCode(t *testing.T) {
	var sentCode string
	gateway := &fakeGateway{
		applyCouponFn: func(code string) (*shop.OperationResult, error) {
			sentCode = code
			return okResult("coupon applied")
		},
	}
	checkout, _, _ := newTestCheckout(gateway)
	checkout.SetCouponCode("TEA20")

	err := checkout.ApplyCoupon(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "TEA20", sentCode)
}
