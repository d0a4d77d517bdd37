package shop

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/storefront/client/internal/domain/shop"
)

// submitFailedMessage is deliberately generic: the form is left untouched so
// the user can retry without re-entering data.
const submitFailedMessage = "order submission failed, please try again"

// mobilePattern is the accepted mobile number shape: leading 09, eight
// further digits.
var mobilePattern = regexp.MustCompile(`^09[0-9]{8}$`)

// ValidatePhone applies the two-stage phone rule: empty or whitespace-only
// input is a required-field error; anything else must match the mobile
// number pattern.
func ValidatePhone(value string) error {
	if strings.TrimSpace(value) == "" {
		return shop.ErrPhoneRequired
	}
	if !mobilePattern.MatchString(value) {
		return shop.ErrPhoneInvalidFormat
	}
	return nil
}

// Checkout validates and submits the order form, and owns the coupon code
// entry field. The coupon code is a sibling of the form, not embedded in it;
// the server keeps coupon state on the cart.
type Checkout struct {
	gateway  shop.CommerceGateway
	notifier shop.Notifier
	store    *Store
	log      *zap.Logger
	validate *validator.Validate

	mu         sync.Mutex
	form       *shop.OrderForm
	couponCode string
}

// NewCheckout creates a new checkout workflow with an empty form.
func NewCheckout(gateway shop.CommerceGateway, notifier shop.Notifier, store *Store, log *zap.Logger) *Checkout {
	v := validator.New()
	// The phone rule is bespoke business logic; everything else is generic
	// validation delegated to the validator tags.
	_ = v.RegisterValidation("twmobile", func(fl validator.FieldLevel) bool {
		return ValidatePhone(fl.Field().String()) == nil
	})

	return &Checkout{
		gateway:  gateway,
		notifier: notifier,
		store:    store,
		log:      log,
		validate: v,
		form:     shop.NewOrderForm(),
	}
}

// Form returns the order form for the caller to fill in.
func (c *Checkout) Form() *shop.OrderForm {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// SetCouponCode records the coupon code entry field.
func (c *Checkout) SetCouponCode(code string) {
	c.mu.Lock()
	c.couponCode = code
	c.mu.Unlock()
}

// CouponCode returns the coupon code entry field.
func (c *Checkout) CouponCode() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.couponCode
}

// ApplyCoupon applies the entered coupon code through the store's uniform
// mutation protocol.
func (c *Checkout) ApplyCoupon(ctx context.Context) error {
	return c.store.ApplyCoupon(ctx, c.CouponCode())
}

// ValidateForm checks the order form without touching the network. The phone
// rule runs first since its two error stages are part of the page's business
// logic; the rest is delegated to the validator tags.
func (c *Checkout) ValidateForm() error {
	c.mu.Lock()
	form := c.form
	c.mu.Unlock()

	if err := ValidatePhone(form.User.Tel); err != nil {
		return err
	}
	if err := c.validate.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return shop.NewRemoteError(shop.ErrFormInvalid, fieldMessage(verrs[0]))
		}
		return shop.ErrFormInvalid
	}
	return nil
}

// Submit validates and sends the order. Validation failure pre-empts any
// network call. On success the form and coupon code reset to their empty
// shapes and the cart is re-fetched, since order submission clears the
// server-held cart. On failure the form is left untouched for retry.
func (c *Checkout) Submit(ctx context.Context) error {
	if err := c.ValidateForm(); err != nil {
		c.notifier.Error(validationMessage(err))
		c.log.Warn("order form rejected", zap.Error(err))
		return err
	}

	c.mu.Lock()
	form := c.form
	c.mu.Unlock()

	res, err := c.gateway.SubmitOrder(ctx, form)
	if err != nil {
		c.notifier.Error(submitFailedMessage)
		c.log.Warn("order submission failed", zap.Error(err))
		return err
	}

	c.mu.Lock()
	c.form.Reset()
	c.couponCode = ""
	c.mu.Unlock()

	c.notifier.Success(res.Message)
	c.log.Info("order submitted")

	// Reflect the server-side cart clearing; Refresh surfaces its own
	// failures, and the order itself has already succeeded.
	_ = c.store.Refresh(ctx)
	return nil
}

// validationMessage maps validation failures to the text shown to the user.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, shop.ErrPhoneRequired):
		return "phone number is required"
	case errors.Is(err, shop.ErrPhoneInvalidFormat):
		return "please enter a valid mobile number"
	default:
		return shop.UserMessage(err)
	}
}

// fieldMessage returns a human-readable message for a failed form field.
func fieldMessage(e validator.FieldError) string {
	field := strings.ToLower(e.Field())
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return "invalid email format"
	case "twmobile":
		return "please enter a valid mobile number"
	default:
		return field + " is invalid"
	}
}
