package shop

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/storefront/client/internal/domain/shop"
)

// Store is the page's single source of truth for cart contents and busy
// flags. It is mutated only through the protocol below: every mutating call
// is followed, on success, by an unconditional re-fetch of the cart, never
// by local patching of quantities or totals. The server computes totals,
// discounts, and stock clamping; the client is a reflector.
//
// Concurrency: one mutex guards the snapshot. Within one action the mutation
// and its follow-up re-fetch are strictly sequential. Across independently
// triggered actions completions may interleave and the last re-fetch wins;
// there is no version token to detect staleness.
type Store struct {
	gateway  shop.CommerceGateway
	notifier shop.Notifier
	modal    shop.ProductModal
	log      *zap.Logger

	// spinnerHold is the minimum busy display duration for page-level
	// actions, so fast responses don't flicker the spinner.
	spinnerHold time.Duration

	mu   sync.Mutex
	cart shop.Cart
	busy shop.BusyState
}

// NewStore creates a new cart store.
func NewStore(gateway shop.CommerceGateway, notifier shop.Notifier, modal shop.ProductModal, log *zap.Logger, spinnerHold time.Duration) *Store {
	return &Store{
		gateway:     gateway,
		notifier:    notifier,
		modal:       modal,
		log:         log,
		spinnerHold: spinnerHold,
		busy:        shop.BusyNone(),
	}
}

// Cart returns the last server snapshot of the cart.
func (s *Store) Cart() shop.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart
}

// Busy returns the current busy indicator.
func (s *Store) Busy() shop.BusyState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Refresh re-reads the authoritative cart and replaces the local snapshot.
// Used at page mount and after order submission.
func (s *Store) Refresh(ctx context.Context) error {
	if err := s.refetch(ctx); err != nil {
		s.notifier.Error(shop.UserMessage(err))
		return err
	}
	return nil
}

// ---------------------------------------------------------------------------
// Cart Mutations
// ---------------------------------------------------------------------------

// AddItem adds qty units of a product to the cart. On success the detail
// modal is closed before the re-fetch completes and the success notification
// fires.
func (s *Store) AddItem(ctx context.Context, productID string, qty int) error {
	if qty < 1 {
		qty = 1
	}
	log := s.actionLogger("add_item", zap.String("product_id", productID), zap.Int("qty", qty))
	start := time.Now()
	s.setBusy(shop.BusyPage())

	res, err := s.gateway.AddItem(ctx, productID, qty)
	if err != nil {
		return s.fail(log, err)
	}
	s.modal.Close()

	if err := s.refetch(ctx); err != nil {
		return s.fail(log, err)
	}

	s.holdAndClear(start)
	s.notifier.Success(res.Message)
	log.Info("item added to cart")
	return nil
}

// UpdateItem sets the quantity of an existing cart line. A resulting quantity
// below 1 is redirected to the remove path; no zero-quantity update request
// is ever sent.
func (s *Store) UpdateItem(ctx context.Context, cartItemID, productID string, qty int) error {
	if qty < 1 {
		return s.RemoveItem(ctx, cartItemID)
	}
	log := s.actionLogger("update_item", zap.String("cart_item_id", cartItemID), zap.Int("qty", qty))
	s.setBusy(shop.BusyItem(cartItemID))

	res, err := s.gateway.UpdateItem(ctx, cartItemID, productID, qty)
	if err != nil {
		return s.fail(log, err)
	}

	if err := s.refetch(ctx); err != nil {
		return s.fail(log, err)
	}

	s.clearBusy()
	s.notifier.Success(res.Message)
	log.Info("cart item updated")
	return nil
}

// RemoveItem deletes a single cart line.
func (s *Store) RemoveItem(ctx context.Context, cartItemID string) error {
	log := s.actionLogger("remove_item", zap.String("cart_item_id", cartItemID))
	s.setBusy(shop.BusyItem(cartItemID))

	res, err := s.gateway.RemoveItem(ctx, cartItemID)
	if err != nil {
		return s.fail(log, err)
	}

	if err := s.refetch(ctx); err != nil {
		return s.fail(log, err)
	}

	s.clearBusy()
	s.notifier.Success(res.Message)
	log.Info("cart item removed")
	return nil
}

// Clear deletes every cart line.
func (s *Store) Clear(ctx context.Context) error {
	log := s.actionLogger("clear_cart")
	start := time.Now()
	s.setBusy(shop.BusyPage())

	res, err := s.gateway.ClearCart(ctx)
	if err != nil {
		return s.fail(log, err)
	}

	if err := s.refetch(ctx); err != nil {
		return s.fail(log, err)
	}

	s.holdAndClear(start)
	s.notifier.Success(res.Message)
	log.Info("cart cleared")
	return nil
}

// ApplyCoupon applies a coupon code to the cart. The server overwrites any
// previously applied coupon; stacking policy is server-owned and not
// second-guessed here.
func (s *Store) ApplyCoupon(ctx context.Context, code string) error {
	log := s.actionLogger("apply_coupon", zap.String("code", code))
	s.setBusy(shop.BusyPage())

	res, err := s.gateway.ApplyCoupon(ctx, code)
	if err != nil {
		return s.fail(log, err)
	}

	if err := s.refetch(ctx); err != nil {
		return s.fail(log, err)
	}

	s.clearBusy()
	s.notifier.Success(res.Message)
	log.Info("coupon applied")
	return nil
}

// ---------------------------------------------------------------------------
// Internal Helpers
// ---------------------------------------------------------------------------

// refetch replaces the cart snapshot with a fresh server read. Callers own
// the user notification for the action that triggered it.
func (s *Store) refetch(ctx context.Context) error {
	cart, err := s.gateway.GetCart(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.cart = *cart
	s.mu.Unlock()
	return nil
}

// fail clears the busy indicator and surfaces the failure's message. The
// attempted mutation is discarded; no partial state is committed.
func (s *Store) fail(log *zap.Logger, err error) error {
	s.clearBusy()
	s.notifier.Error(shop.UserMessage(err))
	log.Warn("cart action failed", zap.Error(err))
	return err
}

func (s *Store) setBusy(b shop.BusyState) {
	s.mu.Lock()
	s.busy = b
	s.mu.Unlock()
}

func (s *Store) clearBusy() {
	s.setBusy(shop.BusyNone())
}

// holdAndClear clears the busy indicator after the minimum spinner display
// duration has elapsed since start. UX smoothing only, not a correctness
// requirement.
func (s *Store) holdAndClear(start time.Time) {
	if remaining := s.spinnerHold - time.Since(start); remaining > 0 {
		time.Sleep(remaining)
	}
	s.clearBusy()
}

// actionLogger returns a child logger carrying an action id, so interleaved
// actions can be told apart in the logs.
func (s *Store) actionLogger(action string, fields ...zap.Field) *zap.Logger {
	base := s.log.With(zap.String("action", action), zap.String("action_id", uuid.NewString()))
	return base.With(fields...)
}
