package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/storefront/client/internal/domain/shop"
)

// maxResponseSize is the maximum allowed response size from the API (10MB)
const maxResponseSize = 10 * 1024 * 1024

// Client implements the shop.CommerceGateway port against the remote commerce
// API. It is purely a transport adapter: it owns no state beyond its
// configuration and HTTP client, performs exactly one network call per
// operation, and translates transport failures into shop.RemoteError values.
type Client struct {
	config     *Config
	httpClient *http.Client
}

// NewClient creates a new commerce API client with the given configuration.
func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// ---------------------------------------------------------------------------
// Catalog Operations
// ---------------------------------------------------------------------------

// ListProducts retrieves the full product catalog.
func (c *Client) ListProducts(ctx context.Context) ([]shop.Product, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/products", nil)
	if err != nil {
		return nil, err
	}

	var resp productsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to parse response: %v", shop.ErrShopInvalidResponse, err)
	}
	if !resp.Success {
		return nil, shop.NewRemoteError(shop.ErrShopRequestFailed, resp.Message)
	}

	products := make([]shop.Product, 0, len(resp.Products))
	for i := range resp.Products {
		products = append(products, resp.Products[i].toProduct())
	}
	return products, nil
}

// GetProduct retrieves a single product's detail.
func (c *Client) GetProduct(ctx context.Context, productID string) (*shop.Product, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/product/"+url.PathEscape(productID), nil)
	if err != nil {
		return nil, err
	}

	var resp productResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to parse response: %v", shop.ErrShopInvalidResponse, err)
	}
	if !resp.Success {
		return nil, shop.NewRemoteError(shop.ErrShopRequestFailed, resp.Message)
	}
	if resp.Product == nil {
		return nil, shop.ErrShopInvalidResponse
	}

	product := resp.Product.toProduct()
	return &product, nil
}

// ---------------------------------------------------------------------------
// Cart Operations
// ---------------------------------------------------------------------------

// GetCart retrieves the authoritative cart snapshot.
func (c *Client) GetCart(ctx context.Context) (*shop.Cart, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/cart", nil)
	if err != nil {
		return nil, err
	}

	var resp cartResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to parse response: %v", shop.ErrShopInvalidResponse, err)
	}
	if !resp.Success {
		return nil, shop.NewRemoteError(shop.ErrShopRequestFailed, resp.Message)
	}

	return resp.Data.toCart(), nil
}

// AddItem adds qty units of a product to the cart.
func (c *Client) AddItem(ctx context.Context, productID string, qty int) (*shop.OperationResult, error) {
	payload := cartItemPayload{ProductID: productID, Qty: qty}
	return c.doMutation(ctx, http.MethodPost, "/cart", payload)
}

// UpdateItem sets the quantity of an existing cart line.
func (c *Client) UpdateItem(ctx context.Context, cartItemID, productID string, qty int) (*shop.OperationResult, error) {
	payload := cartItemPayload{ProductID: productID, Qty: qty}
	return c.doMutation(ctx, http.MethodPut, "/cart/"+url.PathEscape(cartItemID), payload)
}

// RemoveItem deletes a single cart line.
func (c *Client) RemoveItem(ctx context.Context, cartItemID string) (*shop.OperationResult, error) {
	return c.doMutation(ctx, http.MethodDelete, "/cart/"+url.PathEscape(cartItemID), nil)
}

// ClearCart deletes every cart line.
func (c *Client) ClearCart(ctx context.Context) (*shop.OperationResult, error) {
	return c.doMutation(ctx, http.MethodDelete, "/carts", nil)
}

// ApplyCoupon applies a coupon code to the cart.
func (c *Client) ApplyCoupon(ctx context.Context, code string) (*shop.OperationResult, error) {
	return c.doMutation(ctx, http.MethodPost, "/coupon", couponPayload{Code: code})
}

// ---------------------------------------------------------------------------
// Order Operations
// ---------------------------------------------------------------------------

// SubmitOrder submits the order form together with the server-held cart.
func (c *Client) SubmitOrder(ctx context.Context, form *shop.OrderForm) (*shop.OperationResult, error) {
	return c.doMutation(ctx, http.MethodPost, "/order", form)
}

// ---------------------------------------------------------------------------
// Internal Helpers
// ---------------------------------------------------------------------------

// doMutation performs a mutating call and decodes the uniform result shape.
func (c *Client) doMutation(ctx context.Context, method, path string, payload any) (*shop.OperationResult, error) {
	body, err := c.doRequest(ctx, method, path, payload)
	if err != nil {
		return nil, err
	}

	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to parse response: %v", shop.ErrShopInvalidResponse, err)
	}
	if !resp.Success {
		return nil, shop.NewRemoteError(shop.ErrShopRequestFailed, resp.Message)
	}

	return &shop.OperationResult{Success: true, Message: resp.Message}, nil
}

// doRequest performs one HTTP request against the store. A non-nil payload is
// wrapped in the API's data envelope. Failure responses surface the server's
// message field when present.
func (c *Client) doRequest(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(envelope{Data: payload})
		if err != nil {
			return nil, fmt.Errorf("commerce: failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	endpoint := c.config.BaseURL + "/" + c.config.StorePath + path
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("commerce: failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shop.ErrShopUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("commerce: failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		// Failure responses still carry the message field; forward it verbatim.
		var failure apiResponse
		if json.Unmarshal(body, &failure) == nil && failure.Message != "" {
			return nil, shop.NewRemoteError(shop.ErrShopRequestFailed, failure.Message)
		}
		return nil, fmt.Errorf("%w: HTTP %d", shop.ErrShopRequestFailed, resp.StatusCode)
	}

	return body, nil
}

// Ensure Client implements the CommerceGateway port
var _ shop.CommerceGateway = (*Client)(nil)
