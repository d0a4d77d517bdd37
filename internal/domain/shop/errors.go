package shop

import "errors"

// ---------------------------------------------------------------------------
// Storefront Errors
// ---------------------------------------------------------------------------

var (
	// Transport errors
	ErrShopUnavailable     = errors.New("shop: store temporarily unavailable")
	ErrShopRequestFailed   = errors.New("shop: store request failed")
	ErrShopInvalidResponse = errors.New("shop: invalid store response")

	// Checkout validation errors
	ErrPhoneRequired      = errors.New("shop: phone number is required")
	ErrPhoneInvalidFormat = errors.New("shop: phone number format is invalid")
	ErrFormInvalid        = errors.New("shop: order form is invalid")
)

// RemoteError carries the server-issued human-readable message of a failed
// operation. The message is opaque to this layer and forwarded verbatim to the
// Notifier. It wraps one of the transport sentinels so callers can classify
// failures with errors.Is.
type RemoteError struct {
	// Message is the server-issued description of the failure
	Message string
	// Err is the underlying transport sentinel (or wrapped cause)
	Err error
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	if e.Message == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Message
}

// Unwrap returns the wrapped sentinel for errors.Is / errors.As.
func (e *RemoteError) Unwrap() error {
	return e.Err
}

// NewRemoteError creates a RemoteError wrapping the given sentinel.
func NewRemoteError(sentinel error, message string) *RemoteError {
	return &RemoteError{Message: message, Err: sentinel}
}

// UserMessage extracts the text to show the user for a failed operation.
// Server-issued messages win; anything else falls back to the error text.
func UserMessage(err error) string {
	var re *RemoteError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
