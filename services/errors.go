package services

import (
	"fmt"
	"net/http"
)

// ErrorKind groups service failures by how callers should react to them.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindAuthentication
	KindNotFound
	KindConflict
	KindAuthorization
	KindStorage
	KindUnavailable
)

// ServiceError is a failure that carries its HTTP status and a stable code.
// Two ServiceErrors match under errors.Is when their codes are equal.
type ServiceError struct {
	Kind       ErrorKind
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func (e *ServiceError) Is(target error) bool {
	t, ok := target.(*ServiceError)
	return ok && t.Code == e.Code
}

// Wrap returns a copy of e carrying cause.
func (e *ServiceError) Wrap(cause error) *ServiceError {
	out := *e
	out.Err = cause
	return &out
}

// WithMessage returns a copy of e with a more specific caller-facing message.
func (e *ServiceError) WithMessage(msg string) *ServiceError {
	out := *e
	out.Message = msg
	return &out
}

func newError(kind ErrorKind, status int, code, message string) *ServiceError {
	return &ServiceError{Kind: kind, StatusCode: status, Code: code, Message: message}
}

// Validation
var (
	ErrMissingFields     = newError(KindValidation, http.StatusBadRequest, "missing_fields", "All fields are required")
	ErrWeakPassword      = newError(KindValidation, http.StatusUnprocessableEntity, "weak_password", "Password must be at least 6 characters long and include an uppercase letter and a special character")
	ErrInvalidRole       = newError(KindValidation, http.StatusBadRequest, "invalid_role", "Role must be buyer or seller")
	ErrInvalidQuantity   = newError(KindValidation, http.StatusBadRequest, "invalid_quantity", "Product ID and valid quantity required")
	ErrInactive          = newError(KindValidation, http.StatusBadRequest, "product_inactive", "Product is inactive")
	ErrInsufficientStock = newError(KindValidation, http.StatusBadRequest, "insufficient_stock", "Not enough items in stock")
	ErrIncompleteOrder   = newError(KindValidation, http.StatusBadRequest, "incomplete_order", "Incomplete order data")
	ErrInvalidFormat     = newError(KindValidation, http.StatusBadRequest, "invalid_order_id", "Invalid order ID format")
	ErrInvalidInput      = newError(KindValidation, http.StatusBadRequest, "invalid_input", "Invalid input")
	ErrInvalidEmail      = newError(KindValidation, http.StatusBadRequest, "invalid_email", "Invalid email address")
)

// Authentication
var (
	ErrInvalidCredentials = newError(KindAuthentication, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
	ErrUnauthorized       = newError(KindAuthentication, http.StatusUnauthorized, "unauthorized", "Unauthorized")
	ErrForbidden          = newError(KindAuthentication, http.StatusForbidden, "invalid_token", "Invalid or expired token")
)

// Not found
var (
	ErrNotFound         = newError(KindNotFound, http.StatusNotFound, "not_found", "Not found")
	ErrProductNotFound  = newError(KindNotFound, http.StatusNotFound, "product_not_found", "Product not found")
	ErrCartItemNotFound = newError(KindNotFound, http.StatusNotFound, "cart_item_not_found", "Cart item not found")
	ErrAddressNotFound  = newError(KindNotFound, http.StatusNotFound, "address_not_found", "Address not found")
	ErrOrderNotFound    = newError(KindNotFound, http.StatusNotFound, "order_not_found", "Order not found")
)

// Conflict
var (
	ErrDuplicateEmail   = newError(KindConflict, http.StatusConflict, "duplicate_email", "Email already exists")
	ErrStockUnavailable = newError(KindConflict, http.StatusConflict, "stock_unavailable", "One or more items are no longer in stock")
)

// Authorization
var (
	ErrNotAuthorized = newError(KindAuthorization, http.StatusForbidden, "not_authorized", "Not authorized to modify this product")
	ErrRoleForbidden = newError(KindAuthorization, http.StatusForbidden, "role_forbidden", "Access denied for this role")
)

// Storage and availability
var (
	ErrStorage              = newError(KindStorage, http.StatusInternalServerError, "storage_error", "Internal server error")
	ErrOrderPlacementFailed = newError(KindStorage, http.StatusInternalServerError, "order_placement_failed", "Order placement failed")
	ErrUploadsDisabled      = newError(KindUnavailable, http.StatusServiceUnavailable, "uploads_disabled", "Image uploads are not configured")
	ErrUploadFailed         = newError(KindStorage, http.StatusBadGateway, "upload_failed", "Failed to upload image")
	ErrTooManyRequests      = newError(KindUnavailable, http.StatusTooManyRequests, "rate_limited", "Too many requests, please try again later")
)
