package services

import "fmt"

// Error kinds surfaced to the request layer. Every sale failure maps to
// exactly one of these; none are retried inside the service layer.
const (
	KindValidation        = "ValidationError"
	KindProductNotFound   = "ProductNotFound"
	KindInsufficientStock = "InsufficientStock"
	KindStorage           = "StorageError"
)

type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

type ProductNotFoundError struct {
	Product string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product '%s' not found", e.Product)
}

// InsufficientStockError carries the quantity actually available so the
// caller can correct the offending line and retry.
type InsufficientStockError struct {
	Product   string
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for '%s' (available: %d)", e.Product, e.Available)
}

type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return "storage error: " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
