package service

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// NotFoundError signals that a referenced inventory lot does not exist.
// Handlers map it to 404.
type NotFoundError struct {
	Detail string
}

func (e *NotFoundError) Error() string { return e.Detail }

// ConflictError blocks deletion of a lot that sales records still reference.
// Handlers map it to 400.
type ConflictError struct {
	Refs int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("Cannot delete stock item. %d sales record(s) are linked to this inventory.", e.Refs)
}

// InsufficientStockError reports a cut that would oversell its lot.
// Cut is "Kameez" or "Shalwar" for split linkage, empty for legacy linkage.
type InsufficientStockError struct {
	Cut       string
	Available decimal.Decimal
	Required  decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	if e.Cut != "" {
		return fmt.Sprintf("%s: Insufficient stock. Available: %sm, Required: %sm", e.Cut, e.Available, e.Required)
	}
	return fmt.Sprintf("Insufficient stock. Available: %sm, Required: %sm", e.Available, e.Required)
}

// AmbiguousLinkageError rejects bills that mix the legacy whole-bill lot id
// with the split per-cut ids; allowing both would let one record be counted
// against a lot through two different linkage paths.
type AmbiguousLinkageError struct{}

func (e *AmbiguousLinkageError) Error() string {
	return "inventory_id cannot be combined with kameez_inventory_id or shalwar_inventory_id"
}
