package cart

import (
	"github.com/catalogico/storefront/internal/model"
	"github.com/shopspring/decimal"
)

// Line is one renderable cart line, reconciled against live product state.
// Subtotal is nil when the product is price-on-request.
type Line struct {
	Product  model.Product
	Quantity int
	Subtotal *decimal.Decimal
}

// ReconcileResult is the outcome of reconciling stored entries against the
// store's currently published products.
type ReconcileResult struct {
	Lines    []Line
	Items    map[uint]int // cleaned quantities, ready for Replace
	Removed  bool         // at least one line referenced a gone product
	Adjusted bool         // at least one quantity was clamped to stock
}

// Changed reports whether the stored cart must be rewritten
func (r *ReconcileResult) Changed() bool {
	return r.Removed || r.Adjusted
}

// Total sums the priced lines. ok is false when no line carries a price.
func (r *ReconcileResult) Total() (total decimal.Decimal, ok bool) {
	for _, line := range r.Lines {
		if line.Subtotal != nil {
			total = total.Add(*line.Subtotal)
			ok = true
		}
	}
	return total, ok
}

// Reconcile rebuilds a renderable cart from stored entries and the store's
// published products. Entries whose product is gone are dropped, quantities
// above a finite stock are clamped down, and line order follows the stored
// entries, not the product list.
func Reconcile(entries []Entry, products []model.Product) ReconcileResult {
	byID := make(map[uint]*model.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	result := ReconcileResult{Items: make(map[uint]int, len(entries))}
	for _, entry := range entries {
		product, ok := byID[entry.ProductID]
		if !ok {
			result.Removed = true
			continue
		}
		quantity := entry.Quantity
		if product.Stock != nil && quantity > *product.Stock {
			quantity = *product.Stock
			result.Adjusted = true
			if quantity <= 0 {
				result.Items[entry.ProductID] = 0
				continue
			}
		}
		line := Line{Product: *product, Quantity: quantity}
		if !product.PriceOnRequest() {
			subtotal := product.Price.Mul(decimal.NewFromInt(int64(quantity)))
			line.Subtotal = &subtotal
		}
		result.Lines = append(result.Lines, line)
		result.Items[entry.ProductID] = quantity
	}
	return result
}
