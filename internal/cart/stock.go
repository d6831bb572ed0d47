package cart

import (
	"github.com/catalogico/storefront/internal/model"
	"github.com/gorilla/sessions"
)

// Outcome tags the result of a stock-aware cart mutation
type Outcome string

const (
	// OutcomeAdded means the full requested quantity went into the cart
	OutcomeAdded Outcome = "added"
	// OutcomePartial means only part of the requested quantity was available
	OutcomePartial Outcome = "partial"
	// OutcomeNoStock means nothing could be added
	OutcomeNoStock Outcome = "no_stock"
	// OutcomeIgnored means the request was a no-op (non-positive quantity)
	OutcomeIgnored Outcome = "ignored"
)

// AddResult reports what a stock-aware add actually did
type AddResult struct {
	Outcome Outcome
	Added   int // quantity that went into the cart
}

// AddWithStock adds a product to the cart, clamping the requested quantity to
// the product's remaining stock. Stock is advisory only: the read and the
// session write are not atomic, nothing is reserved.
func AddWithStock(sess *sessions.Session, storeID uint, product *model.Product, quantity int) AddResult {
	if quantity <= 0 {
		return AddResult{Outcome: OutcomeIgnored}
	}
	if quantity > MaxQuantity {
		quantity = MaxQuantity
	}

	if product.Stock == nil {
		Add(sess, storeID, product.ID, quantity)
		return AddResult{Outcome: OutcomeAdded, Added: quantity}
	}

	inCart := Get(sess, storeID)[product.ID]
	available := *product.Stock - inCart
	if available < 0 {
		available = 0
	}
	if available == 0 {
		return AddResult{Outcome: OutcomeNoStock}
	}
	if quantity > available {
		Add(sess, storeID, product.ID, available)
		return AddResult{Outcome: OutcomePartial, Added: available}
	}
	Add(sess, storeID, product.ID, quantity)
	return AddResult{Outcome: OutcomeAdded, Added: quantity}
}
