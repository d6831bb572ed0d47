package cart

import (
	"testing"

	"github.com/catalogico/storefront/internal/model"
)

func intPtr(v int) *int { return &v }

func TestAddWithStockUnlimited(t *testing.T) {
	sess := newTestSession()
	product := &model.Product{ID: 10}

	res := AddWithStock(sess, 1, product, 5)

	if res.Outcome != OutcomeAdded || res.Added != 5 {
		t.Fatalf("expected full add of 5, got %+v", res)
	}
	if got := Get(sess, 1)[10]; got != 5 {
		t.Fatalf("expected quantity 5 in cart, got %d", got)
	}
}

func TestAddWithStockRejectsWhenExhausted(t *testing.T) {
	sess := newTestSession()
	product := &model.Product{ID: 10, Stock: intPtr(2)}

	Add(sess, 1, 10, 2)
	res := AddWithStock(sess, 1, product, 1)

	if res.Outcome != OutcomeNoStock {
		t.Fatalf("expected no_stock outcome, got %+v", res)
	}
	if got := Get(sess, 1)[10]; got != 2 {
		t.Fatalf("cart should be unchanged, got quantity %d", got)
	}
}

func TestAddWithStockPartial(t *testing.T) {
	sess := newTestSession()
	product := &model.Product{ID: 10, Stock: intPtr(2)}

	res := AddWithStock(sess, 1, product, 5)

	if res.Outcome != OutcomePartial || res.Added != 2 {
		t.Fatalf("expected partial add of 2, got %+v", res)
	}
	if got := Get(sess, 1)[10]; got != 2 {
		t.Fatalf("expected quantity 2 in cart, got %d", got)
	}
}

func TestAddWithStockZeroStockProduct(t *testing.T) {
	sess := newTestSession()
	product := &model.Product{ID: 10, Stock: intPtr(0)}

	res := AddWithStock(sess, 1, product, 1)

	if res.Outcome != OutcomeNoStock {
		t.Fatalf("expected no_stock outcome, got %+v", res)
	}
}

func TestAddWithStockIgnoresNonPositive(t *testing.T) {
	sess := newTestSession()
	product := &model.Product{ID: 10, Stock: intPtr(5)}

	res := AddWithStock(sess, 1, product, 0)

	if res.Outcome != OutcomeIgnored {
		t.Fatalf("expected ignored outcome, got %+v", res)
	}
}
