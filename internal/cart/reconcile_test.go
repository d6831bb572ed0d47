package cart

import (
	"testing"

	"github.com/catalogico/storefront/internal/model"
	"github.com/shopspring/decimal"
)

func pricePtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestReconcileClampsToStock(t *testing.T) {
	entries := []Entry{{ProductID: 10, Quantity: 5}}
	products := []model.Product{{ID: 10, Name: "A", Stock: intPtr(2), Status: model.StatusPublished}}

	res := Reconcile(entries, products)

	if !res.Adjusted {
		t.Fatal("expected adjusted signal")
	}
	if res.Removed {
		t.Fatal("unexpected removed signal")
	}
	if len(res.Lines) != 1 || res.Lines[0].Quantity != 2 {
		t.Fatalf("expected one line clamped to 2, got %+v", res.Lines)
	}
	if res.Items[10] != 2 {
		t.Fatalf("expected cleaned quantity 2, got %d", res.Items[10])
	}
}

func TestReconcileDropsGoneProduct(t *testing.T) {
	entries := []Entry{
		{ProductID: 10, Quantity: 1},
		{ProductID: 99, Quantity: 3},
		{ProductID: 20, Quantity: 2},
	}
	products := []model.Product{
		{ID: 10, Name: "A", Status: model.StatusPublished},
		{ID: 20, Name: "B", Status: model.StatusPublished},
	}

	res := Reconcile(entries, products)

	if !res.Removed {
		t.Fatal("expected removed signal")
	}
	if len(res.Lines) != 2 {
		t.Fatalf("expected 2 surviving lines, got %d", len(res.Lines))
	}
	if res.Lines[0].Product.ID != 10 || res.Lines[1].Product.ID != 20 {
		t.Fatalf("surviving lines wrong or reordered: %+v", res.Lines)
	}
	if _, ok := res.Items[99]; ok {
		t.Fatal("gone product must not appear in cleaned items")
	}
}

func TestReconcilePreservesEntryOrder(t *testing.T) {
	entries := []Entry{
		{ProductID: 30, Quantity: 1},
		{ProductID: 10, Quantity: 1},
		{ProductID: 20, Quantity: 1},
	}
	// Product list ordered differently than the cart
	products := []model.Product{
		{ID: 10, Status: model.StatusPublished},
		{ID: 20, Status: model.StatusPublished},
		{ID: 30, Status: model.StatusPublished},
	}

	res := Reconcile(entries, products)

	want := []uint{30, 10, 20}
	for i, id := range want {
		if res.Lines[i].Product.ID != id {
			t.Fatalf("line %d: expected product %d, got %d", i, id, res.Lines[i].Product.ID)
		}
	}
}

func TestReconcileZeroStockRemovesLine(t *testing.T) {
	entries := []Entry{{ProductID: 10, Quantity: 3}}
	products := []model.Product{{ID: 10, Stock: intPtr(0), Status: model.StatusPublished}}

	res := Reconcile(entries, products)

	if !res.Adjusted {
		t.Fatal("expected adjusted signal")
	}
	if len(res.Lines) != 0 {
		t.Fatalf("expected no renderable lines, got %d", len(res.Lines))
	}
	if res.Items[10] != 0 {
		t.Fatalf("expected cleaned quantity 0, got %d", res.Items[10])
	}
}

func TestReconcileSubtotalsAndTotal(t *testing.T) {
	entries := []Entry{
		{ProductID: 10, Quantity: 2},
		{ProductID: 20, Quantity: 1},
	}
	products := []model.Product{
		{ID: 10, Name: "ProductA", Price: pricePtr("100"), Status: model.StatusPublished},
		{ID: 20, Name: "ProductB", Status: model.StatusPublished}, // price on request
	}

	res := Reconcile(entries, products)

	if res.Lines[0].Subtotal == nil || !res.Lines[0].Subtotal.Equal(decimal.RequireFromString("200")) {
		t.Fatalf("expected subtotal 200, got %v", res.Lines[0].Subtotal)
	}
	if res.Lines[1].Subtotal != nil {
		t.Fatalf("price-on-request line must have nil subtotal, got %v", res.Lines[1].Subtotal)
	}

	total, ok := res.Total()
	if !ok {
		t.Fatal("expected a priced total")
	}
	if !total.Equal(decimal.RequireFromString("200")) {
		t.Fatalf("expected total 200, got %s", total)
	}
}

func TestReconcileTotalAllOnRequest(t *testing.T) {
	entries := []Entry{{ProductID: 10, Quantity: 1}}
	products := []model.Product{{ID: 10, Status: model.StatusPublished}}

	res := Reconcile(entries, products)

	if _, ok := res.Total(); ok {
		t.Fatal("expected no priced total when every line is price-on-request")
	}
	if res.Changed() {
		t.Fatal("nothing changed, cart should not need a rewrite")
	}
}
