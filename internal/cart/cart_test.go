package cart

import (
	"testing"

	"github.com/gorilla/sessions"
)

func newTestSession() *sessions.Session {
	return sessions.NewSession(sessions.NewCookieStore([]byte("test")), "test")
}

func TestAddAccumulates(t *testing.T) {
	sess := newTestSession()

	Add(sess, 1, 10, 5)
	Add(sess, 1, 10, 3)

	if got := Get(sess, 1)[10]; got != 8 {
		t.Fatalf("expected quantity 8, got %d", got)
	}
}

func TestAddClampsAtMaxQuantity(t *testing.T) {
	sess := newTestSession()

	Add(sess, 1, 10, 60)
	Add(sess, 1, 10, 60)

	if got := Get(sess, 1)[10]; got != MaxQuantity {
		t.Fatalf("expected quantity clamped to %d, got %d", MaxQuantity, got)
	}
}

func TestAddRequestAboveMaxClamps(t *testing.T) {
	sess := newTestSession()

	Add(sess, 1, 10, 500)

	if got := Get(sess, 1)[10]; got != MaxQuantity {
		t.Fatalf("expected quantity clamped to %d, got %d", MaxQuantity, got)
	}
}

func TestAddNonPositiveIsNoOp(t *testing.T) {
	sess := newTestSession()

	Add(sess, 1, 10, 0)
	Add(sess, 1, 10, -3)

	if got := len(Get(sess, 1)); got != 0 {
		t.Fatalf("expected empty cart, got %d lines", got)
	}
}

func TestAddCapacityGuard(t *testing.T) {
	sess := newTestSession()

	for i := uint(1); i <= MaxItems; i++ {
		Add(sess, 1, i, 1)
	}
	Add(sess, 1, MaxItems+1, 1)

	items := Get(sess, 1)
	if len(items) != MaxItems {
		t.Fatalf("expected %d lines, got %d", MaxItems, len(items))
	}
	if _, ok := items[MaxItems+1]; ok {
		t.Fatal("line above capacity should have been dropped")
	}
	// Existing lines still accept quantity
	Add(sess, 1, 1, 2)
	if got := Get(sess, 1)[1]; got != 3 {
		t.Fatalf("expected existing line to accumulate to 3, got %d", got)
	}
}

func TestUpdateZeroEqualsRemove(t *testing.T) {
	sess := newTestSession()

	Add(sess, 1, 10, 4)
	Update(sess, 1, 10, 0)

	if _, ok := Get(sess, 1)[10]; ok {
		t.Fatal("expected line removed by zero-quantity update")
	}
}

func TestUpdateSetsNotAdds(t *testing.T) {
	sess := newTestSession()

	Add(sess, 1, 10, 4)
	Update(sess, 1, 10, 2)

	if got := Get(sess, 1)[10]; got != 2 {
		t.Fatalf("expected quantity set to 2, got %d", got)
	}

	// Update creates the line when absent
	Update(sess, 1, 20, 7)
	if got := Get(sess, 1)[20]; got != 7 {
		t.Fatalf("expected new line with quantity 7, got %d", got)
	}
}

func TestRemoveMissingLineIsNoOp(t *testing.T) {
	sess := newTestSession()

	Add(sess, 1, 10, 1)
	Remove(sess, 1, 99)
	Remove(sess, 2, 10)

	if got := Get(sess, 1)[10]; got != 1 {
		t.Fatalf("expected untouched line, got quantity %d", got)
	}
}

func TestCountSumsQuantities(t *testing.T) {
	sess := newTestSession()

	Add(sess, 1, 10, 2)
	Add(sess, 1, 20, 3)

	if got := Count(sess, 1); got != 5 {
		t.Fatalf("expected count 5, got %d", got)
	}
	if got := Count(sess, 2); got != 0 {
		t.Fatalf("expected empty count for other store, got %d", got)
	}
}

func TestStoresAreIsolated(t *testing.T) {
	sess := newTestSession()

	Add(sess, 1, 10, 2)
	Add(sess, 2, 10, 7)
	Remove(sess, 1, 10)

	if got := Get(sess, 2)[10]; got != 7 {
		t.Fatalf("expected store 2 untouched, got quantity %d", got)
	}
}

func TestEntriesPreserveInsertionOrder(t *testing.T) {
	sess := newTestSession()

	Add(sess, 1, 30, 1)
	Add(sess, 1, 10, 1)
	Add(sess, 1, 20, 1)

	entries := Entries(sess, 1)
	want := []uint{30, 10, 20}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, id := range want {
		if entries[i].ProductID != id {
			t.Fatalf("entry %d: expected product %d, got %d", i, id, entries[i].ProductID)
		}
	}
}

func TestMalformedSessionValueTolerated(t *testing.T) {
	sess := newTestSession()
	sess.Values[SessionKey] = "garbage"

	if got := len(Get(sess, 1)); got != 0 {
		t.Fatalf("expected empty cart from malformed value, got %d lines", got)
	}

	Add(sess, 1, 10, 2)
	if got := Get(sess, 1)[10]; got != 2 {
		t.Fatalf("expected add to recover from malformed value, got %d", got)
	}
}

func TestReplaceKeepsSurvivorOrderAndDropsZeros(t *testing.T) {
	sess := newTestSession()

	Add(sess, 1, 30, 1)
	Add(sess, 1, 10, 5)
	Add(sess, 1, 20, 2)

	Replace(sess, 1, map[uint]int{30: 1, 20: 1, 10: 0})

	entries := Entries(sess, 1)
	want := []uint{30, 20}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, id := range want {
		if entries[i].ProductID != id {
			t.Fatalf("entry %d: expected product %d, got %d", i, id, entries[i].ProductID)
		}
	}
}
