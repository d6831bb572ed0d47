// Package cart implements the session-backed shopping cart. The cart lives in
// the visitor's cookie session as one document per store:
//
//	session["cart"] = { "<store_id>": { "<product_id>": quantity } }
//
// Keys are kept string-encoded so the document survives the session
// serialization boundary without creating duplicate int/string entries for the
// same store. An explicit line-order list is kept alongside the quantity map
// because Go maps do not preserve insertion order.
package cart

import (
	"encoding/gob"
	"sort"
	"strconv"

	"github.com/gorilla/sessions"
)

const (
	// SessionKey is the key of the cart document inside the session
	SessionKey = "cart"

	// MaxQuantity is the per-line quantity cap
	MaxQuantity = 99

	// MaxItems is the cap on distinct product lines per store
	MaxItems = 50
)

// StoreCart is one store's serialized cart document
type StoreCart struct {
	Order []string       // product ids in insertion order
	Items map[string]int // product id -> quantity
}

// Document maps store ids to their carts
type Document map[string]*StoreCart

func init() {
	gob.Register(Document{})
}

// Entry is one normalized cart line
type Entry struct {
	ProductID uint
	Quantity  int
}

// document returns the session's cart document, tolerating absent or
// malformed stored values.
func document(sess *sessions.Session) Document {
	doc, ok := sess.Values[SessionKey].(Document)
	if !ok || doc == nil {
		return Document{}
	}
	return doc
}

func ensureDocument(sess *sessions.Session) Document {
	doc, ok := sess.Values[SessionKey].(Document)
	if !ok || doc == nil {
		doc = Document{}
		sess.Values[SessionKey] = doc
	}
	return doc
}

func storeKey(storeID uint) string {
	return strconv.FormatUint(uint64(storeID), 10)
}

func productKey(productID uint) string {
	return strconv.FormatUint(uint64(productID), 10)
}

func parseID(key string) (uint, bool) {
	id, err := strconv.ParseUint(key, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// Get returns the store's cart as product id -> quantity. Only lines with a
// positive quantity survive; malformed keys are dropped.
func Get(sess *sessions.Session, storeID uint) map[uint]int {
	items := make(map[uint]int)
	for _, e := range Entries(sess, storeID) {
		items[e.ProductID] = e.Quantity
	}
	return items
}

// Entries returns the store's cart lines in insertion order
func Entries(sess *sessions.Session, storeID uint) []Entry {
	sc := document(sess)[storeKey(storeID)]
	if sc == nil {
		return nil
	}
	entries := make([]Entry, 0, len(sc.Order))
	seen := make(map[string]bool, len(sc.Order))
	for _, key := range sc.Order {
		if seen[key] {
			continue
		}
		seen[key] = true
		id, ok := parseID(key)
		if !ok {
			continue
		}
		if qty := sc.Items[key]; qty > 0 {
			entries = append(entries, Entry{ProductID: id, Quantity: qty})
		}
	}
	// Tolerate lines missing from the order list
	for key, qty := range sc.Items {
		if seen[key] || qty <= 0 {
			continue
		}
		if id, ok := parseID(key); ok {
			entries = append(entries, Entry{ProductID: id, Quantity: qty})
		}
	}
	return entries
}

// Count returns the sum of quantities in the store's cart, for the cart badge
func Count(sess *sessions.Session, storeID uint) int {
	total := 0
	for _, e := range Entries(sess, storeID) {
		total += e.Quantity
	}
	return total
}

// Replace overwrites the store's cart wholesale, keeping only positive
// quantities. Lines that survive keep their original position; new lines are
// appended in id order.
func Replace(sess *sessions.Session, storeID uint, items map[uint]int) {
	doc := ensureDocument(sess)
	old := doc[storeKey(storeID)]

	next := &StoreCart{Items: make(map[string]int, len(items))}
	remaining := make(map[string]int, len(items))
	for id, qty := range items {
		if qty > 0 {
			remaining[productKey(id)] = qty
		}
	}
	if old != nil {
		for _, key := range old.Order {
			if qty, ok := remaining[key]; ok {
				next.Order = append(next.Order, key)
				next.Items[key] = qty
				delete(remaining, key)
			}
		}
	}
	appended := make([]string, 0, len(remaining))
	for key := range remaining {
		appended = append(appended, key)
	}
	sort.Slice(appended, func(i, j int) bool {
		a, _ := parseID(appended[i])
		b, _ := parseID(appended[j])
		return a < b
	})
	for _, key := range appended {
		next.Order = append(next.Order, key)
		next.Items[key] = remaining[key]
	}

	doc[storeKey(storeID)] = next
}

// Add adds quantity to a product line, creating it if absent. Quantities are
// clamped to MaxQuantity and a new line is silently dropped once the cart
// holds MaxItems distinct lines.
func Add(sess *sessions.Session, storeID, productID uint, quantity int) {
	if quantity <= 0 {
		return
	}
	if quantity > MaxQuantity {
		quantity = MaxQuantity
	}

	doc := ensureDocument(sess)
	key := storeKey(storeID)
	sc := doc[key]
	if sc == nil {
		sc = &StoreCart{Items: make(map[string]int)}
		doc[key] = sc
	}

	pkey := productKey(productID)
	current, exists := sc.Items[pkey]
	if !exists && len(sc.Items) >= MaxItems {
		return
	}
	total := current + quantity
	if total > MaxQuantity {
		total = MaxQuantity
	}
	if !exists {
		sc.Order = append(sc.Order, pkey)
	}
	sc.Items[pkey] = total
}

// Remove deletes a product line if present
func Remove(sess *sessions.Session, storeID, productID uint) {
	sc := document(sess)[storeKey(storeID)]
	if sc == nil {
		return
	}
	pkey := productKey(productID)
	if _, ok := sc.Items[pkey]; !ok {
		return
	}
	delete(sc.Items, pkey)
	for i, key := range sc.Order {
		if key == pkey {
			sc.Order = append(sc.Order[:i], sc.Order[i+1:]...)
			break
		}
	}
}

// Update sets (not adds) a product line's quantity, creating the line if
// absent. A non-positive quantity removes the line.
func Update(sess *sessions.Session, storeID, productID uint, quantity int) {
	if quantity <= 0 {
		Remove(sess, storeID, productID)
		return
	}
	if quantity > MaxQuantity {
		quantity = MaxQuantity
	}

	doc := ensureDocument(sess)
	key := storeKey(storeID)
	sc := doc[key]
	if sc == nil {
		sc = &StoreCart{Items: make(map[string]int)}
		doc[key] = sc
	}
	pkey := productKey(productID)
	if _, exists := sc.Items[pkey]; !exists {
		sc.Order = append(sc.Order, pkey)
	}
	sc.Items[pkey] = quantity
}
