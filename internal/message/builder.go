// Package message renders the shareable order and product messages and the
// outbound contact URLs built from them.
package message

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/catalogico/storefront/internal/model"
)

// DefaultOrderTemplate is used when a store has no order message template
const DefaultOrderTemplate = "Hola! Mi pedido:\n{{ items }}\nTotal: {{ total }}"

// OrderItem is one cart line as the order message needs it
type OrderItem struct {
	Name           string
	Quantity       int
	PriceOnRequest bool
}

// substitute replaces whitelisted "{{ name }}" placeholders with literal
// values. No template engine: exact literal match only.
func substitute(template string, values map[string]string) string {
	out := template
	for name, value := range values {
		out = strings.ReplaceAll(out, "{{ "+name+" }}", value)
	}
	return out
}

// BuildOrderMessage renders the checkout message for a cart. totalDisplay is
// already currency-formatted (or the "Consultar" label).
func BuildOrderMessage(template string, items []OrderItem, totalDisplay string) string {
	if strings.TrimSpace(template) == "" {
		template = DefaultOrderTemplate
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		line := fmt.Sprintf("- %s x %d", item.Name, item.Quantity)
		if item.PriceOnRequest {
			line += " (consultar precio)"
		}
		lines = append(lines, line)
	}
	itemsText := "-"
	if len(lines) > 0 {
		itemsText = strings.Join(lines, "\n")
	}

	return substitute(template, map[string]string{
		"items": itemsText,
		"total": totalDisplay,
	})
}

// CheckoutLinks holds one send-intent URL per configured channel
type CheckoutLinks struct {
	WhatsApp  string `json:"whatsapp,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// BuildCheckoutLinks turns a checkout message into clickable send intents for
// the store's configured channels. A missing store config yields no links.
func BuildCheckoutLinks(config *model.StoreConfig, message string) CheckoutLinks {
	var links CheckoutLinks
	if config == nil {
		return links
	}
	encoded := url.QueryEscape(message)
	if config.WhatsAppNumber != "" {
		links.WhatsApp = fmt.Sprintf("https://wa.me/%s?text=%s", config.WhatsAppNumber, encoded)
	}
	if config.InstagramUsername != "" {
		links.Instagram = fmt.Sprintf("https://ig.me/m/%s?text=%s", config.InstagramUsername, encoded)
	}
	return links
}
