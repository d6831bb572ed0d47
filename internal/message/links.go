package message

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/catalogico/storefront/internal/model"
)

// DefaultShareTemplate is used when a store has no product share template
const DefaultShareTemplate = "Hola! Estoy interesado/a en el producto '{{ product }}' ({{ url }})"

// Static bases for the channels whose URL is derived from store settings
const (
	facebookBase    = "https://facebook.com/"
	marketplaceBase = "https://mercadolibre.com.ar/"
)

// Default button labels per channel
var defaultButtonText = map[string]string{
	model.LinkTypeWhatsApp:    "WhatsApp",
	model.LinkTypeInstagram:   "Instagram",
	model.LinkTypeMarketplace: "MercadoLibre",
	model.LinkTypeFacebook:    "Facebook",
}

// ResolvedLink is a renderable purchase button for a product
type ResolvedLink struct {
	Type       string `json:"type"`
	URL        string `json:"url"`
	ButtonText string `json:"button_text"`
}

// ProductURL builds the public detail URL for a product on its store's
// subdomain.
func ProductURL(rootDomain, storeSlug, productSlug string) string {
	return fmt.Sprintf("https://%s.%s/producto/%s", storeSlug, rootDomain, productSlug)
}

// shareMessage renders the per-product share text, falling back to the bare
// product name when the template renders empty.
func shareMessage(template, productName, productURL string) string {
	if strings.TrimSpace(template) == "" {
		template = DefaultShareTemplate
	}
	rendered := substitute(template, map[string]string{
		"product": productName,
		"url":     productURL,
	})
	if strings.TrimSpace(rendered) == "" {
		return productName
	}
	return rendered
}

// ResolveProductLink turns one stored link into a clickable button. ok is
// false when the store configuration required for the channel is missing.
func ResolveProductLink(link model.ProductLink, product *model.Product, config *model.StoreConfig, productURL string) (ResolvedLink, bool) {
	resolved := ResolvedLink{Type: link.LinkType, ButtonText: defaultButtonText[link.LinkType]}

	switch link.LinkType {
	case model.LinkTypeWhatsApp:
		if config == nil || config.WhatsAppNumber == "" {
			return ResolvedLink{}, false
		}
		text := shareMessage(config.WhatsAppMessageTemplate, product.Name, productURL)
		resolved.URL = fmt.Sprintf("https://wa.me/%s?text=%s", config.WhatsAppNumber, url.QueryEscape(text))
	case model.LinkTypeInstagram:
		if config == nil || config.InstagramUsername == "" {
			return ResolvedLink{}, false
		}
		text := shareMessage(config.WhatsAppMessageTemplate, product.Name, productURL)
		resolved.URL = fmt.Sprintf("https://ig.me/m/%s?text=%s", config.InstagramUsername, url.QueryEscape(text))
	case model.LinkTypeFacebook:
		if config == nil || config.FacebookPage == "" {
			return ResolvedLink{}, false
		}
		resolved.URL = facebookBase + config.FacebookPage
	case model.LinkTypeMarketplace:
		if config == nil || config.MarketplaceStore == "" {
			return ResolvedLink{}, false
		}
		resolved.URL = marketplaceBase + config.MarketplaceStore
	case model.LinkTypeExternal:
		if link.URL == "" || link.ButtonText == "" {
			return ResolvedLink{}, false
		}
		resolved.URL = link.URL
		resolved.ButtonText = link.ButtonText
	default:
		return ResolvedLink{}, false
	}

	return resolved, true
}

// ResolveProductLinks resolves a product's links ordered by channel priority,
// ties broken by the stored sort order. Unresolvable links are skipped.
func ResolveProductLinks(links []model.ProductLink, product *model.Product, config *model.StoreConfig, productURL string) []ResolvedLink {
	ordered := make([]model.ProductLink, len(links))
	copy(ordered, links)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Priority() != ordered[j].Priority() {
			return ordered[i].Priority() < ordered[j].Priority()
		}
		return ordered[i].SortOrder < ordered[j].SortOrder
	})

	resolved := make([]ResolvedLink, 0, len(ordered))
	for _, link := range ordered {
		if r, ok := ResolveProductLink(link, product, config, productURL); ok {
			resolved = append(resolved, r)
		}
	}
	return resolved
}
