package message

import (
	"net/url"
	"strings"
	"testing"

	"github.com/catalogico/storefront/internal/model"
)

func shareText(t *testing.T, rawURL string) string {
	t.Helper()
	parsed, err := url.Parse(rawURL)
	if err != nil {
		t.Fatalf("invalid link URL %q: %v", rawURL, err)
	}
	return parsed.Query().Get("text")
}

func TestProductURL(t *testing.T) {
	got := ProductURL("catalogico.shop", "mitienda", "remera-azul")
	want := "https://mitienda.catalogico.shop/producto/remera-azul"
	if got != want {
		t.Fatalf("product URL mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestResolveWhatsAppSubstitutesBothPlaceholders(t *testing.T) {
	product := &model.Product{Name: "Remera"}
	config := &model.StoreConfig{
		WhatsAppNumber:          "5491122334455",
		WhatsAppMessageTemplate: "Mirá {{ url }} se llama {{ product }}",
	}
	productURL := "https://mitienda.catalogico.shop/producto/remera"

	link, ok := ResolveProductLink(model.ProductLink{LinkType: model.LinkTypeWhatsApp}, product, config, productURL)
	if !ok {
		t.Fatal("expected a resolved link")
	}

	text := shareText(t, link.URL)
	want := "Mirá " + productURL + " se llama Remera"
	if text != want {
		t.Fatalf("share text mismatch:\ngot:  %q\nwant: %q", text, want)
	}
	if strings.Count(text, productURL) != 1 || strings.Count(text, "Remera") != 1 {
		t.Fatalf("each placeholder must be substituted exactly once: %q", text)
	}
}

func TestResolveWhatsAppDefaultTemplate(t *testing.T) {
	product := &model.Product{Name: "Remera"}
	config := &model.StoreConfig{WhatsAppNumber: "5491122334455"}
	productURL := "https://mitienda.catalogico.shop/producto/remera"

	link, ok := ResolveProductLink(model.ProductLink{LinkType: model.LinkTypeWhatsApp}, product, config, productURL)
	if !ok {
		t.Fatal("expected a resolved link")
	}

	want := "Hola! Estoy interesado/a en el producto 'Remera' (" + productURL + ")"
	if got := shareText(t, link.URL); got != want {
		t.Fatalf("share text mismatch:\ngot:  %q\nwant: %q", got, want)
	}
	if !strings.HasPrefix(link.URL, "https://wa.me/5491122334455?text=") {
		t.Fatalf("unexpected link URL %q", link.URL)
	}
}

func TestResolveInstagramUsesShareTemplate(t *testing.T) {
	product := &model.Product{Name: "Remera"}
	config := &model.StoreConfig{InstagramUsername: "mitienda"}

	link, ok := ResolveProductLink(model.ProductLink{LinkType: model.LinkTypeInstagram}, product, config, "u")
	if !ok {
		t.Fatal("expected a resolved link")
	}
	if !strings.HasPrefix(link.URL, "https://ig.me/m/mitienda?text=") {
		t.Fatalf("unexpected link URL %q", link.URL)
	}
}

func TestResolveFallsBackToProductName(t *testing.T) {
	product := &model.Product{Name: "Remera"}
	config := &model.StoreConfig{
		WhatsAppNumber:          "5491122334455",
		WhatsAppMessageTemplate: "{{ url }}",
	}

	// Template renders empty when the product URL is empty
	link, ok := ResolveProductLink(model.ProductLink{LinkType: model.LinkTypeWhatsApp}, product, config, "")
	if !ok {
		t.Fatal("expected a resolved link")
	}
	if got := shareText(t, link.URL); got != "Remera" {
		t.Fatalf("expected bare product name fallback, got %q", got)
	}
}

func TestResolveRequiresChannelConfig(t *testing.T) {
	product := &model.Product{Name: "Remera"}

	for _, linkType := range []string{
		model.LinkTypeWhatsApp,
		model.LinkTypeInstagram,
		model.LinkTypeFacebook,
		model.LinkTypeMarketplace,
	} {
		if _, ok := ResolveProductLink(model.ProductLink{LinkType: linkType}, product, &model.StoreConfig{}, "u"); ok {
			t.Fatalf("%s link should not resolve without configuration", linkType)
		}
		if _, ok := ResolveProductLink(model.ProductLink{LinkType: linkType}, product, nil, "u"); ok {
			t.Fatalf("%s link should not resolve without store config", linkType)
		}
	}
}

func TestResolveStaticChannels(t *testing.T) {
	product := &model.Product{Name: "Remera"}
	config := &model.StoreConfig{
		FacebookPage:     "mipagina",
		MarketplaceStore: "mitienda",
		// Templates are ignored for static channels
		WhatsAppMessageTemplate: "{{ product }}",
	}

	fb, ok := ResolveProductLink(model.ProductLink{LinkType: model.LinkTypeFacebook}, product, config, "u")
	if !ok || fb.URL != "https://facebook.com/mipagina" {
		t.Fatalf("unexpected facebook link: %+v ok=%v", fb, ok)
	}

	ml, ok := ResolveProductLink(model.ProductLink{LinkType: model.LinkTypeMarketplace}, product, config, "u")
	if !ok || ml.URL != "https://mercadolibre.com.ar/mitienda" {
		t.Fatalf("unexpected marketplace link: %+v ok=%v", ml, ok)
	}
}

func TestResolveExternalRequiresURLAndText(t *testing.T) {
	product := &model.Product{Name: "Remera"}

	if _, ok := ResolveProductLink(model.ProductLink{LinkType: model.LinkTypeExternal, URL: "https://x"}, product, nil, ""); ok {
		t.Fatal("external link without button text should not resolve")
	}
	if _, ok := ResolveProductLink(model.ProductLink{LinkType: model.LinkTypeExternal, ButtonText: "Comprar"}, product, nil, ""); ok {
		t.Fatal("external link without URL should not resolve")
	}

	link, ok := ResolveProductLink(model.ProductLink{
		LinkType:   model.LinkTypeExternal,
		URL:        "https://tienda.example.com/remera",
		ButtonText: "Comprar acá",
	}, product, nil, "")
	if !ok {
		t.Fatal("expected external link to resolve")
	}
	if link.URL != "https://tienda.example.com/remera" || link.ButtonText != "Comprar acá" {
		t.Fatalf("unexpected external link: %+v", link)
	}
}

func TestResolveProductLinksOrdering(t *testing.T) {
	product := &model.Product{Name: "Remera"}
	config := &model.StoreConfig{
		WhatsAppNumber:    "5491122334455",
		InstagramUsername: "mitienda",
		FacebookPage:      "mipagina",
		MarketplaceStore:  "mitienda",
	}

	links := []model.ProductLink{
		{LinkType: model.LinkTypeExternal, URL: "https://b", ButtonText: "B", SortOrder: 2},
		{LinkType: model.LinkTypeFacebook, SortOrder: 1},
		{LinkType: model.LinkTypeExternal, URL: "https://a", ButtonText: "A", SortOrder: 1},
		{LinkType: model.LinkTypeWhatsApp, SortOrder: 9},
		{LinkType: model.LinkTypeMarketplace},
		{LinkType: model.LinkTypeInstagram},
	}

	resolved := ResolveProductLinks(links, product, config, "u")

	wantTypes := []string{
		model.LinkTypeWhatsApp,
		model.LinkTypeInstagram,
		model.LinkTypeMarketplace,
		model.LinkTypeFacebook,
		model.LinkTypeExternal,
		model.LinkTypeExternal,
	}
	if len(resolved) != len(wantTypes) {
		t.Fatalf("expected %d links, got %d", len(wantTypes), len(resolved))
	}
	for i, wantType := range wantTypes {
		if resolved[i].Type != wantType {
			t.Fatalf("position %d: expected %s, got %s", i, wantType, resolved[i].Type)
		}
	}
	// External ties broken by stored sort order
	if resolved[4].ButtonText != "A" || resolved[5].ButtonText != "B" {
		t.Fatalf("external links out of order: %+v", resolved[4:])
	}
}
