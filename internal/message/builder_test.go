package message

import (
	"strings"
	"testing"

	"github.com/catalogico/storefront/internal/model"
)

func TestBuildOrderMessageDefaultTemplate(t *testing.T) {
	items := []OrderItem{
		{Name: "ProductA", Quantity: 2},
		{Name: "ProductB", Quantity: 1, PriceOnRequest: true},
	}

	got := BuildOrderMessage("", items, "$200,00")
	want := "Hola! Mi pedido:\n- ProductA x 2\n- ProductB x 1 (consultar precio)\nTotal: $200,00"
	if got != want {
		t.Fatalf("message mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestBuildOrderMessageEmptyCart(t *testing.T) {
	got := BuildOrderMessage("", nil, "Consultar")
	want := "Hola! Mi pedido:\n-\nTotal: Consultar"
	if got != want {
		t.Fatalf("message mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestBuildOrderMessageCustomTemplate(t *testing.T) {
	items := []OrderItem{{Name: "X", Quantity: 1}}

	got := BuildOrderMessage("Pedido para retirar:\n{{ items }}\nPago: {{ total }}", items, "$10,00")
	want := "Pedido para retirar:\n- X x 1\nPago: $10,00"
	if got != want {
		t.Fatalf("message mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestBuildOrderMessageBlankTemplateFallsBack(t *testing.T) {
	got := BuildOrderMessage("   ", nil, "Consultar")
	if !strings.HasPrefix(got, "Hola! Mi pedido:") {
		t.Fatalf("blank template should fall back to default, got %q", got)
	}
}

func TestBuildCheckoutLinksBothChannels(t *testing.T) {
	config := &model.StoreConfig{
		WhatsAppNumber:    "5491122334455",
		InstagramUsername: "mitienda",
	}

	links := BuildCheckoutLinks(config, "Hola! Mi pedido")

	wantWA := "https://wa.me/5491122334455?text=Hola%21+Mi+pedido"
	if links.WhatsApp != wantWA {
		t.Fatalf("whatsapp link mismatch:\ngot:  %q\nwant: %q", links.WhatsApp, wantWA)
	}
	wantIG := "https://ig.me/m/mitienda?text=Hola%21+Mi+pedido"
	if links.Instagram != wantIG {
		t.Fatalf("instagram link mismatch:\ngot:  %q\nwant: %q", links.Instagram, wantIG)
	}
}

func TestBuildCheckoutLinksSingleChannel(t *testing.T) {
	config := &model.StoreConfig{WhatsAppNumber: "5491122334455"}

	links := BuildCheckoutLinks(config, "hola")

	if links.WhatsApp == "" {
		t.Fatal("expected whatsapp link")
	}
	if links.Instagram != "" {
		t.Fatalf("unexpected instagram link %q", links.Instagram)
	}
}

func TestBuildCheckoutLinksNoConfig(t *testing.T) {
	links := BuildCheckoutLinks(nil, "hola")
	if links.WhatsApp != "" || links.Instagram != "" {
		t.Fatalf("expected no links without store config, got %+v", links)
	}
}
