package middleware

import "testing"

func TestSubdomainFromHost(t *testing.T) {
	cases := []struct {
		host string
		want string
		ok   bool
	}{
		{"mitienda.catalogico.shop", "mitienda", true},
		{"MiTienda.Catalogico.Shop", "mitienda", true},
		{"mitienda.catalogico.shop:8080", "mitienda", true},
		{"catalogico.shop", "", false},
		{"www.catalogico.shop", "", false},
		{"www.mitienda.catalogico.shop", "", false},
		{"otherdomain.com", "", false},
		{"evilcatalogico.shop", "", false},
		{".catalogico.shop", "", false},
	}

	for _, c := range cases {
		got, ok := SubdomainFromHost(c.host, "catalogico.shop")
		if got != c.want || ok != c.ok {
			t.Fatalf("SubdomainFromHost(%q): got (%q, %v), want (%q, %v)", c.host, got, ok, c.want, c.ok)
		}
	}
}
