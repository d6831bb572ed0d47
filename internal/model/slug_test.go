package model

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Remera Azul", "remera-azul"},
		{"  Café con Leche  ", "cafe-con-leche"},
		{"Ñandú & Cía.", "nandu-cia"},
		{"---", ""},
		{"Promo 2x1!", "promo-2x1"},
		{"UPPER case", "upper-case"},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Fatalf("Slugify(%q): got %q, want %q", c.in, got, c.want)
		}
	}
}
