package main

import "testing"

func TestCapitalize(t *testing.T) {
	for _, tt := range []struct {
		s, want string
	}{
		{"", ""},
		{"ferris", "Ferris"},
		{"Ferris", "Ferris"},
		{"éclair", "Éclair"},
		{"42", "42"},
	} {
		if got := capitalize(tt.s); got != tt.want {
			t.Errorf("capitalize(%q): got %q; want %q", tt.s, got, tt.want)
		}
	}
}

func TestPad(t *testing.T) {
	for _, tt := range []struct {
		s     string
		width int
		fill  rune
		want  string
	}{
		{"42", 10, '0', "0000000042"},
		{"42", 5, ' ', "   42"},
		{"42", 4, '🦀', "🦀🦀42"},
		{"42", 2, 'X', "42"},
		{"12345", 3, 'X', "12345"},
		{"ü", 3, '-', "--ü"},
	} {
		if got := pad(tt.s, tt.width, tt.fill); got != tt.want {
			t.Errorf("pad(%q, %d, %q): got %q; want %q", tt.s, tt.width, tt.fill, got, tt.want)
		}
	}
}
