package id3v2

import "testing"

func TestGenreToText(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{"(17)", "Rock"},
		{"17", "Rock"},
		{"(0)", "Blues"},
		{"(147)", "Synthpop"},
		{"(RX)", "Remix"},
		{"(CR)", "Cover"},
		{"(255)", "(255)"},
		{"Rock", "Rock"},
		{"Witch House", "Witch House"},
		{"", ""},
	}

	for _, test := range tests {
		if got := genreToText(test.in); got != test.out {
			t.Errorf("genreToText(%q) = %q, want %q", test.in, got, test.out)
		}
	}
}

func TestGenreFromText(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{"Rock", "(17)"},
		{"rock", "(17)"},
		{"Blues", "(0)"},
		{"Synthpop", "(147)"},
		{"Remix", "(RX)"},
		{"Cover", "(CR)"},
		{"Witch House", "Witch House"},
		{"", ""},
	}

	for _, test := range tests {
		if got := genreFromText(test.in); got != test.out {
			t.Errorf("genreFromText(%q) = %q, want %q", test.in, got, test.out)
		}
	}
}

func TestGenreTableRoundtrip(t *testing.T) {
	for _, name := range genreNames {
		if got := genreToText(genreFromText(name)); got != name {
			t.Errorf("%q roundtripped to %q", name, got)
		}
	}
}
