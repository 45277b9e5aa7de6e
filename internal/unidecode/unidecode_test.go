package unidecode

import "testing"

func TestTransliterateTable(t *testing.T) {
	tests := []struct {
		in   rune
		want string
	}{
		{'a', "a"},
		{'æ', "ae"},
		{'ß', "ss"},
		{'€', "EUR"},
		{'’', "'"},
	}
	for _, tt := range tests {
		if got := Transliterate(tt.in); got != tt.want {
			t.Errorf("Transliterate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTransliterateDiacriticFallback(t *testing.T) {
	// 'é' has no direct table entry; it should fall back to stripping
	// the combining acute accent rather than returning "?".
	if got := Transliterate('é'); got != "e" {
		t.Errorf("Transliterate('é') = %q, want %q", got, "e")
	}
}

func TestTransliterateUnknown(t *testing.T) {
	if got := Transliterate('\U0001F600'); got != "?" {
		t.Errorf("Transliterate(emoji) = %q, want %q", got, "?")
	}
}

func TestString(t *testing.T) {
	if got := String("café"); got != "cafe" {
		t.Errorf("String(%q) = %q, want %q", "café", got, "cafe")
	}
}

func TestIsKnown(t *testing.T) {
	if !IsKnown('a') {
		t.Error("IsKnown('a') = false, want true")
	}
	if !IsKnown('€') {
		t.Error("IsKnown('€') = false, want true")
	}
	if IsKnown('é') {
		t.Error("IsKnown('é') = true, want false (handled via fallback, not a table entry)")
	}
}
