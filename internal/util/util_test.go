package util

import "testing"

func TestContentHash(t *testing.T) {
	testCases := []struct {
		name string
		a    []byte
		b    []byte
		same bool
	}{
		{"Identical content", []byte("hello"), []byte("hello"), true},
		{"Different content", []byte("hello"), []byte("world"), false},
		{"Empty vs non-empty", []byte(""), []byte("x"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ha, hb := ContentHash(tc.a), ContentHash(tc.b)
			if (ha == hb) != tc.same {
				t.Errorf("ContentHash equality = %v, want %v", ha == hb, tc.same)
			}
			if len(ha) != 64 {
				t.Errorf("Expected 64 hex chars, got %d", len(ha))
			}
		})
	}

	if ContentHashString("hello") != ContentHash([]byte("hello")) {
		t.Error("ContentHashString should match ContentHash on the same bytes")
	}
}

func TestTruncate(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"Shorter than limit", "yoga", 10, "yoga"},
		{"Exactly at limit", "yoga", 4, "yoga"},
		{"Cut with ellipsis", "yoga cho nguoi moi", 8, "yoga cho…"},
		{"Multibyte runes", "Đẹp Trai", 3, "Đẹp…"},
		{"Empty", "", 5, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Truncate(tc.in, tc.n); got != tc.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tc.in, tc.n, got, tc.want)
			}
		})
	}
}
