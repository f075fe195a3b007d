package slug

import "testing"

func TestSlugify(t *testing.T) {
	testCases := []struct {
		name  string
		title string
		want  string
	}{
		{"Empty", "", ""},
		{"Simple", "Hello World", "hello-world"},
		{"Vietnamese diacritics", "Yoga Cho Người Mới!", "yoga-cho-nguoi-moi"},
		{"D with stroke and hyphen runs", "  Đẹp   --  Trai  ", "dep-trai"},
		{"Upper D with stroke", "ĐÀ NẴNG", "da-nang"},
		{"Punctuation stripped", "Thiền & Hơi Thở (phần 2)", "thien-hoi-tho-phan-2"},
		{"Digits kept", "5 tư thế cơ bản", "5-tu-the-co-ban"},
		{"Only punctuation", "!?!", ""},
		{"Leading and trailing hyphens", "---yoga---", "yoga"},
		{"Tabs and newlines", "yoga\tcho\nnguoi moi", "yoga-cho-nguoi-moi"},
		{"Non-breaking space", "yoga\u00a0moi", "yoga-moi"},
		{"Already a slug", "yoga-cho-nguoi-moi", "yoga-cho-nguoi-moi"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Slugify(tc.title); got != tc.want {
				t.Errorf("Slugify(%q) = %q, want %q", tc.title, got, tc.want)
			}
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Yoga Cho Người Mới!",
		"  Đẹp   --  Trai  ",
		"Hello World",
		"already-a-slug",
		"Ẩm thực & Yoga: ăn gì trước khi tập?",
	}

	for _, in := range inputs {
		once := Slugify(in)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
