package render

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "script tags are stripped",
			input:    `<p>Xin chào</p><script>alert("xss")</script>`,
			contains: []string{"<p>Xin chào</p>"},
			excludes: []string{"<script", "alert"},
		},
		{
			name:     "event handlers are stripped",
			input:    `<p onclick="steal()">Nội dung</p>`,
			contains: []string{"<p>Nội dung</p>"},
			excludes: []string{"onclick"},
		},
		{
			name:     "javascript urls are stripped",
			input:    `<a href="javascript:alert(1)">link</a>`,
			excludes: []string{"javascript:"},
		},
		{
			name:     "headings and lists survive",
			input:    `<h2>Lợi ích</h2><ul><li>Ngủ ngon</li><li>Giảm stress</li></ul>`,
			contains: []string{"<h2>Lợi ích</h2>", "<li>Ngủ ngon</li>"},
		},
		{
			name:     "text-align style survives",
			input:    `<p style="text-align: center">Giữa</p>`,
			contains: []string{"text-align: center"},
		},
		{
			name:     "unknown style properties are dropped",
			input:    `<p style="position: fixed; color: red">Đỏ</p>`,
			contains: []string{"color: red"},
			excludes: []string{"position"},
		},
		{
			name:     "images keep src and alt",
			input:    `<img src="https://cdn.example.com/blog-images/a1b2-17000.jpg" alt="tư thế">`,
			contains: []string{`src="https://cdn.example.com/blog-images/a1b2-17000.jpg"`, `alt="tư thế"`},
		},
		{
			name:     "highlight mark survives",
			input:    `<p><mark>quan trọng</mark></p>`,
			contains: []string{"<mark>quan trọng</mark>"},
		},
		{
			name:  "empty input",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Sanitize(%q) = %q, missing %q", tt.input, got, want)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(got, bad) {
					t.Errorf("Sanitize(%q) = %q, should not contain %q", tt.input, got, bad)
				}
			}
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	input := `<h2 style="text-align: center">Tiêu đề</h2><p><strong>đậm</strong> và <em>nghiêng</em></p>`
	once := Sanitize(input)
	twice := Sanitize(once)
	if once != twice {
		t.Errorf("sanitizing twice changed output:\nonce:  %q\ntwice: %q", once, twice)
	}
}
