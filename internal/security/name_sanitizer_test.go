package security

import (
	"strings"
	"testing"
)

// TestSanitize_RemovesHTML は氏名に紛れ込んだHTMLが全て除去されることを検証する。
func TestSanitize_RemovesHTML(t *testing.T) {
	sanitizer := NewNameSanitizer()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "平文はそのまま通過する",
			input: "Ana",
			want:  "Ana",
		},
		{
			name:  "アクセント付き文字は保持される",
			input: "Pérez Núñez",
			want:  "Pérez Núñez",
		},
		{
			name:  "scriptタグが除去される",
			input: "<script>alert('xss')</script>Ana",
			want:  "Ana",
		},
		{
			name:  "imgタグのonerrorが除去される",
			input: `<img src=x onerror=alert(1)>Luis`,
			want:  "Luis",
		},
		{
			name:  "bタグなどの整形タグも除去される",
			input: "<b>Ana</b>",
			want:  "Ana",
		},
		{
			name:  "前後の空白が削られる",
			input: "  Ana  ",
			want:  "Ana",
		},
		{
			name:  "空文字列は空文字列のまま",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizer.Sanitize(tt.input)
			if got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestSanitize_Idempotent は同一入力に対して常に同一出力となることを検証する。
func TestSanitize_Idempotent(t *testing.T) {
	sanitizer := NewNameSanitizer()

	input := "<div>Ana</div> Pérez"
	first := sanitizer.Sanitize(input)
	second := sanitizer.Sanitize(first)

	if first != second {
		t.Errorf("Sanitize is not idempotent: first = %q, second = %q", first, second)
	}
	if strings.Contains(first, "<") {
		t.Errorf("sanitized output still contains markup: %q", first)
	}
}
