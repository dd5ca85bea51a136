package pagination

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		size     int
		wantPage int
		wantSize int
	}{
		{"defaults pass through", 1, 10, 1, 10},
		{"zero page clamps", 0, 10, 1, 10},
		{"negative page clamps", -5, 10, 1, 10},
		{"zero size clamps", 3, 0, 3, 10},
		{"oversized clamps to max", 1, 500, 1, 100},
		{"max size allowed", 2, 100, 2, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Normalize(tt.page, tt.size)
			if q.Page != tt.wantPage || q.Size != tt.wantSize {
				t.Fatalf("Normalize(%d, %d) = {%d %d}, want {%d %d}",
					tt.page, tt.size, q.Page, q.Size, tt.wantPage, tt.wantSize)
			}
		})
	}
}

func TestParseIntOr(t *testing.T) {
	if got := parseIntOr("42", 1); got != 42 {
		t.Fatalf("parseIntOr(42) = %d", got)
	}
	if got := parseIntOr("abc", 7); got != 7 {
		t.Fatalf("parseIntOr(abc) = %d, want fallback", got)
	}
	if got := parseIntOr("", 3); got != 3 {
		t.Fatalf("parseIntOr(empty) = %d, want fallback", got)
	}
}
