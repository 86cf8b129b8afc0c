package ui

import (
	"reflect"
	"testing"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "Have fun!", 20, []string{"Have fun!"}},
		{"breaks at spaces", "Go visit the different buildings", 12, []string{"Go visit the", "different", "buildings"}},
		{"collapses runs of spaces", "a   b", 10, []string{"a b"}},
		{"long word split", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"long word after text", "hi abcdefgh", 4, []string{"hi", "abcd", "efgh"}},
		{"newline", "one\ntwo", 10, []string{"one", "two"}},
		{"empty", "", 10, []string{""}},
		{"no width", "text", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WrapText(tt.text, tt.width); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WrapText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrapTextKeepsEveryWord(t *testing.T) {
	msg := "The animals that have traits that make them more likely to survive pass those traits to the next generation."
	for _, width := range []int{20, 40, 80} {
		lines := WrapText(msg, width)
		total := 0
		for _, line := range lines {
			if len(line) > width {
				t.Errorf("width %d: line %q too long", width, line)
			}
			total += len(line)
		}
		if want := len(msg) - (len(lines) - 1); total != want {
			t.Errorf("width %d: %d characters across %d lines, want %d", width, total, len(lines), want)
		}
	}
}
