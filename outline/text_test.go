package outline

import (
	"testing"

	"github.com/pdfweld/pdfweld/core"
)

// TestDecodeText tests both text string encodings
func TestDecodeText(t *testing.T) {
	tests := []struct {
		name string
		in   core.String
		want string
	}{
		{"ascii", core.String("Chapter 1"), "Chapter 1"},
		{"empty", core.String(""), ""},
		{
			"utf16be with bom",
			core.String([]byte{0xFE, 0xFF, 0x00, 'H', 0x00, 'i'}),
			"Hi",
		},
		{
			"latin1 high byte",
			core.String([]byte{'c', 'a', 'f', 0xE9}),
			"café",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeText(tt.in); got != tt.want {
				t.Errorf("DecodeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestTextOf tests extraction from strings and names
func TestTextOf(t *testing.T) {
	if s, ok := textOf(core.String("x")); !ok || s != "x" {
		t.Errorf("String: got %q, %v", s, ok)
	}
	if s, ok := textOf(core.Name("intro")); !ok || s != "intro" {
		t.Errorf("Name: got %q, %v", s, ok)
	}
	if _, ok := textOf(core.Int(3)); ok {
		t.Error("Int should not decode as text")
	}
}
