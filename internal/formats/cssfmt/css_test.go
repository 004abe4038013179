package cssfmt

import (
	"strings"
	"testing"

	"github.com/vovakirdan/namedcolors/internal/colors"
	"github.com/vovakirdan/namedcolors/internal/registry"
)

func TestPropertyName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Red", "--color-red"},
		{"LightSeaGreen", "--color-light-sea-green"},
		{"RebeccaPurple", "--color-rebecca-purple"},
	}

	for _, tc := range tests {
		if got := PropertyName(tc.name); got != tc.expected {
			t.Errorf("PropertyName(%q) = %q, expected %q", tc.name, got, tc.expected)
		}
	}
}

func TestFormat(t *testing.T) {
	aqua, _ := colors.Lookup("Aqua")
	tan, _ := colors.Lookup("Tan")

	var b strings.Builder
	if err := New().Format(&b, []colors.Color{aqua, tan}, registry.Options{ShowAliases: true}); err != nil {
		t.Fatalf("Format error: %v", err)
	}

	expected := ":root {\n" +
		"  --color-aqua: #00FFFF;\n" +
		"  --color-cyan: var(--color-aqua);\n" +
		"  --color-tan: #D2B48C;\n" +
		"}\n"
	if b.String() != expected {
		t.Errorf("Format() =\n%s\nexpected\n%s", b.String(), expected)
	}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists("css") {
		t.Error("css formatter not registered")
	}
}
