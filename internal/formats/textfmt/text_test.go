package textfmt

import (
	"strings"
	"testing"

	"github.com/vovakirdan/namedcolors/internal/colors"
	"github.com/vovakirdan/namedcolors/internal/registry"
)

func TestFormat(t *testing.T) {
	red, _ := colors.Lookup("Red")
	aqua, _ := colors.Lookup("Aqua")

	var b strings.Builder
	opts := registry.Options{ShowAliases: true}
	if err := New().Format(&b, []colors.Color{red, aqua}, opts); err != nil {
		t.Fatalf("Format error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), b.String())
	}
	if !strings.HasPrefix(lines[0], "Red   #FF0000  rgb(255, 0, 0)") {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	if !strings.Contains(lines[0], "hsl(0, 100%, 50%)") || !strings.HasSuffix(lines[0], "CSS 1") {
		t.Errorf("missing HSL or level in %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "(Cyan)") {
		t.Errorf("expected alias on Aqua line: %q", lines[1])
	}
}

func TestFormatSwatchWidth(t *testing.T) {
	coral, _ := colors.Lookup("Coral")

	var plain, swatched strings.Builder
	if err := New().Format(&plain, []colors.Color{coral}, registry.Options{}); err != nil {
		t.Fatal(err)
	}
	if err := New().Format(&swatched, []colors.Color{coral}, registry.Options{Color: true, SwatchWidth: 3}); err != nil {
		t.Fatal(err)
	}
	// A non-terminal writer gets the swatch cells without escape codes.
	if swatched.String() != "     "+plain.String() {
		t.Errorf("swatched = %q, plain = %q", swatched.String(), plain.String())
	}
}

func TestCSSStrings(t *testing.T) {
	c := colors.MustNew("Test Color", "Test", "#ff0b21")
	if got := RGBString(c); got != "rgb(255, 11, 33)" {
		t.Errorf("RGBString() = %q", got)
	}
	if got := HSLString(c); got != "hsl(355, 100%, 52%)" {
		t.Errorf("HSLString() = %q", got)
	}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists("text") {
		t.Error("text formatter not registered")
	}
}
