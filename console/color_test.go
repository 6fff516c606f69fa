package console

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{"empty is default", "", Default, false},
		{"base color", "RED", RED, false},
		{"bold color", "BCYA", BCYA, false},
		{"lowercase accepted", "gre", GRE, false},
		{"mixed case accepted", "bYel", BYEL, false},
		{"unknown fails", "PURPLE", Default, true},
		{"near miss fails", "REDD", Default, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Fatalf("ParseColor(%q) error = %v, want ErrInvalidColor", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestColors_PaletteComplete(t *testing.T) {
	colors := Colors()
	if len(colors) != 12 {
		t.Fatalf("Colors() returned %d entries, want 12", len(colors))
	}

	// Six base colors, then their bold variants in the same order.
	for i := 0; i < 6; i++ {
		if got, want := colors[i+6], Color("B"+string(colors[i])); got != want {
			t.Errorf("Colors()[%d] = %q, want bold variant %q", i+6, got, want)
		}
	}

	for _, c := range colors {
		if !c.Valid() {
			t.Errorf("Colors() entry %q is not valid", c)
		}
	}
}

func TestOutColor_AppliesANSIStyling(t *testing.T) {
	originalNoColor := color.NoColor
	color.NoColor = false
	defer func() {
		color.NoColor = originalNoColor
	}()

	c, err := New(filepath.Join(t.TempDir(), "log"), true)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	var buf bytes.Buffer
	c.SetOutput(&buf)

	if err := c.OutColor(RED, "alert"); err != nil {
		t.Fatalf("OutColor failed: %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("Output = %q, want ANSI escape codes", got)
	}
	if !strings.Contains(got, "31") {
		t.Errorf("Output = %q, want the red foreground code", got)
	}
	if !strings.Contains(got, "alert") {
		t.Errorf("Output = %q, want the message text", got)
	}

	// The file record must stay free of escape codes.
	lines := readLog(t, c)
	if strings.Contains(lines, "\x1b[") {
		t.Errorf("Log file = %q, want no ANSI escape codes", lines)
	}
	if lines != "alert\n" {
		t.Errorf("Log file = %q, want %q", lines, "alert\n")
	}
}

func TestColorValid(t *testing.T) {
	if !Default.Valid() {
		t.Errorf("Default should be valid")
	}
	if !BMAG.Valid() {
		t.Errorf("BMAG should be valid")
	}
	if Color("MAUVE").Valid() {
		t.Errorf("MAUVE should not be valid")
	}
}
