package console

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Color names one of the console's terminal colors. The zero value renders
// with the terminal's default foreground.
type Color string

const (
	// Default renders with the terminal's default foreground color.
	Default Color = ""

	// GRE renders green text.
	GRE Color = "GRE"
	// RED renders red text.
	RED Color = "RED"
	// BLU renders blue text.
	BLU Color = "BLU"
	// YEL renders yellow text.
	YEL Color = "YEL"
	// MAG renders magenta text.
	MAG Color = "MAG"
	// CYA renders cyan text.
	CYA Color = "CYA"

	// BGRE renders bold green text.
	BGRE Color = "BGRE"
	// BRED renders bold red text.
	BRED Color = "BRED"
	// BBLU renders bold blue text.
	BBLU Color = "BBLU"
	// BYEL renders bold yellow text.
	BYEL Color = "BYEL"
	// BMAG renders bold magenta text.
	BMAG Color = "BMAG"
	// BCYA renders bold cyan text.
	BCYA Color = "BCYA"
)

// palette maps each color name to its styling. Lookups that miss this table
// fail closed with ErrInvalidColor rather than silently printing unstyled.
var palette = map[Color]*color.Color{
	GRE:  color.New(color.FgGreen),
	RED:  color.New(color.FgRed),
	BLU:  color.New(color.FgBlue),
	YEL:  color.New(color.FgYellow),
	MAG:  color.New(color.FgMagenta),
	CYA:  color.New(color.FgCyan),
	BGRE: color.New(color.FgGreen, color.Bold),
	BRED: color.New(color.FgRed, color.Bold),
	BBLU: color.New(color.FgBlue, color.Bold),
	BYEL: color.New(color.FgYellow, color.Bold),
	BMAG: color.New(color.FgMagenta, color.Bold),
	BCYA: color.New(color.FgCyan, color.Bold),
}

// paletteOrder lists the colors in display order: the six base colors
// followed by their bold variants.
var paletteOrder = []Color{
	GRE, RED, BLU, YEL, MAG, CYA,
	BGRE, BRED, BBLU, BYEL, BMAG, BCYA,
}

// Colors returns the supported color names in display order.
func Colors() []Color {
	out := make([]Color, len(paletteOrder))
	copy(out, paletteOrder)
	return out
}

// ParseColor converts a user-supplied name into a Color. Matching is
// case-insensitive and the empty string parses to Default. Unknown names
// return ErrInvalidColor.
func ParseColor(name string) (Color, error) {
	if name == "" {
		return Default, nil
	}
	c := Color(strings.ToUpper(name))
	if _, ok := palette[c]; !ok {
		return Default, fmt.Errorf("%w: %q", ErrInvalidColor, name)
	}
	return c, nil
}

// Valid reports whether c is Default or a known palette entry.
func (c Color) Valid() bool {
	if c == Default {
		return true
	}
	_, ok := palette[c]
	return ok
}
