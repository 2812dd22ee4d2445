package identity

import (
	"fmt"
	"math"
	"unicode/utf16"
)

// ColorIndex maps an identity string (display name or email) to a
// stable non-negative palette index. The hash walks the UTF-16 code
// units back to front, folding each unit in with a position-dependent
// shift:
//
//	hash ^= (cu << (i % 8)) + (cu >> (8 - i%8))
//
// The construction is load-bearing: changing it reassigns every
// contact's avatar color, so it must stay byte-for-byte reproducible
// across runs and platforms. The empty string hashes to 0.
func ColorIndex(identity string) int {
	units := utf16.Encode([]rune(identity))
	hash := 0
	for i := len(units) - 1; i >= 0; i-- {
		cu := int(units[i])
		shift := i % 8
		hash ^= (cu << shift) + (cu >> (8 - shift))
	}
	return hash
}

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Hex returns the color as a #rrggbb string for terminal styling.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Min(math.Max(v, 0), 1) * 255))
}

// Palette is an ordered, fixed set of avatar background colors. It is
// an explicit value: callers hold one and pass indices in. There is no
// process-wide palette state.
type Palette []Color

// BackgroundColor reduces index modulo the palette size, wrapping
// negative values, and returns the entry. It is defined for every int.
func (p Palette) BackgroundColor(index int) Color {
	if len(p) == 0 {
		return Color{}
	}
	i := index % len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

// DefaultPalette returns the standard 14-entry avatar palette. The
// order is fixed; cached or persisted indices depend on it.
func DefaultPalette() Palette {
	return Palette{
		{R: 0.60, G: 0.71, B: 0.20, A: 1.0}, // light green
		{R: 0.00, G: 0.64, B: 0.00, A: 1.0}, // green
		{R: 0.12, G: 0.44, B: 0.27, A: 1.0}, // dark green
		{R: 1.00, G: 0.00, B: 0.59, A: 1.0}, // magenta
		{R: 0.62, G: 0.00, B: 0.65, A: 1.0}, // light purple
		{R: 0.49, G: 0.22, B: 0.47, A: 1.0}, // purple
		{R: 0.38, G: 0.24, B: 0.73, A: 1.0}, // dark purple
		{R: 0.00, G: 0.67, B: 0.66, A: 1.0}, // teal
		{R: 0.18, G: 0.54, B: 0.94, A: 1.0}, // light blue
		{R: 1.00, G: 0.77, B: 0.05, A: 1.0}, // yellow
		{R: 0.17, G: 0.34, B: 0.59, A: 1.0}, // dark blue
		{R: 0.85, G: 0.32, B: 0.17, A: 1.0}, // orange
		{R: 0.93, G: 0.07, B: 0.07, A: 1.0}, // red
		{R: 0.73, G: 0.11, B: 0.28, A: 1.0}, // dark red
	}
}
