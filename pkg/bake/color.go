package bake

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is an RGB color with float channels in [0, 1].
type Color [3]float64

// RGB builds a color from three channels.
func RGB(r, g, b float64) Color {
	return Color{r, g, b}
}

// Valid reports whether every channel lies in [0, 1].
func (c Color) Valid() bool {
	for _, v := range c {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return false
		}
	}
	return true
}

// String formats the channels separated by spaces.
func (c Color) String() string {
	return formatFloat(c[0]) + " " + formatFloat(c[1]) + " " + formatFloat(c[2])
}

// ParseColor reads three channels separated by commas or whitespace.
func ParseColor(s string) (Color, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("%w: color needs 3 channels, got %q", ErrInvalidValue, s)
	}
	var c Color
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return Color{}, fmt.Errorf("%w: channel %q", ErrInvalidValue, p)
		}
		c[i] = v
	}
	return c, nil
}
