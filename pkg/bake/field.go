package bake

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Kind is the value type of a field.
type Kind int

// Field kinds.
const (
	KindBool Kind = iota
	KindInt
	KindFloat
	KindEnum
	KindColor
	KindString
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindEnum:
		return "enum"
	case KindColor:
		return "color"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Bounds is an inclusive numeric range. Either side may be open.
// Step and Precision only affect how editors present the value.
type Bounds struct {
	Min, Max       float64
	HasMin, HasMax bool
	Step           float64
	Precision      int
}

// Range returns closed bounds [min, max].
func Range(lo, hi float64) Bounds {
	return Bounds{Min: lo, Max: hi, HasMin: true, HasMax: true}
}

// AtLeast returns bounds with only a lower limit.
func AtLeast(lo float64) Bounds {
	return Bounds{Min: lo, HasMin: true}
}

// WithStep returns a copy with display step and precision set.
func (b Bounds) WithStep(step float64, precision int) Bounds {
	b.Step = step
	b.Precision = precision
	return b
}

// Contains reports whether v lies inside the bounds. NaN and infinities are
// never contained.
func (b Bounds) Contains(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	if b.HasMin && v < b.Min {
		return false
	}
	if b.HasMax && v > b.Max {
		return false
	}
	return true
}

// String formats the bounds as an interval.
func (b Bounds) String() string {
	lo, hi := "-inf", "+inf"
	if b.HasMin {
		lo = formatFloat(b.Min)
	}
	if b.HasMax {
		hi = formatFloat(b.Max)
	}
	return "[" + lo + ", " + hi + "]"
}

// Field describes one parameter and points at its storage inside a record.
type Field struct {
	Key    string
	Label  string
	Kind   Kind
	Bounds Bounds
	Tokens []string

	b *bool
	i *int
	f *float64
	s *string
	c *Color
}

func boolField(key, label string, p *bool) Field {
	return Field{Key: key, Label: label, Kind: KindBool, b: p}
}

func intField(key, label string, p *int, bounds Bounds) Field {
	return Field{Key: key, Label: label, Kind: KindInt, Bounds: bounds, i: p}
}

func floatField(key, label string, p *float64, bounds Bounds) Field {
	return Field{Key: key, Label: label, Kind: KindFloat, Bounds: bounds, f: p}
}

func enumField(key, label string, p *string, tokens []string) Field {
	return Field{Key: key, Label: label, Kind: KindEnum, Tokens: tokens, s: p}
}

func colorField(key, label string, p *Color) Field {
	return Field{Key: key, Label: label, Kind: KindColor, Bounds: Range(0, 1), c: p}
}

func stringField(key, label string, p *string) Field {
	return Field{Key: key, Label: label, Kind: KindString, s: p}
}

// Bool returns the value of a bool field.
func (f Field) Bool() bool { return f.b != nil && *f.b }

// Int returns the value of an int field.
func (f Field) Int() int {
	if f.i == nil {
		return 0
	}
	return *f.i
}

// Float returns the value of a float field.
func (f Field) Float() float64 {
	if f.f == nil {
		return 0
	}
	return *f.f
}

// Text returns the value of an enum or string field.
func (f Field) Text() string {
	if f.s == nil {
		return ""
	}
	return *f.s
}

// Color returns the value of a color field.
func (f Field) Color() Color {
	if f.c == nil {
		return Color{}
	}
	return *f.c
}

// String formats the current value the way it is written to xNormal.
// Colors are formatted as three space separated channels.
func (f Field) String() string {
	switch f.Kind {
	case KindBool:
		return FormatBool(f.Bool())
	case KindInt:
		return strconv.Itoa(f.Int())
	case KindFloat:
		return formatFloat(f.Float())
	case KindColor:
		return f.Color().String()
	default:
		return f.Text()
	}
}

// Valid reports whether the current value satisfies the field's bounds or
// token set.
func (f Field) Valid() bool {
	switch f.Kind {
	case KindInt:
		return f.Bounds.Contains(float64(f.Int()))
	case KindFloat:
		return f.Bounds.Contains(f.Float())
	case KindEnum:
		return slices.Contains(f.Tokens, f.Text())
	case KindColor:
		return f.Color().Valid()
	default:
		return true
	}
}

// Set parses text and stores it. Values outside the bounds or token set are
// rejected and the stored value is left unchanged.
func (f Field) Set(text string) error {
	text = strings.TrimSpace(text)
	switch f.Kind {
	case KindBool:
		v, err := strconv.ParseBool(text)
		if err != nil {
			return fmt.Errorf("%s: %w: %q", f.Key, ErrInvalidValue, text)
		}
		*f.b = v
	case KindInt:
		v, err := strconv.Atoi(text)
		if err != nil {
			return fmt.Errorf("%s: %w: %q", f.Key, ErrInvalidValue, text)
		}
		if !f.Bounds.Contains(float64(v)) {
			return fmt.Errorf("%s: %w: %d not in %s", f.Key, ErrOutOfRange, v, f.Bounds)
		}
		*f.i = v
	case KindFloat:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("%s: %w: %q", f.Key, ErrInvalidValue, text)
		}
		if !f.Bounds.Contains(v) {
			return fmt.Errorf("%s: %w: %s not in %s", f.Key, ErrOutOfRange, text, f.Bounds)
		}
		*f.f = v
	case KindEnum:
		if !slices.Contains(f.Tokens, text) {
			return fmt.Errorf("%s: %w: %q (want one of %s)", f.Key, ErrInvalidToken, text, strings.Join(f.Tokens, ", "))
		}
		*f.s = text
	case KindColor:
		c, err := ParseColor(text)
		if err != nil {
			return fmt.Errorf("%s: %w", f.Key, err)
		}
		if !c.Valid() {
			return fmt.Errorf("%s: %w: %s not in [0, 1]", f.Key, ErrOutOfRange, c)
		}
		*f.c = c
	case KindString:
		*f.s = text
	}
	return nil
}

// FormatBool returns the lower-case literal xNormal expects.
func FormatBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// lookup finds a field by key.
func lookup(fields []Field, key string) (Field, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// violations returns the keys of every invalid field.
func violations(fields []Field) []string {
	var bad []string
	for _, f := range fields {
		if !f.Valid() {
			bad = append(bad, f.Key)
		}
	}
	return bad
}
