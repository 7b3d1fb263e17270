package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is an 8-bit straight-alpha color. The zero value is the empty color.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 0xff} }

// IsEmpty reports whether c paints nothing.
func (c Color) IsEmpty() bool { return c.A == 0 }

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Hex formats c as #RRGGBB, or #RRGGBBAA when translucent. Empty is "".
func (c Color) Hex() string {
	switch c.A {
	case 0:
		return ""
	case 0xff:
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func (c Color) String() string {
	if c.IsEmpty() {
		return "none"
	}
	return c.Hex()
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(cf colorful.Color, alpha uint8) Color {
	r, g, b := cf.Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: alpha}
}

// Blend mixes c toward to in Lab space. t is clamped to [0,1].
// Blending with an empty color returns the other side unchanged.
func (c Color) Blend(to Color, t float64) Color {
	switch {
	case c.IsEmpty():
		return to
	case to.IsEmpty():
		return c
	}
	t = min(max(t, 0), 1)
	alpha := float64(c.A) + (float64(to.A)-float64(c.A))*t
	return fromColorful(c.colorful().BlendLab(to.colorful(), t), uint8(alpha+0.5))
}

// Gray drops chroma while keeping perceived lightness.
func (c Color) Gray() Color {
	if c.IsEmpty() {
		return c
	}
	l, _, _ := c.colorful().Lab()
	return fromColorful(colorful.Lab(l, 0, 0), c.A)
}

// ParseColor accepts #RGB, #RRGGBB, #RRGGBBAA, CSS color names and
// "none"/"transparent" (the empty color).
func ParseColor(raw string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "", "none", "transparent":
		return Color{}, nil
	}

	if strings.HasPrefix(s, "#") {
		alpha := uint8(0xff)
		if len(s) == 9 {
			a, err := strconv.ParseUint(s[7:], 16, 8)
			if err != nil {
				return Color{}, fmt.Errorf("palette: invalid alpha in %q: %w", raw, err)
			}
			alpha = uint8(a)
			s = s[:7]
		}
		cf, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("palette: invalid color %q: %w", raw, err)
		}
		return fromColorful(cf, alpha), nil
	}

	named, ok := colornames.Map[s]
	if !ok {
		return Color{}, fmt.Errorf("palette: unknown color name %q", raw)
	}
	return Color{R: named.R, G: named.G, B: named.B, A: named.A}, nil
}

// MustColor is ParseColor for literals known to be valid.
func MustColor(raw string) Color {
	c, err := ParseColor(raw)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
