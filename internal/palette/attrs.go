package palette

import (
	"fmt"
	"strings"
)

// GraphicsHint selects edge smoothing for drawn shapes.
type GraphicsHint uint8

const (
	HintNone GraphicsHint = iota
	HintAntiAlias
	HintHighQuality
)

// ColorStyle describes how Color1 and Color2 combine.
type ColorStyle uint8

const (
	ColorSolid ColorStyle = iota
	ColorLinear
	ColorSigma
	ColorGlassNormal
	ColorGlassTracking
	ColorGlassPressed
	ColorDashed
	ColorRounded
)

// Align is the area a gradient or image is positioned relative to.
type Align uint8

const (
	AlignLocal Align = iota
	AlignControl
	AlignForm
)

// ImageStyle describes how an image fills its area.
type ImageStyle uint8

const (
	ImageStretch ImageStyle = iota
	ImageTile
	ImageTileFlipX
	ImageTileFlipY
	ImageCenterMiddle
	ImageTopLeft
)

// TextAlign positions text or an image along one axis.
type TextAlign uint8

const (
	AlignNear TextAlign = iota
	AlignCenter
	AlignFar
)

// Edges is a bit set of border sides.
type Edges uint8

const (
	EdgeTop Edges = 1 << iota
	EdgeBottom
	EdgeLeft
	EdgeRight

	EdgeNone Edges = 0
	EdgeAll        = EdgeTop | EdgeBottom | EdgeLeft | EdgeRight
)

// Has reports whether every side in e2 is present in e.
func (e Edges) Has(e2 Edges) bool { return e&e2 == e2 }

// Font names a typeface. Metrics are left to the renderer.
type Font struct {
	Family string  `json:"family,omitempty"`
	Size   float32 `json:"size,omitempty"`
	Bold   bool    `json:"bold,omitempty"`
	Italic bool    `json:"italic,omitempty"`
}

// Padding is the inner spacing around content, in cells or pixels.
type Padding struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// Pad returns a uniform Padding.
func Pad(n int) Padding { return Padding{Top: n, Right: n, Bottom: n, Left: n} }

var (
	hintNames       = []string{"none", "anti-alias", "high-quality"}
	colorStyleNames = []string{"solid", "linear", "sigma", "glass-normal", "glass-tracking", "glass-pressed", "dashed", "rounded"}
	alignNames      = []string{"local", "control", "form"}
	imageStyleNames = []string{"stretch", "tile", "tile-flip-x", "tile-flip-y", "center-middle", "top-left"}
	textAlignNames  = []string{"near", "center", "far"}
)

func enumName(names []string, v uint8) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%d", v)
}

func parseEnum(kind string, names []string, text []byte) (uint8, error) {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range names {
		if n == s {
			return uint8(i), nil
		}
	}
	return 0, fmt.Errorf("palette: invalid %s %q", kind, text)
}

func (h GraphicsHint) String() string { return enumName(hintNames, uint8(h)) }
func (s ColorStyle) String() string   { return enumName(colorStyleNames, uint8(s)) }
func (a Align) String() string        { return enumName(alignNames, uint8(a)) }
func (s ImageStyle) String() string   { return enumName(imageStyleNames, uint8(s)) }
func (a TextAlign) String() string    { return enumName(textAlignNames, uint8(a)) }

func (h GraphicsHint) MarshalText() ([]byte, error) { return []byte(h.String()), nil }
func (s ColorStyle) MarshalText() ([]byte, error)   { return []byte(s.String()), nil }
func (a Align) MarshalText() ([]byte, error)        { return []byte(a.String()), nil }
func (s ImageStyle) MarshalText() ([]byte, error)   { return []byte(s.String()), nil }
func (a TextAlign) MarshalText() ([]byte, error)    { return []byte(a.String()), nil }

func (h *GraphicsHint) UnmarshalText(text []byte) error {
	v, err := parseEnum("graphics hint", hintNames, text)
	*h = GraphicsHint(v)
	return err
}

func (s *ColorStyle) UnmarshalText(text []byte) error {
	v, err := parseEnum("color style", colorStyleNames, text)
	*s = ColorStyle(v)
	return err
}

func (a *Align) UnmarshalText(text []byte) error {
	v, err := parseEnum("alignment", alignNames, text)
	*a = Align(v)
	return err
}

func (s *ImageStyle) UnmarshalText(text []byte) error {
	v, err := parseEnum("image style", imageStyleNames, text)
	*s = ImageStyle(v)
	return err
}

func (a *TextAlign) UnmarshalText(text []byte) error {
	v, err := parseEnum("text alignment", textAlignNames, text)
	*a = TextAlign(v)
	return err
}

// Ptr returns a pointer to v, for filling optional spec fields.
func Ptr[T any](v T) *T { return &v }
