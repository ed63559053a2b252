package fastpane

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

type ColorMode uint8

const (
	ColorDefault ColorMode = iota
	ColorANSI              // 16 base colours, index 0-15
	ColorPalette           // 256 colour palette
	ColorRGB               // 24-bit
)

// Color is a terminal colour value. The zero value is the terminal default.
type Color struct {
	mode    ColorMode
	index   uint8
	r, g, b uint8
}

var (
	DefaultColor = Color{}

	Black         = ANSIColor(0)
	Red           = ANSIColor(1)
	Green         = ANSIColor(2)
	Yellow        = ANSIColor(3)
	Blue          = ANSIColor(4)
	Magenta       = ANSIColor(5)
	Cyan          = ANSIColor(6)
	White         = ANSIColor(7)
	BrightBlack   = ANSIColor(8)
	BrightRed     = ANSIColor(9)
	BrightGreen   = ANSIColor(10)
	BrightYellow  = ANSIColor(11)
	BrightBlue    = ANSIColor(12)
	BrightMagenta = ANSIColor(13)
	BrightCyan    = ANSIColor(14)
	BrightWhite   = ANSIColor(15)
)

var colorNames = map[string]Color{
	"default":       DefaultColor,
	"black":         Black,
	"red":           Red,
	"green":         Green,
	"yellow":        Yellow,
	"blue":          Blue,
	"magenta":       Magenta,
	"cyan":          Cyan,
	"white":         White,
	"brightblack":   BrightBlack,
	"gray":          BrightBlack,
	"grey":          BrightBlack,
	"brightred":     BrightRed,
	"brightgreen":   BrightGreen,
	"brightyellow":  BrightYellow,
	"brightblue":    BrightBlue,
	"brightmagenta": BrightMagenta,
	"brightcyan":    BrightCyan,
	"brightwhite":   BrightWhite,
}

// ANSIColor returns one of the 16 base colours. Indexes above 15 wrap.
func ANSIColor(index uint8) Color {
	return Color{mode: ColorANSI, index: index % 16}
}

func PaletteColor(index uint8) Color {
	return Color{mode: ColorPalette, index: index}
}

func RGBColor(r, g, b uint8) Color {
	return Color{mode: ColorRGB, r: r, g: g, b: b}
}

// ParseColor accepts a colour name ("red", "brightblue", "default"),
// a palette index ("208") or a hex triplet ("#ff8800", "#f80").
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultColor, nil
	}
	if c, ok := colorNames[strings.ReplaceAll(s, "-", "")]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		hex, err := colorful.Hex(s)
		if err != nil {
			return DefaultColor, fmt.Errorf("parse color %q: %w", s, err)
		}
		r, g, b := hex.RGB255()
		return RGBColor(r, g, b), nil
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return DefaultColor, fmt.Errorf("parse color %q: unknown color", s)
	}
	return PaletteColor(uint8(n)), nil
}

func (c Color) Mode() ColorMode {
	return c.mode
}

func (c Color) IsDefault() bool {
	return c.mode == ColorDefault
}

// Index is the ANSI or palette index. It is zero for other modes.
func (c Color) Index() uint8 {
	return c.index
}

func (c Color) RGB() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// Hex formats an RGB colour as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

func (c Color) String() string {
	switch c.mode {
	case ColorANSI:
		return "ansi:" + strconv.Itoa(int(c.index))
	case ColorPalette:
		return "palette:" + strconv.Itoa(int(c.index))
	case ColorRGB:
		return c.Hex()
	default:
		return "default"
	}
}

type StyleKind uint8

const (
	Foreground StyleKind = iota
	Background
)

// StyleProperty is a single attribute applied before text is written.
type StyleProperty struct {
	Kind  StyleKind
	Color Color
}

func Fg(c Color) StyleProperty {
	return StyleProperty{Kind: Foreground, Color: c}
}

func Bg(c Color) StyleProperty {
	return StyleProperty{Kind: Background, Color: c}
}

// StyledText is text plus the style properties applied to it, in order.
// A later property of the same kind overrides an earlier one.
type StyledText struct {
	Text  string
	Style []StyleProperty
}

func NewStyledText(text string, style ...StyleProperty) StyledText {
	return StyledText{Text: text, Style: style}
}

// With returns a copy of t with p appended to its style list.
func (t StyledText) With(p StyleProperty) StyledText {
	style := make([]StyleProperty, len(t.Style), len(t.Style)+1)
	copy(style, t.Style)
	t.Style = append(style, p)
	return t
}

func (t StyledText) Foreground(c Color) StyledText {
	return t.With(Fg(c))
}

func (t StyledText) Background(c Color) StyledText {
	return t.With(Bg(c))
}
