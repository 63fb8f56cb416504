package capz

import "fmt"

// Color is a packed 0xRRGGBB display color. The zero value means
// "unspecified" and lets the sink pick its own color.
type Color uint32

// ColorUnspecified leaves color selection to the sink.
const ColorUnspecified Color = 0

// A small set of named colors. 0x000000 is reserved for "unspecified",
// so black is 0x000001.
const (
	ColorBlack   Color = 0x000001
	ColorWhite   Color = 0xFFFFFF
	ColorRed     Color = 0xFF0000
	ColorGreen   Color = 0x00FF00
	ColorBlue    Color = 0x0000FF
	ColorYellow  Color = 0xFFFF00
	ColorCyan    Color = 0x00FFFF
	ColorMagenta Color = 0xFF00FF
	ColorOrange  Color = 0xFFA500
	ColorGray    Color = 0x808080
)

// RGB packs the given channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// String renders the color as #RRGGBB, or "unspecified" for the zero
// value.
func (c Color) String() string {
	if c == ColorUnspecified {
		return "unspecified"
	}
	return fmt.Sprintf("#%06X", uint32(c))
}
