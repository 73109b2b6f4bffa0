package render

import "github.com/gdamore/tcell/v2"

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Scale multiplies each channel by factor (for dimmed markers)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGB{}
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// Palette colors
var (
	RgbBoard   = RGB{180, 180, 180} // Empty cells
	RgbBlack   = RGB{140, 190, 255} // Black pieces
	RgbWhite   = RGB{255, 255, 255} // White pieces
	RgbHint    = RGB{0, 200, 0}     // Legal-move markers, dimmed
	RgbHelp    = RGB{120, 120, 120}
	RgbMessage = RGB{255, 80, 80}
	RgbWinner  = RGB{255, 255, 0}
)
