package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Add brightens or darkens each channel, saturating at 0 and 255.
func (c RGB) Add(dr, dg, db int) RGB {
	return RGB{R: addU8(c.R, dr), G: addU8(c.G, dg), B: addU8(c.B, db)}
}

func addU8(v uint8, d int) uint8 {
	n := int(v) + d
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

var Palette = struct {
	Black      RGB
	White      RGB
	Red        RGB
	Green      RGB
	Blue       RGB
	Yellow     RGB
	Cyan       RGB
	Silver     RGB
	Orange     RGB
	Purple     RGB
	Gray       RGB
	DarkGray   RGB
	LightGray  RGB
	Brown      RGB
	DarkGreen  RGB
	Road       RGB
	RoadLine   RGB
	Grass      RGB
	Sand       RGB
	Water      RGB
	Guardrail  RGB
	Shadow     RGB
	BannerBack RGB
}{
	Black:      RGB{R: 0, G: 0, B: 0},
	White:      RGB{R: 255, G: 255, B: 255},
	Red:        RGB{R: 255, G: 0, B: 0},
	Green:      RGB{R: 0, G: 255, B: 0},
	Blue:       RGB{R: 0, G: 0, B: 255},
	Yellow:     RGB{R: 255, G: 255, B: 0},
	Cyan:       RGB{R: 0, G: 255, B: 255},
	Silver:     RGB{R: 192, G: 192, B: 192},
	Orange:     RGB{R: 255, G: 165, B: 0},
	Purple:     RGB{R: 128, G: 0, B: 128},
	Gray:       RGB{R: 128, G: 128, B: 128},
	DarkGray:   RGB{R: 64, G: 64, B: 64},
	LightGray:  RGB{R: 200, G: 200, B: 200},
	Brown:      RGB{R: 139, G: 69, B: 19},
	DarkGreen:  RGB{R: 0, G: 100, B: 0},
	Road:       RGB{R: 80, G: 80, B: 80},
	RoadLine:   RGB{R: 255, G: 255, B: 0},
	Grass:      RGB{R: 34, G: 139, B: 34},
	Sand:       RGB{R: 200, G: 180, B: 100},
	Water:      RGB{R: 0, G: 100, B: 200},
	Guardrail:  RGB{R: 150, G: 150, B: 150},
	Shadow:     RGB{R: 50, G: 50, B: 50},
	BannerBack: RGB{R: 20, G: 20, B: 20},
}

// CarColors is the pool rival cars pick their paint from.
var CarColors = []RGB{
	{R: 255, G: 0, B: 0}, {R: 0, G: 0, B: 255}, {R: 255, G: 255, B: 0}, {R: 255, G: 0, B: 255},
	{R: 0, G: 255, B: 255}, {R: 255, G: 128, B: 0}, {R: 128, G: 255, B: 0}, {R: 255, G: 255, B: 255},
	{R: 128, G: 0, B: 128}, {R: 0, G: 128, B: 255},
}

// crashColors are mixed with both cars' paint when a bump explodes.
var crashColors = []RGB{
	Palette.Red, Palette.Orange, Palette.Yellow, Palette.White, Palette.Silver,
}
