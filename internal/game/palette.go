package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Floats returns the colour as normalised components.
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

var Palette = struct {
	Head          RGB
	HeadShine     RGB
	Eye           RGB
	Pupil         RGB
	Tongue        RGB
	Body          RGB
	BodyBand      RGB
	BodySpeckle   RGB
	BodyHighlight RGB
	Tail          RGB
	Grass         RGB
	HUD           RGB
	Banner        RGB
}{
	Head:          RGB{R: 0, G: 128, B: 26},
	HeadShine:     RGB{R: 77, G: 204, B: 77},
	Eye:           RGB{R: 255, G: 255, B: 255},
	Pupil:         RGB{R: 0, G: 0, B: 0},
	Tongue:        RGB{R: 204, G: 0, B: 0},
	Body:          RGB{R: 0, G: 153, B: 26},
	BodyBand:      RGB{R: 153, G: 153, B: 0},
	BodySpeckle:   RGB{R: 179, G: 179, B: 77},
	BodyHighlight: RGB{R: 128, G: 204, B: 128},
	Tail:          RGB{R: 0, G: 77, B: 13},
	Grass:         RGB{R: 100, G: 180, B: 50},
	HUD:           RGB{R: 255, G: 255, B: 255},
	Banner:        RGB{R: 255, G: 147, B: 0},
}
