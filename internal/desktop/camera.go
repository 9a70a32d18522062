package desktop

import "fruitsnake/internal/game"

// camera maps field pixels (origin bottom-left, y up) onto the framebuffer.
type camera struct {
	X, Y float64 // field-pixel centre of the view
	Zoom float64 // framebuffer pixels per field pixel
}

// fitCamera centres the whole playfield in a fbW x fbH framebuffer.
func fitCamera(fbW, fbH int) camera {
	zoom := float64(fbW) / game.FieldSize
	if z := float64(fbH) / game.FieldSize; z < zoom {
		zoom = z
	}
	return camera{X: game.FieldSize / 2, Y: game.FieldSize / 2, Zoom: zoom}
}

// toScreen converts a field point to framebuffer pixels (origin top-left).
func (c camera) toScreen(fx, fy float64, fbW, fbH int) (float32, float32) {
	sx := (fx-c.X)*c.Zoom + float64(fbW)*0.5
	sy := float64(fbH)*0.5 - (fy-c.Y)*c.Zoom
	return float32(sx), float32(sy)
}

// uiScale is the factor from logical window pixels to framebuffer pixels.
func uiScale(fbW, fbH int) (float32, float32) {
	return float32(fbW) / game.WindowWidth, float32(fbH) / game.WindowHeight
}
