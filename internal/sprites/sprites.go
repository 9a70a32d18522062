// Package sprites paints the procedural textures: a tileable grass
// background and one picture per food kind. Images are laid out top row
// first, like any image.Image.
package sprites

import (
	"image"
	"image/color"
	"math"

	"fruitsnake/internal/game"
)

const (
	GrassSize = 128
	FoodSize  = 64
)

// canvas wraps an NRGBA with the clamped, bounds-checked writes every
// painter below relies on.
type canvas struct {
	img *image.NRGBA
}

func newCanvas(size int) canvas {
	return canvas{img: image.NewNRGBA(image.Rect(0, 0, size, size))}
}

func (c canvas) set(x, y int, r, g, b, a int) {
	if !image.Pt(x, y).In(c.img.Rect) {
		return
	}
	c.img.SetNRGBA(x, y, color.NRGBA{R: clamp8(r), G: clamp8(g), B: clamp8(b), A: clamp8(a)})
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Grass is a 128x128 opaque meadow with scattered blades. It is meant to be
// repeated 4x4 across the playfield.
func Grass(seed uint64) *image.NRGBA {
	c := newCanvas(GrassSize)
	r := game.NewRand(seed)

	for x := 0; x < GrassSize; x++ {
		for y := 0; y < GrassSize; y++ {
			wave := math.Sin(float64(x)/20) * math.Cos(float64(y)/20)
			green := 180 + int(20*wave)
			yellow := 100 + int(20*wave)
			c.set(x, y, yellow, green, yellow/2, 255)
		}
	}

	for i := 0; i < 1000; i++ {
		x := r.Range(0, GrassSize-1)
		y := r.Range(0, GrassSize-1)
		height := r.Range(4, 10)
		yellow := r.Range(180, 220)
		green := r.Range(160, 200)
		for dy := 0; dy < height && y+dy < GrassSize; dy++ {
			t := float64(dy) / float64(height)
			offset := int(math.Sin(t*math.Pi) * 2)
			// Fade toward the base colour; the tile itself stays opaque.
			base := c.img.NRGBAAt(x+offset, y+dy)
			k := 1 - t
			c.set(x+offset, y+dy,
				mix(int(base.R), yellow, k),
				mix(int(base.G), green, k),
				mix(int(base.B), yellow/2, k),
				255)
		}
	}
	return c.img
}

func mix(a, b int, k float64) int {
	return a + int(float64(b-a)*k)
}

// Food paints the 64x64 picture for kind. The seed only moves speckles
// around; the silhouette is fixed per kind.
func Food(kind game.FoodKind, seed uint64) *image.NRGBA {
	c := newCanvas(FoodSize)
	r := game.NewRand(seed ^ uint64(kind+1)*0x9E3779B97F4A7C15)
	switch kind {
	case game.FoodApple:
		paintApple(c, r)
	case game.FoodBanana:
		paintBanana(c, r)
	case game.FoodStrawberry:
		paintStrawberry(c)
	case game.FoodMouse:
		paintMouse(c, r)
	case game.FoodPaper:
		paintPaper(c, r)
	}
	return c.img
}

// AllFood returns one image per kind, indexed by FoodKind.
func AllFood(seed uint64) [game.FoodKindCount]*image.NRGBA {
	var out [game.FoodKindCount]*image.NRGBA
	for k := range out {
		out[k] = Food(game.FoodKind(k), seed)
	}
	return out
}

const centre = FoodSize / 2

func each(fn func(x, y int, dx, dy, d float64)) {
	for x := 0; x < FoodSize; x++ {
		for y := 0; y < FoodSize; y++ {
			dx := float64(x - centre)
			dy := float64(y - centre)
			fn(x, y, dx, dy, math.Hypot(dx, dy))
		}
	}
}

func paintApple(c canvas, r *game.Rand) {
	each(func(x, y int, dx, dy, d float64) {
		if d >= 28 {
			return
		}
		light := math.Max(0, (dx-dy)/28)
		red := int(180-d*2.5) + int(light*60)
		green := max(0, int(20-d)) + int(light*30)
		alpha := int(255 * (1 - d/30))
		c.set(x, y, red, green, 0, alpha)
		if r.Float64() < 0.02 && d > 10 {
			c.set(x, y, 120, 80, 0, alpha)
		}
		if d < 12 && dx < -8 && dy > 8 {
			c.set(x, y, 220, 220, 220, 140)
		}
	})
	// Stem.
	for i := 0; i < 10; i++ {
		shade := 100 - i*5
		c.set(31, 4+i, shade, shade/2, shade/4, 255)
		c.set(32, 4+i, shade, shade/2, shade/4, 255)
	}
	// Leaf.
	for x := 24; x < 40; x++ {
		for y := 2; y < 12; y++ {
			dx := float64(x - 32)
			dy := float64(y - 7)
			if math.Hypot(dx, dy) >= 6 {
				continue
			}
			green := 100 + int(20*math.Sin(dx/3))
			alpha := int(255 * (1 - dy/6))
			c.set(x, y, 20, green, 20, alpha)
			if math.Abs(dx-dy) < 1 {
				c.set(x, y, 10, green-20, 10, alpha)
			}
		}
	}
}

func paintBanana(c canvas, r *game.Rand) {
	each(func(x, y int, dx, dy, _ float64) {
		if math.Abs(dx) >= 14 || math.Abs(dy-12*math.Sin(dx/14)) >= 9 {
			return
		}
		light := math.Max(0, (dx-dy)/22)
		yellow := int(200-math.Abs(dx)*4) + int(light*50)
		green := int(60-math.Abs(dx)*1.5) + int(light*30)
		c.set(x, y, yellow, green, 0, 255)
		if r.Float64() < 0.03 && math.Abs(dx) > 5 {
			c.set(x, y, 100, 50, 10, 200)
		}
		if math.Abs(dx) < 7 && dy > 0 && light > 0.6 {
			c.set(x, y, 220, 220, 200, 130)
		}
	})
	// Tips.
	for x := 18; x < 22; x++ {
		c.set(x, 32, 80, 80, 40, 255)
		c.set(x, 33, 80, 80, 40, 255)
		c.set(x+24, 32, 80, 80, 40, 255)
		c.set(x+24, 33, 80, 80, 40, 255)
	}
}

func paintStrawberry(c canvas) {
	each(func(x, y int, dx, dy, d float64) {
		if d >= 22 || dy >= 12*math.Cos(dx/12) {
			return
		}
		light := math.Max(0, (dx-dy)/22)
		red := int(190-d*3.5) + int(light*70)
		alpha := int(255 * (1 - d/24))
		c.set(x, y, red, 0, 0, alpha)
		if (x*y)%5 < 2 && d > 4 {
			c.set(x, y, 200, 200, 80, 220) // seeds
		}
		if d < 10 && dx < -6 && dy > 6 {
			c.set(x, y, 220, 220, 220, 150)
		}
	})
	for x := 26; x < 38; x++ {
		for y := 8; y < 18; y++ {
			dx := float64(x - 32)
			dy := float64(y - 13)
			if math.Hypot(dx, dy) >= 5 {
				continue
			}
			green := 100 + int(20*math.Cos(dx/2))
			c.set(x, y, 20, green, 20, 255)
			if (x-32)%2 == 0 {
				c.set(x, y, 10, green-30, 10, 255)
			}
		}
	}
}

func paintMouse(c canvas, r *game.Rand) {
	each(func(x, y int, dx, dy, _ float64) {
		if math.Abs(dx) >= 16 || math.Abs(dy) >= 11 {
			return
		}
		light := math.Max(0, (dx-dy)/22)
		gray := int(140-math.Abs(dx)*2.5) + int(light*50)
		c.set(x, y, gray, gray, gray, 255)
		if r.Float64() < 0.05 && math.Abs(dx) > 4 {
			c.set(x, y, gray-30, gray-30, gray-30, 255)
		}
		if math.Abs(dx) < 9 && dy > 0 && light > 0.6 {
			c.set(x, y, 220, 220, 220, 110)
		}
	})
	// Eyes.
	for x := 29; x < 31; x++ {
		for y := 19; y < 21; y++ {
			c.set(x, y, 0, 0, 0, 255)
			c.set(x+4, y, 0, 0, 0, 255)
		}
	}
	// Whiskers.
	for x := 24; x < 28; x++ {
		c.set(x, 21, 180, 180, 180, 200)
		c.set(x+8, 21, 180, 180, 180, 200)
	}
	// Tail.
	for x := 48; x < 56; x++ {
		dy := int(2 * math.Sin(float64(x-48)/2))
		c.set(x, 32+dy, 80, 80, 80, 255)
	}
}

func paintPaper(c canvas, r *game.Rand) {
	each(func(x, y int, dx, dy, _ float64) {
		if math.Abs(dx) >= 22 || math.Abs(dy) >= 22 || math.Sin(dx/4)*math.Cos(dy/4) <= -0.6 {
			return
		}
		crease := 20 * math.Sin(dx/2) * math.Cos(dy/2)
		white := 170 + int(crease)
		yellow := 150 + int(crease)
		alpha := int(255 * (1 - (math.Abs(dx)+math.Abs(dy))/44))
		c.set(x, y, white, yellow, yellow, alpha)
		if math.Abs(dx-dy) < 1.5 && math.Abs(dx) > 4 {
			c.set(x, y, 120, 120, 120, 180) // fold
		}
		if (math.Abs(dx) > 18 || math.Abs(dy) > 18) && r.Float64() < 0.3 {
			c.set(x, y, white-20, yellow-20, yellow-20, int(float64(alpha)*0.7))
		}
	})
}
