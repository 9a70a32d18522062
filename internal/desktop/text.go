package desktop

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"fruitsnake/internal/game"
)

// Glyph atlas layout: printable ASCII in a 16-column grid of fixed cells.
const (
	glyphFirst = 32
	glyphLast  = 126
	atlasCols  = 16
)

var (
	glyphFace  = basicfont.Face7x13
	glyphCellW = glyphFace.Advance
	glyphCellH = glyphFace.Height
	atlasRows  = (glyphLast - glyphFirst + atlasCols) / atlasCols
	atlasW     = atlasCols * glyphCellW
	atlasH     = atlasRows * glyphCellH
)

// buildGlyphAtlas rasterises the face in white onto a transparent atlas so
// the quad shader can tint it.
func buildGlyphAtlas() *image.NRGBA {
	atlas := image.NewNRGBA(image.Rect(0, 0, atlasW, atlasH))
	draw.Draw(atlas, atlas.Bounds(), image.Transparent, image.Point{}, draw.Src)
	d := &font.Drawer{Dst: atlas, Src: image.White, Face: glyphFace}
	for ch := glyphFirst; ch <= glyphLast; ch++ {
		col, row := glyphCell(rune(ch))
		d.Dot = fixed.P(col*glyphCellW, row*glyphCellH+glyphFace.Ascent)
		d.DrawString(string(rune(ch)))
	}
	return atlas
}

func glyphCell(ch rune) (col, row int) {
	i := int(ch) - glyphFirst
	return i % atlasCols, i / atlasCols
}

// glyphUV returns the atlas rectangle of ch in texture coordinates.
func glyphUV(ch rune) (u0, v0, u1, v1 float32, ok bool) {
	if ch < glyphFirst || ch > glyphLast {
		return 0, 0, 0, 0, false
	}
	col, row := glyphCell(ch)
	u0 = float32(col*glyphCellW) / float32(atlasW)
	v0 = float32(row*glyphCellH) / float32(atlasH)
	u1 = float32((col+1)*glyphCellW) / float32(atlasW)
	v1 = float32((row+1)*glyphCellH) / float32(atlasH)
	return u0, v0, u1, v1, true
}

// appendText queues t as glyph quads. sx and sy scale logical window pixels
// to framebuffer pixels.
func appendText(buf []float32, t game.Text, sx, sy float32) []float32 {
	scale := float32(t.Size) / float32(glyphCellH)
	w := float32(glyphCellW) * scale * sx
	h := float32(glyphCellH) * scale * sy
	x := float32(t.X) * sx
	y := float32(t.Y) * sy
	r, g, b := t.Color.Floats()
	for _, ch := range t.Str {
		if u0, v0, u1, v1, ok := glyphUV(ch); ok {
			buf = appendQuad(buf, x, y, x+w, y+h, u0, v0, u1, v1, r, g, b, 1)
		}
		x += w
	}
	return buf
}

// appendQuad adds two triangles (TL, TR, BL, TR, BR, BL), 8 floats per
// vertex: pos(2) uv(2) colour(4).
func appendQuad(buf []float32, x0, y0, x1, y1, u0, v0, u1, v1, r, g, b, a float32) []float32 {
	return append(buf,
		x0, y0, u0, v0, r, g, b, a,
		x1, y0, u1, v0, r, g, b, a,
		x0, y1, u0, v1, r, g, b, a,
		x1, y0, u1, v0, r, g, b, a,
		x1, y1, u1, v1, r, g, b, a,
		x0, y1, u0, v1, r, g, b, a,
	)
}
