package desktop

import (
	"testing"

	"fruitsnake/internal/game"
)

func TestGlyphAtlasHasInk(t *testing.T) {
	atlas := buildGlyphAtlas()
	if b := atlas.Bounds(); b.Dx() != atlasW || b.Dy() != atlasH {
		t.Fatalf("atlas bounds = %v", b)
	}
	ink := func(ch rune) int {
		col, row := glyphCell(ch)
		n := 0
		for y := row * glyphCellH; y < (row+1)*glyphCellH; y++ {
			for x := col * glyphCellW; x < (col+1)*glyphCellW; x++ {
				if atlas.NRGBAAt(x, y).A > 0 {
					n++
				}
			}
		}
		return n
	}
	if ink(' ') != 0 {
		t.Error("space has ink")
	}
	for _, ch := range "AG09!/" {
		if ink(ch) == 0 {
			t.Errorf("glyph %q is blank", ch)
		}
	}
}

func TestGlyphUV(t *testing.T) {
	if _, _, _, _, ok := glyphUV('\n'); ok {
		t.Error("control characters have no glyph")
	}
	u0, v0, u1, v1, ok := glyphUV('~')
	if !ok || u0 >= u1 || v0 >= v1 || u1 > 1 || v1 > 1 {
		t.Errorf("uv = %v %v %v %v", u0, v0, u1, v1)
	}
}

func TestAppendTextQuads(t *testing.T) {
	txt := game.Text{Str: "Hi !", X: 10, Y: 20, Size: 26, Color: game.Palette.HUD}
	buf := appendText(nil, txt, 1, 1)
	// Space has a glyph cell too, so every rune becomes a quad.
	if got, want := len(buf), 4*6*quadStride; got != want {
		t.Fatalf("floats = %d, want %d", got, want)
	}
	if buf[0] != 10 || buf[1] != 20 {
		t.Errorf("first vertex at %v,%v", buf[0], buf[1])
	}
	// Second glyph starts one scaled advance to the right.
	if x := buf[6*quadStride]; x != 10+float32(glyphCellW)*2 {
		t.Errorf("second glyph x = %v", x)
	}
}
