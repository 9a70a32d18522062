package desktop

import (
	"testing"

	"fruitsnake/internal/game"
)

func TestFitCameraLetterboxesField(t *testing.T) {
	cam := fitCamera(game.WindowWidth, game.WindowHeight)
	if cam.Zoom != 0.75 {
		t.Fatalf("zoom = %f, want 0.75", cam.Zoom)
	}

	x0, y0 := cam.toScreen(0, game.FieldSize, game.WindowWidth, game.WindowHeight)
	x1, y1 := cam.toScreen(game.FieldSize, 0, game.WindowWidth, game.WindowHeight)
	if x0 != 100 || y0 != 0 || x1 != 700 || y1 != 600 {
		t.Errorf("field spans (%v,%v)-(%v,%v), want (100,0)-(700,600)", x0, y0, x1, y1)
	}
}

func TestToScreenFlipsY(t *testing.T) {
	cam := fitCamera(800, 800)
	_, top := cam.toScreen(0, game.FieldSize-1, 800, 800)
	_, bottom := cam.toScreen(0, 1, 800, 800)
	if top >= bottom {
		t.Errorf("field top maps below field bottom: %v >= %v", top, bottom)
	}
}

func TestUIScaleHiDPI(t *testing.T) {
	sx, sy := uiScale(2*game.WindowWidth, 2*game.WindowHeight)
	if sx != 2 || sy != 2 {
		t.Errorf("scale = %v,%v", sx, sy)
	}
}
