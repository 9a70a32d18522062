package game

import "fmt"

// SegmentRole tells adapters which part of the snake a segment is.
type SegmentRole uint8

const (
	RoleHead SegmentRole = iota
	RoleBody
	RoleTail
)

// Circle is a filled disc in field pixels (origin bottom-left, y up).
type Circle struct {
	X, Y   float64
	Radius float64
	Color  RGB
	Alpha  float64
}

// Segment is one snake cell as drawn this frame. X/Y already include the
// shake and wiggle offsets.
type Segment struct {
	Cell  Cell
	Index int
	Role  SegmentRole
	Circle
}

type Line struct {
	X0, Y0, X1, Y1 float64
	Color          RGB
	Alpha          float64
}

// FoodSprite places the textured food quad on its cell.
type FoodSprite struct {
	Cell  Cell
	Kind  FoodKind
	Alpha float64
}

// Text is a HUD string in screen pixels (origin top-left). Size is the
// glyph height in pixels.
type Text struct {
	Str   string
	X, Y  float64
	Size  float64
	Color RGB
}

// Frame is the full set of draw commands for one display frame.
type Frame struct {
	Phase      Phase
	Background bool
	Segments   []Segment
	Details    []Circle // head shine, eyes, body speckles; drawn after Segments
	Tongue     *Line
	Food       *FoodSprite
	Texts      []Text
}

const (
	hudTextSize    = 24
	bannerTextSize = 36
)

// CellCenter returns the field-pixel centre of c.
func CellCenter(c Cell) (float64, float64) {
	return float64(c.X*CellSize) + CellSize/2, float64(c.Y*CellSize) + CellSize/2
}

// BuildFrame turns the game state into draw commands at time now. Passing a
// previous frame reuses its slices.
func BuildFrame(g *GameState, now float64, reuse *Frame) *Frame {
	f := reuse
	if f == nil {
		f = &Frame{}
	}
	f.Phase = g.Phase
	f.Background = true
	f.Segments = f.Segments[:0]
	f.Details = f.Details[:0]
	f.Tongue = nil
	f.Food = nil
	f.Texts = f.Texts[:0]

	buildSnake(f, g, now)

	if g.Food != nil {
		f.Food = &FoodSprite{Cell: g.Food.Pos, Kind: g.Food.Kind, Alpha: g.Anim.Eat.FoodOpacity()}
	}

	f.Texts = append(f.Texts,
		Text{Str: fmt.Sprintf("Food Eaten: %d/%d", g.Foods.Eaten, EatenCap), X: 10, Y: 10, Size: hudTextSize, Color: Palette.HUD},
		Text{Str: fmt.Sprintf("Score: %d", g.Score), X: 10, Y: 14 + hudTextSize, Size: hudTextSize, Color: Palette.HUD},
	)
	if g.Phase == PhaseGameOver {
		f.Texts = append(f.Texts, Text{
			Str:   BannerText,
			X:     g.Anim.Banner.X,
			Y:     WindowHeight - WindowHeight/3 - bannerTextSize,
			Size:  bannerTextSize,
			Color: Palette.Banner,
		})
	}
	return f
}

func buildSnake(f *Frame, g *GameState, now float64) {
	cells := g.Snake.Cells()
	last := len(cells) - 1
	alpha := g.Anim.Death.Opacity()
	shake := g.Anim.Death.Shake(now)
	scale := g.Anim.Eat.HeadScale()
	dx, dy := g.Dir.Delta()
	eyeX, eyeY := float64(-dy*4), float64(dx*4)

	for i, c := range cells {
		cx, cy := CellCenter(c)
		cx += shake
		if i == last && g.Phase == PhasePlaying {
			cx += TailWiggle(now)
		}

		seg := Segment{Cell: c, Index: i}
		switch {
		case i == 0:
			seg.Role = RoleHead
			seg.Circle = Circle{X: cx, Y: cy, Radius: (CellSize/2 - 1) * scale, Color: Palette.Head, Alpha: alpha}
			f.Details = append(f.Details,
				Circle{X: cx + 2, Y: cy - 2, Radius: CellSize / 4 * scale, Color: Palette.HeadShine, Alpha: alpha},
				Circle{X: cx + eyeX - 4, Y: cy + eyeY + 3, Radius: 2.5 * scale, Color: Palette.Eye, Alpha: alpha},
				Circle{X: cx + eyeX + 4, Y: cy + eyeY + 3, Radius: 2.5 * scale, Color: Palette.Eye, Alpha: alpha},
				Circle{X: cx + eyeX - 4, Y: cy + eyeY + 3, Radius: 1.2 * scale, Color: Palette.Pupil, Alpha: alpha},
				Circle{X: cx + eyeX + 4, Y: cy + eyeY + 3, Radius: 1.2 * scale, Color: Palette.Pupil, Alpha: alpha},
			)
			if !g.Anim.Eat.Active {
				f.Tongue = &Line{
					X0: cx + float64(dx*8), Y0: cy + float64(dy*8),
					X1: cx + float64(dx*12), Y1: cy + float64(dy*12),
					Color: Palette.Tongue, Alpha: alpha,
				}
			}
		case i == last:
			seg.Role = RoleTail
			seg.Circle = Circle{X: cx, Y: cy, Radius: CellSize/2 - 4, Color: Palette.Tail, Alpha: alpha}
		default:
			seg.Role = RoleBody
			col := Palette.Body
			if i%3 == 0 {
				col = Palette.BodyBand
			}
			seg.Circle = Circle{X: cx, Y: cy, Radius: CellSize/2 - 2, Color: col, Alpha: alpha}
			f.Details = append(f.Details,
				Circle{X: cx + 1, Y: cy + 1, Radius: CellSize / 8, Color: Palette.BodySpeckle, Alpha: alpha * 0.7},
				Circle{X: cx - 1, Y: cy - 1, Radius: CellSize / 10, Color: Palette.BodyHighlight, Alpha: alpha * 0.6},
			)
		}
		f.Segments = append(f.Segments, seg)
	}
}
