package term

import (
	"github.com/gdamore/tcell/v2"

	"fruitsnake/internal/game"
)

// Each grid cell is two terminal columns wide so the board looks square.
const (
	cellCols = 2
	boardW   = game.GridSize*cellCols + 2 // with border
	boardH   = game.GridSize + 2
	boardTop = 2 // rows above the board are left to the HUD
)

type glyph struct {
	runes [cellCols]rune
	color game.RGB
}

var foodGlyphs = [game.FoodKindCount]glyph{
	game.FoodApple:      {[cellCols]rune{'(', ')'}, game.RGB{R: 200, G: 30, B: 20}},
	game.FoodBanana:     {[cellCols]rune{'(', '('}, game.RGB{R: 230, G: 200, B: 40}},
	game.FoodStrawberry: {[cellCols]rune{'<', '>'}, game.RGB{R: 230, G: 40, B: 60}},
	game.FoodMouse:      {[cellCols]rune{'m', '~'}, game.RGB{R: 150, G: 150, B: 150}},
	game.FoodPaper:      {[cellCols]rune{'[', ']'}, game.RGB{R: 230, G: 220, B: 200}},
}

var roleRunes = map[game.SegmentRole][cellCols]rune{
	game.RoleHead: {'█', '█'},
	game.RoleBody: {'▓', '▓'},
	game.RoleTail: {'▒', '▒'},
}

// Renderer draws frames onto a tcell screen. Sub-cell effects (shake,
// wiggle, eyes) are below terminal resolution and are dropped; fades map
// to colour blending.
type Renderer struct {
	screen tcell.Screen
	mode   ColorMode
}

func NewRenderer(screen tcell.Screen, mode ColorMode) *Renderer {
	return &Renderer{screen: screen, mode: mode.resolve(screen.Colors())}
}

// boardOrigin returns the screen column and row of the top-left border.
func (r *Renderer) boardOrigin() (int, int) {
	w, _ := r.screen.Size()
	left := (w - boardW) / 2
	if left < 0 {
		left = 0
	}
	return left, boardTop
}

// cellPos maps a grid cell (y up) to the screen position of its first column.
func (r *Renderer) cellPos(c game.Cell) (int, int) {
	left, top := r.boardOrigin()
	return left + 1 + c.X*cellCols, top + 1 + (game.GridSize - 1 - c.Y)
}

func (r *Renderer) style(fg, bg game.RGB) tcell.Style {
	if r.mode == ColorMono {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(r.mode.color(fg)).Background(r.mode.color(bg))
}

func (r *Renderer) Render(f *game.Frame) {
	s := r.screen
	s.Clear()
	grass := game.Palette.Grass

	r.drawBorder()
	if f.Background {
		bg := r.style(grass, grass)
		for y := 0; y < game.GridSize; y++ {
			for x := 0; x < game.GridSize; x++ {
				col, row := r.cellPos(game.Cell{X: x, Y: y})
				for i := 0; i < cellCols; i++ {
					s.SetContent(col+i, row, ' ', nil, bg)
				}
			}
		}
	}

	if fs := f.Food; fs != nil {
		g := foodGlyphs[fs.Kind]
		r.putCell(fs.Cell, g.runes, r.style(fade(g.color, grass, fs.Alpha), grass), false)
	}

	for _, seg := range f.Segments {
		st := r.style(fade(seg.Color, grass, seg.Alpha), grass)
		// The head swells while eating.
		bold := seg.Role == game.RoleHead && seg.Radius > game.CellSize/2-1
		r.putCell(seg.Cell, roleRunes[seg.Role], st, bold)
	}

	w, h := s.Size()
	for _, t := range f.Texts {
		col := int(t.X / game.WindowWidth * float64(w))
		row := int(t.Y / game.WindowHeight * float64(h))
		r.drawText(col, row, t.Str, r.style(t.Color, game.RGB{}))
	}
	s.Show()
}

func (r *Renderer) putCell(c game.Cell, runes [cellCols]rune, st tcell.Style, bold bool) {
	if !c.InBounds() {
		return
	}
	col, row := r.cellPos(c)
	st = st.Bold(bold)
	for i, ch := range runes {
		r.screen.SetContent(col+i, row, ch, nil, st)
	}
}

func (r *Renderer) drawBorder() {
	left, top := r.boardOrigin()
	st := r.style(game.Palette.HUD, game.RGB{})
	right, bottom := left+boardW-1, top+boardH-1
	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, '─', nil, st)
		r.screen.SetContent(x, bottom, '─', nil, st)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, st)
		r.screen.SetContent(right, y, '│', nil, st)
	}
	r.screen.SetContent(left, top, '┌', nil, st)
	r.screen.SetContent(right, top, '┐', nil, st)
	r.screen.SetContent(left, bottom, '└', nil, st)
	r.screen.SetContent(right, bottom, '┘', nil, st)
}

// drawText writes s from col, clipping whatever falls off either edge.
func (r *Renderer) drawText(col, row int, s string, st tcell.Style) {
	w, h := r.screen.Size()
	if row < 0 || row >= h {
		return
	}
	for _, ch := range s {
		if col >= w {
			return
		}
		if col >= 0 {
			r.screen.SetContent(col, row, ch, nil, st)
		}
		col++
	}
}
