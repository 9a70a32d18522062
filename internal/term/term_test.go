package term

import (
	"io"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"fruitsnake/internal/game"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	s.SetSize(80, 24)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.Screen, row int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := s.GetContent(x, row)
		b.WriteRune(ch)
	}
	return b.String()
}

func screenHas(s tcell.Screen, needle string) bool {
	_, h := s.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(rowText(s, y), needle) {
			return true
		}
	}
	return false
}

func TestRenderPlacesHeadAndFood(t *testing.T) {
	s := newSimScreen(t)
	r := NewRenderer(s, ColorTrue)
	g := game.NewGameState(1, nil)
	g.Food = &game.Food{Pos: game.Cell{X: 0, Y: 0}, Kind: game.FoodPaper}

	r.Render(game.BuildFrame(g, 0, nil))

	// Board is 42 wide, centred in 80 columns: left border at 19.
	// Head (10,10) sits at column 19+1+20, row 2+1+(19-10).
	ch, _, st, _ := s.GetContent(40, 12)
	if ch != '█' {
		t.Errorf("head glyph = %q, want █", ch)
	}
	fg, _, _ := st.Decompose()
	if want := tcell.NewRGBColor(0, 128, 26); fg != want {
		t.Errorf("head colour = %v, want %v", fg, want)
	}
	// Food in the bottom-left cell.
	if ch, _, _, _ := s.GetContent(20, 22); ch != '[' {
		t.Errorf("food glyph = %q, want [", ch)
	}
	if ch, _, _, _ := s.GetContent(19, 2); ch != '┌' {
		t.Errorf("border corner = %q", ch)
	}
	if !screenHas(s, "Food Eaten: 0/50") || !screenHas(s, "Score: 0") {
		t.Error("HUD missing")
	}
	if screenHas(s, "Game Over") {
		t.Error("banner shown while playing")
	}
}

func TestRenderGameOverBanner(t *testing.T) {
	s := newSimScreen(t)
	r := NewRenderer(s, Color256)
	g := game.NewGameState(1, nil)
	g.Dir = game.DirUp
	for i := 0; i < game.GridSize; i++ {
		g.Tick(float64(i))
	}
	if g.Phase != game.PhaseGameOver {
		t.Fatalf("phase = %s", g.Phase)
	}
	// Scroll the banner fully on screen.
	for g.Anim.Banner.X < 0 {
		g.Update(30)
	}

	r.Render(game.BuildFrame(g, 30, nil))

	if !screenHas(s, "Game Over!") {
		t.Error("banner missing after game over")
	}
}

func TestRenderFadesDeadSnake(t *testing.T) {
	s := newSimScreen(t)
	r := NewRenderer(s, ColorTrue)
	g := game.NewGameState(1, nil)
	g.Dir = game.DirUp
	for i := 0; i < game.GridSize; i++ {
		g.Tick(float64(i))
	}
	g.Update(100) // long after the fade

	r.Render(game.BuildFrame(g, 100, nil))

	col, row := r.cellPos(g.Snake.Head())
	_, _, st, _ := s.GetContent(col, row)
	fg, _, _ := st.Decompose()
	grass := game.Palette.Grass
	if want := tcell.NewRGBColor(int32(grass.R), int32(grass.G), int32(grass.B)); fg != want {
		t.Errorf("faded head colour = %v, want grass %v", fg, want)
	}
}

func TestCommandFor(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want game.Command
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), game.CmdUp},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), game.CmdLeft},
		{tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), game.CmdRight},
		{tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), game.CmdDown},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), game.CmdRestart},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), game.CmdQuit},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), game.CmdClose},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), game.CmdClose},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), game.CmdNone},
	}
	for _, tc := range cases {
		if got := commandFor(tc.ev); got != tc.want {
			t.Errorf("%s: got %d, want %d", tc.ev.Name(), got, tc.want)
		}
	}
}

func TestInputDrainsAndCollapsesRepeats(t *testing.T) {
	s := newSimScreen(t)
	in := NewInput(s)

	s.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	s.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)

	var got []game.Command
	deadline := time.Now().Add(2 * time.Second)
	for len(got) < 2 && time.Now().Before(deadline) {
		got = append(got, in.Poll()...)
		time.Sleep(5 * time.Millisecond)
	}
	// Repeats collapse only within one poll, so allow Up twice if the
	// events straddled polls.
	var uniq []game.Command
	for _, c := range got {
		if len(uniq) == 0 || uniq[len(uniq)-1] != c {
			uniq = append(uniq, c)
		}
	}
	if len(uniq) != 2 || uniq[0] != game.CmdUp || uniq[1] != game.CmdLeft {
		t.Errorf("commands = %v", got)
	}
}

func TestParseColorMode(t *testing.T) {
	for in, want := range map[string]ColorMode{"": ColorAuto, "auto": ColorAuto, "truecolor": ColorTrue, "256": Color256, "mono": ColorMono} {
		got, err := ParseColorMode(in)
		if err != nil || got != want {
			t.Errorf("%q: %d, %v", in, got, err)
		}
	}
	if _, err := ParseColorMode("sepia"); err == nil {
		t.Error("expected error")
	}
	if m := ColorAuto.resolve(256); m != Color256 {
		t.Errorf("auto on 256 colours = %d", m)
	}
}
