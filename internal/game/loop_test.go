package game

import "testing"

type fakeClock struct{ t float64 }

func (c *fakeClock) Now() float64 { return c.t }

type scriptInput struct {
	frames [][]Command
}

func (s *scriptInput) Poll() []Command {
	if len(s.frames) == 0 {
		return nil
	}
	cmds := s.frames[0]
	s.frames = s.frames[1:]
	return cmds
}

type countingRenderer struct {
	frames int
	last   Frame
}

func (r *countingRenderer) Render(f *Frame) {
	r.frames++
	r.last = *f
}

type cueRecorder struct{ cues []Cue }

func (a *cueRecorder) Play(c Cue) { a.cues = append(a.cues, c) }

func TestLoopFrameOrder(t *testing.T) {
	clock := &fakeClock{}
	in := &scriptInput{frames: [][]Command{{CmdUp}}}
	rend := &countingRenderer{}
	g := NewGameState(1, nil)
	g.Food = &Food{Pos: Cell{0, 0}, Kind: FoodApple}
	l := &Loop{State: g, Clock: clock, Input: in, Renderer: rend}

	clock.t = 0.2
	if !l.Frame() {
		t.Fatal("frame ended the session")
	}
	// Input is applied before the tick in the same frame.
	if g.Snake.Head() != (Cell{10, 11}) {
		t.Errorf("head = %v, want (10,11)", g.Snake.Head())
	}
	if rend.frames != 1 || len(rend.last.Segments) != 1 {
		t.Errorf("render calls = %d, last = %+v", rend.frames, rend.last)
	}
}

func TestLoopRunStopsOnQuit(t *testing.T) {
	clock := &fakeClock{}
	g := NewGameState(1, nil)
	setBody(g, Cell{GridSize - 1, 4})
	in := &scriptInput{frames: [][]Command{
		nil,
		{CmdQuit},
	}}
	rend := &countingRenderer{}
	paced := 0
	l := &Loop{State: g, Clock: clock, Input: in, Renderer: rend, Pace: func() {
		paced++
		clock.t += 0.2
	}}

	clock.t = 0.2
	l.Run()

	if g.Phase != PhaseGameOver {
		t.Errorf("phase = %s", g.Phase)
	}
	if rend.frames != 1 || paced != 1 {
		t.Errorf("frames=%d paced=%d, want 1 and 1", rend.frames, paced)
	}
}

func TestLoopCloseWhilePlaying(t *testing.T) {
	g := NewGameState(1, nil)
	l := &Loop{State: g, Clock: &fakeClock{}, Input: &scriptInput{frames: [][]Command{{CmdQuit, CmdClose}}}}
	if l.Frame() {
		t.Error("close must end the session")
	}
	if g.Phase != PhasePlaying {
		t.Errorf("phase = %s", g.Phase)
	}
}

func TestBindAudio(t *testing.T) {
	bus := NewEventBus()
	audio := &cueRecorder{}
	BindAudio(bus, audio)
	g := NewGameState(1, bus)

	g.Food = &Food{Pos: Cell{11, 10}, Kind: FoodApple}
	g.Tick(1)
	g.Dir = DirDown
	setBody(g, Cell{4, 0})
	g.Tick(2)

	want := []Cue{CueEat, CueGameOver}
	if len(audio.cues) != len(want) {
		t.Fatalf("cues = %v, want %v", audio.cues, want)
	}
	for i := range want {
		if audio.cues[i] != want[i] {
			t.Errorf("cue %d = %d, want %d", i, audio.cues[i], want[i])
		}
	}

	BindAudio(bus, nil)
	BindAudio(nil, audio)
}

func TestFinalMealPlaysOnlyGameOverCue(t *testing.T) {
	bus := NewEventBus()
	audio := &cueRecorder{}
	BindAudio(bus, audio)
	g := NewGameState(1, bus)
	g.Foods.Eaten = EatenCap - 1
	g.Food = &Food{Pos: Cell{11, 10}, Kind: FoodApple}
	g.Tick(1)
	if len(audio.cues) != 1 || audio.cues[0] != CueGameOver {
		t.Errorf("cues = %v", audio.cues)
	}
}
