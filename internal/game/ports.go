package game

import "time"

// Clock supplies monotonic wall-clock seconds.
type Clock interface {
	Now() float64
}

// WallClock counts seconds since it was created.
type WallClock struct {
	start time.Time
}

func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

func (c *WallClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// Command is a discrete player intent delivered by an input adapter.
type Command uint8

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdRestart
	CmdQuit  // honoured only on the game over screen
	CmdClose // window closed or interrupt; ends the loop in any phase
)

// Direction maps a steering command to its heading.
func (c Command) Direction() (Direction, bool) {
	switch c {
	case CmdUp:
		return DirUp, true
	case CmdDown:
		return DirDown, true
	case CmdLeft:
		return DirLeft, true
	case CmdRight:
		return DirRight, true
	}
	return DirRight, false
}

// Input is polled once per frame and returns the commands queued since the
// previous poll, oldest first.
type Input interface {
	Poll() []Command
}

// Renderer draws one frame's worth of draw commands.
type Renderer interface {
	Render(f *Frame)
}

type Cue uint8

const (
	CueEat Cue = iota
	CueGameOver
)

// Audio plays fire-and-forget cues. Implementations must treat a missing
// device or sample as a silent no-op.
type Audio interface {
	Play(c Cue)
}

// BindAudio routes game events to sound cues.
func BindAudio(bus *EventBus, a Audio) {
	if bus == nil || a == nil {
		return
	}
	bus.Subscribe(EventAte, func(Event) { a.Play(CueEat) })
	bus.Subscribe(EventGameOver, func(Event) { a.Play(CueGameOver) })
}
