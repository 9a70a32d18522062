package game

// Loop runs the cooperative frame loop: input, simulation, render, in that
// order, once per display frame.
type Loop struct {
	State    *GameState
	Clock    Clock
	Input    Input
	Renderer Renderer
	// Pace blocks until the next frame is due. Nil means the renderer
	// already paces (e.g. vsync on buffer swap).
	Pace func()

	frame Frame
}

// Frame runs one iteration. It returns false once the session should end.
func (l *Loop) Frame() bool {
	now := l.Clock.Now()
	if l.Input != nil {
		for _, cmd := range l.Input.Poll() {
			if !l.State.Apply(cmd) {
				return false
			}
		}
	}
	l.State.Update(now)
	if l.Renderer != nil {
		l.Renderer.Render(BuildFrame(l.State, now, &l.frame))
	}
	return true
}

// Run loops until Frame reports the end of the session.
func (l *Loop) Run() {
	for l.Frame() {
		if l.Pace != nil {
			l.Pace()
		}
	}
}
