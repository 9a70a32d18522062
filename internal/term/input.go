package term

import (
	"github.com/gdamore/tcell/v2"

	"fruitsnake/internal/game"
)

// Input reads tcell events on a goroutine and hands them to the frame loop
// through a buffered channel.
type Input struct {
	screen tcell.Screen
	events chan tcell.Event
	cmds   []game.Command
}

func NewInput(screen tcell.Screen) *Input {
	in := &Input{screen: screen, events: make(chan tcell.Event, 100)}
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalised.
				return
			}
			in.events <- ev
		}
	}()
	return in
}

// Poll drains pending events without blocking. Auto-repeated keys show up
// as runs of the same command; a run collapses to one.
func (in *Input) Poll() []game.Command {
	in.cmds = in.cmds[:0]
	for {
		select {
		case ev := <-in.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				cmd := commandFor(ev)
				if cmd == game.CmdNone {
					continue
				}
				if n := len(in.cmds); n > 0 && in.cmds[n-1] == cmd {
					continue
				}
				in.cmds = append(in.cmds, cmd)
			case *tcell.EventResize:
				in.screen.Sync()
			}
		default:
			return in.cmds
		}
	}
}

func commandFor(ev *tcell.EventKey) game.Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.CmdUp
	case tcell.KeyDown:
		return game.CmdDown
	case tcell.KeyLeft:
		return game.CmdLeft
	case tcell.KeyRight:
		return game.CmdRight
	case tcell.KeyEnter:
		return game.CmdRestart
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.CmdClose
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return game.CmdUp
		case 's', 'S':
			return game.CmdDown
		case 'a', 'A':
			return game.CmdLeft
		case 'd', 'D':
			return game.CmdRight
		case 'q', 'Q':
			return game.CmdQuit
		}
	}
	return game.CmdNone
}
