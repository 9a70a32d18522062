//go:build !android

package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"fruitsnake/internal/game"
)

type binding struct {
	key glfw.Key
	cmd game.Command
}

// keyBindings is checked in order each frame.
var keyBindings = []binding{
	{glfw.KeyUp, game.CmdUp},
	{glfw.KeyDown, game.CmdDown},
	{glfw.KeyLeft, game.CmdLeft},
	{glfw.KeyRight, game.CmdRight},
	{glfw.KeyW, game.CmdUp},
	{glfw.KeyS, game.CmdDown},
	{glfw.KeyA, game.CmdLeft},
	{glfw.KeyD, game.CmdRight},
	{glfw.KeyEnter, game.CmdRestart},
	{glfw.KeyKPEnter, game.CmdRestart},
	{glfw.KeyQ, game.CmdQuit},
	{glfw.KeyEscape, game.CmdClose},
}

// Input turns GLFW key state into game commands. Only key-down edges
// count, so holding a key issues one command.
type Input struct {
	window   *glfw.Window
	prevKeys map[glfw.Key]bool
	cmds     []game.Command
}

func NewInput(window *glfw.Window) *Input {
	return &Input{
		window:   window,
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(key glfw.Key) bool {
	down := in.window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Poll pumps the GLFW event queue and reports this frame's commands.
func (in *Input) Poll() []game.Command {
	glfw.PollEvents()
	in.cmds = in.cmds[:0]
	if in.window.ShouldClose() {
		return append(in.cmds, game.CmdClose)
	}
	for _, b := range keyBindings {
		if in.JustPressed(b.key) {
			in.cmds = append(in.cmds, b.cmd)
		}
	}
	return in.cmds
}
