//go:build !android

// Package desktop runs the game in a GLFW window with an OpenGL 4.1 renderer.
package desktop

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"fruitsnake/internal/game"
	"fruitsnake/internal/sound"
)

type Options struct {
	Seed   uint64
	Mute   bool
	Volume float64
}

// Run opens the window and blocks until the player quits or closes it.
// It must be called from the main goroutine.
func Run(opts Options) error {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Printf("desktop: GL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	rend, err := NewRenderer(window, opts.Seed)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	bus := game.NewEventBus()
	if !opts.Mute {
		player, err := sound.Init(opts.Volume)
		if err != nil {
			fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
		} else {
			game.BindAudio(bus, player)
		}
	}

	state := game.NewGameState(opts.Seed, bus)
	loop := &game.Loop{
		State:    state,
		Clock:    glfwClock{},
		Input:    NewInput(window),
		Renderer: rend,
	}
	loop.Run()
	log.Printf("desktop: session over, score=%d eaten=%d", state.Score, state.Foods.Eaten)
	return nil
}
