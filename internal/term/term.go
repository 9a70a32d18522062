// Package term runs the game inside a terminal using tcell.
package term

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"fruitsnake/internal/game"
	"fruitsnake/internal/sound"
)

// FrameInterval paces the terminal loop at 60 Hz.
const FrameInterval = time.Second / 60

type Options struct {
	Seed   uint64
	Mute   bool
	Volume float64
	Color  ColorMode
}

// Run takes over the terminal until the player quits. The screen is
// restored before Run returns.
func Run(opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	return RunOn(screen, opts)
}

// RunOn plays on an already initialised screen.
func RunOn(screen tcell.Screen, opts Options) error {
	w, h := screen.Size()
	if w < boardW || h < boardTop+boardH {
		log.Printf("term: screen %dx%d is smaller than the %dx%d board", w, h, boardW, boardTop+boardH)
	}

	bus := game.NewEventBus()
	if !opts.Mute {
		player, err := sound.Init(opts.Volume)
		if err != nil {
			log.Printf("term: audio init failed (continuing without sound): %v", err)
		} else {
			game.BindAudio(bus, player)
		}
	}

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	state := game.NewGameState(opts.Seed, bus)
	loop := &game.Loop{
		State:    state,
		Clock:    game.NewWallClock(),
		Input:    NewInput(screen),
		Renderer: NewRenderer(screen, opts.Color),
		Pace:     func() { <-ticker.C },
	}
	loop.Run()
	log.Printf("term: session over, score=%d eaten=%d", state.Score, state.Foods.Eaten)
	return nil
}
