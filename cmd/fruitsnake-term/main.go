// Command fruitsnake-term plays the game in a terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"fruitsnake/internal/cli"
	"fruitsnake/internal/term"
)

var colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256, mono")

func main() {
	// term.Run finalises the screen while this panic unwinds, so the
	// report below lands on a sane terminal.
	defer func() {
		if r := recover(); r != nil {
			cli.Crash(r)
		}
	}()

	opts := cli.Register(flag.CommandLine)
	flag.Parse()

	logFile := cli.SetupLogging(opts.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	colorMode, err := term.ParseColorMode(*colorModeFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fruitsnake-term: %v\n", err)
		os.Exit(2)
	}
	seed, err := opts.ResolveSeed(os.Getenv, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "fruitsnake-term: %v\n", err)
		os.Exit(2)
	}
	log.Printf("seed=%d color=%s", seed, *colorModeFlag)

	err = term.Run(term.Options{Seed: seed, Mute: opts.Mute, Volume: opts.Volume, Color: colorMode})
	if err != nil {
		fmt.Fprintf(os.Stderr, "fruitsnake-term: %v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}
