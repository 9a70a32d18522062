//go:build !android

// Command fruitsnake plays the game in an OpenGL window.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"fruitsnake/internal/cli"
	"fruitsnake/internal/desktop"
)

func main() {
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

	seed, err := opts.ResolveSeed(os.Getenv, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "fruitsnake: %v\n", err)
		os.Exit(2)
	}
	log.Printf("seed=%d", seed)

	err = desktop.Run(desktop.Options{Seed: seed, Mute: opts.Mute, Volume: opts.Volume})
	if err != nil {
		fmt.Fprintf(os.Stderr, "fruitsnake: %v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}
