// Package cli holds the flag and logging setup shared by both frontends.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"strconv"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "fruitsnake.log"

	// SeedEnv is read when -seed is not given.
	SeedEnv = "FRUITSNAKE_SEED"
)

// Options are the flags common to every frontend.
type Options struct {
	Seed   string
	Debug  bool
	Mute   bool
	Volume float64
}

// Register adds the common flags to fs.
func Register(fs *flag.FlagSet) *Options {
	o := &Options{}
	fs.StringVar(&o.Seed, "seed", "", "RNG seed for food placement (default: $"+SeedEnv+" or the clock)")
	fs.BoolVar(&o.Debug, "debug", false, "write a debug log to "+filepath.Join(logDir, logFileName))
	fs.BoolVar(&o.Mute, "mute", false, "disable sound")
	fs.Float64Var(&o.Volume, "volume", 0.6, "sound volume, 0 to 1")
	return o
}

// ResolveSeed picks the seed from the flag, then the environment, then now.
func (o *Options) ResolveSeed(getenv func(string) string, now time.Time) (uint64, error) {
	s := o.Seed
	if s == "" {
		s = getenv(SeedEnv)
	}
	if s == "" {
		return uint64(now.UnixNano()), nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse seed %q: %w", s, err)
	}
	return v, nil
}

// SetupLogging sends the standard logger to a file under logs/ when debug
// is set and discards it otherwise. The caller closes the returned file.
func SetupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create log dir: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("=== fruitsnake started (pid %d) ===", os.Getpid())
	return f
}

// Crash reports a recovered panic with its stack and exits. Deferred
// cleanups in the panicking goroutine have already run by then.
func Crash(r any) {
	log.Printf("panic: %v\n%s", r, debug.Stack())
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mfruitsnake crashed: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}
