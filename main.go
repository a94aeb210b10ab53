package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"ageofrock/client"

	"github.com/eiannone/keyboard"
	"golang.org/x/term"
)

const (
	hideCursor = "\033[2J\033[?25l" // also clear screen
	showCursor = "\033[23;0H\n\r\033[?25h"
)

func main() {
	fps := flag.Int("fps", 60, "frames per second")
	logFile := flag.String("log", "", "write logs to this file")
	debug := flag.Bool("debug", false, "log at debug level")
	noColor := flag.Bool("nocolor", false, "disable colours")
	flag.Parse()
	if *fps < 1 || *fps > 1000 {
		log.Fatalf("fps must be between 1 and 1000, got %d", *fps)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		log.Fatal("age of rock needs to run in a terminal")
	}

	logger, closeLog, err := newLogger(*logFile, *debug)
	if err != nil {
		log.Fatalf("unable to open log file: %v", err)
	}
	defer closeLog()

	c, err := client.New(&client.Options{
		FPS:     *fps,
		NoColor: *noColor,
		Logger:  logger,
	})
	if err != nil {
		log.Fatalf("unable to start client: %v", err)
	}
	defer func() {
		if err := keyboard.Close(); err != nil {
			logger.Error("unable to close keyboard", slog.String("error", err.Error()))
		}
		fmt.Print(showCursor)
	}()

	fmt.Print(hideCursor)
	c.Start()
}

// newLogger logs to path as JSON. The terminal belongs to the game, so
// without a path logs are discarded.
func newLogger(path string, debug bool) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level})), func() { f.Close() }, nil //nolint:errcheck
}
