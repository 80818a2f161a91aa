package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"
)

const configFile = "config.json"

func main() {
	os.Exit(run())
}

func run() (code int) {
	// The loop has already restored the terminal by the time a panic gets here
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\ngoffin crashed: %v\nStack Trace:\n%s\n", r, debug.Stack())
			code = 1
		}
	}()

	// Load configuration - fallback to defaults if file doesn't exist
	config := loadConfig(configFile)

	logFile, err := setupLogging(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging disabled: %v\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	// Seed problems are reported before the terminal is touched
	grid, err := initializeGame(config)
	if err != nil {
		reportFailure(err)
		return 1
	}
	log.Printf("starting: grid %dx%d, %d living cells, tick %v",
		grid.Rows(), grid.Cols(), grid.CountLivingCells(), config.TickInterval)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := newLoop(config, grid)
	if err := loop.Run(ctx); err != nil {
		reportFailure(err)
		return 1
	}

	fmt.Println(loop.Stats().Summary(time.Now()))
	return 0
}
