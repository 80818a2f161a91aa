package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/furkankly/goffin/model"
	"github.com/furkankly/goffin/tui"
	"github.com/furkankly/goffin/utils"
)

// loadConfig reads the config file, falling back to defaults when it is
// missing or unusable
func loadConfig(filename string) utils.Config {
	config, err := utils.LoadConfig(filename)
	if err == nil {
		return config
	}

	if !os.IsNotExist(errors.Cause(err)) {
		fmt.Fprintf(os.Stderr, "Using default configuration: %v\n", err)
	}
	return utils.DefaultConfig()
}

func setupLogging(config utils.Config) (*os.File, error) {
	return utils.SetupLogging(config.Debug, config.LogDir)
}

// loadSeed prefers the seed file and falls back to a built-in seed
func loadSeed(config utils.Config) (model.Seed, error) {
	if config.SeedFile != "" {
		return model.LoadSeedFile(config.SeedFile)
	}
	return model.NamedSeed(config.Seed)
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*model.Grid, error) {
	seed, err := loadSeed(config)
	if err != nil {
		return nil, err
	}

	grid, err := model.NewGrid(seed)
	if err != nil {
		return nil, err
	}
	grid.SetParallel(config.UseParallel)

	return grid, nil
}

func newLoop(config utils.Config, grid *model.Grid) *tui.Loop {
	return tui.NewLoop(
		tui.NewTCellHost(),
		grid,
		tui.WithTickInterval(config.TickInterval),
		tui.WithLogger(log.Default()),
		tui.WithDrawOnInit(config.DrawSeedFirst),
		tui.WithStats(utils.NewStats()),
	)
}

// failureKind names the class of a fatal error for the user
func failureKind(err error) string {
	switch cause := errors.Cause(err); {
	case cause == model.ErrSeedInvalid:
		return "invalid seed"
	case cause == tui.ErrTerminalInit:
		return "terminal initialization failure"
	case cause == tui.ErrTerminalIO:
		return "terminal i/o failure"
	case os.IsNotExist(cause) || os.IsPermission(cause):
		return "seed file unreadable"
	default:
		return "unexpected failure"
	}
}

func reportFailure(err error) {
	log.Printf("fatal: %+v", err)
	fmt.Fprintf(os.Stderr, "goffin: %s: %v\n", failureKind(err), err)
}
