package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/advent-of-code/internal/config"
	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/setup"
	"github.com/povarna/advent-of-code/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	exitFailure       = 1
	exitNotRegistered = 2
)

// errFailed is returned when a command already reported its failure.
var errFailed = errors.New("one or more parts failed")

type app struct {
	stdout io.Writer
	stderr io.Writer
	deps   *setup.Dependencies
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(execute(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	// Part failures and parse errors were already logged by the runner.
	var parseErr *puzzle.ParseError
	if !errors.Is(err, errFailed) && !errors.As(err, &parseErr) {
		l := logger.NewWithWriter(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen}, zerolog.LevelErrorValue)
		l.Error().Err(err).Strs("args", args).Msg("Command failed")
	}

	if errors.Is(err, puzzle.ErrNotRegistered) {
		return exitNotRegistered
	}
	return exitFailure
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "aoc",
		Short:         "Run Advent of Code solutions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.wire()
		},
	}

	root.AddCommand(a.runCmd(), a.listCmd(), a.verifyCmd())

	return root
}

func (a *app) wire() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	l := logger.NewWithWriter(zerolog.ConsoleWriter{Out: a.stderr, TimeFormat: time.Kitchen}, cfg.LogLevel)

	deps, err := setup.Wire(cfg, &l)
	if err != nil {
		return fmt.Errorf("failed to wire dependencies: %w", err)
	}
	a.deps = deps

	return nil
}
