package setup

import (
	"fmt"

	"github.com/povarna/advent-of-code/aoc"
	"github.com/povarna/advent-of-code/internal/config"
	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/runner"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Config   *config.Config
	Registry *puzzle.Registry
	Runner   *runner.Runner
	Logger   *zerolog.Logger
}

func Wire(cfg *config.Config, logger *zerolog.Logger) (*Dependencies, error) {
	registry, err := aoc.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to build puzzle registry: %w", err)
	}

	logger.Debug().
		Int("puzzles", len(registry.List())).
		Ints("years", registry.Years()).
		Msg("Puzzle registry ready")

	return &Dependencies{
		Config:   cfg,
		Registry: registry,
		Runner:   runner.NewRunner(cfg.Answers, logger),
		Logger:   logger,
	}, nil
}
