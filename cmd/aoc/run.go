package main

import (
	"fmt"

	"github.com/povarna/advent-of-code/internal/input"
	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
	"github.com/spf13/cobra"
)

func (a *app) runCmd() *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "run <year> <day>",
		Short: "Solve both parts of a single day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.lookup(args[0], args[1])
			if err != nil {
				return err
			}

			path := inputPath
			if path == "" {
				path = input.PathFor(a.deps.Config.InputDir, p.ID())
			}

			in, err := input.Load(path)
			if err != nil {
				return err
			}

			report, err := a.deps.Runner.Run(cmd.Context(), p, in)
			if err != nil {
				return err
			}

			if err := report.WriteAnswers(a.stdout); err != nil {
				return err
			}
			if report.Failed() {
				return errFailed
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input file (default <input_dir>/<year>/<day>.txt)")

	return cmd
}

func (a *app) lookup(yearArg, dayArg string) (puzzle.Puzzle, error) {
	year, err := utils.ToInt(yearArg)
	if err != nil {
		return nil, fmt.Errorf("invalid year: %w", err)
	}
	day, err := utils.ToInt(dayArg)
	if err != nil {
		return nil, fmt.Errorf("invalid day: %w", err)
	}

	return a.deps.Registry.Lookup(year, day)
}
