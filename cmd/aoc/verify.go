package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/povarna/advent-of-code/internal/input"
	"github.com/povarna/advent-of-code/internal/runner"
	"github.com/spf13/cobra"
)

func (a *app) verifyCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every day with an input file against its known answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			if err := writeRow(tw, "PUZZLE", "TITLE", "INPUT", "PART 1", "PART 2", "TIME"); err != nil {
				return err
			}

			checked, failed := 0, 0
			for _, p := range a.deps.Registry.List() {
				id := p.ID()
				if year != 0 && id.Year != year {
					continue
				}
				if _, ok := a.deps.Config.Answers.Lookup(id.Year, id.Day); !ok {
					continue
				}

				path := input.PathFor(a.deps.Config.InputDir, id)
				in, err := input.Load(path)
				if errors.Is(err, fs.ErrNotExist) {
					a.deps.Logger.Debug().Str("puzzle", id.String()).Str("file", path).Msg("No input, skipping")
					continue
				}
				checked++
				if err != nil {
					failed++
					if err := writeRow(tw, id.String(), p.Title(), "-", "error", "error", "-"); err != nil {
						return err
					}
					continue
				}

				report, err := a.deps.Runner.Run(cmd.Context(), p, in)
				if err != nil {
					if ctxErr := cmd.Context().Err(); ctxErr != nil {
						return ctxErr
					}
					failed++
					if err := writeRow(tw, id.String(), p.Title(), humanize.IBytes(uint64(in.Size)), "parse error", "parse error", "-"); err != nil {
						return err
					}
					continue
				}
				if report.Failed() {
					failed++
				}

				err = writeRow(tw, id.String(), p.Title(), humanize.IBytes(uint64(report.Input.Size)),
					cell(report.Parts[0]), cell(report.Parts[1]), report.Total().Round(time.Microsecond).String())
				if err != nil {
					return err
				}
			}

			if err := tw.Flush(); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(a.stdout, "%d checked, %d failed\n", checked, failed); err != nil {
				return err
			}

			if failed > 0 {
				return errFailed
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "Only verify days of this year")

	return cmd
}

func writeRow(w io.Writer, columns ...string) error {
	_, err := fmt.Fprintln(w, strings.Join(columns, "\t"))
	return err
}

func cell(part runner.PartReport) string {
	switch v := part.Verdict(); v {
	case runner.VerdictCorrect, runner.VerdictUnchecked:
		return fmt.Sprintf("%s (%s)", part.Answer, v)
	case runner.VerdictIncorrect:
		return fmt.Sprintf("%s (want %s)", part.Answer, part.Expected)
	default:
		return string(v)
	}
}
