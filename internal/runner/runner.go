// Package runner executes a puzzle against its input: parse once, then both
// parts, timing each step and checking answers against known values.
package runner

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/povarna/advent-of-code/internal/config"
	"github.com/povarna/advent-of-code/internal/input"
	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/rs/zerolog"
)

type Runner struct {
	answers config.Answers
	logger  *zerolog.Logger
}

func NewRunner(answers config.Answers, logger *zerolog.Logger) *Runner {
	return &Runner{
		answers: answers,
		logger:  logger,
	}
}

func (r *Runner) Run(ctx context.Context, p puzzle.Puzzle, in *input.Input) (*Report, error) {
	id := p.ID()
	log := r.logger.With().Str("puzzle", id.String()).Logger()

	report := &Report{
		ID:    id,
		Title: p.Title(),
		Input: in,
	}

	log.Debug().
		Str("path", in.Path).
		Str("size", humanize.IBytes(uint64(in.Size))).
		Dur("read", in.Elapsed).
		Msg("input loaded")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	parsed, err := p.Parse(in.Text)
	report.ParseTime = time.Since(start)
	if err != nil {
		log.Error().Err(err).Msg("parse failed")
		return nil, err
	}
	log.Debug().Dur("elapsed", report.ParseTime).Msg("parsed")

	expected, _ := r.answers.Lookup(id.Year, id.Day)
	parts := [2]struct {
		solve    func() (string, error)
		expected string
	}{
		{parsed.Part1, expected.Part1},
		{parsed.Part2, expected.Part2},
	}

	for i, part := range parts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()
		answer, err := part.solve()
		report.Parts[i] = PartReport{
			Answer:   answer,
			Err:      err,
			Elapsed:  time.Since(start),
			Expected: part.expected,
		}

		r.logPart(&log, i+1, report.Parts[i])
	}

	log.Info().
		Str("title", report.Title).
		Str("input", humanize.IBytes(uint64(in.Size))).
		Dur("total", report.Total()).
		Bool("failed", report.Failed()).
		Msg("puzzle finished")

	return report, nil
}

func (r *Runner) logPart(log *zerolog.Logger, n int, part PartReport) {
	switch part.Verdict() {
	case VerdictFailed:
		log.Error().Err(part.Err).Int("part", n).Dur("elapsed", part.Elapsed).Msg("part failed")
	case VerdictIncorrect:
		log.Warn().
			Int("part", n).
			Str("answer", part.Answer).
			Str("expected", part.Expected).
			Dur("elapsed", part.Elapsed).
			Msg("answer does not match")
	default:
		log.Info().
			Int("part", n).
			Str("verdict", string(part.Verdict())).
			Dur("elapsed", part.Elapsed).
			Msg("part solved")
	}
}
