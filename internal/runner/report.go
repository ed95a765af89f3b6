package runner

import (
	"fmt"
	"io"
	"time"

	"github.com/povarna/advent-of-code/internal/input"
	"github.com/povarna/advent-of-code/internal/puzzle"
)

type Verdict string

const (
	VerdictUnchecked Verdict = "unchecked"
	VerdictCorrect   Verdict = "correct"
	VerdictIncorrect Verdict = "incorrect"
	VerdictFailed    Verdict = "failed"
)

type PartReport struct {
	Answer   string
	Err      error
	Elapsed  time.Duration
	Expected string
}

func (p PartReport) Verdict() Verdict {
	switch {
	case p.Err != nil:
		return VerdictFailed
	case p.Expected == "":
		return VerdictUnchecked
	case p.Answer == p.Expected:
		return VerdictCorrect
	default:
		return VerdictIncorrect
	}
}

type Report struct {
	ID        puzzle.ID
	Title     string
	Input     *input.Input
	ParseTime time.Duration
	Parts     [2]PartReport
}

// WriteAnswers writes one "Part N: <answer>" line per part.
func (r *Report) WriteAnswers(w io.Writer) error {
	for i, part := range r.Parts {
		var err error
		if part.Err != nil {
			_, err = fmt.Fprintf(w, "Part %d: error: %v\n", i+1, part.Err)
		} else {
			_, err = fmt.Fprintf(w, "Part %d: %s\n", i+1, part.Answer)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Failed reports whether any part errored or disagreed with its known answer.
func (r *Report) Failed() bool {
	for _, part := range r.Parts {
		switch part.Verdict() {
		case VerdictFailed, VerdictIncorrect:
			return true
		}
	}
	return false
}

func (r *Report) Total() time.Duration {
	total := r.ParseTime
	for _, part := range r.Parts {
		total += part.Elapsed
	}
	return total
}
