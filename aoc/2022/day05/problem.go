package aoc2022day05

import (
	"errors"
	"fmt"
	"strings"

	"github.com/povarna/advent-of-code/internal/puzzle"
)

var Puzzle = puzzle.New(2022, 5, "Supply Stacks", parse, part1, part2)

type Move struct {
	Count, From, To int
}

// Cargo holds the starting stacks, bottom crate first, and the
// rearrangement procedure.
type Cargo struct {
	stacks [][]byte
	moves  []Move
}

func parse(input string) (*Cargo, error) {
	drawing, procedure, ok := strings.Cut(strings.TrimLeft(input, "\n"), "\n\n")
	if !ok {
		return nil, errors.New("missing blank line between drawing and procedure")
	}

	rows := strings.Split(drawing, "\n")
	labels := strings.Fields(rows[len(rows)-1])
	if len(labels) == 0 {
		return nil, errors.New("missing stack labels")
	}

	cargo := &Cargo{stacks: make([][]byte, len(labels))}
	for r := len(rows) - 2; r >= 0; r-- {
		row := rows[r]
		for i := range cargo.stacks {
			col := 1 + 4*i
			if col >= len(row) || row[col] == ' ' {
				continue
			}
			if row[col-1] != '[' {
				return nil, fmt.Errorf("drawing row %d: malformed crate at stack %d", r+1, i+1)
			}
			cargo.stacks[i] = append(cargo.stacks[i], row[col])
		}
	}

	for i, line := range strings.Split(strings.TrimSpace(procedure), "\n") {
		var m Move
		if _, err := fmt.Sscanf(line, "move %d from %d to %d", &m.Count, &m.From, &m.To); err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		if m.From < 1 || m.From > len(labels) || m.To < 1 || m.To > len(labels) {
			return nil, fmt.Errorf("move %d: stack out of range", i+1)
		}
		m.From--
		m.To--
		cargo.moves = append(cargo.moves, m)
	}

	return cargo, nil
}

func part1(cargo *Cargo) (any, error) {
	return cargo.rearrange(false)
}

func part2(cargo *Cargo) (any, error) {
	return cargo.rearrange(true)
}

// rearrange applies the procedure to a copy of the stacks and returns the
// top crate of each. The CrateMover 9001 lifts several crates at once, so
// their order is kept.
func (c *Cargo) rearrange(keepOrder bool) (string, error) {
	stacks := make([][]byte, len(c.stacks))
	for i, s := range c.stacks {
		stacks[i] = append([]byte(nil), s...)
	}

	for i, m := range c.moves {
		from := stacks[m.From]
		if m.Count > len(from) {
			return "", fmt.Errorf("move %d: only %d crates on stack %d", i+1, len(from), m.From+1)
		}

		lifted := append([]byte(nil), from[len(from)-m.Count:]...)
		if !keepOrder {
			for l, r := 0, len(lifted)-1; l < r; l, r = l+1, r-1 {
				lifted[l], lifted[r] = lifted[r], lifted[l]
			}
		}

		stacks[m.From] = from[:len(from)-m.Count]
		stacks[m.To] = append(stacks[m.To], lifted...)
	}

	var sb strings.Builder
	for _, s := range stacks {
		if len(s) > 0 {
			sb.WriteByte(s[len(s)-1])
		}
	}

	return sb.String(), nil
}
