package aoc2025day06

import (
	"errors"
	"fmt"
	"strings"

	"github.com/povarna/advent-of-code/internal/mathx"
	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
)

var Puzzle = puzzle.New(2025, 6, "Trash Compactor", parse, part1, part2)

// Problem is one vertical block of the worksheet. Rows keeps the block's
// text per number row, padded to the block width, since the two readings
// of a block disagree on how the digits form numbers.
type Problem struct {
	Rows     []string
	Multiply bool
}

func (p Problem) solve(numbers []int) int {
	if p.Multiply {
		return mathx.Product(numbers)
	}
	return mathx.Sum(numbers)
}

// rowNumbers reads each row as one number.
func (p Problem) rowNumbers() ([]int, error) {
	numbers := make([]int, 0, len(p.Rows))
	for _, row := range p.Rows {
		if strings.TrimSpace(row) == "" {
			continue
		}
		n, err := utils.ToInt(row)
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// columnNumbers reads each column top to bottom as one number, the way
// cephalopods write.
func (p Problem) columnNumbers() ([]int, error) {
	var numbers []int
	for col := len(p.Rows[0]) - 1; col >= 0; col-- {
		var sb strings.Builder
		for _, row := range p.Rows {
			if row[col] != ' ' {
				sb.WriteByte(row[col])
			}
		}
		if sb.Len() == 0 {
			continue
		}
		n, err := utils.ToInt(sb.String())
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// parse splits the worksheet into problems at columns that are blank on
// every line.
func parse(input string) ([]Problem, error) {
	lines := utils.Lines(input)
	if len(lines) < 2 {
		return nil, errors.New("worksheet needs number rows and an operator row")
	}

	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}
	for i, line := range lines {
		lines[i] = line + strings.Repeat(" ", width-len(line))
	}

	isSeparator := func(col int) bool {
		for _, line := range lines {
			if line[col] != ' ' {
				return false
			}
		}
		return true
	}

	numberRows, operators := lines[:len(lines)-1], lines[len(lines)-1]
	var problems []Problem
	for start := 0; start < width; {
		if isSeparator(start) {
			start++
			continue
		}
		end := start
		for end < width && !isSeparator(end) {
			end++
		}

		p, err := newProblem(numberRows, operators, start, end)
		if err != nil {
			return nil, fmt.Errorf("problem at column %d: %w", start+1, err)
		}
		problems = append(problems, p)
		start = end
	}

	if len(problems) == 0 {
		return nil, errors.New("no problems on worksheet")
	}
	return problems, nil
}

func newProblem(numberRows []string, operators string, start, end int) (Problem, error) {
	var p Problem
	switch op := strings.TrimSpace(operators[start:end]); op {
	case "*":
		p.Multiply = true
	case "+":
	default:
		return Problem{}, fmt.Errorf("invalid operator %q", op)
	}

	for _, row := range numberRows {
		block := row[start:end]
		if strings.Trim(block, " 0123456789") != "" {
			return Problem{}, fmt.Errorf("invalid number %q", strings.TrimSpace(block))
		}
		p.Rows = append(p.Rows, block)
	}
	return p, nil
}

func part1(problems []Problem) (any, error) {
	total := 0
	for _, p := range problems {
		numbers, err := p.rowNumbers()
		if err != nil {
			return nil, err
		}
		total += p.solve(numbers)
	}

	return total, nil
}

func part2(problems []Problem) (any, error) {
	total := 0
	for _, p := range problems {
		numbers, err := p.columnNumbers()
		if err != nil {
			return nil, err
		}
		total += p.solve(numbers)
	}

	return total, nil
}
