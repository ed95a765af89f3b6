package aoc2023day16

import (
	"fmt"
	"runtime"
	"slices"

	"github.com/povarna/advent-of-code/internal/grid"
	"github.com/povarna/advent-of-code/internal/puzzle"
	"golang.org/x/sync/errgroup"
)

var Puzzle = puzzle.New(2023, 16, "The Floor Will Be Lava", parse, part1, part2)

// Direction indexes grid.Directions: up, right, down, left.
const (
	up = iota
	right
	down
	left
)

type beam struct {
	pos grid.Point
	dir int
}

func parse(input string) (*grid.Grid, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return nil, err
	}

	var bad error
	g.Points(func(p grid.Point, b byte) {
		switch b {
		case '.', '/', '\\', '|', '-':
		default:
			if bad == nil {
				bad = fmt.Errorf("unexpected %q at %s", b, p)
			}
		}
	})
	return g, bad
}

func part1(contraption *grid.Grid) (any, error) {
	return energized(contraption, beam{grid.Point{X: 0, Y: 0}, right}), nil
}

// part2 tries every edge entry. Each simulation only reads the grid, so
// they run in parallel and write to their own result slot.
func part2(contraption *grid.Grid) (any, error) {
	var entries []beam
	for x := range contraption.Width {
		entries = append(entries,
			beam{grid.Point{X: x, Y: 0}, down},
			beam{grid.Point{X: x, Y: contraption.Height - 1}, up})
	}
	for y := range contraption.Height {
		entries = append(entries,
			beam{grid.Point{X: 0, Y: y}, right},
			beam{grid.Point{X: contraption.Width - 1, Y: y}, left})
	}

	results := make([]int, len(entries))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, entry := range entries {
		g.Go(func() error {
			results[i] = energized(contraption, entry)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return slices.Max(results), nil
}

// energized follows the beam and all its splits, counting the tiles any of
// them passes through.
func energized(g *grid.Grid, start beam) int {
	seen := make([]uint8, g.Width*g.Height)
	stack := []beam{start}
	count := 0

	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !g.InBounds(b.pos) {
			continue
		}
		idx := b.pos.Y*g.Width + b.pos.X
		mask := uint8(1) << b.dir
		if seen[idx]&mask != 0 {
			continue
		}
		if seen[idx] == 0 {
			count++
		}
		seen[idx] |= mask

		for _, dir := range deflect(g.At(b.pos), b.dir) {
			stack = append(stack, beam{b.pos.Add(grid.Directions[dir]), dir})
		}
	}

	return count
}

func deflect(tile byte, dir int) []int {
	switch tile {
	case '/':
		return []int{dir ^ 1}
	case '\\':
		return []int{3 - dir}
	case '|':
		if dir == left || dir == right {
			return []int{up, down}
		}
	case '-':
		if dir == up || dir == down {
			return []int{left, right}
		}
	}
	return []int{dir}
}
