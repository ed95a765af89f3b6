package aoc2023day14

import (
	"fmt"

	"github.com/povarna/advent-of-code/internal/grid"
	"github.com/povarna/advent-of-code/internal/puzzle"
)

const spinCycles = 1_000_000_000

var Puzzle = puzzle.New(2023, 14, "Parabolic Reflector Dish", parse, part1, part2)

func parse(input string) (*grid.Grid, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return nil, err
	}

	var bad error
	g.Points(func(p grid.Point, b byte) {
		if b != 'O' && b != '#' && b != '.' && bad == nil {
			bad = fmt.Errorf("unexpected %q at %s", b, p)
		}
	})
	return g, bad
}

func part1(platform *grid.Grid) (any, error) {
	g := platform.Clone()
	tilt(g, grid.Up)
	return load(g), nil
}

// part2 spins until a platform state repeats, then skips ahead by whole
// cycles to the last few spins.
func part2(platform *grid.Grid) (any, error) {
	g := platform.Clone()
	seen := map[string]int{}

	for i := 0; i < spinCycles; i++ {
		key := g.String()
		if first, ok := seen[key]; ok {
			period := i - first
			for range (spinCycles - i) % period {
				spin(g)
			}
			return load(g), nil
		}
		seen[key] = i
		spin(g)
	}

	return load(g), nil
}

func spin(g *grid.Grid) {
	for _, dir := range []grid.Point{grid.Up, grid.Left, grid.Down, grid.Right} {
		tilt(g, dir)
	}
}

// tilt rolls every round rock as far as it goes towards dir. Each lane is a
// column (north, south) or row (west, east) read starting from the side the
// rocks roll to.
func tilt(g *grid.Grid, dir grid.Point) {
	lanes, length := g.Width, g.Height
	if dir == grid.Left || dir == grid.Right {
		lanes, length = g.Height, g.Width
	}

	at := func(lane, i int) grid.Point {
		switch dir {
		case grid.Up:
			return grid.Point{X: lane, Y: i}
		case grid.Down:
			return grid.Point{X: lane, Y: g.Height - 1 - i}
		case grid.Left:
			return grid.Point{X: i, Y: lane}
		default:
			return grid.Point{X: g.Width - 1 - i, Y: lane}
		}
	}

	for lane := range lanes {
		stop := 0
		for i := range length {
			switch g.At(at(lane, i)) {
			case '#':
				stop = i + 1
			case 'O':
				g.Set(at(lane, i), '.')
				g.Set(at(lane, stop), 'O')
				stop++
			}
		}
	}
}

// load weighs each round rock by its distance from the south edge.
func load(g *grid.Grid) int {
	total := 0
	g.Points(func(p grid.Point, b byte) {
		if b == 'O' {
			total += g.Height - p.Y
		}
	})
	return total
}
