package aoc2023day10

import (
	"errors"
	"fmt"

	"github.com/povarna/advent-of-code/internal/grid"
	"github.com/povarna/advent-of-code/internal/mathx"
	"github.com/povarna/advent-of-code/internal/puzzle"
)

var Puzzle = puzzle.New(2023, 10, "Pipe Maze", parse, part1, part2)

var pipes = map[byte][2]grid.Point{
	'|': {grid.Up, grid.Down},
	'-': {grid.Left, grid.Right},
	'L': {grid.Up, grid.Right},
	'J': {grid.Up, grid.Left},
	'7': {grid.Down, grid.Left},
	'F': {grid.Down, grid.Right},
}

func connects(tile byte, dir grid.Point) bool {
	ends, ok := pipes[tile]
	return ok && (ends[0] == dir || ends[1] == dir)
}

// parse walks the main loop and returns its tiles in order, starting at S.
func parse(input string) ([]grid.Point, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return nil, err
	}

	start, ok := g.Find('S')
	if !ok {
		return nil, errors.New("no starting tile")
	}

	for _, dir := range grid.Directions {
		if !connects(g.At(start.Add(dir)), dir.Scale(-1)) {
			continue
		}
		if loop, err := walk(g, start, dir); err == nil {
			return loop, nil
		}
	}

	return nil, errors.New("starting tile is not part of a loop")
}

func walk(g *grid.Grid, start, dir grid.Point) ([]grid.Point, error) {
	loop := []grid.Point{start}
	pos := start.Add(dir)

	for pos != start {
		tile := g.At(pos)
		ends, ok := pipes[tile]
		if !ok {
			return nil, fmt.Errorf("loop broken at %s", pos)
		}

		back := dir.Scale(-1)
		switch back {
		case ends[0]:
			dir = ends[1]
		case ends[1]:
			dir = ends[0]
		default:
			return nil, fmt.Errorf("pipe at %s does not connect", pos)
		}

		loop = append(loop, pos)
		pos = pos.Add(dir)
	}

	return loop, nil
}

func part1(loop []grid.Point) (any, error) {
	return len(loop) / 2, nil
}

// Enclosed tiles follow from the shoelace area and Pick's theorem:
// A = i + b/2 - 1.
func part2(loop []grid.Point) (any, error) {
	area2 := 0
	for i, p := range loop {
		q := loop[(i+1)%len(loop)]
		area2 += p.X*q.Y - q.X*p.Y
	}
	area2 = mathx.Abs(area2)

	return (area2-len(loop))/2 + 1, nil
}
