package aoc2024day04

import (
	"github.com/povarna/advent-of-code/internal/grid"
	"github.com/povarna/advent-of-code/internal/puzzle"
)

var Puzzle = puzzle.New(2024, 4, "Ceres Search", grid.Parse, part1, part2)

var allDirections = func() []grid.Point {
	var dirs []grid.Point
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx != 0 || dy != 0 {
				dirs = append(dirs, grid.Point{X: dx, Y: dy})
			}
		}
	}
	return dirs
}()

func part1(g *grid.Grid) (any, error) {
	const word = "XMAS"

	count := 0
	g.Points(func(p grid.Point, b byte) {
		if b != word[0] {
			return
		}
		for _, dir := range allDirections {
			if spells(g, p, dir, word) {
				count++
			}
		}
	})

	return count, nil
}

// part2 counts A's whose two diagonals both read MAS in either direction.
func part2(g *grid.Grid) (any, error) {
	count := 0
	g.Points(func(p grid.Point, b byte) {
		if b != 'A' {
			return
		}
		diagonal := func(a, b grid.Point) bool {
			x, y := g.At(p.Add(a)), g.At(p.Add(b))
			return (x == 'M' && y == 'S') || (x == 'S' && y == 'M')
		}
		if diagonal(grid.Point{X: -1, Y: -1}, grid.Point{X: 1, Y: 1}) &&
			diagonal(grid.Point{X: 1, Y: -1}, grid.Point{X: -1, Y: 1}) {
			count++
		}
	})

	return count, nil
}

func spells(g *grid.Grid, start, dir grid.Point, word string) bool {
	p := start
	for i := range len(word) {
		if g.At(p) != word[i] {
			return false
		}
		p = p.Add(dir)
	}
	return true
}
