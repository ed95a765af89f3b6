package aoc2023day03

import (
	"github.com/povarna/advent-of-code/internal/grid"
	"github.com/povarna/advent-of-code/internal/puzzle"
)

var Puzzle = puzzle.New(2023, 3, "Gear Ratios", parse, part1, part2)

// Number is a part number candidate and the cells it covers on one row.
type Number struct {
	Value int
	Row   int
	Start int
	End   int
}

// adjacent calls fn for every cell touching the number, diagonals included.
func (n Number) adjacent(fn func(p grid.Point)) {
	for x := n.Start - 1; x <= n.End+1; x++ {
		fn(grid.Point{X: x, Y: n.Row - 1})
		fn(grid.Point{X: x, Y: n.Row + 1})
	}
	fn(grid.Point{X: n.Start - 1, Y: n.Row})
	fn(grid.Point{X: n.End + 1, Y: n.Row})
}

type Schematic struct {
	grid    *grid.Grid
	numbers []Number
}

func parse(input string) (*Schematic, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return nil, err
	}

	s := &Schematic{grid: g}
	for y := range g.Height {
		row := g.Row(y)
		for x := 0; x < len(row); x++ {
			if !isDigit(row[x]) {
				continue
			}
			n := Number{Row: y, Start: x}
			for ; x < len(row) && isDigit(row[x]); x++ {
				n.Value = n.Value*10 + int(row[x]-'0')
			}
			n.End = x - 1
			s.numbers = append(s.numbers, n)
		}
	}

	return s, nil
}

func part1(s *Schematic) (any, error) {
	total := 0
	for _, n := range s.numbers {
		hasSymbol := false
		n.adjacent(func(p grid.Point) {
			if isSymbol(s.grid.At(p)) {
				hasSymbol = true
			}
		})
		if hasSymbol {
			total += n.Value
		}
	}

	return total, nil
}

func part2(s *Schematic) (any, error) {
	gears := make(map[grid.Point][]int)
	for _, n := range s.numbers {
		n.adjacent(func(p grid.Point) {
			if s.grid.At(p) == '*' {
				gears[p] = append(gears[p], n.Value)
			}
		})
	}

	total := 0
	for _, nums := range gears {
		if len(nums) == 2 {
			total += nums[0] * nums[1]
		}
	}

	return total, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// isSymbol treats out of bounds (0) and '.' as empty.
func isSymbol(b byte) bool {
	return b != 0 && b != '.' && !isDigit(b)
}
