package aoc2023day17

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/povarna/advent-of-code/internal/grid"
	"github.com/povarna/advent-of-code/internal/puzzle"
)

var Puzzle = puzzle.New(2023, 17, "Clumsy Crucible", parse, part1, part2)

// City holds the heat loss of every block.
type City struct {
	Width, Height int
	loss          []int
}

func (c *City) at(p grid.Point) int {
	return c.loss[p.Y*c.Width+p.X]
}

func parse(input string) (*City, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return nil, err
	}

	c := &City{Width: g.Width, Height: g.Height, loss: make([]int, 0, g.Width*g.Height)}
	var bad error
	g.Points(func(p grid.Point, b byte) {
		if b < '0' || b > '9' {
			if bad == nil {
				bad = fmt.Errorf("block %s: %q is not a digit", p, b)
			}
			return
		}
		c.loss = append(c.loss, int(b-'0'))
	})
	if bad != nil {
		return nil, bad
	}

	return c, nil
}

func part1(c *City) (any, error) {
	return c.minHeatLoss(1, 3)
}

func part2(c *City) (any, error) {
	return c.minHeatLoss(4, 10)
}

// The crucible always turns after a straight run, so a search state only
// needs the axis it last moved along: every edge is a turn followed by a run
// of minRun..maxRun blocks.
const (
	vertical = iota
	horizontal
)

type state struct {
	pos  grid.Point
	axis int
}

type item struct {
	state
	cost int
}

type queue []item

func (q queue) Len() int { return len(q) }
func (q queue) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q queue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *queue) Push(x any) { *q = append(*q, x.(item)) }
func (q *queue) Pop() any {
	old := *q
	it := old[len(old)-1]
	*q = old[:len(old)-1]
	return it
}

func (c *City) minHeatLoss(minRun, maxRun int) (int, error) {
	target := grid.Point{X: c.Width - 1, Y: c.Height - 1}
	dist := make([]int, c.Width*c.Height*2)
	for i := range dist {
		dist[i] = math.MaxInt
	}
	index := func(s state) int {
		return (s.pos.Y*c.Width+s.pos.X)*2 + s.axis
	}

	q := &queue{}
	for _, axis := range []int{vertical, horizontal} {
		s := state{grid.Point{}, axis}
		dist[index(s)] = 0
		heap.Push(q, item{s, 0})
	}

	for q.Len() > 0 {
		cur := heap.Pop(q).(item)
		if cur.cost > dist[index(cur.state)] {
			continue
		}
		if cur.pos == target {
			return cur.cost, nil
		}

		turns := [2]grid.Point{grid.Left, grid.Right}
		nextAxis := horizontal
		if cur.axis == horizontal {
			turns = [2]grid.Point{grid.Up, grid.Down}
			nextAxis = vertical
		}

		for _, dir := range turns {
			cost := cur.cost
			pos := cur.pos
			for run := 1; run <= maxRun; run++ {
				pos = pos.Add(dir)
				if pos.X < 0 || pos.X >= c.Width || pos.Y < 0 || pos.Y >= c.Height {
					break
				}
				cost += c.at(pos)
				if run < minRun {
					continue
				}

				next := state{pos, nextAxis}
				if cost < dist[index(next)] {
					dist[index(next)] = cost
					heap.Push(q, item{next, cost})
				}
			}
		}
	}

	return 0, puzzle.ErrNoSolution
}
