// Package grid is a rectangular grid of bytes addressed by zero-based points,
// x growing right and y growing down.
package grid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/povarna/advent-of-code/internal/mathx"
)

// ErrRagged is returned when rows of the input have different widths.
var ErrRagged = errors.New("rows have different widths")

type Point struct {
	X, Y int
}

var (
	Up    = Point{0, -1}
	Down  = Point{0, 1}
	Left  = Point{-1, 0}
	Right = Point{1, 0}
)

// Directions lists the four orthogonal directions clockwise from Up.
var Directions = [4]Point{Up, Right, Down, Left}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Scale(n int) Point {
	return Point{p.X * n, p.Y * n}
}

func (p Point) Manhattan(q Point) int {
	return mathx.Abs(p.X-q.X) + mathx.Abs(p.Y-q.Y)
}

// Neighbours returns the eight surrounding points, bounds unchecked.
func (p Point) Neighbours() [8]Point {
	return [8]Point{
		{p.X - 1, p.Y - 1}, {p.X, p.Y - 1}, {p.X + 1, p.Y - 1},
		{p.X - 1, p.Y}, {p.X + 1, p.Y},
		{p.X - 1, p.Y + 1}, {p.X, p.Y + 1}, {p.X + 1, p.Y + 1},
	}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

type Grid struct {
	Width  int
	Height int
	cells  []byte
}

func New(width, height int, fill byte) *Grid {
	cells := make([]byte, width*height)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid{Width: width, Height: height, cells: cells}
}

// Parse reads one row per line. Blank leading and trailing lines are ignored.
func Parse(input string) (*Grid, error) {
	input = strings.Trim(input, "\n")
	if input == "" {
		return nil, errors.New("empty grid")
	}

	lines := strings.Split(input, "\n")
	g := &Grid{Width: len(lines[0]), Height: len(lines)}
	g.cells = make([]byte, 0, g.Width*g.Height)
	for y, line := range lines {
		if len(line) != g.Width {
			return nil, fmt.Errorf("row %d: %w", y+1, ErrRagged)
		}
		g.cells = append(g.cells, line...)
	}

	return g, nil
}

func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the byte at p, or 0 when p is out of bounds.
func (g *Grid) At(p Point) byte {
	if !g.InBounds(p) {
		return 0
	}
	return g.cells[p.Y*g.Width+p.X]
}

func (g *Grid) Set(p Point, b byte) {
	g.cells[p.Y*g.Width+p.X] = b
}

func (g *Grid) Row(y int) []byte {
	return g.cells[y*g.Width : (y+1)*g.Width]
}

// Find returns the first point holding b in row-major order.
func (g *Grid) Find(b byte) (Point, bool) {
	for i, c := range g.cells {
		if c == b {
			return Point{i % g.Width, i / g.Width}, true
		}
	}
	return Point{}, false
}

// Points calls fn for every point in row-major order.
func (g *Grid) Points(fn func(p Point, b byte)) {
	for i, c := range g.cells {
		fn(Point{i % g.Width, i / g.Width}, c)
	}
}

func (g *Grid) Count(b byte) int {
	n := 0
	for _, c := range g.cells {
		if c == b {
			n++
		}
	}
	return n
}

func (g *Grid) Clone() *Grid {
	cells := make([]byte, len(g.cells))
	copy(cells, g.cells)
	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}

func (g *Grid) String() string {
	var sb strings.Builder
	for y := range g.Height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(g.Row(y))
	}
	return sb.String()
}
