package aoc2023day25

import (
	"errors"
	"fmt"
	"strings"

	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
)

const cutSize = 3

var Puzzle = puzzle.New(2023, 25, "Snowverload", parse, part1, puzzle.Unimplemented[*Graph])

// Graph is an undirected graph of components with nodes numbered densely.
type Graph struct {
	names []string
	adj   [][]int
}

func (g *Graph) node(name string, index map[string]int) int {
	if i, ok := index[name]; ok {
		return i
	}
	index[name] = len(g.names)
	g.names = append(g.names, name)
	g.adj = append(g.adj, nil)
	return index[name]
}

func parse(input string) (*Graph, error) {
	g := &Graph{}
	index := map[string]int{}

	for i, line := range utils.Lines(input) {
		name, others, ok := strings.Cut(line, ":")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("line %d: malformed %q", i+1, line)
		}
		from := g.node(strings.TrimSpace(name), index)
		for _, other := range strings.Fields(others) {
			to := g.node(other, index)
			g.adj[from] = append(g.adj[from], to)
			g.adj[to] = append(g.adj[to], from)
		}
	}

	if len(g.names) < 2 {
		return nil, errors.New("graph needs at least two components")
	}
	return g, nil
}

// part1 fixes node 0 as the source and tries every other node as sink.
// A sink on the far side of the three-wire cut has a max flow of exactly
// three; the nodes still reachable from the source in the residual graph
// form one side of the cut.
func part1(g *Graph) (any, error) {
	for sink := 1; sink < len(g.names); sink++ {
		side, ok := g.cut(0, sink, cutSize)
		if ok {
			return side * (len(g.names) - side), nil
		}
	}

	return nil, puzzle.ErrNoSolution
}

type edge struct{ from, to int }

// cut runs Edmonds-Karp with unit capacities in both directions, stopping
// once the flow exceeds limit. It reports the size of the source side when
// the max flow equals limit.
func (g *Graph) cut(source, sink, limit int) (int, bool) {
	flow := map[edge]int{}
	residual := func(from, to int) int {
		return 1 - flow[edge{from, to}] + flow[edge{to, from}]
	}

	for total := 0; ; total++ {
		parent, reached := g.bfs(source, sink, residual)
		if !reached {
			if total != limit {
				return 0, false
			}
			size := 0
			for _, p := range parent {
				if p != -1 {
					size++
				}
			}
			return size, true
		}
		if total == limit {
			return 0, false
		}

		for v := sink; v != source; v = parent[v] {
			u := parent[v]
			if flow[edge{v, u}] > 0 {
				flow[edge{v, u}]--
			} else {
				flow[edge{u, v}]++
			}
		}
	}
}

// bfs finds a shortest augmenting path. parent[v] is -1 for unreached
// nodes; the source is its own parent.
func (g *Graph) bfs(source, sink int, residual func(from, to int) int) ([]int, bool) {
	parent := make([]int, len(g.names))
	for i := range parent {
		parent[i] = -1
	}
	parent[source] = source

	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range g.adj[u] {
			if parent[v] != -1 || residual(u, v) <= 0 {
				continue
			}
			parent[v] = u
			if v == sink {
				return parent, true
			}
			queue = append(queue, v)
		}
	}

	return parent, false
}
