package aoc2023day08

import (
	"errors"
	"fmt"
	"strings"

	"github.com/povarna/advent-of-code/internal/mathx"
	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
)

var Puzzle = puzzle.New(2023, 8, "Haunted Wasteland", parse, part1, part2)

type Network struct {
	Instructions string
	Nodes        map[string][2]string
}

func parse(input string) (*Network, error) {
	blocks := utils.Blocks(input)
	if len(blocks) != 2 {
		return nil, errors.New("expected instructions and a node list separated by a blank line")
	}

	n := &Network{Instructions: strings.TrimSpace(blocks[0]), Nodes: make(map[string][2]string)}
	if n.Instructions == "" || strings.Trim(n.Instructions, "LR") != "" {
		return nil, fmt.Errorf("invalid instructions %q", n.Instructions)
	}

	for _, line := range strings.Split(blocks[1], "\n") {
		name, rest, ok := strings.Cut(line, " = (")
		if !ok {
			return nil, fmt.Errorf("malformed node %q", line)
		}
		left, right, ok := strings.Cut(strings.TrimSuffix(rest, ")"), ", ")
		if !ok {
			return nil, fmt.Errorf("malformed node %q", line)
		}
		n.Nodes[name] = [2]string{left, right}
	}

	for name, next := range n.Nodes {
		for _, target := range next {
			if _, ok := n.Nodes[target]; !ok {
				return nil, fmt.Errorf("node %s points to unknown node %s", name, target)
			}
		}
	}

	return n, nil
}

// steps follows the instructions from start until done accepts a node.
// A walk longer than every (node, instruction) pair is cycling forever.
func (n *Network) steps(start string, done func(string) bool) (int, error) {
	limit := len(n.Nodes) * len(n.Instructions)
	current := start
	for step := 0; step <= limit; step++ {
		if done(current) {
			return step, nil
		}
		side := 0
		if n.Instructions[step%len(n.Instructions)] == 'R' {
			side = 1
		}
		current = n.Nodes[current][side]
	}

	return 0, fmt.Errorf("from %s: %w", start, puzzle.ErrNoSolution)
}

func part1(n *Network) (any, error) {
	if _, ok := n.Nodes["AAA"]; !ok {
		return nil, errors.New("network has no AAA node")
	}

	return n.steps("AAA", func(node string) bool { return node == "ZZZ" })
}

// Every ghost settles into a cycle whose length equals its first arrival,
// so they all meet at the least common multiple.
func part2(n *Network) (any, error) {
	var cycles []int
	for name := range n.Nodes {
		if !strings.HasSuffix(name, "A") {
			continue
		}
		steps, err := n.steps(name, func(node string) bool { return strings.HasSuffix(node, "Z") })
		if err != nil {
			return nil, err
		}
		cycles = append(cycles, steps)
	}

	if len(cycles) == 0 {
		return nil, errors.New("network has no starting nodes")
	}
	return mathx.LCMAll(cycles...), nil
}
