package aoc2023day20

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/povarna/advent-of-code/internal/mathx"
	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
)

var Puzzle = puzzle.New(2023, 20, "Pulse Propagation", parse, part1, part2)

const (
	broadcaster = "broadcaster"
	finalModule = "rx"
	maxPresses  = 1 << 20
)

type Kind int

const (
	Broadcast Kind = iota
	FlipFlop
	Conjunction
)

type Module struct {
	Name    string
	Kind    Kind
	Inputs  []string
	Outputs []string
}

// Network maps names to modules. Destinations without a definition (like
// rx) only receive pulses.
type Network map[string]*Module

func parse(input string) (Network, error) {
	net := Network{}
	for i, line := range utils.Lines(input) {
		name, targets, ok := strings.Cut(line, " -> ")
		if !ok {
			return nil, fmt.Errorf("line %d: missing '->'", i+1)
		}

		m := &Module{Name: name}
		switch {
		case name == broadcaster:
			m.Kind = Broadcast
		case strings.HasPrefix(name, "%"):
			m.Kind, m.Name = FlipFlop, name[1:]
		case strings.HasPrefix(name, "&"):
			m.Kind, m.Name = Conjunction, name[1:]
		default:
			return nil, fmt.Errorf("line %d: unknown module %q", i+1, name)
		}
		if m.Name == "" {
			return nil, fmt.Errorf("line %d: module without a name", i+1)
		}
		if _, dup := net[m.Name]; dup {
			return nil, fmt.Errorf("line %d: module %s defined twice", i+1, m.Name)
		}

		for target := range strings.SplitSeq(targets, ",") {
			m.Outputs = append(m.Outputs, strings.TrimSpace(target))
		}
		net[m.Name] = m
	}

	if _, ok := net[broadcaster]; !ok {
		return nil, errors.New("no broadcaster module")
	}

	names := make([]string, 0, len(net))
	for name := range net {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		for _, target := range net[name].Outputs {
			if dest, ok := net[target]; ok {
				dest.Inputs = append(dest.Inputs, name)
			}
		}
	}

	return net, nil
}

// feeders returns the modules with name among their outputs, sorted.
func (n Network) feeders(name string) []string {
	var found []string
	for _, m := range n {
		if slices.Contains(m.Outputs, name) {
			found = append(found, m.Name)
		}
	}
	slices.Sort(found)
	return found
}

type pulse struct {
	from, to string
	high     bool
}

// machine is the mutable state of a network; the parsed Network is never
// modified.
type machine struct {
	net    Network
	on     map[string]bool
	memory map[string]map[string]bool
}

func newMachine(net Network) *machine {
	m := &machine{net: net, on: map[string]bool{}, memory: map[string]map[string]bool{}}
	for name, mod := range net {
		if mod.Kind == Conjunction {
			m.memory[name] = make(map[string]bool, len(mod.Inputs))
		}
	}
	return m
}

// press sends one low pulse to the broadcaster and processes pulses in the
// order they are sent. observe sees every pulse.
func (m *machine) press(observe func(pulse)) {
	queue := []pulse{{from: "button", to: broadcaster}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		observe(p)

		mod, ok := m.net[p.to]
		if !ok {
			continue
		}

		var out bool
		switch mod.Kind {
		case Broadcast:
			out = p.high
		case FlipFlop:
			if p.high {
				continue
			}
			m.on[mod.Name] = !m.on[mod.Name]
			out = m.on[mod.Name]
		case Conjunction:
			mem := m.memory[mod.Name]
			mem[p.from] = p.high
			out = false
			for _, in := range mod.Inputs {
				if !mem[in] {
					out = true
					break
				}
			}
		}

		for _, target := range mod.Outputs {
			queue = append(queue, pulse{from: mod.Name, to: target, high: out})
		}
	}
}

func part1(net Network) (any, error) {
	m := newMachine(net)
	low, high := 0, 0
	for range 1000 {
		m.press(func(p pulse) {
			if p.high {
				high++
			} else {
				low++
			}
		})
	}

	return low * high, nil
}

// part2 counts presses until rx receives a low pulse. When rx is fed by a
// single conjunction, that happens once all of its inputs send high on the
// same press; each input does so on a fixed cycle, so the answer is the
// LCM of the first press each input sends high.
func part2(net Network) (any, error) {
	feeders := net.feeders(finalModule)
	if len(feeders) == 0 {
		return nil, fmt.Errorf("no module feeds %s", finalModule)
	}

	if len(feeders) == 1 && net[feeders[0]].Kind == Conjunction {
		return cycleLengths(net, net[feeders[0]])
	}

	m := newMachine(net)
	for presses := 1; presses <= maxPresses; presses++ {
		done := false
		m.press(func(p pulse) {
			if p.to == finalModule && !p.high {
				done = true
			}
		})
		if done {
			return presses, nil
		}
	}

	return nil, puzzle.ErrNoSolution
}

func cycleLengths(net Network, conj *Module) (int, error) {
	first := make(map[string]int, len(conj.Inputs))
	m := newMachine(net)

	for presses := 1; presses <= maxPresses && len(first) < len(conj.Inputs); presses++ {
		m.press(func(p pulse) {
			if p.to == conj.Name && p.high {
				if _, ok := first[p.from]; !ok {
					first[p.from] = presses
				}
			}
		})
	}

	if len(first) < len(conj.Inputs) {
		return 0, puzzle.ErrNoSolution
	}

	cycles := make([]int, 0, len(first))
	for _, n := range first {
		cycles = append(cycles, n)
	}
	return mathx.LCMAll(cycles...), nil
}
