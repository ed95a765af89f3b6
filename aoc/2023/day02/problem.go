package aoc2023day02

import (
	"fmt"
	"strings"

	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
)

var Puzzle = puzzle.New(2023, 2, "Cube Conundrum", parse, part1, part2)

type Cubes struct {
	Red, Green, Blue int
}

type Game struct {
	ID      int
	Reveals []Cubes
}

// Minimum is the smallest bag that makes every reveal possible.
func (g Game) Minimum() Cubes {
	var m Cubes
	for _, r := range g.Reveals {
		m.Red = max(m.Red, r.Red)
		m.Green = max(m.Green, r.Green)
		m.Blue = max(m.Blue, r.Blue)
	}
	return m
}

func parse(input string) ([]Game, error) {
	var games []Game
	for i, line := range utils.Lines(input) {
		game, err := parseGame(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		games = append(games, game)
	}

	return games, nil
}

func parseGame(line string) (Game, error) {
	header, body, ok := strings.Cut(line, ": ")
	if !ok {
		return Game{}, fmt.Errorf("missing game header in %q", line)
	}

	var g Game
	if _, err := fmt.Sscanf(header, "Game %d", &g.ID); err != nil {
		return Game{}, fmt.Errorf("header: %w", err)
	}

	for reveal := range strings.SplitSeq(body, ";") {
		var c Cubes
		for draw := range strings.SplitSeq(reveal, ",") {
			var n int
			var colour string
			if _, err := fmt.Sscanf(strings.TrimSpace(draw), "%d %s", &n, &colour); err != nil {
				return Game{}, fmt.Errorf("draw %q: %w", draw, err)
			}
			switch colour {
			case "red":
				c.Red += n
			case "green":
				c.Green += n
			case "blue":
				c.Blue += n
			default:
				return Game{}, fmt.Errorf("unknown colour %q", colour)
			}
		}
		g.Reveals = append(g.Reveals, c)
	}

	return g, nil
}

func part1(games []Game) (any, error) {
	bag := Cubes{Red: 12, Green: 13, Blue: 14}

	total := 0
	for _, g := range games {
		m := g.Minimum()
		if m.Red <= bag.Red && m.Green <= bag.Green && m.Blue <= bag.Blue {
			total += g.ID
		}
	}

	return total, nil
}

func part2(games []Game) (any, error) {
	total := 0
	for _, g := range games {
		m := g.Minimum()
		total += m.Red * m.Green * m.Blue
	}

	return total, nil
}
