package aoc2024day03

import (
	"regexp"
	"strconv"

	"github.com/povarna/advent-of-code/internal/puzzle"
)

var Puzzle = puzzle.New(2024, 3, "Mull It Over", parse, part1, part2)

var instructionRe = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`)

type Op int

const (
	Mul Op = iota
	Do
	Dont
)

type Instruction struct {
	Op   Op
	A, B int
}

// parse extracts the uncorrupted instructions; everything else is noise.
func parse(input string) ([]Instruction, error) {
	var program []Instruction
	for _, m := range instructionRe.FindAllStringSubmatch(input, -1) {
		switch m[0] {
		case "do()":
			program = append(program, Instruction{Op: Do})
		case "don't()":
			program = append(program, Instruction{Op: Dont})
		default:
			a, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, err
			}
			b, err := strconv.Atoi(m[2])
			if err != nil {
				return nil, err
			}
			program = append(program, Instruction{Op: Mul, A: a, B: b})
		}
	}

	return program, nil
}

func part1(program []Instruction) (any, error) {
	return run(program, false), nil
}

func part2(program []Instruction) (any, error) {
	return run(program, true), nil
}

func run(program []Instruction, conditionals bool) int {
	enabled := true
	total := 0
	for _, in := range program {
		switch in.Op {
		case Do:
			enabled = true
		case Dont:
			enabled = false
		case Mul:
			if enabled || !conditionals {
				total += in.A * in.B
			}
		}
	}
	return total
}
