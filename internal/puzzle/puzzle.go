// Package puzzle defines what a single Advent of Code day looks like to the
// rest of the program: something that parses its input once and then answers
// two parts from the parsed model.
package puzzle

//go:generate mockgen -destination=../runner/mocks/mock_puzzle.go -package=mocks github.com/povarna/advent-of-code/internal/puzzle Puzzle,Parsed

import (
	"errors"
	"fmt"
)

var (
	// ErrUnimplemented is returned by a part that has no solution yet.
	ErrUnimplemented = errors.New("not yet implemented")
	// ErrNoSolution is returned when a search finishes without an answer.
	ErrNoSolution = errors.New("no solution found")
	// ErrNotRegistered is returned when no puzzle exists for a year and day.
	ErrNotRegistered = errors.New("puzzle not registered")
)

// ID identifies a puzzle by year and day.
type ID struct {
	Year int
	Day  int
}

func (id ID) String() string {
	return fmt.Sprintf("%04d/%02d", id.Year, id.Day)
}

// Puzzle parses a day's input into a model both parts can be computed from.
type Puzzle interface {
	ID() ID
	Title() string
	Parse(input string) (Parsed, error)
}

// Parsed is the model produced by Puzzle.Parse.
type Parsed interface {
	Part1() (string, error)
	Part2() (string, error)
}

// ParseError wraps any failure to turn the input text into a model.
type ParseError struct {
	ID  ID
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.ID, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
