package puzzle

import "fmt"

// Day adapts a typed parse function and two typed part functions to the
// Puzzle interface.
type Day[T any] struct {
	id    ID
	title string
	parse func(string) (T, error)
	part1 func(T) (any, error)
	part2 func(T) (any, error)
}

// New builds a Day. Part answers are rendered with fmt.Sprint.
func New[T any](year, day int, title string, parse func(string) (T, error), part1, part2 func(T) (any, error)) *Day[T] {
	return &Day[T]{
		id:    ID{Year: year, Day: day},
		title: title,
		parse: parse,
		part1: part1,
		part2: part2,
	}
}

func (d *Day[T]) ID() ID {
	return d.id
}

func (d *Day[T]) Title() string {
	return d.title
}

func (d *Day[T]) Parse(input string) (Parsed, error) {
	model, err := d.parse(input)
	if err != nil {
		return nil, &ParseError{ID: d.id, Err: err}
	}

	return &parsed[T]{day: d, model: model}, nil
}

type parsed[T any] struct {
	day   *Day[T]
	model T
}

func (p *parsed[T]) Part1() (string, error) {
	return answer(p.day.part1, p.model)
}

func (p *parsed[T]) Part2() (string, error) {
	return answer(p.day.part2, p.model)
}

func answer[T any](part func(T) (any, error), model T) (string, error) {
	if part == nil {
		return "", ErrUnimplemented
	}

	v, err := part(model)
	if err != nil {
		return "", err
	}

	return fmt.Sprint(v), nil
}

// Unimplemented is a part function for a part with no solution.
func Unimplemented[T any](T) (any, error) {
	return nil, ErrUnimplemented
}
