package puzzle

import (
	"fmt"
	"slices"
)

// Registry holds every known puzzle keyed by ID.
type Registry struct {
	puzzles map[ID]Puzzle
}

func NewRegistry(puzzles ...Puzzle) (*Registry, error) {
	r := &Registry{puzzles: make(map[ID]Puzzle, len(puzzles))}
	if err := r.Register(puzzles...); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Registry) Register(puzzles ...Puzzle) error {
	for _, p := range puzzles {
		if _, exists := r.puzzles[p.ID()]; exists {
			return fmt.Errorf("duplicate puzzle %s", p.ID())
		}
		r.puzzles[p.ID()] = p
	}

	return nil
}

func (r *Registry) Lookup(year, day int) (Puzzle, error) {
	id := ID{Year: year, Day: day}
	p, ok := r.puzzles[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrNotRegistered)
	}

	return p, nil
}

// List returns every puzzle ordered by year, then day.
func (r *Registry) List() []Puzzle {
	list := make([]Puzzle, 0, len(r.puzzles))
	for _, p := range r.puzzles {
		list = append(list, p)
	}

	slices.SortFunc(list, func(a, b Puzzle) int {
		if a.ID().Year != b.ID().Year {
			return a.ID().Year - b.ID().Year
		}
		return a.ID().Day - b.ID().Day
	})

	return list
}

func (r *Registry) Years() []int {
	var years []int
	for id := range r.puzzles {
		if !slices.Contains(years, id.Year) {
			years = append(years, id.Year)
		}
	}
	slices.Sort(years)

	return years
}
