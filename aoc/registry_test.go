package aoc

import (
	"testing"

	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	list := registry.List()
	assert.Len(t, list, len(All()))
	assert.Equal(t, []int{2020, 2021, 2022, 2023, 2024, 2025}, registry.Years())

	for _, p := range list {
		assert.NotEmpty(t, p.Title(), p.ID().String())
		assert.GreaterOrEqual(t, p.ID().Day, 1)
		assert.LessOrEqual(t, p.ID().Day, 25)
	}
}

func TestLookup(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	p, err := registry.Lookup(2023, 17)
	require.NoError(t, err)
	assert.Equal(t, "Clumsy Crucible", p.Title())

	_, err = registry.Lookup(2023, 24)
	assert.ErrorIs(t, err, puzzle.ErrNotRegistered)
}
