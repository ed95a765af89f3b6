package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stub(year, day int) Puzzle {
	return New[string](year, day, "stub", func(s string) (string, error) { return s, nil }, nil, nil)
}

func TestRegistry_LookupAndList(t *testing.T) {
	r, err := NewRegistry(stub(2023, 17), stub(2022, 1), stub(2023, 2))
	require.NoError(t, err)

	p, err := r.Lookup(2023, 17)
	require.NoError(t, err)
	assert.Equal(t, ID{Year: 2023, Day: 17}, p.ID())

	var ids []string
	for _, p := range r.List() {
		ids = append(ids, p.ID().String())
	}
	assert.Equal(t, []string{"2022/01", "2023/02", "2023/17"}, ids)
	assert.Equal(t, []int{2022, 2023}, r.Years())
}

func TestRegistry_LookupMissing(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	_, err = r.Lookup(2019, 1)
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestRegistry_DuplicateRejected(t *testing.T) {
	_, err := NewRegistry(stub(2023, 1), stub(2023, 1))
	assert.ErrorContains(t, err, "duplicate puzzle 2023/01")
}
