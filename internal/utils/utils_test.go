package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInt(t *testing.T) {
	n, err := ToInt(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = ToInt("4x2")
	assert.ErrorContains(t, err, `invalid number "4x2"`)
}

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"a", "", "b"}, Lines("a\n\nb\n\n"))
	assert.Nil(t, Lines("\n"))
}

func TestBlocks(t *testing.T) {
	assert.Equal(t, []string{"1\n2", "3"}, Blocks("\n1\n2\n\n3\n"))
	assert.Nil(t, Blocks(""))
}

func TestIntsSep(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sep      string
		expected []int
	}{
		{name: "whitespace", input: " 1  -2 3 ", expected: []int{1, -2, 3}},
		{name: "commas", input: "7,4,9", sep: ",", expected: []int{7, 4, 9}},
		{name: "empty", input: "", expected: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IntsSep(tt.input, tt.sep)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := IntsSep("1,a", ",")
	assert.Error(t, err)
}
