package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathFor(t *testing.T) {
	got := PathFor("inputs", puzzle.ID{Year: 2023, Day: 7})
	assert.Equal(t, filepath.Join("inputs", "2023", "07.txt"), got)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "01.txt")
	require.NoError(t, os.WriteFile(path, []byte("  1 2\r\n3 4\r\n\r\n"), 0644))

	in, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, in.Path)
	assert.Equal(t, "  1 2\n3 4", in.Text)
	assert.Equal(t, 14, in.Size)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to read input file")
}
