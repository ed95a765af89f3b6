package mathx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	assert.Equal(t, 3, Abs(-3))
	assert.Equal(t, int64(5), Abs(int64(5)))
}

func TestGCDAndLCM(t *testing.T) {
	assert.Equal(t, 6, GCD(54, 24))
	assert.Equal(t, 12, LCM(4, 6))
	assert.Equal(t, 0, LCM(0, 6))
	assert.Equal(t, uint64(60), LCMAll[uint64](3, 4, 5))
	assert.Equal(t, 0, LCMAll[int]())
}

func TestSumAndProduct(t *testing.T) {
	assert.Equal(t, 10, Sum([]int{1, 2, 3, 4}))
	assert.Equal(t, 24, Product([]int{1, 2, 3, 4}))
	assert.Equal(t, 1, Product([]int{}))
}
