package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetKeys(t *testing.T) {
	assert := assert.New(t)
	m := map[string]int{"a": 1, "b": 2}
	keys := GetKeys(m)
	assert.ElementsMatch([]string{"a", "b"}, keys)
}

func TestMinMax(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1, Min(1, 2))
	assert.Equal(2, Max(1, 2))
	assert.Equal(1.5, Max(1.0, 1.5))
}

func TestSum(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint64(6), Sum([]int{1, 2, 3}))
	assert.Equal(uint64(0), Sum([]int(nil)))
}
