package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkSlice(t *testing.T) {
	items := make([]int, 120)
	for i := range items {
		items[i] = i
	}

	chunks := ChunkSlice(items, 50)
	assert.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 50)
	assert.Len(t, chunks[1], 50)
	assert.Len(t, chunks[2], 20)
	assert.Equal(t, 0, chunks[0][0])
	assert.Equal(t, 50, chunks[1][0])
	assert.Equal(t, 119, chunks[2][19])
}

func TestChunkSliceExactMultiple(t *testing.T) {
	chunks := ChunkSlice([]string{"a", "b", "c", "d"}, 2)
	assert.Len(t, chunks, 2)
	assert.Equal(t, []string{"a", "b"}, chunks[0])
	assert.Equal(t, []string{"c", "d"}, chunks[1])
}

func TestChunkSliceEmpty(t *testing.T) {
	assert.Nil(t, ChunkSlice([]int(nil), 10))
}

func TestChunkSliceNonPositiveSize(t *testing.T) {
	chunks := ChunkSlice([]int{1, 2, 3}, 0)
	assert.Len(t, chunks, 1)
	assert.Equal(t, []int{1, 2, 3}, chunks[0])
}
