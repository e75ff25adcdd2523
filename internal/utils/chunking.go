package utils

// ChunkSlice partitions items into contiguous chunks of at most size
// elements, preserving order. The last chunk may be smaller. A size of zero
// or less yields a single chunk with everything in it.
func ChunkSlice[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}
	if size <= 0 {
		return [][]T{items}
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}

	return chunks
}
