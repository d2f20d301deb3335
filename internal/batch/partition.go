package batch

// Partition splits files into near-equal contiguous chunks sized for the
// given worker count. Chunk size is max(1, ceil(len/workers)); the batch is
// walked in original order and cut every chunkSize elements, so the final
// chunk may be shorter. Partitioning is static: no rebalancing happens once
// chunks are formed.
func Partition(files []File, workers int) []Chunk {
	if len(files) == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (len(files) + workers - 1) / workers
	if chunkSize < 1 {
		chunkSize = 1
	}

	chunks := make([]Chunk, 0, workers)
	for start := 0; start < len(files); start += chunkSize {
		end := start + chunkSize
		if end > len(files) {
			end = len(files)
		}
		chunks = append(chunks, Chunk{Index: len(chunks), Files: files[start:end]})
	}
	return chunks
}
