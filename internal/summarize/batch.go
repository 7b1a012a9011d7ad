package summarize

// estimateTokens approximates token usage as characters divided by four.
// This is a documented approximation, not real tokenization.
func estimateTokens(chars int) int {
	return chars / charsPerToken
}

// PackBatches greedily groups files in order so that the sum of per-file
// token estimates plus a fixed per-file overhead stays within limit. When
// adding the next file would cross the limit, the current batch is closed
// and a new one started. A file whose own cost exceeds the limit ends up
// alone in its batch; callers keep such files out by routing anything over
// the chunking threshold to the large-file path instead.
func PackBatches(files []CodeFile, limit, overhead int) [][]CodeFile {
	var batches [][]CodeFile
	var current []CodeFile
	currentTokens := 0

	for _, f := range files {
		if f.Content == "" {
			continue
		}
		cost := estimateTokens(len(f.Content)) + overhead
		if len(current) > 0 && currentTokens+cost > limit {
			batches = append(batches, current)
			current = nil
			currentTokens = 0
		}
		current = append(current, f)
		currentTokens += cost
	}
	if len(current) > 0 {
		batches = append(batches, current)
	}
	return batches
}
