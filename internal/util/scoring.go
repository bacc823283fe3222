package util

import "github.com/sahilm/fuzzy"

// ScoreIndices fuzzy-matches input against the titles and returns up
// to n positions into the slice, best match first. Returning indices
// rather than strings lets a pick map back to its card even when
// titles repeat. An empty input matches everything in deck order.
func ScoreIndices(input string, titles []string, n int) []int {
	if input == "" {
		out := make([]int, len(titles))
		for i := range titles {
			out[i] = i
		}
		return out
	}
	matches := fuzzy.Find(input, titles)

	limit := n
	if n <= 0 || len(matches) < limit {
		limit = len(matches)
	}

	out := make([]int, limit)
	for i := 0; i < limit; i++ {
		out[i] = matches[i].Index
	}
	return out
}
