package utils

import "golang.org/x/exp/rand"

// ShuffledMax shuffles items in place, then returns the first item with the
// highest score. Ties therefore resolve uniformly at random. The bool is false
// for an empty slice.
func ShuffledMax[T any](r *rand.Rand, items []T, score func(T) int) (T, bool) {
	var best T
	if len(items) == 0 {
		return best, false
	}

	r.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})

	best = items[0]
	bestScore := score(best)
	for _, item := range items[1:] {
		if s := score(item); s > bestScore {
			best, bestScore = item, s
		}
	}
	return best, true
}
