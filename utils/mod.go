package utils

import "golang.org/x/exp/rand"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// ChooseRandom returns a uniformly chosen element. It panics on an empty slice.
func ChooseRandom[T any](rng *rand.Rand, items []T) T {
	if len(items) == 0 {
		panic("cannot choose from an empty slice")
	}
	return items[rng.Intn(len(items))]
}

// AllMaxBy returns every item whose score is maximal, in input order, along with that score.
func AllMaxBy[T any](items []T, score func(T) int) (best []T, max int) {
	for i, item := range items {
		s := score(item)
		if i == 0 || s > max {
			max = s
			best = append(best[:0], item)
		} else if s == max {
			best = append(best, item)
		}
	}
	return best, max
}
