package engine

import "slices"

// state is the smoothing state carried between observations.
type state struct {
	level    float64
	trend    float64
	seasonal []float64
}

// withSeason returns a copy of the seasonal indices with slot set to v.
func (s state) withSeason(slot int, v float64) []float64 {
	out := slices.Clone(s.seasonal)
	out[slot] = v
	return out
}

// fold applies f to every element of xs from left to right, threading the accumulator.
func fold[T, A any](xs []T, acc A, f func(acc A, i int, x T) A) A {
	for i, x := range xs {
		acc = f(acc, i, x)
	}
	return acc
}
