// Package aoc runs Advent of Code solvers: it loads inputs, checks each
// part against the sample in its doc comment, and provides a few grid
// helpers.
package aoc

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
