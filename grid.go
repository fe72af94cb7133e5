package aoc

import (
	"reflect"
	"sync"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// Grid is a row-major 2D grid, indexed as g[y][x]. Rows may have different
// lengths.
type Grid[T any] [][]T

// ParseGrid returns the grid of runes in the input, one row per line.
func ParseGrid(in string) Grid[rune] {
	var g Grid[rune]
	ForLinesOf(in, func(_ int, line string) {
		g = append(g, []rune(line))
	})
	return g
}

// AtOk returns the value at p. It reports false if p is outside the grid,
// checking the bounds of the row at p.Y rather than the first row.
func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.Y < 0 || p.Y >= len(g) || p.X < 0 || p.X >= len(g[p.Y]) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// AtOr is like AtOk but returns def for points outside the grid.
func (g Grid[T]) AtOr(p Pt, def T) T {
	if v, ok := g.AtOk(p); ok {
		return v
	}
	return def
}

var hashers sync.Map // reflect.Type => func(*Grid[T]) deephash.Sum

// Hash returns a hash of the grid's contents. It is safe for concurrent use.
func (g Grid[T]) Hash() deephash.Sum {
	rt := reflect.TypeOf(g)
	h, ok := hashers.Load(rt)
	if !ok {
		h, _ = hashers.LoadOrStore(rt, deephash.HasherForType[Grid[T]]())
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

// Size returns the width of the widest row and the number of rows.
func (g Grid[T]) Size() Pt {
	var size Pt
	size.Y = len(g)
	for _, row := range g {
		size.X = max(size.X, len(row))
	}
	return size
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Compass holds the 8 unit displacements around a point, row by row from
// the north-west: NW, N, NE, W, E, SW, S, SE.
var Compass = [8]Pt{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

// ForNeighbors calls f for each of the 8 neighbors of p in Compass order,
// stopping early if f returns false.
func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for _, d := range Compass {
		if !f(Pt2[T]{p.X + T(d.X), p.Y + T(d.Y)}) {
			return
		}
	}
}
