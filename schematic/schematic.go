// Package schematic scans an engine schematic: a grid of digits, symbols
// and blanks. It finds the numbers in the grid (part numbers when they touch
// a symbol) and the gears, the '*' symbols touching exactly two numbers.
package schematic

import (
	aoc "github.com/maisem/aoc2023"
	"tailscale.com/util/deephash"
)

const (
	// Blank is the empty cell. Reads outside the grid also return Blank.
	Blank = '.'
	// Gear is the symbol whose adjacent numbers are paired up.
	Gear = '*'
)

// MaxTokenWidth is the widest number Token.Int accepts: every 19 digit
// decimal fits in a uint64.
const MaxTokenWidth = 19

// IsDigit reports whether r is an ASCII digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsSymbol reports whether r is neither a digit nor Blank.
func IsSymbol(r rune) bool {
	return r != Blank && !IsDigit(r)
}

// Engine is a parsed schematic. It is immutable, so queries may run
// concurrently.
type Engine struct {
	g aoc.Grid[rune]
}

// Parse returns the engine for raw, one row per line. It accepts any input;
// rows need not have the same length.
func Parse(raw string) *Engine {
	return &Engine{g: aoc.ParseGrid(raw)}
}

// Size returns the width of the widest row and the number of rows.
func (e *Engine) Size() aoc.Pt {
	return e.g.Size()
}

// Hash returns a fingerprint of the grid.
func (e *Engine) Hash() deephash.Sum {
	return e.g.Hash()
}

// Read returns the character at p, or Blank if p is off the grid.
func (e *Engine) Read(p aoc.Pt) rune {
	return e.g.AtOr(p, Blank)
}

// Cell is a character and where it was read from.
type Cell struct {
	R  rune
	Pt aoc.Pt
}

// Surrounding returns the 8 cells around p in aoc.Compass order.
func (e *Engine) Surrounding(p aoc.Pt) []Cell {
	out := make([]Cell, 0, len(aoc.Compass))
	p.ForNeighbors(func(n aoc.Pt) bool {
		out = append(out, Cell{R: e.Read(n), Pt: n})
		return true
	})
	return out
}

// NeighborsOfToken returns the cells surrounding each digit of t in turn.
// Cells around more than one digit, including the token's own digits, are
// repeated.
func (e *Engine) NeighborsOfToken(t Token) []Cell {
	out := make([]Cell, 0, t.Len()*len(aoc.Compass))
	for i := 0; i < t.Len(); i++ {
		out = append(out, e.Surrounding(t.Pos.Add(aoc.Pt{X: i}))...)
	}
	return out
}

// TouchesSymbol reports whether any cell adjacent to t holds a symbol.
func (e *Engine) TouchesSymbol(t Token) bool {
	for _, c := range e.NeighborsOfToken(t) {
		if IsSymbol(c.R) {
			return true
		}
	}
	return false
}

// forTokens calls f for each token, rows top to bottom and tokens left to
// right.
func (e *Engine) forTokens(f func(Token)) {
	for y, row := range e.g {
		for _, t := range TokensInRow(y, row) {
			f(t)
		}
	}
}

// SumAdjacentTokens returns the sum of the numbers that touch a symbol.
// Numbers wider than MaxTokenWidth digits panic; the sum wraps on
// overflow.
func (e *Engine) SumAdjacentTokens() uint64 {
	var sum uint64
	e.forTokens(func(t Token) {
		if e.TouchesSymbol(t) {
			sum += t.Int()
		}
	})
	return sum
}

// GearGroups returns, for each gear touching at least one number, the
// numbers touching it in the order they were found. A number touching the
// same gear with several digits is recorded once.
func (e *Engine) GearGroups() map[aoc.Pt][]uint64 {
	groups := make(map[aoc.Pt][]uint64)
	e.forTokens(func(t Token) {
		seen := make(map[aoc.Pt]bool)
		for _, c := range e.NeighborsOfToken(t) {
			if c.R != Gear || seen[c.Pt] {
				continue
			}
			seen[c.Pt] = true
			groups[c.Pt] = append(groups[c.Pt], t.Int())
		}
	})
	return groups
}

// SumGearRatios returns the sum, over gears touching exactly two numbers,
// of the product of those numbers. As with SumAdjacentTokens, numbers wider
// than MaxTokenWidth digits panic and products and the sum wrap on
// overflow.
func (e *Engine) SumGearRatios() uint64 {
	var ratios []uint64
	for _, nums := range e.GearGroups() {
		if len(nums) == 2 {
			ratios = append(ratios, nums[0]*nums[1])
		}
	}
	return aoc.Sum(ratios...)
}
