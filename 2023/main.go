package main

import (
	_ "embed"
	"slices"

	aoc "github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/schematic"
	"golang.org/x/exp/maps"
)

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func (s solver) engine() *schematic.Engine {
	e := schematic.Parse(s.Input())
	s.Debugf("schematic %v, hash %v", e.Size(), e.Hash())
	return e
}

/*
want=4361

467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
*/
func (s solver) D3p1() any {
	return s.engine().SumAdjacentTokens()
}

// want=467835
func (s solver) D3p2() any {
	e := s.engine()
	groups := e.GearGroups()
	gears := maps.Keys(groups)
	slices.SortFunc(gears, func(a, b aoc.Pt) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	for _, g := range gears {
		s.Debugf("gear %v: %v", g, groups[g])
	}
	return e.SumGearRatios()
}
