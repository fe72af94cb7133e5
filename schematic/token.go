package schematic

import (
	"fmt"

	aoc "github.com/maisem/aoc2023"
)

// Token is a maximal run of digits within one row.
type Token struct {
	Value string
	Pos   aoc.Pt // first digit
}

func (t Token) Len() int {
	return len(t.Value)
}

// Int returns the value of the token. It panics if the token is not a
// number of at most MaxTokenWidth digits. TokensInRow never yields an
// empty token, but it does yield wider runs.
func (t Token) Int() uint64 {
	if t.Len() == 0 || t.Len() > MaxTokenWidth {
		panic(fmt.Sprintf("schematic: bad token %q at %v", t.Value, t.Pos))
	}
	return aoc.Uint(t.Value)
}

// TokensInRow returns the tokens in row, which is row number y of the grid,
// in the order they start.
func TokensInRow(y int, row []rune) []Token {
	var out []Token
	start := -1 // column of the first digit of the current run, or -1
	for x := 0; x <= len(row); x++ {
		if x < len(row) && IsDigit(row[x]) {
			if start < 0 {
				start = x
			}
			continue
		}
		if start >= 0 {
			out = append(out, Token{
				Value: string(row[start:x]),
				Pos:   aoc.Pt{X: start, Y: y},
			})
			start = -1
		}
	}
	return out
}
