package aoc

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"log"
	"strconv"
	"strings"
)

// A sample is an example input and its expected answer, written in a
// solver's doc comment as
//
//	want=<answer>
//
//	<input lines>
//
// The input may be omitted to reuse the previous sample's input.
type sample struct {
	input string
	want  string
}

// parseSample parses the text of a doc comment, with comment markers
// already removed.
func parseSample(text string) (sample, bool) {
	head, rest, _ := strings.Cut(strings.TrimLeft(text, " \t\n"), "\n")
	want, ok := strings.CutPrefix(strings.TrimSpace(head), "want=")
	if !ok {
		return sample{}, false
	}
	return sample{
		want:  strings.TrimSpace(want),
		input: strings.TrimLeft(rest, "\n"),
	}, true
}

// extractSamples returns the samples in the doc comments of the functions
// in src, keyed by function name.
func extractSamples(src []byte) map[string]sample {
	f, err := parser.ParseFile(token.NewFileSet(), "solver.go", src, parser.ParseComments)
	if err != nil {
		log.Fatalf("parsing solver source for samples: %v", err)
	}
	samples := make(map[string]sample)
	var prev string
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		s, ok := parseSample(fd.Doc.Text())
		if !ok {
			continue
		}
		if s.input == "" {
			s.input = prev
		}
		prev = s.input
		samples[fd.Name.Name] = s
	}
	return samples
}

// matches reports whether a part's answer equals want. Integer answers are
// compared as numbers, so "007" matches 7; anything else is compared by
// its printed form.
func matches(got any, want string) bool {
	switch v := got.(type) {
	case uint64:
		w, err := strconv.ParseUint(want, 10, 64)
		return err == nil && v == w
	case int:
		w, err := strconv.Atoi(want)
		return err == nil && v == w
	}
	return fmt.Sprint(got) == want
}
