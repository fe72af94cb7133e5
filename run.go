package aoc

import (
	"flag"
	"fmt"
	"log"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/maps"
)

var opts struct {
	day        int
	part       string
	input      string
	debug      bool
	onlySample bool
	skipSample bool
}

func init() {
	flag.IntVar(&opts.day, "day", -1, "day to run; all days if -1")
	flag.StringVar(&opts.part, "part", "", "part to run")
	flag.StringVar(&opts.input, "input", "", "read puzzle input from this file instead of the cache")
	flag.BoolVar(&opts.debug, "debug", false, "print Debugf output while running samples")
	flag.BoolVar(&opts.onlySample, "sample", false, "only run samples")
	flag.BoolVar(&opts.skipSample, "skip-sample", false, "skip samples")
}

var parseFlags = sync.OnceFunc(flag.Parse)

// part is one solver method, D{day}p{name}.
type part struct {
	name   string
	method string
	fn     func() any
}

var partRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// solverParts returns the parts of slvr, a pointer to a struct, grouped by
// day with each day's parts in name order.
func solverParts(slvr any) map[int][]part {
	v := reflect.ValueOf(slvr)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		log.Fatalf("aoc: solver is %T; want pointer to struct", slvr)
	}
	v = v.Elem()
	byDay := make(map[int][]part)
	for i := 0; i < v.NumMethod(); i++ {
		name := v.Type().Method(i).Name
		m := partRx.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		fn, ok := v.Method(i).Interface().(func() any)
		if !ok {
			log.Fatalf("aoc: %s is %v; want func() any", name, v.Method(i).Type())
		}
		day := Int(m[1])
		byDay[day] = append(byDay[day], part{name: m[2], method: name, fn: fn})
	}
	for _, ps := range byDay {
		slices.SortFunc(ps, func(a, b part) int { return strings.Compare(a.name, b.name) })
	}
	return byDay
}

// Run runs the parts of slvr, a pointer to a struct embedding *Puzzle,
// for the given year. Each part is first run on its sample and must
// produce the sample's answer before it is run on the real input. src is
// the solver's source, usually embedded with go:embed, and is where the
// samples are read from.
func Run(year int, src []byte, slvr any) {
	parseFlags()
	samples := extractSamples(src)
	byDay := solverParts(slvr)

	p := &Puzzle{Year: year}
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))

	days := maps.Keys(byDay)
	slices.Sort(days)
	if opts.day != -1 {
		if _, ok := byDay[opts.day]; !ok {
			log.Fatalf("no day %d", opts.day)
		}
		days = []int{opts.day}
	}
	for i, day := range days {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println("Running day", day)
		p.Day = day
		for _, pt := range byDay[day] {
			if opts.part != "" && pt.name != opts.part {
				continue
			}
			s, ok := samples[pt.method]
			if !ok && !opts.skipSample {
				log.Fatalf("no sample found for %v", pt.method)
			}
			if !runPart(p, pt, s) {
				break
			}
		}
	}
}

// runPart runs pt on its sample and then on the real input, as the flags
// allow. It reports false if the sample answer was wrong.
func runPart(p *Puzzle, pt part, s sample) bool {
	if !opts.skipSample {
		p.SampleMode, p.sample = true, s
		t0 := time.Now()
		got := pt.fn()
		if !matches(got, s.want) {
			fmt.Printf("part %s: %v ❌; want %v\n", pt.name, got, s.want)
			return false
		}
		fmt.Printf("part %s sample: %v ✅ (%v)\n", pt.name, got, time.Since(t0).Round(time.Microsecond))
	}
	if opts.onlySample {
		return true
	}
	p.SampleMode = false
	p.Input() // so the download isn't timed
	t0 := time.Now()
	got := pt.fn()
	fmt.Printf("part %s: %v (took %v)\n", pt.name, got, time.Since(t0).Round(time.Microsecond))
	return true
}
