package aoc

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// Puzzle is embedded in solvers. Run fills it in before calling each part.
type Puzzle struct {
	Year, Day  int
	SampleMode bool

	sample sample
}

// Input returns the whole input for the running part: the sample in sample
// mode, otherwise the -input file if set, or the day's cached input,
// downloading it on first use.
func (p *Puzzle) Input() string {
	switch {
	case p.SampleMode:
		return p.sample.input
	case opts.input != "":
		return string(MustGet(os.ReadFile(opts.input)))
	}
	return string(cachedInput(p.Year, p.Day))
}

// Debugf prints when running a sample with -debug.
func (p *Puzzle) Debugf(format string, args ...any) {
	if opts.debug && p.SampleMode {
		fmt.Printf(format+"\n", args...)
	}
}

// ForLinesOf calls onLine for each line of in. The y value is the row
// number, starting with 0. A trailing newline does not produce an extra
// empty line, and "\r\n" line endings are accepted.
func ForLinesOf(in string, onLine func(y int, line string)) {
	s := bufio.NewScanner(strings.NewReader(in))
	s.Buffer(nil, max(len(in)+1, bufio.MaxScanTokenSize))
	for y := 0; s.Scan(); y++ {
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

// cachedInput returns the input for the day from <year>/<day>.input,
// downloading it there first if it is missing.
func cachedInput(year, day int) []byte {
	fn := filepath.Join(strconv.Itoa(year), strconv.Itoa(day)+".input")
	if b, err := os.ReadFile(fn); err == nil {
		return b
	}
	b := download(fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", year, day))
	MustDo(os.MkdirAll(filepath.Dir(fn), 0700))
	MustDo(os.WriteFile(fn, b, 0644))
	return b
}

var sessionCookie = sync.OnceValue(func() *http.Cookie {
	key := MustGet(os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session")))
	return &http.Cookie{Name: "session", Value: strings.TrimSpace(string(key))}
})

func download(url string) []byte {
	req := MustGet(http.NewRequest(http.MethodGet, url, nil))
	req.AddCookie(sessionCookie())
	res := MustGet(http.DefaultClient.Do(req))
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		log.Fatalf("fetching %s: %v", url, res.Status)
	}
	return MustGet(io.ReadAll(res.Body))
}
