// Package testkit generates synthetic csTimer sessions for tests and
// demos.
package testkit

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"

	"solvestats/domain/solve"
)

// Generator produces deterministic synthetic sessions from a seed.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator with a fixed seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Session generates n attempts with normally distributed times around
// mean/stdev and the given DNF rate. Times are clamped to at least one
// second so floor() always yields a sensible bucket.
func (g *Generator) Session(n int, mean, stdev, dnfRate float64) []solve.Solve {
	solves := make([]solve.Solve, 0, n)
	for i := 0; i < n; i++ {
		seconds := mean + g.rng.NormFloat64()*stdev
		if seconds < 1 {
			seconds = 1
		}
		raw := FormatSeconds(seconds)

		if g.rng.Float64() < dnfRate {
			solves = append(solves, solve.NewDNF(raw))
			continue
		}
		// Re-parse the formatted value so Seconds matches what a reader
		// would produce from the CSV round trip.
		s, err := solve.NewSolve(raw)
		if err != nil {
			panic(fmt.Sprintf("testkit generated unparseable time %q: %v", raw, err))
		}
		solves = append(solves, s)
	}
	return solves
}

// FormatSeconds renders a duration the way csTimer does: "ss.ff" under a
// minute, "m:ss.ff" above.
func FormatSeconds(seconds float64) string {
	if seconds < 60 {
		return fmt.Sprintf("%.2f", seconds)
	}
	minutes := int(seconds) / 60
	remainder := seconds - float64(minutes*60)
	return fmt.Sprintf("%d:%05.2f", minutes, remainder)
}

// WriteCSV writes the session as a csTimer-format export usable by the
// cstimer reader.
func (g *Generator) WriteCSV(path string, solves []solve.Solve) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'
	defer w.Flush()

	if err := w.Write([]string{"No.", "Time", "Comment", "Scramble", "Date", "P.1"}); err != nil {
		return err
	}
	for i, s := range solves {
		status := s.RawTime
		if s.DNF {
			status = fmt.Sprintf("DNF(%s)", s.RawTime)
		}
		row := []string{
			fmt.Sprintf("%d", i+1),
			status,
			"",
			"R U R' U'",
			"2024-01-01 12:00:00",
			s.RawTime,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}
