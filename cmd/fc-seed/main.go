// Command fc-seed generates deterministic fixture pairs for benchmarking
// and manual exploration of the comparison engine.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"

	"github.com/natefinch/atomic"
)

// fixture describes one (a, b) pair to generate under a kind-and-size-named
// subdirectory, e.g. "text-10000/a" and "text-10000/b".
type fixture struct {
	lines int
	churn float64
	kind  string // "text" or "binary"
}

func main() {
	fixtures := []fixture{
		{lines: 100, churn: 0.05, kind: "text"},
		{lines: 10_000, churn: 0.01, kind: "text"},
		{lines: 500_000, churn: 0.001, kind: "text"},
		{lines: 1_000, churn: 0.02, kind: "binary"},
	}

	baseDir := filepath.Join(os.TempDir(), "fc-bench")

	numWorkers := runtime.NumCPU()
	jobs := make(chan fixture, len(fixtures))

	var wg sync.WaitGroup

	for range numWorkers {
		wg.Go(func() {
			for f := range jobs {
				if err := seedFixture(baseDir, f); err != nil {
					fmt.Fprintf(os.Stderr, "fc-seed: %v\n", err)
				}
			}
		})
	}

	for _, f := range fixtures {
		jobs <- f
	}

	close(jobs)
	wg.Wait()

	fmt.Printf("fixtures written under %s\n", baseDir)
}

func seedFixture(baseDir string, f fixture) error {
	dir := filepath.Join(baseDir, fmt.Sprintf("%s-%d", f.kind, f.lines))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	var a, b []byte
	if f.kind == "binary" {
		a, b = generateBinaryPair(f.lines, f.churn)
	} else {
		a, b = generateTextPair(f.lines, f.churn)
	}

	if err := atomic.WriteFile(filepath.Join(dir, "a"), bytes.NewReader(a)); err != nil {
		return fmt.Errorf("writing a: %w", err)
	}

	if err := atomic.WriteFile(filepath.Join(dir, "b"), bytes.NewReader(b)); err != nil {
		return fmt.Errorf("writing b: %w", err)
	}

	return nil
}

func generateTextPair(n int, churn float64) (a, b []byte) {
	rng := newRNG(int64(n))

	var bufA, bufB bytes.Buffer

	for i := 0; i < n; i++ {
		fmt.Fprintf(&bufA, "line %d: the quick brown fox jumps over the lazy dog\n", i)

		if rng.float64() < churn {
			fmt.Fprintf(&bufB, "line %d: CHANGED\n", i)
		} else {
			fmt.Fprintf(&bufB, "line %d: the quick brown fox jumps over the lazy dog\n", i)
		}
	}

	return bufA.Bytes(), bufB.Bytes()
}

func generateBinaryPair(n int, churn float64) (a, b []byte) {
	rng := newRNG(int64(n))

	bufA := make([]byte, n*8)
	bufB := make([]byte, n*8)

	for i := range bufA {
		v := byte(rng.next() % 256)
		bufA[i] = v
		bufB[i] = v
	}

	for i := range bufB {
		if rng.float64() < churn {
			bufB[i] = byte(rng.next() % 256)
		}
	}

	return bufA, bufB
}

// rng is a minimal deterministic xorshift generator; fc-seed avoids
// math/rand so fixture bytes stay stable across Go versions.
type rng struct{ state uint64 }

func newRNG(seed int64) *rng {
	s := uint64(seed)
	if s == 0 {
		s = 1
	}

	return &rng{state: s}
}

func (r *rng) next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17

	return r.state
}

func (r *rng) float64() float64 {
	return float64(r.next()%1_000_000) / 1_000_000
}
