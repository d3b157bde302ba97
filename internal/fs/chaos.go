package fs

import (
	"fmt"
	"io/fs"
	"math/rand"
	"sync"
	"sync/atomic"
	"syscall"
)

// ChaosConfig controls fault injection probabilities.
// Each rate is a float64 from 0.0 (never) to 1.0 (always).
//
// The zero value disables all fault injection.
type ChaosConfig struct {
	// OpenFailRate controls how often Slurp/Map/Stat fail to open or stat
	// the path. Returns EACCES, EIO, EMFILE, ENFILE, or ENOTDIR.
	OpenFailRate float64

	// ReadFailRate controls how often Slurp/Map fail mid-read, after the
	// open/stat succeeded. Returns EIO.
	ReadFailRate float64

	// PartialReadRate controls how often Slurp returns a truncated prefix
	// of the file's bytes along with an EIO error, simulating a read that
	// stops partway through.
	PartialReadRate float64

	// TooLargeRate controls how often Slurp/Map report [ErrTooLarge] for an
	// otherwise-fine file, simulating an allocation-ceiling breach.
	TooLargeRate float64
}

// ChaosMode controls how [Chaos] behaves.
type ChaosMode uint8

const (
	// ChaosModeActive enables fault-rate injection.
	ChaosModeActive ChaosMode = iota

	// ChaosModeNoOp passes every operation directly to the underlying FS.
	ChaosModeNoOp
)

// Chaos wraps an [FS] and injects random, reproducible failures so the
// engine's io-error and memory-error paths (original §4.1, §7) can be
// exercised without needing an actually-broken filesystem.
//
// This is a deliberately smaller descendant of a teacher codebase's
// fault-injecting filesystem double: that one also injects write, lock,
// and directory faults because its domain mutates a store on disk. fc
// never writes, so only the read-path fault classes survive the port.
type Chaos struct {
	fs     FS
	config ChaosConfig
	mode   atomic.Uint32

	mu  sync.Mutex
	rng *rand.Rand

	faults atomic.Int64
}

// NewChaos wraps fs with fault injection. seed controls the random fault
// schedule, so a failing test can reproduce the exact same run. Panics if
// fs is nil.
func NewChaos(underlying FS, seed int64, config ChaosConfig) *Chaos {
	if underlying == nil {
		panic("fs is nil")
	}

	return &Chaos{
		fs:     underlying,
		rng:    rand.New(rand.NewSource(seed)), //nolint:gosec // reproducible test fault schedule, not security sensitive
		config: config,
	}
}

// SetMode switches between fault injection ([ChaosModeActive]) and a pure
// passthrough ([ChaosModeNoOp]). Safe to call concurrently.
func (c *Chaos) SetMode(m ChaosMode) { c.mode.Store(uint32(m)) }

// TotalFaults returns how many faults have been injected so far.
func (c *Chaos) TotalFaults() int64 { return c.faults.Load() }

func (c *Chaos) Slurp(path string) ([]byte, error) {
	if c.active() {
		if err := c.maybeFault(path, c.config.OpenFailRate, "open"); err != nil {
			return nil, err
		}
	}

	data, err := c.fs.Slurp(path)
	if err != nil {
		return nil, err
	}

	if !c.active() {
		return data, nil
	}

	if c.should(c.config.TooLargeRate) {
		c.faults.Add(1)

		return nil, inject(fmt.Errorf("%w: %s", ErrTooLarge, path))
	}

	if c.should(c.config.PartialReadRate) && len(data) > 0 {
		c.faults.Add(1)
		n := c.randIntn(len(data))

		return data[:n], inject(pathError("read", path, syscall.EIO))
	}

	if c.should(c.config.ReadFailRate) {
		c.faults.Add(1)

		return nil, inject(pathError("read", path, syscall.EIO))
	}

	return data, nil
}

func (c *Chaos) Map(path string) (Mapping, error) {
	if c.active() {
		if err := c.maybeFault(path, c.config.OpenFailRate, "open"); err != nil {
			return nil, err
		}
	}

	m, err := c.fs.Map(path)
	if err != nil {
		return nil, err
	}

	if !c.active() {
		return m, nil
	}

	if c.should(c.config.TooLargeRate) {
		_ = m.Close()
		c.faults.Add(1)

		return nil, inject(fmt.Errorf("%w: %s", ErrTooLarge, path))
	}

	if c.should(c.config.ReadFailRate) {
		_ = m.Close()
		c.faults.Add(1)

		return nil, inject(pathError("mmap", path, syscall.EIO))
	}

	return m, nil
}

func (c *Chaos) Stat(path string) (Info, error) {
	if c.active() {
		if err := c.maybeFault(path, c.config.OpenFailRate, "stat"); err != nil {
			return Info{}, err
		}
	}

	return c.fs.Stat(path)
}

func (c *Chaos) maybeFault(path string, rate float64, op string) error {
	if !c.should(rate) {
		return nil
	}

	c.faults.Add(1)
	errnos := []syscall.Errno{syscall.EACCES, syscall.EIO, syscall.EMFILE, syscall.ENFILE, syscall.ENOTDIR}

	return inject(pathError(op, path, c.pickRandom(errnos)))
}

func (c *Chaos) active() bool {
	return ChaosMode(c.mode.Load()) == ChaosModeActive
}

func (c *Chaos) should(rate float64) bool {
	if !c.active() || rate <= 0 {
		return false
	}

	return c.randFloat() < rate
}

func (c *Chaos) randFloat() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.rng.Float64()
}

func (c *Chaos) randIntn(n int) int {
	if n <= 0 {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.rng.Intn(n)
}

func (c *Chaos) pickRandom(errnos []syscall.Errno) syscall.Errno {
	c.mu.Lock()
	defer c.mu.Unlock()

	return errnos[c.rng.Intn(len(errnos))]
}

func pathError(op, path string, errno syscall.Errno) error {
	err := &fs.PathError{Op: op, Path: path, Err: errno}
	markInjectedPathError(err)

	return err
}

// Compile-time interface check.
var _ FS = (*Chaos)(nil)
