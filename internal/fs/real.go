package fs

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// maxSlurpSize bounds how large a file [Real.Slurp] will load into memory.
// The original specifies that at least 2^31-1 bytes must be supported on
// 64-bit platforms; this ceiling is comfortably above that and exists only
// to turn a runaway allocation into a reported error instead of an OOM kill.
const maxSlurpSize = 1 << 40

// Real implements [FS] against the operating system: [Real.Slurp] is a
// bounded [os.ReadFile], and [Real.Map] is a read-only mmap via
// [golang.org/x/sys/unix].
type Real struct{}

// NewReal returns a new [Real] filesystem.
func NewReal() *Real {
	return &Real{}
}

// Slurp reads path fully into memory. See [FS.Slurp].
func (r *Real) Slurp(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if info.Size() > maxSlurpSize {
		return nil, fmt.Errorf("%w: %s is %d bytes, exceeds ceiling of %d", ErrTooLarge, path, info.Size(), maxSlurpSize)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is caller-controlled, same as fc's CLI arguments
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if data == nil {
		data = []byte{}
	}

	return data, nil
}

// Stat returns path's size. See [FS.Stat].
func (r *Real) Stat(path string) (Info, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Info{}, fmt.Errorf("stat %s: %w", path, err)
	}

	return Info{Size: info.Size()}, nil
}

// Map returns a read-only mmap of path. See [FS.Map].
//
// A zero-length file is special-cased: mmap of zero bytes is undefined on
// several platforms (some return EINVAL), so [Real.Map] returns an empty
// mapping without issuing the syscall.
func (r *Real) Map(path string) (Mapping, error) {
	f, err := os.Open(path) //nolint:gosec // path is caller-controlled, same as fc's CLI arguments
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	size := info.Size()
	if size == 0 {
		return &realMapping{data: []byte{}}, nil
	}

	if size > maxSlurpSize {
		return nil, fmt.Errorf("%w: %s is %d bytes, exceeds ceiling of %d", ErrTooLarge, path, size, maxSlurpSize)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}

	return &realMapping{data: data}, nil
}

// realMapping is a live mmap region. closed tracks double-Close, which
// realMapping treats as a safe no-op.
type realMapping struct {
	data   []byte
	closed bool
}

func (m *realMapping) Bytes() []byte {
	return m.data
}

func (m *realMapping) Close() error {
	if m.closed || len(m.data) == 0 {
		m.closed = true

		return nil
	}

	m.closed = true
	data := m.data
	m.data = nil

	if err := unix.Munmap(data); err != nil {
		return fmt.Errorf("munmap: %w", err)
	}

	return nil
}

// ErrTooLarge reports a file exceeding the implementation's size ceiling.
var ErrTooLarge = errors.New("file too large")

// Compile-time interface check.
var _ FS = (*Real)(nil)
