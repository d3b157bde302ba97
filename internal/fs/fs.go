// Package fs provides the filesystem abstraction the comparison engine is
// built against.
//
// The core never calls [os] directly. It depends on the narrow [FS]
// contract below, which exposes exactly the two operations the file reader
// component needs: load a whole file into memory, or map it read-only.
// Nothing in the engine writes, locks, or lists a directory, so those
// concerns are absent from the interface on purpose.
//
// The main types are:
//   - [FS]: the interface the core depends on
//   - [Real]: production implementation backed by the operating system
//   - [Chaos]: a fault-injecting double used by the engine's own tests
package fs

// FS loads file contents for the comparison engine.
//
// Two implementations are provided:
//   - [Real]: production use, backed by [os] and a read-only mmap
//   - [Chaos]: test use, injects read and allocation failures
type FS interface {
	// Slurp reads path fully into memory and returns its bytes.
	//
	// A zero-length file returns a valid, empty, non-nil slice. [Real.Slurp]
	// never returns a partial read: any failure mid-read is reported as an
	// error and no bytes are returned. [Chaos.Slurp] with a non-zero
	// PartialReadRate can return a truncated prefix together with an error.
	Slurp(path string) ([]byte, error)

	// Map returns a read-only view of path's contents.
	//
	// The returned [Mapping] must be closed exactly once by the caller; the
	// underlying memory is not safe to use after Close.
	Map(path string) (Mapping, error)

	// Stat returns path's size without reading its contents.
	Stat(path string) (Info, error)
}

// Info is the subset of file metadata the engine needs.
type Info struct {
	Size int64
}

// Mapping is a read-only view of a file's contents.
//
// Close releases the mapping. Bytes returned by [Mapping.Bytes] must not be
// read after Close.
type Mapping interface {
	// Bytes returns the mapped region. Empty (non-nil) for a zero-length file.
	Bytes() []byte

	// Close releases the mapping. Safe to call exactly once.
	Close() error
}
