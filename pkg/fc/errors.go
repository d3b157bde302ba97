package fc

import (
	"errors"
	"fmt"

	"github.com/zbalkan/fc/internal/fs"
)

// Code is the result-code taxonomy for a comparison. [OK] and [Different]
// are normal outcomes, not errors; the other three are returned as the
// Code of an [Error].
type Code int

const (
	// OK means the files compared identical.
	OK Code = iota

	// Different means at least one diff block was emitted.
	Different

	// IOError means a file could not be opened, sized, read, or mapped.
	IOError

	// InvalidParameter means a required input was missing or malformed
	// (a nil callback, a malformed path, invalid UTF-8 on the UTF-8 entry
	// point).
	InvalidParameter

	// MemoryError means an allocation failed, or a file exceeded the
	// implementation's size ceiling.
	MemoryError
)

// String implements [fmt.Stringer].
func (c Code) String() string {
	switch c {
	case OK:
		return "ok"
	case Different:
		return "different"
	case IOError:
		return "io-error"
	case InvalidParameter:
		return "invalid-parameter"
	case MemoryError:
		return "memory-error"
	default:
		return "code(?)"
	}
}

// Error reports a comparison failure. Code is always one of [IOError],
// [InvalidParameter], or [MemoryError]; [OK] and [Different] are returned
// as the Code result of [Compare], not wrapped in an Error.
type Error struct {
	Code Code
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Code.String()
	}

	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Sentinel errors identifying the cause wrapped by an [Error]. Callers that
// only care about the [Code] can use [errors.As] against [*Error]; these
// sentinels exist for callers that want to distinguish causes within one
// Code (in particular, within [MemoryError]).
var (
	errMissingCallback = errors.New("config.Callback is required")
	errInvalidUTF8     = errors.New("path is not valid UTF-8")
	errEmptyPath       = errors.New("path must not be empty")

	// ErrTooLarge is the memory-error cause reported when a file exceeds
	// the implementation's size ceiling. It is distinct from
	// internal/fs.ErrTooLarge (the lower-layer cause an [FS] implementation
	// reports); wrapFSError joins both into one error so callers can match
	// either with errors.Is.
	ErrTooLarge = errors.New("file too large")
)

func ioError(err error) error {
	return &Error{Code: IOError, Err: err}
}

func invalidParameter(err error) error {
	return &Error{Code: InvalidParameter, Err: err}
}

func memoryError(err error) error {
	return &Error{Code: MemoryError, Err: err}
}

// wrapFSError classifies an error returned by an [fs.FS] method: a size-
// ceiling breach is a [MemoryError] (spec §4.1, §7), everything else is an
// [IOError].
func wrapFSError(err error) (Code, error) {
	if errors.Is(err, fs.ErrTooLarge) {
		return MemoryError, memoryError(fmt.Errorf("%w: %w", ErrTooLarge, err))
	}

	return IOError, ioError(err)
}
