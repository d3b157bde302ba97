package fc

// Mode selects which comparison strategy [Compare] uses.
type Mode int

const (
	// TextASCII compares files as text, case folding (when requested) via
	// the ASCII fast path only.
	TextASCII Mode = iota

	// TextUnicode compares files as text, case folding (when requested) via
	// a full Unicode case mapping.
	TextUnicode

	// Binary compares files byte-for-byte.
	Binary

	// Auto sniffs both files' content and picks [TextASCII] or [Binary].
	Auto
)

// String implements [fmt.Stringer].
func (m Mode) String() string {
	switch m {
	case TextASCII:
		return "text-ascii"
	case TextUnicode:
		return "text-unicode"
	case Binary:
		return "binary"
	case Auto:
		return "auto"
	default:
		return "mode(?)"
	}
}

// Flags is a bitset of comparison options.
type Flags uint8

const (
	// IgnoreCase folds case before comparing lines (and, for binary mode,
	// is not consulted at all).
	IgnoreCase Flags = 1 << iota

	// IgnoreWhitespace drops spaces and tabs before comparing and storing
	// lines, and discards lines that become empty as a result.
	IgnoreWhitespace

	// ShowLineNumbers is opaque metadata for a downstream formatter; the
	// core never reads it.
	ShowLineNumbers

	// PreserveRawTabs disables the default tab-to-four-spaces expansion.
	PreserveRawTabs
)

// Has reports whether all bits in want are set.
func (f Flags) Has(want Flags) bool {
	return f&want == want
}

// DefaultResyncLines is used when [Config.ResyncLines] is zero or negative.
const DefaultResyncLines = 2

// DefaultBufferLines is the reserved buffer-lines hint's default value.
const DefaultBufferLines = 100

// BlockKind tags the variant a [DiffBlock] carries.
type BlockKind int

const (
	// BlockChange is a text block where both files have non-matching lines
	// in the given ranges.
	BlockChange BlockKind = iota

	// BlockAdd is a text block present only in file B.
	BlockAdd

	// BlockDelete is a text block present only in file A.
	BlockDelete

	// BlockByteChange is a single mismatching byte in binary mode.
	BlockByteChange

	// BlockSize is a file-size mismatch in binary mode.
	BlockSize
)

// String implements [fmt.Stringer].
func (k BlockKind) String() string {
	switch k {
	case BlockChange:
		return "change"
	case BlockAdd:
		return "add"
	case BlockDelete:
		return "delete"
	case BlockByteChange:
		return "byte-change"
	case BlockSize:
		return "size"
	default:
		return "kind(?)"
	}
}

// DiffBlock describes one unit of difference between the two inputs.
//
// Which fields are meaningful depends on Kind. The original design
// overloaded a single positional record across text and binary blocks;
// here the kind tag makes the callback's dispatch exhaustive instead of
// positional. The block is a transient value scoped to one callback
// invocation: a callback that wants to retain it must copy it (it is a
// plain struct, so a plain assignment is a copy).
type DiffBlock struct {
	Kind BlockKind

	// StartA, EndA, StartB, EndB are line index ranges (EndA/EndB
	// exclusive) for BlockChange, BlockAdd, and BlockDelete.
	StartA, EndA int
	StartB, EndB int

	// Offset, ByteA, ByteB are set for BlockByteChange.
	Offset int64
	ByteA  byte
	ByteB  byte

	// SizeA, SizeB are set for BlockSize.
	SizeA, SizeB int64
}

// DiffContext is passed to the callback alongside one [DiffBlock] per
// invocation. A and B are nil for binary comparisons. The callback must
// not retain the context past its return.
type DiffContext struct {
	Path1, Path2 string
	A, B         *LineSequence
	UserContext  any
}

// DiffCallback receives one [DiffBlock] per difference found. It must not
// re-enter [Compare] with the config it was given, and it must not retain
// ctx or block past return.
type DiffCallback func(ctx *DiffContext, block DiffBlock)

// Config controls a comparison.
type Config struct {
	Mode  Mode
	Flags Flags

	// ResyncLines is the minimum run of consecutive matching lines that
	// the resync filter treats as a stable anchor. Values <= 0 fall back to
	// [DefaultResyncLines].
	ResyncLines int

	// BufferLines is a reserved hint; implementations may ignore it.
	BufferLines int

	// Callback is invoked once per diff block. Required: a nil Callback is
	// an [InvalidParameter] error.
	Callback DiffCallback

	// UserContext is opaque data forwarded to the callback via
	// [DiffContext.UserContext].
	UserContext any

	// ConfigPath, if set, names a config file internal/config should use
	// to resolve default flag values before this Config reaches Compare.
	// The core never reads this field itself.
	ConfigPath string

	// Interactive is opaque metadata read only by the CLI's interactive
	// mode; the core never reads it.
	Interactive bool
}

// resyncThreshold returns cfg.ResyncLines, or [DefaultResyncLines] if it is
// not positive.
func (cfg Config) resyncThreshold() int {
	if cfg.ResyncLines <= 0 {
		return DefaultResyncLines
	}

	return cfg.ResyncLines
}
