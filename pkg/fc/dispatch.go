package fc

import (
	"fmt"
	"unicode/utf8"

	"github.com/zbalkan/fc/internal/fs"
)

// Compare is the primary entry point: it compares path1 against path2
// under config and returns the result code. Errors are reported as
// *[Error]; [OK] and [Different] are normal outcomes, never errors.
func Compare(path1, path2 string, cfg Config) (Code, error) {
	return compareWithFS(fs.NewReal(), path1, path2, cfg)
}

// CompareUTF8 is the UTF-8 entry point: it validates that both paths are
// well-formed UTF-8 before delegating to [Compare]. Malformed UTF-8 is an
// invalid-parameter failure, not an io-error.
func CompareUTF8(path1, path2 string, cfg Config) (Code, error) {
	if !utf8.ValidString(path1) || !utf8.ValidString(path2) {
		return InvalidParameter, invalidParameter(errInvalidUTF8)
	}

	return Compare(path1, path2, cfg)
}

// CompareBytes compares two in-memory buffers directly, bypassing the
// filesystem entirely. It exists as a test seam for cross-checking the
// production engine against a reference implementation over arbitrary
// generated inputs; it is not meant to be the primary way callers reach
// this package.
func CompareBytes(data1, data2 []byte, cfg Config) (Code, error) {
	if err := validateConfig(cfg); err != nil {
		return InvalidParameter, err
	}

	mode, err := resolveBytesMode(cfg.Mode, data1, data2)
	if err != nil {
		return IOError, err
	}

	ctx := &DiffContext{UserContext: cfg.UserContext}

	if mode == Binary {
		return diffBytesSized(ctx, data1, data2, cfg), nil
	}

	ctx.A = normalizeLines(data1, mode, cfg.Flags)
	ctx.B = normalizeLines(data2, mode, cfg.Flags)

	lcsA, lcsB := computeLCS(ctx.A, ctx.B)
	filteredA, filteredB := resyncFilter(lcsA, lcsB, cfg.resyncThreshold())

	return emitBlocks(ctx, filteredA, filteredB, cfg), nil
}

func compareWithFS(fsys fs.FS, path1, path2 string, cfg Config) (Code, error) {
	if err := validateConfig(cfg); err != nil {
		return InvalidParameter, err
	}

	if path1 == "" || path2 == "" {
		return InvalidParameter, invalidParameter(errEmptyPath)
	}

	mode, code, err := resolveFileMode(fsys, cfg.Mode, path1, path2)
	if err != nil {
		return code, err
	}

	ctx := &DiffContext{Path1: path1, Path2: path2, UserContext: cfg.UserContext}

	if mode == Binary {
		return compareBinary(fsys, ctx, cfg)
	}

	bufA, err := fsys.Slurp(path1)
	if err != nil {
		return wrapFSError(err)
	}

	bufB, err := fsys.Slurp(path2)
	if err != nil {
		return wrapFSError(err)
	}

	ctx.A = normalizeLines(bufA, mode, cfg.Flags)
	ctx.B = normalizeLines(bufB, mode, cfg.Flags)

	lcsA, lcsB := computeLCS(ctx.A, ctx.B)
	filteredA, filteredB := resyncFilter(lcsA, lcsB, cfg.resyncThreshold())

	return emitBlocks(ctx, filteredA, filteredB, cfg), nil
}

func validateConfig(cfg Config) error {
	if cfg.Callback == nil {
		return invalidParameter(errMissingCallback)
	}

	switch cfg.Mode {
	case TextASCII, TextUnicode, Binary, Auto:
	default:
		return invalidParameter(fmt.Errorf("fc: unknown mode %d", cfg.Mode))
	}

	return nil
}

// resolveFileMode turns an Auto mode into a concrete TextASCII or Binary
// choice by sniffing a read-only mapping of each path's first 4KB; any
// other mode passes through unchanged. Auto-detected text always resolves
// to TextASCII hashing semantics -- see DESIGN.md for why.
func resolveFileMode(fsys fs.FS, mode Mode, path1, path2 string) (Mode, Code, error) {
	if mode != Auto {
		return mode, OK, nil
	}

	textA, err := sniffFile(fsys, path1)
	if err != nil {
		code, wrapped := wrapFSError(err)
		return mode, code, wrapped
	}

	textB, err := sniffFile(fsys, path2)
	if err != nil {
		code, wrapped := wrapFSError(err)
		return mode, code, wrapped
	}

	if textA && textB {
		return TextASCII, OK, nil
	}

	return Binary, OK, nil
}

func sniffFile(fsys fs.FS, path string) (bool, error) {
	m, err := fsys.Map(path)
	if err != nil {
		return false, err
	}
	defer m.Close()

	return looksLikeText(sniffPrefix(m.Bytes())), nil
}

func resolveBytesMode(mode Mode, data1, data2 []byte) (Mode, error) {
	if mode != Auto {
		return mode, nil
	}

	if looksLikeText(sniffPrefix(data1)) && looksLikeText(sniffPrefix(data2)) {
		return TextASCII, nil
	}

	return Binary, nil
}
