package fc

import (
	"encoding/binary"

	"github.com/zbalkan/fc/internal/fs"
)

// compareBinary implements the binary comparator: stat both paths, emit a
// single size block on a size mismatch, otherwise memory-map both files
// read-only and emit one change block per mismatching byte offset.
//
// Mismatches are located eight bytes at a time via a little-endian word
// compare, narrowing to the exact offset only inside a chunk that
// differs; the callback contract stays byte-granular regardless.
func compareBinary(fsys fs.FS, ctx *DiffContext, cfg Config) (Code, error) {
	infoA, err := fsys.Stat(ctx.Path1)
	if err != nil {
		return wrapFSError(err)
	}

	infoB, err := fsys.Stat(ctx.Path2)
	if err != nil {
		return wrapFSError(err)
	}

	if infoA.Size != infoB.Size {
		cfg.Callback(ctx, DiffBlock{
			Kind:  BlockSize,
			SizeA: infoA.Size,
			SizeB: infoB.Size,
		})

		return Different, nil
	}

	if infoA.Size == 0 {
		return OK, nil
	}

	mapA, err := fsys.Map(ctx.Path1)
	if err != nil {
		return wrapFSError(err)
	}
	defer mapA.Close()

	mapB, err := fsys.Map(ctx.Path2)
	if err != nil {
		return wrapFSError(err)
	}
	defer mapB.Close()

	return diffBytes(ctx, mapA.Bytes(), mapB.Bytes(), cfg), nil
}

// diffBytes scans two equal-length buffers for mismatching bytes and
// emits one change block per mismatch, eight bytes at a time with a
// little-endian word compare to skip matching runs quickly.
func diffBytes(ctx *DiffContext, bufA, bufB []byte, cfg Config) Code {
	result := OK

	const wordSize = 8

	i := 0
	for ; i+wordSize <= len(bufA); i += wordSize {
		if binary.LittleEndian.Uint64(bufA[i:]) == binary.LittleEndian.Uint64(bufB[i:]) {
			continue
		}

		for k := 0; k < wordSize; k++ {
			if bufA[i+k] != bufB[i+k] {
				cfg.Callback(ctx, DiffBlock{
					Kind:   BlockByteChange,
					Offset: int64(i + k),
					ByteA:  bufA[i+k],
					ByteB:  bufB[i+k],
				})

				result = Different
			}
		}
	}

	for ; i < len(bufA); i++ {
		if bufA[i] != bufB[i] {
			cfg.Callback(ctx, DiffBlock{
				Kind:   BlockByteChange,
				Offset: int64(i),
				ByteA:  bufA[i],
				ByteB:  bufB[i],
			})

			result = Different
		}
	}

	return result
}

// diffBytesSized compares two in-memory buffers as a complete binary
// comparison, including the size check, without touching the filesystem.
// It backs [CompareBytes] in binary mode.
func diffBytesSized(ctx *DiffContext, bufA, bufB []byte, cfg Config) Code {
	if len(bufA) != len(bufB) {
		cfg.Callback(ctx, DiffBlock{
			Kind:  BlockSize,
			SizeA: int64(len(bufA)),
			SizeB: int64(len(bufB)),
		})

		return Different
	}

	if len(bufA) == 0 {
		return OK
	}

	return diffBytes(ctx, bufA, bufB, cfg)
}
