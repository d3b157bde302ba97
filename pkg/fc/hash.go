package fc

// hashLine computes the 32-bit hash of line's bytes under the active
// flags and mode, applying the inline case/whitespace elision rules
// defensively even though normalization has already applied them to the
// stored text:
//
//   - if IgnoreCase is set and mode is [TextUnicode], the caller must pass
//     already-lowercased bytes (full Unicode case mapping happens in the
//     normalizer, not here, since it can change byte length);
//   - if IgnoreCase is set otherwise, ASCII uppercase folds to lowercase
//     inline;
//   - if IgnoreWhitespace is set, spaces and tabs are skipped inline.
//
// The recurrence is h <- h*31 + b, seeded at 0, over the bytes that
// survive the inline filters. It wraps on overflow (unsigned 32-bit
// arithmetic), and is stable across platforms and Go versions: tests rely
// on two identically-normalized inputs hashing equal, never on a specific
// literal value.
func hashLine(b []byte, mode Mode, flags Flags) uint32 {
	foldASCII := flags.Has(IgnoreCase) && mode != TextUnicode
	skipWhitespace := flags.Has(IgnoreWhitespace)

	var h uint32

	for _, c := range b {
		if skipWhitespace && (c == ' ' || c == '\t') {
			continue
		}

		if foldASCII && c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}

		h = h*31 + uint32(c)
	}

	return h
}
