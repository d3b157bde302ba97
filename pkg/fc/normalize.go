package fc

import "strings"

// splitLines splits data into lines per the original's rule: a line is a
// maximal run of bytes containing neither LF nor CR; after producing a
// line, a single run of any mix of LF and CR bytes is skipped before the
// next line starts. A trailing terminator does not produce an extra empty
// trailing line; an unterminated trailing non-empty line does produce one.
//
// Because one run of terminator bytes is collapsed into a single skip, two
// or more consecutive blank lines never survive splitting as separate
// empty lines -- this mirrors the boundary behavior the original pins down
// for a lone CRLF pair ("one line break, not two") generalized to any run
// length.
func splitLines(data []byte) [][]byte {
	var lines [][]byte

	n := len(data)
	i := 0

	for i < n {
		start := i
		for i < n && data[i] != '\n' && data[i] != '\r' {
			i++
		}

		lines = append(lines, data[start:i])

		for i < n && (data[i] == '\n' || data[i] == '\r') {
			i++
		}
	}

	return lines
}

// expandTabs replaces every tab byte with four literal spaces. The
// expansion is not tab-stop-aligned.
func expandTabs(b []byte) []byte {
	count := 0
	for _, c := range b {
		if c == '\t' {
			count++
		}
	}

	if count == 0 {
		return b
	}

	const tabWidth = 4

	out := make([]byte, 0, len(b)+count*(tabWidth-1))
	for _, c := range b {
		if c == '\t' {
			out = append(out, ' ', ' ', ' ', ' ')
		} else {
			out = append(out, c)
		}
	}

	return out
}

// elideWhitespace removes every space and tab byte.
func elideWhitespace(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c == ' ' || c == '\t' {
			continue
		}

		out = append(out, c)
	}

	return out
}

// normalizeLines parses data into a [LineSequence], applying tab
// expansion, whitespace elision, and discard-if-empty in that fixed order,
// then hashing each surviving line under mode and flags.
func normalizeLines(data []byte, mode Mode, flags Flags) *LineSequence {
	rawLines := splitLines(data)

	seq := &LineSequence{Lines: make([]Line, 0, len(rawLines))}

	expand := !flags.Has(PreserveRawTabs)
	elide := flags.Has(IgnoreWhitespace)

	for _, raw := range rawLines {
		text := raw

		if expand {
			text = expandTabs(text)
		}

		if elide {
			text = elideWhitespace(text)
			if len(text) == 0 {
				continue
			}
		}

		seq.Lines = append(seq.Lines, Line{
			Text: text,
			Len:  len(text),
			Hash: computeHash(text, mode, flags),
		})
	}

	return seq
}

// computeHash hashes text under mode and flags. For Unicode text with
// case folding requested, the text is lowercased via a full Unicode case
// mapping before hashing (this can change byte length, which is why it
// happens here rather than inline in [hashLine]); the stored [Line.Text]
// itself is never case-folded, only its hash is.
func computeHash(text []byte, mode Mode, flags Flags) uint32 {
	if flags.Has(IgnoreCase) && mode == TextUnicode {
		lower := strings.ToLower(string(text))

		return hashLine([]byte(lower), mode, flags)
	}

	return hashLine(text, mode, flags)
}
