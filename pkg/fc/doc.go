// Package fc compares two files and reports whether they are identical,
// which bytes or lines differ, and, in text mode, the minimal set of
// line-level edit blocks that transform one file into the other.
//
// The package is organized around three cooperating subsystems:
//
//   - a line-diff engine: a Hunt-McIlroy longest common subsequence over
//     hashed lines, a resync filter that keeps only runs of matching lines
//     long enough to be stable anchors, and a block emitter that walks the
//     surviving anchors to produce change/add/delete blocks;
//   - a line normalization pipeline: splitting a byte buffer into lines,
//     applying tab expansion, whitespace elision, and case folding, then
//     hashing each line for fast equality;
//   - mode dispatch and content sniffing: choosing the text or binary path,
//     auto-detecting from a byte prefix when asked, and comparing binary
//     files byte-for-byte over memory-mapped regions.
//
// Call [Compare] to run a comparison. Any non-nil error it returns is an
// [*Error]; check its Code to distinguish an I/O failure from a bad
// parameter or an allocation failure.
package fc
