package oracle_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/zbalkan/fc/internal/oracle"
	"github.com/zbalkan/fc/pkg/fc"
)

// runReal drives fc.CompareBytes once and returns both the normalized
// sequences it built and the text blocks it emitted, so the oracle can be
// checked against the exact same hashes the production engine used.
func runReal(t *testing.T, a, b []byte, resyncLines int) (seqA, seqB *fc.LineSequence, blocks []oracle.Block) {
	t.Helper()

	cfg := fc.Config{
		Mode:        fc.TextASCII,
		ResyncLines: resyncLines,
		Callback: func(ctx *fc.DiffContext, block fc.DiffBlock) {
			seqA, seqB = ctx.A, ctx.B
			blocks = append(blocks, oracle.Block{
				Kind:   block.Kind,
				StartA: block.StartA, EndA: block.EndA,
				StartB: block.StartB, EndB: block.EndB,
			})
		},
	}

	_, err := fc.CompareBytes(a, b, cfg)
	require.NoError(t, err, "CompareBytes should not fail on in-memory buffers")

	return seqA, seqB, blocks
}

// randomLineBuffer builds n newline-terminated lines drawn from a small
// alphabet, so the two buffers in a test case share a meaningful amount of
// overlap (an alphabet of one value per line would trivially match
// everything; a fully random one would almost never match).
func randomLineBuffer(rng *rand.Rand, n, alphabet int) []byte {
	var buf []byte

	for i := 0; i < n; i++ {
		buf = append(buf, fmt.Appendf(nil, "v%d\n", rng.Intn(alphabet))...)
	}

	return buf
}

func TestModelVsReal_RandomCorpora(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42)) //nolint:gosec // deterministic property test, not security sensitive

	const trials = 200

	for trial := 0; trial < trials; trial++ {
		lenA := rng.Intn(20)
		lenB := rng.Intn(20)
		alphabet := 1 + rng.Intn(8)
		resyncLines := 1 + rng.Intn(4)

		bufA := randomLineBuffer(rng, lenA, alphabet)
		bufB := randomLineBuffer(rng, lenB, alphabet)

		seqA, seqB, got := runReal(t, bufA, bufB, resyncLines)

		if seqA == nil || seqB == nil {
			// Both buffers normalized to identical sequences; nothing to
			// cross-check for this trial.
			continue
		}

		wantLcsA, wantLcsB := oracle.LCS(seqA, seqB)
		wantLcsA, wantLcsB = oracle.Resync(wantLcsA, wantLcsB, resyncLines)
		want := oracle.Emit(seqA.Len(), seqB.Len(), wantLcsA, wantLcsB)

		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("trial %d (lenA=%d lenB=%d alphabet=%d resync=%d): mismatch (-oracle +engine):\n%s",
				trial, lenA, lenB, alphabet, resyncLines, diff)
		}
	}
}

func TestLCS_DoesNotExceedShorterInput(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7)) //nolint:gosec // deterministic property test, not security sensitive

	for trial := 0; trial < 50; trial++ {
		lenA := rng.Intn(15)
		lenB := rng.Intn(15)
		alphabet := 1 + rng.Intn(5)

		bufA := randomLineBuffer(rng, lenA, alphabet)
		bufB := randomLineBuffer(rng, lenB, alphabet)

		seqA, seqB, _ := runReal(t, bufA, bufB, 2)
		if seqA == nil || seqB == nil {
			continue
		}

		lcsA, _ := oracle.LCS(seqA, seqB)

		shorter := seqA.Len()
		if seqB.Len() < shorter {
			shorter = seqB.Len()
		}

		require.LessOrEqualf(t, len(lcsA), shorter, "LCS length must not exceed min(|A|, |B|)")
	}
}
