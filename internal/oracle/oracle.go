// Package oracle is a deliberately naive reference implementation of the
// line-diff pipeline, used only from tests to cross-check the production
// hash-bucketed engine in [github.com/zbalkan/fc/pkg/fc]. It favors an
// O(|A|*|B|) textbook LCS over the production code's patience-sort
// algorithm, trading speed for a second, independently-reasoned source of
// truth.
package oracle

import "github.com/zbalkan/fc/pkg/fc"

// LCS computes the longest common subsequence of a and b by hash equality,
// via a full dynamic-programming table. It is the brute-force counterpart
// of the production engine's patience-sort LCS.
func LCS(a, b *fc.LineSequence) (lcsA, lcsB []int) {
	n, m := a.Len(), b.Len()
	if n == 0 || m == 0 {
		return nil, nil
	}

	// dp[i][j] is the LCS length of a[:i] and b[:j].
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a.At(i-1).Hash == b.At(j-1).Hash {
				dp[i][j] = dp[i-1][j-1] + 1
			} else if dp[i-1][j] >= dp[i][j-1] {
				dp[i][j] = dp[i-1][j]
			} else {
				dp[i][j] = dp[i][j-1]
			}
		}
	}

	length := dp[n][m]
	if length == 0 {
		return nil, nil
	}

	lcsA = make([]int, length)
	lcsB = make([]int, length)

	i, j, k := n, m, length-1
	for i > 0 && j > 0 {
		switch {
		case a.At(i-1).Hash == b.At(j-1).Hash:
			lcsA[k] = i - 1
			lcsB[k] = j - 1
			i--
			j--
			k--
		case dp[i-1][j] >= dp[i][j-1]:
			i--
		default:
			j--
		}
	}

	return lcsA, lcsB
}

// Resync is the brute-force counterpart of the production resync filter:
// it keeps only anchors that belong to a run of at least r consecutive,
// index-adjacent (a, b) pairs.
func Resync(lcsA, lcsB []int, r int) (filteredA, filteredB []int) {
	if r <= 1 || len(lcsA) == 0 {
		return lcsA, lcsB
	}

	runs := splitRuns(lcsA, lcsB)

	for _, run := range runs {
		if len(run.a) >= r {
			filteredA = append(filteredA, run.a...)
			filteredB = append(filteredB, run.b...)
		}
	}

	return filteredA, filteredB
}

type run struct{ a, b []int }

func splitRuns(lcsA, lcsB []int) []run {
	var runs []run

	start := 0
	for i := 1; i <= len(lcsA); i++ {
		broken := i == len(lcsA) || lcsA[i] != lcsA[i-1]+1 || lcsB[i] != lcsB[i-1]+1
		if broken {
			runs = append(runs, run{a: lcsA[start:i], b: lcsB[start:i]})
			start = i
		}
	}

	return runs
}

// Block mirrors [fc.DiffBlock]'s line-range fields for the kinds Emit
// produces: change, add, and delete.
type Block struct {
	Kind           fc.BlockKind
	StartA, EndA   int
	StartB, EndB   int
}

// Emit walks the filtered LCS anchors and produces the same block sequence
// the production emitter would, independently reasoned from the spec's
// anchor-walk description rather than copied from emit.go.
func Emit(lenA, lenB int, lcsA, lcsB []int) []Block {
	length := len(lcsA)
	if length == lenA && length == lenB {
		return nil
	}

	var blocks []Block

	aStart, bStart := 0, 0

	for i := 0; i <= length; i++ {
		aEnd, bEnd := lenA, lenB
		if i < length {
			aEnd, bEnd = lcsA[i], lcsB[i]
		}

		switch {
		case aStart < aEnd && bStart < bEnd:
			blocks = append(blocks, Block{Kind: fc.BlockChange, StartA: aStart, EndA: aEnd, StartB: bStart, EndB: bEnd})
		case bStart < bEnd:
			blocks = append(blocks, Block{Kind: fc.BlockAdd, StartA: aStart, EndA: aStart, StartB: bStart, EndB: bEnd})
		case aStart < aEnd:
			blocks = append(blocks, Block{Kind: fc.BlockDelete, StartA: aStart, EndA: aEnd, StartB: bStart, EndB: bStart})
		}

		if i < length {
			aStart, bStart = aEnd+1, bEnd+1
		}
	}

	return blocks
}
