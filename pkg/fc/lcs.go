package fc

import "sort"

// lcsCandidate is one node in the predecessor chain built while computing
// the longest common subsequence. It plays the role the spec's predA/predB
// vectors play, but as a linked value instead of two parallel arrays,
// since Go's garbage collector makes that the idiomatic shape here.
type lcsCandidate struct {
	a, b int
	prev *lcsCandidate
}

// computeLCS returns two parallel, strictly increasing index slices lcsA
// and lcsB such that a.At(lcsA[i]).Hash == b.At(lcsB[i]).Hash for every i,
// and the length is a longest common subsequence of a and b under hash
// equality.
//
// It is a hash-bucketed Hunt-McIlroy variant: a bucket map over b's line
// hashes (each bucket's index list visited in descending order) feeds a
// patience-sort pass over a, maintaining a thresholds vector of the
// smallest b-index completing a common subsequence of each length seen so
// far. The descending visit order within one hash bucket is what stops a
// single line in a from matching several copies in b during one step and
// inflating the computed length.
func computeLCS(a, b *LineSequence) (lcsA, lcsB []int) {
	if a.Len() == 0 || b.Len() == 0 {
		return nil, nil
	}

	buckets := make(map[uint32][]int)
	for j := 0; j < b.Len(); j++ {
		h := b.At(j).Hash
		buckets[h] = append(buckets[h], j)
	}

	var thresholds []*lcsCandidate

	for i := 0; i < a.Len(); i++ {
		matches := buckets[a.At(i).Hash]
		for m := len(matches) - 1; m >= 0; m-- {
			j := matches[m]

			idx := sort.Search(len(thresholds), func(k int) bool {
				return thresholds[k].b >= j
			})

			var prev *lcsCandidate
			if idx > 0 {
				prev = thresholds[idx-1]
			}

			cand := &lcsCandidate{a: i, b: j, prev: prev}

			if idx == len(thresholds) {
				thresholds = append(thresholds, cand)
			} else {
				thresholds[idx] = cand
			}
		}
	}

	length := len(thresholds)
	if length == 0 {
		return nil, nil
	}

	lcsA = make([]int, length)
	lcsB = make([]int, length)

	cand := thresholds[length-1]
	for k := length - 1; k >= 0; k-- {
		lcsA[k] = cand.a
		lcsB[k] = cand.b
		cand = cand.prev
	}

	return lcsA, lcsB
}
