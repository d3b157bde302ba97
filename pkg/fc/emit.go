package fc

// emitBlocks walks the filtered LCS anchors and invokes ctx's callback for
// each edit block, in increasing-position order. It returns [Different] if
// any callback fired, [OK] otherwise.
//
// Fast path: if the filtered LCS spans both sequences entirely (length
// equals both |A| and |B|), the files align line-for-line and no callback
// fires.
//
// General path: walk the anchors plus one synthetic trailing anchor at
// (|A|, |B|), tracking cursors a_start/b_start across iterations. At each
// anchor, the gap before it is a change block if both sides have a gap, an
// add block if only B has a gap, a delete block if only A has a gap, or
// nothing if neither does.
func emitBlocks(ctx *DiffContext, lcsA, lcsB []int, cfg Config) Code {
	lenA := ctx.A.Len()
	lenB := ctx.B.Len()
	length := len(lcsA)

	if length == lenA && length == lenB {
		return OK
	}

	result := OK

	aStart, bStart := 0, 0

	for i := 0; i <= length; i++ {
		var aEnd, bEnd int

		if i < length {
			aEnd = lcsA[i]
			bEnd = lcsB[i]
		} else {
			aEnd = lenA
			bEnd = lenB
		}

		switch {
		case aStart < aEnd && bStart < bEnd:
			cfg.Callback(ctx, DiffBlock{
				Kind:   BlockChange,
				StartA: aStart,
				EndA:   aEnd,
				StartB: bStart,
				EndB:   bEnd,
			})

			result = Different
		case bStart < bEnd:
			cfg.Callback(ctx, DiffBlock{
				Kind:   BlockAdd,
				StartA: aStart,
				EndA:   aStart,
				StartB: bStart,
				EndB:   bEnd,
			})

			result = Different
		case aStart < aEnd:
			cfg.Callback(ctx, DiffBlock{
				Kind:   BlockDelete,
				StartA: aStart,
				EndA:   aEnd,
				StartB: bStart,
				EndB:   bStart,
			})

			result = Different
		}

		if i < length {
			aStart = aEnd + 1
			bStart = bEnd + 1
		}
	}

	return result
}
