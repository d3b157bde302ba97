package fc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func seqFromHashes(hashes ...uint32) *LineSequence {
	seq := &LineSequence{Lines: make([]Line, len(hashes))}
	for i, h := range hashes {
		seq.Lines[i] = Line{Hash: h}
	}

	return seq
}

func TestComputeLCS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		a, b  []uint32
		wantA []int
		wantB []int
	}{
		{
			name:  "both empty",
			a:     nil,
			b:     nil,
			wantA: nil,
			wantB: nil,
		},
		{
			name:  "a empty",
			a:     nil,
			b:     []uint32{1, 2, 3},
			wantA: nil,
			wantB: nil,
		},
		{
			name:  "identical",
			a:     []uint32{1, 2, 3},
			b:     []uint32{1, 2, 3},
			wantA: []int{0, 1, 2},
			wantB: []int{0, 1, 2},
		},
		{
			name:  "middle changed",
			a:     []uint32{1, 2, 3},
			b:     []uint32{1, 9, 3},
			wantA: []int{0, 2},
			wantB: []int{0, 2},
		},
		{
			name:  "insertion",
			a:     []uint32{1, 2},
			b:     []uint32{1, 5, 2},
			wantA: []int{0, 1},
			wantB: []int{0, 2},
		},
		{
			name:  "duplicate hash does not inflate length",
			a:     []uint32{7, 7},
			b:     []uint32{7, 7, 7},
			wantA: []int{0, 1},
			wantB: []int{0, 1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lcsA, lcsB := computeLCS(seqFromHashes(tc.a...), seqFromHashes(tc.b...))

			if diff := cmp.Diff(tc.wantA, lcsA); diff != "" {
				t.Errorf("lcsA mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(tc.wantB, lcsB); diff != "" {
				t.Errorf("lcsB mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResyncFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lcsA  []int
		lcsB  []int
		r     int
		wantA []int
		wantB []int
	}{
		{
			name: "empty input",
			r:    2,
		},
		{
			name:  "r<=1 passes through",
			lcsA:  []int{0, 5, 9},
			lcsB:  []int{0, 4, 9},
			r:     1,
			wantA: []int{0, 5, 9},
			wantB: []int{0, 4, 9},
		},
		{
			name:  "single line anchors discarded at threshold 2",
			lcsA:  []int{0, 5, 9},
			lcsB:  []int{0, 4, 9},
			r:     2,
			wantA: nil,
			wantB: nil,
		},
		{
			name:  "run of three kept",
			lcsA:  []int{0, 1, 2, 9},
			lcsB:  []int{0, 1, 2, 20},
			r:     2,
			wantA: []int{0, 1, 2},
			wantB: []int{0, 1, 2},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gotA, gotB := resyncFilter(tc.lcsA, tc.lcsB, tc.r)

			if diff := cmp.Diff(tc.wantA, gotA); diff != "" {
				t.Errorf("filteredA mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(tc.wantB, gotB); diff != "" {
				t.Errorf("filteredB mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
