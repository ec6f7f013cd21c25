package sliceline

import "testing"

func TestMergeTopKTruncatesAndSorts(t *testing.T) {
	incumbent := TopK{
		Slices: []Slice{{Cols: []int{0}}},
		Stats:  []Stats{{Score: 5, Size: 10}},
	}
	cands := []Slice{{Cols: []int{1}}, {Cols: []int{2}}, {Cols: []int{3}}}
	stats := []Stats{
		{Score: 8, Size: 10},
		{Score: 2, Size: 10},
		{Score: -1, Size: 10}, // score <= 0: filtered out
	}
	got := MergeTopK(incumbent, cands, stats, 2, 1)
	if len(got.Slices) != 2 {
		t.Fatalf("got %d slices, want 2 (truncated to k)", len(got.Slices))
	}
	if got.Stats[0].Score != 8 || got.Stats[1].Score != 5 {
		t.Errorf("scores = [%v,%v], want [8,5] sorted descending", got.Stats[0].Score, got.Stats[1].Score)
	}
}

func TestMergeTopKFiltersBelowMinSup(t *testing.T) {
	cands := []Slice{{Cols: []int{0}}}
	stats := []Stats{{Score: 10, Size: 1}}
	got := MergeTopK(TopK{}, cands, stats, 4, 5)
	if len(got.Slices) != 0 {
		t.Errorf("got %d slices, want 0: size below minSup must be filtered", len(got.Slices))
	}
}

func TestTopKBottom(t *testing.T) {
	tk := TopK{Stats: []Stats{{Score: 5}, {Score: 3}}}
	if got := tk.Bottom(2); got != 3 {
		t.Errorf("Bottom(2) = %v, want 3", got)
	}
	if got := tk.Bottom(3); got != negInf {
		t.Errorf("Bottom(3) = %v, want -Inf (fewer than k incumbents)", got)
	}
}

func TestMergeTopKStableTieBreak(t *testing.T) {
	incumbent := TopK{
		Slices: []Slice{{Cols: []int{0}}},
		Stats:  []Stats{{Score: 5, Size: 1}},
	}
	cands := []Slice{{Cols: []int{1}}}
	stats := []Stats{{Score: 5, Size: 1}}
	got := MergeTopK(incumbent, cands, stats, 2, 1)
	if len(got.Slices) != 2 || got.Slices[0].Cols[0] != 0 {
		t.Errorf("tie should keep incumbent first, got order %v", got.Slices)
	}
}
