package sliceline

import "testing"

func TestDetectUnchanged(t *testing.T) {
	off := Offsets{Begin: []int{0, 2}, End: []int{2, 4}}
	prior := PriorLattice{
		Levels: []LevelSlices{
			{Slices: []Slice{{Cols: []int{0}}, {Cols: []int{2}}}, Stats: []Stats{{Size: 10}, {Size: 10}}},
			{
				Slices: []Slice{{Cols: []int{0, 2}}, {Cols: []int{1, 3}}},
				Stats:  []Stats{{Size: 9}, {Size: 9}},
			},
		},
	}
	// Added rows only touch {f1=1,f2=1} (cols 0,2).
	addedX := [][]int{{1, 1}, {1, 1}}
	addedX2 := Encode(addedX, off)

	got := DetectUnchanged(prior, addedX2)
	if len(got) != 2 {
		t.Fatalf("got %d levels, want 2", len(got))
	}
	if len(got[0].Slices) != 0 {
		t.Errorf("level 1 unchanged-slice detection should be skipped, got %v", got[0].Slices)
	}
	if len(got[1].Slices) != 1 || !got[1].Slices[0].Equal(Slice{Cols: []int{1, 3}}) {
		t.Errorf("level 2 unchanged = %v, want only {f1=2,f2=2}", got[1].Slices)
	}
}
