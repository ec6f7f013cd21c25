package sliceline

import "testing"

func TestComputeOffsets(t *testing.T) {
	X := [][]int{
		{1, 2},
		{2, 1},
		{1, 0},
	}
	off := ComputeOffsets(X)
	wantBegin := []int{0, 2}
	wantEnd := []int{2, 4}
	if !intsEqual(off.Begin, wantBegin) || !intsEqual(off.End, wantEnd) {
		t.Fatalf("ComputeOffsets() = %+v, want begin=%v end=%v", off, wantBegin, wantEnd)
	}
	if off.Width() != 4 {
		t.Errorf("Width() = %d, want 4", off.Width())
	}
}

func TestEncode(t *testing.T) {
	X := [][]int{
		{1, 1},
		{1, 2},
		{2, 1},
		{2, 2},
	}
	off := ComputeOffsets(X)
	x2 := Encode(X, off)

	want := [][]float64{
		{1, 0, 1, 0},
		{1, 0, 0, 1},
		{0, 1, 1, 0},
		{0, 1, 0, 1},
	}
	for i, row := range want {
		for j, v := range row {
			if got := x2.At(i, j); got != v {
				t.Errorf("X2[%d][%d] = %v, want %v", i, j, got, v)
			}
		}
	}
}

func TestEncodeEmpty(t *testing.T) {
	off := Offsets{Begin: []int{0}, End: []int{2}}
	x2 := Encode(nil, off)
	if x2.Rows() != 0 || x2.Cols() != 2 {
		t.Errorf("Encode(nil) = rows=%d cols=%d, want rows=0 cols=2", x2.Rows(), x2.Cols())
	}
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	off := Offsets{Begin: []int{0, 2, 5}, End: []int{2, 5, 7}}
	values := []int{2, 0, 1}
	s := EncodeSlice(values, off)
	got := DecodeSlice(s, off)
	if !intsEqual(got, values) {
		t.Errorf("round trip: got %v, want %v", got, values)
	}
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
