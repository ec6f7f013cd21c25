package sliceline

import "sort"

// DecodeSlice converts a one-hot slice into per-feature values: for
// feature j, the 1-based value set by the slice, or 0 if the slice is
// silent on that feature (§4.8 termination).
func DecodeSlice(s Slice, off Offsets) []int {
	values := make([]int, len(off.Begin))
	for _, c := range s.Cols {
		j := off.featureOf(c)
		if j < 0 {
			continue
		}
		values[j] = c - off.Begin[j] + 1
	}
	return values
}

// EncodeSlice builds a one-hot slice from per-feature values (0 = silent
// on that feature), the inverse of DecodeSlice.
func EncodeSlice(values []int, off Offsets) Slice {
	var cols []int
	for j, v := range values {
		if v > 0 {
			cols = append(cols, off.Begin[j]+v-1)
		}
	}
	sort.Ints(cols)
	return Slice{Cols: cols}
}
