package sliceline

import "sort"

// Slice is the internal representation of a conjunction of equality
// predicates: the sorted, deduplicated one-hot column indices it sets. Its
// level is the number of predicates it conjoins, equal to len(Cols).
type Slice struct {
	Cols []int
}

// Level returns the number of predicates the slice conjoins.
func (s Slice) Level() int { return len(s.Cols) }

// Equal reports whether two slices set exactly the same one-hot columns.
func (s Slice) Equal(o Slice) bool {
	if len(s.Cols) != len(o.Cols) {
		return false
	}
	for i, c := range s.Cols {
		if o.Cols[i] != c {
			return false
		}
	}
	return true
}

// intersectCount returns |a ∩ b| for two sorted, deduplicated column lists.
func intersectCount(a, b []int) int {
	i, j, n := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			n++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return n
}

// unionCols returns the sorted, deduplicated union of two sorted column
// lists.
func unionCols(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// singleValuePerFeature reports whether cols sets at most one column per
// feature group, per the shared offsets (§4.5 step 5).
func singleValuePerFeature(cols []int, off Offsets) bool {
	seen := make(map[int]bool, len(cols))
	for _, c := range cols {
		j := off.featureOf(c)
		if seen[j] {
			return false
		}
		seen[j] = true
	}
	return true
}

// sortedCopy returns a sorted copy of cols.
func sortedCopy(cols []int) []int {
	out := append([]int(nil), cols...)
	sort.Ints(out)
	return out
}
