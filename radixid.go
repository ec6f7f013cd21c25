package sliceline

import "math/big"

// RadixID computes the mixed-radix integer identifying a slice's
// per-feature values, using domain[j]+1 (the number of possible values for
// feature j including "absent") as the radix for feature j. big.Int
// intermediates avoid the machine-integer overflow §9 warns about for wide
// domains; callers recode the resulting IDs to dense indices before
// building any grouping structure sized by them.
func RadixID(values []int, domain []int) *big.Int {
	id := new(big.Int)
	radix := new(big.Int)
	for j, v := range values {
		radix.SetInt64(int64(domain[j] + 1))
		id.Mul(id, radix)
		id.Add(id, big.NewInt(int64(v)))
	}
	return id
}

// candidateGroup is a set of raw candidate indices that collapsed to the
// same mixed-radix ID (§4.5 step 7).
type candidateGroup struct {
	rep     Slice
	members []int
}

// groupByID deduplicates raw candidate slices sharing the same mixed-radix
// ID, recoding IDs to dense group indices in order of first appearance
// (§9, "deduplication without giant integers").
func groupByID(cands []Slice, off Offsets) []candidateGroup {
	domain := off.Domain()
	index := make(map[string]int, len(cands))
	var groups []candidateGroup
	for i, c := range cands {
		values := DecodeSlice(c, off)
		key := RadixID(values, domain).String()
		gi, ok := index[key]
		if !ok {
			gi = len(groups)
			index[key] = gi
			groups = append(groups, candidateGroup{rep: c})
		}
		groups[gi].members = append(groups[gi].members, i)
	}
	return groups
}
