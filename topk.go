package sliceline

import "sort"

// TopK holds up to k slices with the highest score found so far, and
// their aligned four-column stats, sorted by score descending (§3, §4.7).
type TopK struct {
	Slices []Slice
	Stats  []Stats
}

// Bottom returns the score of the lowest-ranked incumbent, or -Inf when
// fewer than k slices have been found yet — used to seed and raise the
// pair generator's pruning threshold (§4.5 step 10).
func (tk TopK) Bottom(k int) float64 {
	if len(tk.Stats) < k {
		return negInf
	}
	return tk.Stats[len(tk.Stats)-1].Score
}

// MergeTopK filters newly scored candidates to size >= minSup and score >
// 0, merges survivors with the incumbent top-k, re-sorts by score
// descending, and truncates to k (§4.7). Sorting is stable so that ties
// preserve insertion order: incumbents rank ahead of new candidates with
// an equal score, which keeps minsc a true non-decreasing bound across
// levels.
func MergeTopK(incumbent TopK, cands []Slice, stats []Stats, k, minSup int) TopK {
	type entry struct {
		s Slice
		r Stats
	}
	entries := make([]entry, 0, len(incumbent.Slices)+len(cands))
	for i, s := range incumbent.Slices {
		entries = append(entries, entry{s, incumbent.Stats[i]})
	}
	for i, c := range cands {
		r := stats[i]
		if r.Size >= float64(minSup) && r.Score > 0 {
			entries = append(entries, entry{c, r})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].r.Score > entries[j].r.Score
	})
	if k >= 0 && len(entries) > k {
		entries = entries[:k]
	}

	out := TopK{Slices: make([]Slice, len(entries)), Stats: make([]Stats, len(entries))}
	for i, e := range entries {
		out.Slices[i] = e.s
		out.Stats[i] = e.r
	}
	return out
}
