package sliceline

import "math"

// PairGenParams bundles the scalars and offsets the pair generator needs
// (§4.5).
type PairGenParams struct {
	K       int
	NRows   int
	MinSup  int
	Alpha   float64
	EAvg    float64
	Offsets Offsets
}

// PairGenResult is the pair generator's output: the deduplicated,
// surviving level-L candidates and the (possibly raised) running minsc.
type PairGenResult struct {
	Candidates []Slice
	MinScore   float64
}

// rawCandidate is a pre-dedup candidate produced by joining two parents,
// carrying the upper-bound stats and the generating parent indices needed
// for the missing-parents completeness check.
type rawCandidate struct {
	slice    Slice
	ubSize   float64
	ubError  float64
	ubMError float64
	parents  [2]int
}

// GeneratePairs joins level-(L) survivors into level-(L+1) candidates,
// applying every pruning rule of §4.5 in order: parent validity,
// compatible join, single-value-per-feature, unchanged-and-small pruning,
// deduplication, size/error/score pruning, and missing-parents pruning. It
// returns the surviving candidates and the updated minsc.
func GeneratePairs(parents []Slice, parentStats []Stats, unchanged LevelSlices, minsc, tkBottom float64, p PairGenParams) PairGenResult {
	minsc = math.Max(minsc, tkBottom)

	// Step 1: parent validity.
	var validIdx []int
	for i, st := range parentStats {
		if st.Size >= float64(p.MinSup) && st.TotalError > 0 {
			validIdx = append(validIdx, i)
		}
	}

	level := 0
	if len(parents) > 0 {
		level = parents[0].Level() + 1
	}

	var raw []rawCandidate
	// Steps 2-3: compatible join + construct candidate.
	for a := 0; a < len(validIdx); a++ {
		i := validIdx[a]
		for b := a + 1; b < len(validIdx); b++ {
			j := validIdx[b]
			if intersectCount(parents[i].Cols, parents[j].Cols) != level-2 {
				continue
			}
			union := unionCols(parents[i].Cols, parents[j].Cols)
			if len(union) != level {
				continue // degenerate: parents were identical or overlapped wrong
			}
			// Step 5: single-value-per-feature.
			if !singleValuePerFeature(union, p.Offsets) {
				continue
			}
			cand := Slice{Cols: union}
			// Step 4: unchanged-and-small pruning.
			if prunedUnchangedSmall(cand, unchanged, p.MinSup) {
				continue
			}
			// Step 6: aggregate parent stats (upper bounds).
			si, sj := parentStats[i], parentStats[j]
			raw = append(raw, rawCandidate{
				slice:    cand,
				ubSize:   math.Min(si.Size, sj.Size),
				ubError:  math.Min(si.TotalError, sj.TotalError),
				ubMError: math.Min(si.MaxError, sj.MaxError),
				parents:  [2]int{i, j},
			})
		}
	}

	if len(raw) == 0 {
		return PairGenResult{MinScore: minsc}
	}

	// Step 7: deduplicate by mixed-radix ID, keeping the loosest
	// (largest) upper bound across duplicate derivations per channel.
	rawSlices := make([]Slice, len(raw))
	for i, r := range raw {
		rawSlices[i] = r.slice
	}
	groups := groupByID(rawSlices, p.Offsets)

	var out []Slice
	for _, g := range groups {
		var ubSize, ubError, ubMError float64
		parentSet := map[int]struct{}{}
		for _, m := range g.members {
			r := raw[m]
			ubSize = math.Max(ubSize, r.ubSize)
			ubError = math.Max(ubError, r.ubError)
			ubMError = math.Max(ubMError, r.ubMError)
			parentSet[r.parents[0]] = struct{}{}
			parentSet[r.parents[1]] = struct{}{}
		}

		// Step 8: size/error/score pruning.
		if ubSize < float64(p.MinSup) {
			continue
		}
		ubScore := ScoreUB(ubSize, ubError, ubMError, p.EAvg, p.MinSup, p.Alpha, p.NRows)
		if !(ubScore > 0) || ubScore < minsc {
			continue
		}

		// Step 9: missing-parents pruning.
		if len(parentSet) != level {
			continue
		}

		out = append(out, g.rep)
	}

	return PairGenResult{Candidates: out, MinScore: minsc}
}

// prunedUnchangedSmall implements §4.5 step 4: a candidate equal to a
// prior unchanged slice whose recorded size was already below minSup
// cannot reach minSup now, since no added row touches it.
func prunedUnchangedSmall(cand Slice, unchanged LevelSlices, minSup int) bool {
	for i, u := range unchanged.Slices {
		if u.Equal(cand) && unchanged.Stats[i].Size < float64(minSup) {
			return true
		}
	}
	return false
}
