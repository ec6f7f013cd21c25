package sliceline

// LevelSlices is a set of slices and their aligned stats, all at the same
// lattice level.
type LevelSlices struct {
	Slices []Slice
	Stats  []Stats
}

// PriorLattice is a prior run's lattice and per-level statistics, grouped
// by level (Levels[i] holds level i+1). This is also how the level
// boundaries inferred from prevRL's cumulative row counts are represented
// in Go: as a slice of groups rather than one flat matrix plus a
// row-count vector.
type PriorLattice struct {
	Levels []LevelSlices
}

// Empty reports whether the prior lattice carries no slices at all.
func (p PriorLattice) Empty() bool {
	for _, lvl := range p.Levels {
		if len(lvl.Slices) > 0 {
			return false
		}
	}
	return true
}

// DetectUnchanged identifies, for every level >= 2, the subset of a prior
// run's slices that no row in the newly added batch satisfies (§4.4). A
// slice is unchanged when no added row matches all of its predicates.
func DetectUnchanged(prior PriorLattice, addedX2 OneHot) []LevelSlices {
	out := make([]LevelSlices, len(prior.Levels))
	for li, lvl := range prior.Levels {
		if li+1 < 2 {
			continue
		}
		var uSlices []Slice
		var uStats []Stats
		for si, s := range lvl.Slices {
			touched := false
			for i := 0; i < addedX2.Rows(); i++ {
				if addedX2.RowMatches(i, s) {
					touched = true
					break
				}
			}
			if !touched {
				uSlices = append(uSlices, s)
				uStats = append(uStats, lvl.Stats[si])
			}
		}
		out[li] = LevelSlices{Slices: uSlices, Stats: uStats}
	}
	return out
}
