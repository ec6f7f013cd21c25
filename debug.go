package sliceline

// DebugRow records one level's enumeration and pruning statistics for the
// optional debug matrix D: level, candidates enumerated, candidates valid
// after pruning, and the current top-k's max/min score (§6 output table).
type DebugRow struct {
	Level      int
	Enumerated int
	Valid      int
	TKMax      float64
	TKMin      float64
}
