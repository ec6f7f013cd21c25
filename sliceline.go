// Package sliceline implements an incremental slice-finding engine for
// model debugging: given a categorical (recoded/binned) feature matrix and
// a per-row error vector, it enumerates conjunctive predicates ("slices")
// over feature values and returns the top-k slices where error is
// anomalously high relative to slice size. Runs may be threaded together
// incrementally, reusing the lattice and top-k of a prior run instead of
// recomputing from scratch.
package sliceline

import (
	"gonum.org/v1/gonum/stat"
)

// Params holds the tunables of a single Run invocation (§6 of the design).
type Params struct {
	K       int     // top-k size
	MaxL    int     // max conjunction level; 0 means unlimited (bounded by feature count)
	MinSup  int     // minimum slice size
	Alpha   float64 // score weight in [0,1]: 0 = size only, 1 = error only
	TPEval  bool    // evaluate candidates task-parallel
	TPBlkSz int     // candidates per task-parallel block
	SelFeat bool    // drop one-hot columns that fail the basic-slice filter
	Verbose bool    // populate the debug matrix
}

// DefaultParams returns sensible defaults for a first call with no prior
// run.
func DefaultParams() Params {
	return Params{
		K:       4,
		MaxL:    0,
		MinSup:  32,
		Alpha:   0.5,
		TPEval:  true,
		TPBlkSz: 16,
		SelFeat: false,
	}
}

// PriorRun bundles everything an incremental call needs to reuse from a
// previous invocation: its lattice (grouped by level), its top-k, and the
// parameters it ran with. Params must be non-nil whenever Lattice is
// non-empty (§7, "inconsistent incremental invocation").
type PriorRun struct {
	Lattice PriorLattice
	TK      TopK
	Params  *Params
	Offsets Offsets // the prior run's one-hot column layout; reused verbatim, never recomputed
}

// Input is the single entry point's argument bundle (§6).
type Input struct {
	AddedX [][]int   // newly added rows, required
	AddedE []float64 // errors aligned with AddedX, required
	OldX   [][]int   // previously accumulated rows; empty means first run
	OldE   []float64 // errors aligned with OldX

	Params Params
	Prior  *PriorRun
}

// Output is everything Run returns (§6).
type Output struct {
	TK      [][]int // decoded top-k, one row of feature values per slice
	TKStats []Stats // aligned four-column stats for TK

	Lattice      [][]int // decoded lattice, all levels concatenated
	LevelStats   [][]Stats
	LevelSlices  []LevelSlices // one-hot form, reusable as the next call's PriorRun.Lattice.Levels
	TopKInternal TopK          // one-hot form, reusable as the next call's PriorRun.TK

	Debug []DebugRow

	X       [][]int
	E       []float64
	Params  Params
	Offsets Offsets // thread this into the next call's PriorRun.Offsets to keep columns stable
}

// Run executes one invocation of the lattice enumeration engine: it builds
// level-1 slices, then alternates pair generation, exact evaluation, and
// top-k maintenance for levels 2..L (§4.8).
func Run(in Input) (Output, error) {
	if in.Prior != nil && in.Prior.Params != nil {
		in.Params = *in.Prior.Params
	}
	if err := in.validate(); err != nil {
		return Output{}, err
	}

	newX := append(append([][]int{}, in.OldX...), in.AddedX...)
	totalE := append(append([]float64{}, in.OldE...), in.AddedE...)
	nRows := len(newX)
	nFeat := len(newX[0])

	eAvg := stat.Mean(totalE, nil)
	eAvgOld := meanOrZero(in.OldE)
	eAvgNew := meanOrZero(in.AddedE)

	// Offsets must stay stable across incremental calls (§3, §4.1): reuse a
	// prior run's offsets verbatim rather than recomputing them from newX,
	// which would shift column ranges if addedX introduces a larger value
	// for some feature than any run has seen before.
	off := ComputeOffsets(newX)
	if in.Prior != nil && in.Prior.Offsets.Width() > 0 {
		off = in.Prior.Offsets
	}
	if err := checkOffsets(newX, off); err != nil {
		return Output{}, err
	}

	addedX2 := Encode(in.AddedX, off)
	X2 := Encode(newX, off)

	var prevTK2 OneHot
	var unchanged []LevelSlices
	if in.Prior != nil {
		prevTK2 = candidateMatrix(in.Prior.TK.Slices, off.Width())
		unchanged = DetectUnchanged(in.Prior.Lattice, addedX2)
	}

	basicParams := BasicSliceParams{
		MinSup:      in.Params.MinSup,
		Alpha:       in.Params.Alpha,
		NRows:       nRows,
		EAvg:        eAvg,
		EAvgOld:     eAvgOld,
		EAvgNew:     eAvgNew,
		Incremental: in.Prior != nil,
	}
	level1, level1Stats, selCols := BuildBasicSlices(X2, addedX2, prevTK2, totalE, basicParams)

	topk := MergeTopK(TopK{}, level1, level1Stats, in.Params.K, in.Params.MinSup)

	minsc := negInf
	if in.Prior != nil && len(in.Prior.TK.Slices) > 0 {
		rescored := evaluateMixed(X2, totalE, in.Prior.TK.Slices, EvalParams{EAvg: eAvg, Alpha: in.Params.Alpha, NRows: nRows})
		minsc = minScore(rescored)
	}

	if in.Params.SelFeat {
		X2 = maskColumns(X2, selCols)
		addedX2 = maskColumns(addedX2, selCols)
	}

	allLevels := make([]LevelSlices, 0, nFeat)
	allLevels = append(allLevels, LevelSlices{Slices: level1, Stats: level1Stats})
	debug := make([]DebugRow, 0, nFeat)

	maxL := nFeat
	if in.Params.MaxL > 0 && in.Params.MaxL < maxL {
		maxL = in.Params.MaxL
	}

	parents, parentStats := level1, level1Stats
	evalParams := EvalParams{EAvg: eAvg, Alpha: in.Params.Alpha, NRows: nRows}

	for level := 2; level <= maxL && len(parents) > 0; level++ {
		var unchangedAtLevel LevelSlices
		if level-1 < len(unchanged) {
			unchangedAtLevel = unchanged[level-1]
		}

		pg := PairGenParams{
			K:       in.Params.K,
			NRows:   nRows,
			MinSup:  in.Params.MinSup,
			Alpha:   in.Params.Alpha,
			EAvg:    eAvg,
			Offsets: off,
		}
		genResult := GeneratePairs(parents, parentStats, unchangedAtLevel, minsc, topk.Bottom(in.Params.K), pg)
		minsc = genResult.MinScore

		stats := Evaluate(X2, totalE, genResult.Candidates, level, evalParams, in.Params.TPEval, in.Params.TPBlkSz)
		topk = MergeTopK(topk, genResult.Candidates, stats, in.Params.K, in.Params.MinSup)

		if in.Params.Verbose {
			valid := 0
			for _, s := range stats {
				if s.Size >= float64(in.Params.MinSup) && s.TotalError > 0 {
					valid++
				}
			}
			debug = append(debug, DebugRow{
				Level:      level,
				Enumerated: len(genResult.Candidates),
				Valid:      valid,
				TKMax:      topKMax(topk),
				TKMin:      topk.Bottom(in.Params.K),
			})
		}

		allLevels = append(allLevels, LevelSlices{Slices: genResult.Candidates, Stats: stats})

		parents, parentStats = filterValid(genResult.Candidates, stats, in.Params.MinSup)
	}

	var decodedLattice [][]int
	var levelStats [][]Stats
	for _, lvl := range allLevels {
		levelStats = append(levelStats, lvl.Stats)
		for _, s := range lvl.Slices {
			decodedLattice = append(decodedLattice, DecodeSlice(s, off))
		}
	}

	decodedTK := make([][]int, len(topk.Slices))
	for i, s := range topk.Slices {
		decodedTK[i] = DecodeSlice(s, off)
	}

	return Output{
		TK:           decodedTK,
		TKStats:      topk.Stats,
		Lattice:      decodedLattice,
		LevelStats:   levelStats,
		LevelSlices:  allLevels,
		TopKInternal: topk,
		Debug:        debug,
		X:            newX,
		E:            totalE,
		Params:       in.Params,
		Offsets:      off,
	}, nil
}

func meanOrZero(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return stat.Mean(v, nil)
}

func filterValid(cands []Slice, stats []Stats, minSup int) ([]Slice, []Stats) {
	var s []Slice
	var r []Stats
	for i, c := range cands {
		if stats[i].Size >= float64(minSup) && stats[i].TotalError > 0 {
			s = append(s, c)
			r = append(r, stats[i])
		}
	}
	return s, r
}

func minScore(stats []Stats) float64 {
	m := posInf
	for _, s := range stats {
		if s.Score < m {
			m = s.Score
		}
	}
	return m
}

func topKMax(tk TopK) float64 {
	if len(tk.Stats) == 0 {
		return negInf
	}
	return tk.Stats[0].Score
}

func maskColumns(o OneHot, keep []bool) OneHot {
	out := NewOneHot(o.Rows(), o.Cols())
	if o.Rows() == 0 || o.Cols() == 0 {
		return out
	}
	for i := 0; i < o.Rows(); i++ {
		for j := 0; j < o.Cols(); j++ {
			if j < len(keep) && keep[j] && o.At(i, j) == 1 {
				out.Set(i, j, 1)
			}
		}
	}
	return out
}
