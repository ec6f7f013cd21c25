package sliceline

// BasicSliceParams bundles the scalars the basic-slice builder needs (§4.3).
type BasicSliceParams struct {
	MinSup      int
	Alpha       float64
	NRows       int
	EAvg        float64
	EAvgOld     float64
	EAvgNew     float64
	Incremental bool // true when this call threads a prior run (§4.3 tightening only applies then)
}

// BuildBasicSlices builds and scores all 1-predicate (level-1) slices over
// the one-hot matrix X2 and its aligned error vector e, applying the base
// selection rule plus, when applicable, the incremental tightening rule
// (§4.3). It returns the surviving slices, their stats, and the selCols
// mask (selCols[j] is true when one-hot column j survived — used later
// for selFeat pruning).
func BuildBasicSlices(X2, addedX2, prevTK2 OneHot, e []float64, p BasicSliceParams) ([]Slice, []Stats, []bool) {
	n2 := X2.Cols()
	selCols := make([]bool, n2)

	addedTouched := make([]bool, n2)
	if addedX2.Rows() > 0 {
		for j := 0; j < n2; j++ {
			addedTouched[j] = addedX2.ColSum(j) > 0
		}
	}
	inPrevTK := make([]bool, n2)
	if prevTK2.Rows() > 0 {
		for j := 0; j < n2; j++ {
			inPrevTK[j] = prevTK2.ColSum(j) > 0
		}
	}

	tighten := p.Incremental && p.EAvgOld > p.EAvgNew && p.EAvgNew != 0

	var slices []Slice
	var stats []Stats
	for j := 0; j < n2; j++ {
		cnt, errSum, maxErr := columnErrorStats(X2, e, j)
		sel := cnt >= float64(p.MinSup) && errSum > 0
		if sel && tighten {
			sel = addedTouched[j] || inPrevTK[j]
		}
		selCols[j] = sel
		if !sel {
			continue
		}
		slices = append(slices, Slice{Cols: []int{j}})
		stats = append(stats, Stats{
			Size:       cnt,
			TotalError: errSum,
			MaxError:   maxErr,
			Score:      Score(cnt, errSum, p.EAvg, p.Alpha, p.NRows),
		})
	}
	return slices, stats, selCols
}

// columnErrorStats computes, for one-hot column j, the count of set rows
// (cCnts), the total error over those rows (err = eᵀX2), and the max
// error among them (merr = colMaxs(X2 ⊙ e)).
func columnErrorStats(X2 OneHot, e []float64, j int) (count, totalError, maxError float64) {
	for i := 0; i < X2.Rows(); i++ {
		if X2.At(i, j) == 1 {
			count++
			totalError += e[i]
			if e[i] > maxError {
				maxError = e[i]
			}
		}
	}
	return count, totalError, maxError
}
