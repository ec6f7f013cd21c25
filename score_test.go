package sliceline

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestScore(t *testing.T) {
	testdata := []struct {
		size, totalError, eAvg, alpha float64
		nRows                         int
		want                          float64
	}{
		// All-identical rows, uniform error: totalError/size == eAvg, size == nRows -> score 0.
		{4, 4, 1, 0.5, 4, 0},
		// Zero size is undefined.
		{0, 10, 1, 1, 4, negInf},
		// Zero average error is undefined.
		{4, 4, 0, 0.5, 4, negInf},
	}
	for i, d := range testdata {
		got := Score(d.size, d.totalError, d.eAvg, d.alpha, d.nRows)
		if !almostEqual(got, d.want) {
			t.Errorf("case %d: Score(%v,%v,%v,%v,%v) = %v, want %v", i, d.size, d.totalError, d.eAvg, d.alpha, d.nRows, got, d.want)
		}
	}
}

func TestScoreOutlier(t *testing.T) {
	// One outlier row: size=1, totalError=10, eAvg=13/4, alpha=1 -> pure error lift.
	eAvg := 13.0 / 4.0
	got := Score(1, 10, eAvg, 1, 4)
	want := (10.0/1.0)/eAvg - 1
	if !almostEqual(got, want) {
		t.Errorf("Score() = %v, want %v", got, want)
	}
}

func TestScoreUBDominatesActual(t *testing.T) {
	// The upper bound over aggregated parent stats must be >= the true
	// score of any slice consistent with those stats (monotonicity, §8).
	eAvg := 2.5
	minSup := 2
	alpha := 0.5
	nRows := 20

	testdata := []struct {
		ubSize, ubError, ubMError float64
		actualSize, actualError   float64
	}{
		{10, 40, 8, 10, 40},
		{10, 40, 8, 6, 20},
		{10, 40, 8, 2, 4},
	}
	for i, d := range testdata {
		ub := ScoreUB(d.ubSize, d.ubError, d.ubMError, eAvg, minSup, alpha, nRows)
		actual := Score(d.actualSize, d.actualError, eAvg, alpha, nRows)
		if ub < actual {
			t.Errorf("case %d: ScoreUB = %v < actual Score = %v", i, ub, actual)
		}
	}
}

// almostEqual wraps floats.EqualWithinAbs with the Inf-vs-Inf case the
// gonum helper does not define, since unbounded scores (invalid slices,
// unseeded minsc) compare equal as themselves here.
func almostEqual(a, b float64) bool {
	if math.IsInf(a, -1) && math.IsInf(b, -1) {
		return true
	}
	if math.IsInf(a, 1) && math.IsInf(b, 1) {
		return true
	}
	return floats.EqualWithinAbs(a, b, 1e-9)
}
