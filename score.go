package sliceline

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

// Stats is the four-column per-slice statistics row of §3: score, total
// error, max error, and size.
type Stats struct {
	Score      float64
	TotalError float64
	MaxError   float64
	Size       float64
}

// Score computes a slice's score from its size and error against the
// dataset reference average error (§4.2):
//
//	sc = alpha*((totalError/size)/eAvg - 1) - (1-alpha)*(nRows/size - 1)
//
// Division by zero or an undefined result maps to -Inf so such slices are
// never chosen.
func Score(size, totalError, eAvg, alpha float64, nRows int) float64 {
	if size <= 0 || eAvg == 0 {
		return negInf
	}
	sc := alpha*((totalError/size)/eAvg-1) - (1-alpha)*(float64(nRows)/size-1)
	if math.IsNaN(sc) {
		return negInf
	}
	return sc
}

// ScoreUB computes a monotone upper-bound score for pruning (§4.2). Score
// is monotone in size with a fixed sign on each branch, so it probes three
// size candidates {minSup, max(totalError/maxError, minSup), size}, caps
// totalError at size*maxError for each, and returns the largest resulting
// score. The result is guaranteed >= the true score of any slice
// consistent with the given aggregated upper-bound stats.
func ScoreUB(size, totalError, maxError, eAvg float64, minSup int, alpha float64, nRows int) float64 {
	if maxError <= 0 {
		return negInf
	}
	minSupF := float64(minSup)
	probes := [3]float64{minSupF, math.Max(totalError/maxError, minSupF), size}
	scores := make([]float64, 0, len(probes))
	for _, s := range probes {
		if s <= 0 {
			continue
		}
		te := math.Min(totalError, s*maxError)
		scores = append(scores, Score(s, te, eAvg, alpha, nRows))
	}
	if len(scores) == 0 {
		return negInf
	}
	best := floats.Max(scores)
	if math.IsNaN(best) {
		return negInf
	}
	return best
}
