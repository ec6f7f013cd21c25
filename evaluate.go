package sliceline

import (
	"sync"

	"gonum.org/v1/gonum/mat"
)

// EvalParams bundles the scalars the slice evaluator needs to score
// candidates (§4.6).
type EvalParams struct {
	EAvg  float64
	Alpha float64
	NRows int
}

// Evaluate computes exact (score, totalError, maxError, size) for every
// candidate slice in cands against the full current dataset X2/e (§4.6).
// All candidates must share the same level. When taskParallel is set and
// there are more candidates than blockSize, candidates are split into
// blocks evaluated by independent goroutines; otherwise one data-parallel
// matrix product covers every candidate at once. Both modes produce
// identical stats, up to floating-point reassociation within a block.
func Evaluate(X2 OneHot, e []float64, cands []Slice, level int, p EvalParams, taskParallel bool, blockSize int) []Stats {
	if len(cands) == 0 {
		return nil
	}
	if !taskParallel || blockSize <= 0 || len(cands) <= blockSize {
		return evaluateBlock(X2, e, cands, level, p)
	}
	return evaluateTaskParallel(X2, e, cands, level, p, blockSize)
}

func evaluateTaskParallel(X2 OneHot, e []float64, cands []Slice, level int, p EvalParams, blockSize int) []Stats {
	nBlocks := (len(cands) + blockSize - 1) / blockSize
	results := make([][]Stats, nBlocks)

	var wg sync.WaitGroup
	wg.Add(nBlocks)
	for b := 0; b < nBlocks; b++ {
		go func(b int) {
			defer wg.Done()
			lo := b * blockSize
			hi := lo + blockSize
			if hi > len(cands) {
				hi = len(cands)
			}
			results[b] = evaluateBlock(X2, e, cands[lo:hi], level, p)
		}(b)
	}
	wg.Wait()

	out := make([]Stats, 0, len(cands))
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}

// evaluateBlock computes exact stats for a contiguous block of
// same-level candidates using one matrix-matrix product (X2 * Sᵀ) against
// the full one-hot dataset: row i matches candidate c iff the dot product
// equals the candidate's level.
func evaluateBlock(X2 OneHot, e []float64, cands []Slice, level int, p EvalParams) []Stats {
	out := make([]Stats, len(cands))
	if X2.Rows() == 0 || X2.Cols() == 0 {
		return out
	}
	S := candidateMatrix(cands, X2.Cols())

	var prod mat.Dense
	prod.Mul(X2.Dense(), S.Dense().T())
	rows, cols := prod.Dims()

	for c := 0; c < cols; c++ {
		var size, total, maxErr float64
		for i := 0; i < rows; i++ {
			if prod.At(i, c) == float64(level) {
				size++
				total += e[i]
				if e[i] > maxErr {
					maxErr = e[i]
				}
			}
		}
		out[c] = Stats{
			Size:       size,
			TotalError: total,
			MaxError:   maxErr,
			Score:      Score(size, total, p.EAvg, p.Alpha, p.NRows),
		}
	}
	return out
}

// evaluateMixed scores slices of mixed levels (used to re-score a prior
// run's top-k against the current dataset, §4.8 step 6) by grouping them
// by level and evaluating each group with Evaluate.
func evaluateMixed(X2 OneHot, e []float64, slices []Slice, p EvalParams) []Stats {
	out := make([]Stats, len(slices))
	byLevel := map[int][]int{}
	for i, s := range slices {
		byLevel[s.Level()] = append(byLevel[s.Level()], i)
	}
	for level, idxs := range byLevel {
		group := make([]Slice, len(idxs))
		for k, idx := range idxs {
			group[k] = slices[idx]
		}
		stats := Evaluate(X2, e, group, level, p, false, 0)
		for k, idx := range idxs {
			out[idx] = stats[k]
		}
	}
	return out
}

// candidateMatrix builds a dense one-hot matrix out of a list of slices,
// one row per slice, for use in a bulk matrix product.
func candidateMatrix(cands []Slice, n2 int) OneHot {
	S := NewOneHot(len(cands), n2)
	for i, s := range cands {
		for _, c := range s.Cols {
			S.Set(i, c, 1)
		}
	}
	return S
}
