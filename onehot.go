package sliceline

import "gonum.org/v1/gonum/mat"

// Offsets is the shared one-hot column layout for a feature matrix (§3).
// Feature j's one-hot columns are the 0-based columns Begin[j] through
// End[j]-1, i.e. the half-open range [Begin[j], End[j]).
// Offsets must be reused across incremental calls sharing a dataset schema;
// that's the sole contract enabling lattice reuse.
type Offsets struct {
	Begin []int
	End   []int
}

// Width returns n2, the total number of one-hot columns.
func (o Offsets) Width() int {
	if len(o.End) == 0 {
		return 0
	}
	return o.End[len(o.End)-1]
}

// Domain returns, for each feature, the size of its value domain
// (End[j]-Begin[j]).
func (o Offsets) Domain() []int {
	d := make([]int, len(o.Begin))
	for j := range d {
		d[j] = o.End[j] - o.Begin[j]
	}
	return d
}

// featureOf returns the feature index owning one-hot column col, or -1.
func (o Offsets) featureOf(col int) int {
	for j := range o.Begin {
		if col >= o.Begin[j] && col < o.End[j] {
			return j
		}
	}
	return -1
}

// ComputeOffsets derives feature offsets from the column-wise maxima of X,
// the per-feature domain size, as cumulative sums (§3, §4.1).
func ComputeOffsets(X [][]int) Offsets {
	if len(X) == 0 {
		return Offsets{}
	}
	nFeat := len(X[0])
	domain := make([]int, nFeat)
	for _, row := range X {
		for j, v := range row {
			if v > domain[j] {
				domain[j] = v
			}
		}
	}
	begin := make([]int, nFeat)
	end := make([]int, nFeat)
	cum := 0
	for j, d := range domain {
		begin[j] = cum
		cum += d
		end[j] = cum
	}
	return Offsets{Begin: begin, End: end}
}

// OneHot is a dense 0/1 matrix in one-hot column space. It wraps
// *mat.Dense, the dense-matrix primitive design note §9 asks for, but
// tolerates zero rows or zero columns (the encoder's "empty in, empty
// out" contract) without allocating a live gonum matrix, since mat.Dense
// does not support zero dimensions.
type OneHot struct {
	m    *mat.Dense
	rows int
	cols int
}

// NewOneHot allocates a rows x cols one-hot matrix of zeros.
func NewOneHot(rows, cols int) OneHot {
	if rows <= 0 || cols <= 0 {
		return OneHot{rows: rows, cols: cols}
	}
	return OneHot{m: mat.NewDense(rows, cols, nil), rows: rows, cols: cols}
}

func (o OneHot) Rows() int { return o.rows }
func (o OneHot) Cols() int { return o.cols }

func (o OneHot) At(i, j int) float64 {
	if o.m == nil {
		return 0
	}
	return o.m.At(i, j)
}

func (o OneHot) Set(i, j int, v float64) {
	o.m.Set(i, j, v)
}

// Dense exposes the underlying gonum matrix for bulk algebra (the
// evaluator's data-parallel matrix product). Nil when empty.
func (o OneHot) Dense() *mat.Dense { return o.m }

// RowMatches reports whether row i sets every one-hot column in s.Cols,
// i.e. whether the dataset row satisfies every predicate of the slice.
func (o OneHot) RowMatches(i int, s Slice) bool {
	for _, c := range s.Cols {
		if o.At(i, c) != 1 {
			return false
		}
	}
	return true
}

// ColSum returns the count of set entries in column j.
func (o OneHot) ColSum(j int) float64 {
	var sum float64
	for i := 0; i < o.Rows(); i++ {
		sum += o.At(i, j)
	}
	return sum
}

// Encode maps a recoded integer matrix X into one-hot column space using
// shared feature offsets (§4.1): A2[i, Begin[j]+v-1] = 1 when X[i][j] = v > 0.
// Encoding an empty matrix yields an empty matrix of the correct width.
func Encode(X [][]int, off Offsets) OneHot {
	rows := len(X)
	cols := off.Width()
	out := NewOneHot(rows, cols)
	if rows == 0 || cols == 0 {
		return out
	}
	for i, row := range X {
		for j, v := range row {
			if v <= 0 {
				continue
			}
			out.Set(i, off.Begin[j]+v-1, 1)
		}
	}
	return out
}
