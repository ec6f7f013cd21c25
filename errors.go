package sliceline

import (
	"errors"
	"fmt"
)

// ErrInconsistentParams is returned when a prior lattice is supplied
// without the prior run's params (§7: incremental runs must reuse the
// parameters of the original run to keep scores and lattice shape
// comparable; mixing parameters silently would corrupt the lattice).
var ErrInconsistentParams = errors.New("sliceline: prior lattice supplied without prior params")

// ErrDimensionMismatch wraps every structural precondition failure: column
// count or row count mismatches between AddedX, OldX, AddedE and OldE.
var ErrDimensionMismatch = errors.New("sliceline: dimension mismatch")

// ErrOffsetsMismatch is returned when a dataset does not fit the one-hot
// offsets it is being encoded against: a prior run's Offsets must remain
// valid for every later incremental call (§3, §4.1), which fails when a
// later batch introduces a feature count or a per-feature value the prior
// offsets never allocated a column for.
var ErrOffsetsMismatch = errors.New("sliceline: dataset does not fit prior offsets")

// validate checks the error conditions of §7 before any computation
// starts: the inconsistent-incremental-invocation condition and every
// dimension-mismatch precondition.
func (in Input) validate() error {
	if in.Prior != nil && !in.Prior.Lattice.Empty() && in.Prior.Params == nil {
		return ErrInconsistentParams
	}
	if in.Prior != nil && !in.Prior.Lattice.Empty() && in.Prior.Offsets.Width() == 0 {
		return ErrInconsistentParams
	}
	if len(in.AddedX) == 0 {
		return fmt.Errorf("%w: addedX must not be empty", ErrDimensionMismatch)
	}
	if len(in.AddedE) != len(in.AddedX) {
		return fmt.Errorf("%w: newE has %d rows, addedX has %d", ErrDimensionMismatch, len(in.AddedE), len(in.AddedX))
	}
	nFeat := len(in.AddedX[0])
	for i, row := range in.AddedX {
		if len(row) != nFeat {
			return fmt.Errorf("%w: addedX row %d has %d columns, want %d", ErrDimensionMismatch, i, len(row), nFeat)
		}
	}
	if len(in.OldX) != len(in.OldE) {
		return fmt.Errorf("%w: oldE has %d rows, oldX has %d", ErrDimensionMismatch, len(in.OldE), len(in.OldX))
	}
	for i, row := range in.OldX {
		if len(row) != nFeat {
			return fmt.Errorf("%w: oldX row %d has %d columns, want %d", ErrDimensionMismatch, i, len(row), nFeat)
		}
	}
	return nil
}

// checkOffsets verifies that every row of X fits within off: same feature
// count, and every value within its feature's domain. A freshly computed
// Offsets always passes; this only rejects a prior run's reused Offsets
// when a later batch introduces a feature value they never allocated a
// one-hot column for (§3, §4.1).
func checkOffsets(X [][]int, off Offsets) error {
	if len(X) == 0 {
		return nil
	}
	nFeat := len(X[0])
	if nFeat != len(off.Begin) {
		return fmt.Errorf("%w: dataset has %d features, offsets cover %d", ErrOffsetsMismatch, nFeat, len(off.Begin))
	}
	domain := off.Domain()
	for i, row := range X {
		for j, v := range row {
			if v > domain[j] {
				return fmt.Errorf("%w: row %d feature %d has value %d, offsets only cover up to %d", ErrOffsetsMismatch, i, j, v, domain[j])
			}
		}
	}
	return nil
}
