package sliceline

import "testing"

func TestEvaluateMatchesDirectCount(t *testing.T) {
	X := [][]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {1, 1}}
	e := []float64{10, 1, 1, 1, 2}
	off := ComputeOffsets(X)
	x2 := Encode(X, off)

	cand := Slice{Cols: []int{off.Begin[0], off.Begin[1]}} // f1=1, f2=1
	p := EvalParams{EAvg: 1, Alpha: 1, NRows: 5}

	stats := Evaluate(x2, e, []Slice{cand}, 2, p, false, 0)
	if len(stats) != 1 {
		t.Fatalf("got %d stats, want 1", len(stats))
	}
	if stats[0].Size != 2 || stats[0].TotalError != 12 || stats[0].MaxError != 10 {
		t.Errorf("stats = %+v, want size=2 total=12 max=10", stats[0])
	}
}

func TestEvaluateTaskParallelMatchesDataParallel(t *testing.T) {
	X := make([][]int, 0, 64)
	e := make([]float64, 0, 64)
	for i := 0; i < 64; i++ {
		X = append(X, []int{i%2 + 1, (i/2)%2 + 1})
		e = append(e, float64(i%5))
	}
	off := ComputeOffsets(X)
	x2 := Encode(X, off)

	var cands []Slice
	for _, c := range []int{off.Begin[0], off.Begin[0] + 1} {
		cands = append(cands, Slice{Cols: []int{c}})
	}
	p := EvalParams{EAvg: 1.5, Alpha: 0.5, NRows: len(X)}

	dataParallel := Evaluate(x2, e, cands, 1, p, false, 0)
	taskParallel := Evaluate(x2, e, cands, 1, p, true, 1)

	for i := range dataParallel {
		if !almostEqual(dataParallel[i].Score, taskParallel[i].Score) ||
			dataParallel[i].Size != taskParallel[i].Size ||
			dataParallel[i].TotalError != taskParallel[i].TotalError ||
			dataParallel[i].MaxError != taskParallel[i].MaxError {
			t.Errorf("candidate %d: data-parallel %+v != task-parallel %+v", i, dataParallel[i], taskParallel[i])
		}
	}
}
