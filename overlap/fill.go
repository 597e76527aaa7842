package overlap

import (
	"fmt"

	"github.com/katalvlaran/seqalign/scoring"
)

// Fill computes every interior cell of mx in row-major order and returns the
// matching traceback grids.
//
// Recurrences (s = scoring table lookup, g = gapOpen):
//
//	M[i][j]  = max(Ix[i-1][j-1], M[i-1][j-1], Iy[i-1][j-1]) + s(x[i-1], y[j-1])
//	Ix[i][j] = max(Ix[i-1][j], M[i-1][j] + g) + s(x[i-1], -)
//	Iy[i][j] = max(M[i][j-1] + g, Iy[i][j-1]) + s(y[j-1], -)
//
// Candidates are compared in the order written; the first maximum wins.
// A cell whose best score is -Inf keeps a StateNone pointer. Row 0 of the Iy
// traceback points left (StateIy) so leading gap runs can be walked back to
// column 0.
//
// Errors:
//   - scoring.ErrNilTable, ErrDimensionMismatch.
//   - scoring.ErrMissingScore (wrapped with the cell) on absent pairs.
//
// Complexity: O(n·m) time; the returned grids use O(n·m) memory.
func Fill(mx *Matrices, x, y string, table scoring.Table, gapOpen float64) (*Traceback, error) {
	if table == nil {
		return nil, scoring.ErrNilTable
	}
	n, m := len(x), len(y)
	if err := checkShape(mx, n+1, m+1); err != nil {
		return nil, err
	}

	tb := &Traceback{
		M:  newTraceGrid(n+1, m+1),
		Ix: newTraceGrid(n+1, m+1),
		Iy: newTraceGrid(n+1, m+1),
	}
	for j := 1; j <= m; j++ {
		tb.Iy.set(0, j, StateIy)
	}

	// Gap costs depend on one symbol only; look them up once per symbol.
	yGap := make([]float64, m)
	for j := 0; j < m; j++ {
		s, err := table.Score(y[j], scoring.Gap)
		if err != nil {
			return nil, fmt.Errorf("overlap: gap cost of y[%d]: %w", j, err)
		}
		yGap[j] = s
	}

	if m == 0 {
		return tb, nil
	}

	var (
		best  float64
		state State
	)
	for i := 1; i <= n; i++ {
		xGap, err := table.Score(x[i-1], scoring.Gap)
		if err != nil {
			return nil, fmt.Errorf("overlap: gap cost of x[%d]: %w", i-1, err)
		}
		for j := 1; j <= m; j++ {
			sub, err := table.Score(x[i-1], y[j-1])
			if err != nil {
				return nil, fmt.Errorf("overlap: M[%d][%d]: %w", i, j, err)
			}

			// M: Ix, M, Iy
			best, state = mx.Ix.at(i-1, j-1)+sub, StateIx
			best, state = pick(best, state, mx.M.at(i-1, j-1)+sub, StateM)
			best, state = pick(best, state, mx.Iy.at(i-1, j-1)+sub, StateIy)
			mx.M.set(i, j, best)
			record(tb.M, i, j, best, state)

			// Ix: Ix, M
			best, state = mx.Ix.at(i-1, j)+xGap, StateIx
			best, state = pick(best, state, mx.M.at(i-1, j)+gapOpen+xGap, StateM)
			mx.Ix.set(i, j, best)
			record(tb.Ix, i, j, best, state)

			// Iy: M, Iy
			best, state = mx.M.at(i, j-1)+gapOpen+yGap[j-1], StateM
			best, state = pick(best, state, mx.Iy.at(i, j-1)+yGap[j-1], StateIy)
			mx.Iy.set(i, j, best)
			record(tb.Iy, i, j, best, state)
		}
	}

	return tb, nil
}

// pick returns the candidate only when it strictly beats the current best,
// so earlier candidates win ties.
func pick(best float64, state State, cand float64, candState State) (float64, State) {
	if cand > best {
		return cand, candState
	}

	return best, state
}

// record stores state unless the cell is unreachable.
func record(t *TraceGrid, i, j int, score float64, state State) {
	if score != negInf {
		t.set(i, j, state)
	}
}

// checkShape verifies that all three grids are rows×cols.
func checkShape(mx *Matrices, rows, cols int) error {
	if mx == nil || mx.M == nil || mx.Ix == nil || mx.Iy == nil {
		return fmt.Errorf("overlap: nil matrices: %w", ErrDimensionMismatch)
	}
	for _, g := range [...]*Grid{mx.M, mx.Ix, mx.Iy} {
		if g.r != rows || g.c != cols {
			return fmt.Errorf("overlap: got %dx%d, want %dx%d: %w", g.r, g.c, rows, cols, ErrDimensionMismatch)
		}
	}

	return nil
}
