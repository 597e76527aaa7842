package overlap

import (
	"fmt"

	"github.com/katalvlaran/seqalign/scoring"
)

// Initialize allocates the three (n+1)×(m+1) score matrices and sets their
// boundaries. Interior cells are left at -Inf until Fill writes them.
//
// Boundaries:
//
//	M[0][0] = 0     M[0][j] = M[i][0] = -Inf
//	Ix[0][0] = 0    Ix[i][0] = 0 (free prefix of x)   Ix[0][j] = -Inf
//	Iy[0][0] = g    Iy[0][j] = Iy[0][j-1] + s(y[j-1], -)   Iy[i][0] = -Inf
//
// Errors:
//   - scoring.ErrNilTable if table is nil.
//   - scoring.ErrMissingScore (wrapped) if some (y_j, -) is absent.
//
// Complexity: O(n·m) time and memory.
func Initialize(x, y string, table scoring.Table, gapOpen float64) (*Matrices, error) {
	if table == nil {
		return nil, scoring.ErrNilTable
	}
	rows, cols := len(x)+1, len(y)+1
	mx := &Matrices{
		M:  newGrid(rows, cols, negInf),
		Ix: newGrid(rows, cols, negInf),
		Iy: newGrid(rows, cols, negInf),
	}

	mx.M.set(0, 0, 0)
	for i := 0; i < rows; i++ {
		mx.Ix.set(i, 0, 0)
	}

	mx.Iy.set(0, 0, gapOpen)
	for j := 1; j < cols; j++ {
		s, err := table.Score(y[j-1], scoring.Gap)
		if err != nil {
			return nil, fmt.Errorf("overlap: Iy[0][%d]: %w", j, err)
		}
		mx.Iy.set(0, j, mx.Iy.at(0, j-1)+s)
	}

	return mx, nil
}
