package overlap

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/seqalign/scoring"
)

// Reconstruct walks the traceback grids from start back to column 0 and
// returns the aligned pair.
//
// Layout of the result:
//
//	X: x[:i]   aligned core   Pad × len(y[start.Col:])
//	Y: Pad × i aligned core   y[start.Col:]
//
// where i is the row reached when the walk hits column 0. Inside the core an
// M step consumes x and y, an Ix step consumes x against a gap and an Iy step
// consumes y against a gap. The pointer of the cell being left decides the
// next matrix.
//
// Errors:
//   - ErrBadStart if start.State or start.Col does not fit the grids.
//   - ErrDimensionMismatch if tb is not (len(x)+1)×(len(y)+1).
//   - ErrUnreachableCell if the walk visits a cell with no pointer.
//
// Complexity: O(n+m).
func Reconstruct(x, y string, start Start, tb *Traceback) (Alignment, error) {
	n, m := len(x), len(y)
	if err := checkTraceShape(tb, n+1, m+1); err != nil {
		return Alignment{}, err
	}
	if start.Col < 0 || start.Col > m {
		return Alignment{}, fmt.Errorf("overlap: column %d outside 0..%d: %w", start.Col, m, ErrBadStart)
	}

	if tb.grid(start.State) == nil {
		return Alignment{}, fmt.Errorf("overlap: start state %v: %w", start.State, ErrBadStart)
	}

	// Core columns are collected back to front.
	coreX := make([]byte, 0, n+m)
	coreY := make([]byte, 0, n+m)

	i, j, cur := n, start.Col, start.State
	for j > 0 {
		next := tb.grid(cur).at(i, j)
		if next == StateNone {
			return Alignment{}, fmt.Errorf("overlap: %v[%d][%d]: %w", cur, i, j, ErrUnreachableCell)
		}

		switch cur {
		case StateM:
			i--
			j--
			coreX = append(coreX, x[i])
			coreY = append(coreY, y[j])
		case StateIx:
			i--
			coreX = append(coreX, x[i])
			coreY = append(coreY, scoring.Gap)
		default:
			j--
			coreX = append(coreX, scoring.Gap)
			coreY = append(coreY, y[j])
		}
		cur = next
	}

	tail := y[start.Col:]
	pad := string(Pad)

	var bx, by strings.Builder
	bx.Grow(i + len(coreX) + len(tail))
	by.Grow(i + len(coreY) + len(tail))

	bx.WriteString(x[:i])
	by.WriteString(strings.Repeat(pad, i))
	for k := len(coreX) - 1; k >= 0; k-- {
		bx.WriteByte(coreX[k])
		by.WriteByte(coreY[k])
	}
	bx.WriteString(strings.Repeat(pad, len(tail)))
	by.WriteString(tail)

	return Alignment{X: bx.String(), Y: by.String()}, nil
}

// grid returns the pointer grid of state s, or nil for StateNone.
func (tb *Traceback) grid(s State) *TraceGrid {
	switch s {
	case StateM:
		return tb.M
	case StateIx:
		return tb.Ix
	case StateIy:
		return tb.Iy
	}

	return nil
}

// checkTraceShape verifies that all three traceback grids are rows×cols.
func checkTraceShape(tb *Traceback, rows, cols int) error {
	if tb == nil || tb.M == nil || tb.Ix == nil || tb.Iy == nil {
		return fmt.Errorf("overlap: nil traceback: %w", ErrDimensionMismatch)
	}
	for _, t := range [...]*TraceGrid{tb.M, tb.Ix, tb.Iy} {
		if t.r != rows || t.c != cols {
			return fmt.Errorf("overlap: got %dx%d, want %dx%d: %w", t.r, t.c, rows, cols, ErrDimensionMismatch)
		}
	}

	return nil
}
