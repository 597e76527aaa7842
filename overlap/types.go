package overlap

import (
	"errors"
	"math"
)

// Pad fills the free-skip regions of an Alignment.
const Pad byte = ' '

// negInf marks unreachable cells.
var negInf = math.Inf(-1)

var (
	// ErrUnreachableCell indicates that the traceback followed a pointer into
	// an unset cell. It signals an inconsistent Start or Traceback, never a
	// property of the input sequences.
	ErrUnreachableCell = errors.New("overlap: traceback reached an unreachable cell")

	// ErrBadStart indicates a Start whose state or column does not fit the
	// traceback grids.
	ErrBadStart = errors.New("overlap: invalid traceback start")

	// ErrDimensionMismatch indicates grids whose shape is not (len(x)+1)×(len(y)+1).
	ErrDimensionMismatch = errors.New("overlap: matrix shape does not match sequences")

	// ErrMalformedAlignment indicates an Alignment that violates the output
	// shape (unequal lengths, double gaps, interior padding).
	ErrMalformedAlignment = errors.New("overlap: malformed alignment")
)

// State identifies one of the three DP matrices. It is also the value
// stored in traceback grids, where StateNone marks boundary or unreachable
// cells.
type State uint8

const (
	// StateNone is the unset traceback pointer.
	StateNone State = iota
	// StateM is the match/substitution matrix.
	StateM
	// StateIx is the "x aligned to a gap" matrix.
	StateIx
	// StateIy is the "y aligned to a gap" matrix.
	StateIy
)

// String returns "M", "Ix", "Iy" or "None".
func (s State) String() string {
	switch s {
	case StateM:
		return "M"
	case StateIx:
		return "Ix"
	case StateIy:
		return "Iy"
	default:
		return "None"
	}
}

// Matrices bundles the three score grids, each (n+1)×(m+1).
type Matrices struct {
	M, Ix, Iy *Grid
}

// Traceback bundles the three pointer grids parallel to Matrices.
type Traceback struct {
	M, Ix, Iy *TraceGrid
}

// Start is the cell the traceback begins from: a column on the last row of
// the matrix named by State, together with that cell's score.
type Start struct {
	State State
	Col   int
	Score float64
}

// Alignment is a pair of equal-length rows. '-' marks an induced gap and
// Pad marks the free prefix of x (leading) and the free suffix of y
// (trailing).
type Alignment struct {
	X, Y string
}

// Result is the outcome of Align.
type Result struct {
	Score     float64
	Alignment Alignment
}
