package overlap

import (
	"fmt"

	"github.com/katalvlaran/seqalign/scoring"
)

// Valid reports whether a has the shape Reconstruct produces: equal
// lengths, a leading block padded on Y, a core without padding or
// double-gap columns, and a trailing block padded on X.
func (a Alignment) Valid() error {
	if len(a.X) != len(a.Y) {
		return fmt.Errorf("overlap: lengths %d and %d: %w", len(a.X), len(a.Y), ErrMalformedAlignment)
	}
	lo, hi := a.bounds()
	for k := 0; k < len(a.X); k++ {
		cx, cy := a.X[k], a.Y[k]
		switch {
		case k < lo:
			if cx == Pad || cx == scoring.Gap {
				return fmt.Errorf("overlap: column %d in padded prefix: %w", k, ErrMalformedAlignment)
			}
		case k >= hi:
			if cy == Pad || cy == scoring.Gap {
				return fmt.Errorf("overlap: column %d in padded suffix: %w", k, ErrMalformedAlignment)
			}
		default:
			if cx == Pad || cy == Pad {
				return fmt.Errorf("overlap: interior padding at column %d: %w", k, ErrMalformedAlignment)
			}
			if cx == scoring.Gap && cy == scoring.Gap {
				return fmt.Errorf("overlap: double gap at column %d: %w", k, ErrMalformedAlignment)
			}
		}
	}

	return nil
}

// Core returns the aligned region of a, without the padded prefix and
// suffix blocks.
func (a Alignment) Core() (x, y string) {
	lo, hi := a.bounds()

	return a.X[lo:hi], a.Y[lo:hi]
}

// bounds returns the half-open column range of the core. Both rows must
// have equal length.
func (a Alignment) bounds() (lo, hi int) {
	n := len(a.X)
	if len(a.Y) < n {
		n = len(a.Y)
	}
	for lo < n && a.Y[lo] == Pad && a.X[lo] != Pad {
		lo++
	}
	hi = n
	for hi > lo && a.X[hi-1] == Pad && a.Y[hi-1] != Pad {
		hi--
	}

	return lo, hi
}

// Rescore returns the score implied by a under table and gapOpen. Padded
// columns are free, aligned pairs score s(x, y), gap columns score s(c, -)
// and each maximal gap run on one row is charged gapOpen once. For an
// Alignment returned by Align with gapOpen <= 0 the result equals
// Result.Score.
//
// Errors:
//   - ErrMalformedAlignment if a fails Valid.
//   - scoring.ErrNilTable, scoring.ErrMissingScore (wrapped).
func Rescore(a Alignment, table scoring.Table, gapOpen float64) (float64, error) {
	if table == nil {
		return 0, scoring.ErrNilTable
	}
	if err := a.Valid(); err != nil {
		return 0, err
	}
	x, y := a.Core()

	var total float64
	prev := StateNone
	for k := 0; k < len(x); k++ {
		var (
			s   float64
			err error
		)
		cur := StateM
		switch {
		case x[k] == scoring.Gap:
			cur = StateIy
			s, err = table.Score(y[k], scoring.Gap)
		case y[k] == scoring.Gap:
			cur = StateIx
			s, err = table.Score(x[k], scoring.Gap)
		default:
			s, err = table.Score(x[k], y[k])
		}
		if err != nil {
			return 0, fmt.Errorf("overlap: rescore column %d: %w", k, err)
		}
		if cur != StateM && cur != prev {
			total += gapOpen
		}
		total += s
		prev = cur
	}

	return total, nil
}
