package overlap

import "github.com/katalvlaran/seqalign/scoring"

// Align computes an optimal overlap alignment of x against y with an affine
// gap model: gapOpen is charged once per gap run on top of the per-character
// gap costs in table.
//
// The free regions are a prefix of x and a suffix of y; the returned
// Alignment pads them with Pad. Empty inputs are valid: Align("A", "", t, g)
// yields {Score: 0, Alignment{X: "A", Y: " "}}.
//
// Example:
//
//	tbl := scoring.NewUniform("AT", 1, -1, -1)
//	res, _ := Align("TAT", "ATA", tbl, -2)
//	// res.Score == 2, res.Alignment == {"TAT ", " ATA"}
//
// Errors:
//   - scoring.ErrNilTable if table is nil.
//   - scoring.ErrMissingScore (wrapped) if table lacks a required pair.
//   - ErrUnreachableCell never occurs for tables with finite scores; it
//     reports an internal inconsistency.
//
// Complexity: O(n·m) time and memory.
func Align(x, y string, table scoring.Table, gapOpen float64) (Result, error) {
	mx, err := Initialize(x, y, table, gapOpen)
	if err != nil {
		return Result{}, err
	}
	tb, err := Fill(mx, x, y, table, gapOpen)
	if err != nil {
		return Result{}, err
	}
	start := SelectStart(mx)
	aln, err := Reconstruct(x, y, start, tb)
	if err != nil {
		return Result{}, err
	}

	return Result{Score: start.Score, Alignment: aln}, nil
}
