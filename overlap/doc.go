// Package overlap computes optimal overlap alignments of two sequences under
// an affine gap model.
//
// 🚀 What is an overlap alignment?
//
//	Two reads that share only an overlapping region, e.g. neighbouring
//	fragments during assembly:
//
//	  x:  TATCG
//	  y:     CGAAT
//
//	The unaligned head of x and tail of y are free; only the overlap is
//	scored. Gaps inside the overlap pay an opening cost g once per run plus
//	a per-character cost taken from the scoring table.
//
// ✨ How it works (three coupled DP matrices, Gotoh style):
//
//	M[i][j]  - best score with x[i-1] aligned to y[j-1]
//	Ix[i][j] - best score with x[i-1] aligned to a gap
//	Iy[i][j] - best score with y[j-1] aligned to a gap
//
//	1. Initialize  - boundary rows/columns encode the free prefix of x.
//	2. Fill        - row-major recurrences plus one traceback grid per matrix.
//	3. SelectStart - best cell on the last row (all of x consumed, the rest
//	                 of y skipped for free).
//	4. Reconstruct - walk the traceback grids back to column 0.
//
// Align runs the four stages; each stage is exported for callers that want
// to inspect the matrices.
//
// ⚙️ Usage:
//
//	tbl := scoring.NewUniform("ACGT", 1, -1, -1)
//	res, err := overlap.Align("TAT", "ATA", tbl, -2)
//	if err != nil {
//	  // scoring.ErrMissingScore, ...
//	}
//	fmt.Printf("%q\n%q\n", res.Alignment.X, res.Alignment.Y)
//
// Tie-breaking is part of the output contract: candidates are compared in
// the fixed orders Ix, M, Iy (M cell), Ix, M (Ix cell) and M, Iy (Iy cell),
// the first maximum wins; on the last row the rightmost maximum wins.
//
// Performance:
//
//   - Time:   O(n·m)
//   - Memory: O(n·m), six grids (three scores, three tracebacks); the full
//     grids are required for the traceback.
package overlap
