// Package scoring provides the substitution tables consumed by the
// overlap aligner.
//
// A Table answers one question: what is the score of placing symbol a
// against symbol b? Either symbol may be the gap symbol Gap ('-'), in which
// case the answer is the per-character gap cost of the other symbol.
// Lookups are unordered: Score(a, b) == Score(b, a).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqalign/scoring"
//
//	tbl := scoring.NewUniform("ACGT", 1, -1, -1) // match, mismatch, gap
//	tbl.Set('A', 'G', 0)                         // transitions are cheaper
//
//	if err := scoring.Validate(tbl, x, y); err != nil {
//	  // every missing pair is listed, each wrapping ErrMissingScore
//	}
//
// Tables are read-only during alignment and safe for concurrent readers.
// Parsing substitution-matrix files is out of scope: callers build tables
// in memory.
package scoring
