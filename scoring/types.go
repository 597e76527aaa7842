package scoring

import "errors"

// Gap is the symbol used for an induced gap, both in table keys and in
// aligned output.
const Gap byte = '-'

var (
	// ErrMissingScore indicates that a table has no entry for a symbol pair.
	ErrMissingScore = errors.New("scoring: missing score entry")

	// ErrNilTable indicates that a nil Table was supplied.
	ErrNilTable = errors.New("scoring: table is nil")
)

// Table scores a pair of symbols. Implementations must treat the pair as
// unordered and return an error wrapping ErrMissingScore for unknown pairs.
type Table interface {
	Score(a, b byte) (float64, error)
}

// Pair is an ordered key into a Matrix. Lookups through Matrix.Score try
// both orders, so only one orientation needs to be stored.
type Pair struct {
	A, B byte
}

// String renders the pair as "(A,B)".
func (p Pair) String() string {
	return "(" + string(p.A) + "," + string(p.B) + ")"
}
