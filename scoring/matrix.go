package scoring

import "fmt"

// Matrix is a map-backed Table. The zero value is not usable; build one with
// make(Matrix), NewMatrix or NewUniform.
//
// Complexity: Score and Set are O(1).
type Matrix map[Pair]float64

var _ Table = Matrix(nil)

// NewMatrix returns an empty Matrix.
func NewMatrix() Matrix {
	return make(Matrix)
}

// Score returns the score of a against b, trying (a,b) before (b,a).
//
// Errors:
//   - ErrMissingScore (wrapped with the pair) when neither order is present.
func (t Matrix) Score(a, b byte) (float64, error) {
	if v, ok := t[Pair{A: a, B: b}]; ok {
		return v, nil
	}
	if v, ok := t[Pair{A: b, B: a}]; ok {
		return v, nil
	}

	return 0, fmt.Errorf("score%v: %w", Pair{A: a, B: b}, ErrMissingScore)
}

// Set stores the score for the unordered pair {a, b}. Any entry stored under
// the reverse orientation is removed so the pair has a single value.
func (t Matrix) Set(a, b byte, v float64) {
	if a != b {
		delete(t, Pair{A: b, B: a})
	}
	t[Pair{A: a, B: b}] = v
}

// Len returns the number of stored entries.
func (t Matrix) Len() int { return len(t) }

// NewUniform builds a symmetric table over alphabet: identical symbols score
// match, distinct symbols score mismatch and every symbol against Gap scores
// gap. Duplicate symbols in alphabet are ignored.
//
// Example:
//
//	tbl := NewUniform("ACGT", 2, -1, -1)
//	tbl.Score('A', 'A') // 2
//	tbl.Score('C', '-') // -1
func NewUniform(alphabet string, match, mismatch, gap float64) Matrix {
	t := NewMatrix()
	for i := 0; i < len(alphabet); i++ {
		a := alphabet[i]
		t.Set(a, Gap, gap)
		for j := i; j < len(alphabet); j++ {
			b := alphabet[j]
			if a == b {
				t.Set(a, b, match)
			} else {
				t.Set(a, b, mismatch)
			}
		}
	}

	return t
}
