package scoring

import "cloudeng.io/errors"

// Validate checks that t holds every pair the overlap recurrences read for
// x and y: (x_i, y_j), (x_i, Gap) and (y_j, Gap). All missing pairs are
// reported together; the returned error matches ErrMissingScore via
// errors.Is.
//
// Complexity: O(|Σx|·|Σy|) lookups, where Σ is the set of distinct symbols.
func Validate(t Table, x, y string) error {
	if t == nil {
		return ErrNilTable
	}
	xs, ys := distinct(x), distinct(y)
	errs := &errors.M{}
	seen := make(map[Pair]bool)
	check := func(a, b byte) {
		p := Pair{A: a, B: b}
		if seen[p] || seen[Pair{A: b, B: a}] {
			return
		}
		seen[p] = true
		_, err := t.Score(a, b)
		errs.Append(err)
	}
	for _, a := range xs {
		check(a, Gap)
		for _, b := range ys {
			check(a, b)
		}
	}
	for _, b := range ys {
		check(b, Gap)
	}

	return errs.Err()
}

// distinct returns the distinct bytes of s in first-seen order.
func distinct(s string) []byte {
	var seen [256]bool
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if !seen[s[i]] {
			seen[s[i]] = true
			out = append(out, s[i])
		}
	}

	return out
}
