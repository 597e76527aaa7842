package overlap

// SelectStart picks the traceback start on the last row of mx.
//
// Each matrix contributes its row maximum, the rightmost column winning
// ties. The overall start is the highest of the three candidates, compared
// in the order Ix, M, Iy with the earlier one winning ties.
//
// Complexity: O(m).
func SelectStart(mx *Matrices) Start {
	best := rowMax(mx.Ix, StateIx)
	for _, c := range [...]Start{rowMax(mx.M, StateM), rowMax(mx.Iy, StateIy)} {
		if c.Score > best.Score {
			best = c
		}
	}

	return best
}

// rowMax scans the last row of g left to right; >= keeps the rightmost
// maximum.
func rowMax(g *Grid, state State) Start {
	last := g.r - 1
	st := Start{State: state, Col: 0, Score: g.at(last, 0)}
	for j := 1; j < g.c; j++ {
		if v := g.at(last, j); v >= st.Score {
			st.Col, st.Score = j, v
		}
	}

	return st
}
