package overlap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// lastRows builds 2-row matrices whose last rows are the given values.
func lastRows(m, ix, iy []float64) *Matrices {
	mk := func(last []float64) *Grid {
		g := newGrid(2, len(last), negInf)
		for j, v := range last {
			g.set(1, j, v)
		}

		return g
	}

	return &Matrices{M: mk(m), Ix: mk(ix), Iy: mk(iy)}
}

// TestRowMax_Rightmost verifies that the rightmost maximum wins within a row.
func TestRowMax_Rightmost(t *testing.T) {
	mx := lastRows(
		[]float64{negInf, 3, 1, 3, 2},
		[]float64{0, negInf, negInf, negInf, negInf},
		[]float64{negInf, negInf, negInf, negInf, negInf},
	)
	assert.Equal(t, Start{State: StateM, Col: 3, Score: 3}, rowMax(mx.M, StateM))

	// An all -Inf row reports its last column.
	assert.Equal(t, Start{State: StateIy, Col: 4, Score: negInf}, rowMax(mx.Iy, StateIy))
}

// TestSelectStart_CrossMatrixTies checks the Ix, M, Iy preference.
func TestSelectStart_CrossMatrixTies(t *testing.T) {
	cases := []struct {
		name      string
		m, ix, iy []float64
		want      Start
	}{
		{
			name: "all tie prefers Ix",
			m:    []float64{negInf, 5, 1},
			ix:   []float64{0, 5, negInf},
			iy:   []float64{negInf, 2, 5},
			want: Start{State: StateIx, Col: 1, Score: 5},
		},
		{
			name: "M over Iy",
			m:    []float64{negInf, 4, 1},
			ix:   []float64{0, 3, negInf},
			iy:   []float64{negInf, 2, 4},
			want: Start{State: StateM, Col: 1, Score: 4},
		},
		{
			name: "strictly better Iy wins",
			m:    []float64{negInf, 4, 1},
			ix:   []float64{0, 3, negInf},
			iy:   []float64{negInf, 2, 4.5},
			want: Start{State: StateIy, Col: 2, Score: 4.5},
		},
		{
			name: "free skip of y",
			m:    []float64{negInf, -1, -3},
			ix:   []float64{0, -2, -4},
			iy:   []float64{negInf, negInf, -2},
			want: Start{State: StateIx, Col: 0, Score: 0},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, SelectStart(lastRows(c.m, c.ix, c.iy)))
		})
	}
}

// TestState_String covers the enumeration names.
func TestState_String(t *testing.T) {
	assert.Equal(t, "M", StateM.String())
	assert.Equal(t, "Ix", StateIx.String())
	assert.Equal(t, "Iy", StateIy.String())
	assert.Equal(t, "None", StateNone.String())
	assert.Equal(t, "None", State(42).String())
}
