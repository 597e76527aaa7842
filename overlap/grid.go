// Package overlap - row-major DP storage.
//
// Grid and TraceGrid keep one flat buffer each (offset = i*cols + j).
// Hot loops use the unexported accessors; the exported At methods bound-check
// and return ErrOutOfRange instead of panicking.

package overlap

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfRange indicates a row or column outside the grid.
var ErrOutOfRange = errors.New("overlap: index out of range")

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Grid is a rows×cols matrix of scores. Unreachable cells hold -Inf.
type Grid struct {
	r, c int
	data []float64
}

// newGrid allocates a rows×cols grid with every cell set to fill.
func newGrid(rows, cols int, fill float64) *Grid {
	g := &Grid{r: rows, c: cols, data: make([]float64, rows*cols)}
	for k := range g.data {
		g.data[k] = fill
	}

	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.r }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.c }

// At returns the score at (row, col).
func (g *Grid) At(row, col int) (float64, error) {
	if row < 0 || row >= g.r || col < 0 || col >= g.c {
		return 0, fmt.Errorf("Grid.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return g.data[row*g.c+col], nil
}

// Row returns a copy of row i.
func (g *Grid) Row(i int) ([]float64, error) {
	if i < 0 || i >= g.r {
		return nil, fmt.Errorf("Grid.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]float64, g.c)
	copy(out, g.data[i*g.c:(i+1)*g.c])

	return out, nil
}

func (g *Grid) at(i, j int) float64     { return g.data[i*g.c+j] }
func (g *Grid) set(i, j int, v float64) { g.data[i*g.c+j] = v }

// String renders the grid one row per line, e.g. "[0, -Inf]\n".
func (g *Grid) String() string {
	var b strings.Builder
	for i := 0; i < g.r; i++ {
		b.WriteString(_fmtRowOpen)
		base := i * g.c
		for j := 0; j < g.c; j++ {
			b.WriteString(fmt.Sprintf("%g", g.data[base+j]))
			if j+1 < g.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// TraceGrid holds one State pointer per cell.
type TraceGrid struct {
	r, c int
	data []State
}

// newTraceGrid allocates a rows×cols grid of StateNone.
func newTraceGrid(rows, cols int) *TraceGrid {
	return &TraceGrid{r: rows, c: cols, data: make([]State, rows*cols)}
}

// Rows returns the number of rows.
func (t *TraceGrid) Rows() int { return t.r }

// Cols returns the number of columns.
func (t *TraceGrid) Cols() int { return t.c }

// At returns the pointer stored at (row, col).
func (t *TraceGrid) At(row, col int) (State, error) {
	if row < 0 || row >= t.r || col < 0 || col >= t.c {
		return StateNone, fmt.Errorf("TraceGrid.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return t.data[row*t.c+col], nil
}

func (t *TraceGrid) at(i, j int) State     { return t.data[i*t.c+j] }
func (t *TraceGrid) set(i, j int, s State) { t.data[i*t.c+j] = s }

// String renders the grid with State names, e.g. "[None, Iy]\n".
func (t *TraceGrid) String() string {
	var b strings.Builder
	for i := 0; i < t.r; i++ {
		b.WriteString(_fmtRowOpen)
		base := i * t.c
		for j := 0; j < t.c; j++ {
			b.WriteString(t.data[base+j].String())
			if j+1 < t.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
