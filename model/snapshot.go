package model

import "strings"

// Snapshot is a row-major copy of the grid taken between generations
type Snapshot struct {
	Rows       int
	Cols       int
	Generation uint64
	Cells      []Cell
}

// At returns the cell at (row, col)
func (s *Snapshot) At(row, col int) Cell {
	return s.Cells[row*s.Cols+col]
}

// Alive reports whether the cell at (row, col) is alive
func (s *Snapshot) Alive(row, col int) bool {
	return s.At(row, col).Alive
}

// Pattern renders the alive pattern one string per row, '*' alive and '.' dead
func (s *Snapshot) Pattern() []string {
	lines := make([]string, s.Rows)
	var b strings.Builder
	for r := range s.Rows {
		b.Reset()
		for c := range s.Cols {
			if s.Alive(r, c) {
				b.WriteByte(aliveChar)
			} else {
				b.WriteByte(deadChar)
			}
		}
		lines[r] = b.String()
	}
	return lines
}
