package model

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// ErrSeedInvalid is the cause of every seed rejected at grid construction
var ErrSeedInvalid = errors.New("invalid seed")

// Grid is a fixed rows x cols board of classified cells
type Grid struct {
	rows       int
	cols       int
	cells      [][]Cell
	generation uint64
	parallel   bool
}

// NewGrid builds a grid from the seed. Positions the seed leaves out start
// dead in rules.PhaseLow.
func NewGrid(seed Seed) (*Grid, error) {
	if err := seed.Validate(); err != nil {
		return nil, errors.Wrap(err, "[NewGrid] rejected seed")
	}

	cells := make([][]Cell, seed.Rows)
	for i := range cells {
		cells[i] = make([]Cell, seed.Cols)
	}
	for pos, cell := range seed.Cells {
		cells[pos.Row][pos.Col] = cell
	}

	return &Grid{
		rows:     seed.Rows,
		cols:     seed.Cols,
		cells:    cells,
		parallel: true,
	}, nil
}

// SetParallel toggles splitting each update phase across row bands
func (g *Grid) SetParallel(parallel bool) {
	g.parallel = parallel
}

// Rows returns the number of rows
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns
func (g *Grid) Cols() int {
	return g.cols
}

// Generation returns how many times Advance has completed
func (g *Grid) Generation() uint64 {
	return g.generation
}

// Cell returns the cell at (row, col), or a dead PhaseLow cell when out of bounds
func (g *Grid) Cell(row, col int) Cell {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return Cell{}
	}
	return g.cells[row][col]
}

// Alive reports whether the cell at (row, col) is alive
func (g *Grid) Alive(row, col int) bool {
	return g.Cell(row, col).Alive
}

// CountNeighbors counts living cells in the Moore neighborhood of (row, col).
// Edges do not wrap.
func (g *Grid) CountNeighbors(row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.rows-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.cols-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[r][c].Alive {
				count++
			}
		}
	}

	return count
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c].Alive {
				count++
			}
		}
	}
	return
}

/*
Advance performs one generation in two phases.

Phase A resolves every cell from its own phase only. Phase B then counts
neighbors against the settled alive pattern and reclassifies every cell.
Neither phase depends on iteration order, so both may run across row bands
concurrently.
*/
func (g *Grid) Advance() {
	g.sweep(g.resolveRows)
	g.sweep(g.reclassifyRows)
	g.generation++
}

func (g *Grid) resolveRows(startRow, endRow int) {
	for r := startRow; r < endRow; r++ {
		for c := range g.cols {
			g.cells[r][c] = g.cells[r][c].Resolve()
		}
	}
}

func (g *Grid) reclassifyRows(startRow, endRow int) {
	for r := startRow; r < endRow; r++ {
		for c := range g.cols {
			// Only Phase and WillSpawn are written; other bands read Alive concurrently
			next := g.cells[r][c].Reclassify(g.CountNeighbors(r, c))
			g.cells[r][c].Phase = next.Phase
			g.cells[r][c].WillSpawn = next.WillSpawn
		}
	}
}

// sweep runs fn over the whole grid, split into row bands when parallel
func (g *Grid) sweep(fn func(startRow, endRow int)) {
	if !g.parallel {
		fn(0, g.rows)
		return
	}

	var (
		eg            errgroup.Group
		numWorkers    = min(runtime.NumCPU(), g.rows)
		rowsPerWorker = (g.rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.rows)
		)
		if startRow >= g.rows {
			break
		}

		eg.Go(func() error {
			fn(startRow, endRow)
			return nil
		})
	}

	// Workers never fail; Wait is only a barrier here
	_ = eg.Wait()
}

// Snapshot returns a read-only copy of the current state
func (g *Grid) Snapshot() *Snapshot {
	s := &Snapshot{}
	g.SnapshotInto(s)
	return s
}

// SnapshotInto copies the current state into s, reusing its storage
func (g *Grid) SnapshotInto(s *Snapshot) {
	s.Rows = g.rows
	s.Cols = g.cols
	s.Generation = g.generation
	if cap(s.Cells) < g.rows*g.cols {
		s.Cells = make([]Cell, g.rows*g.cols)
	}
	s.Cells = s.Cells[:g.rows*g.cols]
	for r := range g.rows {
		copy(s.Cells[r*g.cols:(r+1)*g.cols], g.cells[r])
	}
}
