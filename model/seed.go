package model

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/furkankly/goffin/rules"
)

const (
	aliveChar   = '*'
	deadChar    = '.'
	commentChar = '#'
)

// Built-in seed names accepted by NamedSeed
const (
	SeedReference = "reference"
	SeedGlider    = "glider"
)

// Coord addresses a grid position
type Coord struct {
	Row int
	Col int
}

// Seed describes an initial grid. Cells lists only the non-default positions.
type Seed struct {
	Rows  int
	Cols  int
	Cells map[Coord]Cell
}

// Validate rejects empty dimensions and out-of-range coordinates
func (s Seed) Validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return errors.Wrapf(ErrSeedInvalid, "dimensions %dx%d", s.Rows, s.Cols)
	}
	for pos := range s.Cells {
		if pos.Row < 0 || pos.Row >= s.Rows || pos.Col < 0 || pos.Col >= s.Cols {
			return errors.Wrapf(ErrSeedInvalid, "coordinate (%d, %d) outside %dx%d", pos.Row, pos.Col, s.Rows, s.Cols)
		}
	}
	return nil
}

// ReferenceSeed returns the 6x11 seed the program starts from by default
func ReferenceSeed() Seed {
	return mustPattern(
		".....*.....",
		"....***....",
		"....***....",
		".....*.....",
		"...........",
		"...........",
	)
}

// GliderSeed returns a 6x11 glider whose cells carry hand-declared phases.
// The declared phases are informational; the first Advance reclassifies them.
func GliderSeed() Seed {
	low := func(alive bool) Cell { return Cell{Phase: rules.PhaseLow, Alive: alive} }
	mid := func(alive, willSpawn bool) Cell { return Cell{Phase: rules.PhaseMid, Alive: alive, WillSpawn: willSpawn} }

	return Seed{
		Rows: 6,
		Cols: 11,
		Cells: map[Coord]Cell{
			{0, 5}: low(true),
			{2, 4}: low(true),
			{1, 6}: mid(true, false),
			{2, 5}: mid(true, false),
			{2, 6}: mid(true, false),
			{1, 4}: mid(false, true),
			{3, 5}: mid(false, true),
			{0, 6}: mid(false, false),
			{1, 7}: mid(false, false),
			{2, 7}: mid(false, false),
			{3, 4}: mid(false, false),
			{3, 6}: mid(false, false),
			{1, 5}: {Phase: rules.PhaseHigh},
		},
	}
}

// NamedSeed returns a built-in seed by name
func NamedSeed(name string) (Seed, error) {
	switch name {
	case "", SeedReference:
		return ReferenceSeed(), nil
	case SeedGlider:
		return GliderSeed(), nil
	default:
		return Seed{}, errors.Wrapf(ErrSeedInvalid, "unknown built-in seed %q", name)
	}
}

// SeedFromPattern builds a seed from rows of '.' and '*'. Phases are derived
// from the neighbor counts of the pattern itself.
func SeedFromPattern(rows ...string) (Seed, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Seed{}, errors.Wrap(ErrSeedInvalid, "empty pattern")
	}

	cols := len(rows[0])
	alive := make([][]bool, len(rows))
	for r, line := range rows {
		if len(line) != cols {
			return Seed{}, errors.Wrapf(ErrSeedInvalid, "row %d has %d columns, want %d", r, len(line), cols)
		}
		alive[r] = make([]bool, cols)
		for c := range len(line) {
			switch line[c] {
			case aliveChar:
				alive[r][c] = true
			case deadChar:
			default:
				return Seed{}, errors.Wrapf(ErrSeedInvalid, "row %d col %d: unexpected %q", r, c, line[c])
			}
		}
	}

	// Classify against the pattern through a throwaway grid
	g := &Grid{rows: len(rows), cols: cols, cells: make([][]Cell, len(rows))}
	for r := range alive {
		g.cells[r] = make([]Cell, cols)
		for c := range alive[r] {
			g.cells[r][c].Alive = alive[r][c]
		}
	}

	seed := Seed{Rows: len(rows), Cols: cols, Cells: make(map[Coord]Cell)}
	for r := range g.rows {
		for c := range g.cols {
			cell := g.cells[r][c].Reclassify(g.CountNeighbors(r, c))
			if cell != (Cell{}) {
				seed.Cells[Coord{r, c}] = cell
			}
		}
	}
	return seed, nil
}

// ParseSeed reads a seed in the '.'/'*' text format. Blank lines and lines
// starting with '#' are skipped.
func ParseSeed(r io.Reader) (Seed, error) {
	var rows []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" || line[0] == commentChar {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return Seed{}, errors.Wrap(err, "[ParseSeed] failed to read seed")
	}

	seed, err := SeedFromPattern(rows...)
	if err != nil {
		return Seed{}, errors.Wrap(err, "[ParseSeed] malformed seed")
	}
	return seed, nil
}

// LoadSeedFile reads and parses a seed file
func LoadSeedFile(filename string) (Seed, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Seed{}, errors.Wrapf(err, "[LoadSeedFile] failed to open file: %+v", filename)
	}
	defer f.Close()

	seed, err := ParseSeed(f)
	if err != nil {
		return Seed{}, errors.Wrapf(err, "[LoadSeedFile] file: %+v", filename)
	}
	return seed, nil
}

func mustPattern(rows ...string) Seed {
	seed, err := SeedFromPattern(rows...)
	if err != nil {
		panic(err)
	}
	return seed
}
