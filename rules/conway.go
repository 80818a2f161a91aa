package rules

import "fmt"

// Phase is the neighborhood bucket a cell was sorted into by the last
// neighbor sweep. It decides the cell's transition on the next generation.
type Phase uint8

const (
	// PhaseLow holds cells with zero or one live neighbors
	PhaseLow Phase = iota
	// PhaseMid holds cells with two or three live neighbors
	PhaseMid
	// PhaseHigh holds cells with four or more live neighbors
	PhaseHigh
)

// MaxNeighbors is the size of the Moore neighborhood
const MaxNeighbors = 8

func (p Phase) String() string {
	switch p {
	case PhaseLow:
		return "LOW"
	case PhaseMid:
		return "MID"
	case PhaseHigh:
		return "HIGH"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

/*
Classify maps a cell's alive flag and live-neighbor count to its phase and
spawn flag.

	0..1 neighbors -> PhaseLow
	2..3 neighbors -> PhaseMid, willSpawn only for a dead cell with exactly 3
	4..8 neighbors -> PhaseHigh

A count outside 0..8 cannot come from a grid and panics.
*/
func Classify(alive bool, neighbors int) (phase Phase, willSpawn bool) {
	switch {
	case neighbors < 0 || neighbors > MaxNeighbors:
		panic(fmt.Sprintf("rules: neighbor count %d out of range", neighbors))
	case neighbors <= 1:
		return PhaseLow, false
	case neighbors <= 3:
		return PhaseMid, !alive && neighbors == 3
	default:
		return PhaseHigh, false
	}
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
